// Package compose: sentinel error set, matched by callers via errors.Is.

package compose

import "errors"

var (
	// ErrNilRand indicates that a nil *rand.Rand was passed to a generator.
	ErrNilRand = errors.New("compose: nil random source")

	// ErrBadCount is returned when a requested state count is negative or a
	// structural count (dimension, mixtures) is not strictly positive.
	ErrBadCount = errors.New("compose: invalid count")

	// ErrEmptyInput indicates that a kernel received no matrices or no
	// coefficients to work with.
	ErrEmptyInput = errors.New("compose: empty input")

	// ErrDimensionMismatch indicates incompatible operand shapes: unequal
	// batch lengths, unequal subsystem dimensions, or a coefficient vector
	// whose length does not match the contraction index range.
	ErrDimensionMismatch = errors.New("compose: dimension mismatch")

	// ErrNonSquare signals that a contraction subsystem matrix is not square.
	ErrNonSquare = errors.New("compose: subsystem matrix is not square")

	// ErrSubsystemCount signals fewer than two subsystem matrices; the
	// contraction is defined pairwise and needs at least one pairing.
	ErrSubsystemCount = errors.New("compose: need at least two subsystem matrices")

	// ErrZeroNorm signals that the contracted vector has (near-)zero norm and
	// cannot be rescaled to a unit vector.
	ErrZeroNorm = errors.New("compose: zero norm, cannot normalize")

	// ErrUnknownPolicy is returned by Generate for an unrecognized Policy value.
	ErrUnknownPolicy = errors.New("compose: unknown composition policy")
)
