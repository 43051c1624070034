// Package density: sentinel error set, matched by callers via errors.Is.

package density

import "errors"

var (
	// ErrNilRand indicates that a nil *rand.Rand was passed to a generator.
	ErrNilRand = errors.New("density: nil random source")

	// ErrBadShape is returned when requested matrix dimensions are non-positive.
	ErrBadShape = errors.New("density: dimensions must be > 0")

	// ErrBadCount is returned when a requested count is negative, or when a
	// coefficient count is not strictly positive.
	ErrBadCount = errors.New("density: invalid count")

	// ErrNilMatrix indicates a nil seed matrix.
	ErrNilMatrix = errors.New("density: nil seed matrix")

	// ErrZeroTrace signals that the Gram matrix M·M† has (near-)zero trace and
	// cannot be normalized. Unreachable for continuous random seeds; guarded
	// to keep the numerics finite for adversarial input.
	ErrZeroTrace = errors.New("density: zero trace, cannot normalize")

	// ErrZeroSum signals that coefficient normalization hit a (near-)zero sum.
	ErrZeroSum = errors.New("density: zero coefficient sum, cannot normalize")
)
