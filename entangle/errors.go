// Package entangle: sentinel error set, matched by callers via errors.Is.

package entangle

import "errors"

var (
	// ErrBadShape is returned by IsEntangled for any input that is not
	// exactly 4×4. The two-qubit witness is defined for nothing else.
	ErrBadShape = errors.New("entangle: expects a 4×4 density matrix")

	// ErrNilMatrix indicates a nil input matrix.
	ErrNilMatrix = errors.New("entangle: nil matrix")

	// ErrNilRand indicates that a nil *rand.Rand was passed to Sample.
	ErrNilRand = errors.New("entangle: nil random source")

	// ErrBadCount is returned when the requested state count is negative.
	ErrBadCount = errors.New("entangle: invalid count")

	// ErrNilSource indicates that SampleFrom received a nil probe source.
	ErrNilSource = errors.New("entangle: nil probe source")

	// ErrEigenFailed indicates that the eigensolver did not converge on the
	// partially transposed matrix.
	ErrEigenFailed = errors.New("entangle: eigen decomposition failed")

	// ErrMaxAttempts is returned when SamplerOptions.MaxAttempts probes were
	// drawn without accumulating the requested number of entangled states.
	ErrMaxAttempts = errors.New("entangle: max attempts exhausted")
)
