package entangle

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qstates/density"
)

// SamplerOptions configures the rejection sampler.
//
// Fields:
//   - MaxAttempts — total probe budget across the whole call. Zero (the
//     default) retries forever: for raw
//     [0,1) probes the acceptance probability is far from zero, so the loop
//     terminates quickly in practice. A positive cap turns a pathological
//     probe source into ErrMaxAttempts instead of a livelock.
//
// Example:
//
//	opts := entangle.DefaultSamplerOptions()
//	opts.MaxAttempts = 10_000
//
//	states, err := entangle.Sample(rng, 100, opts)
type SamplerOptions struct {
	MaxAttempts int
}

// DefaultSamplerOptions returns the default behavior: unbounded retry.
func DefaultSamplerOptions() SamplerOptions {
	return SamplerOptions{MaxAttempts: 0}
}

// Sample rejection-samples raw real-valued 4×4 probes until nStates of them
// are classified entangled, returning them in acceptance order. Probes are
// NOT Hermitian-normalized — the classifier operates on the raw draw.
//
// With MaxAttempts == 0 the loop is unbounded (a liveness property, not an
// error path); see SamplerOptions.
func Sample(rng *rand.Rand, nStates int, opts SamplerOptions) ([]*mat.CDense, error) {
	if rng == nil {
		return nil, ErrNilRand
	}

	return SampleFrom(func() (*mat.CDense, error) {
		return density.RandomReal(rng, 4, 4)
	}, nStates, opts)
}

// SampleFrom runs the same accept/reject loop over an arbitrary probe
// source. Each probe the source yields is classified; entangled probes are
// kept, the rest discarded. Source errors abort the sampling immediately.
//
// Splitting the source out keeps the loop testable: feed it a source of
// known-separable states and a finite MaxAttempts to exercise the cap.
func SampleFrom(next func() (*mat.CDense, error), nStates int, opts SamplerOptions) ([]*mat.CDense, error) {
	if next == nil {
		return nil, ErrNilSource
	}
	if nStates < 0 {
		return nil, ErrBadCount
	}

	accepted := make([]*mat.CDense, 0, nStates)
	attempts := 0
	for len(accepted) < nStates {
		if opts.MaxAttempts > 0 && attempts >= opts.MaxAttempts {
			return nil, ErrMaxAttempts
		}
		attempts++

		probe, err := next()
		if err != nil {
			return nil, err
		}

		entangled, err := IsEntangled(probe)
		if err != nil {
			return nil, err
		}
		if entangled {
			accepted = append(accepted, probe)
		}
	}

	return accepted, nil
}
