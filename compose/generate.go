package compose

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qstates/cmatrix"
	"github.com/katalvlaran/qstates/density"
)

// normEps is the guard threshold below which a contracted vector's norm is
// treated as zero and cannot be rescaled.
const normEps = 1e-12

// SeparableStates draws nStates two-qubit separable density matrices, each a
// convex mixture of nMatrices product states:
//
//	ρ = Σᵢ cᵢ · ρ_A[i] ⊗ ρ_B[i],  Σ cᵢ = 1
//
// with fresh 2×2 Hermitian subsystem batches and normalized coefficients per
// state. Output: nStates independent 4×4 matrices.
func SeparableStates(rng *rand.Rand, nMatrices, nStates int) ([]*mat.CDense, error) {
	if rng == nil {
		return nil, ErrNilRand
	}
	if nMatrices <= 0 || nStates < 0 {
		return nil, ErrBadCount
	}

	out := make([]*mat.CDense, 0, nStates)
	for s := 0; s < nStates; s++ {
		rhoA, err := density.HermitianBatch(rng, 2, nMatrices)
		if err != nil {
			return nil, err
		}
		rhoB, err := density.HermitianBatch(rng, 2, nMatrices)
		if err != nil {
			return nil, err
		}
		coeffs, err := density.Coefficients(rng, nMatrices, true)
		if err != nil {
			return nil, err
		}

		state, err := MixProducts(rhoA, rhoB, coeffs)
		if err != nil {
			return nil, err
		}
		out = append(out, state)
	}

	return out, nil
}

// States draws nStates composite vectors via the column-indexed contraction
// over nMatrices fresh dim×dim Hermitian subsystems. Coefficients (length
// dim, one per column index) are normalized to sum 1 unless the entangled
// flavor is requested — the conditional-normalization rule this
// flavor is defined by. Output vectors have length dim^nMatrices.
func States(rng *rand.Rand, dim, nMatrices, nStates int, entangled bool) ([][]complex128, error) {
	if rng == nil {
		return nil, ErrNilRand
	}
	if dim <= 0 || nStates < 0 {
		return nil, ErrBadCount
	}
	if nMatrices < 2 {
		return nil, ErrSubsystemCount
	}

	out := make([][]complex128, 0, nStates)
	for s := 0; s < nStates; s++ {
		mats, err := density.HermitianBatch(rng, dim, nMatrices)
		if err != nil {
			return nil, err
		}
		coeffs, err := density.Coefficients(rng, dim, !entangled)
		if err != nil {
			return nil, err
		}

		vec, err := ContractColumns(mats, coeffs)
		if err != nil {
			return nil, err
		}
		out = append(out, vec)
	}

	return out, nil
}

// ContractedStates draws nStates unit-norm composite vectors: the column
// contraction over nQubits fresh nRows×nRows Hermitian subsystems with RAW
// (never normalized) coefficients, each result rescaled to unit L2 norm.
// Output vectors have length nRows^nQubits.
func ContractedStates(rng *rand.Rand, nRows, nQubits, nStates int) ([][]complex128, error) {
	if rng == nil {
		return nil, ErrNilRand
	}
	if nRows <= 0 || nStates < 0 {
		return nil, ErrBadCount
	}
	if nQubits < 2 {
		return nil, ErrSubsystemCount
	}

	out := make([][]complex128, 0, nStates)
	for s := 0; s < nStates; s++ {
		mats, err := density.HermitianBatch(rng, nRows, nQubits)
		if err != nil {
			return nil, err
		}
		coeffs, err := density.Coefficients(rng, nRows, false)
		if err != nil {
			return nil, err
		}

		vec, err := ContractColumns(mats, coeffs)
		if err != nil {
			return nil, err
		}

		norm := cmatrix.Norm(vec)
		if norm < normEps {
			return nil, ErrZeroNorm
		}
		cmatrix.Scale(complex(1/norm, 0), vec)
		out = append(out, vec)
	}

	return out, nil
}

// Generate is the single policy-dispatched entry point over the three
// composition constructions. It draws nStates independent composite states
// according to opts.Policy; see Options for the knobs each policy reads.
//
// Errors surface from the selected generator unchanged; an unrecognized
// policy yields ErrUnknownPolicy.
func Generate(rng *rand.Rand, nStates int, opts Options) ([]State, error) {
	switch opts.Policy {
	case ProductMixture:
		matrices, err := SeparableStates(rng, opts.Mixtures, nStates)
		if err != nil {
			return nil, err
		}
		out := make([]State, len(matrices))
		for i, m := range matrices {
			out[i] = State{Matrix: m}
		}

		return out, nil

	case IndexedContraction:
		vectors, err := States(rng, opts.Dim, opts.Subsystems, nStates, opts.Entangled)
		if err != nil {
			return nil, err
		}
		out := make([]State, len(vectors))
		for i, v := range vectors {
			out[i] = State{Vector: v}
		}

		return out, nil

	case NormalizedContraction:
		vectors, err := ContractedStates(rng, opts.Dim, opts.Subsystems, nStates)
		if err != nil {
			return nil, err
		}
		out := make([]State, len(vectors))
		for i, v := range vectors {
			out[i] = State{Vector: v}
		}

		return out, nil

	default:
		return nil, ErrUnknownPolicy
	}
}
