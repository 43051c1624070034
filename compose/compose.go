package compose

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qstates/cmatrix"
)

// MixProducts — product-mixture (separable) composition.
//
// Description:
//
//	Given paired batches of subsystem density matrices ρ_A[i], ρ_B[i] and a
//	coefficient vector c of the same length, MixProducts computes
//
//	    Σᵢ cᵢ · ρ_A[i] ⊗ ρ_B[i]
//
//	as a running sum in input order. With cᵢ ≥ 0 summing to 1 and valid
//	density-matrix inputs, the result is a convex combination of product
//	states — separable by definition.
//
// Algorithm Outline:
//  1. Validate batch lengths: len(rhoA) == len(rhoB) == len(coeffs) ≥ 1.
//  2. Validate shapes: every ρ_A[i] shares ρ_A[0]'s dims, same for ρ_B.
//  3. For each i: accumulate cᵢ · kron(ρ_A[i], ρ_B[i]) into the result.
//
// Complexity:
//
//	Time   = O(n · (ra·ca·rb·cb))
//	Memory = O(ra·ca·rb·cb)
//
// Errors:
//   - ErrEmptyInput        — empty batches.
//   - ErrDimensionMismatch — unequal batch lengths or ragged matrix shapes.
//
// Nil matrices inside the batches surface as cmatrix.ErrNilMatrix.
func MixProducts(rhoA, rhoB []*mat.CDense, coeffs []float64) (*mat.CDense, error) {
	// Validate batch extents first.
	if len(rhoA) == 0 || len(rhoB) == 0 || len(coeffs) == 0 {
		return nil, ErrEmptyInput
	}
	if len(rhoA) != len(rhoB) || len(rhoA) != len(coeffs) {
		return nil, ErrDimensionMismatch
	}

	var out *mat.CDense
	for i := range coeffs {
		prod, err := cmatrix.Kron(rhoA[i], rhoB[i])
		if err != nil {
			return nil, err
		}

		r, c := prod.Dims()
		if out == nil {
			out = mat.NewCDense(r, c, nil)
		} else if or, oc := out.Dims(); or != r || oc != c {
			// A ragged batch would silently corrupt the sum; reject it.
			return nil, ErrDimensionMismatch
		}

		// Running sum, input order: out += cᵢ · prod.
		ci := complex(coeffs[i], 0)
		for p := 0; p < r; p++ {
			for q := 0; q < c; q++ {
				out.Set(p, q, out.At(p, q)+ci*prod.At(p, q))
			}
		}
	}

	return out, nil
}

// ContractColumns — column-indexed tensor contraction.
//
// Description:
//
//	Given k square d×d subsystem matrices and a coefficient vector of length
//	d (one weight per COLUMN index, not per matrix), ContractColumns computes
//
//	    Σⱼ cⱼ · col_j(M₀) ⊗ col_j(M₁) ⊗ … ⊗ col_j(M_{k-1})
//
//	a dᵏ-length complex vector. The outer loop couples to the column index:
//	a different contraction semantics from MixProducts despite the similar
//	vocabulary.
//
// Algorithm Outline:
//  1. Validate: k ≥ 2 matrices, all square d×d, len(coeffs) == d.
//  2. For each j in 0..d-1: iterate KronVec over column j of every matrix,
//     left to right.
//  3. Accumulate cⱼ · (iterated product) into the running sum.
//
// Complexity:
//
//	Time   = O(d · dᵏ)
//	Memory = O(dᵏ)
//
// Errors:
//   - ErrSubsystemCount    — fewer than two subsystem matrices.
//   - ErrNonSquare         — a non-square subsystem matrix.
//   - ErrDimensionMismatch — differing subsystem dimensions, or a coefficient
//     vector whose length is not d.
func ContractColumns(mats []*mat.CDense, coeffs []float64) ([]complex128, error) {
	if len(mats) < 2 {
		return nil, ErrSubsystemCount
	}

	// All subsystems must agree on the square dimension d.
	d := 0
	for _, m := range mats {
		if m == nil {
			return nil, cmatrix.ErrNilMatrix
		}
		r, c := m.Dims()
		if r != c {
			return nil, ErrNonSquare
		}
		if d == 0 {
			d = r
		} else if r != d {
			return nil, ErrDimensionMismatch
		}
	}
	if len(coeffs) != d {
		return nil, ErrDimensionMismatch
	}

	// dᵏ result length, running sum over column indices.
	length := 1
	for range mats {
		length *= d
	}
	out := make([]complex128, length)

	for j := 0; j < d; j++ {
		prod, err := cmatrix.Column(mats[0], j)
		if err != nil {
			return nil, err
		}
		for _, m := range mats[1:] {
			col, err := cmatrix.Column(m, j)
			if err != nil {
				return nil, err
			}
			prod, err = cmatrix.KronVec(prod, col)
			if err != nil {
				return nil, err
			}
		}
		if err = cmatrix.AddScaled(out, complex(coeffs[j], 0), prod); err != nil {
			return nil, err
		}
	}

	return out, nil
}
