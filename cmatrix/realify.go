// SPDX-License-Identifier: MIT
// Package cmatrix - real embedding of complex matrices for eigensolvers.

package cmatrix

import "gonum.org/v1/gonum/mat"

// Realify embeds an n×n complex matrix M = A + iB into the 2n×2n real matrix
//
//	⎡ A  -B ⎤
//	⎣ B   A ⎦
//
// whose eigenvalue set is exactly eig(M) ∪ conj(eig(M)). Conjugation flips
// only the imaginary part, so predicates on eigenvalue REAL parts — such as
// the partial-transpose negativity witness — are preserved verbatim. This is
// the standard route to eigenvalues of a general complex matrix through a
// real nonsymmetric eigensolver (gonum's mat.Eigen factors real matrices).
//
// Stage 1 (Validate): non-nil square input.
// Stage 2 (Execute): scatter real and imaginary parts into the four blocks.
// Complexity: O(n²) time, O(4n²) memory.
func Realify(m *mat.CDense) (*mat.Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	r, c := m.Dims()
	if r != c {
		return nil, ErrNonSquare
	}

	out := mat.NewDense(2*r, 2*c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			re, im := real(m.At(i, j)), imag(m.At(i, j))
			out.Set(i, j, re)     // A block
			out.Set(i, j+c, -im)  // -B block
			out.Set(i+r, j, im)   // B block
			out.Set(i+r, j+c, re) // A block
		}
	}

	return out, nil
}
