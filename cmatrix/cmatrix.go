// SPDX-License-Identifier: MIT
// Package cmatrix - Kronecker products, traces, columns and vector kernels
// over gonum complex dense matrices.

package cmatrix

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Mul computes the complex matrix product a·b into a fresh dense matrix.
// gonum's CDense carries no arithmetic kernels, so the triple loop lives
// here. Accepting the mat.CMatrix interface lets transpose (T) and
// conjugate-transpose (H) views multiply without an intermediate copy.
// Returns ErrDimensionMismatch when the inner dimensions differ.
// Complexity: O(ra·ca·cb).
func Mul(a, b mat.CMatrix) (*mat.CDense, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	ra, ca := a.Dims()
	rb, cb := b.Dims()
	if ra <= 0 || ca <= 0 || rb <= 0 || cb <= 0 {
		return nil, ErrBadShape
	}
	if ca != rb {
		return nil, ErrDimensionMismatch
	}

	out := mat.NewCDense(ra, cb, nil)
	for i := 0; i < ra; i++ {
		for j := 0; j < cb; j++ {
			var sum complex128
			for k := 0; k < ca; k++ {
				sum += a.At(i, k) * b.At(k, j)
			}
			out.Set(i, j, sum)
		}
	}

	return out, nil
}

// Kron computes the Kronecker product a ⊗ b of two complex dense matrices.
// Stage 1 (Validate): both operands non-nil with positive extent.
// Stage 2 (Execute): fill the (ra·rb)×(ca·cb) result block by block.
// Stage 3 (Finalize): return the freshly allocated product.
// Complexity: O(ra·ca·rb·cb) time and memory.
func Kron(a, b *mat.CDense) (*mat.CDense, error) {
	// Validate operands before touching dimensions.
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	ra, ca := a.Dims()
	rb, cb := b.Dims()
	if ra <= 0 || ca <= 0 || rb <= 0 || cb <= 0 {
		return nil, ErrBadShape
	}

	out := mat.NewCDense(ra*rb, ca*cb, nil)
	// Each entry a[i,j] scales a full copy of b placed at block (i,j).
	for i := 0; i < ra; i++ {
		for j := 0; j < ca; j++ {
			aij := a.At(i, j)
			for p := 0; p < rb; p++ {
				for q := 0; q < cb; q++ {
					out.Set(i*rb+p, j*cb+q, aij*b.At(p, q))
				}
			}
		}
	}

	return out, nil
}

// KronVec computes the Kronecker product of two complex vectors — the
// flattened outer product — of length len(a)·len(b). Iterated application
// builds the k-subsystem tensor contraction used by the composition policies.
// Complexity: O(len(a)·len(b)).
func KronVec(a, b []complex128) ([]complex128, error) {
	// Both factors must carry at least one amplitude.
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyVector
	}

	out := make([]complex128, len(a)*len(b))
	for i, av := range a {
		off := i * len(b)
		for j, bv := range b {
			out[off+j] = av * bv
		}
	}

	return out, nil
}

// Trace returns the sum of the diagonal entries of a square complex matrix.
// Returns ErrNonSquare for rectangular input.
// Complexity: O(n).
func Trace(m *mat.CDense) (complex128, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	r, c := m.Dims()
	if r != c {
		return 0, ErrNonSquare
	}

	var tr complex128
	for i := 0; i < r; i++ {
		tr += m.At(i, i)
	}

	return tr, nil
}

// Column extracts column j of m as a fresh []complex128 of length rows.
// Public indexers MUST return ErrOutOfRange, not panic.
// Complexity: O(rows).
func Column(m *mat.CDense, j int) ([]complex128, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	r, c := m.Dims()
	if j < 0 || j >= c {
		return nil, ErrOutOfRange
	}

	col := make([]complex128, r)
	for i := 0; i < r; i++ {
		col[i] = m.At(i, j)
	}

	return col, nil
}

// Norm returns the Euclidean (L2) norm of a complex vector: sqrt(Σ |v_i|²).
// A zero-length vector has norm 0.
// Complexity: O(n).
func Norm(v []complex128) float64 {
	var sum float64
	for _, x := range v {
		// |x|² without the intermediate sqrt of cmplx.Abs.
		sum += real(x)*real(x) + imag(x)*imag(x)
	}

	return math.Sqrt(sum)
}

// Scale multiplies every element of v by alpha, in place.
// Complexity: O(n).
func Scale(alpha complex128, v []complex128) {
	for i := range v {
		v[i] *= alpha
	}
}

// AddScaled accumulates dst[i] += alpha·v[i], in place — the axpy kernel
// behind every running sum in the composition policies.
// Returns ErrDimensionMismatch when the slices differ in length.
// Complexity: O(n).
func AddScaled(dst []complex128, alpha complex128, v []complex128) error {
	if len(dst) != len(v) {
		return ErrDimensionMismatch
	}
	for i := range v {
		dst[i] += alpha * v[i]
	}

	return nil
}

// IsHermitian reports whether m equals its own conjugate transpose within eps,
// compared entrywise by modulus |m[i,j] - conj(m[j,i])|.
// Rectangular or nil input is never Hermitian.
// Complexity: O(n²).
func IsHermitian(m *mat.CDense, eps float64) bool {
	if m == nil {
		return false
	}
	r, c := m.Dims()
	if r != c {
		return false
	}
	for i := 0; i < r; i++ {
		for j := i; j < c; j++ {
			if cmplx.Abs(m.At(i, j)-cmplx.Conj(m.At(j, i))) > eps {
				return false
			}
		}
	}

	return true
}
