package entangle

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qstates/cmatrix"
)

// transposeOp is T = I₂ ⊗ σ_z = diag(1, -1, 1, -1), the fixed conjugation
// operator of the witness. Built once; Kron over two hand-rolled 2×2
// constants would allocate the same thing on every call.
var transposeOp = mat.NewCDense(4, 4, []complex128{
	1, 0, 0, 0,
	0, -1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, -1,
})

// IsEntangled — partial-transpose negativity witness for 4×4 probes.
//
// Description:
//
//	Accepts ANY 4×4 complex matrix (no Hermitian or PSD check — raw probes
//	are legitimate input) and reports whether the witness flags it.
//
// Algorithm Outline:
//  1. Validate shape: exactly 4×4, else ErrBadShape.
//  2. Conjugate the FULL transpose: ρ_TB = T·ρᵀ·T with T = I₂ ⊗ σ_z.
//  3. Eigenvalues of ρ_TB through the 8×8 real embedding (cmatrix.Realify);
//     the embedding's spectrum is eig(ρ_TB) ∪ its conjugates, so the
//     negative-real-part predicate is unchanged.
//  4. Flag iff some eigenvalue real part is strictly negative.
//
// The comparison in step 4 is deliberately strict, with no epsilon. Exact
// zero eigenvalues come back from the solver with round-off of either sign,
// so rank-deficient PSD input (a Bell projector) is flagged while input with
// a strictly positive spectrum (the maximally mixed state) is not; see the
// package doc. The input is never mutated.
//
// Complexity: O(1) — fixed 4×4 algebra plus one 8×8 eigensolve.
//
// Errors:
//   - ErrNilMatrix  — nil input.
//   - ErrBadShape   — input not exactly 4×4.
//   - ErrEigenFailed — eigensolver non-convergence (not observed in practice).
func IsEntangled(rho *mat.CDense) (bool, error) {
	if rho == nil {
		return false, ErrNilMatrix
	}
	if r, c := rho.Dims(); r != 4 || c != 4 {
		return false, ErrBadShape
	}

	// ρ_TB = T · ρᵀ · T. CDense.T() is the plain (non-conjugating) transpose.
	tmp, err := cmatrix.Mul(transposeOp, rho.T())
	if err != nil {
		return false, err
	}
	rhoTB, err := cmatrix.Mul(tmp, transposeOp)
	if err != nil {
		return false, err
	}

	embedded, err := cmatrix.Realify(rhoTB)
	if err != nil {
		return false, err
	}

	var eig mat.Eigen
	if ok := eig.Factorize(embedded, mat.EigenNone); !ok {
		return false, ErrEigenFailed
	}

	for _, ev := range eig.Values(nil) {
		if real(ev) < 0 {
			return true, nil
		}
	}

	return false, nil
}
