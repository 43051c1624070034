package compose_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qstates/cmatrix"
	"github.com/katalvlaran/qstates/compose"
	"github.com/katalvlaran/qstates/density"
)

const tol = 1e-12

// naiveKron is an independent reference Kronecker product used to cross-check
// the kernels without leaning on cmatrix.
func naiveKron(a, b *mat.CDense) *mat.CDense {
	ra, ca := a.Dims()
	rb, cb := b.Dims()
	out := mat.NewCDense(ra*rb, ca*cb, nil)
	for i := 0; i < ra*rb; i++ {
		for j := 0; j < ca*cb; j++ {
			out.Set(i, j, a.At(i/rb, j/cb)*b.At(i%rb, j%cb))
		}
	}

	return out
}

// TestMixProducts_MatchesNaiveSum is the round-trip check of a mixture of two
// 2×2 product pairs against a direct weighted sum of Kronecker products.
func TestMixProducts_MatchesNaiveSum(t *testing.T) {
	rng := rand.New(rand.NewSource(10))

	rhoA, err := density.HermitianBatch(rng, 2, 2)
	require.NoError(t, err)
	rhoB, err := density.HermitianBatch(rng, 2, 2)
	require.NoError(t, err)
	coeffs := []float64{0.3, 0.7}

	got, err := compose.MixProducts(rhoA, rhoB, coeffs)
	require.NoError(t, err)

	// Σᵢ cᵢ · kron(ρ_A[i], ρ_B[i]), computed independently.
	want := mat.NewCDense(4, 4, nil)
	for i := range coeffs {
		k := naiveKron(rhoA[i], rhoB[i])
		for p := 0; p < 4; p++ {
			for q := 0; q < 4; q++ {
				want.Set(p, q, want.At(p, q)+complex(coeffs[i], 0)*k.At(p, q))
			}
		}
	}

	assert.True(t, mat.CEqualApprox(got, want, tol), "mixture must equal the naive weighted sum")
}

// TestMixProducts_SeparableIsDensityMatrix: a convex mixture of density
// matrices must itself be Hermitian with unit trace.
func TestMixProducts_SeparableIsDensityMatrix(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	rhoA, err := density.HermitianBatch(rng, 2, 3)
	require.NoError(t, err)
	rhoB, err := density.HermitianBatch(rng, 2, 3)
	require.NoError(t, err)
	coeffs, err := density.Coefficients(rng, 3, true)
	require.NoError(t, err)

	state, err := compose.MixProducts(rhoA, rhoB, coeffs)
	require.NoError(t, err)

	require.True(t, cmatrix.IsHermitian(state, tol), "convex mixture stays Hermitian")
	tr, err := cmatrix.Trace(state)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, real(tr), tol, "convex mixture keeps trace 1")
}

// TestMixProducts_Validation covers the kernel's sentinel errors.
func TestMixProducts_Validation(t *testing.T) {
	a := mat.NewCDense(2, 2, nil)

	_, err := compose.MixProducts(nil, nil, nil)
	assert.ErrorIs(t, err, compose.ErrEmptyInput, "empty batches")

	_, err = compose.MixProducts([]*mat.CDense{a}, []*mat.CDense{a, a}, []float64{1})
	assert.ErrorIs(t, err, compose.ErrDimensionMismatch, "unequal batch lengths")

	_, err = compose.MixProducts([]*mat.CDense{a, a}, []*mat.CDense{a, a}, []float64{1})
	assert.ErrorIs(t, err, compose.ErrDimensionMismatch, "coefficient length mismatch")

	ragged := []*mat.CDense{a, mat.NewCDense(3, 3, nil)}
	_, err = compose.MixProducts(ragged, []*mat.CDense{a, a}, []float64{0.5, 0.5})
	assert.ErrorIs(t, err, compose.ErrDimensionMismatch, "ragged subsystem batch")
}

// TestContractColumns_Known verifies the column contraction on hand-picked
// 2×2 matrices: Σⱼ cⱼ · col_j(A) ⊗ col_j(B).
func TestContractColumns_Known(t *testing.T) {
	// Row-major data, so col_0(A)=(1,3), col_1(A)=(2,4).
	a := mat.NewCDense(2, 2, []complex128{1, 2, 3, 4})
	// col_0(B)=(1,0), col_1(B)=(0,1i).
	b := mat.NewCDense(2, 2, []complex128{1, 0, 0, 1i})
	coeffs := []float64{2, 1}

	got, err := compose.ContractColumns([]*mat.CDense{a, b}, coeffs)
	require.NoError(t, err)

	// j=0: 2·(1,3)⊗(1,0) = (2,0,6,0); j=1: 1·(2,4)⊗(0,1i) = (0,2i,0,4i).
	want := []complex128{2, 2i, 6, 4i}
	require.Len(t, got, 4)
	for i := range want {
		assert.InDelta(t, real(want[i]), real(got[i]), tol, "entry %d, real", i)
		assert.InDelta(t, imag(want[i]), imag(got[i]), tol, "entry %d, imag", i)
	}
}

// TestContractColumns_Validation covers the contraction's sentinel errors.
func TestContractColumns_Validation(t *testing.T) {
	a := mat.NewCDense(2, 2, nil)

	_, err := compose.ContractColumns([]*mat.CDense{a}, []float64{1, 1})
	assert.ErrorIs(t, err, compose.ErrSubsystemCount, "single subsystem")

	rect := mat.NewCDense(2, 3, nil)
	_, err = compose.ContractColumns([]*mat.CDense{a, rect}, []float64{1, 1})
	assert.ErrorIs(t, err, compose.ErrNonSquare, "rectangular subsystem")

	c3 := mat.NewCDense(3, 3, nil)
	_, err = compose.ContractColumns([]*mat.CDense{a, c3}, []float64{1, 1})
	assert.ErrorIs(t, err, compose.ErrDimensionMismatch, "mixed subsystem dims")

	_, err = compose.ContractColumns([]*mat.CDense{a, a}, []float64{1, 1, 1})
	assert.ErrorIs(t, err, compose.ErrDimensionMismatch, "coefficients must index columns")
}

// TestSeparableStates_BatchShape verifies counts and per-state invariants.
func TestSeparableStates_BatchShape(t *testing.T) {
	rng := rand.New(rand.NewSource(12))

	states, err := compose.SeparableStates(rng, 3, 4)
	require.NoError(t, err)
	require.Len(t, states, 4)

	for _, s := range states {
		r, c := s.Dims()
		assert.Equal(t, 4, r, "two-qubit mixture is 4×4")
		assert.Equal(t, 4, c)
		assert.True(t, cmatrix.IsHermitian(s, tol))
	}

	_, err = compose.SeparableStates(rng, 0, 1)
	assert.ErrorIs(t, err, compose.ErrBadCount)
	_, err = compose.SeparableStates(nil, 2, 1)
	assert.ErrorIs(t, err, compose.ErrNilRand)
}

// TestStates_LengthAndFlag verifies the dᵏ output length for both flavors of
// the indexed contraction.
func TestStates_LengthAndFlag(t *testing.T) {
	rng := rand.New(rand.NewSource(13))

	for _, entangled := range []bool{false, true} {
		vecs, err := compose.States(rng, 2, 3, 5, entangled)
		require.NoError(t, err, "entangled=%v", entangled)
		require.Len(t, vecs, 5)
		for _, v := range vecs {
			assert.Len(t, v, 8, "2³ amplitudes per state")
		}
	}

	_, err := compose.States(rng, 2, 1, 1, false)
	assert.ErrorIs(t, err, compose.ErrSubsystemCount, "contraction needs k ≥ 2")
}

// TestContractedStates_UnitNorm verifies the final rescale of the normalized
// contraction's output.
func TestContractedStates_UnitNorm(t *testing.T) {
	rng := rand.New(rand.NewSource(14))

	vecs, err := compose.ContractedStates(rng, 3, 2, 6)
	require.NoError(t, err)
	require.Len(t, vecs, 6)

	for _, v := range vecs {
		require.Len(t, v, 9, "3² amplitudes per state")
		assert.InDelta(t, 1.0, cmatrix.Norm(v), tol, "vectors are rescaled to unit norm")
	}
}

// TestGenerate_PolicyDispatch verifies that each policy populates the right
// side of State and that unknown policies are rejected.
func TestGenerate_PolicyDispatch(t *testing.T) {
	rng := rand.New(rand.NewSource(15))

	opts := compose.DefaultOptions()
	states, err := compose.Generate(rng, 2, opts)
	require.NoError(t, err)
	require.Len(t, states, 2)
	for _, s := range states {
		assert.NotNil(t, s.Matrix, "ProductMixture produces matrices")
		assert.Nil(t, s.Vector)
	}

	opts.Policy = compose.IndexedContraction
	states, err = compose.Generate(rng, 2, opts)
	require.NoError(t, err)
	for _, s := range states {
		assert.Nil(t, s.Matrix)
		assert.NotNil(t, s.Vector, "contraction policies produce vectors")
	}

	opts.Policy = compose.NormalizedContraction
	states, err = compose.Generate(rng, 2, opts)
	require.NoError(t, err)
	for _, s := range states {
		require.NotNil(t, s.Vector)
		assert.InDelta(t, 1.0, cmatrix.Norm(s.Vector), tol)
	}

	opts.Policy = compose.Policy(99)
	_, err = compose.Generate(rng, 1, opts)
	assert.ErrorIs(t, err, compose.ErrUnknownPolicy)
}

// TestGenerate_Deterministic: same seed and options must reproduce the same
// dataset bit for bit.
func TestGenerate_Deterministic(t *testing.T) {
	opts := compose.DefaultOptions()
	opts.Policy = compose.NormalizedContraction
	opts.Subsystems = 3

	a, err := compose.Generate(rand.New(rand.NewSource(77)), 3, opts)
	require.NoError(t, err)
	b, err := compose.Generate(rand.New(rand.NewSource(77)), 3, opts)
	require.NoError(t, err)

	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].Vector, b[i].Vector, "state %d", i)
	}
}
