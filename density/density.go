package density

import (
	"math/cmplx"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qstates/cmatrix"
)

// traceEps is the guard threshold below which a Gram-matrix trace (or a
// coefficient sum) is treated as zero. Continuous random input never hits
// it; the guard only keeps adversarial or
// hand-crafted seeds from producing Inf/NaN entries.
const traceEps = 1e-12

// RandomSeed draws a rows×cols complex matrix whose real and imaginary parts
// are each independent uniform [0,1) values. No validity claims are made
// beyond shape — it is raw material for Normalize.
// Complexity: O(rows·cols).
func RandomSeed(rng *rand.Rand, rows, cols int) (*mat.CDense, error) {
	if rng == nil {
		return nil, ErrNilRand
	}
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	data := make([]complex128, rows*cols)
	for i := range data {
		data[i] = complex(rng.Float64(), rng.Float64())
	}

	return mat.NewCDense(rows, cols, data), nil
}

// RandomReal draws a rows×cols matrix with real parts uniform in [0,1) and
// zero imaginary parts. The entanglement sampler feeds these to the
// classifier unnormalized — they are probes, not physical states.
// Complexity: O(rows·cols).
func RandomReal(rng *rand.Rand, rows, cols int) (*mat.CDense, error) {
	if rng == nil {
		return nil, ErrNilRand
	}
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	data := make([]complex128, rows*cols)
	for i := range data {
		data[i] = complex(rng.Float64(), 0)
	}

	return mat.NewCDense(rows, cols, data), nil
}

// Normalize turns an arbitrary complex seed M into a density matrix via
//
//	ρ = M·M† / tr(M·M†)
//
// M·M† is Hermitian and positive semi-definite for ANY M (square or not),
// and dividing by its positive trace preserves both properties while fixing
// tr(ρ) = 1. The output is square with side len equal to M's row count.
//
// Stage 1 (Validate): non-nil seed with positive extent.
// Stage 2 (Execute): Gram product, trace, entrywise division.
// Stage 3 (Finalize): ErrZeroTrace when |tr| < 1e-12 (see traceEps).
// Complexity: O(r²·c) time for the Gram product.
func Normalize(seed *mat.CDense) (*mat.CDense, error) {
	if seed == nil {
		return nil, ErrNilMatrix
	}
	r, c := seed.Dims()
	if r <= 0 || c <= 0 {
		return nil, ErrBadShape
	}

	// Gram product: guaranteed Hermitian PSD.
	gram, err := cmatrix.Mul(seed, seed.H())
	if err != nil {
		return nil, err
	}

	// tr(M·M†) = Σ|m_ij|² is real and nonnegative.
	var tr complex128
	for i := 0; i < r; i++ {
		tr += gram.At(i, i)
	}
	if cmplx.Abs(tr) < traceEps {
		return nil, ErrZeroTrace
	}

	// Entrywise division fixes the trace to 1.
	inv := 1 / tr
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			gram.Set(i, j, gram.At(i, j)*inv)
		}
	}

	return gram, nil
}

// NewHermitian draws one random size×size density matrix: a complex seed
// passed through Normalize. Output is Hermitian, trace-1 and PSD.
func NewHermitian(rng *rand.Rand, size int) (*mat.CDense, error) {
	seed, err := RandomSeed(rng, size, size)
	if err != nil {
		return nil, err
	}

	return Normalize(seed)
}

// HermitianBatch draws count independent size×size density matrices.
// A zero count yields an empty (non-nil) batch; a negative count errors.
// Complexity: O(count·size³).
func HermitianBatch(rng *rand.Rand, size, count int) ([]*mat.CDense, error) {
	if count < 0 {
		return nil, ErrBadCount
	}

	out := make([]*mat.CDense, 0, count)
	for i := 0; i < count; i++ {
		rho, err := NewHermitian(rng, size)
		if err != nil {
			return nil, err
		}
		out = append(out, rho)
	}

	return out, nil
}

// HermitianFromDims draws one density matrix per requested seed shape.
// Each (rows, cols) pair seeds a rows×cols complex matrix; the Gram
// construction makes the corresponding output square rows×rows regardless
// of cols (wider seeds simply mix more randomness into the Gram product).
func HermitianFromDims(rng *rand.Rand, dims [][2]int) ([]*mat.CDense, error) {
	out := make([]*mat.CDense, 0, len(dims))
	for _, d := range dims {
		seed, err := RandomSeed(rng, d[0], d[1])
		if err != nil {
			return nil, err
		}
		rho, err := Normalize(seed)
		if err != nil {
			return nil, err
		}
		out = append(out, rho)
	}

	return out, nil
}

// Coefficients draws n independent uniform [0,1) mixing weights. With
// normalize=true the weights are divided by their sum, yielding a
// probability vector (entries ≥ 0, Σ = 1); without it the raw draws are
// returned unchanged — the asymmetry the composition policies rely on.
// n must be strictly positive.
func Coefficients(rng *rand.Rand, n int, normalize bool) ([]float64, error) {
	if rng == nil {
		return nil, ErrNilRand
	}
	if n <= 0 {
		return nil, ErrBadCount
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()
	}
	if normalize {
		sum := floats.Sum(out)
		if sum < traceEps {
			return nil, ErrZeroSum
		}
		floats.Scale(1/sum, out)
	}

	return out, nil
}
