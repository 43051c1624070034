package compose

import "gonum.org/v1/gonum/mat"

// Policy selects one of the three composition constructions.
//
//   - ProductMixture        — weighted sum of Kronecker products of paired
//     subsystem density matrices; coefficients always normalized to sum 1.
//     Produces matrices.
//   - IndexedContraction    — column-indexed tensor contraction across k
//     subsystem matrices; coefficients normalized unless the entangled
//     flavor is requested. Produces vectors.
//   - NormalizedContraction — the same contraction over raw coefficients,
//     final vector rescaled to unit norm. Produces unit vectors.
type Policy int

const (
	// ProductMixture mixes paired product states into a separable density matrix.
	ProductMixture Policy = iota

	// IndexedContraction contracts subsystem matrix columns into a composite vector.
	IndexedContraction

	// NormalizedContraction contracts like IndexedContraction, then normalizes.
	NormalizedContraction
)

// String implements fmt.Stringer for diagnostics and test output.
func (p Policy) String() string {
	switch p {
	case ProductMixture:
		return "ProductMixture"
	case IndexedContraction:
		return "IndexedContraction"
	case NormalizedContraction:
		return "NormalizedContraction"
	default:
		return "UnknownPolicy"
	}
}

// Options configures Generate.
//
// Fields:
//   - Policy     — which composition construction to run.
//   - Dim        — per-subsystem matrix dimension d (contraction policies;
//     ProductMixture always mixes 2×2 subsystems, one qubit per side).
//   - Subsystems — number k of subsystem matrices per state (contraction
//     policies; at least 2).
//   - Mixtures   — number of product terms mixed per state (ProductMixture).
//   - Entangled  — IndexedContraction only: skip coefficient normalization,
//     the "entangled" flavor of the indexed contraction.
//
// Example:
//
//	opts := compose.DefaultOptions()
//	opts.Policy = compose.NormalizedContraction
//	opts.Dim = 2
//	opts.Subsystems = 3
//
//	states, err := compose.Generate(rng, 100, opts)
//	if err != nil {
//	  // handle ErrBadCount / ErrSubsystemCount / ...
//	}
type Options struct {
	Policy     Policy
	Dim        int
	Subsystems int
	Mixtures   int
	Entangled  bool
}

// DefaultOptions returns the smallest physically interesting configuration:
// two 2×2 subsystems (one qubit each) and two mixed product terms.
func DefaultOptions() Options {
	return Options{
		Policy:     ProductMixture,
		Dim:        2,
		Subsystems: 2,
		Mixtures:   2,
	}
}

// State is one generated composite state. Exactly one field is set,
// determined by the policy: Matrix for ProductMixture, Vector for the two
// contraction policies.
type State struct {
	Matrix *mat.CDense
	Vector []complex128
}
