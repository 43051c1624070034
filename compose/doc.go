// Package compose builds composite multi-subsystem states from per-subsystem
// density matrices and mixing coefficients.
//
// The construction comes in three near-identical flavors with
// subtly different coefficient semantics. compose keeps them as three
// explicit, named policies behind one Generate entry point:
//
//   - ProductMixture — Σᵢ cᵢ · ρ_A[i] ⊗ ρ_B[i] over a normalized coefficient
//     vector: a convex combination of two-qubit product states, separable by
//     definition. Output: one d²×d² matrix per state.
//   - IndexedContraction — for each column index j, the iterated Kronecker
//     product of column j of every subsystem matrix, scaled by cⱼ and summed.
//     Coefficients index matrix COLUMNS, not matrices; they are normalized
//     only when the caller does not ask for the entangled flavor. Output: one
//     dᵏ-length vector per state.
//   - NormalizedContraction — the same column contraction over raw (never
//     normalized) coefficients, with the final vector rescaled to unit L2
//     norm. Output: one dᵏ-length unit vector per state.
//
// The divergent coefficient-normalization rules are intentional and are preserved
// per policy rather than unified. The kernels MixProducts and ContractColumns are exported for
// callers that bring their own matrices and weights.
//
// All functions are pure: deterministic given their inputs, no shared state,
// freshly allocated results.
package compose
