// Package qstates is your in-memory toolkit for synthesizing random quantum
// density matrices and labeling two-qubit states as entangled or separable —
// a dataset generator for downstream classification and learning tasks.
//
// 🚀 What is qstates?
//
//	A small, focused library that brings together:
//		• Density matrices: random Hermitian, trace-1, PSD states from raw seeds
//		• Coefficients: random probability vectors for convex mixtures
//		• Composition: product mixtures and column-indexed tensor contractions
//		• Entanglement: the Peres–Horodecki partial-transpose witness for 4×4 states
//		• Sampling: rejection sampling of confirmed-entangled probe matrices
//
// ✨ Why choose qstates?
//
//   - Reproducible – every generator takes an explicit *rand.Rand, no globals
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Physically valid – Hermitian/trace-1/PSD by construction, tested properties
//   - Built on gonum – dense complex matrices, LAPACK-backed eigenvalues
//
// Under the hood, everything is organized under four subpackages:
//
//	cmatrix/  — complex dense helpers: Kronecker products, traces, columns, norms
//	density/  — random seeds, Hermitian normalization, coefficient vectors
//	compose/  — the three composition policies behind one Generate entry point
//	entangle/ — the 4×4 entanglement classifier and the rejection sampler
//
// Quick sketch of the data flow:
//
//	seed ──► M·M†/tr ──► ρ_A, ρ_B ──┐
//	                                ├─► Σ cᵢ · ρ_A[i] ⊗ ρ_B[i]  (separable)
//	coefficients ───────────────────┘
//
//	raw 4×4 probe ──► T·ρᵀ·T eigenvalues ──► entangled? keep : retry
//
// Each generation call allocates and returns independent data; the caller owns
// the result outright. Dive into the package docs for the exact semantics of
// each composition policy.
//
//	go get github.com/katalvlaran/qstates
package qstates
