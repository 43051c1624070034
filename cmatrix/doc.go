// SPDX-License-Identifier: MIT
// Package cmatrix offers complex dense linear-algebra helpers shared by the
// qstates generators.
//
// The cmatrix package provides:
//
//   - Mul, the dense complex matrix product. gonum's CDense is storage and
//     views only, with no arithmetic kernels, so every product in the module
//     routes through this loop.
//   - Kronecker products for matrices (Kron) and vectors (KronVec), the
//     building blocks of every composite-state construction.
//   - Small dense utilities (Trace, Column, Norm, Scale, AddScaled) used by
//     the running sums of the composition policies.
//   - IsHermitian, a tolerance-based predicate for validating generated
//     density matrices.
//   - Realify, the 2n×2n real embedding of an n×n complex matrix whose
//     eigenvalue set is eig(M) ∪ conj(eig(M)) — the bridge to gonum's real
//     nonsymmetric eigensolver, which the entanglement witness relies on.
//
// All helpers operate on gonum *mat.CDense and []complex128 values, validate
// their inputs, and return the package sentinel errors instead of panicking.
package cmatrix
