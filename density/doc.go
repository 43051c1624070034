// Package density generates random density matrices and mixing coefficients.
//
// The density package provides:
//
//   - RandomSeed / RandomReal — raw random matrices with entries uniform in
//     [0,1): complex seeds for Hermitian normalization, and real-valued
//     probes consumed unnormalized by the entanglement sampler.
//   - Normalize — the M·M†/tr(M·M†) construction turning any complex seed
//     into a Hermitian, trace-1, positive-semi-definite density matrix.
//   - NewHermitian / HermitianBatch / HermitianFromDims — convenience
//     generators combining the two steps.
//   - Coefficients — nonnegative random mixing weights, optionally
//     normalized to sum to 1 (a probability vector).
//
// Every generator takes an explicit *rand.Rand so runs are reproducible from
// a seed; there is no package-level randomness. Returned values are freshly
// allocated and owned by the caller.
package density
