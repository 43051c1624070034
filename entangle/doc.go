// Package entangle classifies 4×4 probe matrices and rejection-samples the
// ones flagged entangled.
//
// IsEntangled applies the partial-transpose witness in one fixed numeric
// form:
//
//	T    = I₂ ⊗ σ_z = diag(1, -1, 1, -1)
//	ρ_TB = T · ρᵀ · T
//
// with ρᵀ the FULL transpose, and flags ρ iff some eigenvalue of ρ_TB has a
// strictly negative real part — strictly, with no epsilon. This recipe is
// kept verbatim and is NOT the textbook block-wise partial transpose on
// subsystem B. Because T is a diagonal involution, the conjugation is a
// similarity transform: in exact arithmetic the spectrum of ρ_TB equals the
// spectrum of ρ itself. Numerically the strict comparison does the rest of
// the work:
//
//   - Exact zero eigenvalues come back from the eigensolver with round-off
//     of either sign, so rank-deficient PSD states are flagged. The Bell
//     projector (spectrum {1, 0, 0, 0}) classifies as entangled; the
//     maximally mixed state I₄/4 (spectrum {¼, ¼, ¼, ¼}, and ρ_TB exactly
//     I₄/4 again) does not.
//   - On raw random probes, which are generally non-Hermitian with complex
//     spectra, the witness partitions inputs by whether any eigenvalue's
//     real part is negative. That partition is exactly what the sampler's
//     accepted/rejected split means.
//
// Negativity is defined against real parts throughout, since arbitrary 4×4
// input is accepted and may have a complex spectrum.
//
// Sample drives raw real-valued 4×4 probes (no Hermitian normalization)
// through the classifier until the requested number is accepted. The loop is
// unbounded by default; SamplerOptions.MaxAttempts adds an opt-in cap
// surfaced as ErrMaxAttempts.
package entangle
