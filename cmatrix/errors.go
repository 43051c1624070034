// SPDX-License-Identifier: MIT
// Package cmatrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the cmatrix
// package. All helpers MUST return these sentinels and tests MUST check them
// via errors.Is. No helper panics on user-triggered error conditions.

package cmatrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "cmatrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrNilMatrix indicates that a nil *mat.CDense (receiver or argument) was used.
	ErrNilMatrix = errors.New("cmatrix: nil matrix")

	// ErrBadShape is returned when requested shape is invalid (e.g., r<=0 or c<=0),
	// or when an operand has zero extent.
	ErrBadShape = errors.New("cmatrix: invalid shape")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("cmatrix: matrix is not square")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., vector kernels over slices of different lengths.
	ErrDimensionMismatch = errors.New("cmatrix: dimension mismatch")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("cmatrix: index out of range")

	// ErrEmptyVector indicates that a zero-length vector was passed where at
	// least one element is required.
	ErrEmptyVector = errors.New("cmatrix: empty vector")
)
