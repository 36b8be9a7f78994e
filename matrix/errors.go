// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package and by renderers. Constructors and accessors return these sentinels
// wrapped with call-site context; tests check them via errors.Is.
// No accessor panics on user-triggered conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Wrap with
// fmt.Errorf("ctx: %w", ErrX) when context matters; callers still match
// with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> region -> index.

var (
	// ErrBadShape is returned when a dimension is negative.
	// Zero rows or columns are legal and describe an empty matrix.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside the
	// logical shape, or that the backing buffer is shorter than rows*cols.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBadRegion signals a render region violating
	// 0 ≤ R0 ≤ RF ≤ rows and 0 ≤ C0 ≤ CF ≤ cols.
	ErrBadRegion = errors.New("matrix: invalid region")

	// ErrNilMatrix indicates that a nil Grid or source matrix was passed.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
