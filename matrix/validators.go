// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape, region and nil checks.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate only on failure.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the grid reference is non-nil.
//
// Returns ErrNilMatrix if g == nil.
// Complexity: O(1).
func ValidateNotNil(g Grid) error {
	if g == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateShape ensures rows and cols are non-negative.
//
// Zero is legal: a 0×N or N×0 matrix renders as empty.
// Errors: ErrBadShape.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if rows < 0 {
		return validatorErrorf("ValidateShape: Rows", ErrBadShape)
	}
	if cols < 0 {
		return validatorErrorf("ValidateShape: Columns", ErrBadShape)
	}

	return nil
}

// ValidateRegion ensures 0 ≤ R0 ≤ RF ≤ rows and 0 ≤ C0 ≤ CF ≤ cols.
//
// Implementation: assumes rows and cols already passed ValidateShape.
// Errors: ErrBadRegion, with the offending region in the message.
// Complexity: O(1).
func ValidateRegion(reg Region, rows, cols int) error {
	if reg.R0 < 0 || reg.R0 > reg.RF || reg.RF > rows {
		return validatorErrorf(fmt.Sprintf("ValidateRegion: Rows %v of %d", reg, rows), ErrBadRegion)
	}
	if reg.C0 < 0 || reg.C0 > reg.CF || reg.CF > cols {
		return validatorErrorf(fmt.Sprintf("ValidateRegion: Columns %v of %d", reg, cols), ErrBadRegion)
	}

	return nil
}
