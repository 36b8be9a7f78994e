// SPDX-License-Identifier: MIT

// Package matrix: domain types consumed by renderers.
// This file contains ONLY the element constraint, the Grid surface and the
// Region value. Errors and validators live in dedicated files.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/matprint/numfmt"
)

// Number is the set of element types a Dense view may hold.
type Number = numfmt.Number

// CellFunc returns the formatted text of cell (i, j).
// It returns ErrOutOfRange for indices outside the shape or the buffer.
type CellFunc func(i, j int) (string, error)

// Grid is the read-only surface a renderer needs from a matrix.
//
// Implementations never mutate the caller's data. Complexity notes:
// Dims is O(1); ContentWidth is O(n) over the whole buffer; Cells resolves the
// element kind once and each call of the returned CellFunc is O(digits);
// Corner copies O(rows*cols) elements.
type Grid interface {
	// Dims returns the logical shape.
	Dims() (rows, cols int)

	// ContentWidth returns the optimal content width of the whole buffer
	// at the given precision (0 when empty).
	ContentWidth(precision int) int

	// Cells returns a formatter bound to precision.
	Cells(precision int) CellFunc

	// Corner returns an independent, densely indexed copy of the top-left
	// rows×cols block. Its ContentWidth reflects only the copied values.
	Corner(rows, cols int) (Grid, error)
}

// Region is a half-open rectangle [R0,RF) × [C0,CF) in matrix index space.
type Region struct {
	R0, RF int // first row, one past the last row
	C0, CF int // first column, one past the last column
}

// FullRegion returns the region covering an entire rows×cols matrix.
func FullRegion(rows, cols int) Region {
	return Region{R0: 0, RF: rows, C0: 0, CF: cols}
}

// Rows returns the number of rows the region selects.
func (r Region) Rows() int { return r.RF - r.R0 }

// Cols returns the number of columns the region selects.
func (r Region) Cols() int { return r.CF - r.C0 }

// Empty reports whether the region selects no cell.
func (r Region) Empty() bool { return r.Rows() <= 0 || r.Cols() <= 0 }

// String implements fmt.Stringer, e.g. "[0,3)x[1,2)".
func (r Region) String() string {
	return fmt.Sprintf("[%d,%d)x[%d,%d)", r.R0, r.RF, r.C0, r.CF)
}
