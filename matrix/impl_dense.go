// SPDX-License-Identifier: MIT

// Package matrix - Dense view (row-major) & safe accessors.
//
// Purpose:
//   - Interpret a caller-owned flat buffer as rows×cols with the explicit index
//     formula i*cols + j.
//   - Guarantee safety at the public surface: At returns errors instead of
//     panicking or reading past the buffer.
//   - Never mutate or retain ownership of the caller's data.
//   - Support copy-based submatrix extraction (Induced) for corner previews.
//
// Notes:
//   - rows*cols == len(data) is the caller's contract and is NOT enforced at
//     construction. A short buffer surfaces as ErrOutOfRange on access.
//
// Complexity quicksheet:
//   - NewDense: O(1); At: O(1); ContentWidth: O(n); Induced: O(r'*c').

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/matprint/numfmt"
)

// ---------- error context tags ----------

const (
	ctxNew    = "NewDense" // ctor tag
	ctxAt     = "At"       // method tag used in error wrappers
	ctxInduce = "Induced"  // copy tag for Dense.Induced
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a read-only row-major view.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is the caller's buffer in row-major order (offset = i*c + j).
type Dense[T Number] struct {
	r, c int // row and column counts
	data []T // caller-owned storage; never written
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Grid         = (*Dense[float64])(nil)
	_ Grid         = (*Dense[int])(nil)
	_ fmt.Stringer = (*Dense[float64])(nil)
)

// NewDense wraps data as a rows×cols matrix without copying.
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrBadShape.
//   - Stage 2: keep a reference to data.
//
// Behavior highlights:
//   - Zero dimensions are legal (empty matrix).
//   - len(data) is not compared with rows*cols; see At.
//
// Errors:
//   - ErrBadShape (wrapped with the requested shape).
//
// Complexity:
//   - Time O(1), Space O(1).
func NewDense[T Number](data []T, rows, cols int) (*Dense[T], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, denseErrorf(ctxNew, rows, cols, err)
	}

	return &Dense[T]{r: rows, c: cols, data: data}, nil
}

// Dims returns (rows, cols).
func (m *Dense[T]) Dims() (rows, cols int) { return m.r, m.c }

// Rows returns the number of rows.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense[T]) Cols() int { return m.c }

// Len returns the length of the backing buffer, which may differ from
// Rows()*Cols() when the caller broke the shape contract.
func (m *Dense[T]) Len() int { return len(m.data) }

// Data returns the backing buffer. Callers must treat it as read-only.
func (m *Dense[T]) Data() []T { return m.data }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Validate): check the offset lies inside the buffer.
// Complexity: O(1).
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}
	if col < 0 || col >= m.c {
		return 0, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}
	idx := row*m.c + col
	if idx >= len(m.data) {
		return 0, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return idx, nil
}

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange for indices outside the shape or the buffer.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// ContentWidth returns numfmt.OptimalWidth over the whole buffer.
func (m *Dense[T]) ContentWidth(precision int) int {
	return numfmt.OptimalWidth(m.data, precision)
}

// Cells returns a CellFunc formatting elements at precision.
// The element kind is resolved here, once, not per cell.
func (m *Dense[T]) Cells(precision int) CellFunc {
	f := numfmt.NewFormatter[T](precision)

	return func(i, j int) (string, error) {
		v, err := m.At(i, j)
		if err != nil {
			return "", err
		}
		return f.Text(v), nil
	}
}

// Induced copies the cells of reg into a new, densely indexed Dense.
// Implementation:
//   - Stage 1: ValidateRegion against the logical shape.
//   - Stage 2: copy row slices; a buffer shorter than the region needs
//     yields ErrOutOfRange.
//
// Behavior highlights:
//   - The result owns its storage; the receiver is untouched.
//   - Zero-area regions produce a legal empty Dense.
//
// Complexity:
//   - Time O(r'*c'), Space O(r'*c').
func (m *Dense[T]) Induced(reg Region) (*Dense[T], error) {
	if err := ValidateRegion(reg, m.r, m.c); err != nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxInduce, err)
	}
	rp, cp := reg.Rows(), reg.Cols()
	if rp == 0 || cp == 0 {
		return &Dense[T]{r: rp, c: cp, data: make([]T, 0)}, nil
	}

	out := make([]T, rp*cp)
	var i, src int
	for i = 0; i < rp; i++ {
		src = (reg.R0+i)*m.c + reg.C0
		if src+cp > len(m.data) {
			return nil, fmt.Errorf("Dense.%s: row %d: %w", ctxInduce, reg.R0+i, ErrOutOfRange)
		}
		copy(out[i*cp:(i+1)*cp], m.data[src:src+cp])
	}

	return &Dense[T]{r: rp, c: cp, data: out}, nil
}

// Corner returns Induced over the top-left rows×cols block as a Grid.
func (m *Dense[T]) Corner(rows, cols int) (Grid, error) {
	d, err := m.Induced(Region{R0: 0, RF: rows, C0: 0, CF: cols})
	if err != nil {
		return nil, err
	}

	return d, nil
}

// String implements fmt.Stringer for easy debugging.
// Cells beyond a short buffer are skipped.
// Complexity: O(r*c) for string construction.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c && base+j < len(m.data); j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprint(&b, m.data[base+j])
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
