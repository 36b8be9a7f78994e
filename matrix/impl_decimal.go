// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/matprint/numfmt"
	"github.com/shopspring/decimal"
)

const ctxDecimal = "DecimalDense"

// DecimalDense is a read-only row-major view over arbitrary-precision
// decimals. It follows the Dense contract: no copy at construction, bounds
// checks on access, and decimals always format as a fractional type.
type DecimalDense struct {
	r, c int
	data []decimal.Decimal
}

var (
	_ Grid         = (*DecimalDense)(nil)
	_ fmt.Stringer = (*DecimalDense)(nil)
)

// NewDecimalDense wraps data as a rows×cols decimal matrix without copying.
// Errors: ErrBadShape for negative dimensions.
func NewDecimalDense(data []decimal.Decimal, rows, cols int) (*DecimalDense, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxDecimal, rows, cols, err)
	}

	return &DecimalDense{r: rows, c: cols, data: data}, nil
}

// Dims returns (rows, cols).
func (m *DecimalDense) Dims() (rows, cols int) { return m.r, m.c }

// At retrieves the element at (row, col) or ErrOutOfRange.
func (m *DecimalDense) At(row, col int) (decimal.Decimal, error) {
	idx := row*m.c + col
	if row < 0 || row >= m.r || col < 0 || col >= m.c || idx >= len(m.data) {
		return decimal.Zero, fmt.Errorf("%s.%s(%d,%d): %w", ctxDecimal, ctxAt, row, col, ErrOutOfRange)
	}

	return m.data[idx], nil
}

// ContentWidth returns numfmt.OptimalDecimalWidth over the whole buffer.
func (m *DecimalDense) ContentWidth(precision int) int {
	return numfmt.OptimalDecimalWidth(m.data, precision)
}

// Cells returns a CellFunc rendering StringFixed(precision).
func (m *DecimalDense) Cells(precision int) CellFunc {
	if precision < 0 {
		numfmt.DecimalText(decimal.Zero, precision) // panics with the shared message
	}

	return func(i, j int) (string, error) {
		d, err := m.At(i, j)
		if err != nil {
			return "", err
		}
		return numfmt.DecimalText(d, precision), nil
	}
}

// Corner copies the top-left rows×cols block into a new DecimalDense.
func (m *DecimalDense) Corner(rows, cols int) (Grid, error) {
	reg := Region{R0: 0, RF: rows, C0: 0, CF: cols}
	if err := ValidateRegion(reg, m.r, m.c); err != nil {
		return nil, fmt.Errorf("%s.Corner: %w", ctxDecimal, err)
	}
	out := make([]decimal.Decimal, 0, rows*cols)
	if cols > 0 {
		for i := 0; i < rows; i++ {
			src := i * m.c
			if src+cols > len(m.data) {
				return nil, fmt.Errorf("%s.Corner: row %d: %w", ctxDecimal, i, ErrOutOfRange)
			}
			out = append(out, m.data[src:src+cols]...)
		}
	}

	return &DecimalDense{r: rows, c: cols, data: out}, nil
}

// String implements fmt.Stringer using each decimal's exact text.
func (m *DecimalDense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base := i * m.c
		for j := 0; j < m.c && base+j < len(m.data); j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(m.data[base+j].String())
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
