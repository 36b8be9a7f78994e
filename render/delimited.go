// SPDX-License-Identifier: MIT

package render

import (
	"io"
	"strings"

	"github.com/katalvlaran/matprint/matrix"
	"github.com/katalvlaran/matprint/numfmt"
)

const fnDelimited = "Delimited"

// Delimited writes g as right-aligned cells, each followed by the delimiter,
// one matrix row per line.
// Implementation:
//   - Stage 1: validate sink and grid; resolve width (1 + content width
//     unless WithWidth) and region (full unless WithRegion).
//   - Stage 2: per row, format every selected cell into a local buffer.
//   - Stage 3: write the finished row.
//
// Behavior highlights:
//   - No box characters; output is delimiter-joined text, not escaped CSV.
//   - Cells wider than the width are written unpadded.
//   - An empty matrix or region writes nothing.
//
// Errors:
//   - ErrNilWriter, matrix.ErrNilMatrix, matrix.ErrBadRegion before any output.
//   - matrix.ErrOutOfRange when the buffer is shorter than rows*cols; the
//     failing row is not written.
//   - Writer errors, wrapped with the row index.
//
// Complexity:
//   - Time O(n + r'*c'), Space O(c'*width) for one row.
func Delimited(w io.Writer, g matrix.Grid, opts ...Option) error {
	if err := checkArgs(fnDelimited, w, g); err != nil {
		return err
	}
	o := gatherOptions(opts...)
	width, reg, err := o.layout(g, DelimitedMargin)
	if err != nil {
		return renderErrorf(fnDelimited, err)
	}
	o.tracef("%s: width=%d region=%v %v", fnDelimited, width, reg, o)

	cell := g.Cells(o.precision)
	var b strings.Builder
	var i, j int
	for i = reg.R0; i < reg.RF; i++ {
		for j = reg.C0; j < reg.CF; j++ {
			text, err := cell(i, j)
			if err != nil {
				return renderErrorf(fnDelimited, err)
			}
			b.WriteString(numfmt.AlignRight(text, width))
			b.WriteString(o.delimiter)
		}
		b.WriteByte('\n')
		if err = flushRow(fnDelimited, w, &b, i); err != nil {
			return err
		}
	}
	o.tracef("%s: wrote %d rows", fnDelimited, reg.Rows())

	return nil
}

// DelimitedSlice wraps data as a rows×cols matrix and calls Delimited.
// Errors: matrix.ErrBadShape for negative dimensions, then as Delimited.
func DelimitedSlice[T matrix.Number](w io.Writer, data []T, rows, cols int, opts ...Option) error {
	m, err := matrix.NewDense(data, rows, cols)
	if err != nil {
		return renderErrorf(fnDelimited, err)
	}

	return Delimited(w, m, opts...)
}
