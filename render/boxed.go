// SPDX-License-Identifier: MIT

package render

import (
	"io"
	"strings"

	"github.com/katalvlaran/matprint/matrix"
	"github.com/katalvlaran/matprint/numfmt"
)

const fnBoxed = "Boxed"

// Boxed writes g as a grid of centered cells framed by box glyphs.
// Implementation:
//   - Stage 1: validate sink and grid; resolve width (2 + content width
//     unless WithWidth) and region.
//   - Stage 2: build the separator once for the region's column count.
//   - Stage 3: per row, separator line then Vertical + centered cell per
//     column, closing Vertical; write the finished block.
//   - Stage 4: closing separator when WithFinalSeparator(true) (default).
//
// Behavior highlights:
//   - Odd padding puts the extra space right of the text.
//   - An empty region still writes the closing separator (when enabled).
//
// Errors:
//   - Same set as Delimited.
//
// Complexity:
//   - Time O(n + r'*c'), Space O(c'*width).
func Boxed(w io.Writer, g matrix.Grid, opts ...Option) error {
	if err := checkArgs(fnBoxed, w, g); err != nil {
		return err
	}

	return boxed(fnBoxed, w, g, gatherOptions(opts...))
}

// BoxedSlice wraps data as a rows×cols matrix and calls Boxed.
func BoxedSlice[T matrix.Number](w io.Writer, data []T, rows, cols int, opts ...Option) error {
	m, err := matrix.NewDense(data, rows, cols)
	if err != nil {
		return renderErrorf(fnBoxed, err)
	}

	return Boxed(w, m, opts...)
}

// boxed is shared by Boxed and Corner; fn names the public entry in errors.
func boxed(fn string, w io.Writer, g matrix.Grid, o Options) error {
	width, reg, err := o.layout(g, BoxedMargin)
	if err != nil {
		return renderErrorf(fn, err)
	}
	o.tracef("%s: width=%d region=%v %v", fn, width, reg, o)

	sep := o.border(Separator(width, reg.Cols(), o.box)) + "\n"
	bar := o.border(o.box.Vertical)
	cell := g.Cells(o.precision)

	var b strings.Builder
	var i, j int
	for i = reg.R0; i < reg.RF; i++ {
		b.WriteString(sep)
		for j = reg.C0; j < reg.CF; j++ {
			text, err := cell(i, j)
			if err != nil {
				return renderErrorf(fn, err)
			}
			b.WriteString(bar)
			b.WriteString(numfmt.Center(text, width))
		}
		b.WriteString(bar)
		b.WriteByte('\n')
		if err = flushRow(fn, w, &b, i); err != nil {
			return err
		}
	}

	if o.finalSeparator {
		b.WriteString(sep)
		if err = flushRow(fn, w, &b, reg.RF); err != nil {
			return err
		}
	}
	o.tracef("%s: wrote %d rows, final separator %t", fn, reg.Rows(), o.finalSeparator)

	return nil
}
