// SPDX-License-Identifier: MIT

package numfmt

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Text renders v as fixed-point with exactly Precision fractional digits for
// float kinds, and as plain digits for integral kinds.
// Each call builds its own string; no shared formatting state is touched.
func (f Formatter[T]) Text(v T) string {
	switch f.kind {
	case Signed:
		return strconv.FormatInt(int64(v), 10)
	case Unsigned:
		return strconv.FormatUint(uint64(v), 10)
	case Float32:
		return strconv.FormatFloat(float64(v), 'f', f.precision, 32)
	default:
		return strconv.FormatFloat(float64(v), 'f', f.precision, 64)
	}
}

// Cell renders v centered in width columns (see Center).
func (f Formatter[T]) Cell(v T, width int) string {
	return Center(f.Text(v), width)
}

// Text is shorthand for NewFormatter[T](precision).Text(v).
func Text[T Number](v T, precision int) string {
	return NewFormatter[T](precision).Text(v)
}

// Cell is shorthand for NewFormatter[T](precision).Cell(v, width).
func Cell[T Number](v T, width, precision int) string {
	return NewFormatter[T](precision).Cell(v, width)
}

// DisplayWidth returns the number of terminal columns s occupies.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Center pads text with spaces to exactly width columns.
// Left padding is floor(pad/2); the right side takes the remainder, so an odd
// pad puts the extra space on the right.
// Text at least width columns wide is returned unchanged (no truncation).
func Center(text string, width int) string {
	n := DisplayWidth(text)
	if n >= width {
		return text
	}
	pad := width - n
	left := pad / 2

	var b strings.Builder
	b.Grow(len(text) + pad)
	b.WriteString(strings.Repeat(" ", left))
	b.WriteString(text)
	b.WriteString(strings.Repeat(" ", pad-left))

	return b.String()
}

// AlignRight left-pads text with spaces to width columns.
// Text at least width columns wide is returned unchanged.
func AlignRight(text string, width int) string {
	n := DisplayWidth(text)
	if n >= width {
		return text
	}

	return strings.Repeat(" ", width-n) + text
}
