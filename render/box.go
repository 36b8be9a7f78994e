// SPDX-License-Identifier: MIT

package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// BoxStyle holds the glyphs of the boxed layout. Each glyph must occupy
// exactly one terminal column so borders line up with padded cells.
type BoxStyle struct {
	Corner     string // joins horizontal runs, e.g. "+"
	Horizontal string // repeated width times per column, e.g. "-"
	Vertical   string // left of every cell and at the row end, e.g. "|"
}

var (
	// ASCIIBox is the default "+", "-", "|" grid.
	ASCIIBox = BoxStyle{Corner: "+", Horizontal: "-", Vertical: "|"}

	// UnicodeBox draws the same grid with light box-drawing characters.
	UnicodeBox = BoxStyle{Corner: "┼", Horizontal: "─", Vertical: "│"}
)

func (s BoxStyle) valid() bool {
	return runewidth.StringWidth(s.Corner) == 1 &&
		runewidth.StringWidth(s.Horizontal) == 1 &&
		runewidth.StringWidth(s.Vertical) == 1
}

// Separator returns the horizontal border for cols cells of the given width:
// Corner followed by, per column, width Horizontal glyphs and a Corner.
// Its display width is 1 + cols*(width+1).
func Separator(width, cols int, style BoxStyle) string {
	var b strings.Builder
	b.WriteString(style.Corner)
	run := strings.Repeat(style.Horizontal, max(width, 0))
	for j := 0; j < cols; j++ {
		b.WriteString(run)
		b.WriteString(style.Corner)
	}

	return b.String()
}
