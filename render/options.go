// SPDX-License-Identifier: MIT

// Package render: functional configuration for the renderers.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no shared stream flags.
//   - No sentinel values: auto width and full region are the absence of an
//     explicit setting (hasWidth / hasRegion), never a magic -1.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//     Region bounds depend on the matrix and are checked at render time.
package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/matprint/matrix"
	"github.com/olekukonko/ll"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrecision is the number of fractional digits for float cells.
	DefaultPrecision = 3

	// DefaultDelimiter follows every cell in the delimited layout.
	DefaultDelimiter = ","

	// DefaultFinalSeparator closes a boxed block with a border line.
	DefaultFinalSeparator = true
)

// Margins added to the content width when the width is derived automatically.
const (
	// DelimitedMargin leaves one column between neighbouring cells.
	DelimitedMargin = 1

	// BoxedMargin leaves at least one space on each side of a boxed cell.
	BoxedMargin = 2
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPrecisionInvalid = "render: WithPrecision: precision must be non-negative"
	panicWidthInvalid     = "render: WithWidth: width must be non-negative"
	panicBoxStyleInvalid  = "render: WithBoxStyle: each glyph must be exactly one column wide"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	precision int // >= 0; DefaultPrecision

	width    int  // explicit cell width when hasWidth
	hasWidth bool // false ⇒ margin + content width

	region    matrix.Region // explicit region when hasRegion
	hasRegion bool          // false ⇒ full matrix

	delimiter      string   // delimited layout only
	finalSeparator bool     // boxed layout only
	box            BoxStyle // boxed layout glyphs

	borderStyle    lipgloss.Style // applied to box glyphs when hasBorderStyle
	hasBorderStyle bool

	logger *ll.Logger // nil ⇒ no trace
}

// ---------- Constructors (WithX) ----------

// WithPrecision sets the number of fractional digits for float cells.
// Integral element types ignore it.
//
// Errors:
//   - Panics with a stable message when p < 0.
func WithPrecision(p int) Option {
	if p < 0 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

// WithWidth fixes the cell width instead of deriving it from the data.
// Cells wider than w are written unpadded, never truncated.
//
// Errors:
//   - Panics with a stable message when w < 0.
func WithWidth(w int) Option {
	if w < 0 {
		panic(panicWidthInvalid)
	}

	return func(o *Options) {
		o.width = w
		o.hasWidth = true
	}
}

// WithAutoWidth restores the default: margin + optimal content width of the
// whole buffer.
func WithAutoWidth() Option {
	return func(o *Options) {
		o.width = 0
		o.hasWidth = false
	}
}

// WithRegion restricts rendering to reg. Bounds are validated against the
// matrix at render time and a violation returns matrix.ErrBadRegion before
// anything is written.
//
// Notes:
//   - Auto width still derives from the whole buffer, so columns line up
//     across several region renders of one matrix.
func WithRegion(reg matrix.Region) Option {
	return func(o *Options) {
		o.region = reg
		o.hasRegion = true
	}
}

// WithFullRegion restores the default: render every cell.
func WithFullRegion() Option {
	return func(o *Options) {
		o.region = matrix.Region{}
		o.hasRegion = false
	}
}

// WithDelimiter sets the string written after every delimited cell.
// An empty delimiter is allowed and yields fixed-width columns.
func WithDelimiter(d string) Option {
	return func(o *Options) { o.delimiter = d }
}

// WithFinalSeparator toggles the closing border line of a boxed block.
// Disable it to chain several boxed blocks without a doubled border.
func WithFinalSeparator(on bool) Option {
	return func(o *Options) { o.finalSeparator = on }
}

// WithBoxStyle sets the border glyphs of the boxed layout.
//
// Errors:
//   - Panics with a stable message when a glyph is not one column wide.
func WithBoxStyle(s BoxStyle) Option {
	if !s.valid() {
		panic(panicBoxStyleInvalid)
	}

	return func(o *Options) { o.box = s }
}

// WithBorderStyle renders border glyphs through a lipgloss style (colors,
// bold, faint). Cell text is never styled, so cell widths are unaffected.
func WithBorderStyle(s lipgloss.Style) Option {
	return func(o *Options) {
		o.borderStyle = s
		o.hasBorderStyle = true
	}
}

// WithLogger attaches a trace logger. Renderers log the resolved width,
// precision and region at debug level. A nil logger disables tracing.
func WithLogger(l *ll.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// --------------------------- Option Resolution ---------------------------

// defaultOptions returns the documented defaults (single source of truth).
func defaultOptions() Options {
	return Options{
		precision:      DefaultPrecision,
		delimiter:      DefaultDelimiter,
		finalSeparator: DefaultFinalSeparator,
		box:            ASCIIBox,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults,
// in order (last-writer-wins).
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// layout resolves the cell width and the region for g.
// Implementation:
//   - Stage 1: width = explicit, else margin + g.ContentWidth(precision).
//   - Stage 2: region = explicit, else full; ValidateRegion.
//
// Errors:
//   - matrix.ErrBadRegion (wrapped).
func (o Options) layout(g matrix.Grid, margin int) (int, matrix.Region, error) {
	rows, cols := g.Dims()

	reg := matrix.FullRegion(rows, cols)
	if o.hasRegion {
		reg = o.region
	}
	if err := matrix.ValidateRegion(reg, rows, cols); err != nil {
		return 0, reg, err
	}

	width := o.width
	if !o.hasWidth {
		width = margin + g.ContentWidth(o.precision)
	}

	return width, reg, nil
}

// border renders a box glyph run through the optional lipgloss style.
func (o Options) border(s string) string {
	if !o.hasBorderStyle {
		return s
	}

	return o.borderStyle.Render(s)
}

// tracef forwards to the debug logger when one is attached.
func (o Options) tracef(format string, args ...any) {
	if o.logger == nil {
		return
	}
	o.logger.Debugf(format, args...)
}

// String summarises the resolved options for traces and test failures.
func (o Options) String() string {
	width := "auto"
	if o.hasWidth {
		width = fmt.Sprint(o.width)
	}
	region := "full"
	if o.hasRegion {
		region = o.region.String()
	}

	return fmt.Sprintf("precision=%d width=%s region=%s delimiter=%q final=%t",
		o.precision, width, region, o.delimiter, o.finalSeparator)
}
