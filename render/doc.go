// Package render writes numeric matrices as text.
//
// 🚀 Layouts:
//
//	Delimited: right-aligned cells, each followed by a delimiter:
//
//	    3.142,  2.718,
//	    1.414,  0.577,
//	   -1.000, 42.000,
//
//	Boxed: centered cells inside a "+", "-", "|" grid:
//
//	  +--------+--------+
//	  | 3.142  | 2.718  |
//	  +--------+--------+
//
//	Corner: the boxed layout over only the top-left size×size block.
//
// ✨ Key features:
//   - automatic uniform width from the buffer's extremes (numfmt.OptimalWidth)
//   - fixed-point precision for floats; integers never grow a decimal point
//   - half-open sub-regions, explicit widths, custom delimiters
//   - ASCII or Unicode box glyphs, optional lipgloss border styling
//   - optional debug trace through an ll.Logger
//
// ⚙️ Usage:
//
//	err := render.BoxedSlice(os.Stdout, data, 3, 2, render.WithPrecision(2))
//
// Every row is composed in a local buffer and written with one Write call, so
// the sink's own state is never touched and a failing row is never half
// written. Calls share no state and may run concurrently on distinct sinks.
package render
