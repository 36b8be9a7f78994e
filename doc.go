// Package matprint turns flat numeric buffers into readable text matrices,
// from quick debug dumps to framed corner previews of very large data.
//
// 🚀 What is matprint?
//
//	A small, allocation-conscious toolkit that brings together:
//		• Width estimation: columns a number needs, per value or per buffer
//		• Cell formatting: fixed-point text centered in a fixed width
//		• Delimited layout: right-aligned cells followed by a delimiter
//		• Boxed layout: centered cells inside a "+", "-", "|" grid
//		• Corner preview: the boxed layout over a top-left block only
//
// ✨ Why choose matprint?
//
//   - Generic over every built-in integer and float type
//   - Views, not copies - the caller's buffer is read in place
//   - Explicit errors - bad regions and short buffers never panic
//   - Terminal-aware - lipgloss border styles, runewidth-correct padding
//
// Under the hood, everything is organized under three subpackages:
//
//	numfmt/  Number constraint, Kind, Width/OptimalWidth, Text/Cell/Center
//	matrix/  Dense[T], DecimalDense, FromGonum, Region, validators, sentinels
//	render/  Delimited, Boxed, Corner and their functional options
//
// Quick start:
//
//	data := []float64{3.14159, 2.71828, 1.41421, 0.57721, -1, 42}
//	_ = render.BoxedSlice(os.Stdout, data, 3, 2, render.WithPrecision(2))
//
// See the package examples for exact outputs.
package matprint
