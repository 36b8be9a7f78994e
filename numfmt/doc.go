// Package numfmt estimates how many columns a number needs and renders it
// into a fixed-width cell.
//
// What & Why:
//
//	A matrix printer needs one uniform column width before it writes a single
//	cell. numfmt derives that width from magnitude alone (sign, integer digits,
//	decimal point and fractional digits) so the whole buffer is scanned once
//	for its extremes instead of formatting every element twice.
//
// Key pieces:
//   - Width / OptimalWidth: content width for one value or for a sequence.
//   - Text: fixed-point text for floats, plain digits for integers.
//   - Cell / Center / AlignRight: padding into a slot, never truncating.
//   - Decimal*: the same contracts for shopspring/decimal values.
//
// Integral element types ignore the requested precision everywhere: they never
// grow a decimal point.
//
// Usage:
//
//	w := numfmt.OptimalWidth(data, 3)     // content width of the widest cell
//	s := numfmt.Cell(-1.0, w+2, 3)        // " -1.000 " style centered cell
//
// Complexity:
//   - Width, Text, Cell: O(digits).
//   - OptimalWidth: O(n) single pass for the extremes, then two Width calls.
package numfmt
