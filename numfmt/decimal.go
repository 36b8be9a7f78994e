// SPDX-License-Identifier: MIT

package numfmt

import "github.com/shopspring/decimal"

var decimalOne = decimal.NewFromInt(1)

// DecimalWidth is Width for arbitrary-precision decimals.
// Decimals are always treated as a fractional type: precision > 0 adds
// precision+1 columns.
func DecimalWidth(d decimal.Decimal, precision int) int {
	if precision < 0 {
		panic(panicPrecisionNegative)
	}

	w := 0
	if d.Sign() < 0 {
		w++
	}
	a := d.Abs()
	if a.Cmp(decimalOne) <= 0 {
		w++
	} else {
		w += len(a.Truncate(0).String())
	}
	if precision > 0 {
		w += precision + 1
	}

	return w
}

// OptimalDecimalWidth is OptimalWidth for decimals. Empty seq returns 0.
func OptimalDecimalWidth(seq []decimal.Decimal, precision int) int {
	if len(seq) == 0 {
		if precision < 0 {
			panic(panicPrecisionNegative)
		}
		return 0
	}
	lo, hi := seq[0], seq[0]
	for _, d := range seq[1:] {
		if d.LessThan(lo) {
			lo = d
		} else if d.GreaterThan(hi) {
			hi = d
		}
	}

	return max(DecimalWidth(lo, precision), DecimalWidth(hi, precision))
}

// DecimalText renders d with exactly precision fractional digits.
func DecimalText(d decimal.Decimal, precision int) string {
	if precision < 0 {
		panic(panicPrecisionNegative)
	}

	return d.StringFixed(int32(precision))
}

// DecimalCell renders d centered in width columns.
func DecimalCell(d decimal.Decimal, width, precision int) string {
	return Center(DecimalText(d, precision), width)
}
