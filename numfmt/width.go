// SPDX-License-Identifier: MIT

// Package numfmt - content-width estimation.
//
// Purpose:
//   - Compute the minimum number of columns a value needs (sign + integer
//     digits + optional decimal point and fractional digits).
//   - Derive one uniform width for a whole buffer from its two extremes.
//
// Determinism:
//   - Pure functions; no allocation except for non-finite floats.

package numfmt

import (
	"math"
	"strconv"
)

// panicPrecisionNegative is the stable panic message for a negative precision.
const panicPrecisionNegative = "numfmt: precision must be non-negative"

// Formatter bundles the element Kind and the requested precision so the
// kind is resolved once and reused for every cell. Build it with NewFormatter;
// the zero value treats every T as a signed integer.
type Formatter[T Number] struct {
	kind      Kind // resolved from T once
	precision int  // >= 0; ignored for integral kinds
}

// NewFormatter returns a Formatter for T with the given precision.
// Implementation:
//   - Stage 1: reject precision < 0 (programmer error, panics).
//   - Stage 2: resolve KindOf[T] once.
//
// Complexity:
//   - Time O(1), Space O(1).
func NewFormatter[T Number](precision int) Formatter[T] {
	if precision < 0 {
		panic(panicPrecisionNegative)
	}

	return Formatter[T]{kind: KindOf[T](), precision: precision}
}

// Kind returns the resolved numeric kind.
func (f Formatter[T]) Kind() Kind { return f.kind }

// Precision returns the requested fractional digit count.
func (f Formatter[T]) Precision() int { return f.precision }

// Width returns the content width of v.
// Implementation:
//   - Stage 1: one column for a leading minus sign.
//   - Stage 2: integer digits; 1 when |v| ≤ 1, else floor(log10|v|)+1.
//   - Stage 3: floats with precision > 0 add precision+1 (decimal point).
//
// Behavior highlights:
//   - Integral kinds count digits exactly, MinInt64 included.
//   - NaN and ±Inf report the width of their text ("NaN", "+Inf", "-Inf").
//
// Complexity:
//   - Time O(digits), Space O(1).
func (f Formatter[T]) Width(v T) int {
	switch f.kind {
	case Signed:
		return signedWidth(int64(v))
	case Unsigned:
		return uintDigits(uint64(v))
	default:
		return f.floatWidth(float64(v))
	}
}

func (f Formatter[T]) floatWidth(x float64) int {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return DisplayWidth(strconv.FormatFloat(x, 'f', f.precision, 64))
	}

	w := 0
	if x < 0 {
		w++
	}
	w += floatIntDigits(math.Abs(x))
	if f.precision > 0 {
		w += f.precision + 1
	}

	return w
}

// OptimalWidth returns the widest content width among the extremes of seq.
// Implementation:
//   - Stage 1: single pass for min and max (NaN skipped).
//   - Stage 2: max(Width(min), Width(max)).
//
// Behavior highlights:
//   - A very negative minimum may dominate a large maximum and vice versa.
//   - Empty seq returns 0. A seq of only NaN returns Width(NaN).
//
// Complexity:
//   - Time O(n), Space O(1).
func (f Formatter[T]) OptimalWidth(seq []T) int {
	if len(seq) == 0 {
		return 0
	}
	lo, hi, ok := Extremes(seq)
	if !ok {
		return f.Width(seq[0])
	}

	return max(f.Width(lo), f.Width(hi))
}

// Extremes returns the minimum and maximum of seq, skipping NaN.
// ok is false when seq holds no comparable element.
func Extremes[T Number](seq []T) (lo, hi T, ok bool) {
	for _, v := range seq {
		if isNaN(v) {
			continue
		}
		if !ok {
			lo, hi, ok = v, v, true
			continue
		}
		if v < lo {
			lo = v
		} else if v > hi {
			hi = v
		}
	}

	return lo, hi, ok
}

// Width is shorthand for NewFormatter[T](precision).Width(v).
func Width[T Number](v T, precision int) int {
	return NewFormatter[T](precision).Width(v)
}

// OptimalWidth is shorthand for NewFormatter[T](precision).OptimalWidth(seq).
func OptimalWidth[T Number](seq []T, precision int) int {
	return NewFormatter[T](precision).OptimalWidth(seq)
}

// isNaN is the only self-comparison in the package; integers never differ.
func isNaN[T Number](v T) bool { return v != v }

func signedWidth(v int64) int {
	if v >= 0 {
		return uintDigits(uint64(v))
	}
	// -(v+1) stays in range for MinInt64.
	return 1 + uintDigits(uint64(-(v+1))+1)
}

func uintDigits(u uint64) int {
	n := 1
	for u >= 10 {
		u /= 10
		n++
	}

	return n
}

// floatIntDigits returns floor(log10(a))+1 for a > 1 and 1 otherwise.
// Log10 is off by one ulp at some powers of ten, so the estimate is
// corrected against Pow10.
func floatIntDigits(a float64) int {
	if a <= 1 {
		return 1
	}
	d := int(math.Log10(a)) + 1
	for d > 1 && a < math.Pow10(d-1) {
		d--
	}
	for a >= math.Pow10(d) {
		d++
	}

	return d
}
