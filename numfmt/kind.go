// SPDX-License-Identifier: MIT

package numfmt

import "reflect"

// Number is the set of element types a matrix may hold.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Kind is the numeric category of an element type.
type Kind uint8

const (
	Signed   Kind = iota // int, int8 … int64 and named variants
	Unsigned             // uint, uint8 … uintptr and named variants
	Float32              // float32; formatted with 32-bit shortest rounding
	Float64              // float64
)

// IsFloat reports whether values of this kind carry a fractional part.
func (k Kind) IsFloat() bool { return k == Float32 || k == Float64 }

// String returns a short lowercase name.
func (k Kind) String() string {
	switch k {
	case Signed:
		return "signed"
	case Unsigned:
		return "unsigned"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// KindOf resolves the Kind of T from its underlying type.
// Named types (type Celsius float64) resolve to their underlying kind.
// Complexity: O(1); call once per formatter, not per element.
func KindOf[T Number]() Kind {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Unsigned
	default:
		return Signed
	}
}
