// Package matrix offers read-only matrix views that renderers consume.
//
// The matrix package provides:
//
//   - Dense[T], a zero-copy row-major view over a caller-owned []T for any
//     integer or floating-point element type.
//   - DecimalDense, the same view over shopspring/decimal values.
//   - FromGonum, a copying adapter from any gonum mat.Matrix.
//   - Region and validators for half-open sub-rectangles.
//   - The Grid interface implemented by all of the above.
//
// Views never mutate or own the data. rows*cols == len(data) is the caller's
// contract; a short buffer surfaces as ErrOutOfRange rather than a panic.
//
// See the examples in this package and in render for usage patterns.
package matrix
