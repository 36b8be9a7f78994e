// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromGonum copies any gonum matrix into a Dense[float64].
// Implementation:
//   - Stage 1: reject a nil interface (ErrNilMatrix).
//   - Stage 2: fast path for mat.RawMatrixer (row slices copied by stride),
//     fallback through At(i, j) for views such as mat.Transpose.
//
// Behavior highlights:
//   - The result owns its buffer; later writes to m are not observed.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromGonum(m mat.Matrix) (*Dense[float64], error) {
	if m == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilMatrix)
	}
	r, c := m.Dims()
	data := make([]float64, r*c)

	var i, j int
	if rm, ok := m.(mat.RawMatrixer); ok {
		raw := rm.RawMatrix()
		for i = 0; i < r; i++ {
			copy(data[i*c:(i+1)*c], raw.Data[i*raw.Stride:i*raw.Stride+c])
		}
	} else {
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				data[i*c+j] = m.At(i, j)
			}
		}
	}

	return NewDense(data, r, c)
}
