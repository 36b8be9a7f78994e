// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matprint/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestFromGonum copies both raw and non-raw gonum matrices.
func TestFromGonum(t *testing.T) {
	t.Parallel()

	src := mat.NewDense(3, 2, append([]float64(nil), sample...))

	d, err := matrix.FromGonum(src)
	require.NoError(t, err)
	require.Equal(t, sample, d.Data())

	src.Set(0, 0, 99)
	require.Equal(t, 3.14159, MustAt(t, d, 0, 0)) // copy, not a view

	tr, err := matrix.FromGonum(src.T())
	require.NoError(t, err)
	require.Equal(t, 2, tr.Rows())
	require.Equal(t, 3, tr.Cols())
	require.Equal(t, []float64{99, 1.41421, -1, 2.71828, 0.57721, 42}, tr.Data())
}

// TestFromGonum_Slice honors the stride of a sliced view.
func TestFromGonum_Slice(t *testing.T) {
	t.Parallel()

	src := mat.NewDense(3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	view := src.Slice(1, 3, 1, 3)

	d, err := matrix.FromGonum(view)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 6, 8, 9}, d.Data())
}

// TestFromGonum_Nil rejects a nil interface.
func TestFromGonum_Nil(t *testing.T) {
	t.Parallel()

	_, err := matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
