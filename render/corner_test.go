// SPDX-License-Identifier: MIT
// Package render_test contains unit tests for the corner preview.
package render_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/matprint/matrix"
	"github.com/katalvlaran/matprint/render"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// TestCorner_Sizes covers clamping and the block-local width.
func TestCorner_Sizes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		size int
		want string
	}{
		{name: "zero", size: 0, want: "+\n"},
		{name: "one cell", size: 1, want: "+-------+\n| 3.142 |\n+-------+\n"},
		{
			name: "two by two",
			size: 2,
			want: "+-------+-------+\n| 3.142 | 2.718 |\n+-------+-------+\n| 1.414 | 0.577 |\n+-------+-------+\n",
		},
		{name: "rows clamp", size: 3, want: floatBoxed},
		{name: "larger than matrix", size: 4, want: floatBoxed},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var sb strings.Builder
			require.NoError(t, render.CornerSlice(&sb, floats, 3, 2, tc.size))
			require.Equal(t, tc.want, sb.String())
		})
	}
}

// TestCorner_MatchesBoxed checks the whole-matrix corner equals Boxed.
func TestCorner_MatchesBoxed(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(ints, 3, 2)
	require.NoError(t, err)

	var full, corner strings.Builder
	require.NoError(t, render.Boxed(&full, m, render.WithFinalSeparator(false)))
	require.NoError(t, render.Corner(&corner, m, 10, render.WithFinalSeparator(false)))
	require.Equal(t, full.String(), corner.String())
}

// TestCorner_NoRows collapses to an empty block.
func TestCorner_NoRows(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	require.NoError(t, render.CornerSlice(&sb, []int{}, 0, 3, 2))
	require.Equal(t, "+\n", sb.String())
}

// TestCorner_RegionIndexesBlock applies WithRegion inside the copied block.
func TestCorner_RegionIndexesBlock(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	require.NoError(t, render.CornerSlice(&sb, floats, 3, 2, 2,
		render.WithRegion(matrix.Region{R0: 1, RF: 2, C0: 0, CF: 2})))
	require.Equal(t, "+-------+-------+\n| 1.414 | 0.577 |\n+-------+-------+\n", sb.String())

	sb.Reset()
	err := render.CornerSlice(&sb, floats, 3, 2, 2,
		render.WithRegion(matrix.Region{R0: 0, RF: 3, C0: 0, CF: 2}))
	require.ErrorIs(t, err, matrix.ErrBadRegion)
	require.Empty(t, sb.String())
}

// TestCorner_Errors covers argument checks and short buffers.
func TestCorner_Errors(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	require.ErrorIs(t, render.CornerSlice(nil, floats, 3, 2, 1), render.ErrNilWriter)
	require.ErrorIs(t, render.Corner(&sb, nil, 1), matrix.ErrNilMatrix)
	require.ErrorIs(t, render.CornerSlice(&sb, floats, 3, 2, -1), matrix.ErrBadShape)
	require.ErrorIs(t, render.CornerSlice(&sb, floats, -1, 2, 1), matrix.ErrBadShape)
	require.ErrorIs(t, render.CornerSlice(&sb, []float64{1, 2, 3}, 2, 2, 2), matrix.ErrOutOfRange)
	require.Empty(t, sb.String())
}

// TestCorner_Decimal previews a decimal matrix.
func TestCorner_Decimal(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDecimalDense([]decimal.Decimal{
		decimal.NewFromInt(7), decimal.RequireFromString("-1000.5"),
		decimal.RequireFromString("0.25"), decimal.NewFromInt(3),
	}, 2, 2)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, render.Corner(&sb, m, 1, render.WithPrecision(1)))
	require.Equal(t, "+-----+\n| 7.0 |\n+-----+\n", sb.String())
}
