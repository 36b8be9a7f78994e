// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"

	"github.com/katalvlaran/matprint/matrix"
)

const fnCorner = "Corner"

// Corner previews the top-left size×size block of g in the boxed layout.
// Implementation:
//   - Stage 1: clamp to min(size, rows) × min(size, cols); a matrix with no
//     rows yields a 0×0 block.
//   - Stage 2: copy the block into its own compact grid (g.Corner).
//   - Stage 3: render it exactly like Boxed.
//
// Behavior highlights:
//   - The block is its own rectangle: auto width comes from the block's
//     values only, and WithRegion indexes the block, not g.
//
// Errors:
//   - matrix.ErrBadShape when size < 0; otherwise as Boxed.
//
// Complexity:
//   - Time O(size²) for the copy and render, plus O(size²) space.
func Corner(w io.Writer, g matrix.Grid, size int, opts ...Option) error {
	if err := checkArgs(fnCorner, w, g); err != nil {
		return err
	}
	if size < 0 {
		return renderErrorf(fnCorner, fmt.Errorf("size %d: %w", size, matrix.ErrBadShape))
	}

	rows, cols := g.Dims()
	effRows, effCols := min(size, rows), min(size, cols)
	if rows == 0 {
		effCols = 0
	}
	block, err := g.Corner(effRows, effCols)
	if err != nil {
		return renderErrorf(fnCorner, err)
	}

	return boxed(fnCorner, w, block, gatherOptions(opts...))
}

// CornerSlice wraps data as a rows×cols matrix and calls Corner.
func CornerSlice[T matrix.Number](w io.Writer, data []T, rows, cols, size int, opts ...Option) error {
	m, err := matrix.NewDense(data, rows, cols)
	if err != nil {
		return renderErrorf(fnCorner, err)
	}

	return Corner(w, m, size, opts...)
}
