// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/matprint/matrix"
)

// renderErrorf tags an error with the public entry point that produced it.
func renderErrorf(fn string, err error) error {
	return fmt.Errorf("render.%s: %w", fn, err)
}

// checkArgs validates the sink and the grid in priority order.
func checkArgs(fn string, w io.Writer, g matrix.Grid) error {
	if w == nil {
		return renderErrorf(fn, ErrNilWriter)
	}
	if err := matrix.ValidateNotNil(g); err != nil {
		return renderErrorf(fn, err)
	}

	return nil
}

// flushRow writes one composed row and resets the buffer.
func flushRow(fn string, w io.Writer, b *strings.Builder, row int) error {
	_, err := io.WriteString(w, b.String())
	b.Reset()
	if err != nil {
		return fmt.Errorf("render.%s: row %d: %w", fn, row, err)
	}

	return nil
}
