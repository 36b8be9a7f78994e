// SPDX-License-Identifier: MIT

package render

import "errors"

// ErrNilWriter indicates that a nil io.Writer was passed as the sink.
// Matrix-related failures reuse the matrix sentinels (ErrNilMatrix,
// ErrBadShape, ErrBadRegion, ErrOutOfRange); match them with errors.Is.
var ErrNilWriter = errors.New("render: nil writer")
