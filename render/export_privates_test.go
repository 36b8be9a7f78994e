// SPDX-License-Identifier: MIT

package render

// Test-Bridge (White-Box) for the options snapshot.
//
// Purpose:
//   - Expose a read-only view of the internal Options to render_test only.
//   - Keep panic messages reachable so tests avoid magic strings.

import "github.com/katalvlaran/matprint/matrix"

// OptionsSnapshot mirrors the unexported Options fields.
type OptionsSnapshot struct {
	Precision      int
	Width          int
	HasWidth       bool
	Region         matrix.Region
	HasRegion      bool
	Delimiter      string
	FinalSeparator bool
	Box            BoxStyle
	HasBorderStyle bool
	HasLogger      bool
}

// GatherOptionsSnapshot_TestOnly resolves opts like the renderers do.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		Precision:      o.precision,
		Width:          o.width,
		HasWidth:       o.hasWidth,
		Region:         o.region,
		HasRegion:      o.hasRegion,
		Delimiter:      o.delimiter,
		FinalSeparator: o.finalSeparator,
		Box:            o.box,
		HasBorderStyle: o.hasBorderStyle,
		HasLogger:      o.logger != nil,
	}
}

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicPrecisionInvalid_TestOnly = panicPrecisionInvalid
	PanicWidthInvalid_TestOnly     = panicWidthInvalid
	PanicBoxStyleInvalid_TestOnly  = panicBoxStyleInvalid
)
