// Package render projects position markup into drawable geometry and
// colors. It holds no state; renderers call it once per position per pass.
package render

import "github.com/forward-it/ner-span-annotator/core"

// Metrics converts stacking slots into vertical geometry.
type Metrics struct {
	BaseOffset  int // Distance from the text baseline to slot 1
	LabelOffset int // Height reserved for the label text itself
	SlotStep    int // Vertical distance between consecutive slots
}

// MetricsFrom extracts projection metrics from resolved host options.
func MetricsFrom(o core.Options) Metrics {
	return Metrics{
		BaseOffset:  o.BaseOffset,
		LabelOffset: o.LabelOffset,
		SlotStep:    o.SlotStep,
	}
}

// DefaultMetrics returns the projection defaults.
func DefaultMetrics() Metrics {
	return MetricsFrom((*core.Options)(nil).WithDefaults())
}

// SlotOffset returns the vertical offset of slot s below the text baseline.
func (m Metrics) SlotOffset(s int) int {
	return m.BaseOffset + m.SlotStep*(s-1)
}

// ReservedHeight returns the total vertical space a position needs to draw
// all slots up to maxSlot. Positions with no active spans reserve nothing
// beyond the base offset.
func (m Metrics) ReservedHeight(maxSlot int) int {
	if maxSlot < 1 {
		return m.BaseOffset
	}
	return m.BaseOffset + m.LabelOffset + m.SlotStep*(maxSlot-1)
}
