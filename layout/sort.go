// Package layout implements the span layout engine: it orders spans,
// assigns each one a non-colliding stacking slot, and assembles the
// position-indexed markup consumed by renderers. Every function is pure and
// deterministic; the same span set always yields the same layout regardless
// of insertion history, which keeps stacking visually stable across
// re-renders.
package layout

import (
	"sort"

	"github.com/forward-it/ner-span-annotator/core"
)

// SortSpans returns a copy of spans in the canonical layout order:
// ascending start, then descending length (longer spans starting at the same
// position sort first), then ascending label. Duplicate spans fall back to
// ascending id so the order stays deterministic. The input is never
// modified.
func SortSpans(spans []core.Span) []core.Span {
	sorted := make([]core.Span, len(spans))
	copy(sorted, spans)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.Length() != b.Length() {
			return a.Length() > b.Length()
		}
		if a.Label != b.Label {
			return a.Label < b.Label
		}
		return a.ID < b.ID
	})
	return sorted
}
