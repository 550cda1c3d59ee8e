package layout

import "github.com/forward-it/ner-span-annotator/core"

// AssignSlots assigns each span a stacking slot >= 1 such that no two
// overlapping spans share a slot. Spans are considered in the order produced
// by SortSpans and each takes the lowest slot not held by an overlapping
// span already placed; scanning in start order this greedy rule reuses
// closed slots as early as possible, so the highest slot ever used equals
// the maximum number of spans simultaneously open at any position.
//
// Spans sharing an identical [start, end) range stack in sorted order,
// consuming sequential slots. The result maps span id to slot; span ids must
// be unique.
func AssignSlots(sorted []core.Span) map[int]int {
	slots := make(map[int]int, len(sorted))
	for i, s := range sorted {
		taken := make(map[int]bool)
		for _, prev := range sorted[:i] {
			if prev.Overlaps(s) {
				taken[slots[prev.ID]] = true
			}
		}
		slot := 1
		for taken[slot] {
			slot++
		}
		slots[s.ID] = slot
	}
	return slots
}

// MaxSlot returns the highest slot in an assignment, or 0 when no spans are
// placed.
func MaxSlot(slots map[int]int) int {
	max := 0
	for _, s := range slots {
		if s > max {
			max = s
		}
	}
	return max
}
