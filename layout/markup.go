package layout

import (
	"iter"
	"strings"

	"github.com/forward-it/ner-span-annotator/core"
)

// Entry describes one span active at a position.
type Entry struct {
	ID    int
	Label string
	Start bool // True at the span's first position
	Slot  int  // Stacking slot, frozen for the span's whole extent
}

// Position is the markup record for a single text unit: its content plus an
// entry per span covering it, in sorted span order.
type Position struct {
	Index      int
	Content    string
	Whitespace bool // Content is empty or pure whitespace
	Entries    []Entry
}

// Plain reports whether the position should use simplified rendering: no
// span covers it, or its content is pure whitespace. Whitespace-only units
// inside a span still carry their entries but are skipped by renderers to
// avoid highlighting padding.
func (p Position) Plain() bool {
	return len(p.Entries) == 0 || p.Whitespace
}

// MaxSlot returns the highest slot active at the position, or 0.
func (p Position) MaxSlot() int {
	max := 0
	for _, e := range p.Entries {
		if e.Slot > max {
			max = e.Slot
		}
	}
	return max
}

// Positions assembles the markup for every unit in order. The sequence is
// recomputed fresh on every iteration, carries no state between calls, and
// is restartable.
func Positions(units []string, spans []core.Span) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		sorted := SortSpans(spans)
		slots := AssignSlots(sorted)

		for i, content := range units {
			p := Position{
				Index:      i,
				Content:    content,
				Whitespace: strings.TrimSpace(content) == "",
			}
			for _, s := range sorted {
				if s.Covers(i) {
					p.Entries = append(p.Entries, Entry{
						ID:    s.ID,
						Label: s.Label,
						Start: i == s.Start,
						Slot:  slots[s.ID],
					})
				}
			}
			if !yield(p) {
				return
			}
		}
	}
}

// Assemble collects the full markup into a slice.
func Assemble(units []string, spans []core.Span) []Position {
	positions := make([]Position, 0, len(units))
	for p := range Positions(units, spans) {
		positions = append(positions, p)
	}
	return positions
}
