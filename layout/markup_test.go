package layout

import (
	"fmt"
	"testing"

	"github.com/forward-it/ner-span-annotator/core"
)

func TestAssemble_BasicScenario(t *testing.T) {
	units := []string{"Barack", "Obama", "visited", "Paris"}
	spans := []core.Span{
		{ID: 1, Start: 0, End: 2, Label: "PERSON"},
		{ID: 2, Start: 3, End: 4, Label: "GPE"},
	}

	positions := Assemble(units, spans)
	if len(positions) != 4 {
		t.Fatalf("expected 4 positions, got %d", len(positions))
	}

	p0 := positions[0]
	if len(p0.Entries) != 1 {
		t.Fatalf("position 0: expected 1 entry, got %d", len(p0.Entries))
	}
	if e := p0.Entries[0]; !e.Start || e.Slot != 1 || e.Label != "PERSON" {
		t.Errorf("position 0: unexpected entry %+v", e)
	}

	p1 := positions[1]
	if len(p1.Entries) != 1 || p1.Entries[0].Start {
		t.Errorf("position 1 should continue the span without a start flag: %+v", p1.Entries)
	}
	if p1.Entries[0].Slot != 1 {
		t.Errorf("slot must stay frozen while the span is open, got %d", p1.Entries[0].Slot)
	}

	if len(positions[2].Entries) != 0 || !positions[2].Plain() {
		t.Errorf("uncovered position should be plain: %+v", positions[2])
	}

	p3 := positions[3]
	if len(p3.Entries) != 1 || !p3.Entries[0].Start || p3.Entries[0].Label != "GPE" {
		t.Errorf("position 3: unexpected entries %+v", p3.Entries)
	}
}

func TestAssemble_WhitespaceUnits(t *testing.T) {
	units := []string{"New", " ", "York"}
	spans := []core.Span{{ID: 1, Start: 0, End: 3, Label: "GPE"}}

	positions := Assemble(units, spans)

	ws := positions[1]
	if !ws.Whitespace {
		t.Error("whitespace unit not flagged")
	}
	if len(ws.Entries) != 1 {
		t.Errorf("whitespace unit inside a span still carries its entries, got %+v", ws.Entries)
	}
	if !ws.Plain() {
		t.Error("whitespace unit must render plain even inside a span")
	}
	if positions[0].Plain() || positions[2].Plain() {
		t.Error("covered non-whitespace units must not be plain")
	}
}

func TestAssemble_EntryOrderFollowsSort(t *testing.T) {
	units := []string{"a", "b", "c"}
	spans := []core.Span{
		{ID: 1, Start: 0, End: 2, Label: "ORG"},
		{ID: 2, Start: 0, End: 3, Label: "EVENT"},
	}

	positions := Assemble(units, spans)
	entries := positions[0].Entries
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Label != "EVENT" || entries[0].Slot != 1 {
		t.Errorf("EVENT should lead with slot 1: %+v", entries[0])
	}
	if entries[1].Label != "ORG" || entries[1].Slot != 2 {
		t.Errorf("ORG should follow with slot 2: %+v", entries[1])
	}
	if positions[0].MaxSlot() != 2 {
		t.Errorf("MaxSlot = %d, want 2", positions[0].MaxSlot())
	}
}

func TestPositions_Restartable(t *testing.T) {
	units := []string{"x", "y", "z"}
	spans := []core.Span{{ID: 1, Start: 0, End: 2, Label: "A"}}
	seq := Positions(units, spans)

	// A partial consumption must not disturb later full iterations.
	for range seq {
		break
	}

	counts := []int{0, 0}
	for pass := range counts {
		for p := range seq {
			if p.Index != counts[pass] {
				t.Fatalf("pass %d: index %d out of order", pass, p.Index)
			}
			counts[pass]++
		}
	}
	if counts[0] != 3 || counts[1] != 3 {
		t.Errorf("expected full sequences, got %v", counts)
	}
}

func TestAssemble_IdempotentRelayout(t *testing.T) {
	units := []string{"one", "two", "three", "four", "five"}
	spans := []core.Span{
		{ID: 1, Start: 0, End: 4, Label: "A"},
		{ID: 2, Start: 1, End: 3, Label: "B"},
		{ID: 3, Start: 2, End: 5, Label: "C"},
	}

	first := fmt.Sprintf("%#v", Assemble(units, spans))
	second := fmt.Sprintf("%#v", Assemble(units, spans))
	if first != second {
		t.Error("re-layout of an unmutated span set changed the output")
	}
}
