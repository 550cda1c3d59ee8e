package layout

import (
	"reflect"
	"testing"

	"github.com/forward-it/ner-span-annotator/core"
)

func TestSortSpans_OrderKey(t *testing.T) {
	t.Run("Ascending start", func(t *testing.T) {
		spans := []core.Span{
			{ID: 1, Start: 3, End: 4, Label: "GPE"},
			{ID: 2, Start: 0, End: 2, Label: "PERSON"},
		}
		sorted := SortSpans(spans)
		if sorted[0].ID != 2 || sorted[1].ID != 1 {
			t.Errorf("wrong order: %v", sorted)
		}
	})

	t.Run("Longer span first at equal start", func(t *testing.T) {
		spans := []core.Span{
			{ID: 1, Start: 0, End: 2, Label: "ORG"},
			{ID: 2, Start: 0, End: 3, Label: "EVENT"},
		}
		sorted := SortSpans(spans)
		if sorted[0].Label != "EVENT" {
			t.Errorf("expected EVENT first, got %s", sorted[0].Label)
		}
	})

	t.Run("Label breaks start and length ties", func(t *testing.T) {
		spans := []core.Span{
			{ID: 1, Start: 0, End: 2, Label: "ORG"},
			{ID: 2, Start: 0, End: 2, Label: "EVENT"},
		}
		sorted := SortSpans(spans)
		if sorted[0].Label != "EVENT" {
			t.Errorf("expected EVENT first, got %s", sorted[0].Label)
		}
	})

	t.Run("Duplicate spans fall back to id", func(t *testing.T) {
		spans := []core.Span{
			{ID: 7, Start: 1, End: 3, Label: "LOC"},
			{ID: 2, Start: 1, End: 3, Label: "LOC"},
		}
		sorted := SortSpans(spans)
		if sorted[0].ID != 2 || sorted[1].ID != 7 {
			t.Errorf("wrong tiebreak order: %v", sorted)
		}
	})
}

// The order must be a function of the span set alone, not of insertion
// history, because slot assignment is order-sensitive.
func TestSortSpans_PureAndStable(t *testing.T) {
	spans := []core.Span{
		{ID: 1, Start: 2, End: 6, Label: "ORG"},
		{ID: 2, Start: 0, End: 4, Label: "PERSON"},
		{ID: 3, Start: 0, End: 4, Label: "EVENT"},
		{ID: 4, Start: 2, End: 3, Label: "DATE"},
	}
	want := SortSpans(spans)

	permutations := [][]int{{3, 2, 1, 0}, {1, 3, 0, 2}, {2, 0, 3, 1}}
	for _, perm := range permutations {
		shuffled := make([]core.Span, len(spans))
		for i, j := range perm {
			shuffled[i] = spans[j]
		}
		if got := SortSpans(shuffled); !reflect.DeepEqual(got, want) {
			t.Errorf("order depends on input permutation %v:\ngot  %v\nwant %v", perm, got, want)
		}
	}
}

func TestSortSpans_DoesNotMutateInput(t *testing.T) {
	spans := []core.Span{
		{ID: 1, Start: 5, End: 6, Label: "A"},
		{ID: 2, Start: 0, End: 1, Label: "B"},
	}
	SortSpans(spans)
	if spans[0].ID != 1 {
		t.Error("input slice was reordered")
	}
}
