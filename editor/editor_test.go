package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forward-it/ner-span-annotator/core"
)

func tokens(units ...string) core.UnitModel {
	return core.Tokens(units)
}

func newTestEditor(accepted ...string) *Editor {
	return New(tokens("Barack", "Obama", "visited", "Paris", "today"), accepted)
}

func TestLoad_FiltersUnacceptedLabels(t *testing.T) {
	e := newTestEditor("PERSON", "ORG")
	e.Load([]core.SpanValue{
		{Start: 0, End: 1, Label: "PERSON"},
		{Start: 2, End: 3, Label: "LOC"},
	})

	values := e.Values()
	require.Len(t, values, 1)
	assert.Equal(t, core.SpanValue{Start: 0, End: 1, Label: "PERSON"}, values[0])
}

func TestLoad_DropsInvalidRanges(t *testing.T) {
	e := newTestEditor()
	e.Load([]core.SpanValue{
		{Start: 2, End: 2, Label: "A"},  // collapsed
		{Start: 3, End: 1, Label: "B"},  // inverted
		{Start: 0, End: 99, Label: "C"}, // past the sequence
		{Start: -1, End: 2, Label: "D"}, // negative
		{Start: 1, End: 3, Label: "OK"},
	})

	values := e.Values()
	require.Len(t, values, 1)
	assert.Equal(t, "OK", values[0].Label)
}

func TestLoad_NoFilterWithoutAcceptedLabels(t *testing.T) {
	e := newTestEditor()
	e.Load([]core.SpanValue{{Start: 0, End: 1, Label: "ANYTHING"}})
	assert.Len(t, e.Values(), 1)
}

func TestFromDocument_DeliversInitialValues(t *testing.T) {
	doc := core.Document{
		Units:          []string{"Barack", "Obama", "visited", "Paris"},
		AcceptedLabels: []string{"PERSON"},
		Spans: []core.SpanValue{
			{Start: 0, End: 2, Label: "PERSON"},
			{Start: 3, End: 4, Label: "GPE"},
		},
	}

	var got [][]core.SpanValue
	FromDocument(doc, func(values []core.SpanValue) {
		got = append(got, values)
	})

	require.Len(t, got, 1, "loading the document emits once")
	require.Len(t, got[0], 1)
	assert.Equal(t, core.SpanValue{Start: 0, End: 2, Label: "PERSON"}, got[0][0])
}

func TestValues_SortedAndStripped(t *testing.T) {
	e := newTestEditor()
	e.Load([]core.SpanValue{
		{Start: 3, End: 4, Label: "GPE"},
		{Start: 0, End: 2, Label: "PERSON"},
	})

	values := e.Values()
	require.Len(t, values, 2)
	assert.Equal(t, 0, values[0].Start, "values must come out in layout order")
	assert.Equal(t, 3, values[1].Start)
}

func TestOnChange_EmittedAfterEveryMutation(t *testing.T) {
	e := newTestEditor("PERSON")
	var emissions [][]core.SpanValue
	e.OnChange = func(v []core.SpanValue) { emissions = append(emissions, v) }

	e.Load(nil)
	require.Len(t, emissions, 1)

	id, ok := e.CreateFromRange(0, 2)
	require.True(t, ok)
	assert.Len(t, emissions, 2)

	e.ApproveEdit(id)
	assert.Len(t, emissions, 3)

	e.MoveEnd(id, Right)
	assert.Len(t, emissions, 4)

	e.Remove(id)
	require.Len(t, emissions, 5)
	assert.Empty(t, emissions[4])
}

func TestSpansAt(t *testing.T) {
	e := newTestEditor()
	e.Load([]core.SpanValue{
		{Start: 0, End: 3, Label: "LONG"},
		{Start: 1, End: 2, Label: "SHORT"},
	})

	at := e.SpansAt(1)
	require.Len(t, at, 2)
	assert.Equal(t, "LONG", at[0].Label)

	assert.Empty(t, e.SpansAt(4))
}

func TestInvariantPreservedUnderMutationSequence(t *testing.T) {
	e := newTestEditor("PERSON", "ORG")
	e.Load([]core.SpanValue{
		{Start: 0, End: 2, Label: "PERSON"},
		{Start: 1, End: 4, Label: "ORG"},
	})

	id, ok := e.CreateFromRange(2, 5)
	require.True(t, ok)

	// Hammer the boundaries well past every edge.
	for i := 0; i < 10; i++ {
		e.MoveStart(id, Left)
		e.MoveEnd(id, Right)
	}
	for i := 0; i < 10; i++ {
		e.MoveStart(id, Right)
		e.MoveEnd(id, Left)
	}
	e.ApproveEdit(id)

	length := e.Units().Len()
	for _, s := range e.Spans() {
		assert.True(t, s.Valid(length), "span %+v violates the invariant", s)
	}
}
