// Package editor maintains the authoritative span set and implements the
// span mutation state machine: creation from selections, label editing with
// a pending/approve cycle, boundary adjustment, removal, and undo/redo.
// Every mutation re-emits the overlay-stripped span set to the host through
// the OnChange callback.
package editor

import (
	"github.com/forward-it/ner-span-annotator/core"
	"github.com/forward-it/ner-span-annotator/layout"
)

// FallbackLabel is used for new spans when no accepted labels are
// configured.
const FallbackLabel = "MISC"

// overlay holds the transient editing state of one span. It is never part
// of the span's externally visible identity.
type overlay struct {
	pending string
}

// Editor owns the span set for one document. All operations run
// synchronously to completion, so a mutation's effects (layout and host
// emission) are fully visible before the next interaction is processed.
type Editor struct {
	units    core.UnitModel
	accepted []string
	spans    []core.Span
	overlays map[int]*overlay
	nextID   int
	history  *History

	// OnChange receives the overlay-stripped span values, in layout order,
	// after every mutation. May be nil.
	OnChange func([]core.SpanValue)
}

// New creates an editor over a unit model with an accepted-label allow-list.
// An empty accepted list disables label filtering.
func New(units core.UnitModel, accepted []string) *Editor {
	return &Editor{
		units:    units,
		accepted: accepted,
		overlays: make(map[int]*overlay),
		nextID:   1,
		history:  NewHistory(0),
	}
}

// FromDocument builds an editor over the document's unit model and loads
// its spans. The onChange callback, which may be nil, is attached before
// loading so the host observes the initial filtered span set.
func FromDocument(doc core.Document, onChange func([]core.SpanValue)) *Editor {
	e := New(doc.UnitModel(), doc.AcceptedLabels)
	e.OnChange = onChange
	e.Load(doc.Spans)
	return e
}

// Load replaces the span set with the given seed values. Spans with labels
// outside the accepted list and spans violating the range invariant are
// dropped silently. Each surviving span receives a fresh id.
func (e *Editor) Load(values []core.SpanValue) {
	e.spans = e.spans[:0]
	e.overlays = make(map[int]*overlay)
	for _, v := range values {
		s := core.Span{Start: v.Start, End: v.End, Label: v.Label}
		if !s.Valid(e.units.Len()) {
			continue
		}
		if !e.labelAccepted(v.Label) {
			continue
		}
		s.ID = e.nextID
		e.nextID++
		e.spans = append(e.spans, s)
	}
	e.history.Clear()
	e.history.Save(e.spans)
	e.emit()
}

func (e *Editor) labelAccepted(label string) bool {
	if len(e.accepted) == 0 {
		return true
	}
	for _, l := range e.accepted {
		if l == label {
			return true
		}
	}
	return false
}

// Units returns the unit model the editor addresses.
func (e *Editor) Units() core.UnitModel { return e.units }

// AcceptedLabels returns the configured allow-list, which may be empty.
func (e *Editor) AcceptedLabels() []string { return e.accepted }

// Spans returns the span set in layout order. The slice is a copy.
func (e *Editor) Spans() []core.Span {
	return layout.SortSpans(e.spans)
}

// Values returns the overlay-stripped span values in layout order.
func (e *Editor) Values() []core.SpanValue {
	sorted := layout.SortSpans(e.spans)
	values := make([]core.SpanValue, len(sorted))
	for i, s := range sorted {
		values[i] = s.Value()
	}
	return values
}

// Positions assembles the current position markup. Recomputed in full on
// each call.
func (e *Editor) Positions() []layout.Position {
	return layout.Assemble(e.units.Units(), e.spans)
}

// Span looks up a span by id.
func (e *Editor) Span(id int) (core.Span, bool) {
	if i := e.index(id); i >= 0 {
		return e.spans[i], true
	}
	return core.Span{}, false
}

// SpansAt returns the spans covering unit index i, in layout order.
func (e *Editor) SpansAt(i int) []core.Span {
	var at []core.Span
	for _, s := range layout.SortSpans(e.spans) {
		if s.Covers(i) {
			at = append(at, s)
		}
	}
	return at
}

func (e *Editor) index(id int) int {
	for i, s := range e.spans {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func (e *Editor) emit() {
	if e.OnChange != nil {
		e.OnChange(e.Values())
	}
}

// commit records the mutated span set in history and notifies the host.
func (e *Editor) commit() {
	e.history.Save(e.spans)
	e.emit()
}
