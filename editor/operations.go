package editor

import "github.com/forward-it/ner-span-annotator/core"

// Direction selects which way a boundary adjustment moves. Left always
// moves the boundary toward index 0 and Right toward the end of the
// sequence, regardless of addressing granularity.
type Direction int

const (
	Left Direction = iota
	Right
)

// String returns the direction name for display.
func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// CreateFromRange creates a span over the half-open unit range [start, end),
// typically derived from a user text selection. Collapsed or out-of-bounds
// ranges are ignored and no span is added; selection races are routine, not
// errors. The new span takes the first accepted label (or the fallback) and
// starts in the Editing state. Returns the new span's id and whether a span
// was created.
func (e *Editor) CreateFromRange(start, end int) (int, bool) {
	s := core.Span{Start: start, End: end, Label: e.defaultLabel()}
	if !s.Valid(e.units.Len()) {
		return 0, false
	}
	s.ID = e.nextID
	e.nextID++
	e.spans = append(e.spans, s)
	e.overlays[s.ID] = &overlay{pending: s.Label}
	e.commit()
	return s.ID, true
}

func (e *Editor) defaultLabel() string {
	if len(e.accepted) > 0 {
		return e.accepted[0]
	}
	return FallbackLabel
}

// IsEditing reports whether the span is in the Editing state.
func (e *Editor) IsEditing(id int) bool {
	_, ok := e.overlays[id]
	return ok
}

// PendingLabel returns the uncommitted label of a span in the Editing state.
func (e *Editor) PendingLabel(id int) (string, bool) {
	if o, ok := e.overlays[id]; ok {
		return o.pending, true
	}
	return "", false
}

// BeginEdit moves a span from Normal to Editing, initializing the pending
// label to the committed one. No-op for unknown ids or spans already being
// edited.
func (e *Editor) BeginEdit(id int) bool {
	i := e.index(id)
	if i < 0 || e.IsEditing(id) {
		return false
	}
	e.overlays[id] = &overlay{pending: e.spans[i].Label}
	return true
}

// SetPendingLabel updates the pending label of a span in the Editing state.
// Nothing is visible externally until ApproveEdit.
func (e *Editor) SetPendingLabel(id int, label string) bool {
	o, ok := e.overlays[id]
	if !ok {
		return false
	}
	o.pending = label
	return true
}

// ApproveEdit commits the pending label and returns the span to Normal.
func (e *Editor) ApproveEdit(id int) bool {
	o, ok := e.overlays[id]
	if !ok {
		return false
	}
	i := e.index(id)
	if i < 0 {
		delete(e.overlays, id)
		return false
	}
	changed := e.spans[i].Label != o.pending
	e.spans[i].Label = o.pending
	delete(e.overlays, id)
	if changed {
		e.commit()
	} else {
		e.emit()
	}
	return true
}

// CancelEdit discards the pending label and returns the span to Normal; the
// committed label is unchanged.
func (e *Editor) CancelEdit(id int) bool {
	if _, ok := e.overlays[id]; !ok {
		return false
	}
	delete(e.overlays, id)
	return true
}

// Remove deletes the span outright, from any state. Unknown ids are a
// no-op.
func (e *Editor) Remove(id int) bool {
	i := e.index(id)
	if i < 0 {
		return false
	}
	e.spans = append(e.spans[:i], e.spans[i+1:]...)
	delete(e.overlays, id)
	e.commit()
	return true
}

// MoveStart moves the span's start boundary one step in the given
// direction. The step size comes from the unit model: one unit for token
// models, one semantic word for grapheme models. An adjustment that would
// collapse the span clamps to keep a width of one unit; one that would
// leave the sequence clamps to its edge.
func (e *Editor) MoveStart(id int, dir Direction) bool {
	i := e.index(id)
	if i < 0 {
		return false
	}
	s := e.spans[i]
	if dir == Left {
		s.Start = e.units.StepBack(s.Start)
	} else {
		s.Start = e.units.StepForward(s.Start)
	}
	if s.Start > s.End-1 {
		s.Start = s.End - 1
	}
	if s.Start < 0 {
		s.Start = 0
	}
	if s == e.spans[i] {
		return false
	}
	e.spans[i] = s
	e.commit()
	return true
}

// MoveEnd moves the span's end boundary one step in the given direction,
// with the same clamping rule as MoveStart.
func (e *Editor) MoveEnd(id int, dir Direction) bool {
	i := e.index(id)
	if i < 0 {
		return false
	}
	s := e.spans[i]
	if dir == Left {
		s.End = e.units.StepBack(s.End)
	} else {
		s.End = e.units.StepForward(s.End)
	}
	if s.End < s.Start+1 {
		s.End = s.Start + 1
	}
	if s.End > e.units.Len() {
		s.End = e.units.Len()
	}
	if s == e.spans[i] {
		return false
	}
	e.spans[i] = s
	e.commit()
	return true
}
