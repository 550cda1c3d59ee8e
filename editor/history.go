package editor

import "github.com/forward-it/ner-span-annotator/core"

// History manages undo/redo over snapshots of the span set. Snapshots are
// deep copies, so later mutations never reach back into recorded states.
type History struct {
	states  [][]core.Span
	current int
	max     int
}

// NewHistory creates a history keeping at most max states. max <= 0 selects
// the default of 50.
func NewHistory(max int) *History {
	if max <= 0 {
		max = 50
	}
	return &History{
		states:  make([][]core.Span, 0, max),
		current: -1,
		max:     max,
	}
}

// Save records a new state, truncating any redo tail.
func (h *History) Save(spans []core.Span) {
	snapshot := make([]core.Span, len(spans))
	copy(snapshot, spans)

	if h.current < len(h.states)-1 {
		h.states = h.states[:h.current+1]
	}
	h.states = append(h.states, snapshot)

	if len(h.states) > h.max {
		h.states = h.states[1:]
	} else {
		h.current++
	}
}

// CanUndo returns true if an earlier state exists.
func (h *History) CanUndo() bool {
	return h.current > 0
}

// CanRedo returns true if a later state exists.
func (h *History) CanRedo() bool {
	return h.current < len(h.states)-1
}

// Undo steps back one state and returns a copy of it.
func (h *History) Undo() ([]core.Span, bool) {
	if !h.CanUndo() {
		return nil, false
	}
	h.current--
	return h.snapshot(), true
}

// Redo steps forward one state and returns a copy of it.
func (h *History) Redo() ([]core.Span, bool) {
	if !h.CanRedo() {
		return nil, false
	}
	h.current++
	return h.snapshot(), true
}

func (h *History) snapshot() []core.Span {
	out := make([]core.Span, len(h.states[h.current]))
	copy(out, h.states[h.current])
	return out
}

// Clear drops all history.
func (h *History) Clear() {
	h.states = h.states[:0]
	h.current = -1
}

// Stats returns the current position and total recorded states.
func (h *History) Stats() (current, total int) {
	return h.current + 1, len(h.states)
}

// Undo restores the previous span set. Editing overlays are discarded since
// their spans may no longer exist. Restored state is re-emitted but not
// re-recorded.
func (e *Editor) Undo() bool {
	spans, ok := e.history.Undo()
	if !ok {
		return false
	}
	e.spans = spans
	e.overlays = make(map[int]*overlay)
	e.emit()
	return true
}

// Redo restores the next span set after an undo.
func (e *Editor) Redo() bool {
	spans, ok := e.history.Redo()
	if !ok {
		return false
	}
	e.spans = spans
	e.overlays = make(map[int]*overlay)
	e.emit()
	return true
}

// CanUndo reports whether an undo step is available.
func (e *Editor) CanUndo() bool { return e.history.CanUndo() }

// CanRedo reports whether a redo step is available.
func (e *Editor) CanRedo() bool { return e.history.CanRedo() }
