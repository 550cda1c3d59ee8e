// Package core contains the fundamental types shared by the span annotator:
// the span model, the host document exchanged with an embedding application,
// and the unit model that defines the addressing granularity of span
// boundaries.
package core

// Span is a labeled half-open interval [Start, End) over a text unit
// sequence. ID is assigned once at creation and never reused; it is the only
// stable identity across label and boundary edits. ID is internal to the
// annotator and never serialized.
type Span struct {
	ID    int    `json:"-"`
	Start int    `json:"start"` // Inclusive
	End   int    `json:"end"`   // Exclusive
	Label string `json:"label"`
}

// Length returns the number of units the span covers.
func (s Span) Length() int {
	return s.End - s.Start
}

// Covers checks whether unit index i falls inside the span.
func (s Span) Covers(i int) bool {
	return i >= s.Start && i < s.End
}

// Overlaps checks whether two spans share at least one unit.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// Valid checks the span invariant against a sequence of the given length.
func (s Span) Valid(length int) bool {
	return s.Start >= 0 && s.Start < s.End && s.End <= length
}

// Value returns the externally visible form of the span, with the internal
// id stripped.
func (s Span) Value() SpanValue {
	return SpanValue{Start: s.Start, End: s.End, Label: s.Label}
}

// SpanValue is the overlay-stripped span representation exchanged with the
// host. External consumers identify spans purely by value, not identity.
type SpanValue struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Label string `json:"label"`
}
