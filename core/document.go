package core

// Document is the input value received from the host application: the unit
// sequence, the seed spans, an optional label allow-list, and rendering
// options. The unit sequence is immutable for the lifetime of an editing
// session.
//
// Addressing granularity is chosen by the host: pre-tokenized input goes in
// Units, raw text goes in Text and is addressed character by character
// (grapheme clusters). Units wins when both are set.
type Document struct {
	Units          []string    `json:"units,omitempty"`
	Text           string      `json:"text,omitempty"`
	Spans          []SpanValue `json:"spans"`
	AcceptedLabels []string    `json:"acceptedLabels,omitempty"`
	Options        *Options    `json:"options,omitempty"`
}

// UnitModel returns the unit model the document's granularity selects.
func (d Document) UnitModel() UnitModel {
	if len(d.Units) == 0 && d.Text != "" {
		return Graphemes(d.Text)
	}
	return Tokens(d.Units)
}

// Options carries host-supplied rendering configuration. Zero values mean
// "use the default"; WithDefaults resolves them.
type Options struct {
	Colors      map[string]string `json:"colors,omitempty"`
	BaseOffset  int               `json:"baseOffset,omitempty"`
	LabelOffset int               `json:"labelOffset,omitempty"`
	SlotStep    int               `json:"slotStep,omitempty"`
}

// Default projection geometry.
const (
	DefaultBaseOffset  = 40
	DefaultLabelOffset = 20
	DefaultSlotStep    = 17
)

// WithDefaults returns a copy of the options with unset fields resolved to
// their defaults. A nil receiver yields all defaults.
func (o *Options) WithDefaults() Options {
	out := Options{
		BaseOffset:  DefaultBaseOffset,
		LabelOffset: DefaultLabelOffset,
		SlotStep:    DefaultSlotStep,
	}
	if o == nil {
		return out
	}
	out.Colors = o.Colors
	if o.BaseOffset > 0 {
		out.BaseOffset = o.BaseOffset
	}
	if o.LabelOffset > 0 {
		out.LabelOffset = o.LabelOffset
	}
	if o.SlotStep > 0 {
		out.SlotStep = o.SlotStep
	}
	return out
}
