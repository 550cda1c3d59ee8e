package export

import (
	"encoding/json"

	"github.com/forward-it/ner-span-annotator/core"
	"github.com/forward-it/ner-span-annotator/layout"
)

// JSONExporter writes the document in the host JSON format. Spans are
// emitted as plain values in layout order; internal ids never appear.
type JSONExporter struct{}

// NewJSONExporter creates a JSON document exporter.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Export marshals the units and overlay-stripped spans.
func (e *JSONExporter) Export(units []string, spans []core.Span) (string, error) {
	doc := core.Document{Units: units, Spans: Values(spans)}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Values converts spans to externally visible values in layout order.
func Values(spans []core.Span) []core.SpanValue {
	sorted := layout.SortSpans(spans)
	values := make([]core.SpanValue, len(sorted))
	for i, s := range sorted {
		values[i] = s.Value()
	}
	return values
}

// FileExtension returns the file extension for JSON.
func (e *JSONExporter) FileExtension() string {
	return ".json"
}

// FormatName returns the format name.
func (e *JSONExporter) FormatName() string {
	return "JSON"
}
