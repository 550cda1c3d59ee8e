package importer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/forward-it/ner-span-annotator/core"
)

// JSONImporter reads the host document format: units, spans, accepted
// labels, and options.
type JSONImporter struct{}

// NewJSONImporter creates a JSON document importer.
func NewJSONImporter() *JSONImporter {
	return &JSONImporter{}
}

// CanImport checks whether the content looks like a JSON object.
func (i *JSONImporter) CanImport(content string) bool {
	return strings.HasPrefix(strings.TrimSpace(content), "{")
}

// Import decodes a host document. Span filtering and range validation are
// the editor's concern, not the decoder's; malformed spans survive decoding
// and are dropped at load time.
func (i *JSONImporter) Import(content string) (core.Document, error) {
	var doc core.Document
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		return core.Document{}, fmt.Errorf("invalid document JSON: %w", err)
	}
	return doc, nil
}

// FormatName returns the format name.
func (i *JSONImporter) FormatName() string {
	return "JSON"
}

// FileExtensions returns common file extensions for JSON documents.
func (i *JSONImporter) FileExtensions() []string {
	return []string{".json"}
}
