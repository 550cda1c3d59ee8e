// Package export writes annotated documents out in the formats the
// annotator can produce. Exporters receive the unit sequence and the
// authoritative span set; editing overlays and slot assignments never reach
// an export.
package export

import (
	"fmt"
	"strings"

	"github.com/forward-it/ner-span-annotator/core"
)

// Exporter converts a unit sequence and spans to an output format.
type Exporter interface {
	// Export renders the document in this format.
	Export(units []string, spans []core.Span) (string, error)

	// FileExtension returns the conventional file extension.
	FileExtension() string

	// FormatName returns the format name.
	FormatName() string
}

// ForFormat returns the exporter for a format name.
func ForFormat(format string) (Exporter, error) {
	switch strings.ToLower(format) {
	case "json":
		return NewJSONExporter(), nil
	case "html":
		return NewHTMLExporter(nil), nil
	case "conll":
		return NewCoNLLExporter(), nil
	}
	return nil, fmt.Errorf("unknown export format: %s", format)
}

// Formats returns the supported format names.
func Formats() []string {
	return []string{"json", "html", "conll"}
}
