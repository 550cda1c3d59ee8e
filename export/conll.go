package export

import (
	"fmt"
	"strings"

	"github.com/forward-it/ner-span-annotator/core"
	"github.com/forward-it/ner-span-annotator/layout"
)

// CoNLLExporter writes two-column BIO output. The format cannot express
// overlapping entities, so only the first stacking layer (slot 1) is
// exported; deeper layers are dropped.
type CoNLLExporter struct{}

// NewCoNLLExporter creates a CoNLL BIO exporter.
func NewCoNLLExporter() *CoNLLExporter {
	return &CoNLLExporter{}
}

// Export tags each unit with O, B-LABEL, or I-LABEL.
func (e *CoNLLExporter) Export(units []string, spans []core.Span) (string, error) {
	sorted := layout.SortSpans(spans)
	slots := layout.AssignSlots(sorted)

	tags := make([]string, len(units))
	for i := range tags {
		tags[i] = "O"
	}
	for _, s := range sorted {
		if slots[s.ID] != 1 {
			continue
		}
		for i := s.Start; i < s.End && i < len(units); i++ {
			if i == s.Start {
				tags[i] = "B-" + s.Label
			} else {
				tags[i] = "I-" + s.Label
			}
		}
	}

	var out strings.Builder
	for i, unit := range units {
		fmt.Fprintf(&out, "%s\t%s\n", unit, tags[i])
	}
	return out.String(), nil
}

// FileExtension returns the file extension for CoNLL output.
func (e *CoNLLExporter) FileExtension() string {
	return ".conll"
}

// FormatName returns the format name.
func (e *CoNLLExporter) FormatName() string {
	return "CoNLL"
}
