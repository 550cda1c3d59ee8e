package importer

import (
	"regexp"
	"strings"

	"github.com/forward-it/ner-span-annotator/core"
)

// CoNLLImporter reads two-column CoNLL-style BIO input: one token per line
// followed by its tag (O, B-LABEL, or I-LABEL), blank lines between
// sentences. Extra columns between token and tag are ignored; the tag is
// the last column.
type CoNLLImporter struct{}

// NewCoNLLImporter creates a CoNLL BIO importer.
func NewCoNLLImporter() *CoNLLImporter {
	return &CoNLLImporter{}
}

var bioTag = regexp.MustCompile(`^(O|[BI]-[^\s]+)$`)

// CanImport checks whether the first few non-blank lines end in BIO tags.
func (i *CoNLLImporter) CanImport(content string) bool {
	checked := 0
	for _, line := range strings.Split(content, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 || !bioTag.MatchString(fields[len(fields)-1]) {
			return false
		}
		checked++
		if checked >= 5 {
			break
		}
	}
	return checked > 0
}

// Import parses the tokens and materializes a span per contiguous BIO
// entity. Malformed tags are treated as O rather than rejected.
func (i *CoNLLImporter) Import(content string) (core.Document, error) {
	doc := core.Document{}
	open := -1 // Start index of the entity being built
	openLabel := ""

	closeOpen := func() {
		if open >= 0 {
			doc.Spans = append(doc.Spans, core.SpanValue{
				Start: open,
				End:   len(doc.Units),
				Label: openLabel,
			})
			open = -1
		}
	}

	for _, line := range strings.Split(content, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			closeOpen()
			continue
		}
		tag := "O"
		if len(fields) >= 2 {
			tag = fields[len(fields)-1]
		}
		if !bioTag.MatchString(tag) {
			tag = "O"
		}

		switch {
		case tag == "O":
			closeOpen()
		case strings.HasPrefix(tag, "B-"):
			closeOpen()
			open = len(doc.Units)
			openLabel = tag[2:]
		default: // I-
			// An I- tag without a matching open entity begins one.
			if open < 0 || openLabel != tag[2:] {
				closeOpen()
				open = len(doc.Units)
				openLabel = tag[2:]
			}
		}
		doc.Units = append(doc.Units, fields[0])
	}
	closeOpen()
	return doc, nil
}

// FormatName returns the format name.
func (i *CoNLLImporter) FormatName() string {
	return "CoNLL"
}

// FileExtensions returns common file extensions for CoNLL files.
func (i *CoNLLImporter) FileExtensions() []string {
	return []string{".conll", ".iob", ".bio"}
}
