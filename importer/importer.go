// Package importer reads annotated documents from the formats the annotator
// understands, behind a content-sniffing registry.
package importer

import (
	"fmt"
	"strings"

	"github.com/forward-it/ner-span-annotator/core"
)

// Importer converts input content into a host document.
type Importer interface {
	// CanImport checks if the given content looks like this format.
	CanImport(content string) bool

	// Import parses the content into a document.
	Import(content string) (core.Document, error)

	// FormatName returns the human-readable name of the format.
	FormatName() string

	// FileExtensions returns common file extensions for this format.
	FileExtensions() []string
}

// Registry manages available importers.
type Registry struct {
	importers []Importer
}

// NewRegistry creates a registry with the built-in importers.
func NewRegistry() *Registry {
	return &Registry{
		importers: []Importer{
			NewJSONImporter(),
			NewCoNLLImporter(),
		},
	}
}

// Register adds an importer to the registry.
func (r *Registry) Register(imp Importer) {
	r.importers = append(r.importers, imp)
}

// Detect attempts to detect the format of the given content.
func (r *Registry) Detect(content string) (Importer, error) {
	for _, imp := range r.importers {
		if imp.CanImport(content) {
			return imp, nil
		}
	}
	return nil, fmt.Errorf("unable to detect format")
}

// Import parses content using format auto-detection.
func (r *Registry) Import(content string) (core.Document, error) {
	imp, err := r.Detect(content)
	if err != nil {
		return core.Document{}, err
	}
	return imp.Import(content)
}

// ImportWithFormat parses content as a specific format.
func (r *Registry) ImportWithFormat(content, format string) (core.Document, error) {
	format = strings.ToLower(format)
	for _, imp := range r.importers {
		if strings.ToLower(imp.FormatName()) == format {
			return imp.Import(content)
		}
	}
	return core.Document{}, fmt.Errorf("unknown format: %s", format)
}

// Formats returns the names of the registered formats.
func (r *Registry) Formats() []string {
	formats := make([]string, len(r.importers))
	for i, imp := range r.importers {
		formats[i] = imp.FormatName()
	}
	return formats
}
