package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/forward-it/ner-span-annotator/core"
	"github.com/forward-it/ner-span-annotator/layout"
	"github.com/forward-it/ner-span-annotator/render"
)

// HTMLExporter writes a standalone HTML rendering of the span stack. Each
// unit reserves vertical room for its deepest slot; span bars and labels
// are absolutely positioned below the text using the projection metrics.
type HTMLExporter struct {
	palette *render.Palette
	metrics render.Metrics
}

// NewHTMLExporter creates an HTML exporter. A nil palette uses the default
// label colors.
func NewHTMLExporter(palette *render.Palette) *HTMLExporter {
	if palette == nil {
		palette = render.NewPalette(nil)
	}
	return &HTMLExporter{palette: palette, metrics: render.DefaultMetrics()}
}

// WithMetrics overrides the projection geometry.
func (e *HTMLExporter) WithMetrics(m render.Metrics) *HTMLExporter {
	e.metrics = m
	return e
}

const barHeight = 4

// Export renders the markup as a single HTML fragment wrapped in a page.
func (e *HTMLExporter) Export(units []string, spans []core.Span) (string, error) {
	positions := layout.Assemble(units, spans)

	maxSlot := 0
	for _, p := range positions {
		if s := p.MaxSlot(); s > maxSlot {
			maxSlot = s
		}
	}
	reserved := e.metrics.ReservedHeight(maxSlot)

	var out strings.Builder
	out.WriteString("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"></head>\n<body>\n")
	fmt.Fprintf(&out, "<div class=\"spans\" style=\"line-height:1; padding-bottom:%dpx; font-family:sans-serif; white-space:pre-wrap;\">", reserved)

	for i, p := range positions {
		e.writePosition(&out, p)
		if i < len(positions)-1 {
			out.WriteString(" ")
		}
	}

	out.WriteString("</div>\n</body></html>\n")
	return out.String(), nil
}

func (e *HTMLExporter) writePosition(out *strings.Builder, p layout.Position) {
	if p.Plain() {
		out.WriteString(html.EscapeString(p.Content))
		return
	}

	out.WriteString("<span style=\"position:relative; display:inline-block;\">")
	out.WriteString(html.EscapeString(p.Content))
	for _, entry := range p.Entries {
		bg := e.palette.Color(entry.Label)
		top := e.metrics.SlotOffset(entry.Slot)
		fmt.Fprintf(out,
			"<span style=\"position:absolute; top:%dpx; left:0; right:0; height:%dpx; background:%s;\"></span>",
			top, barHeight, bg)
		if entry.Start {
			fmt.Fprintf(out,
				"<span style=\"position:absolute; top:%dpx; left:0; padding:1px 3px; font-size:10px; background:%s; color:%s;\">%s</span>",
				top+barHeight, bg, render.ContrastText(bg), html.EscapeString(entry.Label))
		}
	}
	out.WriteString("</span>")
}

// FileExtension returns the file extension for HTML.
func (e *HTMLExporter) FileExtension() string {
	return ".html"
}

// FormatName returns the format name.
func (e *HTMLExporter) FormatName() string {
	return "HTML"
}
