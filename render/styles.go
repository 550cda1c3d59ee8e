package render

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultColor is used for labels absent from the color table.
const DefaultColor = "#dddddd"

// defaultColors covers the common NER label inventory. Host-supplied colors
// override these.
var defaultColors = map[string]string{
	"person":      "#aa9cfc",
	"norp":        "#c887fb",
	"fac":         "#9cc9cc",
	"org":         "#7aecec",
	"gpe":         "#feca74",
	"loc":         "#ff9561",
	"product":     "#bfeeb7",
	"event":       "#ffeb80",
	"work_of_art": "#f0d0ff",
	"law":         "#ff8197",
	"language":    "#ff8197",
	"date":        "#bfe1d9",
	"time":        "#bfe1d9",
	"percent":     "#e4e7d2",
	"money":       "#e4e7d2",
	"quantity":    "#e4e7d2",
	"ordinal":     "#e4e7d2",
	"cardinal":    "#e4e7d2",
	"misc":        "#dddddd",
}

// Palette resolves labels to colors. Lookup is case-insensitive; unknown
// labels and unparseable host colors fall back to DefaultColor.
type Palette struct {
	colors map[string]string
}

// NewPalette builds a palette from a host-supplied label to hex-color map,
// layered over the defaults. Colors that do not parse as hex are dropped.
func NewPalette(colors map[string]string) *Palette {
	p := &Palette{colors: make(map[string]string, len(defaultColors)+len(colors))}
	for label, hex := range defaultColors {
		p.colors[label] = hex
	}
	for label, hex := range colors {
		hex = normalizeHex(hex)
		if _, err := colorful.Hex(hex); err != nil {
			continue
		}
		p.colors[strings.ToLower(label)] = hex
	}
	return p
}

// Color returns the hex color for a label.
func (p *Palette) Color(label string) string {
	if hex, ok := p.colors[strings.ToLower(label)]; ok {
		return hex
	}
	return DefaultColor
}

// ContrastText picks black or white text for a background color, based on
// its lightness. Unparseable colors get black text.
func ContrastText(hex string) string {
	c, err := colorful.Hex(normalizeHex(hex))
	if err != nil {
		return "#000000"
	}
	if l, _, _ := c.Lab(); l < 0.55 {
		return "#ffffff"
	}
	return "#000000"
}

// RGB returns the 8-bit channel values of a hex color, for terminal
// truecolor escapes. Unparseable colors resolve to the default.
func RGB(hex string) (r, g, b uint8) {
	c, err := colorful.Hex(normalizeHex(hex))
	if err != nil {
		c, _ = colorful.Hex(DefaultColor)
	}
	return c.RGB255()
}

func normalizeHex(hex string) string {
	hex = strings.TrimSpace(strings.ToLower(hex))
	if hex != "" && !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	return hex
}
