package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/forward-it/ner-span-annotator/layout"
)

// TextRenderer draws position markup as plain text: the unit line on top,
// then one underline row and one label row per stacking slot. Colors use
// truecolor ANSI escapes and can be disabled for piped output.
type TextRenderer struct {
	palette *Palette
	Sep     string // Separator between units; " " for tokens, "" for graphemes
	Color   bool
}

// NewTextRenderer creates a token-oriented renderer over a palette.
func NewTextRenderer(palette *Palette) *TextRenderer {
	return &TextRenderer{palette: palette, Sep: " ", Color: true}
}

// cell is one terminal column of a row.
type cell struct {
	ch  rune
	hex string // Foreground color, empty for default
}

// Render produces the multi-row textual projection of the markup.
func (r *TextRenderer) Render(positions []layout.Position) string {
	if len(positions) == 0 {
		return ""
	}

	sepWidth := runewidth.StringWidth(r.Sep)
	cols := make([]int, len(positions))
	widths := make([]int, len(positions))
	total := 0
	for i, p := range positions {
		cols[i] = total
		widths[i] = runewidth.StringWidth(p.Content)
		total += widths[i]
		if i < len(positions)-1 {
			total += sepWidth
		}
	}

	maxSlot := 0
	for _, p := range positions {
		if s := p.MaxSlot(); s > maxSlot {
			maxSlot = s
		}
	}

	var out strings.Builder
	r.writeTextRow(&out, positions)
	for s := 1; s <= maxSlot; s++ {
		line, labels := r.slotRows(positions, cols, widths, total, s)
		writeRow(&out, line, r.Color)
		writeRow(&out, labels, r.Color)
	}
	return out.String()
}

func (r *TextRenderer) writeTextRow(out *strings.Builder, positions []layout.Position) {
	for i, p := range positions {
		out.WriteString(p.Content)
		if i < len(positions)-1 {
			out.WriteString(r.Sep)
		}
	}
	out.WriteByte('\n')
}

// slotRows builds the underline row and label row for one slot.
func (r *TextRenderer) slotRows(positions []layout.Position, cols, widths []int, total, slot int) ([]cell, []cell) {
	line := blankRow(total)
	labels := blankRow(total)

	for i, p := range positions {
		e, ok := entryAtSlot(p, slot)
		if !ok || p.Whitespace {
			continue
		}
		hex := r.palette.Color(e.Label)
		for c := cols[i]; c < cols[i]+widths[i] && c < total; c++ {
			line[c] = cell{ch: '━', hex: hex}
		}
		// Bridge the separator gap when the same span continues into the
		// next unit.
		if i < len(positions)-1 {
			if next, ok := entryAtSlot(positions[i+1], slot); ok && next.ID == e.ID && !positions[i+1].Whitespace {
				for c := cols[i] + widths[i]; c < cols[i+1] && c < total; c++ {
					line[c] = cell{ch: '━', hex: hex}
				}
			}
		}
		if e.Start {
			labels = overlay(labels, cols[i], e.Label, hex)
		}
	}
	return line, labels
}

func entryAtSlot(p layout.Position, slot int) (layout.Entry, bool) {
	for _, e := range p.Entries {
		if e.Slot == slot {
			return e, true
		}
	}
	return layout.Entry{}, false
}

func blankRow(width int) []cell {
	row := make([]cell, width)
	for i := range row {
		row[i] = cell{ch: ' '}
	}
	return row
}

// overlay writes text into a row starting at col, growing the row when the
// text runs past its end.
func overlay(row []cell, col int, text string, hex string) []cell {
	for _, ch := range text {
		for col >= len(row) {
			row = append(row, cell{ch: ' '})
		}
		row[col] = cell{ch: ch, hex: hex}
		col += runewidth.RuneWidth(ch)
	}
	return row
}

func writeRow(out *strings.Builder, row []cell, color bool) {
	// Trim trailing blanks
	end := len(row)
	for end > 0 && row[end-1].ch == ' ' {
		end--
	}

	current := ""
	for _, c := range row[:end] {
		if color && c.hex != current {
			if c.hex == "" {
				out.WriteString("\033[0m")
			} else {
				r, g, b := RGB(c.hex)
				fmt.Fprintf(out, "\033[38;2;%d;%d;%dm", r, g, b)
			}
			current = c.hex
		}
		out.WriteRune(c.ch)
	}
	if color && current != "" {
		out.WriteString("\033[0m")
	}
	out.WriteByte('\n')
}
