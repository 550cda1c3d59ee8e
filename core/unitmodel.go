package core

import (
	"strings"

	"github.com/rivo/uniseg"
)

// UnitModel defines the addressing granularity over which span boundaries
// move. The layout engine and the editor are parameterized by it, so token-
// and character-addressed documents share one implementation. StepBack and
// StepForward move a boundary index by one step in the model's granularity;
// both clamp to [0, Len()] and return the input index when no further
// movement is possible.
type UnitModel interface {
	Len() int
	Unit(i int) string
	Units() []string
	StepBack(i int) int
	StepForward(i int) int
}

// tokenModel addresses the sequence token by token; a boundary step is a
// single token.
type tokenModel struct {
	units []string
}

// Tokens returns a unit model over a pre-tokenized sequence.
func Tokens(units []string) UnitModel {
	return &tokenModel{units: units}
}

func (m *tokenModel) Len() int { return len(m.units) }

func (m *tokenModel) Unit(i int) string {
	if i < 0 || i >= len(m.units) {
		return ""
	}
	return m.units[i]
}

func (m *tokenModel) Units() []string { return m.units }

func (m *tokenModel) StepBack(i int) int {
	if i <= 0 {
		return 0
	}
	return i - 1
}

func (m *tokenModel) StepForward(i int) int {
	if i >= len(m.units) {
		return len(m.units)
	}
	return i + 1
}

// graphemeModel addresses the text character by character, where a character
// is a grapheme cluster. A boundary step is one semantic word: stepping back
// skips a run of whitespace then the run of non-whitespace before it;
// stepping forward skips the current run of non-whitespace then the
// whitespace after it.
type graphemeModel struct {
	units []string
}

// Graphemes returns a unit model over the grapheme clusters of text.
func Graphemes(text string) UnitModel {
	var units []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		units = append(units, gr.Str())
	}
	return &graphemeModel{units: units}
}

func (m *graphemeModel) Len() int { return len(m.units) }

func (m *graphemeModel) Unit(i int) string {
	if i < 0 || i >= len(m.units) {
		return ""
	}
	return m.units[i]
}

func (m *graphemeModel) Units() []string { return m.units }

func (m *graphemeModel) isSpace(i int) bool {
	return strings.TrimSpace(m.units[i]) == ""
}

func (m *graphemeModel) StepBack(i int) int {
	for i > 0 && m.isSpace(i-1) {
		i--
	}
	for i > 0 && !m.isSpace(i-1) {
		i--
	}
	return i
}

func (m *graphemeModel) StepForward(i int) int {
	for i < len(m.units) && !m.isSpace(i) {
		i++
	}
	for i < len(m.units) && m.isSpace(i) {
		i++
	}
	return i
}
