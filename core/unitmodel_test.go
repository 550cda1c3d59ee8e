package core

import "testing"

func TestTokens_Stepping(t *testing.T) {
	m := Tokens([]string{"Barack", "Obama", "visited", "Paris"})

	if m.Len() != 4 {
		t.Fatalf("Len = %d, want 4", m.Len())
	}
	if m.Unit(1) != "Obama" {
		t.Errorf("Unit(1) = %q", m.Unit(1))
	}
	if m.Unit(-1) != "" || m.Unit(4) != "" {
		t.Error("out-of-range units should be empty")
	}

	tests := []struct {
		name    string
		step    func(int) int
		in, out int
	}{
		{"back one token", m.StepBack, 2, 1},
		{"back clamps at zero", m.StepBack, 0, 0},
		{"forward one token", m.StepForward, 2, 3},
		{"forward clamps at length", m.StepForward, 4, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.step(tt.in); got != tt.out {
				t.Errorf("got %d, want %d", got, tt.out)
			}
		})
	}
}

func TestDocumentUnitModel(t *testing.T) {
	t.Run("units select token addressing", func(t *testing.T) {
		d := Document{Units: []string{"a", "b"}}
		if d.UnitModel().Len() != 2 {
			t.Error("expected a token model over the units")
		}
	})

	t.Run("text selects grapheme addressing", func(t *testing.T) {
		d := Document{Text: "hi there"}
		if d.UnitModel().Len() != 8 {
			t.Errorf("expected one unit per grapheme, got %d", d.UnitModel().Len())
		}
	})

	t.Run("units win over text", func(t *testing.T) {
		d := Document{Units: []string{"one"}, Text: "long raw text"}
		if d.UnitModel().Len() != 1 {
			t.Error("units must take precedence")
		}
	})
}

func TestGraphemes_Segmentation(t *testing.T) {
	m := Graphemes("áb") // a + combining acute, then b

	if m.Len() != 2 {
		t.Fatalf("combining mark should stay with its base: Len = %d", m.Len())
	}
	if m.Unit(0) != "á" {
		t.Errorf("Unit(0) = %q", m.Unit(0))
	}
}

func TestGraphemes_WordStepping(t *testing.T) {
	// Index:      0123456789012
	m := Graphemes("Barack  Obama")

	t.Run("back from word middle reaches word start", func(t *testing.T) {
		if got := m.StepBack(3); got != 0 {
			t.Errorf("StepBack(3) = %d, want 0", got)
		}
	})

	t.Run("back skips whitespace run then the word", func(t *testing.T) {
		if got := m.StepBack(8); got != 0 {
			t.Errorf("StepBack(8) = %d, want 0", got)
		}
	})

	t.Run("back clamps at zero", func(t *testing.T) {
		if got := m.StepBack(0); got != 0 {
			t.Errorf("StepBack(0) = %d, want 0", got)
		}
	})

	t.Run("forward skips word then whitespace run", func(t *testing.T) {
		if got := m.StepForward(0); got != 8 {
			t.Errorf("StepForward(0) = %d, want 8", got)
		}
	})

	t.Run("forward from whitespace reaches next word", func(t *testing.T) {
		if got := m.StepForward(6); got != 8 {
			t.Errorf("StepForward(6) = %d, want 8", got)
		}
	})

	t.Run("forward clamps at length", func(t *testing.T) {
		if got := m.StepForward(8); got != 13 {
			t.Errorf("StepForward(8) = %d, want 13", got)
		}
		if got := m.StepForward(13); got != 13 {
			t.Errorf("StepForward(13) = %d, want 13", got)
		}
	})
}
