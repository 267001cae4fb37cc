package components

import (
	"strings"
	"testing"

	"medquiz/internal/quiz"
)

func TestNavigator_Glyphs(t *testing.T) {
	n := NewNavigator([]quiz.Status{
		quiz.StatusCorrect,
		quiz.StatusIncorrect,
		quiz.StatusPointer,
		quiz.StatusEmpty,
	})
	view := n.View()

	for _, glyph := range []string{"✓", "✗", "▸", "·"} {
		if !strings.Contains(view, glyph) {
			t.Errorf("navigator view missing %q glyph:\n%s", glyph, view)
		}
	}
	for _, label := range []string{"Q1", "Q2", "Q3", "Q4"} {
		if !strings.Contains(view, label) {
			t.Errorf("navigator view missing %q label", label)
		}
	}
}

func TestNavigator_WrapsRows(t *testing.T) {
	statuses := make([]quiz.Status, 12)
	view := NewNavigator(statuses).View()

	// 12 cells at 4 per row = 3 rows.
	if rows := len(strings.Split(view, "\n")); rows != 3 {
		t.Errorf("rows = %d, want 3:\n%s", rows, view)
	}
}
