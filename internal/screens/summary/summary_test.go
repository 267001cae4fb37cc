package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"medquiz/internal/bank"
	"medquiz/internal/quiz"
	"medquiz/internal/router"
)

func testSummary() Summary {
	return Summary{
		Total:     12,
		Attempted: 10,
		Score:     7,
		Accuracy:  "70.0%",
		Elapsed:   "00:05:42",
	}
}

func TestBuild(t *testing.T) {
	questions := []bank.Question{
		{Text: "Q1?", Options: []string{"A", "B"}, Answer: "A"},
		{Text: "Q2?", Options: []string{"A", "B"}, Answer: "B"},
	}
	b, err := bank.New(questions)
	if err != nil {
		t.Fatalf("bank.New: %v", err)
	}
	sess := quiz.New(b)

	pos := sess.Current()
	q := sess.CurrentQuestion()
	if err := sess.Select(pos, q.Answer); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if _, err := sess.Submit(pos); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	sum := Build(sess)
	if sum.Total != 2 {
		t.Errorf("Total = %d, want 2", sum.Total)
	}
	if sum.Attempted != 1 {
		t.Errorf("Attempted = %d, want 1", sum.Attempted)
	}
	if sum.Score != 1 {
		t.Errorf("Score = %d, want 1", sum.Score)
	}
	if sum.Accuracy != "100.0%" {
		t.Errorf("Accuracy = %q, want %q", sum.Accuracy, "100.0%")
	}
}

func TestSummaryScreen_View(t *testing.T) {
	s := New(testSummary())
	view := s.View(100, 40)

	for _, want := range []string{"Session complete", "12", "10", "70.0%", "00:05:42"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_EnterPops(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected router.PopScreenMsg")
	}
}

func TestSummaryScreen_IgnoresOtherKeys(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if cmd != nil {
		t.Error("expected no command for unrelated keys")
	}
}
