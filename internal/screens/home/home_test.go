package home

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"medquiz/internal/bank"
	"medquiz/internal/router"
	"medquiz/internal/store"
)

type stubEventRepo struct {
	stats store.OverallStats
}

func (s *stubEventRepo) AppendSessionEvent(context.Context, store.SessionEventData) error { return nil }
func (s *stubEventRepo) AppendAnswerEvent(context.Context, store.AnswerEventData) error  { return nil }
func (s *stubEventRepo) QuerySessionResults(context.Context, store.QueryOpts) ([]store.SessionRecord, error) {
	return nil, nil
}
func (s *stubEventRepo) Overall(context.Context) (store.OverallStats, error) {
	return s.stats, nil
}

func testBank(t *testing.T) *bank.Bank {
	t.Helper()
	b, err := bank.New([]bank.Question{
		{Text: "Q1?", Options: []string{"A", "B"}, Answer: "A"},
		{Text: "Q2?", Options: []string{"A", "B"}, Answer: "B"},
	})
	if err != nil {
		t.Fatalf("bank.New: %v", err)
	}
	return b
}

func TestHomeScreen_View(t *testing.T) {
	s := New(testBank(t), nil)
	view := s.View(80, 24)

	for _, want := range []string{"MedQuiz", "START QUIZ", "HISTORY", "EXIT"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHomeScreen_StatsLine(t *testing.T) {
	repo := &stubEventRepo{stats: store.OverallStats{Sessions: 3, Answers: 20, Correct: 15}}
	s := New(testBank(t), repo)
	view := s.View(100, 24)

	if !strings.Contains(view, "3 sessions") {
		t.Error("expected stats line with session count")
	}
	if !strings.Contains(view, "75.0%") {
		t.Error("expected stats line with all-time accuracy")
	}
}

func TestHomeScreen_StatsOmittedWithoutHistory(t *testing.T) {
	s := New(testBank(t), nil)
	if strings.Contains(s.View(100, 24), "sessions") {
		t.Error("stats line must be omitted when no history store is available")
	}
}

func TestHomeScreen_StartQuizPushes(t *testing.T) {
	s := New(testBank(t), &stubEventRepo{})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from menu selection")
	}
	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	if push.Screen == nil {
		t.Error("pushed screen should not be nil")
	}
}

func TestHomeScreen_HistorySkippedWithoutStore(t *testing.T) {
	s := New(testBank(t), nil)

	// Down from START QUIZ must land on EXIT, skipping the disabled
	// HISTORY item.
	s.menu, _ = s.menu.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if got := s.menu.Items[s.menu.Selected].Label; got != "EXIT" {
		t.Errorf("selected = %q, want %q", got, "EXIT")
	}
}
