package quiz

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"medquiz/internal/bank"
	"medquiz/internal/router"
	"medquiz/internal/screen"
	"medquiz/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	sessionEvents []store.SessionEventData
	answerEvents  []store.AnswerEventData
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}

func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	m.answerEvents = append(m.answerEvents, data)
	return nil
}

func (m *mockEventRepo) QuerySessionResults(_ context.Context, _ store.QueryOpts) ([]store.SessionRecord, error) {
	return nil, nil
}

func (m *mockEventRepo) Overall(_ context.Context) (store.OverallStats, error) {
	return store.OverallStats{}, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testBank(t *testing.T) *bank.Bank {
	t.Helper()
	questions := make([]bank.Question, 5)
	for i := range questions {
		questions[i] = bank.Question{
			Text:        fmt.Sprintf("Question %d?", i+1),
			Options:     []string{"Alpha", "Bravo", "Charlie", "Delta"},
			Answer:      "Bravo",
			Explanation: "Bravo is correct.",
		}
	}
	b, err := bank.New(questions)
	if err != nil {
		t.Fatalf("bank.New: %v", err)
	}
	return b
}

func testQuizScreen(t *testing.T) (*QuizScreen, *mockEventRepo) {
	t.Helper()
	repo := &mockEventRepo{}
	s := New(testBank(t), repo)
	return s, repo
}

// runCmd executes a command and feeds the resulting message back, the way
// the Bubble Tea runtime would.
func runCmd(s screen.Screen, cmd tea.Cmd) (screen.Screen, tea.Msg) {
	if cmd == nil {
		return s, nil
	}
	msg := cmd()
	if msg == nil {
		return s, nil
	}
	updated, _ := s.Update(msg)
	return updated, msg
}

func TestQuizScreen_Title(t *testing.T) {
	s, _ := testQuizScreen(t)
	if s.Title() != "Quiz" {
		t.Errorf("Title = %q, want %q", s.Title(), "Quiz")
	}
}

func TestQuizScreen_Init_RecordsStart(t *testing.T) {
	s, repo := testQuizScreen(t)
	s.Init()

	if len(repo.sessionEvents) != 1 {
		t.Fatalf("session events = %d, want 1", len(repo.sessionEvents))
	}
	ev := repo.sessionEvents[0]
	if ev.Action != "start" {
		t.Errorf("action = %q, want %q", ev.Action, "start")
	}
	if ev.TotalQuestions != 5 {
		t.Errorf("total questions = %d, want 5", ev.TotalQuestions)
	}
}

func TestQuizScreen_SelectAndSubmit(t *testing.T) {
	s, repo := testQuizScreen(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('2'))
	qs := scr.(*QuizScreen)

	pos := qs.session.Current()
	if qs.session.Selected(pos) == "" {
		t.Fatal("expected a selection after pressing 2")
	}

	scr, cmd := qs.Update(specialKey(tea.KeyEnter))
	qs = scr.(*QuizScreen)
	if !qs.session.Submitted(pos) {
		t.Error("expected position to be submitted")
	}

	runCmd(qs, cmd)
	if len(repo.answerEvents) != 1 {
		t.Fatalf("answer events = %d, want 1", len(repo.answerEvents))
	}
	ev := repo.answerEvents[0]
	if ev.ChosenAnswer != qs.session.Selected(pos) {
		t.Errorf("chosen = %q, want %q", ev.ChosenAnswer, qs.session.Selected(pos))
	}
}

func TestQuizScreen_SubmitWithoutSelection_Warns(t *testing.T) {
	s, repo := testQuizScreen(t)

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	qs := scr.(*QuizScreen)

	if qs.warning == "" {
		t.Error("expected a warning after submitting with no selection")
	}
	if qs.session.Submitted(qs.session.Current()) {
		t.Error("position must not be submitted")
	}
	runCmd(qs, cmd)
	if len(repo.answerEvents) != 0 {
		t.Errorf("answer events = %d, want 0", len(repo.answerEvents))
	}
}

func TestQuizScreen_AdvanceGatedUntilSubmit(t *testing.T) {
	s, _ := testQuizScreen(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyRight))
	qs := scr.(*QuizScreen)

	if qs.session.Current() != 0 {
		t.Errorf("current = %d, want 0 (advance must be gated)", qs.session.Current())
	}
	if qs.warning == "" {
		t.Error("expected a warning explaining the gate")
	}

	scr, _ = qs.Update(keyPress('1'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(specialKey(tea.KeyRight))
	qs = scr.(*QuizScreen)

	if qs.session.Current() != 1 {
		t.Errorf("current = %d, want 1 after submit", qs.session.Current())
	}
}

func TestQuizScreen_RetreatAlwaysAllowed(t *testing.T) {
	s, _ := testQuizScreen(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('1'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(specialKey(tea.KeyRight))
	scr, _ = scr.Update(specialKey(tea.KeyLeft))
	qs := scr.(*QuizScreen)

	if qs.session.Current() != 0 {
		t.Errorf("current = %d, want 0 after retreat", qs.session.Current())
	}
}

func TestQuizScreen_SelectionLockedAfterSubmit(t *testing.T) {
	s, _ := testQuizScreen(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('2'))
	qs := scr.(*QuizScreen)
	pos := qs.session.Current()
	chosen := qs.session.Selected(pos)

	scr, _ = qs.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(keyPress('3'))
	qs = scr.(*QuizScreen)

	if got := qs.session.Selected(pos); got != chosen {
		t.Errorf("selection changed after submit: %q, want %q", got, chosen)
	}
}

func TestQuizScreen_Jump(t *testing.T) {
	s, _ := testQuizScreen(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('g'))
	qs := scr.(*QuizScreen)
	if !qs.jumpActive {
		t.Fatal("expected jump input to open")
	}

	qs.jumpInput.Model.SetValue("4")
	scr, _ = qs.Update(specialKey(tea.KeyEnter))
	qs = scr.(*QuizScreen)

	if qs.jumpActive {
		t.Error("expected jump input to close")
	}
	if qs.session.Current() != 3 {
		t.Errorf("current = %d, want 3", qs.session.Current())
	}
}

func TestQuizScreen_JumpOutOfRange_NoMove(t *testing.T) {
	s, _ := testQuizScreen(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('g'))
	qs := scr.(*QuizScreen)
	qs.jumpInput.Model.SetValue("99")
	scr, _ = qs.Update(specialKey(tea.KeyEnter))
	qs = scr.(*QuizScreen)

	if qs.session.Current() != 0 {
		t.Errorf("current = %d, want 0", qs.session.Current())
	}
}

func TestQuizScreen_RestartConfirm(t *testing.T) {
	s, repo := testQuizScreen(t)
	s.Init()

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('1'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(keyPress('r'))
	qs := scr.(*QuizScreen)
	if !qs.confirmRestart {
		t.Fatal("expected restart confirmation")
	}

	oldID := qs.sessionID
	scr, _ = qs.Update(keyPress('y'))
	qs = scr.(*QuizScreen)

	if qs.session.Score() != 0 {
		t.Errorf("score = %d, want 0 after restart", qs.session.Score())
	}
	if qs.session.Current() != 0 {
		t.Errorf("current = %d, want 0 after restart", qs.session.Current())
	}
	if qs.sessionID == oldID {
		t.Error("expected a fresh session id after restart")
	}

	var actions []string
	for _, ev := range repo.sessionEvents {
		actions = append(actions, ev.Action)
	}
	want := []string{"start", "restart", "start"}
	if len(actions) != len(want) {
		t.Fatalf("session events = %v, want %v", actions, want)
	}
	for i := range want {
		if actions[i] != want[i] {
			t.Fatalf("session events = %v, want %v", actions, want)
		}
	}
}

func TestQuizScreen_RestartDismissed(t *testing.T) {
	s, _ := testQuizScreen(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('r'))
	scr, _ = scr.Update(keyPress('n'))
	qs := scr.(*QuizScreen)

	if qs.confirmRestart {
		t.Error("expected restart confirmation to be dismissed")
	}
}

func TestQuizScreen_QuitConfirm_RecordsEnd(t *testing.T) {
	s, repo := testQuizScreen(t)
	s.Init()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	qs := scr.(*QuizScreen)
	if !qs.confirmQuit {
		t.Fatal("expected quit confirmation")
	}

	scr, cmd := qs.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	msg := cmd()
	if _, ok := msg.(router.ReplaceScreenMsg); !ok {
		t.Errorf("msg = %T, want router.ReplaceScreenMsg", msg)
	}

	last := repo.sessionEvents[len(repo.sessionEvents)-1]
	if last.Action != "end" {
		t.Errorf("last action = %q, want %q", last.Action, "end")
	}
	_ = scr
}

func TestQuizScreen_FinishRequiresAllSubmitted(t *testing.T) {
	s, _ := testQuizScreen(t)

	var scr screen.Screen = s
	scr, cmd := scr.Update(keyPress('f'))
	if cmd != nil {
		t.Error("finish must be ignored before every question is submitted")
	}

	for i := 0; i < 5; i++ {
		scr, _ = scr.Update(keyPress('2'))
		scr, _ = scr.Update(specialKey(tea.KeyEnter))
		scr, _ = scr.Update(specialKey(tea.KeyRight))
	}
	qs := scr.(*QuizScreen)
	if !qs.session.Done() {
		t.Fatal("expected session to be done")
	}

	_, cmd = qs.Update(keyPress('f'))
	if cmd == nil {
		t.Error("expected finish command once done")
	}
}

func TestQuizScreen_View_ShowsQuestionAndOptions(t *testing.T) {
	s, _ := testQuizScreen(t)
	view := s.View(120, 40)

	if !strings.Contains(view, "of 5") {
		t.Error("expected position header in view")
	}
	if !strings.Contains(view, "Alpha") || !strings.Contains(view, "Delta") {
		t.Error("expected options in view")
	}
}

func TestQuizScreen_View_ShowsExplanationAfterSubmit(t *testing.T) {
	s, _ := testQuizScreen(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('2'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	qs := scr.(*QuizScreen)

	view := qs.View(120, 40)
	if !strings.Contains(view, "Bravo is correct.") {
		t.Error("expected explanation after submit")
	}
}

func TestQuizScreen_KeyHints(t *testing.T) {
	s, _ := testQuizScreen(t)
	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}

	s.confirmQuit = true
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("confirm hints = %d, want 2", len(hints))
	}
}
