package quiz

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/google/uuid"

	"medquiz/internal/bank"
	qz "medquiz/internal/quiz"
	"medquiz/internal/router"
	"medquiz/internal/screen"
	"medquiz/internal/screens/summary"
	"medquiz/internal/store"
	"medquiz/internal/ui/components"
	"medquiz/internal/ui/layout"
)

// warnSelectFirst is the §7-style warning for submitting with no selection.
const warnSelectFirst = "Select an answer before submitting"

// warnSubmitToAdvance explains why forward navigation is locked.
const warnSubmitToAdvance = "Submit this question before moving on"

// QuizScreen runs one quiz session: question display, answer selection and
// submission, navigation, restart, and the live timer.
type QuizScreen struct {
	session   *qz.Session
	eventRepo store.EventRepo
	sessionID string

	// cursor is the highlighted option index at the current position;
	// -1 until the user makes a tentative selection.
	cursor  int
	warning string

	jumpActive bool
	jumpInput  components.TextInput

	confirmRestart bool
	confirmQuit    bool
	finished       bool

	questionShownAt time.Time
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen over the bank. The session is initialized once
// here and survives every re-render; only Restart replaces it.
func New(b *bank.Bank, eventRepo store.EventRepo) *QuizScreen {
	return &QuizScreen{
		session:         qz.New(b),
		eventRepo:       eventRepo,
		sessionID:       uuid.New().String(),
		cursor:          -1,
		questionShownAt: time.Now(),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	if s.eventRepo != nil {
		_ = s.eventRepo.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID:      s.sessionID,
			Action:         "start",
			TotalQuestions: s.session.Len(),
		})
	}
	return tickCmd()
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.confirmRestart {
		return []layout.KeyHint{
			{Key: "Y", Description: "Restart"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.jumpActive {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Go"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Submit"},
		{Key: "←→", Description: "Prev/Next"},
		{Key: "g", Description: "Jump"},
		{Key: "r", Description: "Restart"},
		{Key: "Esc", Description: "Quit"},
	}
	if s.session.Done() {
		hints = append(hints, layout.KeyHint{Key: "f", Description: "Finish"})
	}
	return hints
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if s.finished {
			return s, nil
		}
		// Nothing to mutate: elapsed time derives from the clock at render.
		return s, tickCmd()

	case persistAnswerMsg:
		// Best-effort history; a failed write never interrupts the quiz.
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.jumpActive {
		var cmd tea.Cmd
		s.jumpInput, cmd = s.jumpInput.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.confirmQuit = false
			return s.finish()
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	if s.confirmRestart {
		switch key {
		case "y", "Y":
			s.confirmRestart = false
			return s.restart()
		case "n", "N", "esc":
			s.confirmRestart = false
		}
		return s, nil
	}

	if s.jumpActive {
		switch key {
		case "esc":
			s.closeJump()
			return s, nil
		case "enter":
			if n, ok := s.jumpInput.IntValue(); ok {
				if err := s.session.JumpTo(n - 1); err == nil {
					s.enterPosition()
				}
			}
			s.closeJump()
			return s, nil
		}
		var cmd tea.Cmd
		s.jumpInput, cmd = s.jumpInput.Update(msg)
		return s, cmd
	}

	switch key {
	case "esc":
		s.confirmQuit = true
		return s, nil

	case "r":
		s.confirmRestart = true
		return s, nil

	case "g":
		s.jumpActive = true
		s.jumpInput = components.NewTextInput("question #", true, 3)
		return s, s.jumpInput.Init()

	case "f":
		if s.session.Done() {
			return s.finish()
		}
		return s, nil

	case "up", "k":
		s.moveCursor(-1)
		return s, nil

	case "down", "j":
		s.moveCursor(1)
		return s, nil

	case "1", "2", "3", "4":
		s.setCursor(int(key[0] - '1'))
		return s, nil

	case "a", "b", "c", "d":
		s.setCursor(int(key[0] - 'a'))
		return s, nil

	case "enter":
		return s.submit()

	case "left", "p", "h":
		if s.session.Retreat() {
			s.enterPosition()
		}
		return s, nil

	case "right", "n", "l":
		if s.session.Advance() {
			s.enterPosition()
		} else if !s.session.Submitted(s.session.Current()) {
			s.warning = warnSubmitToAdvance
		}
		return s, nil
	}

	return s, nil
}

// moveCursor shifts the highlighted option and records it as the tentative
// selection. The first movement lands on the first or last option.
func (s *QuizScreen) moveCursor(delta int) {
	pos := s.session.Current()
	if s.session.Submitted(pos) {
		return
	}
	q := s.session.CurrentQuestion()

	next := s.cursor + delta
	if s.cursor < 0 {
		if delta > 0 {
			next = 0
		} else {
			next = len(q.Options) - 1
		}
	}
	if next < 0 || next >= len(q.Options) {
		return
	}
	s.setCursor(next)
}

// setCursor highlights an option by index and records the selection.
func (s *QuizScreen) setCursor(idx int) {
	pos := s.session.Current()
	if s.session.Submitted(pos) {
		return
	}
	q := s.session.CurrentQuestion()
	if idx < 0 || idx >= len(q.Options) {
		return
	}
	s.cursor = idx
	s.warning = ""
	_ = s.session.Select(pos, q.Options[idx])
}

// submit locks in the current selection and persists the answer event.
func (s *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	pos := s.session.Current()
	if s.session.Submitted(pos) {
		return s, nil
	}

	correct, err := s.session.Submit(pos)
	if err != nil {
		// The one user-facing warning: nothing selected yet.
		s.warning = warnSelectFirst
		return s, nil
	}
	s.warning = ""

	if s.eventRepo == nil {
		return s, nil
	}
	q := s.session.CurrentQuestion()
	data := store.AnswerEventData{
		SessionID:     s.sessionID,
		Position:      pos,
		QuestionText:  q.Text,
		CorrectAnswer: q.Answer,
		ChosenAnswer:  s.session.Selected(pos),
		Correct:       correct,
		TimeMs:        int(time.Since(s.questionShownAt).Milliseconds()),
	}
	repo := s.eventRepo
	return s, func() tea.Msg {
		return persistAnswerMsg{Err: repo.AppendAnswerEvent(context.Background(), data)}
	}
}

// enterPosition resets per-position view state after navigation.
func (s *QuizScreen) enterPosition() {
	pos := s.session.Current()
	q := s.session.CurrentQuestion()

	s.warning = ""
	s.cursor = -1
	if sel := s.session.Selected(pos); sel != "" {
		for i, opt := range q.Options {
			if opt == sel {
				s.cursor = i
				break
			}
		}
	}
	if !s.session.Submitted(pos) {
		s.questionShownAt = time.Now()
	}
}

func (s *QuizScreen) closeJump() {
	s.jumpActive = false
	s.jumpInput = s.jumpInput.Reset()
}

// restart discards all progress and begins a fresh session: new shuffle,
// cleared answers, zero score, timer reset.
func (s *QuizScreen) restart() (screen.Screen, tea.Cmd) {
	s.appendSessionResult("restart")

	s.session.Restart()
	s.sessionID = uuid.New().String()
	s.cursor = -1
	s.warning = ""
	s.questionShownAt = time.Now()

	if s.eventRepo != nil {
		_ = s.eventRepo.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID:      s.sessionID,
			Action:         "start",
			TotalQuestions: s.session.Len(),
		})
	}
	return s, nil
}

// finish records the session result and swaps in the summary screen.
func (s *QuizScreen) finish() (screen.Screen, tea.Cmd) {
	s.finished = true
	s.appendSessionResult("end")

	sum := summary.Build(s.session)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}

// appendSessionResult writes an end/restart event with the final counters.
func (s *QuizScreen) appendSessionResult(action string) {
	if s.eventRepo == nil {
		return
	}
	m := s.session.Metrics()
	_ = s.eventRepo.AppendSessionEvent(context.Background(), store.SessionEventData{
		SessionID:      s.sessionID,
		Action:         action,
		TotalQuestions: m.Total,
		Attempted:      m.Attempted,
		CorrectAnswers: m.Score,
		DurationSecs:   int(s.session.Elapsed().Seconds()),
	})
}

// tickCmd schedules the once-per-second timer refresh.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
