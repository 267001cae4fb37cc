package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"medquiz/internal/quiz"
	"medquiz/internal/router"
	"medquiz/internal/screen"
	"medquiz/internal/ui/components"
	"medquiz/internal/ui/layout"
	"medquiz/internal/ui/theme"
)

// Summary is the final snapshot of a finished session.
type Summary struct {
	Total     int
	Attempted int
	Score     int
	Accuracy  string
	Elapsed   string
}

// Build captures the session's final numbers for display.
func Build(s *quiz.Session) Summary {
	m := s.Metrics()
	return Summary{
		Total:     m.Total,
		Attempted: m.Attempted,
		Score:     m.Score,
		Accuracy:  m.AccuracyString(),
		Elapsed:   s.ElapsedString(),
	}
}

// SummaryScreen shows the result of a completed quiz session.
type SummaryScreen struct {
	summary Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary screen.
func New(summary Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to menu"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			return s, func() tea.Msg {
				return router.PopScreenMsg{}
			}
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary

	var b strings.Builder
	b.WriteString(theme.Title.Render("Session complete"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Questions  %d\n", sum.Total))
	b.WriteString(fmt.Sprintf("Attempted  %d\n", sum.Attempted))
	b.WriteString(fmt.Sprintf("Correct    %d\n", sum.Score))
	b.WriteString(fmt.Sprintf("Accuracy   %s\n", sum.Accuracy))
	b.WriteString(fmt.Sprintf("Time       %s\n", sum.Elapsed))
	b.WriteString("\n")

	progress := 0.0
	if sum.Attempted > 0 {
		progress = float64(sum.Score) / float64(sum.Attempted)
	}
	bar := components.NewProgressBar("Accuracy", progress, true, 36)
	b.WriteString(bar.View())

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
