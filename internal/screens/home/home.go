package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"medquiz/internal/bank"
	"medquiz/internal/router"
	"medquiz/internal/screen"
	"medquiz/internal/screens/history"
	quizscreen "medquiz/internal/screens/quiz"
	"medquiz/internal/store"
	"medquiz/internal/ui/components"
	"medquiz/internal/ui/theme"
)

// HomeScreen is the application's main menu.
type HomeScreen struct {
	menu         components.Menu
	questionBank *bank.Bank
	stats        store.OverallStats
	haveStats    bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. The overall stats line is best-effort; the
// menu works without a usable history store.
func New(b *bank.Bank, eventRepo store.EventRepo) *HomeScreen {
	var stats store.OverallStats
	haveStats := false
	if eventRepo != nil {
		if s, err := eventRepo.Overall(context.Background()); err == nil {
			stats = s
			haveStats = true
		}
	}

	items := []components.MenuItem{
		{Label: "START QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: quizscreen.New(b, eventRepo),
				}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(eventRepo)}
			}
		}, Disabled: eventRepo == nil},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:         components.NewMenu(items),
		questionBank: b,
		stats:        stats,
		haveStats:    haveStats,
	}
}

func (s *HomeScreen) Init() tea.Cmd {
	return nil
}

func (s *HomeScreen) Title() string {
	return "Home"
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("MedQuiz"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Clinical knowledge practice for the MRCP exam"))
	b.WriteString("\n\n")

	if s.haveStats && s.stats.Answers > 0 {
		acc, _ := s.stats.Accuracy()
		statsLine := fmt.Sprintf("%d sessions  ·  %d answers  ·  %.1f%% all-time accuracy",
			s.stats.Sessions, s.stats.Answers, acc)
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(statsLine))
		b.WriteString("\n\n")
	}

	menu := s.menu.View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))

	return b.String()
}
