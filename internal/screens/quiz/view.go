package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"medquiz/internal/bank"
	qz "medquiz/internal/quiz"
	"medquiz/internal/ui/components"
	"medquiz/internal/ui/layout"
	"medquiz/internal/ui/theme"
)

// optionLabels mirror the on-screen letters for the four answer choices.
var optionLabels = []string{"A", "B", "C", "D", "E", "F"}

func (s *QuizScreen) View(width, height int) string {
	if s.confirmQuit {
		return s.renderConfirm(width, height,
			"End this session?",
			"Your progress will be recorded.")
	}
	if s.confirmRestart {
		return s.renderConfirm(width, height,
			"Restart the quiz?",
			"All answers and the timer will be reset.")
	}

	main := s.renderQuestion(width)

	if layout.IsCompactWidth(width) {
		return main
	}

	sidebar := s.renderSidebar()
	gap := strings.Repeat(" ", 4)
	return lipgloss.JoinHorizontal(lipgloss.Top, main, gap, sidebar)
}

// renderQuestion builds the left column: position, text, options, feedback.
func (s *QuizScreen) renderQuestion(width int) string {
	pos := s.session.Current()
	q := s.session.CurrentQuestion()
	submitted := s.session.Submitted(pos)

	textWidth := width * 3 / 5
	if layout.IsCompactWidth(width) {
		textWidth = width - 8
	}
	if textWidth < 30 {
		textWidth = 30
	}

	var b strings.Builder

	header := fmt.Sprintf("Question %d of %d", pos+1, s.session.Len())
	b.WriteString(theme.Title.Render(header))
	if layout.IsCompactWidth(width) {
		b.WriteString("   " + theme.Hint.Render(s.session.ElapsedString()))
	}
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Width(textWidth).Render(q.Text))
	b.WriteString("\n\n")

	selected := s.session.Selected(pos)
	correctIdx := q.CorrectIndex()

	for i, opt := range q.Options {
		label := optionLabels[i%len(optionLabels)]
		line := fmt.Sprintf(" %s) %s ", label, opt)

		var style lipgloss.Style
		switch {
		case submitted && i == correctIdx:
			style = theme.Correct
		case submitted && opt == selected:
			style = theme.Incorrect
		case submitted:
			style = theme.Unselected
		case i == s.cursor:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	if s.jumpActive {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Jump to question: "))
		b.WriteString(s.jumpInput.View())
		b.WriteString("\n")
	}

	if s.warning != "" {
		b.WriteString("\n")
		b.WriteString(theme.Warning.Render(s.warning))
		b.WriteString("\n")
	}

	if submitted {
		b.WriteString("\n")
		b.WriteString(s.renderFeedback(pos, q, textWidth))
	}

	if s.session.Done() {
		b.WriteString("\n")
		b.WriteString(theme.Warning.Render("All questions answered; press f to finish"))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// renderFeedback shows the verdict and explanation after submission.
func (s *QuizScreen) renderFeedback(pos int, q bank.Question, width int) string {
	correct, _ := s.session.Result(pos)

	var verdict string
	if correct {
		verdict = theme.Correct.Render(" Correct! ")
	} else {
		verdict = theme.Incorrect.Render(" Incorrect ") +
			theme.Hint.Render("  answer: "+q.Answer)
	}

	body := verdict
	if q.Explanation != "" {
		body += "\n\n" + q.Explanation
	}
	return theme.Card.Width(width).Render(body)
}

// renderSidebar builds the right column: timer, score, progress, navigator.
func (s *QuizScreen) renderSidebar() string {
	m := s.session.Metrics()

	var b strings.Builder
	b.WriteString(theme.Title.Render("Session"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Time      %s\n", s.session.ElapsedString()))
	b.WriteString(fmt.Sprintf("Attempted %d/%d\n", m.Attempted, m.Total))
	b.WriteString(fmt.Sprintf("Score     %d\n", m.Score))
	b.WriteString(fmt.Sprintf("Accuracy  %s\n", m.AccuracyString()))
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar("", m.Progress, false, 24).View())
	b.WriteString("\n\n")

	statuses := make([]qz.Status, s.session.Len())
	for i := range statuses {
		statuses[i] = s.session.Status(i)
	}
	b.WriteString(components.Navigator{Statuses: statuses}.View())

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// renderConfirm centers a yes/no prompt.
func (s *QuizScreen) renderConfirm(width, height int, title, detail string) string {
	body := theme.Title.Render(title) + "\n\n" +
		theme.Hint.Render(detail) + "\n\n" +
		theme.Selected.Render(" Y ") + " yes   " +
		theme.Unselected.Render(" N ") + " no"

	card := theme.Card.Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
