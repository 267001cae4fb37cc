package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"medquiz/internal/quiz"
	"medquiz/internal/ui/theme"
)

// navigatorColumns is the number of question cells per row.
const navigatorColumns = 4

// Navigator renders the question navigator grid: one labelled cell per
// position, showing where the user is and how each submitted position went.
type Navigator struct {
	Statuses []quiz.Status
}

// NewNavigator creates a navigator over per-position statuses.
func NewNavigator(statuses []quiz.Status) Navigator {
	return Navigator{Statuses: statuses}
}

// View renders the grid.
func (n Navigator) View() string {
	var b strings.Builder
	for i, status := range n.Statuses {
		b.WriteString(renderCell(i, status))
		if (i+1)%navigatorColumns == 0 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	return strings.TrimRight(b.String(), "\n ")
}

func renderCell(pos int, status quiz.Status) string {
	label := fmt.Sprintf("Q%-2d", pos+1)

	switch status {
	case quiz.StatusCorrect:
		return theme.Correct.Render(label + "✓")
	case quiz.StatusIncorrect:
		return theme.Incorrect.Render(label + "✗")
	case quiz.StatusPointer:
		return theme.Selected.Render(label + "▸")
	default:
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render(label + "·")
	}
}
