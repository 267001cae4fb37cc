package screen

import (
	tea "charm.land/bubbletea/v2"

	"medquiz/internal/ui/layout"
)

// Screen is implemented by every application screen.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns the updated screen plus a command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface for screens that supply custom
// footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
