package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizme/internal/ui/layout"
)

// Screen is one full-window view hosted by the router.
type Screen interface {
	// Init returns an initial command when the screen becomes active.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is implemented by screens with their own footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is implemented by screens that show a status line on the
// right of the header, such as the running score.
type StatusProvider interface {
	Status() string
}
