package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizme/internal/ui/theme"
)

// AnswerInput wraps bubbles/textinput for free-text answers.
type AnswerInput struct {
	Model     textinput.Model
	submitted bool
	valid     bool
}

// NewAnswerInput creates a focused input. charLimit <= 0 means unlimited.
func NewAnswerInput(placeholder string, charLimit int) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	ti.Focus()

	if charLimit > 0 {
		ti.CharLimit = charLimit
	}

	return AnswerInput{Model: ti}
}

// Init returns the initial command.
func (t AnswerInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages. Input is frozen once submitted.
func (t AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if t.submitted {
		return t, nil
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input with a check or cross once graded.
func (t AnswerInput) View() string {
	view := t.Model.View()
	if t.submitted {
		if t.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (t AnswerInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the current input value.
func (t *AnswerInput) SetValue(s string) {
	t.Model.SetValue(s)
}

// Clear empties the input so the same question can be answered again.
func (t *AnswerInput) Clear() {
	t.Model.Reset()
}

// Submit marks the input as graded.
func (t *AnswerInput) Submit(correct bool) {
	t.submitted = true
	t.valid = correct
}

// Submitted reports whether Submit was called.
func (t AnswerInput) Submitted() bool {
	return t.submitted
}
