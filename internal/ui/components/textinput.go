package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizladder/internal/ui/theme"
)

// AnswerInput wraps bubbles/textinput for typing a whole-number answer.
// Only digits and a leading sign reach the underlying model.
type AnswerInput struct {
	Model     textinput.Model
	submitted bool
	valid     bool
}

// NewAnswerInput creates a focused input limited to maxWidth characters.
func NewAnswerInput(placeholder string, maxWidth int) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}
	ti.Focus()
	return AnswerInput{Model: ti}
}

// Init returns the cursor blink command.
func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update filters key presses and forwards the rest to the model.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if a.submitted {
		return a, nil
	}
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && !a.accepts(kmsg.String()) {
		return a, nil
	}
	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// accepts reports whether a key may edit the value. Named keys such as
// backspace always pass; single characters must be digits, or a sign at
// the start of an empty field.
func (a AnswerInput) accepts(key string) bool {
	if key == "space" {
		return false
	}
	if len(key) != 1 {
		return true
	}
	c := key[0]
	if c >= '0' && c <= '9' {
		return true
	}
	return (c == '-' || c == '+') && a.Model.Value() == ""
}

// View renders the input with a check or cross after submission.
func (a AnswerInput) View() string {
	view := a.Model.View()
	if a.submitted {
		if a.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the typed text.
func (a AnswerInput) Value() string {
	return a.Model.Value()
}

// Submit freezes the input and records whether the answer was right.
func (a *AnswerInput) Submit(valid bool) {
	a.submitted = true
	a.valid = valid
	a.Model.Blur()
}

// Submitted reports whether Submit was called.
func (a AnswerInput) Submitted() bool {
	return a.submitted
}
