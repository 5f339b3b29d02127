package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizladder/internal/problemgen"
	"github.com/abhisek/quizladder/internal/ui/theme"
)

// Choices shows the four numbered options of a question. After Reveal the
// correct option is highlighted and a wrong pick is marked.
type Choices struct {
	Options  [problemgen.OptionCount]int
	Correct  int
	Selected int
	Chosen   int
	Revealed bool
}

// NewChoices creates a selector for q with the cursor on the first option.
func NewChoices(q problemgen.Question) Choices {
	return Choices{
		Options: q.Options,
		Correct: q.CorrectIndex(),
		Chosen:  problemgen.NoAnswer,
	}
}

// Update moves the cursor. It ignores input once revealed.
func (c Choices) Update(msg tea.Msg) (Choices, tea.Cmd) {
	if c.Revealed {
		return c, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	}
	return c, nil
}

// Reveal records the submitted index and switches to feedback colors.
func (c *Choices) Reveal(chosen int) {
	c.Revealed = true
	c.Chosen = chosen
}

// View renders one option per line.
func (c Choices) View() string {
	lines := make([]string, 0, len(c.Options))
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected && !c.Revealed {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %d", prefix, i+1, opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case c.Revealed && i == c.Correct:
			style = theme.Correct
			line += "  ✓"
		case c.Revealed && i == c.Chosen:
			style = theme.Incorrect
			line += "  ✗"
		case c.Revealed:
			style = style.Foreground(theme.TextDim)
		case i == c.Selected:
			style = theme.Selected
		}
		lines = append(lines, style.Render(line))
	}
	return strings.Join(lines, "\n")
}
