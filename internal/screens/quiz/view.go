package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizladder/internal/tier"
	"github.com/abhisek/quizladder/internal/ui/components"
	"github.com/abhisek/quizladder/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.confirmQuit {
		return renderQuitConfirm(width)
	}
	if !s.asked {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Setting up the ladder...")
	}

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	var b strings.Builder

	// Round and streak line.
	info := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("  Round %d", s.round))
	bar := components.StreakBar(s.progress, min(40, width/2))
	line := info
	if pad := width - lipgloss.Width(info) - lipgloss.Width(bar) - 4; pad > 0 {
		line += strings.Repeat(" ", pad) + bar
	}
	b.WriteString(line)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(center.Render(renderLadder(s.progress.Tier)))
	b.WriteString("\n\n")

	b.WriteString(center.Foreground(theme.Text).Bold(true).Render(s.question.Text))
	b.WriteString("\n\n")

	if s.typing {
		b.WriteString(center.Render("Answer: " + s.input.View()))
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.TextDim).
			Render(fmt.Sprintf("options: %s", optionList(s.question.Options[:]))))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choices.View()))
	}
	b.WriteString("\n\n")

	if s.last != nil {
		b.WriteString(s.renderFeedback(width))
	}

	return b.String()
}

// renderFeedback renders the verdict for the last answer.
func (s *QuizScreen) renderFeedback(width int) string {
	o := s.last
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var lines []string
	switch {
	case o.Correct:
		lines = append(lines, center.Inherit(theme.Correct).Render("Correct!"))
	case !o.HasValue:
		lines = append(lines, center.Inherit(theme.Incorrect).Render("That's not one of the options"))
	default:
		lines = append(lines, center.Inherit(theme.Incorrect).Render("Not quite"))
	}
	if !o.Correct {
		lines = append(lines, center.Foreground(theme.TextDim).
			Render(fmt.Sprintf("The answer was %d", o.Question.Answer)))
	}

	switch {
	case o.Completed:
		lines = append(lines, center.Foreground(theme.ArcadeYellow).Bold(true).
			Render("★ Top of the ladder! ★"))
	case o.GameOver:
		lines = append(lines, center.Foreground(theme.Error).Bold(true).Render("Game over"))
	case s.promoted:
		lines = append(lines, center.Foreground(theme.Accent).Bold(true).
			Render(fmt.Sprintf("Level up! On to %s", o.Progress.Tier.DisplayName())))
	case o.StreakReset:
		lines = append(lines, center.Foreground(theme.TextDim).Render("Streak reset"))
	}

	return strings.Join(lines, "\n")
}

// renderLadder draws one rung per tier, top tier first, marking the
// current one.
func renderLadder(current tier.Tier) string {
	all := tier.All()
	rungs := make([]string, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		t := all[i]
		style := lipgloss.NewStyle().Foreground(theme.Border)
		marker := "  "
		switch {
		case t == current:
			style = lipgloss.NewStyle().Foreground(theme.TierColor(t)).Bold(true)
			marker = "▸ "
		case t < current:
			style = lipgloss.NewStyle().Foreground(theme.TierColor(t))
		}
		rungs = append(rungs, style.Render(fmt.Sprintf("%s╟──╢ %-11s", marker, t.DisplayName())))
	}
	return strings.Join(rungs, "\n")
}

func optionList(opts []int) string {
	parts := make([]string, len(opts))
	for i, o := range opts {
		parts[i] = fmt.Sprint(o)
	}
	return strings.Join(parts, " · ")
}

// renderQuitConfirm renders the abandon confirmation dialog.
func renderQuitConfirm(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(center.Foreground(theme.Text).Bold(true).Render("Abandon this round?"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("The climb so far will be lost."))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Error).Render("[Y] Yes, abandon"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Render("[N] No, keep climbing"))
	return b.String()
}
