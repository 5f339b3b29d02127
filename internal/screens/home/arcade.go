package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizladder/internal/tier"
	"github.com/abhisek/quizladder/internal/ui/components"
	"github.com/abhisek/quizladder/internal/ui/theme"
)

const titleFull = `╔═╗ ╦ ╦ ╦ ╔═╗ ╦   ╔═╗ ╔╦╗ ╔╦╗ ╔═╗ ╦═╗
║═╬╗║ ║ ║ ╔═╝ ║   ╠═╣  ║║  ║║ ║╣  ╠╦╝
╚═╝╚╚═╝ ╩ ╚═╝ ╩═╝ ╩ ╩ ═╩╝ ═╩╝ ╚═╝ ╩╚═`

const titleCompact = "Q · U · I · Z · L · A · D · D · E · R"

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 28

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	art := titleFull
	if compact {
		art = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(art))
}

func renderMascotBox(cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(components.Mascot(components.MascotIdle))
}

// renderStatsBar shows the round rules: lives, start tier and the streak
// each tier needs from the start tier up.
func renderStatsBar(lives int, start tier.Tier, streaks map[tier.Tier]int, cw int, compact bool) string {
	heart := lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var steps []string
	for _, t := range tier.All() {
		if t < start {
			continue
		}
		n := streaks[t]
		if n < 1 {
			n = 1
		}
		steps = append(steps, lipgloss.NewStyle().Foreground(theme.TierColor(t)).Render(fmt.Sprint(n)))
	}
	path := strings.Join(steps, dim.Render("→"))

	var stats string
	if compact {
		stats = fmt.Sprintf("%s  %s", heart.Render(fmt.Sprintf("♥%d", lives)), path)
	} else {
		stats = fmt.Sprintf("%s   %s %s",
			heart.Render(fmt.Sprintf("♥ %d LIVES", lives)),
			dim.Render("STREAKS"),
			path,
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderMenu renders each item as a fixed-width button.
func renderMenu(items []string, selected int, start tier.Tier, cw int) string {
	buttons := make([]string, len(items))
	for i, label := range items {
		buttons[i] = components.Rung(label, i == selected, start, buttonWidth)
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderMenuCompact renders the items as plain lines for small terminals.
func renderMenuCompact(items []string, selected int, cw int) string {
	lines := make([]string, len(items))
	for i, label := range items {
		if i == selected {
			lines[i] = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			lines[i] = lipgloss.NewStyle().Foreground(theme.Text).Render("   " + label)
		}
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}
