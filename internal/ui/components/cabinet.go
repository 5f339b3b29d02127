package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizladder/internal/tier"
	"github.com/abhisek/quizladder/internal/ui/theme"
)

const (
	minContent = 20
	maxContent = 60

	// cabinet border plus inner padding
	cabinetChrome = 6
)

// ContentWidth is the inner width shared by every section inside a cabinet.
func ContentWidth(frameWidth int) int {
	return max(minContent, min(maxContent, frameWidth-cabinetChrome))
}

// CabinetFrame centers content inside a double border painted in the color
// of the tier the player is about to climb from.
func CabinetFrame(content string, t tier.Tier, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.TierColor(t)).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// rungBorder draws only the ladder rails on either side of a label.
var rungBorder = lipgloss.Border{Left: "╟", Right: "╢"}

// Rung renders a menu entry as one rung of the ladder. The selected rung is
// lit in the tier color and carries the cursor.
func Rung(label string, selected bool, t tier.Tier, width int) string {
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(rungBorder, false, true)
	if !selected {
		return style.
			Foreground(theme.TextDim).
			BorderForeground(theme.Border).
			Render("─ " + label + " ─")
	}
	return style.
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.TierColor(t)).
		BorderForeground(theme.TierColor(t)).
		Render("▸ " + label + " ◂")
}
