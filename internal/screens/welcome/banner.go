package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizladder/internal/ui/theme"
)

const bannerArt = `╔═╗ ╦ ╦ ╦ ╔═╗ ╦   ╔═╗ ╔╦╗ ╔╦╗ ╔═╗ ╦═╗
║═╬╗║ ║ ║ ╔═╝ ║   ╠═╣  ║║  ║║ ║╣  ╠╦╝
╚═╝╚╚═╝ ╩ ╚═╝ ╩═╝ ╩ ╩ ═╩╝ ═╩╝ ╚═╝ ╩╚═`

const bannerCompact = "Q U I Z L A D D E R"

// RenderBanner returns the banner in the primary color, or a one-line
// fallback for terminals narrower than 44 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 44 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
