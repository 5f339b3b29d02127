// Package theme holds the colors and shared styles of the terminal UI.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizladder/internal/tier"
)

// Color palette
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate

	ArcadeYellow = lipgloss.Color("#FACC15")
	ArcadeCyan   = lipgloss.Color("#22D3EE")
)

// Rung colors, one per tier from the bottom of the ladder up.
var tierColors = map[tier.Tier]color.Color{
	tier.Elementary: Success,
	tier.JuniorHigh: Secondary,
	tier.HighSchool: ArcadeCyan,
	tier.University: Primary,
	tier.PhD:        ArcadeYellow,
}

// TierColor returns the color used for t.
func TierColor(t tier.Tier) color.Color {
	if c, ok := tierColors[t]; ok {
		return c
	}
	return Text
}

// TierBadge renders the tier name in its color.
func TierBadge(t tier.Tier) string {
	return lipgloss.NewStyle().
		Foreground(TierColor(t)).
		Bold(true).
		Render(t.DisplayName())
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	HeartFull = lipgloss.NewStyle().
			Foreground(Error)

	HeartEmpty = lipgloss.NewStyle().
			Foreground(Border)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)
