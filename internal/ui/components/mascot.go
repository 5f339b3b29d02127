package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizladder/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Waiting on the home screen
	MascotCelebrating                      // Ladder climbed
	MascotAlert                            // Out of lives
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ ±×÷ │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ ±×÷ │
└─╥═╥─┘
  ╚═╝`

const mascotAlert = `┌─────┐
│ ◉ ◉ │ !
│  ◠  │
│ ±×÷ │
└─────┘`

// Mascot returns the mascot art for the given variant.
func Mascot(v MascotVariant) string {
	art, fg := mascotIdle, theme.Primary
	switch v {
	case MascotCelebrating:
		art, fg = mascotCelebrating, theme.ArcadeYellow
	case MascotAlert:
		art, fg = mascotAlert, theme.Accent
	}
	return lipgloss.NewStyle().Foreground(fg).Render(art)
}
