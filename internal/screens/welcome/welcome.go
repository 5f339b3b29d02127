// Package welcome is the splash screen: a climber scales the five tier
// rungs, then the banner appears.
package welcome

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizladder/internal/router"
	"github.com/abhisek/quizladder/internal/screen"
	"github.com/abhisek/quizladder/internal/tier"
	"github.com/abhisek/quizladder/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond

	// rungInterval is how long the climber rests on each rung.
	rungInterval = 300 * time.Millisecond

	// climbEnd is when the climber reaches the top and the banner shows.
	climbEnd = 1500 * time.Millisecond
	totalDur = 3000 * time.Millisecond
)

var sparkleFrames = []string{"★", "✦"}

type tickMsg time.Time

// WelcomeScreen plays the climb animation and replaces itself with the
// home screen on the first key press.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that hands over to the screen built by
// homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{homeFactory: homeFactory}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		w.elapsed = min(w.elapsed+tickInterval, totalDur)
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	return router.Replace(w.homeFactory())
}

// rung returns the tier the climber is standing on.
func (w *WelcomeScreen) rung() tier.Tier {
	n := len(tier.All())
	return tier.Tier(min(int(w.elapsed/rungInterval), n-1))
}

func (w *WelcomeScreen) climbed() bool {
	return w.elapsed >= climbEnd
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{w.renderLadder()}

	if w.climbed() {
		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Climb the ladder, one answer at a time!")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")
		sections = append(sections, "", RenderBanner(width), "", tagline, "", hint)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n"))
}

// renderLadder draws one rung per tier, top tier first, with the climber
// on the current rung and the passed rungs lit in their tier color.
func (w *WelcomeScreen) renderLadder() string {
	rail := lipgloss.NewStyle().Foreground(theme.Border)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	climber := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	at := w.rung()

	tiers := tier.All()
	lines := []string{rail.Render("  ║     ║")}
	for i := len(tiers) - 1; i >= 0; i-- {
		t := tiers[i]
		step := rail.Render("  ╟─────╢")
		label := dim.Render(t.DisplayName())
		if t <= at {
			label = theme.TierBadge(t)
		}
		if t == at {
			step = rail.Render("  ╟──") + climber.Render("◉") + rail.Render("──╢")
		}
		if t == at && w.climbed() {
			label += " " + lipgloss.NewStyle().Foreground(theme.ArcadeYellow).
				Render(sparkleFrames[w.tickCount%len(sparkleFrames)])
		}
		lines = append(lines, fmt.Sprintf("%s  %s", step, label))
	}
	lines = append(lines, rail.Render("══╩═════╩══"))
	return strings.Join(lines, "\n")
}
