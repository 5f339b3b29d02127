// Package home is the main menu: start a climb, pick the start tier, look
// back at finished rounds, or quit.
package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizladder/internal/router"
	"github.com/abhisek/quizladder/internal/screen"
	"github.com/abhisek/quizladder/internal/tier"
	"github.com/abhisek/quizladder/internal/ui/components"
	"github.com/abhisek/quizladder/internal/ui/layout"
)

// Options configure the home screen.
type Options struct {
	// StartTier preselects the tier a climb starts at.
	StartTier tier.Tier

	// Lives and Streaks describe the round rules on the stats bar.
	Lives   int
	Streaks map[tier.Tier]int

	// NewQuiz builds the play screen for a climb starting at t.
	NewQuiz func(t tier.Tier) screen.Screen

	// NewHistory builds the round history screen. The menu item is hidden
	// when it is nil.
	NewHistory func() screen.Screen
}

const (
	itemClimb = iota
	itemTier
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	opts  Options
	start tier.Tier
	menu  components.Menu
}

var (
	_ screen.Screen          = (*HomeScreen)(nil)
	_ screen.KeyHintProvider = (*HomeScreen)(nil)
)

// New creates a HomeScreen.
func New(opts Options) *HomeScreen {
	h := &HomeScreen{opts: opts, start: opts.StartTier}
	if !h.start.Valid() {
		h.start = tier.Elementary
	}

	items := []components.MenuItem{
		itemClimb: {Label: "START CLIMB", Action: h.startClimb},
		itemTier: {Label: tierLabel(h.start), Action: func() tea.Cmd {
			h.cycle(1)
			return nil
		}},
	}
	if opts.NewHistory != nil {
		items = append(items, components.MenuItem{Label: "ROUND HISTORY", Action: func() tea.Cmd {
			return router.Push(opts.NewHistory())
		}})
	}
	items = append(items, components.MenuItem{Label: "EXIT GAME", Action: func() tea.Cmd { return tea.Quit }})
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) startClimb() tea.Cmd {
	if h.opts.NewQuiz == nil {
		return nil
	}
	return router.Push(h.opts.NewQuiz(h.start))
}

// cycle moves the start tier by step, wrapping around the ladder.
func (h *HomeScreen) cycle(step int) {
	n := len(tier.All())
	h.start = tier.Tier((int(h.start) + step + n) % n)
	h.menu.SetLabel(itemTier, tierLabel(h.start))
}

func tierLabel(t tier.Tier) string {
	return "START AT: " + strings.ToUpper(t.DisplayName())
}

// StartTier returns the currently selected start tier.
func (h *HomeScreen) StartTier() tier.Tier { return h.start }

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && h.menu.Selected == itemTier {
		switch kmsg.String() {
		case "left", "h":
			h.cycle(-1)
			return h, nil
		case "right", "l":
			h.cycle(1)
			return h, nil
		}
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "←→", Description: "Tier"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer.
	termHeight := height + layout.HeaderHeight + layout.FooterHeight
	compact := layout.IsCompactHeight(termHeight) || layout.IsCompactWidth(width)

	cw := components.ContentWidth(width)

	sections := []string{renderTitle(cw, compact)}
	if !compact {
		sections = append(sections, renderMascotBox(cw))
	}
	sections = append(sections, renderStatsBar(h.opts.Lives, h.start, h.opts.Streaks, cw, compact))
	if compact {
		sections = append(sections, renderMenuCompact(h.menu.Labels(), h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(h.menu.Labels(), h.menu.Selected, h.start, cw))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), h.start, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
