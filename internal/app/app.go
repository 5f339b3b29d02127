// Package app is the root Bubble Tea model: it owns the router and draws
// the frame around the active screen.
package app

import (
	"context"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizladder/internal/router"
	"github.com/abhisek/quizladder/internal/screen"
	"github.com/abhisek/quizladder/internal/screens/history"
	"github.com/abhisek/quizladder/internal/screens/home"
	"github.com/abhisek/quizladder/internal/screens/quiz"
	"github.com/abhisek/quizladder/internal/screens/welcome"
	"github.com/abhisek/quizladder/internal/session"
	"github.com/abhisek/quizladder/internal/store"
	"github.com/abhisek/quizladder/internal/tier"
	"github.com/abhisek/quizladder/internal/ui/layout"
)

// Options are the dependencies of the app.
type Options struct {
	// Session holds the round rules. Its start tier preselects the tier
	// on the home screen.
	Session   session.Config
	Questions session.QuestionSource

	// Repo is the play journal; nil disables it.
	Repo   store.EventRepo
	Logger *slog.Logger

	// SkipWelcome opens the home screen directly.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates an AppModel starting at the welcome screen.
func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	newQuiz := func(t tier.Tier) screen.Screen {
		cfg := opts.Session
		cfg.Policy.StartTier = t
		return quiz.New(quiz.Options{
			Session:   cfg,
			Questions: opts.Questions,
			Repo:      opts.Repo,
			Logger:    opts.Logger,
		})
	}
	newHome := func() screen.Screen {
		ho := home.Options{
			StartTier: opts.Session.Policy.StartTier,
			Lives:     opts.Session.MaxLives,
			Streaks:   opts.Session.Policy.RequiredStreak,
			NewQuiz:   newQuiz,
		}
		if opts.Repo != nil {
			ho.NewHistory = func() screen.Screen { return history.New(opts.Repo) }
		}
		return home.New(ho)
	}

	first := newHome()
	if !opts.SkipWelcome {
		first = welcome.New(newHome)
	}
	return AppModel{router: router.New(first)}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if bh, ok := m.router.Active().(screen.BackHandler); ok && bh.HandlesBack() {
				break
			}
			if m.router.Depth() > 1 {
				return m, router.Pop
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the frame around the active screen.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	var status layout.Status
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}
	header := layout.RenderHeader(title, status, m.width)

	var hints []layout.KeyHint
	if kp, ok := active.(screen.KeyHintProvider); ok {
		hints = kp.KeyHints()
	} else if m.router.Depth() > 1 {
		hints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		hints = []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := max(m.height-layout.HeaderHeight-layout.FooterHeight, 0)
	content := m.router.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(newAppModel(opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
