// Package quiz is the play screen: it drives a session.Session from key
// presses and renders its events.
package quiz

import (
	"context"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizladder/internal/problemgen"
	"github.com/abhisek/quizladder/internal/progression"
	"github.com/abhisek/quizladder/internal/router"
	"github.com/abhisek/quizladder/internal/screen"
	"github.com/abhisek/quizladder/internal/screens/summary"
	"github.com/abhisek/quizladder/internal/session"
	"github.com/abhisek/quizladder/internal/store"
	"github.com/abhisek/quizladder/internal/ui/components"
	"github.com/abhisek/quizladder/internal/ui/layout"
)

// Options configure a QuizScreen.
type Options struct {
	Session   session.Config
	Questions session.QuestionSource

	// Repo is the play journal. Nil disables journaling and the per-tier
	// breakdown on the summary.
	Repo   store.EventRepo
	Logger *slog.Logger

	// Now defaults to time.Now.
	Now func() time.Time
}

// QuizScreen implements screen.Screen and session.Display.
type QuizScreen struct {
	opts    Options
	session *session.Session
	sched   *tickScheduler
	journal *session.Journal

	round    int
	question problemgen.Question
	asked    bool
	progress progression.Progress
	last     *session.Outcome
	promoted bool
	over     *session.Summary

	choices components.Choices
	input   components.AnswerInput
	typing  bool

	confirmQuit bool

	// cmds collects commands produced by display callbacks until the
	// current Update returns.
	cmds []tea.Cmd
}

var (
	_ screen.Screen          = (*QuizScreen)(nil)
	_ screen.KeyHintProvider = (*QuizScreen)(nil)
	_ screen.StatusProvider  = (*QuizScreen)(nil)
	_ screen.BackHandler     = (*QuizScreen)(nil)
	_ session.Display        = (*QuizScreen)(nil)
)

// New creates a QuizScreen. The round starts when the router calls Init.
func New(opts Options) *QuizScreen {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	s := &QuizScreen{
		opts:  opts,
		sched: newTickScheduler(),
		input: components.NewAnswerInput("type the answer", 12),
	}

	var display session.Display = s
	if opts.Repo != nil {
		s.journal = session.NewJournal(context.Background(), opts.Repo, opts.Logger)
		display = session.Displays{s.journal, s}
	}
	s.session = session.New(opts.Session, session.Deps{
		Questions: opts.Questions,
		Display:   display,
		Scheduler: s.sched,
		Now:       opts.Now,
	})
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	s.session.Start()
	return s.flush()
}

func (s *QuizScreen) Title() string {
	return "Climb"
}

func (s *QuizScreen) Status() layout.Status {
	return layout.Status{
		Lives:    s.session.Lives(),
		MaxLives: s.session.MaxLives(),
		Tier:     s.progress.Tier,
		Visible:  true,
	}
}

// HandlesBack is true: Esc asks before abandoning a round.
func (s *QuizScreen) HandlesBack() bool { return true }

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon round"},
			{Key: "N", Description: "Keep climbing"},
		}
	}
	if s.session.Phase() == session.PhaseRoundComplete {
		return []layout.KeyHint{
			{Key: "Ctrl+R", Description: "Restart"},
			{Key: "Esc", Description: "Home"},
		}
	}
	if s.typing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Tab", Description: "Pick"},
			{Key: "Ctrl+R", Description: "Restart"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "↑↓ Enter", Description: "Pick"},
		{Key: "Tab", Description: "Type"},
		{Key: "Ctrl+R", Description: "Restart"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case fireMsg:
		s.sched.Fire(msg.id)
		return s, s.flush()

	case roundEndedMsg:
		if msg.round != s.session.Round() || s.over == nil {
			return s, nil
		}
		return s, router.Push(summary.New(msg.result))

	case summary.PlayAgainMsg:
		s.restart()
		return s, s.flush()

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	if s.typing {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.confirmQuit = false
			return s, s.abandon()
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	switch key {
	case "esc":
		if s.session.Phase() == session.PhaseRoundComplete {
			return s, router.Pop
		}
		s.confirmQuit = true
		return s, nil
	case "ctrl+r":
		s.restart()
		return s, s.flush()
	case "tab":
		s.typing = !s.typing
		if s.typing {
			return s, s.input.Init()
		}
		return s, nil
	}

	if s.session.Phase() != session.PhaseAwaitingAnswer {
		return s, nil
	}

	if s.typing {
		if key == "enter" {
			if s.input.Value() == "" {
				return s, nil
			}
			return s, s.submit(s.question.ParseInput(s.input.Value()))
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	switch key {
	case "1", "2", "3", "4":
		s.choices.Selected = int(key[0] - '1')
		return s, s.submit(s.choices.Selected)
	case "enter":
		return s, s.submit(s.choices.Selected)
	}
	var cmd tea.Cmd
	s.choices, cmd = s.choices.Update(msg)
	return s, cmd
}

// submit hands index to the session. Rejected submissions are dropped.
func (s *QuizScreen) submit(index int) tea.Cmd {
	if _, err := s.session.SubmitAnswer(index); err != nil {
		return nil
	}
	return s.flush()
}

func (s *QuizScreen) restart() {
	s.confirmQuit = false
	s.session.Restart()
}

// abandon closes the round in the journal and leaves the screen.
func (s *QuizScreen) abandon() tea.Cmd {
	sum := s.session.Abandon()
	if s.journal != nil {
		s.journal.RecordAbandoned(sum)
	}
	s.opts.Logger.Info("round abandoned", "round", sum.Round, "tier", sum.FinalTier.Key(), "answered", sum.Answered)
	return router.Pop
}

// flush returns the scheduler ticks and display commands produced since
// the last call.
func (s *QuizScreen) flush() tea.Cmd {
	cmds := append(s.cmds, s.sched.Drain())
	s.cmds = nil
	return tea.Batch(cmds...)
}

// Display callbacks. They run synchronously inside Session calls made from
// Init and Update.

func (s *QuizScreen) OnRoundStarted(info session.RoundInfo) {
	s.round = info.Round
	s.progress = info.Progress
	s.over = nil
	s.last = nil
	s.promoted = false
	s.opts.Logger.Debug("round started", "round", info.Round, "tier", info.Progress.Tier.Key())
}

func (s *QuizScreen) OnQuestion(q problemgen.Question) {
	s.question = q
	s.asked = true
	s.last = nil
	s.promoted = false
	s.choices = components.NewChoices(q)
	s.input = components.NewAnswerInput("type the answer", 12)
	if s.typing {
		s.cmds = append(s.cmds, s.input.Init())
	}
}

func (s *QuizScreen) OnAnswerResolved(o session.Outcome) {
	s.last = &o
	s.promoted = o.LeveledUp
	s.choices.Reveal(o.Index)
	if s.typing {
		s.input.Submit(o.Correct)
	}
}

func (s *QuizScreen) OnProgressChanged(p progression.Progress) {
	s.progress = p
}

func (s *QuizScreen) OnGameOver(sum session.Summary) { s.finish(sum) }

func (s *QuizScreen) OnCompleted(sum session.Summary) { s.finish(sum) }

// finish schedules the summary screen after the final answer has been
// shown for the answer delay.
func (s *QuizScreen) finish(sum session.Summary) {
	s.over = &sum
	s.opts.Logger.Info("round finished",
		"round", sum.Round,
		"result", string(sum.Result),
		"tier", sum.FinalTier.Key(),
		"stars", sum.Stars,
		"answered", sum.Answered,
	)

	round := s.session.Round()
	repo := s.opts.Repo
	roundID := ""
	if s.journal != nil {
		roundID = s.journal.RoundID()
	}
	logger := s.opts.Logger
	s.cmds = append(s.cmds, tea.Tick(s.opts.Session.AnswerDelay, func(time.Time) tea.Msg {
		res := summary.Result{Summary: sum}
		if repo != nil {
			ctx := context.Background()
			var err error
			if res.Tiers, err = repo.TierBreakdown(ctx, roundID); err != nil {
				logger.Warn("tier breakdown failed", "round_id", roundID, "err", err)
			}
			if res.RoundsPlayed, err = repo.RoundCount(ctx); err != nil {
				logger.Warn("round count failed", "err", err)
			}
		}
		return roundEndedMsg{round: round, result: res}
	}))
}
