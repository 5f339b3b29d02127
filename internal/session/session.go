// Package session sequences a quiz round: present a question, accept one
// answer, resolve it against progression and lives, then schedule the next
// question or end the round.
package session

import (
	"errors"
	"time"

	"github.com/abhisek/quizladder/internal/lives"
	"github.com/abhisek/quizladder/internal/problemgen"
	"github.com/abhisek/quizladder/internal/progression"
	"github.com/abhisek/quizladder/internal/tier"
)

// ErrNotAccepting is returned by SubmitAnswer outside PhaseAwaitingAnswer.
var ErrNotAccepting = errors.New("session is not accepting answers")

// Default delays before the next question.
const (
	DefaultAnswerDelay  = 1 * time.Second
	DefaultLevelUpDelay = 1 * time.Second
)

// Config holds the round rules.
type Config struct {
	MaxLives int
	Policy   progression.Policy

	// AnswerDelay is the wait after a plain answer. After a promotion the
	// wait is AnswerDelay + LevelUpDelay.
	AnswerDelay  time.Duration
	LevelUpDelay time.Duration
}

// DefaultConfig returns three lives, the default streaks and delays.
func DefaultConfig() Config {
	return Config{
		MaxLives:     lives.DefaultMax,
		Policy:       progression.DefaultPolicy(),
		AnswerDelay:  DefaultAnswerDelay,
		LevelUpDelay: DefaultLevelUpDelay,
	}
}

// QuestionSource creates questions for a tier. *problemgen.Factory
// satisfies it.
type QuestionSource interface {
	Create(t tier.Tier) problemgen.Question
}

// Deps are the collaborators of a Session. Questions and Scheduler are
// required; Display defaults to NopDisplay.
type Deps struct {
	Questions QuestionSource
	Display   Display

	// Scheduler runs the deferred move to the next question. Use a Queue
	// when the host drives time itself.
	Scheduler Scheduler

	// Now defaults to time.Now.
	Now func() time.Time
}

// Session is the round orchestrator. It is not safe for concurrent use:
// every method and every scheduled callback must run on one goroutine.
type Session struct {
	cfg       Config
	questions QuestionSource
	display   Display
	sched     Scheduler
	now       func() time.Time

	progress *progression.State
	lives    *lives.Controller

	phase   Phase
	current problemgen.Question
	shown   time.Time

	// generation invalidates deferred transitions scheduled before the
	// last restart.
	generation uint64
	pending    Cancel

	round int
	stats stats
}

// New creates a Session. Call Start to present the first question. It
// panics when a required dependency is missing.
func New(cfg Config, deps Deps) *Session {
	if deps.Questions == nil {
		panic("session: Deps.Questions is required")
	}
	if deps.Scheduler == nil {
		panic("session: Deps.Scheduler is required")
	}
	if deps.Display == nil {
		deps.Display = NopDisplay{}
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Session{
		cfg:       cfg,
		questions: deps.Questions,
		display:   deps.Display,
		sched:     deps.Scheduler,
		now:       deps.Now,
		progress:  progression.New(cfg.Policy),
		lives:     lives.New(cfg.MaxLives),
	}
}

// Start begins the first round. It is equivalent to Restart.
func (s *Session) Start() {
	s.Restart()
}

// Restart abandons any round in progress, cancels a pending transition,
// resets progression and lives, and presents a fresh question.
func (s *Session) Restart() {
	s.generation++
	if s.pending != nil {
		s.pending()
		s.pending = nil
	}

	s.progress.Restart()
	s.lives.Restart()
	s.round++
	s.stats = stats{startedAt: s.now()}

	s.display.OnRoundStarted(RoundInfo{
		Round:    s.round,
		Progress: s.progress.Snapshot(),
		MaxLives: s.lives.Max(),
	})
	s.display.OnProgressChanged(s.progress.Snapshot())
	s.present()
}

// SubmitAnswer resolves the option at index against the current question.
// An index with no option counts as a wrong answer. Submissions outside
// PhaseAwaitingAnswer return ErrNotAccepting and change nothing.
func (s *Session) SubmitAnswer(index int) (Outcome, error) {
	if s.phase != PhaseAwaitingAnswer {
		return Outcome{}, ErrNotAccepting
	}
	s.phase = PhaseResolving

	q := s.current
	value, ok := q.Value(index)
	out := Outcome{
		Question: q,
		Index:    index,
		Value:    value,
		HasValue: ok,
		Correct:  ok && value == q.Answer,
	}

	if out.Correct {
		res := s.progress.RecordCorrect()
		out.LeveledUp = res.Promoted
		out.Completed = res.Completed
	} else {
		out.StreakReset = s.progress.RecordIncorrect()
		out.GameOver = s.lives.LoseLife()
	}
	out.Progress = s.progress.Snapshot()
	out.LivesLeft = s.lives.Lives()
	s.stats.record(out, s.now().Sub(s.shown))

	s.display.OnAnswerResolved(out)
	s.display.OnProgressChanged(out.Progress)

	if out.Terminal() {
		s.phase = PhaseRoundComplete
		s.stats.finishedAt = s.now()
		summary := s.Summary()
		if out.GameOver {
			s.display.OnGameOver(summary)
		} else {
			s.display.OnCompleted(summary)
		}
		return out, nil
	}

	delay := s.cfg.AnswerDelay
	if out.LeveledUp {
		delay += s.cfg.LevelUpDelay
	}
	gen := s.generation
	s.pending = s.sched.After(delay, func() { s.advance(gen) })
	return out, nil
}

// advance presents the next question unless a restart happened since the
// transition was scheduled.
func (s *Session) advance(gen uint64) {
	if gen != s.generation || s.phase != PhaseResolving {
		return
	}
	s.pending = nil
	s.present()
}

func (s *Session) present() {
	s.current = s.questions.Create(s.progress.Tier())
	s.shown = s.now()
	s.phase = PhaseAwaitingAnswer
	s.stats.asked++
	s.display.OnQuestion(s.current)
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Current returns the question on screen. ok is false before Start.
func (s *Session) Current() (q problemgen.Question, ok bool) {
	return s.current, s.phase != PhaseIdle
}

// Progress returns the progression snapshot.
func (s *Session) Progress() progression.Progress { return s.progress.Snapshot() }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives.Lives() }

// MaxLives returns the lives a round starts with.
func (s *Session) MaxLives() int { return s.lives.Max() }

// Round returns the 1-based number of the current round.
func (s *Session) Round() int { return s.round }
