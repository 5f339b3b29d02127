package session

import (
	"fmt"
	"testing"
	"time"

	"github.com/abhisek/quizladder/internal/problemgen"
	"github.com/abhisek/quizladder/internal/progression"
	"github.com/abhisek/quizladder/internal/tier"
)

// fixedSource serves numbered questions whose correct option is index 0.
type fixedSource struct {
	n int
}

func (f *fixedSource) Create(t tier.Tier) problemgen.Question {
	f.n++
	return problemgen.Question{
		Text:    fmt.Sprintf("q%d", f.n),
		Answer:  10,
		Options: [problemgen.OptionCount]int{10, 11, 12, 13},
		Tier:    t,
		Kind:    problemgen.KindSum,
	}
}

const (
	right = 0
	wrong = 1
)

// recorder is a Display that keeps every event.
type recorder struct {
	events    []string
	questions []problemgen.Question
	outcomes  []Outcome
	progress  []progression.Progress
	summaries []Summary
}

func (r *recorder) OnRoundStarted(info RoundInfo) {
	r.events = append(r.events, fmt.Sprintf("round:%d", info.Round))
}

func (r *recorder) OnQuestion(q problemgen.Question) {
	r.events = append(r.events, "question:"+q.Text)
	r.questions = append(r.questions, q)
}

func (r *recorder) OnAnswerResolved(o Outcome) {
	r.events = append(r.events, fmt.Sprintf("answer:%v", o.Correct))
	r.outcomes = append(r.outcomes, o)
}

func (r *recorder) OnProgressChanged(p progression.Progress) {
	r.events = append(r.events, "progress:"+p.Text())
	r.progress = append(r.progress, p)
}

func (r *recorder) OnGameOver(s Summary) {
	r.events = append(r.events, "game-over")
	r.summaries = append(r.summaries, s)
}

func (r *recorder) OnCompleted(s Summary) {
	r.events = append(r.events, "completed")
	r.summaries = append(r.summaries, s)
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type harness struct {
	s     *Session
	rec   *recorder
	queue *Queue
	src   *fixedSource
	clock *fakeClock
}

func newHarness(t *testing.T, cfg Config) *harness {
	t.Helper()
	h := &harness{
		rec:   &recorder{},
		queue: NewQueue(),
		src:   &fixedSource{},
		clock: &fakeClock{t: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)},
	}
	h.s = New(cfg, Deps{Questions: h.src, Display: h.rec, Scheduler: h.queue, Now: h.clock.Now})
	return h
}

// answer submits index and fails the test if it is rejected.
func (h *harness) answer(t *testing.T, index int) Outcome {
	t.Helper()
	out, err := h.s.SubmitAnswer(index)
	if err != nil {
		t.Fatalf("SubmitAnswer(%d): %v", index, err)
	}
	return out
}

// settle runs every pending transition.
func (h *harness) settle() {
	for {
		wait, ok := h.queue.Next()
		if !ok {
			return
		}
		h.clock.Advance(wait)
		h.queue.Advance(wait)
	}
}

// streakConfig overrides the default required streaks for some tiers.
func streakConfig(required map[tier.Tier]int) Config {
	cfg := DefaultConfig()
	for t, n := range required {
		cfg.Policy.RequiredStreak[t] = n
	}
	return cfg
}
