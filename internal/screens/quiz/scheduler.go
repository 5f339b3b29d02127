package quiz

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizladder/internal/session"
)

// tickScheduler runs session transitions on the Bubble Tea update loop.
// After queues a tea.Tick whose fireMsg comes back through Update, so the
// callback runs on the same goroutine as every other Session call.
type tickScheduler struct {
	nextID uint64
	live   map[uint64]func()
	queued []tea.Cmd
}

// fireMsg asks the screen to run scheduled callback id.
type fireMsg struct {
	id uint64
}

func newTickScheduler() *tickScheduler {
	return &tickScheduler{live: make(map[uint64]func())}
}

func (t *tickScheduler) After(d time.Duration, fn func()) session.Cancel {
	t.nextID++
	id := t.nextID
	t.live[id] = fn
	t.queued = append(t.queued, tea.Tick(max(d, 0), func(time.Time) tea.Msg {
		return fireMsg{id: id}
	}))
	return func() { delete(t.live, id) }
}

// Drain returns the ticks queued since the last call.
func (t *tickScheduler) Drain() tea.Cmd {
	if len(t.queued) == 0 {
		return nil
	}
	cmds := t.queued
	t.queued = nil
	return tea.Batch(cmds...)
}

// Fire runs callback id unless it was cancelled. It reports whether the
// callback ran.
func (t *tickScheduler) Fire(id uint64) bool {
	fn, ok := t.live[id]
	if !ok {
		return false
	}
	delete(t.live, id)
	fn()
	return true
}

// Pending returns the number of callbacks that have not run or been
// cancelled.
func (t *tickScheduler) Pending() int {
	return len(t.live)
}
