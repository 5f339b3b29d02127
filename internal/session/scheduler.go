package session

import (
	"sort"
	"time"
)

// Cancel revokes a scheduled callback. Calling it after the callback ran,
// or more than once, does nothing.
type Cancel func()

// Scheduler runs a callback after a delay on the goroutine that drives the
// Session. Implementations must never run fn concurrently with other
// Session calls.
type Scheduler interface {
	After(d time.Duration, fn func()) Cancel
}

// Queue is a Scheduler driven by explicit calls to Advance. It keeps a
// virtual clock, so hosts decide when (and whether) to wait.
type Queue struct {
	now   time.Duration
	seq   uint64
	items []*queued
}

type queued struct {
	at        time.Duration
	seq       uint64
	fn        func()
	cancelled bool
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{}
}

// After schedules fn to run once the virtual clock reaches now+d.
func (q *Queue) After(d time.Duration, fn func()) Cancel {
	q.seq++
	item := &queued{at: q.now + max(d, 0), seq: q.seq, fn: fn}
	q.items = append(q.items, item)
	return func() { item.cancelled = true }
}

// Pending returns the number of callbacks waiting to run.
func (q *Queue) Pending() int {
	n := 0
	for _, it := range q.items {
		if !it.cancelled {
			n++
		}
	}
	return n
}

// Next returns the wait until the earliest pending callback.
func (q *Queue) Next() (time.Duration, bool) {
	q.compact()
	if len(q.items) == 0 {
		return 0, false
	}
	return q.items[0].at - q.now, true
}

// Advance moves the clock forward by d and runs every callback that falls
// due, in due order. Callbacks scheduled while advancing run too if they
// fall due within d. It returns the number of callbacks run.
func (q *Queue) Advance(d time.Duration) int {
	target := q.now + max(d, 0)
	ran := 0
	for {
		q.compact()
		if len(q.items) == 0 || q.items[0].at > target {
			break
		}
		it := q.items[0]
		q.items = q.items[1:]
		q.now = it.at
		it.fn()
		ran++
	}
	q.now = target
	return ran
}

// Elapsed returns the virtual time passed so far.
func (q *Queue) Elapsed() time.Duration {
	return q.now
}

// compact drops cancelled items and sorts the rest by due time.
func (q *Queue) compact() {
	live := q.items[:0]
	for _, it := range q.items {
		if !it.cancelled {
			live = append(live, it)
		}
	}
	q.items = live
	sort.Slice(q.items, func(i, j int) bool {
		if q.items[i].at != q.items[j].at {
			return q.items[i].at < q.items[j].at
		}
		return q.items[i].seq < q.items[j].seq
	})
}
