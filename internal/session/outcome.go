package session

import (
	"github.com/abhisek/quizladder/internal/problemgen"
	"github.com/abhisek/quizladder/internal/progression"
)

// Outcome is the resolution of one submitted answer.
type Outcome struct {
	Question problemgen.Question

	// Index is the submitted option index. HasValue is false when it was
	// outside the option range.
	Index    int
	Value    int
	HasValue bool

	Correct     bool
	LeveledUp   bool
	Completed   bool
	GameOver    bool
	StreakReset bool

	Progress  progression.Progress
	LivesLeft int
}

// ProgressText renders the progress after this answer, e.g. "JuniorHigh: 3/8".
func (o Outcome) ProgressText() string {
	return o.Progress.Text()
}

// Terminal reports whether this answer ended the round.
func (o Outcome) Terminal() bool {
	return o.GameOver || o.Completed
}
