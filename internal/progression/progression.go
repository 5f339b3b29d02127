// Package progression tracks the consecutive-correct streak that promotes a
// player from tier to tier and completes the round at the last tier.
package progression

import (
	"fmt"

	"github.com/abhisek/quizladder/internal/tier"
)

// DefaultRequiredStreak returns the streak needed to clear each tier.
func DefaultRequiredStreak() map[tier.Tier]int {
	return map[tier.Tier]int{
		tier.Elementary: 10,
		tier.JuniorHigh: 8,
		tier.HighSchool: 6,
		tier.University: 4,
		tier.PhD:        2,
	}
}

// Policy configures a State.
type Policy struct {
	// RequiredStreak maps a tier to the streak that clears it. A tier
	// missing from the map, or mapped to less than 1, requires 1.
	RequiredStreak map[tier.Tier]int

	// ResetStreakOnWrong zeroes the streak on an incorrect answer.
	ResetStreakOnWrong bool

	// StartTier is the tier a round starts and restarts at.
	StartTier tier.Tier
}

// DefaultPolicy starts at Elementary with the default streaks and keeps the
// streak on wrong answers.
func DefaultPolicy() Policy {
	return Policy{RequiredStreak: DefaultRequiredStreak(), StartTier: tier.Elementary}
}

// Progress is a snapshot of the player's position.
type Progress struct {
	Tier      tier.Tier
	Streak    int
	Required  int
	Completed bool
}

// Text renders progress as "<Tier>: <streak>/<required>".
func (p Progress) Text() string {
	return fmt.Sprintf("%s: %d/%d", p.Tier, p.Streak, p.Required)
}

// Result describes the effect of a correct answer.
type Result struct {
	Promoted  bool
	Completed bool
	From      tier.Tier
	To        tier.Tier
	Progress  Progress
}

// State is the progression state machine. Not safe for concurrent use.
type State struct {
	policy    Policy
	current   tier.Tier
	streak    int
	completed bool
}

// New creates a State at the policy's start tier.
func New(p Policy) *State {
	if !p.StartTier.Valid() {
		p.StartTier = tier.Elementary
	}
	s := &State{policy: p}
	s.Restart()
	return s
}

// Required returns the streak that clears t.
func (s *State) Required(t tier.Tier) int {
	if n, ok := s.policy.RequiredStreak[t]; ok && n >= 1 {
		return n
	}
	return 1
}

// RecordCorrect extends the streak and promotes or completes when the
// current tier's requirement is met. It does nothing once completed.
func (s *State) RecordCorrect() Result {
	res := Result{From: s.current, To: s.current}
	if s.completed {
		res.Progress = s.Snapshot()
		return res
	}

	s.streak++
	if s.streak >= s.Required(s.current) {
		if next, ok := s.current.Next(); ok {
			s.current = next
			s.streak = 0
			res.Promoted = true
			res.To = next
		} else {
			s.completed = true
			res.Completed = true
		}
	}
	res.Progress = s.Snapshot()
	return res
}

// RecordIncorrect applies the wrong-answer policy and reports whether the
// streak was reset.
func (s *State) RecordIncorrect() bool {
	if s.completed || !s.policy.ResetStreakOnWrong || s.streak == 0 {
		return false
	}
	s.streak = 0
	return true
}

// Restart returns to the start tier with an empty streak.
func (s *State) Restart() {
	s.current = s.policy.StartTier
	s.streak = 0
	s.completed = false
}

// Tier returns the current tier.
func (s *State) Tier() tier.Tier { return s.current }

// Streak returns the current streak.
func (s *State) Streak() int { return s.streak }

// Completed reports whether the last tier has been cleared.
func (s *State) Completed() bool { return s.completed }

// Snapshot returns the current progress.
func (s *State) Snapshot() Progress {
	return Progress{
		Tier:      s.current,
		Streak:    s.streak,
		Required:  s.Required(s.current),
		Completed: s.completed,
	}
}
