package session

import (
	"time"

	"github.com/abhisek/quizladder/internal/tier"
)

// stats accumulates the numbers behind a Summary.
type stats struct {
	startedAt  time.Time
	finishedAt time.Time

	asked      int
	answered   int
	correct    int
	run        int
	bestRun    int
	stars      int
	latencySum time.Duration
	result     RoundResult
}

func (st *stats) record(o Outcome, latency time.Duration) {
	st.answered++
	st.latencySum += latency
	if o.Correct {
		st.correct++
		st.run++
		st.bestRun = max(st.bestRun, st.run)
	} else {
		st.run = 0
	}
	if o.LeveledUp || o.Completed {
		st.stars++
	}
	switch {
	case o.GameOver:
		st.result = ResultGameOver
	case o.Completed:
		st.result = ResultCompleted
	}
}

// Summary describes a round, finished or not.
type Summary struct {
	Round  int
	Result RoundResult

	QuestionsAsked int
	Answered       int
	Correct        int
	Accuracy       float64
	BestStreak     int

	// Stars counts the tiers cleared this round.
	Stars int

	FinalTier tier.Tier
	LivesLeft int
	MaxLives  int

	Duration       time.Duration
	AverageLatency time.Duration
}

// Summary returns the statistics of the current round.
func (s *Session) Summary() Summary {
	st := s.stats
	end := st.finishedAt
	if end.IsZero() {
		end = s.now()
	}
	result := st.result
	if result == "" {
		result = ResultInProgress
	}

	sum := Summary{
		Round:          s.round,
		Result:         result,
		QuestionsAsked: st.asked,
		Answered:       st.answered,
		Correct:        st.correct,
		BestStreak:     st.bestRun,
		Stars:          st.stars,
		FinalTier:      s.progress.Tier(),
		LivesLeft:      s.lives.Lives(),
		MaxLives:       s.lives.Max(),
	}
	if !st.startedAt.IsZero() {
		sum.Duration = end.Sub(st.startedAt)
	}
	if st.answered > 0 {
		sum.Accuracy = float64(st.correct) / float64(st.answered)
		sum.AverageLatency = st.latencySum / time.Duration(st.answered)
	}
	return sum
}

// Abandon marks an unfinished round as abandoned and returns its summary.
// The session stops accepting answers until Restart.
func (s *Session) Abandon() Summary {
	s.generation++
	if s.pending != nil {
		s.pending()
		s.pending = nil
	}
	if s.phase != PhaseRoundComplete && s.phase != PhaseIdle {
		s.stats.result = ResultAbandoned
		s.stats.finishedAt = s.now()
	}
	s.phase = PhaseRoundComplete
	return s.Summary()
}
