package store

import (
	"context"
	"time"
)

// Round lifecycle actions.
const (
	ActionStart = "start"
	ActionEnd   = "end"
)

// RoundEventData records the start or end of a round.
type RoundEventData struct {
	RoundID string
	Action  string
	Tier    string

	// Set on start.
	MaxLives int

	// Set on end.
	Result         string
	QuestionsAsked int
	CorrectAnswers int
	Stars          int
	Duration       time.Duration
}

// AnswerEventData records one resolved answer.
type AnswerEventData struct {
	RoundID       string
	Tier          string
	QuestionText  string
	CorrectAnswer int
	ChosenIndex   int

	// ChosenValue is nil when the chosen index had no option.
	ChosenValue *int

	Correct   bool
	LeveledUp bool
	LivesLeft int
	Latency   time.Duration
}

// AnswerEvent is a stored answer.
type AnswerEvent struct {
	Sequence  int64
	Timestamp time.Time
	AnswerEventData
}

// RoundRecord is a finished round as the journal closed it.
type RoundRecord struct {
	Sequence  int64
	Timestamp time.Time
	RoundEventData
}

// TierStat aggregates the answers given at one tier.
type TierStat struct {
	Tier     string
	Answered int
	Correct  int
}

// Accuracy returns Correct / Answered, or 0 with no answers.
func (s TierStat) Accuracy() float64 {
	if s.Answered == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Answered)
}

// QueryOpts pages through answer events.
type QueryOpts struct {
	Limit int   // max results (0 = unlimited)
	After int64 // sequence > After
}

// EventRepo appends and queries journal events.
type EventRepo interface {
	AppendRoundEvent(ctx context.Context, data RoundEventData) error
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// RoundAnswers returns a round's answers in sequence order.
	RoundAnswers(ctx context.Context, roundID string, opts QueryOpts) ([]AnswerEvent, error)

	// TierBreakdown returns per-tier answer counts for a round, in the
	// order each tier was first reached.
	TierBreakdown(ctx context.Context, roundID string) ([]TierStat, error)

	// RoundCount returns the number of rounds started in this journal.
	RoundCount(ctx context.Context) (int, error)

	// RecentRounds returns ended rounds, newest first.
	RecentRounds(ctx context.Context, opts QueryOpts) ([]RoundRecord, error)
}
