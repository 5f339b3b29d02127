package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/abhisek/quizladder/internal/problemgen"
	"github.com/abhisek/quizladder/internal/progression"
	"github.com/abhisek/quizladder/internal/store"
	"github.com/google/uuid"
)

// Journal is a Display that records rounds and answers in the play journal.
// Write failures are logged and never interrupt play.
type Journal struct {
	ctx    context.Context
	repo   store.EventRepo
	logger *slog.Logger
	now    func() time.Time

	roundID string
	shown   time.Time
}

// NewJournal creates a Journal writing to repo.
func NewJournal(ctx context.Context, repo store.EventRepo, logger *slog.Logger) *Journal {
	return &Journal{ctx: ctx, repo: repo, logger: logger, now: time.Now}
}

// RoundID returns the journal identifier of the current round.
func (j *Journal) RoundID() string { return j.roundID }

func (j *Journal) OnRoundStarted(info RoundInfo) {
	j.roundID = uuid.NewString()
	j.warn("round start", j.repo.AppendRoundEvent(j.ctx, store.RoundEventData{
		RoundID:  j.roundID,
		Action:   store.ActionStart,
		Tier:     info.Progress.Tier.Key(),
		MaxLives: info.MaxLives,
	}))
}

func (j *Journal) OnQuestion(problemgen.Question) {
	j.shown = j.now()
}

func (j *Journal) OnAnswerResolved(o Outcome) {
	data := store.AnswerEventData{
		RoundID:       j.roundID,
		Tier:          o.Question.Tier.Key(),
		QuestionText:  o.Question.Text,
		CorrectAnswer: o.Question.Answer,
		ChosenIndex:   o.Index,
		Correct:       o.Correct,
		LeveledUp:     o.LeveledUp,
		LivesLeft:     o.LivesLeft,
		Latency:       j.now().Sub(j.shown),
	}
	if o.HasValue {
		v := o.Value
		data.ChosenValue = &v
	}
	j.warn("answer", j.repo.AppendAnswerEvent(j.ctx, data))
}

func (j *Journal) OnProgressChanged(progression.Progress) {}

func (j *Journal) OnGameOver(s Summary) { j.end(s) }

func (j *Journal) OnCompleted(s Summary) { j.end(s) }

// RecordAbandoned closes a round that ended without a result.
func (j *Journal) RecordAbandoned(s Summary) {
	if s.Result == ResultAbandoned {
		j.end(s)
	}
}

func (j *Journal) end(s Summary) {
	j.warn("round end", j.repo.AppendRoundEvent(j.ctx, store.RoundEventData{
		RoundID:        j.roundID,
		Action:         store.ActionEnd,
		Tier:           s.FinalTier.Key(),
		Result:         string(s.Result),
		QuestionsAsked: s.QuestionsAsked,
		CorrectAnswers: s.Correct,
		Stars:          s.Stars,
		Duration:       s.Duration,
	}))
}

func (j *Journal) warn(what string, err error) {
	if err != nil {
		j.logger.Warn("journal write failed", "event", what, "round_id", j.roundID, "err", err)
	}
}
