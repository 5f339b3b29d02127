package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
	now func() time.Time
}

func (r *eventRepo) clock() time.Time {
	if r.now != nil {
		return r.now()
	}
	return time.Now()
}

func (r *eventRepo) AppendRoundEvent(ctx context.Context, data RoundEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	query, args := builder().Insert(tableRoundEvents).
		Columns("sequence", "created_at_ms", "round_id", "action", "tier", "max_lives",
			"result", "questions_asked", "correct_answers", "stars", "duration_ms").
		Values(seq, r.clock().UnixMilli(), data.RoundID, data.Action, data.Tier, data.MaxLives,
			data.Result, data.QuestionsAsked, data.CorrectAnswers, data.Stars, data.Duration.Milliseconds()).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save round event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	var chosen sql.NullInt64
	if data.ChosenValue != nil {
		chosen = sql.NullInt64{Int64: int64(*data.ChosenValue), Valid: true}
	}
	query, args := builder().Insert(tableAnswerEvents).
		Columns("sequence", "created_at_ms", "round_id", "tier", "question_text", "correct_answer",
			"chosen_index", "chosen_value", "correct", "leveled_up", "lives_left", "latency_ms").
		Values(seq, r.clock().UnixMilli(), data.RoundID, data.Tier, data.QuestionText, data.CorrectAnswer,
			data.ChosenIndex, chosen, boolInt(data.Correct), boolInt(data.LeveledUp), data.LivesLeft,
			data.Latency.Milliseconds()).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) RoundAnswers(ctx context.Context, roundID string, opts QueryOpts) ([]AnswerEvent, error) {
	b := builder()
	t := b.Table(tableAnswerEvents)
	sel := b.Select(
		t.C("sequence"), t.C("created_at_ms"), t.C("round_id"), t.C("tier"), t.C("question_text"),
		t.C("correct_answer"), t.C("chosen_index"), t.C("chosen_value"), t.C("correct"),
		t.C("leveled_up"), t.C("lives_left"), t.C("latency_ms"),
	).From(t).
		Where(entsql.And(
			entsql.EQ(t.C("round_id"), roundID),
			entsql.GT(t.C("sequence"), opts.After),
		)).
		OrderBy(t.C("sequence"))
	if opts.Limit > 0 {
		sel = sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}
	defer rows.Close()

	var out []AnswerEvent
	for rows.Next() {
		var (
			ev                   AnswerEvent
			createdMs, latencyMs int64
			chosen               sql.NullInt64
			correct, leveledUp   int
		)
		if err := rows.Scan(&ev.Sequence, &createdMs, &ev.RoundID, &ev.Tier, &ev.QuestionText,
			&ev.CorrectAnswer, &ev.ChosenIndex, &chosen, &correct, &leveledUp, &ev.LivesLeft, &latencyMs); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		ev.Timestamp = time.UnixMilli(createdMs)
		ev.Latency = time.Duration(latencyMs) * time.Millisecond
		ev.Correct = correct != 0
		ev.LeveledUp = leveledUp != 0
		if chosen.Valid {
			v := int(chosen.Int64)
			ev.ChosenValue = &v
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}

func (r *eventRepo) TierBreakdown(ctx context.Context, roundID string) ([]TierStat, error) {
	b := builder()
	t := b.Table(tableAnswerEvents)
	query, args := b.Select(
		t.C("tier"),
		entsql.As(entsql.Count("*"), "answered"),
		entsql.As(entsql.Sum(t.C("correct")), "correct_total"),
	).From(t).
		Where(entsql.EQ(t.C("round_id"), roundID)).
		GroupBy(t.C("tier")).
		OrderBy(entsql.Min(t.C("sequence"))).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tier breakdown: %w", err)
	}
	defer rows.Close()

	var out []TierStat
	for rows.Next() {
		var s TierStat
		if err := rows.Scan(&s.Tier, &s.Answered, &s.Correct); err != nil {
			return nil, fmt.Errorf("scan tier breakdown: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *eventRepo) RoundCount(ctx context.Context) (int, error) {
	b := builder()
	t := b.Table(tableRoundEvents)
	query, args := b.Select(entsql.Count("*")).From(t).
		Where(entsql.EQ(t.C("action"), ActionStart)).
		Query()
	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count rounds: %w", err)
	}
	return n, nil
}

func (r *eventRepo) RecentRounds(ctx context.Context, opts QueryOpts) ([]RoundRecord, error) {
	b := builder()
	t := b.Table(tableRoundEvents)
	sel := b.Select(
		t.C("sequence"), t.C("created_at_ms"), t.C("round_id"), t.C("action"), t.C("tier"),
		t.C("result"), t.C("questions_asked"), t.C("correct_answers"), t.C("stars"), t.C("duration_ms"),
	).From(t).
		Where(entsql.And(
			entsql.EQ(t.C("action"), ActionEnd),
			entsql.GT(t.C("sequence"), opts.After),
		)).
		OrderBy(entsql.Desc(t.C("sequence")))
	if opts.Limit > 0 {
		sel = sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query rounds: %w", err)
	}
	defer rows.Close()

	var out []RoundRecord
	for rows.Next() {
		var (
			rec                   RoundRecord
			createdMs, durationMs int64
		)
		if err := rows.Scan(&rec.Sequence, &createdMs, &rec.RoundID, &rec.Action, &rec.Tier,
			&rec.Result, &rec.QuestionsAsked, &rec.CorrectAnswers, &rec.Stars, &durationMs); err != nil {
			return nil, fmt.Errorf("scan round: %w", err)
		}
		rec.Timestamp = time.UnixMilli(createdMs)
		rec.Duration = time.Duration(durationMs) * time.Millisecond
		out = append(out, rec)
	}
	return out, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
