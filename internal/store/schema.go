package store

import (
	"context"
	"database/sql"
	"fmt"
)

const (
	tableRoundEvents  = "round_events"
	tableAnswerEvents = "answer_events"
)

// eventColumns are shared by every event table.
const eventColumns = `
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	sequence INTEGER NOT NULL UNIQUE,
	created_at_ms INTEGER NOT NULL,
	round_id TEXT NOT NULL`

var ddl = []string{
	`CREATE TABLE IF NOT EXISTS ` + tableRoundEvents + ` (` + eventColumns + `,
	action TEXT NOT NULL,
	tier TEXT NOT NULL,
	max_lives INTEGER NOT NULL DEFAULT 0,
	result TEXT NOT NULL DEFAULT '',
	questions_asked INTEGER NOT NULL DEFAULT 0,
	correct_answers INTEGER NOT NULL DEFAULT 0,
	stars INTEGER NOT NULL DEFAULT 0,
	duration_ms INTEGER NOT NULL DEFAULT 0
)`,
	`CREATE TABLE IF NOT EXISTS ` + tableAnswerEvents + ` (` + eventColumns + `,
	tier TEXT NOT NULL,
	question_text TEXT NOT NULL,
	correct_answer INTEGER NOT NULL,
	chosen_index INTEGER NOT NULL,
	chosen_value INTEGER,
	correct INTEGER NOT NULL,
	leveled_up INTEGER NOT NULL DEFAULT 0,
	lives_left INTEGER NOT NULL,
	latency_ms INTEGER NOT NULL DEFAULT 0
)`,
	`CREATE INDEX IF NOT EXISTS idx_answer_events_round ON ` + tableAnswerEvents + ` (round_id)`,
}

// migrate creates the event tables. The journal is in-memory, so there is
// no schema history to migrate from.
func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range ddl {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}
