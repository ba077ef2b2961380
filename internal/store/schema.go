package store

import (
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS llm_request_events (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence      INTEGER NOT NULL UNIQUE,
		timestamp     INTEGER NOT NULL,
		provider      TEXT NOT NULL,
		model         TEXT NOT NULL,
		purpose       TEXT NOT NULL,
		input_tokens  INTEGER NOT NULL DEFAULT 0,
		output_tokens INTEGER NOT NULL DEFAULT 0,
		latency_ms    INTEGER NOT NULL DEFAULT 0,
		success       INTEGER NOT NULL,
		error_message TEXT NOT NULL DEFAULT '',
		request_body  TEXT NOT NULL DEFAULT '',
		response_body TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_llm_request_events_purpose ON llm_request_events (purpose)`,
	`CREATE TABLE IF NOT EXISTS answer_events (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence       INTEGER NOT NULL UNIQUE,
		timestamp      INTEGER NOT NULL,
		session_id     TEXT NOT NULL,
		kind           TEXT NOT NULL,
		topic          TEXT NOT NULL,
		difficulty     TEXT NOT NULL,
		question       TEXT NOT NULL,
		correct_answer TEXT NOT NULL,
		user_answer    TEXT NOT NULL,
		correct        INTEGER NOT NULL,
		points         INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_answer_events_session ON answer_events (session_id)`,
	`CREATE TABLE IF NOT EXISTS session_events (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence        INTEGER NOT NULL UNIQUE,
		timestamp       INTEGER NOT NULL,
		session_id      TEXT NOT NULL,
		action          TEXT NOT NULL,
		questions_asked INTEGER NOT NULL DEFAULT 0,
		correct_answers INTEGER NOT NULL DEFAULT 0,
		score           INTEGER NOT NULL DEFAULT 0,
		duration_secs   INTEGER NOT NULL DEFAULT 0
	)`,
}

func migrate(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
