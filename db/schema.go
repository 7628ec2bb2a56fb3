// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the dataset store.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Valid for both SQLite and PostgreSQL.
// Definitions are stored exactly as loaded, duplicates included, so lookups
// behave the same as on the JSON files. vote has no foreign keys: votes
// referencing unknown contests or choices must be storable.
const schema = `
-- Contests (position preserves input order; ids may repeat)
CREATE TABLE IF NOT EXISTS contest (
    position INTEGER PRIMARY KEY,
    id BIGINT NOT NULL,
    description TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_contest_id ON contest(id);

-- Choices (ordered within a contest; ids may repeat)
CREATE TABLE IF NOT EXISTS choice (
    contest_position INTEGER NOT NULL REFERENCES contest(position) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    id BIGINT NOT NULL,
    text TEXT NOT NULL,
    PRIMARY KEY (contest_position, position)
);

-- Votes (seq preserves input order)
CREATE TABLE IF NOT EXISTS vote (
    seq BIGINT PRIMARY KEY,
    contest_id BIGINT NOT NULL,
    choice_id BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_vote_contest_id ON vote(contest_id);
`
