// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db stores contest and vote datasets in SQLite or PostgreSQL.

The database is an alternate input source for the tally. It holds the
definitions and votes exactly as imported; tally results are always
computed fresh and never written back.

# Connecting

	conn, err := db.Open(db.TypeSQLite, "file:tally.db")
	conn, err := db.Open(db.TypePostgres, "postgres://...")

SQLite uses modernc.org/sqlite (no cgo), PostgreSQL uses lib/pq.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - contest: id and description, keyed by input position
  - choice: choices per contest, keyed by (contest_position, position)
  - vote: contest_id and choice_id, keyed by input sequence

# Relationships

	contest 1──* choice

vote has no foreign key. Votes for unknown contests or choices are kept
so the tally can report them.

# Import and Load

	err := db.ImportDataset(ctx, conn, contests, votes) // replaces stored data
	contests, votes, err := db.LoadDataset(ctx, conn)

Ids above math.MaxInt64 cannot be stored and fail with ErrIDOutOfRange.
*/
package db
