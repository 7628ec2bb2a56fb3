// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"testing"

	"github.com/danielhkuo/quickly-tally/models"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := Open(TypeSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

func sampleDataset() ([]models.Contest, []models.Vote) {
	contests := []models.Contest{
		{
			ID:          1,
			Description: "Best Programming Language",
			Choices: []models.Choice{
				{ID: 3, Text: "Go"},
				{ID: 1, Text: "Rust"},
				{ID: 2, Text: "Python"},
			},
		},
		{
			ID:          2,
			Description: "Best Editor",
			Choices:     []models.Choice{{ID: 10, Text: "Vim"}, {ID: 10, Text: "Vim (dup)"}},
		},
		{ID: 3, Description: "No choices", Choices: []models.Choice{}},
	}
	votes := []models.Vote{
		{ContestID: 1, ChoiceID: 1},
		{ContestID: 99, ChoiceID: 1},
		{ContestID: 2, ChoiceID: 10},
		{ContestID: 1, ChoiceID: 1},
	}
	return contests, votes
}

func TestCreateSchema_Idempotent(t *testing.T) {
	conn := setupTestDB(t)

	if err := CreateSchema(conn); err != nil {
		t.Fatalf("Second CreateSchema failed: %v", err)
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open("mysql", "whatever")
	if !errors.Is(err, ErrUnsupportedDriver) {
		t.Errorf("Expected ErrUnsupportedDriver, got %v", err)
	}
}

func TestImportAndLoad_RoundTrip(t *testing.T) {
	conn := setupTestDB(t)
	ctx := context.Background()
	contests, votes := sampleDataset()

	if err := ImportDataset(ctx, conn, contests, votes); err != nil {
		t.Fatalf("ImportDataset failed: %v", err)
	}

	gotContests, gotVotes, err := LoadDataset(ctx, conn)
	if err != nil {
		t.Fatalf("LoadDataset failed: %v", err)
	}

	if len(gotContests) != len(contests) {
		t.Fatalf("Expected %d contests, got %d", len(contests), len(gotContests))
	}
	for i, want := range contests {
		got := gotContests[i]
		if got.ID != want.ID || got.Description != want.Description {
			t.Errorf("Contest %d: expected %+v, got %+v", i, want, got)
		}
		if len(got.Choices) != len(want.Choices) {
			t.Fatalf("Contest %d: expected %d choices, got %d", i, len(want.Choices), len(got.Choices))
		}
		// Choice order must survive storage
		for j := range want.Choices {
			if got.Choices[j] != want.Choices[j] {
				t.Errorf("Contest %d choice %d: expected %+v, got %+v", i, j, want.Choices[j], got.Choices[j])
			}
		}
	}

	if len(gotVotes) != len(votes) {
		t.Fatalf("Expected %d votes, got %d", len(votes), len(gotVotes))
	}
	for i := range votes {
		if gotVotes[i] != votes[i] {
			t.Errorf("Vote %d: expected %+v, got %+v", i, votes[i], gotVotes[i])
		}
	}
}

func TestImportDataset_ReplacesPreviousData(t *testing.T) {
	conn := setupTestDB(t)
	ctx := context.Background()
	contests, votes := sampleDataset()

	if err := ImportDataset(ctx, conn, contests, votes); err != nil {
		t.Fatalf("First import failed: %v", err)
	}

	replacement := []models.Contest{{ID: 5, Description: "Only one", Choices: []models.Choice{{ID: 1, Text: "Yes"}}}}
	if err := ImportDataset(ctx, conn, replacement, []models.Vote{{ContestID: 5, ChoiceID: 1}}); err != nil {
		t.Fatalf("Second import failed: %v", err)
	}

	gotContests, gotVotes, err := LoadDataset(ctx, conn)
	if err != nil {
		t.Fatalf("LoadDataset failed: %v", err)
	}
	if len(gotContests) != 1 || gotContests[0].ID != 5 {
		t.Errorf("Expected only contest 5, got %+v", gotContests)
	}
	if len(gotContests[0].Choices) != 1 {
		t.Errorf("Expected 1 choice, got %d", len(gotContests[0].Choices))
	}
	if len(gotVotes) != 1 {
		t.Errorf("Expected 1 vote, got %d", len(gotVotes))
	}
}

func TestImportDataset_RollsBackOnOutOfRangeID(t *testing.T) {
	conn := setupTestDB(t)
	ctx := context.Background()
	contests, votes := sampleDataset()

	if err := ImportDataset(ctx, conn, contests, votes); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	bad := append(append([]models.Vote{}, votes...), models.Vote{ContestID: math.MaxUint64, ChoiceID: 1})
	err := ImportDataset(ctx, conn, contests, bad)
	if !errors.Is(err, ErrIDOutOfRange) {
		t.Fatalf("Expected ErrIDOutOfRange, got %v", err)
	}

	// Previous dataset is untouched
	gotVotes, err := LoadVotes(ctx, conn)
	if err != nil {
		t.Fatalf("LoadVotes failed: %v", err)
	}
	if len(gotVotes) != len(votes) {
		t.Errorf("Expected %d votes after rollback, got %d", len(votes), len(gotVotes))
	}
}

func TestLoadDataset_Empty(t *testing.T) {
	conn := setupTestDB(t)

	contests, votes, err := LoadDataset(context.Background(), conn)
	if err != nil {
		t.Fatalf("LoadDataset failed: %v", err)
	}
	if contests == nil || len(contests) != 0 {
		t.Errorf("Expected empty non-nil contests, got %#v", contests)
	}
	if votes == nil || len(votes) != 0 {
		t.Errorf("Expected empty non-nil votes, got %#v", votes)
	}
}
