// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/danielhkuo/quickly-tally/models"
)

// ErrIDOutOfRange is returned for ids that don't fit a signed BIGINT column
var ErrIDOutOfRange = errors.New("id out of range for database storage")

// ImportDataset replaces the stored contests and votes in one transaction
func ImportDataset(ctx context.Context, db *sql.DB, contests []models.Contest, votes []models.Vote) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin import: %w", err)
	}

	if err := importDataset(ctx, tx, contests, votes); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	return nil
}

func importDataset(ctx context.Context, tx *sql.Tx, contests []models.Contest, votes []models.Vote) error {
	for _, table := range []string{"vote", "choice", "contest"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for pos, contest := range contests {
		contestID, err := toBigint(contest.ID)
		if err != nil {
			return fmt.Errorf("contest %d: %w", contest.ID, err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO contest (position, id, description)
			VALUES ($1, $2, $3)
		`, pos, contestID, contest.Description)
		if err != nil {
			return fmt.Errorf("failed to insert contest %d: %w", contest.ID, err)
		}

		for choicePos, choice := range contest.Choices {
			choiceID, err := toBigint(choice.ID)
			if err != nil {
				return fmt.Errorf("choice %d of contest %d: %w", choice.ID, contest.ID, err)
			}

			_, err = tx.ExecContext(ctx, `
				INSERT INTO choice (contest_position, position, id, text)
				VALUES ($1, $2, $3, $4)
			`, pos, choicePos, choiceID, choice.Text)
			if err != nil {
				return fmt.Errorf("failed to insert choice %d of contest %d: %w", choice.ID, contest.ID, err)
			}
		}
	}

	for seq, vote := range votes {
		contestID, err := toBigint(vote.ContestID)
		if err != nil {
			return fmt.Errorf("vote %d: %w", seq, err)
		}
		choiceID, err := toBigint(vote.ChoiceID)
		if err != nil {
			return fmt.Errorf("vote %d: %w", seq, err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO vote (seq, contest_id, choice_id)
			VALUES ($1, $2, $3)
		`, seq, contestID, choiceID)
		if err != nil {
			return fmt.Errorf("failed to insert vote %d: %w", seq, err)
		}
	}

	return nil
}

// LoadDataset reads the stored contests and votes in their original order
func LoadDataset(ctx context.Context, db *sql.DB) ([]models.Contest, []models.Vote, error) {
	contests, err := LoadContests(ctx, db)
	if err != nil {
		return nil, nil, err
	}

	votes, err := LoadVotes(ctx, db)
	if err != nil {
		return nil, nil, err
	}

	return contests, votes, nil
}

// LoadContests retrieves all contests with their choices
func LoadContests(ctx context.Context, db *sql.DB) ([]models.Contest, error) {
	contests, positions, err := getContests(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("failed to get contests: %w", err)
	}

	if err := attachChoices(ctx, db, contests, positions); err != nil {
		return nil, fmt.Errorf("failed to get choices: %w", err)
	}

	return contests, nil
}

// LoadVotes retrieves all votes ordered as they were imported
func LoadVotes(ctx context.Context, db *sql.DB) ([]models.Vote, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT contest_id, choice_id FROM vote ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get votes: %w", err)
	}
	defer rows.Close()

	votes := []models.Vote{}
	for rows.Next() {
		var contestID, choiceID int64
		if err := rows.Scan(&contestID, &choiceID); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		votes = append(votes, models.Vote{
			ContestID: uint64(contestID),
			ChoiceID:  uint64(choiceID),
		})
	}

	return votes, rows.Err()
}

// getContests returns contests in position order and a position -> slice index map
func getContests(ctx context.Context, db *sql.DB) ([]models.Contest, map[int64]int, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT position, id, description FROM contest ORDER BY position
	`)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	contests := []models.Contest{}
	positions := make(map[int64]int)
	for rows.Next() {
		var position, id int64
		var description string
		if err := rows.Scan(&position, &id, &description); err != nil {
			return nil, nil, err
		}
		positions[position] = len(contests)
		contests = append(contests, models.Contest{
			ID:          uint64(id),
			Description: description,
			Choices:     []models.Choice{},
		})
	}

	return contests, positions, rows.Err()
}

// attachChoices runs after the contest rows are closed, since SQLite is
// limited to a single open connection
func attachChoices(ctx context.Context, db *sql.DB, contests []models.Contest, positions map[int64]int) error {
	rows, err := db.QueryContext(ctx, `
		SELECT contest_position, id, text
		FROM choice
		ORDER BY contest_position, position
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var contestPosition, id int64
		var text string
		if err := rows.Scan(&contestPosition, &id, &text); err != nil {
			return err
		}
		i, ok := positions[contestPosition]
		if !ok {
			continue
		}
		contests[i].Choices = append(contests[i].Choices, models.Choice{
			ID:   uint64(id),
			Text: text,
		})
	}

	return rows.Err()
}

func toBigint(id uint64) (int64, error) {
	if id > math.MaxInt64 {
		return 0, ErrIDOutOfRange
	}
	return int64(id), nil
}
