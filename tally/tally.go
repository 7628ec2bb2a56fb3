// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-tally/digest"
	"github.com/danielhkuo/quickly-tally/models"
)

// Count validates every vote against the contest set and tallies the valid ones.
// It returns one result per contest with at least one valid vote, plus every
// rejected vote in input order. Count has no side effects.
func Count(votes []models.Vote, contests []models.Contest) ([]models.ContestResult, []models.Rejection) {
	idx := newIndex(contests)

	// contest id -> choice id -> count
	counts := make(map[uint64]map[uint64]uint64)
	rejections := []models.Rejection{}

	for i, vote := range votes {
		entry, ok := idx[vote.ContestID]
		if !ok {
			rejections = append(rejections, models.Rejection{
				Index:     i,
				ContestID: vote.ContestID,
				ChoiceID:  vote.ChoiceID,
				Reason:    models.ReasonUnknownContest,
			})
			continue
		}

		if _, ok := entry.choices[vote.ChoiceID]; !ok {
			rejections = append(rejections, models.Rejection{
				Index:     i,
				ContestID: vote.ContestID,
				ChoiceID:  vote.ChoiceID,
				Reason:    models.ReasonUnknownChoice,
			})
			continue
		}

		byChoice, ok := counts[vote.ContestID]
		if !ok {
			byChoice = make(map[uint64]uint64)
			counts[vote.ContestID] = byChoice
		}
		byChoice[vote.ChoiceID]++
	}

	results := make([]models.ContestResult, 0, len(counts))
	for contestID, byChoice := range counts {
		// Only validated contests reach the aggregation map
		results = append(results, summarize(contestID, idx[contestID], byChoice))
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].ContestID < results[j].ContestID
	})

	return results, rejections
}

// Tally counts the votes and reports every rejected vote to logger.
// A nil logger falls back to slog.Default().
func Tally(logger *slog.Logger, votes []models.Vote, contests []models.Contest) []models.ContestResult {
	results, rejections := Count(votes, contests)
	LogRejections(logger, rejections)
	return results
}

// Run tallies the votes and wraps the outcome in a Report
func Run(logger *slog.Logger, votes []models.Vote, contests []models.Contest) models.Report {
	logger = resolveLogger(logger)

	results, rejections := Count(votes, contests)
	LogRejections(logger, rejections)

	report := models.Report{
		ID:            uuid.NewString(),
		ComputedAt:    time.Now().UTC(),
		InputsHash:    digest.Inputs(contests, votes),
		TotalVotes:    len(votes),
		AcceptedVotes: len(votes) - len(rejections),
		RejectedVotes: len(rejections),
		Results:       results,
		Rejections:    rejections,
	}

	logger.Info("tally complete",
		"report_id", report.ID,
		"inputs_hash", digest.Short(report.InputsHash),
		"contests", len(results),
		"accepted", report.AcceptedVotes,
		"rejected", report.RejectedVotes,
	)

	return report
}

// LogRejections emits one diagnostic per rejected vote
func LogRejections(logger *slog.Logger, rejections []models.Rejection) {
	logger = resolveLogger(logger)
	for _, r := range rejections {
		switch r.Reason {
		case models.ReasonUnknownContest:
			logger.Warn("invalid contest id",
				"contest_id", r.ContestID,
				"vote_index", r.Index,
			)
		case models.ReasonUnknownChoice:
			logger.Warn("invalid choice for contest",
				"choice_id", r.ChoiceID,
				"contest_id", r.ContestID,
				"vote_index", r.Index,
			)
		}
	}
}

// summarize builds the result for one contest.
// Ties on the highest count go to the lowest choice id.
func summarize(contestID uint64, entry *contestEntry, byChoice map[uint64]uint64) models.ContestResult {
	choiceIDs := make([]uint64, 0, len(byChoice))
	for choiceID := range byChoice {
		choiceIDs = append(choiceIDs, choiceID)
	}
	sort.Slice(choiceIDs, func(i, j int) bool { return choiceIDs[i] < choiceIDs[j] })

	var total, maxCount, winnerID uint64
	results := make([]models.ResultVote, 0, len(choiceIDs))
	for _, choiceID := range choiceIDs {
		count := byChoice[choiceID]
		total += count

		// Strict comparison keeps the first (lowest id) choice on ties
		if count > maxCount {
			maxCount = count
			winnerID = choiceID
		}

		results = append(results, models.ResultVote{
			ChoiceID:   choiceID,
			TotalCount: count,
		})
	}

	return models.ContestResult{
		ContestID:  contestID,
		TotalVotes: total,
		Results:    results,
		Winner: models.Winner{
			ChoiceID: winnerID,
			Text:     entry.choices[winnerID].Text,
		},
	}
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
