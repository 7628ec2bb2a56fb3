// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Rejection reasons
const (
	ReasonUnknownContest = "unknown_contest"
	ReasonUnknownChoice  = "unknown_choice"
)

// Definition types

type Choice struct {
	ID   uint64 `json:"id"`
	Text string `json:"text"`
}

type Contest struct {
	ID          uint64   `json:"id"`
	Description string   `json:"description"`
	Choices     []Choice `json:"choices"`
}

// Vote references one choice in one contest. Duplicates count separately.
type Vote struct {
	ContestID uint64 `json:"contest_id"`
	ChoiceID  uint64 `json:"choice_id"`
}

// Result types

type ResultVote struct {
	ChoiceID   uint64 `json:"choice_id"`
	TotalCount uint64 `json:"total_count"`
}

type Winner struct {
	ChoiceID uint64 `json:"choice_id"`
	Text     string `json:"text"`
}

type ContestResult struct {
	ContestID  uint64       `json:"contest_id"`
	TotalVotes uint64       `json:"total_votes"`
	Results    []ResultVote `json:"results"`
	Winner     Winner       `json:"winner"`
}

// Rejection records a vote that was left out of the tally.
// Index is the vote's position in the input vote set.
type Rejection struct {
	Index     int    `json:"index"`
	ContestID uint64 `json:"contest_id"`
	ChoiceID  uint64 `json:"choice_id"`
	Reason    string `json:"reason"`
}

type Report struct {
	ID            string          `json:"id"`
	ComputedAt    time.Time       `json:"computed_at"`
	InputsHash    string          `json:"inputs_hash"` // Digest of contests and votes for verification
	TotalVotes    int             `json:"total_votes"`
	AcceptedVotes int             `json:"accepted_votes"`
	RejectedVotes int             `json:"rejected_votes"`
	Results       []ContestResult `json:"results"`
	Rejections    []Rejection     `json:"rejections"`
}

// Request types

type TallyRequest struct {
	Contests []Contest `json:"contests"`
	Votes    []Vote    `json:"votes"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
