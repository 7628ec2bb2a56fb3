// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"errors"
	"fmt"

	"github.com/danielhkuo/quickly-tally/models"
)

var (
	ErrUnknownContest = errors.New("invalid contest id")
	ErrUnknownChoice  = errors.New("invalid choice")
	ErrRejectedVotes  = errors.New("votes rejected")
)

// Validate returns nil when every vote references a known contest and choice.
// Otherwise the error wraps ErrRejectedVotes and one RejectionError per
// rejected vote, in input order.
func Validate(votes []models.Vote, contests []models.Contest) error {
	_, rejections := Count(votes, contests)
	if len(rejections) == 0 {
		return nil
	}

	errs := make([]error, 0, len(rejections))
	for _, r := range rejections {
		errs = append(errs, RejectionError(r))
	}
	return fmt.Errorf("%d of %d %w: %w", len(rejections), len(votes), ErrRejectedVotes, errors.Join(errs...))
}

// RejectionError converts a rejection into an error wrapping ErrUnknownContest
// or ErrUnknownChoice
func RejectionError(r models.Rejection) error {
	switch r.Reason {
	case models.ReasonUnknownContest:
		return fmt.Errorf("vote %d: %w %d", r.Index, ErrUnknownContest, r.ContestID)
	case models.ReasonUnknownChoice:
		return fmt.Errorf("vote %d: %w %d for contest %d", r.Index, ErrUnknownChoice, r.ChoiceID, r.ContestID)
	default:
		return fmt.Errorf("vote %d: rejected: %s", r.Index, r.Reason)
	}
}
