// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the definition, vote, and result types shared by
the tally engine, the dataset loaders, and the HTTP API.

# Definition Types

Loaded once and treated as read-only:

  - Contest: id, description, ordered choices
  - Choice: id, text

Choice ids are expected to be unique within a contest. Duplicates are not
rejected; lookups return the first match.

# Input Types

  - Vote: contest_id, choice_id
  - TallyRequest: contests and votes posted to the API

# Result Types

  - ContestResult: contest_id, total_votes, results, winner
  - ResultVote: choice_id, total_count
  - Winner: choice_id, text
  - Rejection: a vote left out of the tally and why
  - Report: results plus run metadata and rejections

# Decoding

Contest, Choice and Vote implement json.Unmarshaler. Every field is
required and keys are matched exactly; absent or null fields fail with
ErrMissingField. Unknown keys are ignored.

# Lookups

	contest, ok := models.FindContest(contests, 1)
	choice, ok := contest.FindChoice(3)

Both are linear scans returning the first match.

# Constants

Rejection reasons:

	ReasonUnknownContest = "unknown_contest"
	ReasonUnknownChoice  = "unknown_choice"
*/
package models
