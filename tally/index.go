// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import "github.com/danielhkuo/quickly-tally/models"

type contestEntry struct {
	choices map[uint64]*models.Choice
}

// index maps contest ids to their definitions for constant-time lookups.
// It resolves duplicate ids the same way as models.FindContest and
// Contest.FindChoice: the first occurrence wins.
type index map[uint64]*contestEntry

func newIndex(contests []models.Contest) index {
	idx := make(index, len(contests))
	for i := range contests {
		contest := &contests[i]
		if _, seen := idx[contest.ID]; seen {
			continue
		}

		entry := &contestEntry{
			choices: make(map[uint64]*models.Choice, len(contest.Choices)),
		}
		for j := range contest.Choices {
			choice := &contest.Choices[j]
			if _, seen := entry.choices[choice.ID]; !seen {
				entry.choices[choice.ID] = choice
			}
		}

		idx[contest.ID] = entry
	}
	return idx
}
