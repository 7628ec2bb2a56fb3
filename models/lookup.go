// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// FindContest returns the first contest with the given id
func FindContest(contests []Contest, contestID uint64) (*Contest, bool) {
	for i := range contests {
		if contests[i].ID == contestID {
			return &contests[i], true
		}
	}
	return nil, false
}

// FindChoice returns the first choice in the contest with the given id
func (c *Contest) FindChoice(choiceID uint64) (*Choice, bool) {
	for i := range c.Choices {
		if c.Choices[i].ID == choiceID {
			return &c.Choices[i], true
		}
	}
	return nil, false
}
