// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tally counts votes per contest and picks a winner for each.

# Counting

Count is the pure core:

	results, rejections := tally.Count(votes, contests)

Each vote is checked in input order:

 1. Its contest_id must match a contest, else it is rejected (unknown_contest).
 2. Its choice_id must match a choice of that contest, else it is rejected
    (unknown_choice).
 3. Otherwise the (contest, choice) counter is incremented.

Contests with no valid votes produce no result. Rejected votes never affect
any total.

# Winners

The winner is the choice with the highest count. Ties go to the lowest
choice id. Results are ordered by contest id, and each contest's
breakdown by choice id.

# Diagnostics

Tally and Run log one warning per rejected vote through the given
*slog.Logger (nil means slog.Default()):

	results := tally.Tally(logger, votes, contests)
	report := tally.Run(logger, votes, contests)

Run also stamps a report id, timestamp, and inputs digest.
*/
package tally
