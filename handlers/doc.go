// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the tally API.

# Handler Types

TallyHandler is a struct with database and config dependencies, created via
a constructor:

	tallyHandler := handlers.NewTallyHandler(db, cfg)

The database is optional. Without one, only ad-hoc tallies are served.

# Ad-hoc Tally

	POST /tally → CreateTally

The body carries both datasets:

	{"contests": [...], "votes": [...]}

The response is a models.Report. Rejected votes are listed in the report
and logged; they do not fail the request unless ?strict=true is set, in
which case the request fails with 422 and the rejected votes are listed in
the error message. Records missing a required field are 400.

# Stored Dataset

Requires a database loaded with quickly-tally -import:

	GET /contests              → GetContests
	GET /results               → GetResults (full report)
	GET /results/{contest_id}  → GetContestResult

GetContestResult returns 404 when the contest does not exist or received no
valid votes, matching the rule that such contests have no result.
*/
package handlers
