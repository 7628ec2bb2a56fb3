// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package dataset decodes contest and vote datasets from JSON.

# File Format

Both files are a single top-level JSON array.

Contests:

	[
	  {
	    "id": 1,
	    "description": "Best Programming Language",
	    "choices": [
	      {"id": 1, "text": "Rust"},
	      {"id": 2, "text": "Python"},
	      {"id": 3, "text": "Go"}
	    ]
	  }
	]

Votes:

	[{"contest_id": 1, "choice_id": 1}, {"contest_id": 1, "choice_id": 2}]

# Loading

	contests, votes, err := dataset.LoadFiles("contest.json", "votes.json")

Open failures are reported as "could not open ...", decode failures as
"could not read ..." wrapping ErrMalformed. Either is fatal for the CLI.
Ids must be non-negative integers; anything else is malformed. Every field
shown above is required and keys match exactly, so a vote without
choice_id or with "CONTEST_ID" is malformed rather than zero-filled.
Unknown keys are ignored.
*/
package dataset
