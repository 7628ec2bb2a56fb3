// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Tally vote counter.

Quickly Tally validates votes against contest definitions, counts the valid
ones per contest and choice, and picks a winner for every contest that
received at least one valid vote. Invalid votes are logged and skipped.

# Counting

Pass the contests file and the votes file:

	go run . testdata/contest.json testdata/votes.json

Results are printed as indented JSON. Use -format text for a table, -report
for the full report (id, inputs hash, rejected votes), and -o to write to a
file. -verify HASH fails unless the inputs digest matches HASH.

# Database

Import a dataset, then count or serve it:

	go run . -import -d tally.db testdata/contest.json testdata/votes.json
	go run . -d tally.db -report
	go run . -serve -d tally.db

-t selects the driver: sqlite (default) or postgres.

# Configuration

Settings fall back to environment variables, read from .env when present:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_URL (-d): Database path or connection string
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - TALLY_FORMAT (-format): json, text, or auto (default: json)
  - TALLY_OUTPUT (-o): Output file (default: stdout)

# Architecture

  - tally: Vote validation, counting and winner selection
  - dataset: JSON input loading
  - db: SQL dataset store
  - digest: Inputs digest for reproducibility checks
  - render: JSON and text output
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Domain and response types
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
