// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Modes

	quickly-tally [flags] CONTESTS VOTES        count votes from JSON files
	quickly-tally -d URL [flags]                count votes stored in a database
	quickly-tally -import -d URL CONTESTS VOTES load JSON files into a database
	quickly-tally -serve [-p PORT] [-d URL]     start the HTTP API

Any other argument count fails with ErrMissingInputs.

# CLI Flags

	-o        Output file (default stdout)
	-format   json, text, or auto (text on a terminal)
	-report   Print the full report (id, digest, rejections)
	-verify   Fail unless the inputs digest matches
	-strict   Fail if any vote is rejected
	-p        Server port
	-d        Database URL
	-t        Database type (sqlite or postgres)
	-env      Path to a .env file (default .env)

# Environment Variables

A .env file is loaded first if present; it never overrides variables that
are already set. Flags then fall back to environment variables:

	PORT          → -p   (default 3318)
	DATABASE_URL  → -d
	DATABASE_TYPE → -t   (default sqlite)
	TALLY_FORMAT  → -format (default json)
	TALLY_OUTPUT  → -o
	TALLY_STRICT  → -strict (default false)

CLI flags take precedence over environment variables.

-h prints usage to stderr and ParseFlags returns flag.ErrHelp.
*/
package cliparse
