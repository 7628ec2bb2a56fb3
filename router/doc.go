// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Tally API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Ad-hoc tally (no database needed):

	POST /tally - Tally the contests and votes in the body

Stored dataset (503 without a database):

	GET /contests              - Imported contest definitions
	GET /results               - Report over the imported dataset
	GET /results/{contest_id}  - Result for one contest

# Handler Initialization

	tallyHandler := handlers.NewTallyHandler(db, cfg)

The handler receives the database connection and configuration.
*/
package router
