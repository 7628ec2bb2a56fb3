// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/quickly-tally/cliparse"
	"github.com/danielhkuo/quickly-tally/handlers"
	"github.com/danielhkuo/quickly-tally/middleware"
)

// NewRouter registers the tally API. db may be nil when serving ad-hoc tallies only.
func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	tallyHandler := handlers.NewTallyHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Ad-hoc tally
	mux.HandleFunc("POST /tally", middleware.WithLogging(tallyHandler.CreateTally))

	// Stored dataset
	mux.HandleFunc("GET /contests", middleware.WithLogging(tallyHandler.GetContests))
	mux.HandleFunc("GET /results", middleware.WithLogging(tallyHandler.GetResults))
	mux.HandleFunc("GET /results/{contest_id}", middleware.WithLogging(tallyHandler.GetContestResult))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-tally API v1"))
	})

	return mux
}
