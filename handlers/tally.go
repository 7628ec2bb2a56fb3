// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/quickly-tally/cliparse"
	"github.com/danielhkuo/quickly-tally/db"
	"github.com/danielhkuo/quickly-tally/middleware"
	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/tally"
)

type TallyHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

// NewTallyHandler creates the tally handler. conn may be nil, in which case
// only POST /tally is served and the stored-dataset endpoints return 503.
func NewTallyHandler(conn *sql.DB, cfg cliparse.Config) *TallyHandler {
	return &TallyHandler{db: conn, cfg: cfg}
}

// CreateTally handles POST /tally
// Tallies the contests and votes in the request body and returns a report.
// With ?strict=true any rejected vote fails the request with 422.
func (h *TallyHandler) CreateTally(w http.ResponseWriter, r *http.Request) {
	var req models.TallyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		if errors.Is(err, middleware.ErrBodyTooLarge) {
			middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge, err.Error())
			return
		}
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if r.URL.Query().Get("strict") == "true" {
		if err := tally.Validate(req.Votes, req.Contests); err != nil {
			middleware.ErrorResponse(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
	}

	report := tally.Run(slog.Default(), req.Votes, req.Contests)

	middleware.JSONResponse(w, http.StatusOK, report)
}

// GetContests handles GET /contests
// Returns the stored contest definitions
func (h *TallyHandler) GetContests(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "No database configured")
		return
	}

	contests, err := db.LoadContests(r.Context(), h.db)
	if err != nil {
		slog.Error("failed to load contests", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, contests)
}

// GetResults handles GET /results
// Tallies the stored dataset and returns a report
func (h *TallyHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "No database configured")
		return
	}

	contests, votes, err := db.LoadDataset(r.Context(), h.db)
	if err != nil {
		slog.Error("failed to load dataset", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	report := tally.Run(slog.Default(), votes, contests)

	middleware.JSONResponse(w, http.StatusOK, report)
}

// GetContestResult handles GET /results/{contest_id}
// Returns 404 if the contest is unknown or received no valid votes
func (h *TallyHandler) GetContestResult(w http.ResponseWriter, r *http.Request) {
	contestID, err := strconv.ParseUint(r.PathValue("contest_id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "contest_id must be a non-negative integer")
		return
	}

	if h.db == nil {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "No database configured")
		return
	}

	contests, votes, err := db.LoadDataset(r.Context(), h.db)
	if err != nil {
		slog.Error("failed to load dataset", "error", err, "contest_id", contestID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if _, ok := models.FindContest(contests, contestID); !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Contest not found")
		return
	}

	for _, result := range tally.Tally(slog.Default(), votes, contests) {
		if result.ContestID == contestID {
			middleware.JSONResponse(w, http.StatusOK, result)
			return
		}
	}

	middleware.ErrorResponse(w, http.StatusNotFound, "Contest has no valid votes")
}
