// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quickly-tally/cliparse"
	"github.com/danielhkuo/quickly-tally/db"
	"github.com/danielhkuo/quickly-tally/models"
)

// TestDBURL is the connection string for the test database
const TestDBURL = ":memory:"

// SetupTestDB creates a fresh in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Mode:         cliparse.ModeServe,
		Format:       "json",
		Port:         3318,
		DatabaseURL:  TestDBURL,
		DatabaseType: db.TypeSQLite,
	}
}

// SampleContests returns one contest with three choices
func SampleContests() []models.Contest {
	return []models.Contest{
		{
			ID:          1,
			Description: "Best Programming Language",
			Choices: []models.Choice{
				{ID: 1, Text: "Rust"},
				{ID: 2, Text: "Python"},
				{ID: 3, Text: "Go"},
			},
		},
	}
}

// SampleVotes returns votes where choice 1 wins contest 1 and one vote is invalid
func SampleVotes() []models.Vote {
	return []models.Vote{
		{ContestID: 1, ChoiceID: 1},
		{ContestID: 1, ChoiceID: 1},
		{ContestID: 1, ChoiceID: 2},
		{ContestID: 1, ChoiceID: 99},
		{ContestID: 2, ChoiceID: 1},
	}
}

// SeedDataset imports contests and votes into the test database
func SeedDataset(t *testing.T, conn *sql.DB, contests []models.Contest, votes []models.Vote) {
	t.Helper()

	if err := db.ImportDataset(context.Background(), conn, contests, votes); err != nil {
		t.Fatalf("Failed to seed dataset: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
