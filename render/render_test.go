// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danielhkuo/quickly-tally/models"
)

func sampleResults() ([]models.ContestResult, []models.Contest) {
	contests := []models.Contest{{
		ID:          1,
		Description: "Best Programming Language",
		Choices: []models.Choice{
			{ID: 1, Text: "Rust"},
			{ID: 2, Text: "Python"},
			{ID: 3, Text: "Go"},
		},
	}}
	results := []models.ContestResult{{
		ContestID:  1,
		TotalVotes: 4000,
		Results: []models.ResultVote{
			{ChoiceID: 1, TotalCount: 2000},
			{ChoiceID: 2, TotalCount: 1000},
			{ChoiceID: 3, TotalCount: 1000},
		},
		Winner: models.Winner{ChoiceID: 1, Text: "Rust"},
	}}
	return results, contests
}

func TestJSON(t *testing.T) {
	results, _ := sampleResults()
	var buf bytes.Buffer

	if err := JSON(&buf, results); err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "[\n  {\n    \"contest_id\": 1,") {
		t.Errorf("Expected indented output, got:\n%s", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("Expected trailing newline")
	}

	var decoded []models.ContestResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if decoded[0].Winner.Text != "Rust" {
		t.Errorf("Expected winner Rust, got %s", decoded[0].Winner.Text)
	}
}

func TestJSON_EmptyResults(t *testing.T) {
	var buf bytes.Buffer

	if err := JSON(&buf, []models.ContestResult{}); err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("Expected [], got %q", buf.String())
	}
}

func TestText(t *testing.T) {
	results, contests := sampleResults()
	var buf bytes.Buffer

	if err := Text(&buf, results, contests); err != nil {
		t.Fatalf("Text failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Contest 1: Best Programming Language",
		"Winner: Rust (choice 1)",
		"Total votes: 4,000",
		"2,000",
		"50.0%",
		"25.0%",
		"Python",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestText_UnknownContestLabels(t *testing.T) {
	results, _ := sampleResults()
	var buf bytes.Buffer

	// Results rendered without definitions still list the counts
	if err := Text(&buf, results, nil); err != nil {
		t.Fatalf("Text failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Contest 1:") {
		t.Errorf("Expected contest header, got:\n%s", buf.String())
	}
}

func TestText_NoResults(t *testing.T) {
	var buf bytes.Buffer

	if err := Text(&buf, nil, nil); err != nil {
		t.Fatalf("Text failed: %v", err)
	}
	if buf.String() != "No valid votes.\n" {
		t.Errorf("Unexpected output: %q", buf.String())
	}
}

func TestRejections(t *testing.T) {
	var buf bytes.Buffer

	if err := Rejections(&buf, 0, 10); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("Expected no output without rejections, got %q", buf.String())
	}

	if err := Rejections(&buf, 1200, 50000); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "1,200 of 50,000 votes rejected.") {
		t.Errorf("Unexpected output: %q", buf.String())
	}
}

func TestResolveFormat(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.json"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	testCases := []struct {
		name   string
		format string
		out    *os.File
		want   string
	}{
		{"explicit json", FormatJSON, f, FormatJSON},
		{"explicit text", FormatText, f, FormatText},
		{"auto on regular file", FormatAuto, f, FormatJSON},
		{"auto without file", FormatAuto, nil, FormatJSON},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveFormat(tc.format, tc.out); got != tc.want {
				t.Errorf("Expected %s, got %s", tc.want, got)
			}
		})
	}
}
