// cliparse/cliparse_test.go
package cliparse

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseFlags_Positional(t *testing.T) {
	cfg, err := ParseFlags([]string{"contest.json", "votes.json"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Mode != ModeCount {
		t.Errorf("expected mode %s, got %s", ModeCount, cfg.Mode)
	}
	if cfg.ContestsPath != "contest.json" || cfg.VotesPath != "votes.json" {
		t.Errorf("unexpected paths: %q %q", cfg.ContestsPath, cfg.VotesPath)
	}
	if cfg.Format != "json" {
		t.Errorf("expected default format json, got %s", cfg.Format)
	}
	if cfg.Port != 3318 {
		t.Errorf("expected default port 3318, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default database type sqlite, got %s", cfg.DatabaseType)
	}
}

func TestParseFlags_MissingInputs(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"contest.json"},
		{"contest.json", "votes.json", "extra.json"},
	} {
		_, err := ParseFlags(args)
		if !errors.Is(err, ErrMissingInputs) {
			t.Errorf("args %v: expected ErrMissingInputs, got %v", args, err)
		}
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "file:test.db")
	t.Setenv("TALLY_FORMAT", "text")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	// No files and a database URL: count from the database
	if cfg.Mode != ModeCount || cfg.ContestsPath != "" {
		t.Errorf("expected database count mode, got %+v", cfg)
	}
	if cfg.Format != "text" {
		t.Errorf("expected format text, got %s", cfg.Format)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("TALLY_FORMAT", "text")

	cfg, err := ParseFlags([]string{"-p", "8080", "-format", "json", "-serve"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.Format != "json" {
		t.Errorf("CLI should override env: expected json, got %s", cfg.Format)
	}
	if cfg.Mode != ModeServe {
		t.Errorf("expected mode %s, got %s", ModeServe, cfg.Mode)
	}
}

func TestParseFlags_InvalidEnv(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	_, err := ParseFlags([]string{"a.json", "b.json"})
	if err == nil {
		t.Fatal("expected error for invalid PORT")
	}
}

func TestParseFlags_Modes(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		mode    string
		wantErr error
	}{
		{"import", []string{"-import", "-d", "file:x.db", "c.json", "v.json"}, ModeImport, nil},
		{"import without database", []string{"-import", "c.json", "v.json"}, "", ErrNoDatabase},
		{"import without files", []string{"-import", "-d", "file:x.db"}, "", ErrMissingInputs},
		{"serve and import", []string{"-serve", "-import"}, "", ErrConflictMode},
		{"count from database", []string{"-d", "file:x.db", "-report"}, ModeCount, nil},
		{"bad format", []string{"-format", "xml", "c.json", "v.json"}, "", ErrBadFormat},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := ParseFlags(tc.args)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if cfg.Mode != tc.mode {
				t.Errorf("expected mode %s, got %s", tc.mode, cfg.Mode)
			}
		})
	}
}

func TestParseFlags_ServeRejectsFiles(t *testing.T) {
	if _, err := ParseFlags([]string{"-serve", "c.json", "v.json"}); err == nil {
		t.Fatal("expected error for files in serve mode")
	}
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	if _, err := ParseFlags([]string{"-nope", "c.json", "v.json"}); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

func TestParseFlags_Strict(t *testing.T) {
	cfg, err := ParseFlags([]string{"c.json", "v.json"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Strict {
		t.Error("expected strict to default to false")
	}

	cfg, err = ParseFlags([]string{"-strict", "c.json", "v.json"})
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Strict {
		t.Error("expected -strict to enable strict mode")
	}

	t.Setenv("TALLY_STRICT", "true")
	cfg, err = ParseFlags([]string{"c.json", "v.json"})
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Strict {
		t.Error("expected TALLY_STRICT to enable strict mode")
	}
}

func TestParseFlags_HelpPrintsUsage(t *testing.T) {
	stderr, err := os.CreateTemp(t.TempDir(), "stderr")
	if err != nil {
		t.Fatal(err)
	}
	defer stderr.Close()

	previous := os.Stderr
	os.Stderr = stderr
	_, err = ParseFlags([]string{"-h"})
	os.Stderr = previous

	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("expected flag.ErrHelp, got %v", err)
	}

	usage, readErr := os.ReadFile(stderr.Name())
	if readErr != nil {
		t.Fatal(readErr)
	}
	for _, name := range []string{"-strict", "-format", "-serve"} {
		if !strings.Contains(string(usage), name) {
			t.Errorf("expected usage to mention %s, got:\n%s", name, usage)
		}
	}
}

func TestParseFlags_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tally.env")
	if err := os.WriteFile(path, []byte("TALLY_OUTPUT=from-env-file.json\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// godotenv sets process env directly
	t.Cleanup(func() { os.Unsetenv("TALLY_OUTPUT") })

	cfg, err := ParseFlags([]string{"-env", path, "c.json", "v.json"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.OutputPath != "from-env-file.json" {
		t.Errorf("expected output path from env file, got %q", cfg.OutputPath)
	}
}

func TestEnvFileArg(t *testing.T) {
	testCases := []struct {
		args []string
		want string
	}{
		{[]string{"c.json", "v.json"}, ".env"},
		{[]string{"-env", "a.env"}, "a.env"},
		{[]string{"--env", "b.env", "c.json"}, "b.env"},
		{[]string{"-env=c.env"}, "c.env"},
		{[]string{"--env=d.env"}, "d.env"},
		{[]string{"-env"}, ".env"},
	}

	for _, tc := range testCases {
		if got := envFileArg(tc.args); got != tc.want {
			t.Errorf("envFileArg(%v) = %q, want %q", tc.args, got, tc.want)
		}
	}
}
