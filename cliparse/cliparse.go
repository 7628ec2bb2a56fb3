// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Run modes
const (
	ModeCount  = "count"
	ModeImport = "import"
	ModeServe  = "serve"
)

var (
	ErrMissingInputs = errors.New("missing input files")
	ErrConflictMode  = errors.New("-serve and -import cannot be combined")
	ErrNoDatabase    = errors.New("database URL required (use -d or DATABASE_URL env)")
	ErrBadFormat     = errors.New("format must be json, text, or auto")
)

type Config struct {
	Mode         string
	ContestsPath string
	VotesPath    string
	OutputPath   string
	Format       string
	Report       bool
	VerifyHash   string
	Strict       bool
	Port         int
	DatabaseURL  string
	DatabaseType string
}

// envConfig holds the settings that fall back to environment variables
type envConfig struct {
	Port         int    `env:"PORT" envDefault:"3318"`
	DatabaseURL  string `env:"DATABASE_URL"`
	DatabaseType string `env:"DATABASE_TYPE" envDefault:"sqlite"`
	Format       string `env:"TALLY_FORMAT" envDefault:"json"`
	OutputPath   string `env:"TALLY_OUTPUT"`
	Strict       bool   `env:"TALLY_STRICT" envDefault:"false"`
}

// ParseFlags loads .env and environment defaults, then applies CLI flags on top
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var serve, importMode bool

	envFile := envFileArg(args)
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	var defaults envConfig
	if err := env.Parse(&defaults); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	flags := flag.NewFlagSet("quickly-tally", flag.ContinueOnError)

	// Inputs and output
	flags.StringVar(&cfg.OutputPath, "o", defaults.OutputPath, "Output file (default stdout)")
	flags.StringVar(&cfg.Format, "format", defaults.Format, "Output format: json, text, or auto")
	flags.BoolVar(&cfg.Report, "report", false, "Print the full report instead of results only")
	flags.StringVar(&cfg.VerifyHash, "verify", "", "Fail unless the inputs match this digest")
	flags.BoolVar(&cfg.Strict, "strict", defaults.Strict, "Fail if any vote is rejected")

	// Modes
	flags.BoolVar(&serve, "serve", false, "Start the HTTP API")
	flags.BoolVar(&importMode, "import", false, "Load the input files into the database")

	// Network and database (can be CLI args or env)
	flags.IntVar(&cfg.Port, "p", defaults.Port, "Server port")
	flags.StringVar(&cfg.DatabaseURL, "d", defaults.DatabaseURL, "Database URL")
	flags.StringVar(&cfg.DatabaseType, "t", defaults.DatabaseType, "Database type (sqlite or postgres)")

	// Parsed in envFileArg; registered so it is accepted here
	flags.String("env", ".env", "Path to a .env file")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	switch cfg.Format {
	case "json", "text", "auto":
	default:
		return Config{}, ErrBadFormat
	}

	positional := flags.Args()
	switch {
	case serve && importMode:
		return Config{}, ErrConflictMode
	case serve:
		cfg.Mode = ModeServe
		if len(positional) != 0 {
			return Config{}, fmt.Errorf("unexpected arguments in serve mode: %v", positional)
		}
		return cfg, nil
	case importMode:
		cfg.Mode = ModeImport
		if cfg.DatabaseURL == "" {
			return Config{}, ErrNoDatabase
		}
	default:
		cfg.Mode = ModeCount
		// Without files the dataset comes from the database
		if len(positional) == 0 && cfg.DatabaseURL != "" {
			return cfg, nil
		}
	}

	if len(positional) != 2 {
		return Config{}, ErrMissingInputs
	}
	cfg.ContestsPath = positional[0]
	cfg.VotesPath = positional[1]

	return cfg, nil
}

// envFileArg finds -env before the full parse, since the .env file has to be
// loaded before flag defaults are read from the environment
func envFileArg(args []string) string {
	for i, arg := range args {
		if arg == "--" || !strings.HasPrefix(arg, "-") {
			continue
		}
		name := strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
		if name == "env" && i+1 < len(args) {
			return args[i+1]
		}
		if path, ok := strings.CutPrefix(name, "env="); ok {
			return path
		}
	}
	return ".env"
}
