package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/quickly-tally/cliparse"
	"github.com/danielhkuo/quickly-tally/dataset"
	"github.com/danielhkuo/quickly-tally/db"
	"github.com/danielhkuo/quickly-tally/digest"
	"github.com/danielhkuo/quickly-tally/middleware"
	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/render"
	"github.com/danielhkuo/quickly-tally/router"
	"github.com/danielhkuo/quickly-tally/tally"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// signal.NotifyContext buffers the signal channel internally
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		slog.Error("quickly-tally failed", "mode", cfg.Mode, "error", err)
		stop()
		os.Exit(1)
	}
}

// run dispatches to the configured mode
func run(ctx context.Context, cfg cliparse.Config, stdout *os.File) error {
	switch cfg.Mode {
	case cliparse.ModeImport:
		return runImport(ctx, cfg)
	case cliparse.ModeServe:
		return runServe(ctx, cfg)
	default:
		return runCount(ctx, cfg, stdout)
	}
}

// openDatabase connects and makes sure the schema exists
func openDatabase(cfg cliparse.Config) (*sql.DB, error) {
	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("schema creation failed: %w", err)
	}

	return conn, nil
}

// loadInputs reads the dataset from the input files, or from the database
// when no files were given
func loadInputs(ctx context.Context, cfg cliparse.Config) ([]models.Contest, []models.Vote, error) {
	if cfg.ContestsPath != "" {
		return dataset.LoadFiles(cfg.ContestsPath, cfg.VotesPath)
	}

	conn, err := openDatabase(cfg)
	if err != nil {
		return nil, nil, err
	}
	defer conn.Close()

	return db.LoadDataset(ctx, conn)
}

func runCount(ctx context.Context, cfg cliparse.Config, stdout *os.File) error {
	contests, votes, err := loadInputs(ctx, cfg)
	if err != nil {
		return err
	}

	if cfg.VerifyHash != "" {
		if err := digest.Verify(cfg.VerifyHash, contests, votes); err != nil {
			return err
		}
		slog.Info("inputs verified", "inputs_hash", digest.Short(cfg.VerifyHash))
	}

	if cfg.Strict {
		if err := tally.Validate(votes, contests); err != nil {
			return err
		}
	}

	if cfg.OutputPath == "" {
		return writeCount(stdout, cfg, contests, votes)
	}

	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", cfg.OutputPath, err)
	}
	if err := writeCount(f, cfg, contests, votes); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", cfg.OutputPath, err)
	}
	return nil
}

// writeCount tallies the dataset and renders it to out in the configured format
func writeCount(out *os.File, cfg cliparse.Config, contests []models.Contest, votes []models.Vote) error {
	format := render.ResolveFormat(cfg.Format, out)

	if cfg.Report {
		report := tally.Run(slog.Default(), votes, contests)
		if format == render.FormatText {
			if err := render.Text(out, report.Results, contests); err != nil {
				return err
			}
			return render.Rejections(out, report.RejectedVotes, report.TotalVotes)
		}
		return render.JSON(out, report)
	}

	results := tally.Tally(slog.Default(), votes, contests)
	if format == render.FormatText {
		return render.Text(out, results, contests)
	}
	return render.JSON(out, results)
}

func runImport(ctx context.Context, cfg cliparse.Config) error {
	contests, votes, err := dataset.LoadFiles(cfg.ContestsPath, cfg.VotesPath)
	if err != nil {
		return err
	}

	conn, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := db.ImportDataset(ctx, conn, contests, votes); err != nil {
		return err
	}

	slog.Info("dataset imported",
		"contests", len(contests),
		"votes", len(votes),
		"inputs_hash", digest.Inputs(contests, votes),
	)
	return nil
}

func runServe(ctx context.Context, cfg cliparse.Config) error {
	var conn *sql.DB
	if cfg.DatabaseURL != "" {
		var err error
		conn, err = openDatabase(cfg)
		if err != nil {
			return err
		}
		defer conn.Close()
		slog.Info("Database schema ready", "type", cfg.DatabaseType)
	} else {
		slog.Info("No database configured, serving ad-hoc tallies only")
	}

	// Create router
	mux := router.NewRouter(conn, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	go func() {
		// Wait for Ctrl-C signal
		<-ctx.Done()
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server closed: %w", err)
	}
	slog.Info("Server closed")
	return nil
}
