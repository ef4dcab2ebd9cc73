package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ainara-edu/teksplan/internal/cli"
	"github.com/ainara-edu/teksplan/internal/db"
	"github.com/ainara-edu/teksplan/internal/generation"
	"github.com/ainara-edu/teksplan/internal/llm"
	"github.com/ainara-edu/teksplan/internal/repository"
	"github.com/ainara-edu/teksplan/internal/service"
	"github.com/ainara-edu/teksplan/internal/standards"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.teksplan/teksplan.db
	dbPath := os.Getenv("TEKSPLAN_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".teksplan", "teksplan.db")
	}
	// Determine standards directory
	standardsDir := os.Getenv("TEKSPLAN_STANDARDS_DIR")
	if standardsDir == "" {
		// Check for ./standards in current directory first (development)
		if stat, err := os.Stat("./standards"); err == nil && stat.IsDir() {
			standardsDir = "./standards"
		} else {
			// Fall back to ~/.teksplan/standards (production)
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("finding home directory: %w", err)
			}
			standardsDir = filepath.Join(home, ".teksplan", "standards")
		}
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories and services
	planRepo := repository.NewSQLitePlanRepo(database)
	loader := standards.NewFileSource(standardsDir)

	app := &cli.App{
		Plans:   service.NewPlanService(planRepo, loader),
		Loader:  loader,
		Session: service.NewStandardsSession(loader),
	}

	// Detect interactive terminal for the form and viewer entrypoints.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Wire the generation service (only when enabled)
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		llmClient := llm.NewClient(llmCfg, observer)
		app.Drafts = generation.NewDraftService(llmClient)
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
