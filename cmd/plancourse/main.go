package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/imtheyoyo/plan-course/internal/cli"
	"github.com/imtheyoyo/plan-course/internal/db"
	"github.com/imtheyoyo/plan-course/internal/domain"
	"github.com/imtheyoyo/plan-course/internal/repository"
	"github.com/imtheyoyo/plan-course/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.plancourse/plancourse.db
	dbPath := os.Getenv("PLANCOURSE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".plancourse", "plancourse.db")
	}

	// Plain output when stdout is piped.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	var observers []service.UseCaseObserver
	if os.Getenv("PLANCOURSE_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	cfg := domain.DefaultConfig()
	app := &cli.App{
		Plans:  service.NewPlanService(cfg, observers...),
		Repo:   repository.NewSQLitePlanRepo(database),
		Config: cfg,
	}

	return cli.NewRootCmd(app).Execute()
}
