package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/gymtrack/internal/cli"
	"github.com/alexanderramin/gymtrack/internal/config"
	"github.com/alexanderramin/gymtrack/internal/db"
	"github.com/alexanderramin/gymtrack/internal/resttimer"
	"github.com/alexanderramin/gymtrack/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Config file and GYMTRACK_* overrides
	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	logger := config.NewLogger(os.Stderr, cfg.Log)

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories and unit of work
	repos := service.NewSQLiteRepos(database)
	uow := db.NewSQLiteUnitOfWork(database)

	opts := []service.Option{service.WithLogger(logger)}
	if cfg.Log.UseCases {
		opts = append(opts, service.WithObserver(service.NewLogUseCaseObserver(os.Stderr)))
	}

	app := &cli.App{
		Settings:  service.NewSettingsService(repos, opts...),
		Workouts:  service.NewWorkoutService(repos, uow, opts...),
		Templates: service.NewTemplateService(repos, uow, opts...),
		History:   service.NewHistoryService(repos, uow, opts...),
		Body:      service.NewBodyStatService(repos, uow, opts...),
		Progress:  service.NewProgressService(repos, opts...),
		Backup:    service.NewBackupService(repos, uow, opts...),
		Cue:       resttimer.BellCue{W: os.Stderr},
	}

	// Full-screen rest timer and confirmation forms only on a real terminal.
	app.IsInteractive = func() bool {
		fd := os.Stdout.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
