package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/tempus/internal/cli"
	"github.com/alexanderramin/tempus/internal/config"
	"github.com/alexanderramin/tempus/internal/service"
	"github.com/alexanderramin/tempus/internal/store"
	"github.com/alexanderramin/tempus/internal/timer"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env in the working directory; real env always wins.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	sessions := store.NewCSVStore(cfg.SessionsPath())
	if err := sessions.Init(context.Background()); err != nil {
		return fmt.Errorf("opening session log: %w", err)
	}

	app := &cli.App{
		Sessions: service.NewSessionService(sessions),
		Timer:    service.NewTimerService(timer.New(cfg.TimerPath()), sessions),
		Reports:  service.NewReportService(sessions, cfg),
		Config:   cfg,
	}

	// Detect interactive terminal for forms and the live timer view.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
