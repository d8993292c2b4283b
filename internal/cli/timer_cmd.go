package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/tempus/internal/cli/formatter"
	"github.com/alexanderramin/tempus/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the work timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			startedAt, err := app.Timer.Start(ctx)
			if errors.Is(err, timer.ErrAlreadyRunning) {
				status, statusErr := app.Timer.Status(ctx)
				if statusErr != nil {
					return err
				}
				return fmt.Errorf("a timer is already running (%s elapsed); stop it with 'tempus stop'",
					formatter.FormatElapsed(status.Elapsed))
			}
			if err != nil {
				return err
			}

			fmt.Printf("Timer started at %s\n", startedAt.Format("15:04"))
			return nil
		},
	}
}

func newStopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the work timer and log the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := app.Timer.Stop(context.Background())
			if errors.Is(err, timer.ErrTooShort) {
				return fmt.Errorf("timer has run for less than a minute; wait, or discard it from 'tempus timer'")
			}
			if err != nil {
				return err
			}

			fmt.Printf("Logged %sh on %s (%s, %s)\n",
				formatter.FormatHours(rec.DurationHours), rec.Date,
				formatter.Time12Hour(rec.StartTime)+" to "+formatter.Time12Hour(rec.EndTime),
				shortID(rec.ID))
			return nil
		},
	}
}

func newTimerCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "timer",
		Short: "Show the running timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := app.Timer.Status(context.Background())
			if err != nil {
				return err
			}
			if !status.Running {
				fmt.Println("No timer running. Start one with 'tempus start'.")
				return nil
			}

			if !app.interactive() {
				fmt.Printf("Timer running since %s (%s elapsed)\n",
					status.StartedAt.Format("15:04"), formatter.FormatElapsed(status.Elapsed))
				return nil
			}

			view := newTimerView(app.Timer, status)
			if _, err := tea.NewProgram(view).Run(); err != nil {
				return err
			}
			if view.err != nil {
				return view.err
			}

			switch {
			case view.saved != nil:
				rec := view.saved
				fmt.Printf("Logged %sh on %s (%s)\n",
					formatter.FormatHours(rec.DurationHours), rec.Date, shortID(rec.ID))
			case view.discarded:
				fmt.Println("Timer discarded.")
			default:
				fmt.Println("Timer left running.")
			}
			return nil
		},
	}
}
