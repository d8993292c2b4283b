package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/tempus/internal/cli/formatter"
	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/alexanderramin/tempus/internal/store"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage logged sessions",
	}

	cmd.AddCommand(
		newSessionLogCmd(app),
		newSessionListCmd(app),
		newSessionEditCmd(app),
		newSessionRemoveCmd(app),
		newSessionDayOffCmd(app),
		newSessionImportCmd(app),
	)

	return cmd
}

// orToday substitutes today's date for a blank date argument.
func orToday(date string) string {
	if date == "" {
		return time.Now().Format(domain.DateLayout)
	}
	return date
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func newSessionLogCmd(app *App) *cobra.Command {
	var date, start, end string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a work session by hand",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (start == "" || end == "") && app.interactive() {
				if err := logSessionForm(&date, &start, &end).Run(); err != nil {
					return err
				}
			}
			if start == "" || end == "" {
				return fmt.Errorf("--start and --end are required")
			}

			rec, err := app.Sessions.Log(context.Background(), orToday(date), start, end)
			if err != nil {
				return err
			}

			fmt.Printf("Logged %sh on %s (%s)\n",
				formatter.FormatHours(rec.DurationHours), rec.Date, shortID(rec.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Session date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM)")

	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List logged sessions, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.Sessions.List(context.Background())
			if err != nil {
				return err
			}

			if len(sessions) == 0 {
				fmt.Println("No sessions logged yet.")
				return nil
			}

			// Store order is oldest first; show the newest at the top.
			if limit > 0 && len(sessions) > limit {
				sessions = sessions[len(sessions)-limit:]
			}

			headers := []string{"ID", "DATE", "TYPE", "START", "END", "HOURS"}
			rows := make([][]string, 0, len(sessions))
			for i := len(sessions) - 1; i >= 0; i-- {
				s := sessions[i]
				rows = append(rows, []string{
					formatter.TruncID(s.ID),
					s.Date,
					formatter.TypePill(s.EffectiveType()),
					formatter.Time12Hour(s.StartTime),
					formatter.Time12Hour(s.EndTime),
					formatter.FormatHours(s.DurationHours),
				})
			}

			fmt.Print(formatter.RenderBox("Sessions", formatter.RenderTable(headers, rows, 5)))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of sessions to show (0 for all)")

	return cmd
}

func newSessionEditCmd(app *App) *cobra.Command {
	var date, start, end, sessionType string

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a logged session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var changes store.SessionChanges
			if cmd.Flags().Changed("date") {
				if err := validateOptionalDate(date); err != nil {
					return err
				}
				changes.Date = &date
			}
			if cmd.Flags().Changed("start") {
				if err := validateOptionalClock(start); err != nil {
					return err
				}
				changes.StartTime = &start
			}
			if cmd.Flags().Changed("end") {
				if err := validateOptionalClock(end); err != nil {
					return err
				}
				changes.EndTime = &end
			}
			if cmd.Flags().Changed("type") {
				t := domain.SessionType(sessionType)
				if t != domain.SessionWork && t != domain.SessionDayOff {
					return fmt.Errorf("type must be %q or %q", domain.SessionWork, domain.SessionDayOff)
				}
				changes.Type = &t
			}
			if changes == (store.SessionChanges{}) {
				return fmt.Errorf("nothing to change; pass at least one of --date, --start, --end, --type")
			}

			rec, err := app.Sessions.Edit(context.Background(), args[0], changes)
			if err != nil {
				return err
			}

			fmt.Printf("Updated %s: %s %sh\n", shortID(rec.ID), rec.Date, formatter.FormatHours(rec.DurationHours))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "New date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&start, "start", "", "New start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "New end time (HH:MM)")
	cmd.Flags().StringVar(&sessionType, "type", "", "New type (work or day_off)")

	return cmd
}

func newSessionRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Remove a logged session",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && app.interactive() {
				confirmed := false
				if err := confirmForm(fmt.Sprintf("Remove session %s?", args[0]), &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Aborted.")
					return nil
				}
			}

			if err := app.Sessions.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed session %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

func newSessionDayOffCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dayoff [DATE]",
		Short: "Mark a date as a day off",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := ""
			if len(args) == 1 {
				date = args[0]
			}

			rec, err := app.Sessions.LogDayOff(context.Background(), orToday(date))
			if err != nil {
				return err
			}

			fmt.Printf("Marked %s as a day off (%s)\n", rec.Date, shortID(rec.ID))
			return nil
		},
	}

	return cmd
}

func newSessionImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Merge sessions from another CSV log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Sessions.Import(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Imported %d new sessions from %s (%d total)\n", res.NewCount, res.SourcePath, res.Total)
			return nil
		},
	}
}
