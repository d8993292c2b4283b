package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/tempus/internal/cli/formatter"
	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/alexanderramin/tempus/internal/flex"
	"github.com/alexanderramin/tempus/internal/service"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Flex balance reports",
	}

	cmd.AddCommand(
		newReportDayCmd(app),
		newReportWeekCmd(app),
		newReportMonthCmd(app),
		newReportYearCmd(app),
		newReportAllCmd(app),
	)

	return cmd
}

// dateArg parses an optional YYYY-MM-DD positional argument, defaulting to today.
func dateArg(args []string) (time.Time, error) {
	if len(args) == 0 {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local), nil
	}
	return domain.ParseDate(args[0])
}

// monthArg parses an optional YYYY-MM positional argument, defaulting to the
// current month.
func monthArg(args []string) (int, time.Month, error) {
	if len(args) == 0 {
		now := time.Now()
		return now.Year(), now.Month(), nil
	}
	t, err := time.ParseInLocation("2006-01", args[0], time.Local)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q (expected YYYY-MM)", args[0])
	}
	return t.Year(), t.Month(), nil
}

func renderPeriodReport(title string, r service.PeriodReport) string {
	var b strings.Builder

	b.WriteString(formatter.Dim(fmt.Sprintf("Target %sh/day", formatter.FormatHours(r.Target))))
	b.WriteString("\n\n")

	rows := [][]string{
		{"Sessions", fmt.Sprintf("%d", r.Sessions)},
		{"Hours", formatter.FormatHours(r.Totals.TotalHours)},
	}
	if r.Sessions > 0 {
		avg := r.Totals.TotalHours / float64(r.Sessions)
		rows = append(rows, []string{"Hrs/session", formatter.FormatHours(avg)})
	}
	rows = append(rows, []string{"Balance", formatter.Balance(r.Totals.Balance)})
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%-12s %s\n", row[0], row[1]))
	}

	if r.Totals.SkippedRecords > 0 {
		b.WriteString("\n")
		b.WriteString(formatter.Dim(fmt.Sprintf("%d malformed records skipped", r.Totals.SkippedRecords)))
		b.WriteString("\n")
	}

	return formatter.RenderBox(title, strings.TrimRight(b.String(), "\n"))
}

func runPeriodReport(app *App, title string, start, end time.Time) error {
	report, err := app.Reports.Period(context.Background(), start, end)
	if err != nil {
		return err
	}
	fmt.Print(renderPeriodReport(title, report))
	fmt.Println()
	return nil
}

func newReportDayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "day [DATE]",
		Short: "Balance for a single day",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := dateArg(args)
			if err != nil {
				return err
			}
			return runPeriodReport(app, day.Format("Mon Jan 2, 2006"), day, day)
		},
	}
}

func newReportWeekCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "week [DATE]",
		Short: "Balance for the ISO week containing a date",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := dateArg(args)
			if err != nil {
				return err
			}

			start := flex.ISOWeekStart(flex.ISOWeekYear(day), flex.ISOWeek(day))
			end := start.AddDate(0, 0, 6)
			title := fmt.Sprintf("Week %d · %s", flex.ISOWeek(day), flex.FormatDateRange(start, end))
			return runPeriodReport(app, title, start, end)
		},
	}
}

func newReportMonthCmd(app *App) *cobra.Command {
	var weekly bool

	cmd := &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: "Balance for a calendar month",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := monthArg(args)
			if err != nil {
				return err
			}

			title := time.Date(year, month, 1, 0, 0, 0, 0, time.Local).Format("January 2006")
			if !weekly {
				start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
				end := start.AddDate(0, 1, -1)
				return runPeriodReport(app, title, start, end)
			}

			report, err := app.Reports.Monthly(context.Background(), year, month)
			if err != nil {
				return err
			}

			headers := []string{"WEEK", "RANGE", "HOURS", "BALANCE"}
			rows := make([][]string, 0, len(report.Weeks))
			var totalHours, totalBalance float64
			for _, w := range report.Weeks {
				rows = append(rows, []string{
					fmt.Sprintf("W%02d", w.WeekNumber),
					flex.FormatDateRange(w.StartDate, w.EndDate),
					formatter.FormatHours(w.TotalHours),
					formatter.Balance(w.Balance),
				})
				totalHours += w.TotalHours
				totalBalance += w.Balance
			}
			rows = append(rows, []string{
				"",
				formatter.Bold("Total"),
				formatter.FormatHours(totalHours),
				formatter.Balance(totalBalance),
			})

			content := formatter.Dim(fmt.Sprintf("Target %sh/day", formatter.FormatHours(report.Target))) +
				"\n\n" + formatter.RenderTable(headers, rows, 2, 3)
			if report.SkippedRecords > 0 {
				content += "\n" + formatter.Dim(fmt.Sprintf("%d malformed records skipped", report.SkippedRecords))
			}
			fmt.Print(formatter.RenderBox(title, strings.TrimRight(content, "\n")))
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().BoolVar(&weekly, "weekly", false, "Break the month down by ISO week")

	return cmd
}

func newReportAllCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "All-time totals across the whole log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			records, err := app.Sessions.List(ctx)
			if err != nil {
				return err
			}

			var start, end time.Time
			for _, r := range records {
				day, err := r.Day()
				if err != nil {
					continue
				}
				if start.IsZero() || day.Before(start) {
					start = day
				}
				if end.IsZero() || day.After(end) {
					end = day
				}
			}
			if start.IsZero() {
				fmt.Println("No sessions logged yet.")
				return nil
			}

			return runPeriodReport(app, "All time", start, end)
		},
	}
}

func newReportYearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "year [YYYY]",
		Short: "Balance for a calendar year",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year := time.Now().Year()
			if len(args) == 1 {
				v, err := strconv.Atoi(args[0])
				if err != nil || v < 1 {
					return fmt.Errorf("invalid year %q", args[0])
				}
				year = v
			}

			start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
			end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.Local)
			return runPeriodReport(app, fmt.Sprintf("%d", year), start, end)
		},
	}
}
