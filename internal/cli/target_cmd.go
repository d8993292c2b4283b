package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/tempus/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTargetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "target",
		Short: "Show or change the daily target hours",
	}

	cmd.AddCommand(
		newTargetGetCmd(app),
		newTargetSetCmd(app),
	)

	return cmd
}

func newTargetGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the daily target",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("Daily target: %sh\n", formatter.FormatHours(app.Config.DailyTarget()))
			return nil
		},
	}
}

func newTargetSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set HOURS",
		Short: "Set the daily target in decimal hours",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hours, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid hours %q", args[0])
			}

			if err := app.Config.SetDailyTarget(hours); err != nil {
				return err
			}

			fmt.Printf("Daily target set to %sh\n", formatter.FormatHours(hours))
			return nil
		},
	}
}
