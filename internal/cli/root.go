package cli

import (
	"github.com/alexanderramin/tempus/internal/config"
	"github.com/alexanderramin/tempus/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Sessions service.SessionService
	Timer    service.TimerService
	Reports  service.ReportService
	Config   *config.Config

	// IsInteractive reports whether stdin is attached to a terminal.
	// Interactive commands fall back to flag-only behavior when it is nil
	// or returns false.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "tempus" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tempus",
		Short: "Personal flex-time tracker",
	}

	root.AddCommand(
		newStartCmd(app),
		newStopCmd(app),
		newTimerCmd(app),
		newSessionCmd(app),
		newReportCmd(app),
		newTargetCmd(app),
	)

	return root
}
