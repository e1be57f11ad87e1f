package cli

import (
	"time"

	"github.com/alexanderramin/gymtrack/internal/resttimer"
	"github.com/alexanderramin/gymtrack/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Settings  service.SettingsService
	Workouts  service.WorkoutService
	Templates service.TemplateService
	History   service.HistoryService
	Body      service.BodyStatService
	Progress  service.ProgressService
	Backup    service.BackupService

	// Cue plays when a set is completed and again when its rest runs out.
	Cue resttimer.Cue
	// IsInteractive reports whether a terminal is attached. Nil means never.
	IsInteractive func() bool
	// Confirm asks a yes/no question. Nil uses a huh form.
	Confirm func(title string) (bool, error)
	// Now defaults to time.Now.
	Now func() time.Time
	// RestInterval is the countdown tick; zero means one second.
	RestInterval time.Duration
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) confirm(title string) (bool, error) {
	if a.Confirm != nil {
		return a.Confirm(title)
	}
	return confirmForm(title)
}

// NewRootCmd creates the top-level "gymtrack" command and registers all
// subcommands against the provided App. Without a subcommand it shows the
// active workout, or the progress dashboard when none is running.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "gymtrack",
		Short:         "Local workout tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHome(cmd, app)
		},
	}

	root.AddCommand(
		newWorkoutCmd(app),
		newTemplateCmd(app),
		newHistoryCmd(app),
		newProgressCmd(app),
		newBodyCmd(app),
		newSettingsCmd(app),
		newBackupCmd(app),
		newRestCmd(app),
		newNavCmd(),
	)

	return root
}
