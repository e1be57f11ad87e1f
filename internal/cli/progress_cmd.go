package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/gymtrack/internal/analytics"
	"github.com/alexanderramin/gymtrack/internal/cli/formatter"
	"github.com/alexanderramin/gymtrack/internal/domain"
	"github.com/spf13/cobra"
)

func runHome(cmd *cobra.Command, app *App) error {
	if _, err := app.Workouts.Active(cmd.Context()); err == nil {
		return showActive(cmd, app)
	} else if !errors.Is(err, domain.ErrNoActiveWorkout) {
		return err
	}
	return showDashboard(cmd, app)
}

func showDashboard(cmd *cobra.Command, app *App) error {
	d, err := app.Progress.Dashboard(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDashboard(d, app.now()))
	return nil
}

func newProgressCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "progress",
		Aliases: []string{"p"},
		Short:   "Stats, records and trends",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showDashboard(cmd, app)
		},
	}

	cmd.AddCommand(
		newProgressExerciseCmd(app),
		newProgressBodyCmd(app),
		newProgressCalendarCmd(app),
	)

	return cmd
}

func newProgressExerciseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "exercise [name]",
		Short: "Per-session history of one exercise, or the list of logged exercises",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				d, err := app.Progress.Dashboard(cmd.Context())
				if err != nil {
					return err
				}
				if len(d.Exercises) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No exercises logged yet."))
					return nil
				}
				for _, name := range d.Exercises {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}
			series, err := app.Progress.Exercise(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			conv, err := converter(cmd, app)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatExerciseSeries(series, conv.Label()))
			return nil
		},
	}
}

func newProgressBodyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "body",
		Short: "Body weight trend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := app.Progress.BodyWeight(cmd.Context())
			if err != nil {
				return err
			}
			conv, err := converter(cmd, app)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatBodyWeight(points, conv.Label()))
			return nil
		},
	}
}

func newProgressCalendarCmd(app *App) *cobra.Command {
	var shift int

	cmd := &cobra.Command{
		Use:   "calendar [YYYY-MM]",
		Short: "Month grid of workout days",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.now().Local()
			year, month := now.Year(), now.Month()
			if len(args) == 1 {
				t, err := time.Parse("2006-01", args[0])
				if err != nil {
					return fmt.Errorf("invalid month %q (use YYYY-MM)", args[0])
				}
				year, month = t.Year(), t.Month()
			}
			year, month = analytics.ShiftMonth(year, month, shift)
			cal, err := app.Progress.Calendar(cmd.Context(), year, month)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCalendar(cal))
			return nil
		},
	}

	cmd.Flags().IntVar(&shift, "shift", 0, "Move by this many months (negative goes back)")
	return cmd
}

func newBodyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "body",
		Short: "Log and manage body weight",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listBody(cmd, app)
		},
	}

	var date string
	logCmd := &cobra.Command{
		Use:   "log <weight>",
		Short: "Log body weight in your display unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day := app.now().Local()
			if date != "" {
				t, err := parseLocalTime(date)
				if err != nil {
					return err
				}
				day = t
			}
			logged, err := app.Body.Log(cmd.Context(), asUTCDate(day), args[0])
			if err != nil {
				return err
			}
			if !logged {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Warn(fmt.Sprintf("%q is not a weight, nothing logged.", args[0])))
				return nil
			}
			return listBody(cmd, app)
		},
	}
	logCmd.Flags().StringVar(&date, "date", "", "Date as YYYY-MM-DD (default today)")

	var editDate, editWeight string
	editCmd := &cobra.Command{
		Use:   "edit <#>",
		Short: "Edit an entry by its number in `gymtrack body list`",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := parseIndex(args[0], "entry")
			if err != nil {
				return err
			}
			var day time.Time
			if editDate != "" {
				t, err := parseLocalTime(editDate)
				if err != nil {
					return err
				}
				day = asUTCDate(t)
			}
			if err := app.Body.Edit(cmd.Context(), i, day, editWeight); err != nil {
				return err
			}
			return listBody(cmd, app)
		},
	}
	editCmd.Flags().StringVar(&editDate, "date", "", "New date as YYYY-MM-DD")
	editCmd.Flags().StringVar(&editWeight, "weight", "", "New weight in your display unit")

	cmd.AddCommand(
		logCmd,
		&cobra.Command{
			Use:     "list",
			Aliases: []string{"ls"},
			Short:   "List entries, newest first",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return listBody(cmd, app)
			},
		},
		editCmd,
		&cobra.Command{
			Use:   "delete <#>",
			Short: "Delete an entry by its number in `gymtrack body list`",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				i, err := parseIndex(args[0], "entry")
				if err != nil {
					return err
				}
				if err := app.Body.Delete(cmd.Context(), i); err != nil {
					return err
				}
				return listBody(cmd, app)
			},
		},
	)

	return cmd
}

// asUTCDate keeps the local calendar date of t, at UTC midnight.
func asUTCDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func listBody(cmd *cobra.Command, app *App) error {
	stats, err := app.Body.List(cmd.Context())
	if err != nil {
		return err
	}
	conv, err := converter(cmd, app)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatBodyStats(stats, conv))
	return nil
}

func newSettingsCmd(app *App) *cobra.Command {
	show := func(cmd *cobra.Command, s domain.Settings) {
		fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSettings(s))
	}

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Settings.Get(cmd.Context())
			if err != nil {
				return err
			}
			show(cmd, s)
			return nil
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:       "units <metric|imperial>",
			Short:     "Choose kg or lbs for display and entry",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{string(domain.UnitMetric), string(domain.UnitImperial)},
			RunE: func(cmd *cobra.Command, args []string) error {
				u, ok := domain.ParseUnitSystem(args[0])
				if !ok {
					return fmt.Errorf("unknown unit system %q (want metric or imperial)", args[0])
				}
				s, err := app.Settings.SetUnitSystem(cmd.Context(), u)
				if err != nil {
					return err
				}
				show(cmd, s)
				return nil
			},
		},
		&cobra.Command{
			Use:   "rest <seconds>",
			Short: "Default rest between sets",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				seconds, err := parseSeconds(args[0])
				if err != nil {
					return err
				}
				s, err := app.Settings.SetDefaultRestTime(cmd.Context(), seconds)
				if err != nil {
					return err
				}
				show(cmd, s)
				return nil
			},
		},
		&cobra.Command{
			Use:       "sound <on|off>",
			Short:     "Toggle the rest timer and its cue",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{"on", "off"},
			RunE: func(cmd *cobra.Command, args []string) error {
				var on bool
				switch strings.ToLower(args[0]) {
				case "on", "true", "yes":
					on = true
				case "off", "false", "no":
				default:
					return fmt.Errorf("want on or off, got %q", args[0])
				}
				s, err := app.Settings.SetSoundEffects(cmd.Context(), on)
				if err != nil {
					return err
				}
				show(cmd, s)
				return nil
			},
		},
	)

	return cmd
}
