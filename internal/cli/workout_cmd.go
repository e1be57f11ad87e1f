package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/gymtrack/internal/cli/formatter"
	"github.com/alexanderramin/gymtrack/internal/domain"
	"github.com/alexanderramin/gymtrack/internal/units"
	"github.com/spf13/cobra"
)

func newWorkoutCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "workout",
		Aliases: []string{"w"},
		Short:   "Run the workout in progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showActive(cmd, app)
		},
	}

	cmd.AddCommand(
		newWorkoutStartCmd(app),
		newWorkoutShowCmd(app),
		newWorkoutAddCmd(app),
		newWorkoutRemoveCmd(app),
		newWorkoutRenameCmd(app),
		newWorkoutRestCmd(app),
		newWorkoutSetCmd(app),
		newWorkoutDoneCmd(app),
		newWorkoutFinishCmd(app),
		newWorkoutDiscardCmd(app),
		newWorkoutSaveTemplateCmd(app),
	)

	return cmd
}

func showActive(cmd *cobra.Command, app *App) error {
	s, err := app.Workouts.Active(cmd.Context())
	if errors.Is(err, domain.ErrNoActiveWorkout) {
		fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No workout in progress. Start one with `gymtrack workout start`."))
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatActiveWorkout(s))
	return nil
}

func newWorkoutStartCmd(app *App) *cobra.Command {
	var templateID int64

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a workout, blank or from a template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return startWorkout(cmd, app, templateID)
		},
	}

	cmd.Flags().Int64VarP(&templateID, "template", "t", 0, "Template ID to start from")
	return cmd
}

func startWorkout(cmd *cobra.Command, app *App, templateID int64) error {
	s, err := app.Workouts.Start(cmd.Context(), templateID)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Started %q", s.Workout.Name)))
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatActiveWorkout(s))
	return nil
}

func newWorkoutShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the workout in progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showActive(cmd, app)
		},
	}
}

func newWorkoutAddCmd(app *App) *cobra.Command {
	group := newGroupValue(domain.GroupOther)

	cmd := &cobra.Command{
		Use:   "add <exercise name>",
		Short: "Add an exercise with one seeded set",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			added, err := app.Workouts.AddExercise(cmd.Context(), strings.Join(args, " "), group.group)
			if err != nil {
				return err
			}
			if !added {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Warn("Exercise name is blank, nothing added."))
				return nil
			}
			return showActive(cmd, app)
		},
	}

	cmd.Flags().VarP(group, "group", "g", "Muscle group: "+groupNames())
	return cmd
}

func newWorkoutRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <exercise>",
		Aliases: []string{"rm"},
		Short:   "Remove an exercise",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := parseIndex(args[0], "exercise")
			if err != nil {
				return err
			}
			if err := app.Workouts.RemoveExercise(cmd.Context(), i); err != nil {
				return err
			}
			return showActive(cmd, app)
		},
	}
}

func newWorkoutRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <name>",
		Short: "Rename the workout in progress",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Workouts.Rename(cmd.Context(), strings.Join(args, " ")); err != nil {
				return err
			}
			return showActive(cmd, app)
		},
	}
}

func newWorkoutRestCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rest <exercise> <seconds>",
		Short: "Set an exercise's rest time (0 uses the default)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := parseIndex(args[0], "exercise")
			if err != nil {
				return err
			}
			seconds, err := parseSeconds(args[1])
			if err != nil {
				return err
			}
			if err := app.Workouts.SetRestTime(cmd.Context(), i, seconds); err != nil {
				return err
			}
			return showActive(cmd, app)
		},
	}
}

func newWorkoutSetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Add, remove or edit sets",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <exercise>",
			Short: "Add a set, repeating the previous one",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				i, err := parseIndex(args[0], "exercise")
				if err != nil {
					return err
				}
				if err := app.Workouts.AddSet(cmd.Context(), i); err != nil {
					return err
				}
				return showActive(cmd, app)
			},
		},
		&cobra.Command{
			Use:     "remove <exercise> <set>",
			Aliases: []string{"rm"},
			Short:   "Remove a set",
			Args:    cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				i, j, err := parseIndexes(args[0], args[1])
				if err != nil {
					return err
				}
				if err := app.Workouts.RemoveSet(cmd.Context(), i, j); err != nil {
					return err
				}
				return showActive(cmd, app)
			},
		},
		&cobra.Command{
			Use:   "edit <exercise> <set> <reps|weight|time> <value>",
			Short: "Edit a set field; weights are in your display unit",
			Args:  cobra.ExactArgs(4),
			RunE: func(cmd *cobra.Command, args []string) error {
				i, j, err := parseIndexes(args[0], args[1])
				if err != nil {
					return err
				}
				field, err := parseField(args[2])
				if err != nil {
					return err
				}
				if err := app.Workouts.EditSet(cmd.Context(), i, j, field, args[3]); err != nil {
					return err
				}
				return showActive(cmd, app)
			},
		},
	)

	return cmd
}

func newWorkoutDoneCmd(app *App) *cobra.Command {
	var wait bool

	cmd := &cobra.Command{
		Use:   "done <exercise> <set>",
		Short: "Toggle a set complete, starting the rest timer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, j, err := parseIndexes(args[0], args[1])
			if err != nil {
				return err
			}
			req, err := app.Workouts.ToggleSet(cmd.Context(), i, j)
			if err != nil {
				return err
			}
			if err := showActive(cmd, app); err != nil {
				return err
			}
			if req == nil {
				return nil
			}
			playCue(cmd, app)
			if app.interactive() || wait {
				return runRest(cmd, app, req.Seconds, req.Label)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rest %s for %s. Run `gymtrack rest %d` to count it down.\n",
				formatter.FormatClock(req.Seconds), req.Label, req.Seconds)
			return nil
		},
	}

	cmd.Flags().BoolVar(&wait, "wait", false, "Count the rest down here even without a terminal")
	return cmd
}

func newWorkoutFinishCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "finish",
		Short: "Finish the workout, keeping only completed sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Workouts.Finish(cmd.Context())
			if err != nil {
				return err
			}
			settings, err := app.Settings.Get(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatFinish(res, units.New(settings.UnitSystem)))
			return nil
		},
	}
}

func newWorkoutDiscardCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "discard",
		Short: "Throw away the workout in progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				ok, err := confirmOrRefuse(app, "Discard the workout in progress?")
				if err != nil || !ok {
					return err
				}
			}
			if err := app.Workouts.Discard(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Workout discarded"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return cmd
}

func newWorkoutSaveTemplateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "save-template <name>",
		Short: "Save the workout's exercises as a new template",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, saved, err := app.Workouts.SaveAsTemplate(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if !saved {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Warn("Template name is blank, nothing saved."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Saved template %q (id %d)", t.Name, t.ID)))
			return nil
		},
	}
}
