package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gymtrack/internal/cli/formatter"
	"github.com/alexanderramin/gymtrack/internal/domain"
	"github.com/alexanderramin/gymtrack/internal/editor"
	"github.com/alexanderramin/gymtrack/internal/units"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"h"},
		Short:   "Browse and edit finished workouts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listHistory(cmd, app)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:     "list",
			Aliases: []string{"ls"},
			Short:   "List finished workouts, newest first",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return listHistory(cmd, app)
			},
		},
		newHistoryShowCmd(app),
		newHistoryLogCmd(app),
		newHistoryRenameCmd(app),
		newHistoryDurationCmd(app),
		newHistoryAddCmd(app),
		newHistoryRemoveCmd(app),
		newExerciseEditCmd("Rename a logged exercise or change its muscle group", func(cmd *cobra.Command, idArg string, fn func(*editor.ExerciseList) error) error {
			return editWorkout(cmd, app, idArg, func(d *editor.WorkoutDraft) error {
				return fn(&d.ExerciseList)
			})
		}),
		newHistorySetCmd(app),
		newHistoryDeleteCmd(app),
	)

	return cmd
}

func converter(cmd *cobra.Command, app *App) (units.Converter, error) {
	settings, err := app.Settings.Get(cmd.Context())
	if err != nil {
		return units.Converter{}, err
	}
	return units.New(settings.UnitSystem), nil
}

func listHistory(cmd *cobra.Command, app *App) error {
	history, err := app.History.List(cmd.Context())
	if err != nil {
		return err
	}
	conv, err := converter(cmd, app)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatHistoryList(history, conv, app.now()))
	return nil
}

func showWorkout(cmd *cobra.Command, app *App, w *domain.Workout) error {
	conv, err := converter(cmd, app)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatWorkoutDetail(*w, conv, app.now()))
	return nil
}

// editWorkout applies fn to the history entry named by idArg and shows it.
func editWorkout(cmd *cobra.Command, app *App, idArg string, fn func(*editor.WorkoutDraft) error) error {
	id, err := parseID(idArg, "workout")
	if err != nil {
		return err
	}
	w, err := app.History.Edit(cmd.Context(), id, fn)
	if err != nil {
		return err
	}
	return showWorkout(cmd, app, w)
}

func newHistoryShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a finished workout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "workout")
			if err != nil {
				return err
			}
			w, err := app.History.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return showWorkout(cmd, app, w)
		},
	}
}

func newHistoryLogCmd(app *App) *cobra.Command {
	var name, start string
	var minutes int
	var exercises []string

	cmd := &cobra.Command{
		Use:     "log",
		Short:   "Log a workout after the fact",
		Example: `  gymtrack history log --name "Morning run" --start "2025-06-01 07:30" --duration 35 -e "Run:Cardio"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			startTime := app.now()
			if start != "" {
				t, err := parseLocalTime(start)
				if err != nil {
					return err
				}
				startTime = t
			}
			w, err := app.History.LogPast(cmd.Context(), func(d *editor.WorkoutDraft) error {
				if name != "" {
					d.Name = name
				}
				d.StartTime = startTime.UTC()
				d.SetDuration(minutes)
				for _, arg := range exercises {
					exName, group := parseExerciseArg(arg)
					d.AddExercise(exName, group, 0)
				}
				return nil
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Logged %q (id %d)", w.Name, w.ID)))
			return showWorkout(cmd, app, w)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Workout name")
	cmd.Flags().StringVar(&start, "start", "", `Start as YYYY-MM-DD or "YYYY-MM-DD HH:MM" (default now)`)
	cmd.Flags().IntVarP(&minutes, "duration", "d", editor.DefaultDurationMinutes, "Duration in minutes")
	cmd.Flags().StringArrayVarP(&exercises, "exercise", "e", nil, `Exercise as "Name" or "Name:Group" (repeatable)`)
	return cmd
}

func newHistoryRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a finished workout",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editWorkout(cmd, app, args[0], func(d *editor.WorkoutDraft) error {
				d.Name = strings.Join(args[1:], " ")
				return nil
			})
		},
	}
}

func newHistoryDurationCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "duration <id> <minutes>",
		Short: "Change how long a finished workout lasted",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			minutes, err := parseSeconds(args[1])
			if err != nil || minutes == 0 {
				return fmt.Errorf("invalid number of minutes %q", args[1])
			}
			return editWorkout(cmd, app, args[0], func(d *editor.WorkoutDraft) error {
				d.SetDuration(minutes)
				return nil
			})
		},
	}
}

func newHistoryAddCmd(app *App) *cobra.Command {
	group := newGroupValue(domain.GroupOther)

	cmd := &cobra.Command{
		Use:   "add <id> <exercise name>",
		Short: "Add an exercise to a finished workout",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editWorkout(cmd, app, args[0], func(d *editor.WorkoutDraft) error {
				d.AddExercise(strings.Join(args[1:], " "), group.group, 0)
				return nil
			})
		},
	}

	cmd.Flags().VarP(group, "group", "g", "Muscle group: "+groupNames())
	return cmd
}

func newHistoryRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id> <exercise>",
		Aliases: []string{"rm"},
		Short:   "Remove an exercise from a finished workout",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := parseIndex(args[1], "exercise")
			if err != nil {
				return err
			}
			return editWorkout(cmd, app, args[0], func(d *editor.WorkoutDraft) error {
				return d.RemoveExercise(i)
			})
		},
	}
}

func newHistorySetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Add, remove or edit sets of a finished workout",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <id> <exercise>",
			Short: "Add a set, repeating the previous one",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				i, err := parseIndex(args[1], "exercise")
				if err != nil {
					return err
				}
				return editWorkout(cmd, app, args[0], func(d *editor.WorkoutDraft) error {
					return d.AddSet(i)
				})
			},
		},
		&cobra.Command{
			Use:     "remove <id> <exercise> <set>",
			Aliases: []string{"rm"},
			Short:   "Remove a set",
			Args:    cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				i, j, err := parseIndexes(args[1], args[2])
				if err != nil {
					return err
				}
				return editWorkout(cmd, app, args[0], func(d *editor.WorkoutDraft) error {
					return d.RemoveSet(i, j)
				})
			},
		},
		&cobra.Command{
			Use:   "edit <id> <exercise> <set> <reps|weight|time> <value>",
			Short: "Edit a set field; weights are in your display unit",
			Args:  cobra.ExactArgs(5),
			RunE: func(cmd *cobra.Command, args []string) error {
				i, j, err := parseIndexes(args[1], args[2])
				if err != nil {
					return err
				}
				field, err := parseField(args[3])
				if err != nil {
					return err
				}
				return editWorkout(cmd, app, args[0], func(d *editor.WorkoutDraft) error {
					return d.EditSet(i, j, field, args[4])
				})
			},
		},
	)

	return cmd
}

func newHistoryDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a finished workout (personal records are kept)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "workout")
			if err != nil {
				return err
			}
			if !yes {
				ok, err := confirmOrRefuse(app, fmt.Sprintf("Delete workout %d?", id))
				if err != nil || !ok {
					return err
				}
			}
			if err := app.History.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Workout deleted"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return cmd
}
