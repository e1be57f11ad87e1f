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

func newTemplateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "template",
		Aliases: []string{"t"},
		Short:   "Manage workout templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listTemplates(cmd, app)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:     "list",
			Aliases: []string{"ls"},
			Short:   "List templates",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return listTemplates(cmd, app)
			},
		},
		newTemplateShowCmd(app),
		newTemplateCreateCmd(app),
		newTemplateRenameCmd(app),
		newTemplateAddCmd(app),
		newTemplateRemoveCmd(app),
		newTemplateRestCmd(app),
		newExerciseEditCmd("Rename an exercise or change its muscle group", func(cmd *cobra.Command, idArg string, fn func(*editor.ExerciseList) error) error {
			return editTemplate(cmd, app, idArg, func(d *editor.TemplateDraft) error {
				return fn(&d.ExerciseList)
			})
		}),
		newTemplateSetCmd(app),
		newTemplateDeleteCmd(app),
		newTemplateStartCmd(app),
	)

	return cmd
}

func listTemplates(cmd *cobra.Command, app *App) error {
	templates, err := app.Templates.List(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTemplateList(templates))
	return nil
}

func showTemplate(cmd *cobra.Command, app *App, t *domain.Template) error {
	settings, err := app.Settings.Get(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTemplateShow(*t, units.New(settings.UnitSystem)))
	return nil
}

// editTemplate applies fn to the template named by idArg and shows the result.
func editTemplate(cmd *cobra.Command, app *App, idArg string, fn func(*editor.TemplateDraft) error) error {
	id, err := parseID(idArg, "template")
	if err != nil {
		return err
	}
	t, err := app.Templates.Edit(cmd.Context(), id, fn)
	if err != nil {
		return err
	}
	return showTemplate(cmd, app, t)
}

func newTemplateShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "template")
			if err != nil {
				return err
			}
			t, err := app.Templates.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return showTemplate(cmd, app, t)
		},
	}
}

// parseExerciseArg reads "Name" or "Name:Group".
func parseExerciseArg(arg string) (string, domain.MuscleGroup) {
	name, groupText, _ := strings.Cut(arg, ":")
	group, _ := domain.ParseMuscleGroup(groupText)
	return name, group
}

func newTemplateCreateCmd(app *App) *cobra.Command {
	var exercises []string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a template",
		Example: `  gymtrack template create "Push Day" -e "Bench Press:Chest" -e "Dips:Triceps"`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, saved, err := app.Templates.Create(cmd.Context(), strings.Join(args, " "), func(d *editor.TemplateDraft) error {
				for _, arg := range exercises {
					name, group := parseExerciseArg(arg)
					d.AddExercise(name, group, 0)
				}
				return nil
			})
			if err != nil {
				return err
			}
			if !saved {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Warn("Template name is blank, nothing saved."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Created template %q (id %d)", t.Name, t.ID)))
			return showTemplate(cmd, app, t)
		},
	}

	cmd.Flags().StringArrayVarP(&exercises, "exercise", "e", nil, `Exercise as "Name" or "Name:Group" (repeatable)`)
	return cmd
}

func newTemplateRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a template",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editTemplate(cmd, app, args[0], func(d *editor.TemplateDraft) error {
				d.Name = strings.Join(args[1:], " ")
				return nil
			})
		},
	}
}

func newTemplateAddCmd(app *App) *cobra.Command {
	group := newGroupValue(domain.GroupOther)
	var rest int

	cmd := &cobra.Command{
		Use:   "add <id> <exercise name>",
		Short: "Add an exercise to a template",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editTemplate(cmd, app, args[0], func(d *editor.TemplateDraft) error {
				d.AddExercise(strings.Join(args[1:], " "), group.group, rest)
				return nil
			})
		},
	}

	cmd.Flags().VarP(group, "group", "g", "Muscle group: "+groupNames())
	cmd.Flags().IntVar(&rest, "rest", 0, "Rest time in seconds (0 uses the default)")
	return cmd
}

func newTemplateRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id> <exercise>",
		Aliases: []string{"rm"},
		Short:   "Remove an exercise from a template",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := parseIndex(args[1], "exercise")
			if err != nil {
				return err
			}
			return editTemplate(cmd, app, args[0], func(d *editor.TemplateDraft) error {
				return d.RemoveExercise(i)
			})
		},
	}
}

func newTemplateRestCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rest <id> <exercise> <seconds>",
		Short: "Set an exercise's rest time",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := parseIndex(args[1], "exercise")
			if err != nil {
				return err
			}
			seconds, err := parseSeconds(args[2])
			if err != nil {
				return err
			}
			return editTemplate(cmd, app, args[0], func(d *editor.TemplateDraft) error {
				return d.SetRestTime(i, seconds)
			})
		},
	}
}

// newExerciseEditCmd builds the "exercise" subcommand shared by templates and
// history. apply runs the edit against the draft named by idArg.
func newExerciseEditCmd(short string, apply func(cmd *cobra.Command, idArg string, fn func(*editor.ExerciseList) error) error) *cobra.Command {
	group := newGroupValue("")
	var name string

	cmd := &cobra.Command{
		Use:   "exercise <id> <exercise>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := parseIndex(args[1], "exercise")
			if err != nil {
				return err
			}
			nameSet, groupSet := cmd.Flags().Changed("name"), cmd.Flags().Changed("group")
			if !nameSet && !groupSet {
				return fmt.Errorf("nothing to change (use --name or --group)")
			}
			return apply(cmd, args[0], func(l *editor.ExerciseList) error {
				if nameSet {
					if err := l.RenameExercise(i, name); err != nil {
						return err
					}
				}
				if groupSet {
					return l.SetMuscleGroup(i, group.group)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "New exercise name")
	cmd.Flags().VarP(group, "group", "g", "Muscle group: "+groupNames())
	return cmd
}

func newTemplateSetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Add, remove or edit template sets",
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
				return editTemplate(cmd, app, args[0], func(d *editor.TemplateDraft) error {
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
				return editTemplate(cmd, app, args[0], func(d *editor.TemplateDraft) error {
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
				return editTemplate(cmd, app, args[0], func(d *editor.TemplateDraft) error {
					return d.EditSet(i, j, field, args[4])
				})
			},
		},
	)

	return cmd
}

func newTemplateDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "template")
			if err != nil {
				return err
			}
			if !yes {
				ok, err := confirmOrRefuse(app, fmt.Sprintf("Delete template %d?", id))
				if err != nil || !ok {
					return err
				}
			}
			if err := app.Templates.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Template deleted"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return cmd
}

func newTemplateStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start <id>",
		Short: "Start a workout from a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "template")
			if err != nil {
				return err
			}
			return startWorkout(cmd, app, id)
		},
	}
}
