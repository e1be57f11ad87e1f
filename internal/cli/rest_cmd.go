package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gymtrack/internal/cli/formatter"
	"github.com/alexanderramin/gymtrack/internal/resttimer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newRestCmd(app *App) *cobra.Command {
	var label string

	cmd := &cobra.Command{
		Use:   "rest [seconds]",
		Short: "Count a rest period down (defaults to your rest setting)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var seconds int
			if len(args) == 1 {
				n, err := parseSeconds(args[0])
				if err != nil {
					return err
				}
				seconds = n
			} else {
				s, err := app.Settings.Get(cmd.Context())
				if err != nil {
					return err
				}
				seconds = s.DefaultRestTime
			}
			if seconds == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Rest time is 0, nothing to count."))
				return nil
			}
			return runRest(cmd, app, seconds, strings.TrimSpace(label))
		},
	}

	cmd.Flags().StringVarP(&label, "label", "l", "Rest", "Label shown next to the countdown")
	return cmd
}

// playCue sounds the completion cue. Failures are reported, not returned.
func playCue(cmd *cobra.Command, app *App) {
	if app.Cue == nil {
		return
	}
	if err := app.Cue.Play(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), formatter.Warn("could not play cue: "+err.Error()))
	}
}

// runRest counts seconds down, full screen on a terminal and one line per
// tick otherwise, then plays the cue.
func runRest(cmd *cobra.Command, app *App, seconds int, label string) error {
	timer := resttimer.New(app.Cue)
	timer.Trigger(seconds, label)

	if app.interactive() {
		p := tea.NewProgram(newRestView(timer, app.RestInterval), tea.WithContext(cmd.Context()))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running rest timer: %w", err)
		}
	} else {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, formatter.FormatRest(timer.Snapshot()))
		runner := resttimer.Runner{
			Timer:    timer,
			Interval: app.RestInterval,
			OnTick: func(s resttimer.Snapshot) {
				fmt.Fprintln(out, formatter.FormatRest(s))
			},
		}
		if err := runner.Run(cmd.Context()); err != nil {
			return err
		}
	}

	if err := timer.CueErr(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), formatter.Warn("could not play rest cue: "+err.Error()))
	}
	return nil
}
