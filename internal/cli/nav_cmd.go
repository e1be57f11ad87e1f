package cli

import (
	"fmt"

	"github.com/alexanderramin/gymtrack/internal/cli/formatter"
	"github.com/alexanderramin/gymtrack/internal/navigation"
	"github.com/spf13/cobra"
)

// newNavCmd exposes the back-gesture resolution to a hosting shell: given the
// current UI state it reports the depth and what each back press would do.
func newNavCmd() *cobra.Command {
	var screen, modal, detail string
	var once bool

	cmd := &cobra.Command{
		Use:    "nav",
		Short:  "Resolve back navigation for a UI state",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := navigation.ParseScreen(screen)
			if err != nil {
				return err
			}
			state := navigation.State{Screen: sc, Modal: modal, Detail: detail}
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "depth %d\n", navigation.Depth(state))
			for step := 1; ; step++ {
				next, action := navigation.Back(state)
				fmt.Fprintf(out, "%d. %s", step, action)
				if action == navigation.ActionExit {
					fmt.Fprintln(out)
					return nil
				}
				fmt.Fprintln(out, formatter.Dim(fmt.Sprintf(" -> %s", describeNav(next))))
				if once {
					return nil
				}
				state = next
			}
		},
	}

	cmd.Flags().StringVar(&screen, "screen", string(navigation.ScreenHome), "Current screen")
	cmd.Flags().StringVar(&modal, "modal", "", "Open dialog, if any")
	cmd.Flags().StringVar(&detail, "detail", "", "Open exercise detail, if any")
	cmd.Flags().BoolVar(&once, "once", false, "Resolve a single back press")
	return cmd
}

func describeNav(s navigation.State) string {
	d := string(s.Screen)
	if s.Detail != "" {
		d += " detail=" + s.Detail
	}
	if s.Modal != "" {
		d += " modal=" + s.Modal
	}
	return d
}
