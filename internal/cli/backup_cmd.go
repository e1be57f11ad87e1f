package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/gymtrack/internal/backup"
	"github.com/alexanderramin/gymtrack/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newBackupCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export, import and inspect your data",
	}

	cmd.AddCommand(
		newBackupExportCmd(app),
		newBackupImportCmd(app),
		&cobra.Command{
			Use:   "status",
			Short: "Show what is stored",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				infos, err := app.Backup.Collections(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCollections(infos))
				return nil
			},
		},
	)

	return cmd
}

func newBackupExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all data to a JSON backup file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "-" {
				return app.Backup.Export(cmd.Context(), cmd.OutOrStdout())
			}
			path := out
			if path == "" {
				path = backup.FileName(app.now())
			}
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("creating backup file: %w", err)
			}
			if err := app.Backup.Export(cmd.Context(), f); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("writing backup file: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Exported to "+path))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", `Output file (default gym-tracker-backup-<date>.json, "-" for stdout)`)
	return cmd
}

func newBackupImportCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all data with a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("reading backup file: %w", err)
			}

			b, err := backup.Parse(data)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), formatter.Dim(err.Error()))
				return errors.New(backup.UserMessage(err))
			}

			if !yes {
				ok, err := confirmOrRefuse(app, fmt.Sprintf("Replace all data with %d workouts, %d templates and %d body weight entries?",
					len(b.PastWorkouts), len(b.Templates), len(b.BodyStats)))
				if err != nil || !ok {
					return err
				}
			}
			if err := app.Backup.Restore(cmd.Context(), b); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Data imported successfully!"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return cmd
}
