// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"dps-cli/internal/engine"
	"dps-cli/internal/envio"
	"dps-cli/internal/issue"
	"dps-cli/internal/store"
	"dps-cli/internal/tui"

	"github.com/spf13/cobra"
)

// newExportCommand creates the `dps export` command.
func newExportCommand() *cobra.Command {
	var (
		outFile      string
		skipDefaults bool
		force        bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write settings as a sourceable environment file",
		Long: `Write the current settings as POSIX shell export statements.

The output is sourceable: a line per exportable setting of the form
  export DPS_NAME="value"
in preset-priority then declaration order. Non-exportable settings
(passwords) are omitted. Settings must validate before export.

Examples:
  dps export                      Write to stdout
  dps export -o settings.env      Write to a file
  dps export --skip-defaults      Only settings that were changed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := buildStore()
			if err != nil {
				cmd.SilenceUsage = true
				return err
			}

			// Refuse to export an invalid configuration.
			result, err := engine.New(s).ValidateAll()
			if err != nil {
				return err
			}
			if result.ErrorCount() > 0 {
				for _, m := range result.Messages {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", errorIcon, m.Format())
				}
				renderIssue(issue.ValidationFailedId)
				cmd.SilenceUsage = true
				cmd.SilenceErrors = true
				return &ExitError{Code: 1}
			}

			target := outFile
			if target == "" {
				target = appConfig.Export.File.String()
			}
			if !cmd.Flags().Changed("skip-defaults") {
				skipDefaults = appConfig.Export.SkipDefaults
			}
			if err := writeExport(cmd, s, target, skipDefaults, !force); err != nil {
				cmd.SilenceUsage = true
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFile, "output", "o", "", "export file path (default from config, stdout if unset)")
	cmd.Flags().BoolVar(&skipDefaults, "skip-defaults", false, "omit settings still holding their default value")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file without asking")

	return cmd
}

// writeExport emits the export statements to the target path, or stdout when
// the path is empty. When confirmOverwrite is set and the target exists, the
// user is asked before the file is replaced.
func writeExport(cmd *cobra.Command, s *store.Store, path string, skipDefaults, confirmOverwrite bool) error {
	exporter := envio.NewExporter(s, envPrefix())

	if path == "" {
		if skipDefaults {
			return exporter.WriteNonDefaults(cmd.OutOrStdout())
		}
		return exporter.WriteAll(cmd.OutOrStdout())
	}

	if confirmOverwrite {
		if _, err := os.Stat(path); err == nil {
			ok, err := tui.Confirm(tui.ConfirmOptions{
				Title: fmt.Sprintf("Overwrite %s?", path),
			})
			if err != nil {
				return err
			}
			if !ok {
				renderIssue(issue.ExportFileExistsId)
				cmd.SilenceErrors = true
				cmd.SilenceUsage = true
				return &ExitError{Code: 1}
			}
		}
	}

	content := exporter.ExportAll()
	if skipDefaults {
		content = exporter.ExportNonDefaults()
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return issue.NewErrorContext().
			WithOperation("export settings").
			WithResource(path).
			WithSuggestion("Check the target directory exists and is writable").
			Wrap(err).
			BuildError()
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s Settings written to %s\n", successIcon, SettingStyle.Render(path))
	return nil
}
