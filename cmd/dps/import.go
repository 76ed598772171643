// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"dps-cli/internal/engine"
	"dps-cli/internal/envio"
	"dps-cli/internal/issue"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// newImportCommand creates the `dps import` command.
func newImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Apply a previously exported environment file",
		Long: `Read a shell-sourceable environment file and apply its DPS_<NAME>
assignments, then report the resulting validation state.

Both plain assignments and export statements are understood. Variables
outside the configured prefix are ignored. Values that fail validation
are still applied and reported, matching environment variable imports.

Examples:
  dps import settings.env
  dps import - < settings.env`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := buildStore()
			if err != nil {
				cmd.SilenceUsage = true
				return err
			}

			path := args[0]
			reader := cmd.InOrStdin()
			if path != "-" {
				f, err := os.Open(path)
				if err != nil {
					renderIssue(issue.EnvImportFailedId)
					cmd.SilenceUsage = true
					return issue.NewErrorContext().
						WithOperation("import environment file").
						WithResource(path).
						WithSuggestion("Check the file path").
						Wrap(err).
						BuildError()
				}
				defer f.Close()
				reader = f
			}

			importer := envio.NewImporter(s, envPrefix(), log.Default())
			n, err := importer.ImportFile(reader, path)
			if err != nil {
				renderIssue(issue.EnvImportFailedId)
				cmd.SilenceUsage = true
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Applied %d setting(s) from %s\n", successIcon, n, SettingStyle.Render(path))

			result, err := engine.New(s).ValidateAll()
			if err != nil {
				return err
			}
			if result.ErrorCount() > 0 {
				for _, m := range result.Messages {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", errorIcon, m.Format())
				}
				cmd.SilenceUsage = true
				cmd.SilenceErrors = true
				return &ExitError{Code: 1}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s All settings are valid\n", successIcon)
			return nil
		},
	}
}
