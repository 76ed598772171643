// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"dps-cli/internal/engine"
	"dps-cli/internal/issue"

	"github.com/spf13/cobra"
)

// newValidateCommand creates the `dps validate` command.
// It validates all enabled presets, or only the named ones.
func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [preset...]",
		Short: "Validate settings without an interactive session",
		Long: `Validate the current settings and exit.

Settings start from their defaults, overridden by DPS_<NAME> environment
variables. Without arguments all enabled presets are validated; with
arguments only the named presets are checked. Each failure is reported
as [preset] SETTING: problem.

Exits with code 0 when everything validates, 1 otherwise.

Examples:
  dps validate
  dps validate network
  DPS_SSH_PORT=99999 dps validate security`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := buildStore()
			if err != nil {
				cmd.SilenceUsage = true
				return err
			}

			result, err := engine.New(s).ValidateAll(args...)
			if err != nil {
				return err
			}

			if result.ErrorCount() > 0 {
				for _, m := range result.Messages {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", errorIcon, m.Format())
				}
				fmt.Fprintln(cmd.ErrOrStderr())
				fmt.Fprintf(cmd.ErrOrStderr(), "%s Validation failed with %d issue(s)\n", errorIcon, result.ErrorCount())
				renderIssue(issue.ValidationFailedId)
				cmd.SilenceUsage = true
				cmd.SilenceErrors = true
				return &ExitError{Code: 1}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s All settings are valid\n", successIcon)
			return nil
		},
	}
}
