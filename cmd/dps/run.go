// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"dps-cli/internal/issue"
	"dps-cli/internal/workflow"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// newRunCommand creates the `dps run` command.
func newRunCommand() *cobra.Command {
	var (
		outFile      string
		skipDefaults bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Interactive settings confirmation session",
		Long: `Walk through the interactive confirmation session.

Settings start from their defaults, overridden by DPS_<NAME> environment
variables. Failing settings are prompted first; the preset menu then lets
you revisit any group before confirming. Confirmation is only possible
once every active setting validates.

On confirmation the settings are written as a sourceable environment
file. Aborting leaves no output behind.

Examples:
  dps run
  dps run -o /tmp/install.env
  DPS_HOSTNAME=node-01 dps run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := buildStore()
			if err != nil {
				cmd.SilenceUsage = true
				return err
			}

			wf := workflow.New(s, newTerminalConsole(), log.Default())
			state, err := wf.Run()
			if err != nil {
				return fmt.Errorf("interactive session: %w", err)
			}

			if state == workflow.StateAborted {
				renderIssue(issue.SessionAbortedId)
				cmd.SilenceUsage = true
				cmd.SilenceErrors = true
				return &ExitError{Code: 1}
			}

			target := outFile
			if target == "" {
				target = appConfig.Export.File.String()
			}
			if err := writeExport(cmd, s, target, skipDefaults, true); err != nil {
				cmd.SilenceUsage = true
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Configuration confirmed\n", successIcon)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFile, "output", "o", "", "export file path (default from config, stdout if unset)")
	cmd.Flags().BoolVar(&skipDefaults, "skip-defaults", false, "omit settings still holding their default value")

	return cmd
}
