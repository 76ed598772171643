// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"dps-cli/internal/docs"

	"github.com/spf13/cobra"
)

// newDocsCommand creates the `dps docs` command.
func newDocsCommand() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Show the settings reference",
		Long: `Render the reference of all presets, settings, types, defaults,
and visibility rules.

The reference is generated from the same declarations the interactive
session uses, so it never drifts from the actual behavior.

Examples:
  dps docs
  dps docs --raw > SETTINGS.md`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := buildStore()
			if err != nil {
				cmd.SilenceUsage = true
				return err
			}

			md := docs.Generate(s, envPrefix())
			if raw {
				fmt.Fprint(cmd.OutOrStdout(), md)
				return nil
			}

			out, err := docs.Render(md, appConfig.UI.ColorScheme)
			if err != nil {
				return fmt.Errorf("render settings reference: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "emit plain Markdown instead of rendered output")

	return cmd
}
