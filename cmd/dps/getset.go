// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"dps-cli/internal/issue"
	"dps-cli/internal/store"

	"github.com/spf13/cobra"
)

// newGetCommand creates the `dps get` command.
func newGetCommand() *cobra.Command {
	var showOrigin bool

	cmd := &cobra.Command{
		Use:   "get [NAME]",
		Short: "Print setting values",
		Long: `Print the current value of a setting, or all settings.

Without arguments every setting is listed grouped by preset, with its
display value (passwords are masked) and origin. With a name only that
setting's raw value is printed, suitable for scripting.

Examples:
  dps get
  dps get HOSTNAME
  dps get --origin SSH_PORT`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := buildStore()
			if err != nil {
				cmd.SilenceUsage = true
				return err
			}

			if len(args) == 0 {
				for _, p := range s.Presets() {
					fmt.Fprintln(cmd.OutOrStdout(), TitleStyle.Render(p.Label))
					for _, name := range p.Settings() {
						st, err := s.Setting(name)
						if err != nil {
							return err
						}
						fmt.Fprintf(cmd.OutOrStdout(), "  %s = %s %s\n",
							SettingStyle.Render(st.Name),
							st.DisplayValue(),
							SubtitleStyle.Render("("+string(st.Origin())+")"))
					}
				}
				return nil
			}

			name := args[0]
			st, err := s.Setting(name)
			if err != nil {
				var unknownErr *store.UnknownSettingError
				if errors.As(err, &unknownErr) {
					renderIssue(issue.UnknownSettingId)
					cmd.SilenceUsage = true
					cmd.SilenceErrors = true
					return &ExitError{Code: 1, Err: err}
				}
				return err
			}
			if showOrigin {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", st.Value(), st.Origin())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), st.Value())
			return nil
		},
	}

	cmd.Flags().BoolVar(&showOrigin, "origin", false, "also print how the value was set")

	return cmd
}

// newSetCommand creates the `dps set` command.
func newSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set NAME VALUE",
		Short: "Write one setting value",
		Long: `Write a single setting and print the resulting value.

The value passes through the setting's type: normalization, validation,
and any apply cascade (for example, setting COUNTRY also fills
TIMEZONE, LOCALE, and KEYBOARD_LAYOUT). A rejected value leaves the
setting untouched and exits non-zero.

Examples:
  dps set SSH_PORT 2222
  dps set COUNTRY DE`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := buildStore()
			if err != nil {
				cmd.SilenceUsage = true
				return err
			}

			name, value := args[0], args[1]
			if err := s.Set(name, value, store.OriginManual); err != nil {
				var valErr *store.ValidationError
				if errors.As(err, &valErr) {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s %s: %s\n", errorIcon, name, valErr.Message)
					cmd.SilenceUsage = true
					cmd.SilenceErrors = true
					return &ExitError{Code: 1, Err: err}
				}
				var unknownErr *store.UnknownSettingError
				if errors.As(err, &unknownErr) {
					renderIssue(issue.UnknownSettingId)
					cmd.SilenceUsage = true
					cmd.SilenceErrors = true
					return &ExitError{Code: 1, Err: err}
				}
				return err
			}

			st, err := s.Setting(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s\n", successIcon, SettingStyle.Render(st.Name), st.DisplayValue())
			return nil
		},
	}
}
