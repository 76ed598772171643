// SPDX-License-Identifier: MPL-2.0

// Package docs generates the settings reference from a populated store and
// renders it for terminal display with glamour.
package docs

import (
	"fmt"
	"strings"

	"dps-cli/internal/config"
	"dps-cli/internal/store"

	"github.com/charmbracelet/glamour"
)

// Generate produces the Markdown settings reference for a store. Presets
// appear in priority order and settings in declaration order, matching the
// interactive menu and the export file.
func Generate(s *store.Store, envPrefix string) string {
	var sb strings.Builder

	sb.WriteString("# Settings Reference\n\n")
	sb.WriteString("Every setting can be preset through the environment variable ")
	sb.WriteString(fmt.Sprintf("`%s_<NAME>` before the session starts.\n", envPrefix))

	for _, p := range s.Presets() {
		sb.WriteString(fmt.Sprintf("\n## %s (`%s`)\n\n", p.Label, p.Name))
		sb.WriteString("| Setting | Type | Default | Constraints |\n")
		sb.WriteString("|---|---|---|---|\n")
		for _, name := range p.Settings() {
			st, err := s.Setting(name)
			if err != nil {
				continue
			}
			sb.WriteString(fmt.Sprintf("| `%s` | %s | %s | %s |\n",
				st.Name, st.Type, defaultCell(st), constraintCell(st)))
		}

		for _, name := range p.Settings() {
			st, err := s.Setting(name)
			if err != nil || len(st.Conditions) == 0 {
				continue
			}
			sb.WriteString(fmt.Sprintf("\n`%s` is only visible when %s.\n",
				st.Name, conditionPhrase(st)))
		}
	}

	return sb.String()
}

func defaultCell(st *store.Setting) string {
	if st.Default == "" {
		return "(empty)"
	}
	return "`" + st.Default + "`"
}

func constraintCell(st *store.Setting) string {
	parts := []string{}
	if hint := st.PromptHint(); hint != "" {
		parts = append(parts, hint)
	}
	if !st.Exportable {
		parts = append(parts, "not exported")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "; ")
}

// conditionPhrase renders a setting's visibility conditions as prose.
func conditionPhrase(st *store.Setting) string {
	clauses := make([]string, 0, len(st.Conditions))
	for _, c := range st.Conditions {
		clauses = append(clauses, fmt.Sprintf("`%s %s %q`", c.Setting, c.Op, c.Operand))
	}
	joiner := " and "
	if st.Combine == store.CombineAny {
		joiner = " or "
	}
	return strings.Join(clauses, joiner)
}

// Render renders Markdown for the terminal using the configured color scheme.
func Render(md string, scheme config.ColorScheme) (string, error) {
	var style glamour.TermRendererOption
	switch scheme {
	case config.ColorSchemeDark:
		style = glamour.WithStandardStyle("dark")
	case config.ColorSchemeLight:
		style = glamour.WithStandardStyle("light")
	default:
		style = glamour.WithAutoStyle()
	}

	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(100))
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render reference: %w", err)
	}
	return out, nil
}
