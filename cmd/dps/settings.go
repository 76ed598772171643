// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"dps-cli/internal/envio"
	"dps-cli/internal/issue"
	"dps-cli/internal/registry"
	"dps-cli/internal/store"

	"github.com/charmbracelet/log"
)

// buildStore materializes the built-in presets and applies environment
// overrides. Every settings-facing command starts from this.
func buildStore() (*store.Store, error) {
	s, err := registry.Build()
	if err != nil {
		renderIssue(issue.ManifestParseErrorId)
		return nil, fmt.Errorf("load settings manifest: %w", err)
	}

	importer := envio.NewImporter(s, envPrefix(), log.Default())
	if n := importer.Import(); n > 0 {
		log.Debug("applied environment overrides", "count", n)
	}
	return s, nil
}

// envPrefix returns the configured environment variable prefix.
func envPrefix() string {
	return appConfig.EnvPrefix.String()
}

// renderIssue prints a catalog entry for the configured color scheme.
// Rendering failures fall back to the raw Markdown.
func renderIssue(id issue.Id) {
	i := issue.Get(id)
	if i == nil {
		return
	}
	out, err := i.Render(appConfig.UI.ColorScheme.String())
	if err != nil {
		out = string(i.MarkdownMsg())
	}
	fmt.Fprintln(os.Stderr, out)
}
