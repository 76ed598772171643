// SPDX-License-Identifier: MPL-2.0

// Package envio moves settings between the registry and the environment:
// bulk override from <PREFIX>_<NAME> variables on the way in, sourceable
// export statements on the way out.
package envio

import (
	"fmt"
	"io"
	"os"
	"strings"

	"dps-cli/internal/store"

	"github.com/charmbracelet/log"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/syntax"
)

// Importer applies environment overrides to a store.
type Importer struct {
	store  *store.Store
	prefix string
	logger *log.Logger
}

// NewImporter creates an importer probing <prefix>_<NAME> variables.
func NewImporter(st *store.Store, prefix string, logger *log.Logger) *Importer {
	if logger == nil {
		logger = log.Default()
	}
	return &Importer{store: st, prefix: prefix, logger: logger}
}

// Import probes the environment for every declared setting and applies the
// present ones with origin env. Settings are visited in preset-priority then
// declaration order, so apply hooks of later imports see earlier values.
//
// Overrides are accepted eagerly: a value that fails its type's validation is
// stored anyway (normalized) and logged, and the failure surfaces at the next
// validation pass. Returns the number of applied overrides.
func (i *Importer) Import() int {
	imported := 0
	for _, p := range i.store.Presets() {
		for _, name := range p.Settings() {
			raw, ok := os.LookupEnv(EnvKey(i.prefix, name))
			if !ok {
				continue
			}
			i.apply(name, raw)
			imported++
		}
	}
	return imported
}

// apply writes one override, falling back to the lenient path when the value
// fails validation.
func (i *Importer) apply(name, raw string) {
	err := i.store.Set(name, raw, store.OriginEnv)
	if err == nil {
		return
	}
	i.logger.Warn("environment override failed validation, accepting anyway",
		"setting", name, "value", raw, "reason", err)
	if oerr := i.store.Override(name, raw, store.OriginEnv); oerr != nil {
		i.logger.Error("environment override rejected", "setting", name, "reason", oerr)
	}
}

// ImportFile parses a previously exported, shell-sourceable file and applies
// its <prefix>_<NAME> assignments with origin env. Statements that are not
// assignments and variables outside the prefix are ignored. Returns the
// number of applied overrides.
func (i *Importer) ImportFile(r io.Reader, name string) (int, error) {
	file, err := syntax.NewParser().Parse(r, name)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", name, err)
	}

	cfg := &expand.Config{Env: expand.ListEnviron()}
	imported := 0

	syntax.Walk(file, func(node syntax.Node) bool {
		var assigns []*syntax.Assign
		switch n := node.(type) {
		case *syntax.DeclClause:
			if n.Variant != nil && n.Variant.Value == "export" {
				assigns = n.Args
			}
		case *syntax.CallExpr:
			if len(n.Args) == 0 {
				assigns = n.Assigns
			}
		}
		for _, a := range assigns {
			if a.Name == nil || a.Value == nil {
				continue
			}
			settingName, ok := i.settingFor(a.Name.Value)
			if !ok {
				continue
			}
			value, err := expand.Literal(cfg, a.Value)
			if err != nil {
				i.logger.Warn("skipping unexpandable assignment", "variable", a.Name.Value, "reason", err)
				continue
			}
			i.apply(settingName, value)
			imported++
		}
		return true
	})
	return imported, nil
}

// settingFor maps an environment variable name back to a declared setting.
func (i *Importer) settingFor(envName string) (string, bool) {
	name, found := strings.CutPrefix(envName, i.prefix+"_")
	if !found {
		return "", false
	}
	if _, err := i.store.Setting(name); err != nil {
		return "", false
	}
	return name, true
}

// EnvKey returns the environment variable name for a setting.
func EnvKey(prefix, name string) string {
	return prefix + "_" + strings.ToUpper(name)
}
