// SPDX-License-Identifier: MPL-2.0

package envio

import (
	"fmt"
	"io"
	"strings"

	"dps-cli/internal/store"
)

// Exporter serializes a store's settings as shell export statements.
// Output order is fixed: preset priority, then declaration order.
type Exporter struct {
	store  *store.Store
	prefix string
}

// NewExporter creates an exporter emitting <prefix>_<NAME> variables.
func NewExporter(st *store.Store, prefix string) *Exporter {
	return &Exporter{store: st, prefix: prefix}
}

// WriteAll writes every exportable setting.
func (e *Exporter) WriteAll(w io.Writer) error {
	return e.write(w, false)
}

// WriteNonDefaults writes every exportable setting whose origin is not
// default.
func (e *Exporter) WriteNonDefaults(w io.Writer) error {
	return e.write(w, true)
}

// ExportAll returns the full export script as a string.
func (e *Exporter) ExportAll() string {
	var b strings.Builder
	_ = e.WriteAll(&b)
	return b.String()
}

// ExportNonDefaults returns the non-default export script as a string.
func (e *Exporter) ExportNonDefaults() string {
	var b strings.Builder
	_ = e.WriteNonDefaults(&b)
	return b.String()
}

func (e *Exporter) write(w io.Writer, skipDefaults bool) error {
	for _, p := range e.store.Presets() {
		for _, name := range p.Settings() {
			st, err := e.store.Setting(name)
			if err != nil {
				return err
			}
			if !st.Exportable {
				continue
			}
			if skipDefaults && st.Origin() == store.OriginDefault {
				continue
			}
			line := fmt.Sprintf("export %s=\"%s\"\n", EnvKey(e.prefix, name), escape(st.Value()))
			if _, err := io.WriteString(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

// escape makes a value safe inside double quotes in POSIX shell.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`$`, `\$`,
	"`", "\\`",
)

func escape(value string) string {
	return escaper.Replace(value)
}
