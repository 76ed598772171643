// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"net/netip"

	"dps-cli/internal/store"
)

// crossFieldValidators maps preset names to their cross-field checks.
// Cross-field rules span settings of one preset and run after the
// per-setting pass.
var crossFieldValidators = map[string]store.CrossFieldFunc{
	"network": validateNetwork,
}

// crossFieldFor returns the validator for a preset, or nil.
func crossFieldFor(preset string) store.CrossFieldFunc {
	return crossFieldValidators[preset]
}

// validateNetwork checks static addressing consistency. It only fires when
// the method is static; per-setting validation already covers malformed
// values, so unparseable fields are skipped here rather than double-reported.
func validateNetwork(view store.Reader) []string {
	if view.Value("NETWORK_METHOD") != "static" {
		return nil
	}

	var msgs []string
	ip := view.Value("NETWORK_IP")
	gateway := view.Value("NETWORK_GATEWAY")

	if ip != "" && ip == gateway {
		msgs = append(msgs, "Gateway cannot be the same as IP address")
	}

	if subnet := view.Value("NETWORK_SUBNET"); subnet != "" && ip != "" {
		prefix, perr := netip.ParsePrefix(subnet)
		addr, aerr := netip.ParseAddr(ip)
		if perr == nil && aerr == nil && !prefix.Contains(addr) {
			msgs = append(msgs, "IP address is not inside the configured subnet")
		}
	}
	return msgs
}
