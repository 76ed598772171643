// SPDX-License-Identifier: MPL-2.0

// Package config loads and validates the dps application configuration.
//
// Configuration lives in a CUE file resolved from the platform config
// directory (or the current directory as a fallback). The file is validated
// against an embedded schema and merged over built-in defaults via Viper.
package config
