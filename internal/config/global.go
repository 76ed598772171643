// SPDX-License-Identifier: MPL-2.0

package config

import "context"

// configDirOverride allows tests to override the config directory.
// This is necessary because os.UserHomeDir() doesn't reliably respect
// the HOME environment variable on all platforms (e.g., macOS in CI).
var configDirOverride string

// configFilePathOverride forces loading from a specific file (--config flag).
var configFilePathOverride string

// loadedConfig caches the last successful Load result for the process.
var loadedConfig *Config

// Reset clears test overrides and the load cache. Call from test cleanup to
// restore defaults.
func Reset() {
	configDirOverride = ""
	configFilePathOverride = ""
	loadedConfig = nil
}

// SetConfigDirOverride sets a custom config directory path.
// This is primarily intended for testing to bypass os.UserHomeDir() which
// doesn't reliably respect the HOME env var on all platforms (e.g., macOS in CI).
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
	loadedConfig = nil
}

// SetConfigFilePathOverride forces subsequent Load calls to read the given
// file exclusively. Used by the --config flag.
func SetConfigFilePathOverride(path string) {
	configFilePathOverride = path
	loadedConfig = nil
}

// Load returns the process-wide configuration, loading it on first use.
// On failure it returns the defaults together with the error so callers can
// warn and continue.
func Load() (*Config, error) {
	if loadedConfig != nil {
		return loadedConfig, nil
	}
	cfg, _, err := loadWithOptions(context.Background(), LoadOptions{
		ConfigFilePath: configFilePathOverride,
	})
	if err != nil {
		return DefaultConfig(), err
	}
	loadedConfig = cfg
	return cfg, nil
}
