// SPDX-License-Identifier: MPL-2.0

// Package config loads the library's own settings file.
//
// Settings are distinct from the per-project glob tables the library
// resolves: they tune how resolution itself behaves (default module
// search base, rc search places, log level) and live in the user
// configuration directory, e.g. ~/.config/importsort/config.yaml on
// Linux. A missing settings file is normal and yields defaults.
package config
