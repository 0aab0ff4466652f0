// SPDX-License-Identifier: EPL-2.0

// Package config loads, normalizes and validates the audsys CLI
// configuration.
//
// Settings come from a TOML file (by default ~/.config/audsys/config.toml,
// then ./audsys.toml). A missing file is not an error: Load returns the
// defaults. Command line flags are applied on top by the caller.
package config
