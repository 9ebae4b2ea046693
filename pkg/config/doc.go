// Package config loads gitcal's settings.
//
// Values are layered with koanf, lowest precedence first:
//
//  1. the embedded embedded/defaults.toml
//  2. the user file: an explicit path, or gitcal/config.toml (or .yaml)
//     under the XDG config directories
//  3. GITCAL_* environment variables, where a double underscore separates
//     nesting levels (GITCAL_COLORS__BASE, GITCAL_API__TIMEOUT)
//  4. overrides supplied by the caller, normally the command-line flags
//
// The GitHub token is deliberately not part of the file configuration; see
// LoadToken.
package config
