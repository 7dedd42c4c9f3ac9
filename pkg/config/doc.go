// Package config loads shlib's configuration.
//
// Configuration is layered with koanf, lowest priority first:
//
//  1. built-in defaults
//  2. the user's config file ($XDG_CONFIG_HOME/shlib/config.toml, config.yaml,
//     or the file named by SHLIB_CONFIG)
//  3. SHLIB_* environment variables (SHLIB_SECRETS_MASK -> secrets.mask)
//
// None of the settings change the semantics of the text primitives; they tune
// diagnostics (which flags count as secrets, the mask, the optional log file)
// and bound regex evaluation time.
package config
