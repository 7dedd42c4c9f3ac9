package config

import (
	"time"
)

// Config is the effective shlib configuration
type Config struct {
	Secrets Secrets `koanf:"secrets"`
	Log     Log     `koanf:"log"`
	Regex   Regex   `koanf:"regex"`
}

// Secrets controls masking in debug-arguments output
type Secrets struct {
	// Flags lists argument names whose value is never logged. Both the
	// "--flag value" and "--flag=value" forms are masked.
	Flags []string `koanf:"flags"`
	Mask  string   `koanf:"mask"`
}

// Log controls the optional log file
type Log struct {
	File bool `koanf:"file"`
}

// Regex bounds pattern evaluation
type Regex struct {
	// Timeout is applied per match; zero disables it
	Timeout time.Duration `koanf:"timeout"`
}

// DefaultSecretFlags are masked unless the configuration says otherwise
var DefaultSecretFlags = []string{
	"--password",
	"--secret",
	"--token",
	"--api-key",
	"--aws-secret-access-key",
}

// DefaultMask replaces secret values in diagnostic output
const DefaultMask = "***"

// Default returns the built-in configuration
func Default() *Config {
	flags := make([]string, len(DefaultSecretFlags))
	copy(flags, DefaultSecretFlags)
	return &Config{
		Secrets: Secrets{
			Flags: flags,
			Mask:  DefaultMask,
		},
		Regex: Regex{
			Timeout: 5 * time.Second,
		},
	}
}

func defaultsMap() map[string]interface{} {
	return Default().ToMap()
}

// ToMap returns the configuration as nested maps, the shape koanf and the
// encoders work with
func (c *Config) ToMap() map[string]interface{} {
	flags := make([]interface{}, len(c.Secrets.Flags))
	for i, f := range c.Secrets.Flags {
		flags[i] = f
	}
	return map[string]interface{}{
		"secrets": map[string]interface{}{
			"flags": flags,
			"mask":  c.Secrets.Mask,
		},
		"log": map[string]interface{}{
			"file": c.Log.File,
		},
		"regex": map[string]interface{}{
			"timeout": c.Regex.Timeout.String(),
		},
	}
}
