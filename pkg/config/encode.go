package config

import (
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/NovaOrdis/std.shlib/pkg/errors"
)

// Supported output formats for Encode
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// Encode renders the configuration in the given format
func Encode(cfg *Config, format string) ([]byte, error) {
	switch format {
	case FormatTOML, "":
		out, err := toml.Marshal(cfg.ToMap())
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode toml")
		}
		return out, nil
	case FormatYAML, "yml":
		out, err := yaml.Marshal(cfg.ToMap())
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode yaml")
		}
		return out, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format %q (want toml or yaml)", format)
	}
}
