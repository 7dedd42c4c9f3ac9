package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/NovaOrdis/std.shlib/pkg/errors"
	"github.com/NovaOrdis/std.shlib/pkg/paths"
)

// EnvPrefix is the prefix of environment variables that override configuration
const EnvPrefix = "SHLIB_"

// envKeys maps the accepted environment variables to configuration keys.
// Anything else carrying the prefix (SHLIB_CONFIG, SHLIB_STATE_DIR, ...) is
// a path override handled by the paths package.
var envKeys = map[string]string{
	"SHLIB_SECRETS_FLAGS": "secrets.flags",
	"SHLIB_SECRETS_MASK":  "secrets.mask",
	"SHLIB_LOG_FILE":      "log.file",
	"SHLIB_REGEX_TIMEOUT": "regex.timeout",
}

// Load builds the effective configuration using the locations in p
func Load(p *paths.Paths) (*Config, error) {
	return LoadFile(p.ConfigFile())
}

// LoadFile builds the effective configuration from the defaults, the given
// file (skipped when path is empty) and the environment
func LoadFile(path string) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaultsMap(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Config file
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path).
				WithDetail("path", path)
		}
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
	}

	// 3. Env vars
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return envKeys[s]
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	postProcess(&cfg)
	return &cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigParse, "unsupported config format: %s", path).
			WithDetail("path", path)
	}
}

func postProcess(cfg *Config) {
	if cfg.Secrets.Mask == "" {
		cfg.Secrets.Mask = DefaultMask
	}
	flags := cfg.Secrets.Flags[:0]
	for _, f := range cfg.Secrets.Flags {
		if f = strings.TrimSpace(f); f != "" {
			flags = append(flags, f)
		}
	}
	cfg.Secrets.Flags = flags
	if cfg.Regex.Timeout < 0 {
		cfg.Regex.Timeout = 0
	}
}
