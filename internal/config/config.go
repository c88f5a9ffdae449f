// Package config loads settings for the primer command.
//
// Precedence, highest first:
//  1. command-line flags bound through Options.Flags
//  2. PRIMER_* environment variables, including those set by a .env file
//  3. the config file (--config, or .primer.yaml in Options.Dir)
//  4. built-in defaults
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every key when reading the environment.
const EnvPrefix = "PRIMER"

// Keys lists every setting Load understands.
var Keys = []string{"dict", "input", "stores", "seed", "color", "verbose"}

// Config holds the resolved settings.
type Config struct {
	// Dict is the rule file for the transform command.
	Dict string `mapstructure:"dict"`
	// Input is the text the transform command rewrites.
	Input string `mapstructure:"input"`
	// Stores is a YAML store file for the report command.
	Stores string `mapstructure:"stores"`
	// Seed drives every generated value (fake stores, random demos).
	Seed    uint64 `mapstructure:"seed"`
	Color   bool   `mapstructure:"color"`
	Verbose bool   `mapstructure:"verbose"`
}

// Options tells Load where to look.
type Options struct {
	// File is an explicit config file. It must exist when set.
	File string
	// Dir is searched for .primer.yaml and .env. Defaults to ".".
	Dir string
	// Flags, when set, override every other source for flags whose name
	// matches a key and that the user actually passed.
	Flags *pflag.FlagSet
}

// Load resolves the configuration from all sources.
func Load(opts Options) (*Config, error) {
	if opts.Dir == "" {
		opts.Dir = "."
	}

	// .env only fills variables that are not already set.
	if err := godotenv.Load(filepath.Join(opts.Dir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if opts.File != "" {
		v.SetConfigFile(opts.File)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config from %s: %w", opts.File, err)
		}
	} else {
		v.SetConfigName(".primer")
		v.SetConfigType("yaml")
		v.AddConfigPath(opts.Dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading project config: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for _, key := range Keys {
			if f := opts.Flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", key, err)
				}
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("dict", filepath.Join("testdata", "dict.txt"))
	v.SetDefault("input", filepath.Join("testdata", "message.txt"))
	v.SetDefault("stores", "")
	v.SetDefault("seed", 1)
	v.SetDefault("color", true)
	v.SetDefault("verbose", false)
}
