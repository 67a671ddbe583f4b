// Package config loads optional settings for the gen CLI.
//
// Settings come from three layers, highest precedence first: command-line
// flags, a settings file named with --config (YAML, JSON or TOML, detected
// by extension), and built-in defaults. Environment variables are not
// consulted.
package config

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/shinji-kodama/subpalindromes/internal/model"
)

// Setting keys. Flags bound to these keys override file values.
const (
	KeyLogLevel = "log_level"
	KeySeed     = "seed"
)

// defaults is applied before the settings file is read.
var defaults = map[string]interface{}{
	KeyLogLevel: zerolog.WarnLevel.String(),
}

// Settings is the resolved configuration of one invocation.
type Settings struct {
	// LogLevel is the minimum level written to stderr.
	LogLevel zerolog.Level

	// Seed pins the random source when HasSeed is true.
	Seed    uint64
	HasSeed bool
}

// Load resolves settings from the optional file at path and the given flags.
// Flags in the set whose names match a key (e.g. "seed", "log-level" bound
// as "log_level") take precedence over the file when they were changed on
// the command line.
func Load(path string, flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()

	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	if flags != nil {
		if f := flags.Lookup("seed"); f != nil {
			if err := v.BindPFlag(KeySeed, f); err != nil {
				return nil, err
			}
		}
		if f := flags.Lookup("log-level"); f != nil {
			if err := v.BindPFlag(KeyLogLevel, f); err != nil {
				return nil, err
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, model.WrapInputError(fmt.Sprintf("cannot load settings %s", path), err)
		}
	}

	lvl, err := zerolog.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return nil, model.WrapInputError("invalid log_level", err)
	}

	s := &Settings{LogLevel: lvl}
	if v.IsSet(KeySeed) {
		s.Seed = v.GetUint64(KeySeed)
		s.HasSeed = true
	}
	return s, nil
}
