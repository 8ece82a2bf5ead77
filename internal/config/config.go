// Package config loads tool configuration from an optional YAML file and
// FOOTY_-prefixed environment variables. Command-line flags take precedence
// over everything here.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config contains process configuration.
type Config struct {
	// DataDir is the root of the open-data checkout (competitions.json etc).
	DataDir string `koanf:"data_dir"`

	// DBPath is the SQLite file used by export and sql.
	DBPath string `koanf:"db_path"`

	// Competition names the competition studied by report.
	Competition string `koanf:"competition"`

	// MinSeason is the first season year included in a study.
	MinSeason int `koanf:"min_season"`

	// TopScorers bounds the scorer ranking length.
	TopScorers int `koanf:"top_scorers"`
}

// Default returns a Config with the built-in defaults.
func Default() *Config {
	return &Config{
		DataDir:     "data",
		DBPath:      "footy.db",
		Competition: "Champions League",
		MinSeason:   1999,
		TopScorers:  10,
	}
}

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (Default())
//  2. file (YAML) if FOOTY_CONFIG is set
//  3. env (prefix FOOTY_)
func Load() (*Config, error) {
	base := Default()

	k := koanf.New(".")

	if path := os.Getenv("FOOTY_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: FOOTY_DATA_DIR, FOOTY_MIN_SEASON, ...
	// Map env keys like FOOTY_DATA_DIR -> data_dir to match the koanf tags.
	envProvider := env.Provider("FOOTY_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "footy_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.DataDir == "" {
		return nil, errors.New("data_dir must not be empty")
	}
	if cfg.TopScorers <= 0 {
		return nil, errors.New("top_scorers must be positive")
	}
	return &cfg, nil
}
