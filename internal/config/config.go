// Copyright (c) 2026 liuyuxun, 1225
// bigcalc - arbitrary-precision integer calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// package config loads and persists the bigcalc configuration through
// viper: defaults, config file discovery, environment variables and bound
// command-line flags, in ascending precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	Language string         `mapstructure:"language" yaml:"language"`
	History  HistoryConfig  `mapstructure:"history" yaml:"history"`
	Engine   EngineConfig   `mapstructure:"engine" yaml:"engine"`
}

// DatabaseConfig selects the history backend.
type DatabaseConfig struct {
	Type string `mapstructure:"type" yaml:"type"`
	Dsn  string `mapstructure:"dsn" yaml:"dsn"`
}

// HistoryConfig controls calculation-history recording.
type HistoryConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// EngineConfig bounds exponentiation. Zeros fall back to the engine
// defaults (ceiling 1000000, warning threshold 1000).
type EngineConfig struct {
	ExponentLimit int `mapstructure:"exponent_limit" yaml:"exponent_limit"`
	ExponentWarn  int `mapstructure:"exponent_warn" yaml:"exponent_warn"`
}

// Defaults is the baseline configuration applied before any file, env
// var or flag.
func Defaults() map[string]any {
	return map[string]any{
		"database.type":         "sqlite",
		"database.dsn":          "./bigcalc.db",
		"language":              "en",
		"history.enabled":       true,
		"engine.exponent_limit": 1_000_000,
		"engine.exponent_warn":  1_000,
	}
}

// getConfigPath returns the full path for the configuration file.
func getConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "bigcalc")
		default:
			configDir = "/etc/bigcalc"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "bigcalc")
	}

	return filepath.Join(configDir, "bigcalc.yaml"), nil
}

// LoadConfig assembles a Config from defaults, a discovered (or explicitly
// given) bigcalc.yaml, BIGCALC_* environment variables and the command's
// flags, then unmarshals the result.
func LoadConfig(cmd *cobra.Command, defaults map[string]any, explicitFile *string) (Config, error) {
	var c Config
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("bigcalc")
	v.SetConfigType("yaml")

	// An explicit --config path wins over discovery.
	if explicitFile != nil {
		v.SetConfigFile(*explicitFile)
	}

	if userConfigPath, err := getConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := getConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine, the defaults carry; anything else is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
	}

	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix("bigcalc")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}

// WriteConfigFile persists c to the user (or system) config path as YAML.
func WriteConfigFile(c *Config, system bool) error {
	path, err := getConfigPath(system)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	return os.WriteFile(path, data, 0o644)
}
