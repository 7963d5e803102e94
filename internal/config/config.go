// Package config loads settings for the nextday command.
//
// Precedence, lowest first: built-in defaults, YAML file, environment.
// Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPath         = "nextday.yaml"
	DefaultInputLayout  = "2006-01-02"
	DefaultOutputLayout = "2006-01-02 (Monday)"
	DefaultLogLevel     = "warn"

	EnvPath         = "NEXTDAY_CONFIG"
	EnvInputLayout  = "NEXTDAY_INPUT_LAYOUT"
	EnvOutputLayout = "NEXTDAY_OUTPUT_LAYOUT"
	EnvLogLevel     = "NEXTDAY_LOG_LEVEL"
)

type Config struct {
	InputLayout  string `yaml:"input_layout"`
	OutputLayout string `yaml:"output_layout"`
	LogLevel     string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		InputLayout:  DefaultInputLayout,
		OutputLayout: DefaultOutputLayout,
		LogLevel:     DefaultLogLevel,
	}
}

// Path returns the config file location: path if set, else $NEXTDAY_CONFIG,
// else DefaultPath.
func Path(path string) string {
	if path != "" {
		return path
	}
	if env := os.Getenv(EnvPath); env != "" {
		return env
	}
	return DefaultPath
}

// Load reads the YAML file at Path(path) over the defaults and applies
// environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	path = Path(path)

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}

	envOverride(&cfg.InputLayout, EnvInputLayout)
	envOverride(&cfg.OutputLayout, EnvOutputLayout)
	envOverride(&cfg.LogLevel, EnvLogLevel)
	return cfg, nil
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	if c.InputLayout == "" {
		return errors.New("input_layout must not be empty")
	}
	if c.OutputLayout == "" {
		return errors.New("output_layout must not be empty")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// Level returns the parsed log level, falling back to warn.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return lvl
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
