// Package config loads flacscan settings from an optional YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds all flacscan configuration.
type Config struct {
	// Workers bounds the number of concurrent checks. Zero means one per CPU.
	Workers int `yaml:"workers"`

	// Extensions selects candidate files, compared case-insensitively.
	Extensions []string `yaml:"extensions"`

	// LogLevel is a zap level name (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	Verifier VerifierConfig `yaml:"verifier"`
}

// VerifierConfig describes how the external decoder is invoked.
type VerifierConfig struct {
	Binary       string   `yaml:"binary"`
	IdentifyArgs []string `yaml:"identify_args"`
	TestArgs     []string `yaml:"test_args"`
	// Timeout bounds a single check, as a Go duration. Empty disables it.
	Timeout string `yaml:"timeout"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Workers:    0,
		Extensions: []string{"flac"},
		LogLevel:   "debug",
		Verifier: VerifierConfig{
			Binary:       "flac",
			IdentifyArgs: []string{"--version"},
			TestArgs:     []string{"-t", "-s"},
		},
	}
}

// Load reads the YAML file at path on top of Default. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 - user supplied config path
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}

	if len(c.Extensions) == 0 {
		return errors.New("at least one extension is required")
	}

	for _, ext := range c.Extensions {
		if strings.Trim(ext, ". ") == "" {
			return fmt.Errorf("empty extension in %v", c.Extensions)
		}
	}

	if c.Verifier.Binary == "" {
		return errors.New("verifier binary is required")
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	if _, err := c.Timeout(); err != nil {
		return err
	}

	return nil
}

// Timeout parses the per-check timeout. Zero means no timeout.
func (c Config) Timeout() (time.Duration, error) {
	if c.Verifier.Timeout == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(c.Verifier.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid verifier timeout %q: %w", c.Verifier.Timeout, err)
	}

	if d < 0 {
		return 0, fmt.Errorf("verifier timeout must not be negative, got %s", d)
	}

	return d, nil
}

// Level parses LogLevel.
func (c Config) Level() (zapcore.Level, error) {
	if c.LogLevel == "" {
		return zapcore.DebugLevel, nil
	}

	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.DebugLevel, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	return level, nil
}
