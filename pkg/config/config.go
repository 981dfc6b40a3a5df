// Package config loads calculator defaults from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aybabtme/mortgage/pkg/payoff"
	"github.com/aybabtme/mortgage/pkg/schedule"
	"gopkg.in/yaml.v3"
)

// Config holds defaults for values not given on the command line.
type Config struct {
	Years             int    `yaml:"years"`
	NumAnnualPayments int    `yaml:"num_annual_payments"`
	MaxPayments       int    `yaml:"max_payments"`
	LogFormat         string `yaml:"log_format"`
}

// Default is used for anything a config file leaves out.
func Default() Config {
	return Config{
		Years:             schedule.DefaultYears,
		NumAnnualPayments: schedule.DefaultPaymentsPerYear,
		MaxPayments:       payoff.DefaultMaxPayments,
		LogFormat:         "pretty",
	}
}

// Load reads a config file on top of Default. An empty path loads nothing.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default. Unknown keys are an error.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	switch {
	case cfg.Years < 1:
		return Config{}, fmt.Errorf("years must be positive, got %d", cfg.Years)
	case cfg.NumAnnualPayments < 1:
		return Config{}, fmt.Errorf("num_annual_payments must be positive, got %d", cfg.NumAnnualPayments)
	case cfg.MaxPayments < 1:
		return Config{}, fmt.Errorf("max_payments must be positive, got %d", cfg.MaxPayments)
	case cfg.LogFormat != "json" && cfg.LogFormat != "pretty":
		return Config{}, fmt.Errorf("log_format must be json or pretty, got %q", cfg.LogFormat)
	}
	return cfg, nil
}
