package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Defaults for a plain `venmoq convert` run with no config file.
const (
	DefaultAccount    = "Venmo"
	DefaultDateFormat = "MM/dd/yyyy"
)

// Config holds the per-run settings. OutputPath is empty when the output
// file should be derived from the input path, and "-" for stdout.
type Config struct {
	Account    string `yaml:"account"`
	DateFormat string `yaml:"date_format"`
	OutputPath string `yaml:"output,omitempty"`
}

// Default returns a Config with the stock settings.
func Default() *Config {
	return &Config{
		Account:    DefaultAccount,
		DateFormat: DefaultDateFormat,
	}
}

// FromViper builds a Config from viper state (config file, env, bound
// flags), falling back to defaults for unset keys.
func FromViper(v *viper.Viper) *Config {
	cfg := Default()
	if s := v.GetString("account"); s != "" {
		cfg.Account = s
	}
	if s := v.GetString("date_format"); s != "" {
		cfg.DateFormat = s
	}
	cfg.OutputPath = v.GetString("output")
	return cfg
}

// Load reads a Config from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
