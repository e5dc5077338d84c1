// Package config loads and validates the scoring configuration: keyword
// tiers, hub and country tables, and email inference rules. A missing or
// malformed configuration is a fatal startup error, never a per-lead
// one.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/euprime/leadrank/internal/email"
	"github.com/euprime/leadrank/internal/location"
	"github.com/euprime/leadrank/internal/scoring"
)

// Config is the full configuration contract of the scoring core.
type Config struct {
	Scoring   scoring.Config  `yaml:"scoring" validate:"required"`
	Locations location.Tables `yaml:"locations" validate:"required"`
	Email     email.Rules     `yaml:"email" validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads a YAML configuration file and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks that every required key is present and well-formed.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
