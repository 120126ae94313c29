// Package config loads the optional selectmirror.yaml tool configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the optional selectmirror.yaml configuration.
type Config struct {
	Document    string            `yaml:"document,omitempty"`
	Selector    string            `yaml:"selector,omitempty"`
	Interaction InteractionConfig `yaml:"interaction"`
}

// InteractionConfig contains engine interaction settings.
type InteractionConfig struct {
	PreventNative    bool `yaml:"prevent_native,omitempty"`
	RestoreOnDestroy bool `yaml:"restore_on_destroy,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Document         string
	Selector         string
	PreventNative    bool
	RestoreOnDestroy bool
}

// LoadOptional reads selectmirror.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "selectmirror.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read selectmirror.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse selectmirror.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads selectmirror.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	selector := strings.TrimSpace(cfg.Selector)
	if selector == "" {
		selector = "select"
	}

	return &Resolved{
		Document:         strings.TrimSpace(cfg.Document),
		Selector:         selector,
		PreventNative:    cfg.Interaction.PreventNative,
		RestoreOnDestroy: cfg.Interaction.RestoreOnDestroy,
	}, nil
}
