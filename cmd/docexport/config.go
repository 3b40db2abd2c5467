package main

import (
	"errors"
	"fmt"
	"os"

	docexport "github.com/RizzoG99/trammarise-sub001"
	"github.com/RizzoG99/trammarise-sub001/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)

// Config holds defaults for document export. Flags override config
// values field by field.
type Config struct {
	ContentType string                    `yaml:"contentType"`
	Model       string                    `yaml:"model"`
	DateFormat  string                    `yaml:"dateFormat"`
	Style       *docexport.StyleOverrides `yaml:"style"`
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a YAML file. Unknown fields are
// rejected so typos fail loudly.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return &cfg, nil
}

// merge applies flag values on top of the config. Empty flags keep the
// config value.
func (c *Config) merge(f *cliFlags) {
	if f.contentType != "" {
		c.ContentType = f.contentType
	}
	if f.model != "" {
		c.Model = f.model
	}
	if f.dateFormat != "" {
		c.DateFormat = f.dateFormat
	}
}
