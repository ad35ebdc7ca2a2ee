// Package config loads the fixture CLI configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/fixtures/internal/logger"
	"github.com/born-ml/fixtures/internal/tensor"
)

// DefaultFixture is the fixture built when none is configured.
const DefaultFixture = "LogSoftmax"

// Config is the fixture configuration file.
// Dim is a pointer so "not set" (implicit dimension) differs from dim 0.
type Config struct {
	Fixture string `yaml:"fixture"`
	Dim     *int   `yaml:"dim"`
	Seed    int64  `yaml:"seed"`
	Shape   []int  `yaml:"shape"`

	// Tolerance for the sum-to-one and non-positivity checks.
	Tolerance float64 `yaml:"tolerance"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Fixture:   DefaultFixture,
		Shape:     []int{1, 2, 3, 3},
		Tolerance: 1e-5,
		LogLevel:  "info",
		LogFormat: logger.FormatText,
	}
}

// Load reads path over the defaults. An empty path or a missing file
// yields Default(); malformed YAML and invalid values are errors.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values. The dim is range-checked later against
// the input rank, since the rank is only known once the shape is final.
func (c Config) Validate() error {
	if c.Fixture == "" {
		return errors.New("fixture must not be empty")
	}
	if err := c.TensorShape().Validate(); err != nil {
		return err
	}
	if c.Tolerance <= 0 {
		return fmt.Errorf("tolerance must be positive, got %g", c.Tolerance)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "", logger.FormatText, logger.FormatJSON:
	default:
		return fmt.Errorf("unknown log_format %q", c.LogFormat)
	}
	return nil
}

// TensorShape returns Shape as a tensor.Shape.
func (c Config) TensorShape() tensor.Shape {
	return tensor.Shape(c.Shape)
}
