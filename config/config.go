// Package config loads tracefold settings and trace files from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tracefold/ints"
	"github.com/katalvlaran/tracefold/internal/logging"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the top-level settings file.
type Config struct {
	LogLevel    string       `yaml:"log_level"`
	MaxNodes    int          `yaml:"max_nodes"`
	Skip        string       `yaml:"skip"`
	Workers     int          `yaml:"workers"`
	Guards      GuardsConfig `yaml:"guards"`
	Cost        CostConfig   `yaml:"cost"`
	MetricsAddr string       `yaml:"metrics_addr"`
}

// GuardsConfig is the candidate guard space of the linear inferencer.
// Empty Variables means "every variable seen in the traces".
type GuardsConfig struct {
	Variables []string `yaml:"variables"`
	Constants []int    `yaml:"constants"`
	Operators []string `yaml:"operators"`
}

// CostConfig weighs guard size in the condition cost.
type CostConfig struct {
	SizeWeight float64 `yaml:"size_weight"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		LogLevel: "info",
		Skip:     string(ints.Skip),
		Workers:  4,
		Guards: GuardsConfig{
			Constants: []int{0, 1},
			Operators: []string{"<", "<=", "==", "!=", ">", ">="},
		},
		Cost: CostConfig{SizeWeight: 1},
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks ranges and tokens.
func (c Config) Validate() error {
	if c.Skip == "" {
		return fmt.Errorf("%w: skip must not be empty", ErrInvalid)
	}
	if c.MaxNodes < 0 {
		return fmt.Errorf("%w: max_nodes must be >= 0, got %d", ErrInvalid, c.MaxNodes)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalid, c.Workers)
	}
	if c.Cost.SizeWeight < 0 {
		return fmt.Errorf("%w: cost.size_weight must be >= 0", ErrInvalid)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := c.Operators(); err != nil {
		return err
	}

	return nil
}

// Operators parses Guards.Operators.
func (c Config) Operators() ([]ints.Op, error) {
	ops := make([]ints.Op, 0, len(c.Guards.Operators))
	for _, s := range c.Guards.Operators {
		op, err := ints.ParseOp(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		ops = append(ops, op)
	}

	return ops, nil
}
