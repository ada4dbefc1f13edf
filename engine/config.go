package engine

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls how Engine.Optimize runs and how output is formatted.
// The zero value is not valid; construct with NewConfig.
type Config struct {
	// Workers bounds parallel-per-source dispatch. 0 or 1 means
	// sequential.
	Workers int `yaml:"workers"`

	// Precision is the number of digits after the decimal point used
	// when formatting metric values in output.
	Precision int `yaml:"precision"`
}

// defaultConfig mirrors SPEC_FULL.md §4's engine context defaults.
func defaultConfig() Config {
	return Config{
		Workers:   0,
		Precision: 2,
	}
}

// ConfigOption customizes a Config by mutating it before it is returned
// from NewConfig. Option constructors validate and panic on objectively
// meaningless inputs; Engine itself never panics.
type ConfigOption func(*Config)

// WithWorkers sets the worker count for parallel-per-source dispatch.
// Panics on a negative count.
func WithWorkers(n int) ConfigOption {
	if n < 0 {
		panic("engine: WithWorkers(n<0)")
	}
	return func(c *Config) {
		c.Workers = n
	}
}

// WithPrecision sets the decimal precision used when formatting metric
// values. Panics on a negative precision.
func WithPrecision(n int) ConfigOption {
	if n < 0 {
		panic("engine: WithPrecision(n<0)")
	}
	return func(c *Config) {
		c.Precision = n
	}
}

// NewConfig builds a Config from engine defaults plus the given options,
// applied in order.
func NewConfig(opts ...ConfigOption) Config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// LoadConfig reads a Config from a YAML file at path, starting from
// engine defaults for any field the file omits. A missing file is not
// an error: LoadConfig returns defaultConfig() unchanged so a run
// without --config behaves exactly like one with no overrides.
func LoadConfig(path string) (Config, error) {
	c := defaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return c, err
	}

	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, err
	}

	return c, nil
}
