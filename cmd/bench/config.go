package main

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/minhtran241/go-typekit/pkg/logger"
)

// Scenario describes one benchmark run against a fresh queue.
type Scenario struct {
	Name string `yaml:"name" validate:"required"`
	Ops  int    `yaml:"ops" validate:"gt=0"`
	// Pattern selects the enqueue/dequeue shape:
	//   fill-drain  — enqueue all ops, then drain; exercises growth
	//   interleaved — alternate enqueues and dequeues, then drain
	//   wraparound  — steady-state at constant size; exercises index wrap
	Pattern string `yaml:"pattern" validate:"oneof=fill-drain interleaved wraparound"`
}

// Config is the root benchmark configuration.
type Config struct {
	Scenarios []Scenario    `yaml:"scenarios" validate:"required,min=1,dive"`
	Log       logger.Config `yaml:"log"`
}

// defaultConfig is used when no config file is given.
func defaultConfig() *Config {
	return &Config{
		Scenarios: []Scenario{
			{Name: "fill-drain-1m", Ops: 1_000_000, Pattern: "fill-drain"},
			{Name: "interleaved-1m", Ops: 1_000_000, Pattern: "interleaved"},
			{Name: "wraparound-1m", Ops: 1_000_000, Pattern: "wraparound"},
		},
	}
}

// loadConfig reads, parses and validates a YAML config file.
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, errors.Wrap(err, "validate config")
	}
	return &cfg, nil
}
