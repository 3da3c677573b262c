package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/mycodecay/internal/strain"
)

const (
	DefaultDays          = 180
	DefaultInitialFibers = 1000.0
)

var ErrUnknownPreset = errors.New("unknown preset")

// Config describes one simulation run. The strain registry is not
// configurable; Strain only selects an entry from it.
type Config struct {
	Strain        string  `yaml:"strain"`
	Days          int     `yaml:"days"`
	InitialFibers float64 `yaml:"initial_fibers"`
}

func DefaultConfig() *Config {
	return &Config{
		Strain:        strain.Default,
		Days:          DefaultDays,
		InitialFibers: DefaultInitialFibers,
	}
}

// Load reads a YAML run file. Keys absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
