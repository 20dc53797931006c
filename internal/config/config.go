package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Storage drivers.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// Config represents the top-level gicbank.yaml configuration.
type Config struct {
	Bank     BankConfig     `yaml:"bank"`
	Storage  StorageConfig  `yaml:"storage"`
	Interest InterestConfig `yaml:"interest"`
}

// BankConfig identifies the bank for display purposes.
type BankConfig struct {
	Name string `yaml:"name"`
}

// StorageConfig selects the repository backing the ledger and rule table.
type StorageConfig struct {
	Driver string `yaml:"driver"` // "memory" or "sqlite"
	Path   string `yaml:"path,omitempty"`
}

// InterestConfig controls accrual arithmetic.
type InterestConfig struct {
	DayCountBasis int `yaml:"day_count_basis"` // denominator for annual rates
}

// Load reads a gicbank.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
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

// Default returns a Config with sensible defaults: in-memory storage and a
// 365-day count basis.
func Default(bankName string) *Config {
	return &Config{
		Bank: BankConfig{
			Name: bankName,
		},
		Storage: StorageConfig{
			Driver: DriverMemory,
		},
		Interest: InterestConfig{
			DayCountBasis: 365,
		},
	}
}
