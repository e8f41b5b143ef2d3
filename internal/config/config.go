package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "tally.yaml"

// Config represents the top-level tally.yaml configuration.
type Config struct {
	Data       DataConfig       `yaml:"data"`
	Planner    PlannerConfig    `yaml:"planner"`
	Report     ReportConfig     `yaml:"report"`
	Categories CategoriesConfig `yaml:"categories"`
	Log        LogConfig        `yaml:"log"`
}

// DataConfig locates the record file.
type DataConfig struct {
	Path string `yaml:"path"`
}

// PlannerConfig controls goal planning.
type PlannerConfig struct {
	// PeriodMonths is the number of months the record file covers; savings
	// are divided by it to get the monthly rate used for planning.
	PeriodMonths int `yaml:"period_months"`
}

// ReportConfig controls report output.
type ReportConfig struct {
	Locale string `yaml:"locale"` // BCP 47 tag, e.g. "en", "de-CH"
}

// CategoriesConfig lists user-defined categories offered alongside the built-ins.
type CategoriesConfig struct {
	Extra []string `yaml:"extra,omitempty"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Env   string `yaml:"env"`   // dev, prod or nop
	Level string `yaml:"level"` // debug, info, warn, error
}

// Load reads a tally.yaml file from disk.
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

// LoadOrDefault is like Load but returns Default when the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
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

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Path: "expenses.csv",
		},
		Planner: PlannerConfig{
			PeriodMonths: 1,
		},
		Report: ReportConfig{
			Locale: "en",
		},
		Log: LogConfig{
			Env:   "dev",
			Level: "warn",
		},
	}
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.Data.Path) == "" {
		problems = append(problems, "data.path must not be empty")
	}
	if c.Planner.PeriodMonths < 1 {
		problems = append(problems, fmt.Sprintf("planner.period_months must be at least 1, got %d", c.Planner.PeriodMonths))
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}
