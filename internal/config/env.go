package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
)

// Environment variables that override the file settings.
const (
	EnvDataPath = "TALLY_DATA"
	EnvLocale   = "TALLY_LOCALE"
	EnvLogLevel = "TALLY_LOG_LEVEL"
)

// DotEnvFile is read by LoadDotEnv when no path is given.
const DotEnvFile = ".env"

// LoadDotEnv loads variables from a dotenv file into the process environment.
// Variables already set are kept. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = DotEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides settings from TALLY_* environment variables. Unset or
// blank variables leave the setting alone.
func (c *Config) ApplyEnv() error {
	env := Config{
		Data:   DataConfig{Path: getenv(EnvDataPath)},
		Report: ReportConfig{Locale: getenv(EnvLocale)},
		Log:    LogConfig{Level: getenv(EnvLogLevel)},
	}
	if err := mergo.Merge(c, env, mergo.WithOverride); err != nil {
		return fmt.Errorf("applying environment: %w", err)
	}
	return nil
}

func getenv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
