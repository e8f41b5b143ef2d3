package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// EnvVar overrides the configured log environment.
const EnvVar = "TALLY_LOG_ENV"

// New builds a logger writing to stderr. env is "dev", "prod" or "nop";
// level, if set, overrides the environment's default level.
func New(env, level string) (*zap.Logger, error) {
	if v := os.Getenv(EnvVar); v != "" {
		env = v
	}

	var cfg zap.Config
	switch env {
	case "", "dev":
		cfg = zap.NewDevelopmentConfig()
		cfg.DisableStacktrace = true
	case "prod":
		cfg = zap.NewProductionConfig()
	case "nop":
		return zap.NewNop(), nil
	default:
		return nil, fmt.Errorf("unknown log env %q", env)
	}

	if level != "" {
		lvl, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, fmt.Errorf("parsing log level: %w", err)
		}
		cfg.Level = lvl
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return log, nil
}
