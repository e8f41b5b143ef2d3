package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvDataPath, "feb.csv")
	t.Setenv(EnvLocale, "de-CH")
	t.Setenv(EnvLogLevel, "")

	cfg := Default()
	cfg.Categories.Extra = []string{"Gifts"}
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, "feb.csv", cfg.Data.Path)
	assert.Equal(t, "de-CH", cfg.Report.Locale)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "dev", cfg.Log.Env)
	assert.Equal(t, 1, cfg.Planner.PeriodMonths)
	assert.Equal(t, []string{"Gifts"}, cfg.Categories.Extra)
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("TALLY_DATA=from-dotenv.csv\nTALLY_LOCALE=fr\n"), 0o644))

	// Already-set variables win over the file.
	t.Setenv(EnvLocale, "it")
	t.Setenv(EnvDataPath, "")
	require.NoError(t, os.Unsetenv(EnvDataPath))

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-dotenv.csv", os.Getenv(EnvDataPath))
	assert.Equal(t, "it", os.Getenv(EnvLocale))
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))
}
