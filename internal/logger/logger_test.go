package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Setenv(EnvVar, "")

	tests := []struct {
		env, level string
		min        zapcore.Level
	}{
		{"dev", "", zapcore.DebugLevel},
		{"", "warn", zapcore.WarnLevel},
		{"prod", "", zapcore.InfoLevel},
		{"prod", "error", zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		log, err := New(tt.env, tt.level)
		require.NoError(t, err, "env %q level %q", tt.env, tt.level)
		lvl := tt.min
		assert.True(t, log.Core().Enabled(lvl), "env %q level %q should enable %s", tt.env, tt.level, lvl)
		if lvl > zapcore.DebugLevel {
			assert.False(t, log.Core().Enabled(lvl-1), "env %q level %q should not enable %s", tt.env, tt.level, lvl-1)
		}
	}
}

func TestNew_Nop(t *testing.T) {
	t.Setenv(EnvVar, "")
	log, err := New("nop", "")
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zap.ErrorLevel))
}

func TestNew_EnvOverride(t *testing.T) {
	t.Setenv(EnvVar, "nop")
	log, err := New("prod", "debug")
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zap.ErrorLevel))
}

func TestNew_Errors(t *testing.T) {
	t.Setenv(EnvVar, "")

	_, err := New("staging", "")
	assert.Error(t, err)

	_, err = New("dev", "loud")
	assert.Error(t, err)
}
