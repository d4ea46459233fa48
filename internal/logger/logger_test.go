package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	logpkg "github.com/maxviazov/fantasy-stats-service/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		config      *logpkg.LoggerConfig
		expectError bool
		wantLevel   zerolog.Level
	}{
		{
			name: "prod json",
			config: &logpkg.LoggerConfig{
				ServiceName: "test-service",
				Env:         "prod",
				Level:       "info",
				TimeField:   "timestamp",
				TimeFormat:  "unix",
				Fields:      map[string]interface{}{"key": "value"},
			},
			wantLevel: zerolog.InfoLevel,
		},
		{
			name:        "wrong env",
			config:      &logpkg.LoggerConfig{Env: "wrong-env", Level: "debug"},
			expectError: true,
		},
		{
			name:        "wrong level",
			config:      &logpkg.LoggerConfig{Env: "prod", Level: "invalid-level"},
			expectError: true,
		},
		{
			name:        "wrong format",
			config:      &logpkg.LoggerConfig{Env: "prod", Format: "xml"},
			expectError: true,
		},
		{
			name: "staging warn with stacktrace",
			config: &logpkg.LoggerConfig{
				Env:        "staging",
				Level:      "warn",
				TimeFormat: "rfc3339",
				Stacktrace: true,
			},
			wantLevel: zerolog.WarnLevel,
		},
		{
			name: "dev info console",
			config: &logpkg.LoggerConfig{
				Env:          "dev",
				Level:        "info",
				OutputTarget: "stderr",
			},
			wantLevel: zerolog.InfoLevel,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, err := logpkg.New(tc.config)
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantLevel, zerolog.GlobalLevel())
			assert.Equal(t, tc.wantLevel, l.GetLevel())
		})
	}

	t.Run("dev debug tees into file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "debug.log")
		_, err := logpkg.New(&logpkg.LoggerConfig{Env: "dev", Level: "debug", DebugFile: path})
		require.NoError(t, err)

		_, statErr := os.Stat(path)
		assert.NoError(t, statErr)
	})

	t.Run("defaults applied", func(t *testing.T) {
		cfg := &logpkg.LoggerConfig{}
		_, err := logpkg.New(cfg)
		require.NoError(t, err)
		assert.Equal(t, "prod", cfg.Env)
		assert.Equal(t, "json", cfg.Format)
		assert.Equal(t, "fantasy-stats-service", cfg.ServiceName)
	})
}
