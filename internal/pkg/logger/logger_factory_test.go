//go:build unit
// +build unit

package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLoggerSingleton() {
	loggerInstance = nil
	loggerErr = nil
	loggerOnce = sync.Once{}
}

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name     string
		settings func(t *testing.T) *config.LoggerSettings
		wantErr  bool
	}{
		{
			name: "console logger",
			settings: func(*testing.T) *config.LoggerSettings {
				return &config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeConsole}
			},
		},
		{
			name: "file logger with rotation",
			settings: func(t *testing.T) *config.LoggerSettings {
				return &config.LoggerSettings{
					LogLevel:   config.LogLevelInfo,
					LogType:    config.LogTypeFile,
					FilePath:   filepath.Join(t.TempDir(), "tutoria.log"),
					MaxSize:    10,
					MaxBackups: 3,
					MaxAge:     28,
				}
			},
		},
		{
			name: "invalid log level",
			settings: func(*testing.T) *config.LoggerSettings {
				return &config.LoggerSettings{LogLevel: "verbose", LogType: config.LogTypeConsole}
			},
			wantErr: true,
		},
		{
			name: "file logger missing rotation settings",
			settings: func(t *testing.T) *config.LoggerSettings {
				return &config.LoggerSettings{
					LogLevel: config.LogLevelInfo,
					LogType:  config.LogTypeFile,
					FilePath: filepath.Join(t.TempDir(), "tutoria.log"),
				}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(resetLoggerSingleton)

			settings := tt.settings(t)
			err := InitLogger(settings)

			if tt.wantErr {
				assert.Error(t, err)

				log, getErr := GetLogger()
				assert.Error(t, getErr)
				assert.Nil(t, log)
				return
			}

			require.NoError(t, err)
			log, err := GetLogger()
			require.NoError(t, err)
			require.NotNil(t, log)

			if settings.LogType == config.LogTypeFile {
				log.Info("tutoring request created", "request_id", "abc")
				_, err := os.Stat(settings.FilePath)
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetLogger_BeforeInit(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	log, err := GetLogger()
	assert.Error(t, err)
	assert.Nil(t, log)
	assert.Contains(t, err.Error(), "not initialized")
}

func TestInitLogger_OnlyFirstCallApplies(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	require.NoError(t, InitLogger(&config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}))
	first, err := GetLogger()
	require.NoError(t, err)

	// an invalid second configuration is ignored
	require.NoError(t, InitLogger(&config.LoggerSettings{LogLevel: "bogus"}))
	second, err := GetLogger()
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{config.LogLevelDebug, slog.LevelDebug},
		{config.LogLevelInfo, slog.LevelInfo},
		{config.LogLevelWarning, slog.LevelWarn},
		{config.LogLevelError, slog.LevelError},
		{config.LogLevelCritical, slog.LevelError},
		{"unknown", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.level))
		})
	}
}
