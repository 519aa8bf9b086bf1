//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerSettingsValidation(t *testing.T) {
	rotatingFile := func(mutate func(*LoggerSettings)) *LoggerSettings {
		s := &LoggerSettings{
			LogLevel:   LogLevelInfo,
			LogType:    LogTypeFile,
			FilePath:   "/var/log/tutoria/app.log",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		}
		if mutate != nil {
			mutate(s)
		}
		return s
	}

	tests := []struct {
		name          string
		settings      *LoggerSettings
		expectedError bool
	}{
		{"console logger", &LoggerSettings{LogLevel: LogLevelDebug, LogType: LogTypeConsole}, false},
		{"file logger with rotation", rotatingFile(nil), false},
		{"missing log level", &LoggerSettings{LogType: LogTypeConsole}, true},
		{"missing log type", &LoggerSettings{LogLevel: LogLevelInfo}, true},
		{"unknown log type", &LoggerSettings{LogLevel: LogLevelInfo, LogType: "syslog"}, true},
		{"file logger without path", rotatingFile(func(s *LoggerSettings) { s.FilePath = "" }), true},
		{"file logger max size too small", rotatingFile(func(s *LoggerSettings) { s.MaxSize = 0 }), true},
		{"file logger max size too large", rotatingFile(func(s *LoggerSettings) { s.MaxSize = 101 }), true},
		{"file logger too many backups", rotatingFile(func(s *LoggerSettings) { s.MaxBackups = 11 }), true},
		{"file logger max age out of range", rotatingFile(func(s *LoggerSettings) { s.MaxAge = 400 }), true},
		{
			"console logger ignores rotation settings",
			&LoggerSettings{LogLevel: LogLevelWarning, LogType: LogTypeConsole, MaxSize: 1000},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
