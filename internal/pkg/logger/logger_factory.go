package logger

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/config"
)

var (
	loggerInstance Logger
	loggerErr      error
	loggerOnce     sync.Once
)

// InitLogger initializes the singleton logger. Only the first call has an effect.
func InitLogger(settings *config.LoggerSettings) error {
	loggerOnce.Do(func() {
		loggerInstance, loggerErr = newLogger(settings)
	})
	return loggerErr
}

// GetLogger returns the initialized logger instance.
func GetLogger() (Logger, error) {
	if loggerInstance == nil {
		return nil, fmt.Errorf("logger not initialized: call InitLogger first")
	}
	return loggerInstance, nil
}

func newLogger(s *config.LoggerSettings) (Logger, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	switch s.LogType {
	case config.LogTypeConsole:
		return NewConsoleLogger(s.LogLevel), nil
	case config.LogTypeFile:
		return NewFileLogger(s.LogLevel, s.FilePath, s.MaxSize, s.MaxBackups, s.MaxAge), nil
	default:
		return nil, fmt.Errorf("unsupported log type: %s", s.LogType)
	}
}

// slog has no critical level; critical records are emitted as errors.
func parseLevel(level string) slog.Level {
	switch level {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelWarning:
		return slog.LevelWarn
	case config.LogLevelError, config.LogLevelCritical:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
