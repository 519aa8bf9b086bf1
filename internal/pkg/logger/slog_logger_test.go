//go:build unit
// +build unit

package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextLogger_WritesKeyValues(t *testing.T) {
	var buf bytes.Buffer
	log := newTextLogger(&buf, config.LogLevelInfo)

	log.Debug("hidden below info")
	log.Info("program registered", "code", "ING-SW")
	log.Warn("request expired", "request_id", "r-1")
	log.Error("accept failed", "err", "boom")

	output := buf.String()
	assert.NotContains(t, output, "hidden below info")
	assert.Contains(t, output, "program registered")
	assert.Contains(t, output, "code=ING-SW")
	assert.Contains(t, output, "request_id=r-1")
	assert.Contains(t, output, "level=ERROR")
}

func TestTextLogger_With(t *testing.T) {
	var buf bytes.Buffer
	log := newTextLogger(&buf, config.LogLevelDebug).With("component", "tutoring")

	log.Debug("listing pending requests")

	assert.Contains(t, buf.String(), "component=tutoring")
	assert.Contains(t, buf.String(), "listing pending requests")
}

func TestNewFileLogger(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "tutoria.log")

	log := NewFileLogger(config.LogLevelInfo, logPath, 10, 3, 28)
	require.NotNil(t, log)

	log.Info("user logged in", "user_id", "u-1")
	log.Warn("warn message")

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)

	output := string(content)
	assert.Contains(t, output, `"msg":"user logged in"`)
	assert.Contains(t, output, `"user_id":"u-1"`)
	assert.Contains(t, output, `"level":"WARN"`)
}
