package log

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogging(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "test.log")

	logger, err := New(Config{
		Level:    "debug",
		FilePath: logPath,
	})
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	SetDefaultLogger(logger)

	Debug("Debug message", "test", true)
	Info("Info message", "test", true)
	Warn("Warning message", "test", true)
	Error("Error message", "error", fmt.Errorf("test error"))

	// Close logger to ensure file is written
	logger.Close()

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	contentStr := string(content)
	assert.Contains(t, contentStr, "Debug message")
	assert.Contains(t, contentStr, "Info message")
	assert.Contains(t, contentStr, "Warning message")
	assert.Contains(t, contentStr, "Error message")
	assert.Contains(t, contentStr, "test error")
}

func TestTraceOnlyEnabledAtTraceLevel(t *testing.T) {
	tempDir := t.TempDir()

	infoLogger, err := New(Config{Level: "info", FilePath: filepath.Join(tempDir, "info.log")})
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	SetDefaultLogger(infoLogger)
	Trace("hidden trace message")
	infoLogger.Close()

	traceLogger, err := New(Config{Level: "trace", FilePath: filepath.Join(tempDir, "trace.log")})
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	SetDefaultLogger(traceLogger)
	Trace("visible trace message")
	traceLogger.Close()

	infoContent, err := os.ReadFile(filepath.Join(tempDir, "info.log"))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	traceContent, err := os.ReadFile(filepath.Join(tempDir, "trace.log"))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	assert.NotContains(t, string(infoContent), "hidden trace message")
	assert.Contains(t, string(traceContent), "TRACE: visible trace message")
}
