package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

// Helper to capture logger output into a buffer.
func captureOutput(f func()) string {
	oldOut := logger.Out

	var buf bytes.Buffer
	logger.SetOutput(&buf)

	f()

	logger.SetOutput(oldOut)
	return buf.String()
}

func TestSetVerbose(t *testing.T) {
	originalLevel := logger.GetLevel()
	defer logger.SetLevel(originalLevel)

	logger.SetLevel(logrus.InfoLevel)

	SetVerbose(true)
	if logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("Expected debug level after SetVerbose(true), got %v", logger.GetLevel())
	}

	// SetVerbose(false) must not lower an already raised level.
	SetVerbose(false)
	if logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("Expected level to stay debug after SetVerbose(false), got %v", logger.GetLevel())
	}
}

func TestSetLevel(t *testing.T) {
	originalLevel := logger.GetLevel()
	defer logger.SetLevel(originalLevel)

	tests := []struct {
		name     string
		level    string
		expected logrus.Level
	}{
		{"debug", "debug", logrus.DebugLevel},
		{"info", "info", logrus.InfoLevel},
		{"warn", "warn", logrus.WarnLevel},
		{"error", "error", logrus.ErrorLevel},
		{"unknown falls back to info", "loud", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captureOutput(func() {
				SetLevel(tt.level)
			})
			if logger.GetLevel() != tt.expected {
				t.Errorf("SetLevel(%q) resulted in %v, want %v", tt.level, logger.GetLevel(), tt.expected)
			}
		})
	}
}

func TestDebugf_SuppressedAtInfoLevel(t *testing.T) {
	originalLevel := logger.GetLevel()
	defer logger.SetLevel(originalLevel)

	logger.SetLevel(logrus.InfoLevel)

	out := captureOutput(func() {
		Debugf("test debug message")
	})

	if out != "" {
		t.Errorf("Expected no output for debug at info level, got: %s", out)
	}
}

func TestDebugf_VisibleWhenVerbose(t *testing.T) {
	originalLevel := logger.GetLevel()
	defer logger.SetLevel(originalLevel)

	SetVerbose(true)

	out := captureOutput(func() {
		Debugf("test debug message")
	})

	if !strings.Contains(out, "test debug message") {
		t.Errorf("Expected debug message in output, got: %s", out)
	}
}

func TestInfof_FormattingWithArgs(t *testing.T) {
	out := captureOutput(func() {
		Infof("test message with %s and %d", "string", 42)
	})

	if !strings.Contains(out, "test message with string and 42") {
		t.Errorf("Expected formatted message, got: %s", out)
	}
}

func TestErrorf(t *testing.T) {
	out := captureOutput(func() {
		Errorf("test error message")
	})

	if !strings.Contains(out, "test error message") {
		t.Errorf("Expected error message in output, got: %s", out)
	}
}
