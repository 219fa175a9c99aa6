package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dayfill/internal/config"
)

func TestNewLevel(t *testing.T) {
	testCases := []struct {
		level    string
		expected log.Level
	}{
		{"debug", log.DebugLevel},
		{"warn", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"bogus", log.InfoLevel},
		{"", log.InfoLevel},
	}

	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			logger := New(config.LogConfig{Level: tc.level}, &bytes.Buffer{})
			if logger.GetLevel() != tc.expected {
				t.Errorf("level = %v, expected %v", logger.GetLevel(), tc.expected)
			}
		})
	}
}

func TestNewWritesPrefix(t *testing.T) {
	var buf bytes.Buffer
	logger := New(config.LogConfig{Level: "info"}, &buf)
	logger.Info("piece placed", "piece", "L5")

	out := buf.String()
	if !strings.Contains(out, Prefix) || !strings.Contains(out, "piece=L5") {
		t.Errorf("unexpected log line: %q", out)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "dayfill.log")
	logger, closer, err := OpenFile(config.LogConfig{Level: "info", File: path})
	if err != nil {
		t.Fatalf("OpenFile() failed: %v", err)
	}
	logger.Info("hello")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file missing message: %q", data)
	}
}
