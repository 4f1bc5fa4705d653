package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samdwyer/randommarch/internal/config"
)

func TestNewWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := New(config.LogConfig{Level: "info"}, &buf)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer closer.Close()

	logger.Info("cave generated", "seed", 42)
	logger.Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "cave generated") || !strings.Contains(out, "seed=42") {
		t.Errorf("Expected info line with seed, got %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("Debug line should be filtered at info level, got %q", out)
	}
	if !strings.Contains(out, prefix) {
		t.Errorf("Expected prefix %q in %q", prefix, out)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, _, err := New(config.LogConfig{Level: "loud"}, &bytes.Buffer{}); err == nil {
		t.Error("New() should fail for an unknown level")
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "cave.log")
	var buf bytes.Buffer

	logger, closer, err := New(config.LogConfig{Level: "debug", File: path, MaxSizeMB: 1}, &buf)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	logger.Debug("walker finished", "index", 3)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.Contains(string(data), "walker finished") {
		t.Errorf("Expected log line in file, got %q", data)
	}
	if buf.Len() != 0 {
		t.Errorf("Writer should be unused when logging to a file, got %q", buf.String())
	}
}
