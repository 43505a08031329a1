package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/san-kum/tzclock/internal/config"
)

func TestNew_EmptyFileIsNop(t *testing.T) {
	log, err := New(config.LogConfig{Level: "debug"})
	if err != nil {
		t.Fatal(err)
	}
	if log.Core().Enabled(zapcore.DebugLevel) {
		t.Error("nop logger should not be enabled")
	}
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tzclock.log")
	log, err := New(config.LogConfig{File: path, Level: "info"})
	if err != nil {
		t.Fatal(err)
	}
	log.Debug("hidden")
	log.Info("clock added")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "clock added") {
		t.Errorf("log file missing entry: %q", data)
	}
	if strings.Contains(string(data), "hidden") {
		t.Error("debug entry written at info level")
	}
}

func TestNew_BadLevel(t *testing.T) {
	if _, err := New(config.LogConfig{File: filepath.Join(t.TempDir(), "x.log"), Level: "loud"}); err == nil {
		t.Error("expected error for unknown level")
	}
}
