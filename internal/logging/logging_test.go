package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "info")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger.Info().Str("phase", "playing").Msg("phase changed")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected a JSON line, got %q: %v", buf.String(), err)
	}
	if entry["phase"] != "playing" {
		t.Errorf("expected phase field, got %v", entry["phase"])
	}
	if entry["message"] != "phase changed" {
		t.Errorf("expected message field, got %v", entry["message"])
	}
	if _, ok := entry["time"]; !ok {
		t.Error("expected a timestamp")
	}
}

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "warn")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger.Info().Msg("dropped")
	if buf.Len() != 0 {
		t.Errorf("info should be filtered at warn level, got %q", buf.String())
	}

	logger.Warn().Msg("kept")
	if !strings.Contains(buf.String(), "kept") {
		t.Error("warn should be written at warn level")
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	var buf bytes.Buffer
	if _, err := New(&buf, "loud"); err == nil {
		t.Error("expected error for invalid level")
	}
}

func TestNew_NilWriter(t *testing.T) {
	logger, err := New(nil, "debug")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Disabled logger must accept writes
	logger.Info().Msg("nowhere")
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")

	logger, closer, err := Open(path, "debug")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Debug().Msg("hello")
	if err := closer.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("expected log line in file, got %q", data)
	}
}

func TestOpen_EmptyPath(t *testing.T) {
	_, closer, err := Open("", "info")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if closer == nil {
		t.Fatal("expected a closer")
	}
}
