package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFileConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
batch_size = 5000
compression_level = "fast"
watch = true
debounce_delay = "2s"
quiet = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}
	if fc.BatchSize != 5000 {
		t.Errorf("BatchSize = %d, want 5000", fc.BatchSize)
	}
	if fc.CompressionLevel != "fast" {
		t.Errorf("CompressionLevel = %q, want fast", fc.CompressionLevel)
	}
	if fc.Watch == nil || !*fc.Watch {
		t.Error("Watch not parsed as true")
	}
	if fc.Quiet == nil || !*fc.Quiet {
		t.Error("Quiet not parsed as true")
	}
}

func TestLoadFileConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(path, []byte("batch_size = ["), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadFileConfig(path); err == nil {
		t.Error("LoadFileConfig() = nil error for invalid TOML")
	}
}

func TestApplyFileConfig(t *testing.T) {
	cfg := DefaultConfig()
	watch := true
	fc := FileConfig{
		BatchSize:        1234,
		CompressionLevel: "best",
		Watch:            &watch,
		DebounceDelay:    "1s",
	}

	if err := ApplyFileConfig(&cfg, fc, map[string]bool{}); err != nil {
		t.Fatalf("ApplyFileConfig() error = %v", err)
	}
	if cfg.BatchSize != 1234 {
		t.Errorf("BatchSize = %d, want 1234", cfg.BatchSize)
	}
	if cfg.CompressionLevel != "best" {
		t.Errorf("CompressionLevel = %q, want best", cfg.CompressionLevel)
	}
	if !cfg.Watch {
		t.Error("Watch = false, want true")
	}
	if cfg.DebounceDelay != time.Second {
		t.Errorf("DebounceDelay = %v, want 1s", cfg.DebounceDelay)
	}
}

// Explicitly set flags win over file values.
func TestApplyFileConfig_FlagPrecedence(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BatchSize = 777
	fc := FileConfig{BatchSize: 1234, CompressionLevel: "best"}

	changed := map[string]bool{"batch-size": true}
	if err := ApplyFileConfig(&cfg, fc, changed); err != nil {
		t.Fatalf("ApplyFileConfig() error = %v", err)
	}
	if cfg.BatchSize != 777 {
		t.Errorf("BatchSize = %d, want flag value 777", cfg.BatchSize)
	}
	if cfg.CompressionLevel != "best" {
		t.Errorf("CompressionLevel = %q, want best", cfg.CompressionLevel)
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if FileExists(path) {
		t.Error("FileExists() = true for missing file")
	}
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !FileExists(path) {
		t.Error("FileExists() = false for existing file")
	}
	if FileExists(dir) {
		t.Error("FileExists() = true for directory")
	}
}
