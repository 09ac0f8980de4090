package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML
// friendly. Paths are deliberately absent; input and output are always
// given on the command line.
type FileConfig struct {
	BatchSize        int    `toml:"batch_size"`
	CompressionLevel string `toml:"compression_level"`
	Watch            *bool  `toml:"watch"`
	DebounceDelay    string `toml:"debounce_delay"`
	Quiet            *bool  `toml:"quiet"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.vcfbatch/config.toml if the user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".vcfbatch", "config.toml")
	}
	return ""
}

// FileExists reports whether path names an existing regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setInt("batch-size", fc.BatchSize, &cfg.BatchSize)
	s.setString("compression-level", fc.CompressionLevel, &cfg.CompressionLevel)
	s.setBool("watch", fc.Watch, &cfg.Watch)
	s.setBool("quiet", fc.Quiet, &cfg.Quiet)
	return s.setDurationFromString("debounce", fc.DebounceDelay, &cfg.DebounceDelay)
}
