// Package cliconfig layers vcfbatch CLI configuration from flags,
// environment variables (VCFBATCH_*), and a TOML config file, in that
// order of precedence.
package cliconfig

import (
	"fmt"
	"strconv"
	"time"

	"github.com/vcfkit/vcfbatch/internal/domain"
	"github.com/vcfkit/vcfbatch/internal/engine"
	"github.com/vcfkit/vcfbatch/internal/vcfio"
)

// Config holds CLI configuration for vcfbatch.
type Config struct {
	// InputPath is the VCF file to split, or the directory to monitor in
	// watch mode. First positional argument.
	InputPath string

	// OutputDir receives the batch files. Second positional argument.
	OutputDir string

	// BatchSize is the number of data records per batch file.
	BatchSize int

	// CompressionLevel is the raw user-supplied level: none, default,
	// fast or best.
	CompressionLevel string

	// Watch treats InputPath as a directory and batches every VCF file
	// that appears in it until interrupted.
	Watch bool

	// DebounceDelay is the watch-mode settle delay after the last write
	// event on a file.
	DebounceDelay time.Duration

	// Quiet suppresses progress output.
	Quiet bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		BatchSize:     engine.DefaultBatchSize,
		DebounceDelay: 500 * time.Millisecond,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("%w: input path is required", domain.ErrConfig)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output directory is required", domain.ErrConfig)
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("%w: batch size must be at least 1, got %d", domain.ErrConfig, c.BatchSize)
	}
	if _, err := vcfio.ParseCompression(c.CompressionLevel); err != nil {
		return err
	}
	return nil
}

// Compression returns the parsed compression level. Call Validate first;
// an unparsable level falls back to none here.
func (c *Config) Compression() vcfio.Compression {
	comp, err := vcfio.ParseCompression(c.CompressionLevel)
	if err != nil {
		return vcfio.CompressionNone
	}
	return comp
}

// configSetter helps apply configuration values while respecting flag
// precedence. It only applies values if the corresponding flag hasn't been
// explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setIntFromString parses and sets an int value from a string.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %q", flag, value)
	}
	*dst = n
	return nil
}

// setBool sets a bool value from an optional pointer if flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString parses and sets a bool value from a string.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	if b, err := strconv.ParseBool(value); err == nil {
		*dst = b
	}
}

// setDurationFromString parses and sets a duration value from a string.
func (s *configSetter) setDurationFromString(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %q", flag, value)
	}
	*dst = d
	return nil
}
