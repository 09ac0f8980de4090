package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables
// (VCFBATCH_*). It respects flags that have been explicitly set (changed
// map). Returns an error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	if err := s.setIntFromString("batch-size", os.Getenv("VCFBATCH_BATCH_SIZE"), &cfg.BatchSize); err != nil {
		return err
	}
	s.setString("compression-level", os.Getenv("VCFBATCH_COMPRESSION_LEVEL"), &cfg.CompressionLevel)
	s.setBoolFromString("watch", os.Getenv("VCFBATCH_WATCH"), &cfg.Watch)
	s.setBoolFromString("quiet", os.Getenv("VCFBATCH_QUIET"), &cfg.Quiet)
	return s.setDurationFromString("debounce", os.Getenv("VCFBATCH_DEBOUNCE_DELAY"), &cfg.DebounceDelay)
}
