package engine

import (
	"fmt"

	"github.com/vcfkit/vcfbatch/internal/domain"
	"github.com/vcfkit/vcfbatch/internal/vcfio"
	"github.com/vcfkit/vcfbatch/pkg/log"
)

// DefaultBatchSize is the number of records per batch when none is configured.
const DefaultBatchSize = 25000

// Config holds the configuration for one batching run.
type Config struct {
	// InputPath is the VCF file to split; plain or gzip/BGZF compressed
	// (auto-detected).
	InputPath string

	// OutputDir receives the batch files; created if absent.
	OutputDir string

	// BatchSize is the number of data records per batch, not counting
	// header lines. Must be at least 1.
	BatchSize int

	// Compression selects output-side block compression.
	Compression vcfio.Compression

	// Logger receives progress events. Nil means no output.
	Logger log.Logger
}

// DefaultConfig returns a Config with default values. InputPath and
// OutputDir must be set before use.
func DefaultConfig() Config {
	return Config{BatchSize: DefaultBatchSize}
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
	return nil
}
