// Package vcfbatch splits large VCF files into batches of smaller,
// independently valid VCF files, so downstream tools can process them in
// parallel. Input may be plain text or gzip/BGZF compressed (auto-detected);
// output compression is optional and parallelized.
//
// Example usage:
//
//	cfg := vcfbatch.DefaultConfig()
//	cfg.InputPath = "cohort.vcf.gz"
//	cfg.OutputDir = "batches"
//	n, err := vcfbatch.Extract(context.Background(), cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("wrote %d batch files\n", n)
package vcfbatch

import (
	"context"

	"github.com/vcfkit/vcfbatch/internal/domain"
	"github.com/vcfkit/vcfbatch/internal/engine"
	"github.com/vcfkit/vcfbatch/internal/vcfio"
	"github.com/vcfkit/vcfbatch/internal/watch"
)

// Config holds the configuration for one batching run.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config = engine.Config

// WatchConfig holds the configuration for watch mode, which batches every
// VCF file that appears in a directory.
type WatchConfig = watch.Config

// Compression selects the output-side block compression tier.
type Compression = vcfio.Compression

// Output compression tiers. None writes plain text regardless of input
// compression; Fast favors throughput, Best favors ratio.
const (
	CompressionNone    = vcfio.CompressionNone
	CompressionDefault = vcfio.CompressionDefault
	CompressionFast    = vcfio.CompressionFast
	CompressionBest    = vcfio.CompressionBest
)

// DefaultBatchSize is the number of records per batch when none is configured.
const DefaultBatchSize = engine.DefaultBatchSize

// Error kinds returned by the public API; check with errors.Is. I/O failures
// carry the underlying os error and the offending path instead.
var (
	ErrConfig        = domain.ErrConfig
	ErrFormat        = domain.ErrFormat
	ErrDecompression = domain.ErrDecompression
)

// DefaultConfig returns a Config with sensible default values.
// At minimum, set InputPath and OutputDir before calling Extract.
func DefaultConfig() Config {
	return engine.DefaultConfig()
}

// DefaultWatchConfig returns a WatchConfig with sensible default values.
// At minimum, set InputDir and OutputDir before calling Watch.
func DefaultWatchConfig() WatchConfig {
	return watch.DefaultConfig()
}

// ParseCompression parses a user-supplied compression level: "none" (or
// empty), "default", "fast" or "best", case-insensitively.
func ParseCompression(s string) (Compression, error) {
	return vcfio.ParseCompression(s)
}

// Extract performs one batching run and returns the number of batch files
// written. All run state is owned by the call, so a long-lived host process
// can invoke it repeatedly and concurrently for distinct inputs.
func Extract(ctx context.Context, cfg Config) (int, error) {
	e, err := engine.New(cfg)
	if err != nil {
		return 0, err
	}
	return e.Run(ctx)
}

// ExtractVariantsToBatches is a convenience wrapper around Extract for
// callers that do not need a Config value.
func ExtractVariantsToBatches(ctx context.Context, inputPath, outputDir string, batchSize int, level Compression) (int, error) {
	return Extract(ctx, Config{
		InputPath:   inputPath,
		OutputDir:   outputDir,
		BatchSize:   batchSize,
		Compression: level,
	})
}

// Watch monitors cfg.InputDir and batches every VCF file that appears in it
// until the context is cancelled.
func Watch(ctx context.Context, cfg WatchConfig) error {
	w, err := watch.New(cfg)
	if err != nil {
		return err
	}
	return w.Run(ctx)
}
