package domain

import "errors"

// Domain errors represent error conditions in the vcfbatch domain.
// These errors are returned by the public API and can be checked with errors.Is.
// I/O failures carry no dedicated sentinel; they wrap the underlying os error
// together with the offending path.
var (
	// ErrConfig is returned when configuration validation fails,
	// e.g. a batch size below 1.
	ErrConfig = errors.New("vcfbatch: invalid configuration")

	// ErrFormat is returned for structurally invalid VCF input: a missing
	// header, header lines interleaved with records, or blank lines in the
	// body of the file.
	ErrFormat = errors.New("vcfbatch: malformed input")

	// ErrDecompression is returned when the input carries the gzip magic
	// bytes but the compressed stream is truncated or corrupt.
	ErrDecompression = errors.New("vcfbatch: corrupt compressed input")
)
