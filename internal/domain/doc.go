// Package domain contains the core entities and value objects for vcfbatch.
//
// This package is the innermost layer: it has no dependencies on
// infrastructure concerns (file system, compression, logging) and contains
// only the batching rules themselves.
//
// # Entities
//
//   - [LineKind] / [Classify]: classification of input lines per the VCF
//     line-prefix convention
//   - [HeaderBlock]: the metadata and column-header lines captured once and
//     shared read-only with every batch
//   - [Batch]: a bounded group of consecutive records plus the header
//
// # Errors
//
// The sentinel errors [ErrConfig], [ErrFormat] and [ErrDecompression] are
// the error kinds surfaced by the public API; wrap sites attach line numbers
// and paths, and callers match kinds with errors.Is.
package domain
