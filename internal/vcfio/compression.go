package vcfio

import (
	"fmt"
	"strings"

	"github.com/klauspost/pgzip"

	"github.com/vcfkit/vcfbatch/internal/domain"
)

// Compression selects the output-side block compression tier. It applies
// uniformly to all batch files of a run and is independent of whether the
// input was compressed.
type Compression int

const (
	// CompressionNone writes plain-text batch files.
	CompressionNone Compression = iota

	// CompressionDefault is the balanced compression tier.
	CompressionDefault

	// CompressionFast favors write throughput over ratio.
	CompressionFast

	// CompressionBest favors ratio at the cost of throughput.
	CompressionBest
)

// String returns the canonical spelling accepted by ParseCompression.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionDefault:
		return "default"
	case CompressionFast:
		return "fast"
	case CompressionBest:
		return "best"
	default:
		return "unknown"
	}
}

// level maps the tier to a gzip encoder level.
func (c Compression) level() int {
	switch c {
	case CompressionFast:
		return pgzip.BestSpeed
	case CompressionBest:
		return pgzip.BestCompression
	default:
		return pgzip.DefaultCompression
	}
}

// ParseCompression parses a user-supplied compression level. Matching is
// case-insensitive; the empty string and "none" select no compression.
// Unrecognized values are rejected rather than silently treated as none.
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return CompressionNone, nil
	case "default":
		return CompressionDefault, nil
	case "fast":
		return CompressionFast, nil
	case "best":
		return CompressionBest, nil
	default:
		return CompressionNone, fmt.Errorf("%w: unknown compression level %q (want none, default, fast or best)", domain.ErrConfig, s)
	}
}
