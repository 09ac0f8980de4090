package domain

import "strings"

// LineKind classifies a single input line per the VCF line-prefix convention.
type LineKind int

const (
	// KindMetadata is a file-level metadata line ("##...").
	KindMetadata LineKind = iota

	// KindColumnHeader is the column-header line ("#CHROM\tPOS\t...").
	// A valid file contains exactly one, after the metadata and before
	// the first record.
	KindColumnHeader

	// KindRecord is a data record: one variant per line.
	KindRecord

	// KindBlank is an empty line. Blank lines are invalid except as a
	// single trailing artifact at end of input.
	KindBlank
)

// String returns a human-readable representation of the line kind.
func (k LineKind) String() string {
	switch k {
	case KindMetadata:
		return "metadata"
	case KindColumnHeader:
		return "column header"
	case KindRecord:
		return "record"
	case KindBlank:
		return "blank"
	default:
		return "unknown"
	}
}

// Classify tags a line as metadata, column header, record, or blank.
// It is a pure function over the line's prefix; record payloads are
// never parsed.
func Classify(line string) LineKind {
	switch {
	case line == "":
		return KindBlank
	case strings.HasPrefix(line, "##"):
		return KindMetadata
	case strings.HasPrefix(line, "#"):
		return KindColumnHeader
	default:
		return KindRecord
	}
}
