package domain

import "fmt"

// HeaderBlock is the ordered sequence of metadata lines plus exactly one
// column-header line, captured once from the input before any record is seen.
// It is owned by the accumulator and shared read-only with every batch.
type HeaderBlock struct {
	lines      []string
	hasColumns bool
}

// Append adds a header line of the given kind, enforcing ordering:
// metadata lines must precede the column-header line, and at most one
// column-header line may appear.
func (h *HeaderBlock) Append(kind LineKind, line string) error {
	switch kind {
	case KindMetadata:
		if h.hasColumns {
			return fmt.Errorf("%w: metadata line after column header", ErrFormat)
		}
	case KindColumnHeader:
		if h.hasColumns {
			return fmt.Errorf("%w: duplicate column header line", ErrFormat)
		}
		h.hasColumns = true
	default:
		return fmt.Errorf("%w: %s line is not a header line", ErrFormat, kind)
	}
	h.lines = append(h.lines, line)
	return nil
}

// Complete reports whether the column-header line has been captured.
// A header block without it cannot head a valid output file.
func (h *HeaderBlock) Complete() bool {
	return h.hasColumns
}

// Len returns the number of header lines.
func (h *HeaderBlock) Len() int {
	return len(h.lines)
}

// Lines returns the header lines in original order. The returned slice is
// shared; callers must not mutate it.
func (h *HeaderBlock) Lines() []string {
	return h.lines
}
