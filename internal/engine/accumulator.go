package engine

import (
	"fmt"

	"github.com/vcfkit/vcfbatch/internal/domain"
)

// accumulator is the batching state machine. It buffers the header block
// until the first record arrives (freezing it from then on), then groups
// records into fixed-size batches. At most one batch is in flight at a time.
type accumulator struct {
	batchSize  int
	header     *domain.HeaderBlock
	current    *domain.Batch
	nextIndex  int
	collecting bool // false while the header block is still open
}

func newAccumulator(batchSize int) *accumulator {
	return &accumulator{
		batchSize: batchSize,
		header:    &domain.HeaderBlock{},
		nextIndex: 1,
	}
}

// feed consumes one classified line. When a batch reaches the configured
// size it is returned for flushing; otherwise the returned batch is nil.
func (a *accumulator) feed(kind domain.LineKind, line string) (*domain.Batch, error) {
	switch kind {
	case domain.KindMetadata, domain.KindColumnHeader:
		if a.collecting {
			return nil, fmt.Errorf("%w: %s line after records", domain.ErrFormat, kind)
		}
		return nil, a.header.Append(kind, line)

	case domain.KindRecord:
		if !a.collecting {
			if !a.header.Complete() {
				return nil, fmt.Errorf("%w: record before column header line", domain.ErrFormat)
			}
			a.collecting = true
		}
		if a.current == nil {
			a.current = domain.NewBatch(a.header, a.nextIndex)
			a.nextIndex++
		}
		a.current.Add(line)
		if a.current.Size() >= a.batchSize {
			b := a.current
			a.current = nil
			return b, nil
		}
		return nil, nil

	default:
		return nil, fmt.Errorf("%w: unexpected %s line", domain.ErrFormat, kind)
	}
}

// finish returns the final batch at end of input, or nil when the last
// record exactly filled a batch. A header-only input yields one batch with
// zero records, so every run that starts produces at least one output file.
// An input without a column-header line is a format error.
func (a *accumulator) finish() (*domain.Batch, error) {
	if a.current != nil {
		b := a.current
		a.current = nil
		return b, nil
	}
	if !a.collecting {
		if !a.header.Complete() {
			return nil, fmt.Errorf("%w: missing column header line", domain.ErrFormat)
		}
		b := domain.NewBatch(a.header, a.nextIndex)
		a.nextIndex++
		return b, nil
	}
	return nil, nil
}
