// Package engine drives the single-pass batching pipeline: reader lines are
// classified, accumulated into bounded batches, and flushed to batch files.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vcfkit/vcfbatch/internal/domain"
	"github.com/vcfkit/vcfbatch/internal/vcfio"
	"github.com/vcfkit/vcfbatch/pkg/log"
)

// Engine owns all per-run state (accumulator, batch index, open handles), so
// a long-lived host process can run it repeatedly without shared globals.
type Engine struct {
	cfg Config
	log log.Logger
}

// New validates the configuration and creates an Engine. Invalid
// configuration fails here, before any file is opened.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Engine{cfg: cfg, log: logger}, nil
}

// Run performs one forward pass over the input and returns the number of
// batch files written. The first error from any stage aborts the run;
// already-written batch files are left in place.
func (e *Engine) Run(ctx context.Context) (int, error) {
	r, err := vcfio.Open(e.cfg.InputPath)
	if err != nil {
		return 0, err
	}
	defer r.Close()

	w, err := vcfio.NewWriter(e.cfg.OutputDir, e.cfg.InputPath, e.cfg.Compression)
	if err != nil {
		return 0, err
	}

	e.log.Info("starting batch run",
		log.String("input", e.cfg.InputPath),
		log.String("output_dir", e.cfg.OutputDir),
		log.Int("batch_size", e.cfg.BatchSize),
		log.String("compression", e.cfg.Compression.String()),
		log.Bool("compressed_input", r.Compressed()),
	)

	acc := newAccumulator(e.cfg.BatchSize)
	var (
		written int
		records int
		blankAt int
	)

	for {
		line, rerr := r.Next()
		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			return written, rerr
		}

		// A blank line is tolerated only as the final trailing artifact.
		if blankAt > 0 {
			return written, fmt.Errorf("line %d: %w: blank line", blankAt, domain.ErrFormat)
		}
		kind := domain.Classify(line)
		if kind == domain.KindBlank {
			blankAt = r.Line()
			continue
		}

		b, err := acc.feed(kind, line)
		if err != nil {
			return written, fmt.Errorf("line %d: %w", r.Line(), err)
		}
		if b != nil {
			if err := e.flush(w, b); err != nil {
				return written, err
			}
			written++
			records += b.Size()
			if err := ctx.Err(); err != nil {
				return written, err
			}
		}
	}

	final, err := acc.finish()
	if err != nil {
		return written, err
	}
	if final != nil {
		if err := e.flush(w, final); err != nil {
			return written, err
		}
		written++
		records += final.Size()
	}

	e.log.Info("batch run complete",
		log.Int("batches", written),
		log.Int("records", records),
	)
	return written, nil
}

func (e *Engine) flush(w *vcfio.Writer, b *domain.Batch) error {
	name, err := w.WriteBatch(b)
	if err != nil {
		return fmt.Errorf("batch %d: %w", b.Index, err)
	}
	e.log.Info("saved batch",
		log.String("file", name),
		log.Int("records", b.Size()),
	)
	return nil
}
