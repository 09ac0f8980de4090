// Package watch runs the batching engine as a long-lived service over a drop
// directory: every VCF file that lands in the directory is split into its own
// set of batch files.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/vcfkit/vcfbatch/internal/domain"
	"github.com/vcfkit/vcfbatch/internal/engine"
	"github.com/vcfkit/vcfbatch/internal/vcfio"
	"github.com/vcfkit/vcfbatch/pkg/log"
)

// Config holds the configuration for the directory watcher.
type Config struct {
	// InputDir is the directory monitored for .vcf / .vcf.gz files.
	InputDir string

	// OutputDir is the root output directory. Each input file is batched
	// into OutputDir/<base>/.
	OutputDir string

	// BatchSize is the number of records per batch file.
	BatchSize int

	// Compression selects output-side compression for all batch files.
	Compression vcfio.Compression

	// DebounceDelay is how long to wait after the last write event before
	// processing a file, so partially copied files settle first.
	DebounceDelay time.Duration

	// Logger receives progress events. Nil means no output.
	Logger log.Logger
}

// DefaultConfig returns a watcher Config with default values.
func DefaultConfig() Config {
	return Config{
		BatchSize:     engine.DefaultBatchSize,
		DebounceDelay: 500 * time.Millisecond,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("%w: input directory is required", domain.ErrConfig)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output directory is required", domain.ErrConfig)
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("%w: batch size must be at least 1, got %d", domain.ErrConfig, c.BatchSize)
	}
	if c.DebounceDelay <= 0 {
		c.DebounceDelay = 500 * time.Millisecond
	}
	return nil
}

// Watcher monitors a directory and batches each VCF file that appears in it.
// A failure on one file is logged and does not stop the watcher.
type Watcher struct {
	cfg Config
	log log.Logger

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// New validates the configuration and creates a Watcher.
func New(cfg Config) (*Watcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Watcher{
		cfg:    cfg,
		log:    logger,
		timers: make(map[string]*time.Timer),
	}, nil
}

// Run processes the files already present in the input directory, then
// blocks watching for new ones until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(w.cfg.InputDir); err != nil {
		return fmt.Errorf("watch %s: %w", w.cfg.InputDir, err)
	}

	if err := w.processExisting(ctx); err != nil {
		return err
	}

	w.log.Info("watching for VCF files",
		log.String("input_dir", w.cfg.InputDir),
		log.String("output_dir", w.cfg.OutputDir),
	)

	for {
		select {
		case <-ctx.Done():
			w.stopTimers()
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isVCFPath(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			w.debounceProcess(ctx, event.Name)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Error("watcher error", log.Err(err))
		}
	}
}

func (w *Watcher) processExisting(ctx context.Context) error {
	ents, err := os.ReadDir(w.cfg.InputDir)
	if err != nil {
		return fmt.Errorf("read %s: %w", w.cfg.InputDir, err)
	}
	for _, e := range ents {
		if e.IsDir() || !isVCFPath(e.Name()) {
			continue
		}
		w.process(ctx, filepath.Join(w.cfg.InputDir, e.Name()))
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	return nil
}

// debounceProcess resets the per-file timer so a burst of write events
// triggers a single run once the file has settled.
func (w *Watcher) debounceProcess(ctx context.Context, path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.timers[path]; ok {
		t.Stop()
	}
	w.timers[path] = time.AfterFunc(w.cfg.DebounceDelay, func() {
		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()
		if ctx.Err() != nil {
			return
		}
		w.process(ctx, path)
	})
}

func (w *Watcher) process(ctx context.Context, path string) {
	outDir := filepath.Join(w.cfg.OutputDir, vcfio.BaseName(path))

	e, err := engine.New(engine.Config{
		InputPath:   path,
		OutputDir:   outDir,
		BatchSize:   w.cfg.BatchSize,
		Compression: w.cfg.Compression,
		Logger:      w.log,
	})
	if err != nil {
		w.log.Error("skipping file", log.String("input", path), log.Err(err))
		return
	}
	n, err := e.Run(ctx)
	if err != nil {
		w.log.Error("batching failed", log.String("input", path), log.Err(err))
		return
	}
	w.log.Info("file batched",
		log.String("input", path),
		log.String("output_dir", outDir),
		log.Int("batches", n),
	)
}

func (w *Watcher) stopTimers() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for path, t := range w.timers {
		t.Stop()
		delete(w.timers, path)
	}
}

func isVCFPath(name string) bool {
	return strings.HasSuffix(name, ".vcf") || strings.HasSuffix(name, ".vcf.gz")
}
