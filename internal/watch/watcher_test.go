package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vcfkit/vcfbatch/internal/domain"
)

const watchVCF = "##fileformat=VCFv4.2\n" +
	"#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\n" +
	"1\t1000\t.\tA\tG\t100\tPASS\t.\n" +
	"1\t2000\t.\tC\tT\t90\tPASS\t.\n" +
	"1\t3000\t.\tG\tA\t80\tPASS\t.\n"

func waitForFile(t *testing.T, path string, timeout time.Duration) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if _, err := os.Stat(path); err == nil {
			return true
		}
		time.Sleep(20 * time.Millisecond)
	}
	return false
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid",
			config: Config{
				InputDir:  "/tmp/in",
				OutputDir: "/tmp/out",
				BatchSize: 10,
			},
			wantErr: false,
		},
		{
			name:    "missing input dir",
			config:  Config{OutputDir: "/tmp/out", BatchSize: 10},
			wantErr: true,
		},
		{
			name:    "missing output dir",
			config:  Config{InputDir: "/tmp/in", BatchSize: 10},
			wantErr: true,
		},
		{
			name:    "zero batch size",
			config:  Config{InputDir: "/tmp/in", OutputDir: "/tmp/out"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, domain.ErrConfig) {
				t.Errorf("error = %v, want ErrConfig", err)
			}
		})
	}
}

func TestWatcher_ProcessesExistingFiles(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(inDir, "cohort.vcf"), []byte(watchVCF), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	cfg := DefaultConfig()
	cfg.InputDir = inDir
	cfg.OutputDir = outDir
	cfg.BatchSize = 2
	w, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	if !waitForFile(t, filepath.Join(outDir, "cohort", "cohort_0002.vcf"), 5*time.Second) {
		t.Error("batch files not produced for pre-existing input")
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run() error = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestWatcher_ProcessesNewFile(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()

	cfg := DefaultConfig()
	cfg.InputDir = inDir
	cfg.OutputDir = outDir
	cfg.BatchSize = 2
	cfg.DebounceDelay = 50 * time.Millisecond
	w, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to register before dropping the file.
	time.Sleep(200 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(inDir, "dropped.vcf"), []byte(watchVCF), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	if !waitForFile(t, filepath.Join(outDir, "dropped", "dropped_0001.vcf"), 5*time.Second) {
		t.Error("batch files not produced for dropped input")
	}

	// Non-VCF files are ignored.
	if err := os.WriteFile(filepath.Join(inDir, "notes.txt"), []byte("ignore me"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	time.Sleep(300 * time.Millisecond)
	if _, err := os.Stat(filepath.Join(outDir, "notes")); !errors.Is(err, os.ErrNotExist) {
		t.Error("non-VCF file was processed")
	}

	cancel()
	<-done
}
