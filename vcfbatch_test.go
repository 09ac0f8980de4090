package vcfbatch_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	vcfbatch "github.com/vcfkit/vcfbatch"
)

const testVCF = "##fileformat=VCFv4.2\n" +
	"##source=apitest\n" +
	"#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\n" +
	"1\t1000\t.\tA\tG\t100\tPASS\t.\n" +
	"1\t2000\t.\tC\tT\t90\tPASS\t.\n" +
	"1\t3000\t.\tG\tA\t80\tPASS\t.\n"

func TestExtract(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "cohort.vcf")
	if err := os.WriteFile(input, []byte(testVCF), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	cfg := vcfbatch.DefaultConfig()
	cfg.InputPath = input
	cfg.OutputDir = filepath.Join(dir, "out")
	cfg.BatchSize = 2

	n, err := vcfbatch.Extract(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if n != 2 {
		t.Errorf("Extract() = %d batches, want 2", n)
	}
	if _, err := os.Stat(filepath.Join(dir, "out", "cohort_0002.vcf")); err != nil {
		t.Errorf("second batch file missing: %v", err)
	}
}

func TestExtractVariantsToBatches(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "cohort.vcf")
	if err := os.WriteFile(input, []byte(testVCF), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	n, err := vcfbatch.ExtractVariantsToBatches(context.Background(), input, filepath.Join(dir, "out"), 10, vcfbatch.CompressionNone)
	if err != nil {
		t.Fatalf("ExtractVariantsToBatches() error = %v", err)
	}
	if n != 1 {
		t.Errorf("ExtractVariantsToBatches() = %d batches, want 1", n)
	}
}

func TestExtract_ErrorKinds(t *testing.T) {
	dir := t.TempDir()

	_, err := vcfbatch.ExtractVariantsToBatches(context.Background(), filepath.Join(dir, "in.vcf"), dir, 0, vcfbatch.CompressionNone)
	if !errors.Is(err, vcfbatch.ErrConfig) {
		t.Errorf("zero batch size error = %v, want ErrConfig", err)
	}

	input := filepath.Join(dir, "headerless.vcf")
	if err := os.WriteFile(input, []byte("1\t1000\t.\tA\tG\t100\tPASS\t.\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	_, err = vcfbatch.ExtractVariantsToBatches(context.Background(), input, filepath.Join(dir, "out"), 10, vcfbatch.CompressionNone)
	if !errors.Is(err, vcfbatch.ErrFormat) {
		t.Errorf("headerless input error = %v, want ErrFormat", err)
	}
}

func ExampleExtract() {
	dir, err := os.MkdirTemp("", "vcfbatch")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	input := filepath.Join(dir, "cohort.vcf")
	if err := os.WriteFile(input, []byte(testVCF), 0o644); err != nil {
		fmt.Println(err)
		return
	}

	cfg := vcfbatch.DefaultConfig()
	cfg.InputPath = input
	cfg.OutputDir = filepath.Join(dir, "batches")
	cfg.BatchSize = 2

	n, err := vcfbatch.Extract(context.Background(), cfg)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("wrote %d batch files\n", n)
	// Output: wrote 2 batch files
}
