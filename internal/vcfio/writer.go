package vcfio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/klauspost/pgzip"

	"github.com/vcfkit/vcfbatch/internal/domain"
)

// compressBlockSize is the unit handed to the parallel gzip workers.
const compressBlockSize = 512 << 10

// Writer persists batches as independently valid VCF files under a single
// output directory. File names derive from the input base name and the batch
// index, so re-running against an empty directory reproduces the same names.
type Writer struct {
	dir  string
	base string
	comp Compression
}

// NewWriter creates the output directory (and parents) if absent and returns
// a writer naming its files after inputPath.
func NewWriter(dir, inputPath string, comp Compression) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", dir, err)
	}
	return &Writer{dir: dir, base: BaseName(inputPath), comp: comp}, nil
}

// BaseName strips the directory and the ".gz" and ".vcf" suffixes from an
// input path, yielding the stem used for batch file names.
func BaseName(inputPath string) string {
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, ".gz")
	base = strings.TrimSuffix(base, ".vcf")
	return base
}

// FileName returns the name of the batch file for the given index.
// Indexes are zero-padded so names sort in batch order.
func (w *Writer) FileName(index int) string {
	name := fmt.Sprintf("%s_%04d.vcf", w.base, index)
	if w.comp != CompressionNone {
		name += ".gz"
	}
	return name
}

// WriteBatch writes the header block followed by the batch's records, each
// line with a single terminator, to a new file. Returns the file name.
func (w *Writer) WriteBatch(b *domain.Batch) (string, error) {
	name := w.FileName(b.Index)
	path := filepath.Join(w.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}

	bw := bufio.NewWriterSize(f, 256*1024)
	var out io.Writer = bw
	var zw *pgzip.Writer
	if w.comp != CompressionNone {
		zw, err = pgzip.NewWriterLevel(bw, w.comp.level())
		if err != nil {
			f.Close()
			return "", fmt.Errorf("gzip writer for %s: %w", path, err)
		}
		// Compress independent blocks in parallel; pgzip assembles the
		// output in input order before it reaches the file.
		if err := zw.SetConcurrency(compressBlockSize, runtime.GOMAXPROCS(0)); err != nil {
			f.Close()
			return "", fmt.Errorf("gzip writer for %s: %w", path, err)
		}
		out = zw
	}

	if err := writeLines(out, b.Header.Lines()); err == nil {
		err = writeLines(out, b.Records)
	}
	if err != nil {
		f.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	if zw != nil {
		if err := zw.Close(); err != nil {
			f.Close()
			return "", fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return name, nil
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
