package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	vcfbatch "github.com/vcfkit/vcfbatch"
	"github.com/vcfkit/vcfbatch/internal/cliconfig"
	vcflog "github.com/vcfkit/vcfbatch/pkg/log"
)

const helpDescription = `
Split a large VCF file into batches of smaller, independently valid VCF files
so downstream tools can process them in parallel.

Highlights:
  - Reads plain or bgzipped input; compression is detected from the file
    contents, not the extension.
  - Every batch carries the full header block, so each output file is a
    valid VCF on its own.
  - Optional parallel output compression (none, default, fast, best).
  - Watch mode batches every VCF file dropped into a directory.
`

var exampleUsage = strings.TrimSpace(`
  vcfbatch cohort.vcf.gz batches/
  vcfbatch cohort.vcf batches/ --batch-size 10000 --compression-level fast
  vcfbatch --watch incoming/ batches/
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "vcfbatch <input> <output-dir>",
		Short:   "Split large VCF files into batches for parallel processing",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Args:    cobra.ExactArgs(2),
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.InputPath = args[0]
			cfg.OutputDir = args[1]

			// Load config file first (default $HOME/.vcfbatch/config.toml),
			// then environment, then flag overrides.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			var logger vcflog.Logger = vcflog.NewZerologAdapterWithLogger(log)
			if cfg.Quiet {
				logger = vcflog.NewNoopLogger()
			}

			// Stop cleanly on SIGINT/SIGTERM.
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigCh
				log.Info().Msg("received signal, stopping...")
				cancel()
			}()

			if cfg.Watch {
				wcfg := vcfbatch.DefaultWatchConfig()
				wcfg.InputDir = cfg.InputPath
				wcfg.OutputDir = cfg.OutputDir
				wcfg.BatchSize = cfg.BatchSize
				wcfg.Compression = cfg.Compression()
				wcfg.DebounceDelay = cfg.DebounceDelay
				wcfg.Logger = logger

				err := vcfbatch.Watch(ctx, wcfg)
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return err
			}

			var inputSize uint64
			if info, err := os.Stat(cfg.InputPath); err == nil {
				inputSize = uint64(info.Size())
			}

			start := time.Now()
			n, err := vcfbatch.Extract(ctx, vcfbatch.Config{
				InputPath:   cfg.InputPath,
				OutputDir:   cfg.OutputDir,
				BatchSize:   cfg.BatchSize,
				Compression: cfg.Compression(),
				Logger:      logger,
			})
			if err != nil {
				return err
			}

			log.Info().
				Int("batches", n).
				Str("batch_size", humanize.Comma(int64(cfg.BatchSize))).
				Str("input_size", humanize.Bytes(inputSize)).
				Str("elapsed", time.Since(start).Round(time.Millisecond).String()).
				Msg("extracted variants into batches")
			return nil
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.vcfbatch/config.toml)")
	root.Flags().IntVarP(&cfg.BatchSize, "batch-size", "b", cfg.BatchSize, "number of data records per output batch, excluding the header")
	root.Flags().StringVarP(&cfg.CompressionLevel, "compression-level", "c", cfg.CompressionLevel, "output compression level: none, default, fast or best")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "treat <input> as a directory and batch every VCF file that appears in it")
	root.Flags().DurationVar(&cfg.DebounceDelay, "debounce", cfg.DebounceDelay, "watch mode settle delay after the last write to a file")
	root.Flags().BoolVarP(&cfg.Quiet, "quiet", "q", cfg.Quiet, "suppress progress output")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("vcfbatch")
		os.Exit(1)
	}
}
