// Command fqsum is the CLI entrypoint for the fastq summary table
// generator.
//
// It parses flags, validates configuration, and emits one tab-delimited
// summary row per input fastq file, using seqtk fqchk (or the built-in
// engine) to compute the statistics.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/seqlab/fqsum/internal/check"
	"github.com/seqlab/fqsum/internal/config"
	"github.com/seqlab/fqsum/internal/display"
	"github.com/seqlab/fqsum/internal/logging"
	"github.com/seqlab/fqsum/internal/native"
	"github.com/seqlab/fqsum/internal/pipeline"
	"github.com/seqlab/fqsum/internal/seqtk"
	"github.com/seqlab/fqsum/internal/stats"
)

// Exit codes, kept in parity with the legacy script.
const (
	exitOK         = 0 // Success or informational exit (--help, --colNames).
	exitUsage      = 1 // Missing required arguments or bad options.
	exitDepMissing = 2 // seqtk not found.
	exitOutExists  = 3 // Output file exists and --force not given.
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build" these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap — the logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version, os.Args[1:]); err != nil {
		return exitUsage
	}

	// --colNames short-circuits everything else, including the usual
	// requirement for positional arguments.
	if cfg.ColNamesOnly {
		fmt.Fprintln(os.Stdout, stats.Header())
		return exitOK
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "fqsum: %v\n", err)
		fmt.Fprintf(os.Stderr, "fqsum: run with --help for usage\n")
		return exitUsage
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fqsum: %v\n", err)
		return exitUsage
	}
	defer log.Close()

	// Phase 2: Logger available — all output goes through log from here on.
	// The banner is diagnostic output, so quiet mode drops it too.
	if cfg.Verbosity >= config.VerbosityNormal {
		display.PrintBanner()
	}

	if cfg.CheckOnly {
		check.RunCheck(&cfg, log)
		return exitOK
	}

	log.Info("=== fqsum v%s (%s) ===", version, commit)
	if cfg.ForceIsNoop() {
		log.Warn("--force has no effect without --outFile")
	}

	// Phase 3: Output sink — an existing out-file without --force aborts
	// here, before the gate and before any input is touched.
	sink, err := pipeline.OpenSink(&cfg)
	if err != nil {
		log.Error("%s: %v", cfg.OutFile, err)
		if errors.Is(err, pipeline.ErrOutputExists) {
			return exitOutExists
		}
		return exitUsage
	}

	// Phase 4: Dependency gate — a missing seqtk is fatal, an outdated one
	// warns and continues. Skipped for the built-in engine.
	if err := check.CheckDeps(&cfg, log); err != nil {
		log.Error("%v", err)
		sink.Close()
		sink.Cleanup(cfg.Verbosity)
		return exitDepMissing
	}

	var sum pipeline.Summarizer
	if cfg.Builtin {
		log.Debug("using built-in statistics engine")
		sum = &native.Engine{}
	} else {
		sum = &seqtk.Engine{Runner: seqtk.Runner{Timeout: cfg.Timeout}}
	}

	// Phase 5: Signal handling — cancel context on SIGINT/SIGTERM so the
	// pipeline can stop between files.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current file…")
		cancel()
	}()

	// Phase 6: Run the pipeline, then flush and (for an all-failed run)
	// remove the useless out-file. A run that processes zero files still
	// exits 0; the deleted artifact is the signal.
	pipeline.Run(ctx, &cfg, log, sum, sink)

	if err := sink.Close(); err != nil {
		log.Error("Cannot finalize output: %v", err)
	}
	if err := sink.Cleanup(cfg.Verbosity); err != nil {
		log.Warn("Cannot remove empty output file: %v", err)
	}
	return exitOK
}
