// Package pipeline orchestrates input expansion, per-file summarization,
// and row emission into the output sink.
package pipeline

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/seqlab/fqsum/internal/config"
	"github.com/seqlab/fqsum/internal/display"
	"github.com/seqlab/fqsum/internal/expand"
	"github.com/seqlab/fqsum/internal/logging"
	"github.com/seqlab/fqsum/internal/stats"
)

// Summarizer produces the record for one input file. Two implementations
// exist: the seqtk-backed engine and the in-process native engine.
type Summarizer interface {
	Summarize(ctx context.Context, path string) (*stats.SummaryRecord, error)
}

// Run is the top-level batch entry point. It writes the header (unless
// suppressed), expands the input patterns, and summarizes each candidate
// in order. Per-file failures are isolated: an unreadable or malformed
// input is warned about and skipped without affecting its siblings.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, sum Summarizer, sink *Sink) RunStats {
	var rs RunStats
	start := time.Now()

	// The header is written even when no pattern matches anything, so a
	// header-only table is a valid (if empty) result.
	if !cfg.NoHeader {
		if err := sink.WriteHeader(); err != nil {
			log.Error("Cannot write header: %v", err)
			return rs
		}
	}

	candidates := expand.Expand(cfg.Patterns)
	rs.Found = len(candidates)
	log.Info("Found %d files", rs.Found)
	if cfg.Threads > 1 {
		log.Debug("threads=%d is advisory; files are processed sequentially", cfg.Threads)
	}

	for _, path := range candidates {
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}
		if processFile(ctx, cfg, log, sum, sink, path) {
			rs.Processed++
		} else {
			rs.Skipped++
		}
	}

	log.Info("Processed %d of %d files in %s",
		rs.Processed, rs.Found, display.FormatElapsed(time.Since(start)))
	return rs
}

// processFile summarizes one candidate and reports whether a row was
// emitted. All skip paths warn; only a sink write failure is logged as an
// error (the destination is gone, but remaining files still warn normally
// so the operator sees the full picture).
func processFile(ctx context.Context, cfg *config.Config, log *logging.Logger, sum Summarizer, sink *Sink, path string) bool {
	// Readability pre-check. The engine would also fail, but an early open
	// gives a uniform message for missing and permission-denied files.
	f, err := os.Open(path)
	if err != nil {
		log.Warn("Cannot read %s, skipping", path)
		return false
	}
	if fi, err := f.Stat(); err == nil {
		log.Debug("  %s (%s)", path, display.FormatBytes(fi.Size()))
	}
	f.Close()

	rec, err := sum.Summarize(ctx, path)
	if err != nil {
		if errors.Is(err, stats.ErrBadFormat) {
			log.Warn("%s is not in the expected format, skipping", path)
		} else {
			log.Warn("Cannot summarize %s, skipping: %v", path, err)
		}
		return false
	}

	if err := sink.WriteRecord(rec); err != nil {
		log.Error("Cannot write row for %s: %v", path, err)
		return false
	}
	return true
}
