// Package seqtk wraps invocation of the external seqtk binary. Parsing of
// the fqchk report lives in the stats package so it can be tested against
// canned fixtures without a real binary.
package seqtk

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// reportLines is how much of the fqchk report the summarizer consumes:
// the length header, the column header, the ALL aggregate row, and the
// first per-position row (the legacy "| head -4").
const reportLines = 4

// Runner invokes seqtk fqchk against single files, optionally bounding
// each invocation with a timeout.
type Runner struct {
	// Timeout bounds one fqchk invocation; zero means no bound, matching
	// the legacy behavior where a hung tool hangs the run.
	Timeout time.Duration
}

// Fqchk runs "seqtk fqchk <path>" and returns up to the first four stdout
// lines. A nonzero exit status with output present is not an error: the
// structural check on the report is the arbiter of whether the file was
// summarizable, matching the legacy backtick-capture semantics. Context
// cancellation (or the timeout) is an error.
func (r *Runner) Fqchk(ctx context.Context, path string) ([]string, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "seqtk", "fqchk", path)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = nil

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("seqtk fqchk %q: %w", path, ctxErr)
	}
	if err != nil && stdout.Len() == 0 {
		return nil, fmt.Errorf("seqtk fqchk %q: %w", path, err)
	}

	lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
	if len(lines) > reportLines {
		lines = lines[:reportLines]
	}
	return lines, nil
}
