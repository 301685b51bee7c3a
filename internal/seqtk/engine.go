package seqtk

import (
	"context"

	"github.com/seqlab/fqsum/internal/stats"
)

// Engine summarizes files by shelling out to seqtk fqchk and parsing the
// report. It satisfies the pipeline's Summarizer interface.
type Engine struct {
	Runner Runner
}

// Summarize runs fqchk against path and parses the captured report into a
// record. A report without the expected structure surfaces as
// stats.ErrBadFormat, which the pipeline treats as a per-file skip.
func (e *Engine) Summarize(ctx context.Context, path string) (*stats.SummaryRecord, error) {
	lines, err := e.Runner.Fqchk(ctx, path)
	if err != nil {
		return nil, err
	}
	return stats.ParseReport(path, lines)
}
