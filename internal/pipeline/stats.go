package pipeline

// RunStats tracks the observable counters for a batch run: candidates
// found, rows emitted, and files skipped.
type RunStats struct {
	Found     int
	Processed int
	Skipped   int
}
