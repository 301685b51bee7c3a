package pipeline

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/seqlab/fqsum/internal/config"
	"github.com/seqlab/fqsum/internal/stats"
)

// ErrOutputExists is returned by OpenSink when the output path already
// exists and --force was not given. Fatal for the run (exit code 3), and
// raised before any file is processed so the existing file stays untouched.
var ErrOutputExists = errors.New("output file exists (use --force to overwrite)")

// Sink is the single output destination for a run: stdout, or a named file
// owned exclusively by this process for its lifetime. Two simultaneous
// invocations targeting the same path race on the existence check; that is
// an accepted limitation of the single-operator design, not something the
// sink tries to lock against.
type Sink struct {
	w    *bufio.Writer
	file *os.File
	path string
	rows int
}

// OpenSink resolves cfg into a sink. With no -o the sink wraps stdout and
// is never cleaned up; with -o the file must not already exist unless
// --force authorizes overwriting it.
func OpenSink(cfg *config.Config) (*Sink, error) {
	if cfg.OutFile == "" {
		return NewSink(os.Stdout), nil
	}
	if _, err := os.Stat(cfg.OutFile); err == nil && !cfg.Force {
		return nil, ErrOutputExists
	}
	f, err := os.Create(cfg.OutFile)
	if err != nil {
		return nil, err
	}
	return &Sink{w: bufio.NewWriter(f), file: f, path: cfg.OutFile}, nil
}

// NewSink wraps an arbitrary writer, used for stdout and for tests.
func NewSink(w io.Writer) *Sink {
	return &Sink{w: bufio.NewWriter(w)}
}

// WriteHeader emits the header row. Not counted in Rows.
func (s *Sink) WriteHeader() error {
	_, err := s.w.WriteString(stats.Header() + "\n")
	return err
}

// WriteRecord emits one data row and counts it.
func (s *Sink) WriteRecord(r *stats.SummaryRecord) error {
	if _, err := s.w.WriteString(r.Row() + "\n"); err != nil {
		return err
	}
	s.rows++
	return nil
}

// Rows returns the number of data rows successfully written.
func (s *Sink) Rows() int { return s.rows }

// Close flushes and, for file sinks, closes the file.
func (s *Sink) Close() error {
	err := s.w.Flush()
	if s.file != nil {
		if cerr := s.file.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Cleanup deletes a file sink that received zero data rows: an all-failed
// run produced no usable artifact, so none is left behind. Debug-level
// verbosity keeps the file for inspection. Call after Close.
func (s *Sink) Cleanup(verbosity int) error {
	if s.file == nil || s.rows > 0 || verbosity >= config.VerbosityDebug {
		return nil
	}
	return os.Remove(s.path)
}
