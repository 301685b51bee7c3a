// Package logging provides the leveled, optionally colored diagnostic
// logger. All diagnostics go to stderr: stdout is reserved for the summary
// rows so the tool can be piped or redirected safely.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/seqlab/fqsum/internal/config"
	"github.com/seqlab/fqsum/internal/term"
)

// Logger provides leveled logging gated by the configured verbosity, with
// an optional append-mode file sink. Error output is never suppressed.
type Logger struct {
	mu        sync.Mutex
	verbosity int
	file      *os.File
}

// NewLogger configures colors from cfg and optionally opens cfg.LogFile.
// Call Close() when done if LogFile was set.
func NewLogger(cfg *config.Config) (*Logger, error) {
	term.Configure(cfg.ColorMode)
	l := &Logger{verbosity: cfg.Verbosity}

	if cfg.LogFile != "" {
		dir := filepath.Dir(cfg.LogFile)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
	}
	return l, nil
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// Verbosity returns the level the logger was configured with.
func (l *Logger) Verbosity() int { return l.verbosity }

func (l *Logger) line(level, color, text string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()
	plain := ts + " [" + level + "] " + text + "\n"
	if color != "" {
		_, _ = io.WriteString(os.Stderr, ts+" "+color+"["+level+"]"+term.NC+" "+text+"\n")
	} else {
		_, _ = io.WriteString(os.Stderr, plain)
	}
	if l.file != nil {
		_, _ = io.WriteString(l.file, plain)
	}
}

// Info logs at INFO level (blue); suppressed in quiet mode.
func (l *Logger) Info(format string, args ...interface{}) {
	if l.verbosity < config.VerbosityNormal {
		return
	}
	l.line("INFO", term.Blue, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green); suppressed in quiet mode.
func (l *Logger) Success(format string, args ...interface{}) {
	if l.verbosity < config.VerbosityNormal {
		return
	}
	l.line("SUCCESS", term.Green, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow); suppressed in quiet mode. Per-file skip
// conditions are reported here, so quiet runs show only fatal errors.
func (l *Logger) Warn(format string, args ...interface{}) {
	if l.verbosity < config.VerbosityNormal {
		return
	}
	l.line("WARN", term.Yellow, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red). Never suppressed.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", term.Red, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) when verbosity is raised above normal.
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.verbosity < config.VerbosityVerbose {
		return
	}
	l.line("DEBUG", term.Cyan, fmt.Sprintf(format, args...))
}
