// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation. Option names and exit semantics match the legacy summarizeFastq
// script for parity.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ColorMode controls ANSI color output on the diagnostic stream.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stderr is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Verbosity levels. The default level shows info and warnings; quiet drops
// to VerbosityQuiet where only errors remain; --debug jumps to the
// VerbosityDebug sentinel, which additionally keeps the output file around
// after an all-failed run for inspection.
const (
	VerbosityQuiet   = 0
	VerbosityNormal  = 1
	VerbosityVerbose = 2
	VerbosityDebug   = 100
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it. It is treated as immutable after validation.
type Config struct {
	// Output behavior.
	ColNamesOnly bool   // -c: print the header row and exit.
	Force        bool   // -f: overwrite an existing output file.
	NoHeader     bool   // -n: omit the header row.
	OutFile      string // -o: output path; empty means stdout.

	// Engine selection.
	Builtin bool          // --builtin: in-process statistics instead of seqtk.
	Threads int           // -t: advisory only; processing is sequential.
	Timeout time.Duration // --timeout: bound per-file seqtk invocations (0 = none).

	// Diagnostics.
	Verbosity int       // 0 = errors only; 1 = normal; >=2 = debug detail.
	Quiet     bool      // -q: forces Verbosity to 0.
	Debug     bool      // --debug: forces Verbosity to VerbosityDebug.
	ColorMode ColorMode // --color / --no-color.
	LogFile   string    // --log: append diagnostics to a file.
	CheckOnly bool      // --check: run system diagnostics and exit.

	// Positional args: filenames or glob patterns, in the order given.
	Patterns []string
}

// DefaultConfig returns a Config with all defaults matching the legacy
// script. Used as the base before [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		Threads:   1,
		Verbosity: VerbosityNormal,
		ColorMode: ColorAuto,
	}
}

// Validate checks flag combinations after parsing. Positional input
// arguments are required unless a short-circuit mode (-c, --check) was
// requested. A usage error here means exit code 1.
func (c *Config) Validate() error {
	if c.Threads < 1 {
		return fmt.Errorf("threads must be >= 1 (got %d)", c.Threads)
	}
	if c.Timeout < 0 {
		return errors.New("timeout must not be negative")
	}
	if c.ColNamesOnly || c.CheckOnly {
		return nil
	}
	if len(c.Patterns) == 0 {
		return errors.New("no input files given (fastq filenames or glob patterns required)")
	}
	return nil
}

// ForceIsNoop reports whether -f was given without -o, in which case the
// flag has nothing to act on. Callers warn but do not fail.
func (c *Config) ForceIsNoop() bool {
	return c.Force && c.OutFile == ""
}
