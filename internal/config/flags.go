package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into output, engine, display, and utility.
// Override flags (-q, --debug, --color/--no-color) are applied after Parse
// so Config defaults hold unless set, and so their precedence is explicit.

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

// ParseFlags parses args (os.Args[1:] in production) into cfg. On --help or
// --version it prints and exits. On error it returns non-nil (e.g. unknown
// flag or a malformed value).
func ParseFlags(cfg *Config, version string, args []string) error {
	fs := flag.NewFlagSet("fqsum", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs, version) }

	var over overrideFlags
	var verbose verboseCount

	defineOutputFlags(fs, cfg)
	defineEngineFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &over, &verbose)
	defineUtilityFlags(fs, cfg, &over)

	if err := fs.Parse(args); err != nil {
		return err
	}

	applyOverrideFlags(cfg, &over, verbose)

	if over.showHelp {
		printUsage(fs, version)
		os.Exit(0)
	}
	if over.showVersion {
		fmt.Fprintln(os.Stdout, "fqsum v"+version)
		os.Exit(0)
	}

	cfg.Patterns = fs.Args()
	return nil
}

// overrideFlags holds boolean flags that are applied after Parse.
// These either override the verbosity (quiet, debug), set the color mode,
// or trigger exit (showHelp, showVersion).
type overrideFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// verboseCount implements flag.Value as a repeatable counter so that
// "-v -v" raises the verbosity by two.
type verboseCount int

func (v *verboseCount) String() string { return strconv.Itoa(int(*v)) }

func (v *verboseCount) Set(string) error {
	*v++
	return nil
}

func (v *verboseCount) IsBoolFlag() bool { return true }

// defineOutputFlags registers -c/--colNames, -f/--force, -n/--noHeader, -o/--outFile.
func defineOutputFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.ColNamesOnly, "colNames", false, "Print the header row and exit")
	fs.BoolVar(&cfg.ColNamesOnly, "c", false, "Same as --colNames")
	fs.BoolVar(&cfg.Force, "force", false, "Overwrite an existing output file")
	fs.BoolVar(&cfg.Force, "f", false, "Same as --force")
	fs.BoolVar(&cfg.NoHeader, "noHeader", false, "Omit the header row")
	fs.BoolVar(&cfg.NoHeader, "n", false, "Same as --noHeader")
	fs.StringVar(&cfg.OutFile, "outFile", "", "Write rows to a file instead of stdout")
	fs.StringVar(&cfg.OutFile, "o", "", "Same as --outFile")
}

// defineEngineFlags registers -t/--threads, --builtin, --timeout.
func defineEngineFlags(fs *flag.FlagSet, cfg *Config) {
	fs.IntVar(&cfg.Threads, "threads", cfg.Threads, "Thread count (advisory; processing is sequential)")
	fs.IntVar(&cfg.Threads, "t", cfg.Threads, "Same as --threads")
	fs.BoolVar(&cfg.Builtin, "builtin", false, "Compute statistics in-process instead of running seqtk")
	fs.Var(&timeoutValue{&cfg.Timeout}, "timeout", "Per-file seqtk timeout in seconds (0 = none)")
}

// defineDisplayFlags registers -v/--verbose, -q/--quiet, --debug, color and log flags.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, o *overrideFlags, v *verboseCount) {
	fs.Var(v, "verbose", "Increase verbosity (repeatable)")
	fs.Var(v, "v", "Same as --verbose")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Errors only (overrides --verbose)")
	fs.BoolVar(&cfg.Quiet, "q", false, "Same as --quiet")
	fs.BoolVar(&cfg.Debug, "debug", false, "Maximum verbosity; keep output file after an all-failed run")
	fs.BoolVar(&o.forceColor, "color", false, "Force colored diagnostics")
	fs.BoolVar(&o.noColor, "no-color", false, "Disable colored diagnostics")
	fs.StringVar(&cfg.LogFile, "log", "", "Append diagnostics to file")
}

// defineUtilityFlags registers --check, --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, cfg *Config, o *overrideFlags) {
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run system diagnostics and exit")
	fs.BoolVar(&o.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&o.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&o.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&o.showHelp, "h", false, "Same as --help")
}

// applyOverrideFlags resolves verbosity precedence (debug > quiet > -v) and
// the color mode into cfg.
func applyOverrideFlags(cfg *Config, o *overrideFlags, verbose verboseCount) {
	cfg.Verbosity = VerbosityNormal + int(verbose)
	if cfg.Quiet {
		cfg.Verbosity = VerbosityQuiet
	}
	if cfg.Debug {
		cfg.Verbosity = VerbosityDebug
	}
	if o.noColor {
		cfg.ColorMode = ColorNever
	} else if o.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// timeoutValue adapts a time.Duration field to a whole-seconds CLI flag.
type timeoutValue struct{ p *time.Duration }

func (t *timeoutValue) String() string {
	if t.p == nil {
		return "0"
	}
	return strconv.Itoa(int(t.p.Seconds()))
}

func (t *timeoutValue) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fmt.Errorf("invalid timeout %q (use whole seconds)", s)
	}
	*t.p = time.Duration(n) * time.Second
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet, version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "fqsum v" + version + " — fastq summary table generator"},
		{"", ""},
		{"  fqsum [OPTIONS] <fastq|glob>...", ""},
		{"", ""},
		{"Output", ""},
		{"  -c, --colNames", "Print the header row and exit"},
		{"  -n, --noHeader", "Omit the header row"},
		{"  -o, --outFile <path>", "Write rows to a file instead of stdout"},
		{"  -f, --force", "Overwrite an existing output file"},
		{"", ""},
		{"Engine", ""},
		{"  -t, --threads <int>", "Thread count (advisory; processing is sequential)"},
		{"  --builtin", "Compute statistics in-process instead of running seqtk"},
		{"  --timeout <seconds>", "Bound each seqtk invocation (default: none)"},
		{"", ""},
		{"Display", ""},
		{"  -v, --verbose", "Increase verbosity (repeatable)"},
		{"  -q, --quiet", "Errors only"},
		{"  --debug", "Maximum verbosity; keep output file after an all-failed run"},
		{"  --color", "Force colored diagnostics"},
		{"  --no-color", "Disable colored diagnostics"},
		{"", ""},
		{"Utility", ""},
		{"  --log <path>", "Append diagnostics to file"},
		{"  --check", "System diagnostics (seqtk presence and version)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
		{"", ""},
		{"Examples", ""},
		{"  fqsum sample.fastq", ""},
		{"  fqsum -o summary.tsv 'run1/*.fastq.gz' 'run2/*.fastq.gz'", ""},
		{"  fqsum -n --builtin reads.fq.gz >> summary.tsv", ""},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
