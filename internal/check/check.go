// Package check provides the external tool gate and the --check system
// diagnostics mode. The gate verifies that seqtk is present and at or above
// the minimum version before any file is processed.
package check

import (
	"errors"
	"os/exec"
	"regexp"
	"strings"

	"github.com/seqlab/fqsum/internal/config"
)

// MinVersion is the oldest seqtk release whose fqchk report layout the
// parser understands.
const MinVersion = "1.2-r94"

// versionLine is the banner line index holding "Version: <token>".
// The seqtk usage banner starts with a blank line, then "Usage:", then
// "Version:".
const versionLine = 2

// ErrToolNotFound is returned by CheckDeps when seqtk produces no output at
// all. This is fatal for the run (exit code 2).
var ErrToolNotFound = errors.New("seqtk not found on PATH")

// Status is the outcome of the dependency gate.
type Status int

const (
	StatusNotFound Status = iota // No banner output; tool absent or broken.
	StatusOk                     // Version at or above MinVersion.
	StatusTooOld                 // Version below MinVersion; warn but continue.
)

func (s Status) String() string {
	switch s {
	case StatusOk:
		return "ok"
	case StatusTooOld:
		return "too old"
	default:
		return "not found"
	}
}

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

var reVersion = regexp.MustCompile(`^Version:\s*(\S+)`)

// CheckTool runs the tool's self-report (bare "seqtk" prints a usage banner
// to stderr) and gates on the version found in the banner. The comparison
// is plain lexicographic string order, matching the legacy script; note
// that under this ordering "1.10" sorts below "1.9". Changing this to a
// numeric comparison would change gating behavior, so it stays.
func CheckTool(minVersion string) (Status, string) {
	out, _ := exec.Command("seqtk").CombinedOutput()
	if len(strings.TrimSpace(string(out))) == 0 {
		return StatusNotFound, ""
	}
	version := ExtractVersion(strings.Split(string(out), "\n"))
	return Gate(version, minVersion), version
}

// Gate compares a found version against the minimum using plain string
// order. An empty found version (banner present but unparseable) sorts
// below any minimum and reports too old.
func Gate(found, minVersion string) Status {
	if found >= minVersion {
		return StatusOk
	}
	return StatusTooOld
}

// ExtractVersion pulls the version token from the fixed banner line.
// Returns "" when the line is absent or does not match, which a caller's
// lexicographic comparison then reports as too old.
func ExtractVersion(lines []string) string {
	if len(lines) <= versionLine {
		return ""
	}
	m := reVersion.FindStringSubmatch(strings.TrimSpace(lines[versionLine]))
	if m == nil {
		return ""
	}
	return m[1]
}

// CheckDeps is the pre-pipeline gate. A missing tool is fatal; an outdated
// tool is a warning only, since older fqchk reports usually still parse.
// The gate is skipped entirely when the built-in engine is selected.
func CheckDeps(cfg *config.Config, log Logger) error {
	if cfg.Builtin {
		return nil
	}
	status, version := CheckTool(MinVersion)
	switch status {
	case StatusNotFound:
		return ErrToolNotFound
	case StatusTooOld:
		log.Warn("seqtk %s is older than %s; fqchk output may not parse", version, MinVersion)
	}
	return nil
}

// RunCheck runs the interactive --check flow: reports whether seqtk is on
// PATH, its banner version, and the gate verdict. Informational only; it
// does not stop on failure.
func RunCheck(cfg *config.Config, log Logger) {
	log.Info("=== System Check ===")

	if _, err := exec.LookPath("seqtk"); err != nil {
		log.Error("seqtk not found on PATH")
		log.Info("The --builtin engine computes statistics in-process and needs no external tool")
		return
	}

	status, version := CheckTool(MinVersion)
	switch status {
	case StatusOk:
		log.Success("seqtk %s (minimum %s)", version, MinVersion)
	case StatusTooOld:
		log.Warn("seqtk %s is older than minimum %s", version, MinVersion)
	default:
		log.Error("seqtk produced no banner output")
	}
}
