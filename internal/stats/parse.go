package stats

import (
	"errors"
	"regexp"
	"strings"
)

// ErrBadFormat is returned by ParseReport when the tool output does not
// have the expected four-line structure. Callers warn and skip the file.
var ErrBadFormat = errors.New("output not in expected fqchk format")

// Pre-compiled regexes for the fixed-position fields of an fqchk report.
//
// Line 0:  min_len: 35; max_len: 301; avg_len: 298.40; ...
// Line 2:  ALL  <bases>  <%A>  <%C>  <%G>  <%T>  <%N>  <avgQ>  ...
// Line 3:  1    <reads>  ...
var (
	reMinLen = regexp.MustCompile(`min_len:\s*(\d+)`)
	reMaxLen = regexp.MustCompile(`max_len:\s*(\d+)`)
	reAvgLen = regexp.MustCompile(`avg_len:\s*([\d.]+)`)

	reAllRow = regexp.MustCompile(`^ALL\s+(\d+)\s+([\d.]+)\s+([\d.]+)\s+([\d.]+)\s+([\d.]+)\s+([\d.]+)\s+([\d.]+)`)
	rePosOne = regexp.MustCompile(`^1\s+(\d+)`)
)

// ParseReport builds a SummaryRecord for dataset from the first four lines
// of an fqchk report. The structural check is the only hard failure: fewer
// than four lines, or a blank fourth line, yields ErrBadFormat. Once the
// structure holds, individual fields that fail to match are simply left
// empty; the tool is trusted to print well-formed numbers when its layout
// is intact.
func ParseReport(dataset string, lines []string) (*SummaryRecord, error) {
	if len(lines) < 4 || strings.TrimSpace(lines[3]) == "" {
		return nil, ErrBadFormat
	}

	r := &SummaryRecord{Dataset: dataset}

	if m := reMinLen.FindStringSubmatch(lines[0]); m != nil {
		r.MinLen = m[1]
	}
	if m := reMaxLen.FindStringSubmatch(lines[0]); m != nil {
		r.MaxLen = m[1]
	}
	if m := reAvgLen.FindStringSubmatch(lines[0]); m != nil {
		r.AvgLen = m[1]
	}

	if m := reAllRow.FindStringSubmatch(lines[2]); m != nil {
		r.Bases = m[1]
		r.AvgA = m[2]
		r.AvgC = m[3]
		r.AvgG = m[4]
		r.AvgT = m[5]
		r.AvgN = m[6]
		r.AvgQ = m[7]
	}

	if m := rePosOne.FindStringSubmatch(lines[3]); m != nil {
		r.Reads = m[1]
	}

	return r, nil
}
