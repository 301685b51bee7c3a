// Package stats defines the summary record and the parser for the fqchk
// text report.
package stats

import "strings"

// Columns are the 12 output column names in their fixed order.
var Columns = [12]string{
	"Dataset", "Reads", "Bases", "MinLen", "MaxLen", "AvgLen",
	"AvgQ", "AvgA", "AvgC", "AvgG", "AvgT", "AvgN",
}

// SummaryRecord holds one summarized input file. Fields are the raw tokens
// scraped from the tool report: a field whose pattern did not match stays
// empty rather than erroring, and decimal formatting passes through to the
// output exactly as the tool printed it.
type SummaryRecord struct {
	Dataset string // Input path as given on the command line.
	Reads   string
	Bases   string
	MinLen  string
	MaxLen  string
	AvgLen  string
	AvgQ    string
	AvgA    string
	AvgC    string
	AvgG    string
	AvgT    string
	AvgN    string
}

// Header returns the header row: each column name prefixed with '#' and
// tab-terminated. The trailing tab is part of the legacy format.
func Header() string {
	var b strings.Builder
	for _, c := range Columns {
		b.WriteByte('#')
		b.WriteString(c)
		b.WriteByte('\t')
	}
	return b.String()
}

// Row returns the record as a tab-terminated data row in fixed column
// order. As with Header, the trailing tab is kept for compatibility with
// the legacy format.
func (r *SummaryRecord) Row() string {
	fields := []string{
		r.Dataset, r.Reads, r.Bases, r.MinLen, r.MaxLen, r.AvgLen,
		r.AvgQ, r.AvgA, r.AvgC, r.AvgG, r.AvgT, r.AvgN,
	}
	return strings.Join(fields, "\t") + "\t"
}
