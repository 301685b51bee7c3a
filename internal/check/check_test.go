package check

import "testing"

// Canned seqtk usage banner (written to stderr by a bare invocation).
var sampleBanner = []string{
	"",
	"Usage:   seqtk <command> <arguments>",
	"Version: 1.2-r94",
	"",
	"Command: seq       common transformation of FASTA/Q",
	"         fqchk     fastq QC (base/quality summary)",
}

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"standard banner", sampleBanner, "1.2-r94"},
		{"newer release", []string{"", "Usage:   seqtk <command> <arguments>", "Version: 1.4-r122"}, "1.4-r122"},
		{"too few lines", []string{"", "Usage:   seqtk"}, ""},
		{"version line malformed", []string{"", "Usage:", "Ver 1.2"}, ""},
		{"nil lines", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractVersion(tt.lines); got != tt.want {
				t.Errorf("ExtractVersion = %q, want %q", got, tt.want)
			}
		})
	}
}

// Gate is deliberately plain string comparison, legacy behavior included:
// "1.10" sorts below "1.9" even though it is numerically newer.
func TestGate_Lexicographic(t *testing.T) {
	tests := []struct {
		name  string
		found string
		min   string
		want  Status
	}{
		{"exact minimum", "1.2-r94", "1.2-r94", StatusOk},
		{"above minimum", "1.3-r106", "1.2-r94", StatusOk},
		{"below minimum", "1.0-r31", "1.2-r94", StatusTooOld},
		{"lexicographic quirk", "1.10", "1.9", StatusTooOld},
		{"empty found version", "", "1.2-r94", StatusTooOld},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Gate(tt.found, tt.min); got != tt.want {
				t.Errorf("Gate(%q, %q) = %v, want %v", tt.found, tt.min, got, tt.want)
			}
		})
	}
}

func TestStatusString(t *testing.T) {
	if StatusOk.String() != "ok" || StatusTooOld.String() != "too old" || StatusNotFound.String() != "not found" {
		t.Error("Status.String() labels wrong")
	}
}
