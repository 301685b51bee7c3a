package config

import (
	"testing"
	"time"
)

func TestDefaultConfig_SaneDefaults(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Verbosity != VerbosityNormal {
		t.Errorf("default Verbosity = %d, want %d", cfg.Verbosity, VerbosityNormal)
	}
	if cfg.Threads != 1 {
		t.Errorf("default Threads = %d, want 1", cfg.Threads)
	}
	if cfg.ColorMode != ColorAuto {
		t.Errorf("default ColorMode = %q, want %q", cfg.ColorMode, ColorAuto)
	}
	if cfg.Force || cfg.NoHeader || cfg.ColNamesOnly || cfg.Builtin {
		t.Error("boolean flags should default to false")
	}
	if cfg.Timeout != 0 {
		t.Errorf("default Timeout = %v, want 0", cfg.Timeout)
	}
}

func TestValidate_RequiresPatterns(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should fail with no patterns")
	}

	cfg.Patterns = []string{"sample.fastq"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}

func TestValidate_ShortCircuitModesSkipPatterns(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ColNamesOnly = true
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() should pass with --colNames and no patterns, got: %v", err)
	}

	cfg = DefaultConfig()
	cfg.CheckOnly = true
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() should pass with --check and no patterns, got: %v", err)
	}
}

func TestValidate_Threads(t *testing.T) {
	tests := []struct {
		name    string
		threads int
		wantErr bool
	}{
		{"one is valid", 1, false},
		{"many is valid", 8, false},
		{"zero is invalid", 0, true},
		{"negative is invalid", -2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Patterns = []string{"a.fq"}
			cfg.Threads = tt.threads
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestForceIsNoop(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Force = true
	if !cfg.ForceIsNoop() {
		t.Error("force without outFile should be a no-op")
	}
	cfg.OutFile = "out.tsv"
	if cfg.ForceIsNoop() {
		t.Error("force with outFile is not a no-op")
	}
}

func TestParseFlags_Positionals(t *testing.T) {
	cfg := DefaultConfig()
	err := ParseFlags(&cfg, "test", []string{"-o", "out.tsv", "a.fastq", "b/*.fq.gz"})
	if err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if cfg.OutFile != "out.tsv" {
		t.Errorf("OutFile = %q, want out.tsv", cfg.OutFile)
	}
	want := []string{"a.fastq", "b/*.fq.gz"}
	if len(cfg.Patterns) != len(want) {
		t.Fatalf("Patterns = %v, want %v", cfg.Patterns, want)
	}
	for i := range want {
		if cfg.Patterns[i] != want[i] {
			t.Errorf("Patterns[%d] = %q, want %q", i, cfg.Patterns[i], want[i])
		}
	}
}

func TestParseFlags_VerbosityPrecedence(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"default", []string{"a.fq"}, VerbosityNormal},
		{"single -v", []string{"-v", "a.fq"}, VerbosityNormal + 1},
		{"repeated -v", []string{"-v", "-v", "a.fq"}, VerbosityNormal + 2},
		{"quiet wins over -v", []string{"-v", "-v", "-q", "a.fq"}, VerbosityQuiet},
		{"debug wins over quiet", []string{"-q", "--debug", "a.fq"}, VerbosityDebug},
		{"debug alone", []string{"--debug", "a.fq"}, VerbosityDebug},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			if err := ParseFlags(&cfg, "test", tt.args); err != nil {
				t.Fatalf("ParseFlags: %v", err)
			}
			if cfg.Verbosity != tt.want {
				t.Errorf("Verbosity = %d, want %d", cfg.Verbosity, tt.want)
			}
		})
	}
}

func TestParseFlags_ShortAndLongForms(t *testing.T) {
	cfg := DefaultConfig()
	err := ParseFlags(&cfg, "test", []string{"-c", "--force", "-n", "--threads", "4"})
	if err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if !cfg.ColNamesOnly || !cfg.Force || !cfg.NoHeader {
		t.Errorf("flags not applied: %+v", cfg)
	}
	if cfg.Threads != 4 {
		t.Errorf("Threads = %d, want 4", cfg.Threads)
	}
}

func TestParseFlags_Timeout(t *testing.T) {
	cfg := DefaultConfig()
	if err := ParseFlags(&cfg, "test", []string{"--timeout", "30", "a.fq"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}

	cfg = DefaultConfig()
	if err := ParseFlags(&cfg, "test", []string{"--timeout", "bogus", "a.fq"}); err == nil {
		t.Error("ParseFlags should reject a non-numeric timeout")
	}
}

func TestParseFlags_ColorModes(t *testing.T) {
	cfg := DefaultConfig()
	if err := ParseFlags(&cfg, "test", []string{"--no-color", "a.fq"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if cfg.ColorMode != ColorNever {
		t.Errorf("ColorMode = %q, want %q", cfg.ColorMode, ColorNever)
	}

	cfg = DefaultConfig()
	if err := ParseFlags(&cfg, "test", []string{"--color", "a.fq"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if cfg.ColorMode != ColorAlways {
		t.Errorf("ColorMode = %q, want %q", cfg.ColorMode, ColorAlways)
	}
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	cfg := DefaultConfig()
	if err := ParseFlags(&cfg, "test", []string{"--bogus"}); err == nil {
		t.Error("ParseFlags should reject unknown flags")
	}
}
