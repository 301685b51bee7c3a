package expand

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte{}, 0o644); err != nil {
		t.Fatalf("touch %s: %v", name, err)
	}
}

func TestExpand_GlobMatchesSorted(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "b.fastq")
	touch(t, dir, "a.fastq")
	touch(t, dir, "c.txt")

	got := Expand([]string{filepath.Join(dir, "*.fastq")})
	want := []string{filepath.Join(dir, "a.fastq"), filepath.Join(dir, "b.fastq")}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("candidate %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExpand_LiteralPassesThroughEvenWhenMissing(t *testing.T) {
	got := Expand([]string{"does/not/exist.fastq"})
	if len(got) != 1 || got[0] != "does/not/exist.fastq" {
		t.Errorf("got %v, want the literal preserved", got)
	}
}

func TestExpand_OrderAcrossArgsAndDuplicates(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "x.fq")
	touch(t, dir, "y.fq")

	xPath := filepath.Join(dir, "x.fq")
	got := Expand([]string{xPath, filepath.Join(dir, "*.fq"), xPath})
	want := []string{xPath, xPath, filepath.Join(dir, "y.fq"), xPath}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("candidate %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExpand_NonMatchingGlobContributesNothing(t *testing.T) {
	dir := t.TempDir()
	got := Expand([]string{filepath.Join(dir, "*.fastq")})
	if len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

func TestExpand_EmptyInput(t *testing.T) {
	if got := Expand(nil); len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}
