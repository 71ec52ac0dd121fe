package script

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultReturnsCopy(t *testing.T) {
	lines := Default()
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	lines[0] = ""
	if Default()[0] == "" {
		t.Fatalf("expected default script to be immutable")
	}
}

func TestClean(t *testing.T) {
	in := []string{"\ufeff first ", "", "   ", "\tsecond\r", "third"}
	got := Clean(in)
	want := []string{"first", "second", "third"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lyrics.txt")
	if err := os.WriteFile(path, []byte("무궁화 삼천리\r\n\n화려 강산\n"), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	lines, err := Load(path)
	if err != nil {
		t.Fatalf("load script: %v", err)
	}
	if len(lines) != 2 || lines[0] != "무궁화 삼천리" || lines[1] != "화려 강산" {
		t.Fatalf("unexpected lines: %q", lines)
	}
}

func TestLoadEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("\n  \n"), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for empty script")
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("expected error for missing script")
	}
}
