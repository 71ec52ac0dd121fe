package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"":       zerolog.InfoLevel,
		"debug":  zerolog.DebugLevel,
		" WARN ": zerolog.WarnLevel,
		"error":  zerolog.ErrorLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("%q: expected %v, got %v", in, want, got)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "lyricboss.log")
	logger, closer, err := New("debug", path)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Debug().Str("outcome", "correct").Msg("submit")
	if err := closer.Close(); err != nil {
		t.Fatalf("close log: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"outcome":"correct"`) {
		t.Fatalf("expected structured field in log, got %s", data)
	}
}

func TestNewStderrRaisesLevel(t *testing.T) {
	logger, closer, err := New("debug", "")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	defer closer.Close()
	if logger.GetLevel() != zerolog.WarnLevel {
		t.Fatalf("expected warn level on stderr, got %v", logger.GetLevel())
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	if _, _, err := New("loud", ""); err == nil {
		t.Fatalf("expected error for bad level")
	}
}
