package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/lyricboss/internal/model"
)

func TestTopChars(t *testing.T) {
	counts := []model.CharCount{
		{Char: "b", Count: 4},
		{Char: "a", Count: 4},
		{Char: "c", Count: 1},
	}
	top := TopChars(counts, 2)
	if len(top) != 2 {
		t.Fatalf("expected 2 chars, got %d", len(top))
	}
	if top[0].Char != "a" || top[1].Char != "b" {
		t.Fatalf("unexpected order: %v", top)
	}
	if counts[0].Char != "b" {
		t.Fatalf("expected input to be left untouched")
	}
	if TopChars(counts, 0) != nil {
		t.Fatalf("expected nil for n=0")
	}
}

func TestRenderTopChars(t *testing.T) {
	var buf bytes.Buffer
	counts := CharFrequency([]string{"a a", "b"})
	if err := RenderTopChars(&buf, counts, 2); err != nil {
		t.Fatalf("render top chars: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Most Frequent Characters", "<space>", "a", "50.00%", "25.00%"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}
