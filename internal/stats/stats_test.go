package stats

import (
	"bytes"
	"strings"
	"testing"
)

func TestClampPercent(t *testing.T) {
	cases := map[float64]float64{-5: 0, 0: 0, 42.5: 42.5, 100: 100, 130: 100}
	for in, want := range cases {
		if got := ClampPercent(in); got != want {
			t.Fatalf("ClampPercent(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestSummarize(t *testing.T) {
	summaries := Summarize([]string{"무궁화 삼천리", "ab"})
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0].Runes != 7 || summaries[0].Width != 13 {
		t.Fatalf("unexpected wide line summary: %+v", summaries[0])
	}
	if summaries[1].Index != 1 || summaries[1].Runes != 2 || summaries[1].Width != 2 {
		t.Fatalf("unexpected narrow line summary: %+v", summaries[1])
	}
}

func TestCharFrequency(t *testing.T) {
	counts := CharFrequency([]string{"aba", "c a"})
	want := map[string]int{" ": 1, "a": 3, "b": 1, "c": 1}
	if len(counts) != len(want) {
		t.Fatalf("expected %d entries, got %v", len(want), counts)
	}
	for i, c := range counts {
		if want[c.Char] != c.Count {
			t.Fatalf("char %q: expected %d, got %d", c.Char, want[c.Char], c.Count)
		}
		if i > 0 && counts[i-1].Char >= c.Char {
			t.Fatalf("expected sorted output: %v", counts)
		}
	}
}

func TestRenderScript(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderScript(&buf, []string{"ab", "c"}, 0); err != nil {
		t.Fatalf("render script: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Line Runes Width Text", "   1     2     2 ab", "Lines: 2", "Characters: 3", "Damage per character: 33.333"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderScriptTruncates(t *testing.T) {
	var buf bytes.Buffer
	long := strings.Repeat("x", 100)
	if err := RenderScript(&buf, []string{long}, 40); err != nil {
		t.Fatalf("render script: %v", err)
	}
	if strings.Contains(buf.String(), long) {
		t.Fatalf("expected long line to be truncated")
	}
	if !strings.Contains(buf.String(), "…") {
		t.Fatalf("expected ellipsis in truncated line")
	}
}

func TestRenderScriptEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderScript(&buf, nil, 0); err != nil {
		t.Fatalf("render script: %v", err)
	}
	if !strings.Contains(buf.String(), "Script is empty.") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
