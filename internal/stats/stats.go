// Package stats contains script statistics and plain-text reporting.
package stats

import (
	"fmt"
	"io"
	"sort"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/lyricboss/internal/model"
	"github.com/verte-zerg/lyricboss/internal/session"
)

const minTextWidth = 8

// ClampPercent limits v to [0, 100].
func ClampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Summarize describes every script line.
func Summarize(lines []string) []model.LineSummary {
	out := make([]model.LineSummary, 0, len(lines))
	for i, line := range lines {
		out = append(out, model.LineSummary{
			Index: i,
			Text:  line,
			Runes: len([]rune(line)),
			Width: runewidth.StringWidth(line),
		})
	}
	return out
}

// CharFrequency counts every rune of the script, spaces included.
func CharFrequency(lines []string) []model.CharCount {
	counts := map[rune]int{}
	for _, line := range lines {
		for _, r := range line {
			counts[r]++
		}
	}
	out := make([]model.CharCount, 0, len(counts))
	for r, n := range counts {
		out = append(out, model.CharCount{Char: string(r), Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Char < out[j].Char
	})
	return out
}

// RenderScript prints the script as a table followed by totals. When
// maxWidth is positive the text column is truncated to fit.
func RenderScript(w io.Writer, lines []string, maxWidth int) error {
	if len(lines) == 0 {
		_, err := fmt.Fprintln(w, "Script is empty.")
		return err
	}
	summaries := Summarize(lines)
	headers := []string{"Line", "Runes", "Width", "Text"}
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			fmt.Sprintf("%d", s.Index+1),
			fmt.Sprintf("%d", s.Runes),
			fmt.Sprintf("%d", s.Width),
			s.Text,
		})
	}
	if maxWidth > 0 {
		textWidth := maxWidth - fixedColumnsWidth(headers[:3], rows)
		if textWidth < minTextWidth {
			textWidth = minTextWidth
		}
		for _, row := range rows {
			row[3] = runewidth.Truncate(row[3], textWidth, "…")
		}
	}
	rightAlign := map[int]bool{0: true, 1: true, 2: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	s := session.New(lines)
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Lines: %d\n", len(lines)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Characters: %d\n", s.Total()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Damage per character: %.3f\n", s.Damage()); err != nil {
		return err
	}
	return nil
}

// fixedColumnsWidth returns the width taken by the leading columns plus
// their separators.
func fixedColumnsWidth(headers []string, rows [][]string) int {
	total := 0
	for i, header := range headers {
		width := displayWidth(header)
		for _, row := range rows {
			if w := displayWidth(row[i]); w > width {
				width = w
			}
		}
		total += width + 1
	}
	return total
}
