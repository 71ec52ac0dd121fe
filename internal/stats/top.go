package stats

import (
	"fmt"
	"io"
	"sort"

	"github.com/verte-zerg/lyricboss/internal/model"
)

// TopChars returns the n most frequent characters.
func TopChars(counts []model.CharCount, n int) []model.CharCount {
	if n <= 0 || len(counts) == 0 {
		return nil
	}
	items := make([]model.CharCount, len(counts))
	copy(items, counts)
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Char < items[j].Char
		}
		return items[i].Count > items[j].Count
	})
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}

// RenderTopChars prints the n most frequent characters with their share
// of the script.
func RenderTopChars(w io.Writer, counts []model.CharCount, n int) error {
	top := TopChars(counts, n)
	if len(top) == 0 {
		return nil
	}
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	if _, err := fmt.Fprintln(w, "Most Frequent Characters"); err != nil {
		return err
	}
	headers := []string{"Char", "Count", "Share"}
	rows := make([][]string, 0, len(top))
	for _, c := range top {
		label := c.Char
		if label == " " {
			label = "<space>"
		}
		rows = append(rows, []string{
			label,
			fmt.Sprintf("%d", c.Count),
			fmt.Sprintf("%.2f%%", float64(c.Count)/float64(total)*100),
		})
	}
	for _, line := range formatTable(headers, rows, map[int]bool{1: true, 2: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
