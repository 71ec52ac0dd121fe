// Package script provides the text the player types.
package script

import "strings"

var defaultLines = []string{
	"동해 물과 백두산이 마르고 닳도록",
	"하느님이 보우하사 우리나라 만세",
	"무궁화 삼천리 화려 강산",
	"대한 사람 대한으로 길이 보전하세",
}

// Default returns the built-in script.
func Default() []string {
	return append([]string(nil), defaultLines...)
}

// Clean trims surrounding whitespace from each line and drops lines that
// end up empty.
func Clean(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(strings.TrimPrefix(line, "\ufeff"))
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
