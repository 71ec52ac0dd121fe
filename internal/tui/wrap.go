package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type runeState int

const (
	runePending runeState = iota
	runeTyped
	runeCursor
	runeCursorWrong
)

type styledRune struct {
	s       string
	state   runeState
	width   int
	isSpace bool
}

// buildStyledRunes styles one script line: typed runes, the cursor rune
// (flagged after a wrong key) and the runes still to type.
func buildStyledRunes(line []rune, typed int, wrong bool) []styledRune {
	out := make([]styledRune, 0, len(line))
	for i, r := range line {
		state := runePending
		switch {
		case i < typed:
			state = runeTyped
		case i == typed && wrong:
			state = runeCursorWrong
		case i == typed:
			state = runeCursor
		}
		out = append(out, styledRune{
			s:       styleFor(state).Render(string(r)),
			state:   state,
			width:   runewidth.RuneWidth(r),
			isSpace: r == ' ',
		})
	}
	return out
}

func styleFor(state runeState) lipgloss.Style {
	switch state {
	case runeTyped:
		return typedStyle
	case runeCursor:
		return cursorStyle
	case runeCursorWrong:
		return wrongCursorStyle
	default:
		return pendingStyle
	}
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapStyledRunes breaks the line at spaces so no row exceeds width
// display columns. Words wider than width are split.
func wrapStyledRunes(runes []styledRune, width int) []string {
	if width <= 0 {
		return []string{renderStyledRunes(runes)}
	}
	var rows []string
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				rows = append(rows, renderStyledRunes(line[:lastSpaceIdx+1]))
				line = append([]styledRune{}, line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				rows = append(rows, renderStyledRunes(line))
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	rows = append(rows, renderStyledRunes(line))
	return rows
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
