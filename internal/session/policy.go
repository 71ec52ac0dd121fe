package session

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// RuneRange is an inclusive, named range of code points.
type RuneRange struct {
	Name string
	Lo   rune
	Hi   rune
}

// Contains reports whether r lies within the range.
func (rr RuneRange) Contains(r rune) bool {
	return r >= rr.Lo && r <= rr.Hi
}

func (rr RuneRange) String() string {
	if rr.Name == "" {
		return fmt.Sprintf("U+%04X-U+%04X", rr.Lo, rr.Hi)
	}
	return fmt.Sprintf("%s (U+%04X-U+%04X)", rr.Name, rr.Lo, rr.Hi)
}

// Code points that input methods emit while a syllable is still being
// composed. They never appear as finished text input.
var (
	HangulJamo              = RuneRange{Name: "Hangul Jamo", Lo: 0x1100, Hi: 0x11FF}
	HangulCompatibilityJamo = RuneRange{Name: "Hangul Compatibility Jamo", Lo: 0x3130, Hi: 0x318F}
	HangulJamoExtendedA     = RuneRange{Name: "Hangul Jamo Extended-A", Lo: 0xA960, Hi: 0xA97F}
	HangulJamoExtendedB     = RuneRange{Name: "Hangul Jamo Extended-B", Lo: 0xD7B0, Hi: 0xD7FF}
)

var presets = map[string][]RuneRange{
	"hangul": {HangulJamo, HangulCompatibilityJamo, HangulJamoExtendedA, HangulJamoExtendedB},
}

// PresetNames lists the named range sets accepted by Preset.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns a named set of composition ranges.
func Preset(name string) ([]RuneRange, bool) {
	ranges, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, false
	}
	return append([]RuneRange(nil), ranges...), true
}

// IgnorePolicy decides which runes are dropped before they are compared
// with the script. The zero value ignores nothing.
type IgnorePolicy struct {
	ranges []RuneRange
}

// NewIgnorePolicy builds a policy over the given ranges.
func NewIgnorePolicy(ranges ...RuneRange) IgnorePolicy {
	return IgnorePolicy{ranges: append([]RuneRange(nil), ranges...)}
}

// DefaultIgnorePolicy drops Hangul composition fragments.
func DefaultIgnorePolicy() IgnorePolicy {
	ranges, _ := Preset("hangul")
	return NewIgnorePolicy(ranges...)
}

// Ignores reports whether r falls in any ignored range.
func (p IgnorePolicy) Ignores(r rune) bool {
	for _, rr := range p.ranges {
		if rr.Contains(r) {
			return true
		}
	}
	return false
}

// Ranges returns the ranges the policy ignores.
func (p IgnorePolicy) Ranges() []RuneRange {
	return append([]RuneRange(nil), p.ranges...)
}

// ParseRuneRange parses "U+3040-U+309F", "3040..309F" or a single code
// point such as "U+3164".
func ParseRuneRange(s string) (RuneRange, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return RuneRange{}, fmt.Errorf("empty rune range")
	}
	var loStr, hiStr string
	switch {
	case strings.Contains(raw, ".."):
		loStr, hiStr, _ = strings.Cut(raw, "..")
	case strings.Contains(raw, "-"):
		loStr, hiStr, _ = strings.Cut(raw, "-")
	default:
		loStr, hiStr = raw, raw
	}
	lo, err := parseCodePoint(loStr)
	if err != nil {
		return RuneRange{}, fmt.Errorf("invalid rune range %q: %w", s, err)
	}
	hi, err := parseCodePoint(hiStr)
	if err != nil {
		return RuneRange{}, fmt.Errorf("invalid rune range %q: %w", s, err)
	}
	if lo > hi {
		return RuneRange{}, fmt.Errorf("invalid rune range %q: start is after end", s)
	}
	return RuneRange{Lo: lo, Hi: hi}, nil
}

func parseCodePoint(s string) (rune, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "U+"), "u+")
	if s == "" {
		return 0, fmt.Errorf("missing code point")
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, err
	}
	if v > utf8.MaxRune {
		return 0, fmt.Errorf("code point %X out of range", v)
	}
	return rune(v), nil
}
