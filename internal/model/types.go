// Package model defines shared data structures.
package model

import "github.com/verte-zerg/lyricboss/internal/session"

// Config defines resolved game settings.
type Config struct {
	ScriptPath   string
	Title        string
	Ignore       []string
	IgnoreRanges []string
	Messages     session.Messages
	LogLevel     string
	LogFile      string
}

// LineSummary describes one script line for reporting.
type LineSummary struct {
	Index int
	Text  string
	Runes int
	Width int
}

// CharCount is how often a character occurs in a script.
type CharCount struct {
	Char  string
	Count int
}
