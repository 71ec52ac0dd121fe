// Package session implements the typing state machine behind the boss fight.
package session

import "unicode"

const fullHealth = 100.0

// Session tracks progress through a fixed script. It is not safe for
// concurrent use; the event loop that feeds it input owns it.
type Session struct {
	lines    []string
	runes    []rune
	meta     []position
	total    int
	damage   float64
	health   float64
	cursor   int
	awaiting bool
	message  string

	policy   IgnorePolicy
	messages Messages
}

type position struct {
	line int
	pos  int
}

// Option customizes a Session at construction.
type Option func(*Session)

// WithIgnorePolicy replaces the default composition filter.
func WithIgnorePolicy(p IgnorePolicy) Option {
	return func(s *Session) {
		s.policy = p
	}
}

// WithMessages replaces the default status messages.
func WithMessages(m Messages) Option {
	return func(s *Session) {
		s.messages = m.withDefaults()
	}
}

// New builds a session over the given lines. An empty script starts in
// the completed state with health 0 so that AwaitingRestart always means
// the cursor is at the end.
func New(lines []string, opts ...Option) *Session {
	s := &Session{
		lines:    append([]string(nil), lines...),
		policy:   DefaultIgnorePolicy(),
		messages: DefaultMessages(),
	}
	for _, opt := range opts {
		opt(s)
	}
	for lineIdx, line := range s.lines {
		pos := 0
		for _, r := range line {
			s.runes = append(s.runes, r)
			s.meta = append(s.meta, position{line: lineIdx, pos: pos})
			pos++
		}
	}
	s.total = len(s.runes)
	if s.total > 0 {
		s.damage = fullHealth / float64(s.total)
	}
	s.restore()
	s.message = s.messages.Intro
	return s
}

// restore puts the session back at the start of the script. An empty
// script has nothing to type, so it stays complete.
func (s *Session) restore() {
	s.cursor = 0
	if s.total == 0 {
		s.health = 0
		s.awaiting = true
		return
	}
	s.health = fullHealth
	s.awaiting = false
}

// Expected returns the next rune to type. ok is false once the script is
// exhausted.
func (s *Session) Expected() (r rune, ok bool) {
	if s.cursor >= s.total {
		return 0, false
	}
	return s.runes[s.cursor], true
}

// Submit feeds a single rune into the session and reports how it was
// classified.
func (s *Session) Submit(r rune) Outcome {
	if s.awaiting {
		if r == ' ' {
			s.Reset()
			return Outcome{Kind: Restarted}
		}
		return Outcome{Kind: Ignored}
	}

	if r == '\n' || r == '\r' {
		return Outcome{Kind: Ignored}
	}

	expected, ok := s.Expected()
	if !ok {
		s.complete()
		return Outcome{Kind: Victory}
	}

	if s.policy.Ignores(r) {
		return Outcome{Kind: Ignored}
	}

	if unicode.IsSpace(r) && r != ' ' && expected != ' ' {
		return Outcome{Kind: Ignored}
	}

	if r != expected {
		s.message = s.messages.Wrong
		return Outcome{Kind: Wrong, Rune: r}
	}

	s.cursor++
	s.health -= s.damage
	if s.health < 0 {
		s.health = 0
	}
	if s.cursor >= s.total {
		s.complete()
		return Outcome{Kind: Victory}
	}
	s.message = s.messages.Correct
	return Outcome{Kind: Correct}
}

// complete enters the victory state. Health is pinned to zero so that
// accumulated rounding in damage never leaves the boss alive.
func (s *Session) complete() {
	s.health = 0
	s.awaiting = true
	s.message = s.messages.Victory
}

// Reset starts the script over. An empty script stays complete with
// health 0.
func (s *Session) Reset() {
	s.restore()
	s.message = s.messages.Restarted
}

// LineState returns the current line index and how many of its runes
// have been typed. A completed session reports the last line as fully
// typed.
func (s *Session) LineState() (line, typed int) {
	if s.cursor < s.total {
		p := s.meta[s.cursor]
		return p.line, p.pos
	}
	if len(s.lines) == 0 {
		return 0, 0
	}
	last := len(s.lines) - 1
	return last, len([]rune(s.lines[last]))
}

// Lines returns a copy of the script lines.
func (s *Session) Lines() []string {
	return append([]string(nil), s.lines...)
}

// Cursor returns the index of the next expected rune.
func (s *Session) Cursor() int { return s.cursor }

// Total returns the number of runes in the script.
func (s *Session) Total() int { return s.total }

// Health returns the boss health in [0, 100].
func (s *Session) Health() float64 { return s.health }

// Damage returns the health removed by each correct rune.
func (s *Session) Damage() float64 { return s.damage }

// AwaitingRestart reports whether the script is complete and the session
// is waiting for a space to start over.
func (s *Session) AwaitingRestart() bool { return s.awaiting }

// Message returns the latest status message.
func (s *Session) Message() string { return s.message }

// Progress returns the typed share of the script as a percentage.
func (s *Session) Progress() float64 {
	if s.total == 0 {
		return 0
	}
	return float64(s.cursor) / float64(s.total) * 100
}
