package session

import "fmt"

// Kind classifies the result of a submitted rune.
type Kind int

const (
	// Ignored input changed nothing.
	Ignored Kind = iota
	// Correct input advanced the cursor.
	Correct
	// Wrong input did not match the expected rune.
	Wrong
	// Victory means the last rune of the script was typed.
	Victory
	// Restarted means a completed session was reset.
	Restarted
)

func (k Kind) String() string {
	switch k {
	case Ignored:
		return "ignored"
	case Correct:
		return "correct"
	case Wrong:
		return "wrong"
	case Victory:
		return "victory"
	case Restarted:
		return "restarted"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Outcome is returned by Submit. Rune is set only for Wrong.
type Outcome struct {
	Kind Kind
	Rune rune
}

func (o Outcome) String() string {
	if o.Kind == Wrong {
		return fmt.Sprintf("wrong(%q)", o.Rune)
	}
	return o.Kind.String()
}

// ClearsWrongHint reports whether the outcome should clear a pending
// "last input was wrong" display hint.
func (o Outcome) ClearsWrongHint() bool {
	switch o.Kind {
	case Correct, Victory, Restarted:
		return true
	default:
		return false
	}
}
