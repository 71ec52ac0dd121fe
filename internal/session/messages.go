package session

// Messages holds the status lines shown to the player.
type Messages struct {
	Intro     string
	Correct   string
	Wrong     string
	Victory   string
	Restarted string
}

// DefaultMessages returns the built-in status lines.
func DefaultMessages() Messages {
	return Messages{
		Intro:     "Type the whole text to defeat the boss.",
		Correct:   "Correct!",
		Wrong:     "Wrong key.",
		Victory:   "Victory! Press space to play again.",
		Restarted: "Restarted. Keep typing.",
	}
}

func (m Messages) withDefaults() Messages {
	d := DefaultMessages()
	if m.Intro == "" {
		m.Intro = d.Intro
	}
	if m.Correct == "" {
		m.Correct = d.Correct
	}
	if m.Wrong == "" {
		m.Wrong = d.Wrong
	}
	if m.Victory == "" {
		m.Victory = d.Victory
	}
	if m.Restarted == "" {
		m.Restarted = d.Restarted
	}
	return m
}
