package dialogue

import (
	"time"

	"github.com/lixenwraith/timeloop/constants"
)

// TyperState is the reveal phase of the active line
type TyperState int

const (
	TyperIdle TyperState = iota
	TyperTyping
	TyperComplete
)

func (s TyperState) String() string {
	switch s {
	case TyperIdle:
		return "Idle"
	case TyperTyping:
		return "Typing"
	case TyperComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// Typer reveals one line character by character over real (game) time
// Progress is recomputed from the line start so no fractional drift accumulates
// One Typer serves one line at a time and is not safe for concurrent use
type Typer struct {
	CharsPerSecond int

	state     TyperState
	line      Line
	runes     []rune
	displayed int
	startTime time.Time
	lastTick  time.Time
}

// NewTyper creates an idle typer; charsPerSecond <= 0 selects the default speed
func NewTyper(charsPerSecond int) *Typer {
	return &Typer{CharsPerSecond: charsPerSecond}
}

// cps resolves the effective speed: defaulted below 1, clamped above the maximum
func (t *Typer) cps() int {
	switch {
	case t.CharsPerSecond <= 0:
		return constants.TypingCharsPerSecond
	case t.CharsPerSecond > constants.MaxTypingCharsPerSecond:
		return constants.MaxTypingCharsPerSecond
	}
	return t.CharsPerSecond
}

// Start begins revealing line from zero characters at now
func (t *Typer) Start(line Line, now time.Time) {
	t.line = line
	t.runes = []rune(line.Text)
	t.displayed = 0
	t.startTime = now
	t.lastTick = now
	t.state = TyperTyping

	if len(t.runes) == 0 {
		t.state = TyperComplete
	}
}

// Advance reveals the characters due by now and reports whether this tick completed the line
func (t *Typer) Advance(now time.Time) bool {
	if t.state != TyperTyping {
		return false
	}

	elapsed := now.Sub(t.startTime)
	if elapsed < 0 {
		return false
	}
	perChar := time.Second / time.Duration(t.cps())
	due := int(elapsed / perChar)
	if due > len(t.runes) {
		due = len(t.runes)
	}
	if due <= t.displayed {
		return false
	}

	t.displayed = due
	t.lastTick = now
	if t.displayed >= len(t.runes) {
		t.state = TyperComplete
		return true
	}
	return false
}

// Skip reveals the whole line immediately; idempotent
func (t *Typer) Skip() {
	if t.state == TyperIdle {
		return
	}
	t.displayed = len(t.runes)
	t.state = TyperComplete
}

// IsComplete reports whether the full line is visible
func (t *Typer) IsComplete() bool {
	return t.state == TyperComplete
}

// IsTyping reports whether the line is still being revealed
func (t *Typer) IsTyping() bool {
	return t.state == TyperTyping
}

// State returns the current reveal phase
func (t *Typer) State() TyperState {
	return t.state
}

// Line returns the line being revealed
func (t *Typer) Line() Line {
	return t.line
}

// DisplayedLen returns the number of visible characters
func (t *Typer) DisplayedLen() int {
	return t.displayed
}

// Displayed returns the visible prefix of the line
func (t *Typer) Displayed() string {
	if t.state == TyperComplete {
		return t.line.Text
	}
	return string(t.runes[:t.displayed])
}

// LastTick returns the time characters were last revealed
func (t *Typer) LastTick() time.Time {
	return t.lastTick
}

// Len returns the full line length in characters
func (t *Typer) Len() int {
	return len(t.runes)
}
