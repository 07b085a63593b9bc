package dialogue

import (
	"strings"
	"testing"
	"time"
)

var t0 = time.Date(2025, 9, 27, 8, 0, 0, 0, time.UTC)

func fiftyChars() Line {
	return Say(SpeakerSystem, strings.Repeat("时", 50))
}

func TestTyperRevealRate(t *testing.T) {
	typer := NewTyper(25)
	typer.Start(fiftyChars(), t0)

	if typer.DisplayedLen() != 0 || !typer.IsTyping() {
		t.Fatalf("Expected fresh typing line, got %d chars in state %v", typer.DisplayedLen(), typer.State())
	}

	typer.Advance(t0.Add(1000 * time.Millisecond))
	if got := typer.DisplayedLen(); got != 25 {
		t.Errorf("Expected 25 chars after 1s at 25cps, got %d", got)
	}
	if got := typer.Displayed(); got != strings.Repeat("时", 25) {
		t.Errorf("Expected rune-aligned prefix, got %q", got)
	}
	if typer.IsComplete() {
		t.Error("Line should not be complete at half length")
	}
}

func TestTyperSkip(t *testing.T) {
	typer := NewTyper(25)
	typer.Start(fiftyChars(), t0)
	typer.Advance(t0.Add(200 * time.Millisecond))

	typer.Skip()
	if got := typer.DisplayedLen(); got != 50 {
		t.Errorf("Expected 50 chars after skip, got %d", got)
	}
	if !typer.IsComplete() {
		t.Error("Expected complete after skip")
	}

	typer.Skip()
	if got := typer.DisplayedLen(); got != 50 {
		t.Errorf("Second skip changed displayed length to %d", got)
	}
}

func TestTyperAdvanceSignalsCompletionOnce(t *testing.T) {
	typer := NewTyper(10)
	typer.Start(Say(SpeakerPlayer, "abc"), t0)

	completions := 0
	for i := 1; i <= 20; i++ {
		if typer.Advance(t0.Add(time.Duration(i) * 50 * time.Millisecond)) {
			completions++
		}
	}
	if completions != 1 {
		t.Errorf("Expected exactly one completing tick, got %d", completions)
	}
	if typer.Displayed() != "abc" {
		t.Errorf("Expected full text, got %q", typer.Displayed())
	}
}

func TestTyperMonotonicAndBounded(t *testing.T) {
	typer := NewTyper(30)
	typer.Start(fiftyChars(), t0)

	prev := 0
	for ms := 0; ms <= 3000; ms += 7 {
		typer.Advance(t0.Add(time.Duration(ms) * time.Millisecond))
		got := typer.DisplayedLen()
		if got < prev {
			t.Fatalf("Displayed length went backwards: %d -> %d at %dms", prev, got, ms)
		}
		if got > 50 {
			t.Fatalf("Displayed length %d exceeds line length", got)
		}
		prev = got
	}
	if !typer.IsComplete() {
		t.Error("Expected completion well after full duration")
	}
}

func TestTyperEmptyLineCompletesImmediately(t *testing.T) {
	typer := NewTyper(25)
	typer.Start(Say(SpeakerSystem, ""), t0)
	if !typer.IsComplete() {
		t.Error("Empty line should complete on start")
	}
	if typer.Advance(t0.Add(time.Second)) {
		t.Error("Advance on complete line should not report completion")
	}
}

func TestTyperRestartResets(t *testing.T) {
	typer := NewTyper(0)
	if typer.cps() != 25 {
		t.Errorf("Expected default speed 25, got %d", typer.cps())
	}
	typer.Start(fiftyChars(), t0)
	typer.Skip()

	typer.Start(Say(SpeakerYutong, "早上好"), t0.Add(time.Minute))
	if typer.DisplayedLen() != 0 || typer.IsComplete() {
		t.Errorf("Expected new line to restart reveal, got %d chars", typer.DisplayedLen())
	}
}

func TestTyperClampsExcessiveSpeed(t *testing.T) {
	typer := NewTyper(2000000000)
	typer.Start(fiftyChars(), t0)

	// 1ms at the 1000cps cap reveals exactly one rune
	typer.Advance(t0.Add(time.Millisecond))
	if got := typer.DisplayedLen(); got != 1 {
		t.Errorf("Expected 1 char after 1ms at the capped speed, got %d", got)
	}

	if !typer.Advance(t0.Add(50 * time.Millisecond)) {
		t.Error("Expected line to complete after 50ms at the capped speed")
	}
}
