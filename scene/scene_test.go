package scene

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/timeloop/constants"
	"github.com/lixenwraith/timeloop/gamedata"
)

var errTest = errors.New("quota exceeded")

func TestTagRoundTrip(t *testing.T) {
	tags := []Tag{TagTitle, TagGame}
	for _, e := range gamedata.Endings {
		tags = append(tags, EndingTag(e))
	}
	for _, tag := range tags {
		got, ok := ParseTag(tag.String())
		if !ok || got != tag {
			t.Errorf("ParseTag(%q): expected %v, got %v (ok=%v)", tag.String(), tag, got, ok)
		}
	}

	if got := EndingTag(gamedata.EndingRomantic).String(); got != "ending_romantic" {
		t.Errorf("Expected ending_romantic, got %q", got)
	}
	for _, bad := range []string{"", "ending_", "ending_none", "menu"} {
		if _, ok := ParseTag(bad); ok {
			t.Errorf("ParseTag(%q) should fail", bad)
		}
	}
}

func TestRegistryLookup(t *testing.T) {
	f := newFixture()
	r := NewDefaultRegistry(f.env)

	if s, ok := r.Lookup(EndingTag(gamedata.EndingTragic)); !ok {
		t.Error("Expected ending behaviour")
	} else if _, isEnding := s.(*Ending); !isEnding {
		t.Errorf("Expected *Ending, got %T", s)
	}
	if _, ok := NewRegistry().Lookup(TagGame); ok {
		t.Error("Empty registry must not resolve tags")
	}
}

func TestEndingRevealsOnInterval(t *testing.T) {
	f := newFixture()
	e := NewEnding(f.env)
	e.Init(Params{Ending: gamedata.EndingTragic})

	if e.Revealed() != 1 || len(f.rec.entries) != 1 {
		t.Fatalf("Expected title revealed on init, got %d", e.Revealed())
	}

	e.Update(constants.EndingLineInterval - time.Millisecond)
	if e.Revealed() != 1 {
		t.Errorf("Expected no reveal before interval, got %d", e.Revealed())
	}
	e.Update(time.Millisecond)
	if e.Revealed() != 2 {
		t.Errorf("Expected second entry after interval, got %d", e.Revealed())
	}

	e.Update(time.Duration(e.Total()+1) * constants.EndingLineInterval)
	if !e.HasChoices() || e.Revealed() != e.Total() {
		t.Errorf("Expected all %d entries and options, got %d options=%v", e.Total(), e.Revealed(), e.HasChoices())
	}
}

func TestEndingOptions(t *testing.T) {
	f := newFixture()
	e := NewEnding(f.env)
	e.Init(Params{Ending: gamedata.EndingEscape})

	e.SelectChoice(EndingOptionTitle)
	if len(f.nav.calls) != 0 {
		t.Error("Options must be ignored before the reveal finishes")
	}

	for i := 0; i < e.Total()+1; i++ {
		e.Continue()
	}
	e.SelectChoice(EndingOptionStats)
	e.SelectChoice(EndingOptionRestart)
	e.SelectChoice(EndingOptionTitle)
	e.SelectChoice(9)

	want := []string{"stats", "restart", "title"}
	if len(f.nav.calls) != len(want) {
		t.Fatalf("Expected %v, got %v", want, f.nav.calls)
	}
	for i := range want {
		if f.nav.calls[i] != want[i] {
			t.Errorf("Call %d: expected %s, got %s", i, want[i], f.nav.calls[i])
		}
	}
}

func TestEndingNoneFallsBackToEternal(t *testing.T) {
	f := newFixture()
	e := NewEnding(f.env)
	e.Init(Params{})
	if e.Kind() != gamedata.EndingEternal {
		t.Errorf("Expected eternal, got %v", e.Kind())
	}
}

func TestTitleMenu(t *testing.T) {
	f := newFixture()
	title := NewTitle(f.env)
	title.Init(Params{})

	if title.HasSave() {
		t.Error("Expected no save in empty store")
	}

	title.SelectChoice(TitleOptionContinue)
	if len(f.rec.toasts) != 1 || f.rec.toasts[0] != "没有找到存档" {
		t.Errorf("Expected missing save toast, got %v", f.rec.toasts)
	}

	title.SelectChoice(TitleOptionCredits)
	if f.rec.panels[len(f.rec.panels)-1] != "制作人员" {
		t.Errorf("Expected credits panel, got %v", f.rec.panels)
	}

	title.SelectChoice(TitleOptionNewGame)
	title.SelectChoice(TitleOptionExit)
	if got := f.nav.calls; len(got) != 3 || got[0] != "continue" || got[1] != "new" || got[2] != "quit" {
		t.Errorf("Unexpected navigation %v", got)
	}

	title.Teardown()
	title.SelectChoice(TitleOptionExit)
	if len(f.nav.calls) != 3 {
		t.Error("Menu must be inactive after teardown")
	}
}
