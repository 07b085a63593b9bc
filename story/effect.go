// Package story holds the narrative content: per-day scripts, choice effects
// expressed as data, and ending scripts
package story

import (
	"time"

	"github.com/lixenwraith/timeloop/constants"
	"github.com/lixenwraith/timeloop/dialogue"
	"github.com/lixenwraith/timeloop/gamedata"
)

// Toast is an ephemeral notification requested by an effect
type Toast struct {
	Text     string
	Duration time.Duration
}

// ClueDiscovery marks a clue found when the loop gate passes
type ClueDiscovery struct {
	Index int
	// SecretBonus is added to the secret level when the clue is recorded
	SecretBonus int
	// AfterLoop gates the discovery to loopCount > AfterLoop; zero always passes
	AfterLoop int
	// OnlyIfNew skips the discovery, bonus and toast when the clue is already known
	OnlyIfNew bool
	Toast     string
}

// Effect describes every state mutation a choice performs
// Attribute, affection and point deltas commute, so map order is irrelevant
type Effect struct {
	Attributes map[gamedata.Attribute]int
	Affections map[gamedata.CharacterID]int
	Points     map[gamedata.PointKind]int
	Flags      []gamedata.Flag
	Clues      []ClueDiscovery
	Memories   []int
	Lines      []dialogue.Line
	Toast      string
}

// Outcome is what an applied effect asks the scene to present
type Outcome struct {
	Lines  []dialogue.Line
	Toasts []Toast
}

// Apply interprets e against s
func Apply(s *gamedata.State, e Effect) Outcome {
	var out Outcome

	for attr, delta := range e.Attributes {
		s.ModifyAttribute(attr, delta)
	}
	for id, delta := range e.Affections {
		s.ModifyAffection(id, delta)
	}
	for kind, n := range e.Points {
		s.AddPoints(kind, n)
	}
	for _, f := range e.Flags {
		s.SetFlag(f)
	}
	for _, m := range e.Memories {
		s.UnlockMemory(m)
	}

	out.Lines = append(out.Lines, e.Lines...)

	for _, c := range e.Clues {
		if c.AfterLoop > 0 && s.LoopCount() <= c.AfterLoop {
			continue
		}
		if c.OnlyIfNew && s.ClueFound(c.Index) {
			continue
		}
		s.FindClue(c.Index)
		s.AddSecretLevel(c.SecretBonus)
		if c.Toast != "" {
			out.Toasts = append(out.Toasts, Toast{Text: c.Toast, Duration: constants.ToastClueDuration})
		}
	}

	if e.Toast != "" {
		out.Toasts = append(out.Toasts, Toast{Text: e.Toast, Duration: constants.ToastLoopDuration})
	}
	return out
}

// Choice is one selectable branch
type Choice struct {
	Label  string
	Effect Effect
}

// Script is a day's opening lines and its branch point
type Script struct {
	Day     int
	Lines   []dialogue.Line
	Choices []Choice
}
