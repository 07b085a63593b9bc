// Package gamedata holds the durable player and world state of a play-through:
// attributes, affections, collectibles, plot flags, ending tallies and the
// loop/day cursor, plus ending selection and save/load through a record store.
package gamedata

import (
	"time"

	"github.com/lixenwraith/timeloop/constants"
)

// Gender is chosen once at new-game time
type Gender string

const (
	GenderMale  Gender = "male"
	GenderOther Gender = "other"
)

// State is the single persistent game state of one save slot
// Bounded values are private so every write goes through the clamping mutators
type State struct {
	PlayerName   string
	PlayerGender Gender

	// CurrentState is the scene identifier recorded by the session on every switch
	CurrentState string

	loopCount  int
	loopPhase  int
	currentDay int

	sanity    int
	intuition int
	courage   int
	logic     int

	affections map[CharacterID]int

	cluesFound       [constants.ClueCount]bool
	memoriesUnlocked [constants.MemoryCount]bool
	secretLevel      int

	flags  [flagCount]bool
	points [pointKindCount]int

	lastSaveTime time.Time

	// now stamps saves; replaced in tests
	now func() time.Time
}

// New creates a state initialized with the new-game defaults
func New() *State {
	s := &State{now: time.Now}
	s.Reset()
	return s
}

// Reset restores every field to its default in place
func (s *State) Reset() {
	s.PlayerName = ""
	s.PlayerGender = ""
	s.CurrentState = "title"

	s.loopCount = 1
	s.loopPhase = 0
	s.currentDay = 1

	s.sanity = constants.DefaultSanity
	s.intuition = constants.DefaultIntuition
	s.courage = constants.DefaultCourage
	s.logic = constants.DefaultLogic

	s.affections = make(map[CharacterID]int, len(Characters))
	for _, id := range Characters {
		s.affections[id] = 0
	}

	s.cluesFound = [constants.ClueCount]bool{}
	s.memoriesUnlocked = [constants.MemoryCount]bool{}
	s.secretLevel = 0

	s.flags = [flagCount]bool{}
	s.points = [pointKindCount]int{}

	if s.now == nil {
		s.now = time.Now
	}
	s.lastSaveTime = s.now()
}

// SetClock replaces the save timestamp source
func (s *State) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	s.now = now
}

// LoopCount returns the current loop iteration, starting at 1
func (s *State) LoopCount() int {
	return s.loopCount
}

// SetLoopCount moves the loop cursor; values below 1 are raised to 1
func (s *State) SetLoopCount(n int) {
	if n < 1 {
		n = 1
	}
	s.loopCount = n
}

// LoopPhase returns 0 before the suspense phase and 1 after it
func (s *State) LoopPhase() int {
	return s.loopPhase
}

// CurrentDay returns the story day within the loop (1..3)
func (s *State) CurrentDay() int {
	return s.currentDay
}

// SetCurrentDay positions the day cursor; out-of-range days reset to 1
func (s *State) SetCurrentDay(day int) {
	if day < 1 || day > constants.DaysPerLoop {
		day = 1
	}
	s.currentDay = day
}

// AdvanceDay moves to the next day and reports whether the loop wrapped
// On wrap the loop count increments and the phase transition check runs
func (s *State) AdvanceDay() bool {
	day := s.currentDay + 1
	if day >= 1 && day <= constants.DaysPerLoop {
		s.currentDay = day
		return false
	}

	s.currentDay = 1
	s.loopCount++
	s.CheckPhaseTransition()
	return true
}

// CheckPhaseTransition flips the phase 0->1 once the loop threshold is reached
func (s *State) CheckPhaseTransition() {
	if s.loopCount >= constants.PhaseThreshold && s.loopPhase == 0 {
		s.loopPhase = 1
		s.flags[FlagDiscoveredAnomaly] = true
	}
}

// SecretLevel returns the accumulated secret level
func (s *State) SecretLevel() int {
	return s.secretLevel
}

// AddSecretLevel adjusts the secret level by n
func (s *State) AddSecretLevel(n int) {
	s.secretLevel += n
}

// LastSaveTime returns the time of the last successful save or load
func (s *State) LastSaveTime() time.Time {
	return s.lastSaveTime
}
