package gamedata

import "github.com/lixenwraith/timeloop/constants"

// Flag is a monotonic plot flag; once set it stays set until Reset
type Flag int

const (
	FlagMetYutong Flag = iota
	FlagMetAllKings
	FlagDiscoveredAnomaly
	FlagConfrontedYilin
	FlagKnowsTimeLoop

	flagCount
)

func (f Flag) String() string {
	switch f {
	case FlagMetYutong:
		return "hasMetYutong"
	case FlagMetAllKings:
		return "hasMetAllKings"
	case FlagDiscoveredAnomaly:
		return "hasDiscoveredAnomaly"
	case FlagConfrontedYilin:
		return "hasConfrontedYilin"
	case FlagKnowsTimeLoop:
		return "knowsTimeLoop"
	default:
		return "unknown"
	}
}

// SetFlag raises f; there is no way to lower a flag short of Reset
func (s *State) SetFlag(f Flag) {
	if f < 0 || f >= flagCount {
		return
	}
	s.flags[f] = true
}

// HasFlag reports whether f is set
func (s *State) HasFlag(f Flag) bool {
	if f < 0 || f >= flagCount {
		return false
	}
	return s.flags[f]
}

// KnowsTimeLoop is shorthand for the most consulted flag
func (s *State) KnowsTimeLoop() bool {
	return s.flags[FlagKnowsTimeLoop]
}

// PointKind selects one of the three ending tallies
type PointKind int

const (
	PointsRomantic PointKind = iota
	PointsTragedy
	PointsEscape

	pointKindCount
)

func (k PointKind) String() string {
	switch k {
	case PointsRomantic:
		return "romantic"
	case PointsTragedy:
		return "tragedy"
	case PointsEscape:
		return "escape"
	default:
		return "unknown"
	}
}

// AddPoints increments an ending tally
func (s *State) AddPoints(k PointKind, n int) {
	if k < 0 || k >= pointKindCount {
		return
	}
	s.points[k] += n
}

// Points returns an ending tally
func (s *State) Points(k PointKind) int {
	if k < 0 || k >= pointKindCount {
		return 0
	}
	return s.points[k]
}

// FindClue marks clue i found and reports whether it was newly found
// Out-of-range indices are ignored
func (s *State) FindClue(i int) bool {
	if i < 0 || i >= constants.ClueCount || s.cluesFound[i] {
		return false
	}
	s.cluesFound[i] = true
	return true
}

// ClueFound reports whether clue i has been found
func (s *State) ClueFound(i int) bool {
	if i < 0 || i >= constants.ClueCount {
		return false
	}
	return s.cluesFound[i]
}

// UnlockMemory marks memory i unlocked and reports whether it was newly unlocked
func (s *State) UnlockMemory(i int) bool {
	if i < 0 || i >= constants.MemoryCount || s.memoriesUnlocked[i] {
		return false
	}
	s.memoriesUnlocked[i] = true
	return true
}

// MemoryUnlocked reports whether memory i has been unlocked
func (s *State) MemoryUnlocked(i int) bool {
	if i < 0 || i >= constants.MemoryCount {
		return false
	}
	return s.memoriesUnlocked[i]
}

// CluesFoundCount returns the number of found clues
func (s *State) CluesFoundCount() int {
	return countTrue(s.cluesFound[:])
}

// MemoriesUnlockedCount returns the number of unlocked memories
func (s *State) MemoriesUnlockedCount() int {
	return countTrue(s.memoriesUnlocked[:])
}

func countTrue(bs []bool) int {
	n := 0
	for _, b := range bs {
		if b {
			n++
		}
	}
	return n
}
