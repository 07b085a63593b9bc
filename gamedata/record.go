package gamedata

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/timeloop/constants"
)

// Record is the persisted wire form of State, one JSON object per save slot
type Record struct {
	PlayerName       string         `json:"playerName"`
	PlayerGender     Gender         `json:"playerGender"`
	LoopCount        int            `json:"loopCount"`
	LoopPhase        int            `json:"loopPhase"`
	CurrentDay       int            `json:"currentDay"`
	CurrentState     string         `json:"currentState"`
	Attributes       *AttributeSet  `json:"attributes"`
	Affections       map[string]int `json:"affections"`
	CluesFound       []bool         `json:"cluesFound"`
	MemoriesUnlocked []bool         `json:"memoriesUnlocked"`
	SecretLevel      int            `json:"secretLevel"`
	Flags            *FlagSet       `json:"flags"`
	Points           *PointSet      `json:"points"`
	SaveTime         int64          `json:"saveTime"`
}

type AttributeSet struct {
	Sanity    int `json:"sanity"`
	Intuition int `json:"intuition"`
	Courage   int `json:"courage"`
	Logic     int `json:"logic"`
}

type FlagSet struct {
	HasMetYutong         bool `json:"hasMetYutong"`
	HasMetAllKings       bool `json:"hasMetAllKings"`
	HasDiscoveredAnomaly bool `json:"hasDiscoveredAnomaly"`
	HasConfrontedYilin   bool `json:"hasConfrontedYilin"`
	KnowsTimeLoop        bool `json:"knowsTimeLoop"`
}

type PointSet struct {
	Romantic int `json:"romantic"`
	Tragedy  int `json:"tragedy"`
	Escape   int `json:"escape"`
}

// Snapshot captures the full state as a record stamped with the last save time
func (s *State) Snapshot() Record {
	affections := make(map[string]int, len(s.affections))
	for id, v := range s.affections {
		affections[string(id)] = v
	}

	return Record{
		PlayerName:   s.PlayerName,
		PlayerGender: s.PlayerGender,
		LoopCount:    s.loopCount,
		LoopPhase:    s.loopPhase,
		CurrentDay:   s.currentDay,
		CurrentState: s.CurrentState,
		Attributes: &AttributeSet{
			Sanity:    s.sanity,
			Intuition: s.intuition,
			Courage:   s.courage,
			Logic:     s.logic,
		},
		Affections:       affections,
		CluesFound:       append([]bool(nil), s.cluesFound[:]...),
		MemoriesUnlocked: append([]bool(nil), s.memoriesUnlocked[:]...),
		SecretLevel:      s.secretLevel,
		Flags: &FlagSet{
			HasMetYutong:         s.flags[FlagMetYutong],
			HasMetAllKings:       s.flags[FlagMetAllKings],
			HasDiscoveredAnomaly: s.flags[FlagDiscoveredAnomaly],
			HasConfrontedYilin:   s.flags[FlagConfrontedYilin],
			KnowsTimeLoop:        s.flags[FlagKnowsTimeLoop],
		},
		Points: &PointSet{
			Romantic: s.points[PointsRomantic],
			Tragedy:  s.points[PointsTragedy],
			Escape:   s.points[PointsEscape],
		},
		SaveTime: s.lastSaveTime.UnixMilli(),
	}
}

// MarshalRecord encodes the state stamped with saveTime
func (s *State) MarshalRecord(saveTime time.Time) ([]byte, error) {
	rec := s.Snapshot()
	rec.SaveTime = saveTime.UnixMilli()
	return json.Marshal(rec)
}

// DecodeRecord parses and validates a persisted record
func DecodeRecord(blob []byte) (Record, error) {
	var rec Record
	if err := json.Unmarshal(blob, &rec); err != nil {
		return Record{}, fmt.Errorf("decode record: %w", err)
	}
	if err := rec.Validate(); err != nil {
		return Record{}, err
	}
	return rec, nil
}

var (
	errMissingSection = errors.New("record section missing")
	errOutOfRange     = errors.New("record value out of range")
)

// Validate rejects records that would break State invariants if applied
func (r Record) Validate() error {
	if r.Attributes == nil || r.Flags == nil || r.Points == nil {
		return fmt.Errorf("attributes, flags and points required: %w", errMissingSection)
	}
	if r.Affections == nil {
		return fmt.Errorf("affections required: %w", errMissingSection)
	}
	if len(r.CluesFound) != constants.ClueCount {
		return fmt.Errorf("cluesFound has %d entries, want %d: %w", len(r.CluesFound), constants.ClueCount, errOutOfRange)
	}
	if len(r.MemoriesUnlocked) != constants.MemoryCount {
		return fmt.Errorf("memoriesUnlocked has %d entries, want %d: %w", len(r.MemoriesUnlocked), constants.MemoryCount, errOutOfRange)
	}
	if r.LoopCount < 1 {
		return fmt.Errorf("loopCount %d: %w", r.LoopCount, errOutOfRange)
	}
	if r.LoopPhase != 0 && r.LoopPhase != 1 {
		return fmt.Errorf("loopPhase %d: %w", r.LoopPhase, errOutOfRange)
	}
	if r.CurrentDay < 1 || r.CurrentDay > constants.DaysPerLoop {
		return fmt.Errorf("currentDay %d: %w", r.CurrentDay, errOutOfRange)
	}
	for name, v := range map[string]int{
		"sanity":    r.Attributes.Sanity,
		"intuition": r.Attributes.Intuition,
		"courage":   r.Attributes.Courage,
		"logic":     r.Attributes.Logic,
	} {
		if v < constants.AttributeMin || v > constants.AttributeMax {
			return fmt.Errorf("%s %d: %w", name, v, errOutOfRange)
		}
	}
	return nil
}

// apply overwrites the state with a validated record
// Affections for ids outside the fixed set are dropped; missing ids read as 0
func (s *State) apply(r Record) {
	s.PlayerName = r.PlayerName
	s.PlayerGender = r.PlayerGender
	s.CurrentState = r.CurrentState

	s.loopCount = r.LoopCount
	s.loopPhase = r.LoopPhase
	s.currentDay = r.CurrentDay

	s.sanity = r.Attributes.Sanity
	s.intuition = r.Attributes.Intuition
	s.courage = r.Attributes.Courage
	s.logic = r.Attributes.Logic

	s.affections = make(map[CharacterID]int, len(Characters))
	for _, id := range Characters {
		s.affections[id] = r.Affections[string(id)]
	}

	copy(s.cluesFound[:], r.CluesFound)
	copy(s.memoriesUnlocked[:], r.MemoriesUnlocked)
	s.secretLevel = r.SecretLevel

	s.flags[FlagMetYutong] = r.Flags.HasMetYutong
	s.flags[FlagMetAllKings] = r.Flags.HasMetAllKings
	s.flags[FlagDiscoveredAnomaly] = r.Flags.HasDiscoveredAnomaly
	s.flags[FlagConfrontedYilin] = r.Flags.HasConfrontedYilin
	s.flags[FlagKnowsTimeLoop] = r.Flags.KnowsTimeLoop

	s.points[PointsRomantic] = r.Points.Romantic
	s.points[PointsTragedy] = r.Points.Tragedy
	s.points[PointsEscape] = r.Points.Escape

	s.lastSaveTime = time.UnixMilli(r.SaveTime)
}
