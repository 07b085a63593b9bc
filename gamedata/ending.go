package gamedata

import "github.com/lixenwraith/timeloop/constants"

// Ending is a terminal narrative branch
type Ending int

const (
	EndingNone Ending = iota
	EndingEternal
	EndingRomantic
	EndingTragic
	EndingEscape
	EndingNightmare
)

// Endings lists the five reachable endings
var Endings = []Ending{EndingEternal, EndingRomantic, EndingTragic, EndingEscape, EndingNightmare}

func (e Ending) String() string {
	switch e {
	case EndingEternal:
		return "eternal"
	case EndingRomantic:
		return "romantic"
	case EndingTragic:
		return "tragic"
	case EndingEscape:
		return "escape"
	case EndingNightmare:
		return "nightmare"
	default:
		return "none"
	}
}

// ParseEnding resolves an ending from its String form
func ParseEnding(name string) (Ending, bool) {
	for _, e := range Endings {
		if e.String() == name {
			return e, true
		}
	}
	return EndingNone, false
}

// MatchEnding evaluates the ending rules in strict priority order
// The bool is false when no rule matched and the eternal fallback applies
func (s *State) MatchEnding() (Ending, bool) {
	switch {
	case s.loopCount >= constants.MaxLoops:
		return EndingEternal, true
	case s.points[PointsRomantic] >= constants.EndingPointThreshold &&
		s.Affection(Yutong) >= constants.RomanticAffectionMinimum:
		return EndingRomantic, true
	case s.points[PointsTragedy] >= constants.EndingPointThreshold ||
		s.sanity <= constants.TragicSanityCeiling:
		return EndingTragic, true
	case s.points[PointsEscape] >= constants.EndingPointThreshold && s.KnowsTimeLoop():
		return EndingEscape, true
	case s.sanity <= constants.NightmareSanityCeiling:
		// Unreachable while the tragic rule covers sanity <= 20; kept in priority order
		return EndingNightmare, true
	default:
		return EndingEternal, false
	}
}

// DetermineEnding returns the ending the current state qualifies for
// Eternal is both the loop-cap ending and the fallback
func (s *State) DetermineEnding() Ending {
	e, _ := s.MatchEnding()
	return e
}
