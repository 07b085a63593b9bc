package gamedata

import "github.com/lixenwraith/timeloop/constants"

// Attribute names one of the four bounded player attributes
type Attribute int

const (
	Sanity Attribute = iota
	Intuition
	Courage
	Logic
)

// Attributes lists all attributes in display order
var Attributes = []Attribute{Sanity, Intuition, Courage, Logic}

func (a Attribute) String() string {
	switch a {
	case Sanity:
		return "sanity"
	case Intuition:
		return "intuition"
	case Courage:
		return "courage"
	case Logic:
		return "logic"
	default:
		return "unknown"
	}
}

// Label returns the in-game display name
func (a Attribute) Label() string {
	switch a {
	case Sanity:
		return "理智"
	case Intuition:
		return "直觉"
	case Courage:
		return "勇气"
	case Logic:
		return "逻辑"
	default:
		return "?"
	}
}

// ParseAttribute resolves an attribute from its String form
func ParseAttribute(name string) (Attribute, bool) {
	for _, a := range Attributes {
		if a.String() == name {
			return a, true
		}
	}
	return 0, false
}

func (s *State) attributePtr(a Attribute) *int {
	switch a {
	case Sanity:
		return &s.sanity
	case Intuition:
		return &s.intuition
	case Courage:
		return &s.courage
	case Logic:
		return &s.logic
	default:
		return nil
	}
}

// Attribute returns the current value of a, or 0 for an unknown attribute
func (s *State) Attribute(a Attribute) int {
	if p := s.attributePtr(a); p != nil {
		return *p
	}
	return 0
}

// ModifyAttribute applies delta and clamps the result to [0,100]
func (s *State) ModifyAttribute(a Attribute, delta int) {
	p := s.attributePtr(a)
	if p == nil {
		return
	}
	*p = clampAdd(*p, delta, constants.AttributeMin, constants.AttributeMax)
}

func (s *State) ModifySanity(delta int)    { s.ModifyAttribute(Sanity, delta) }
func (s *State) ModifyIntuition(delta int) { s.ModifyAttribute(Intuition, delta) }
func (s *State) ModifyCourage(delta int)   { s.ModifyAttribute(Courage, delta) }
func (s *State) ModifyLogic(delta int)     { s.ModifyAttribute(Logic, delta) }

// clampAdd returns v+delta bounded to [lo,hi], saturating instead of overflowing
// v must already lie within the bounds
func clampAdd(v, delta, lo, hi int) int {
	if delta > hi-v {
		return hi
	}
	if delta < lo-v {
		return lo
	}
	return v + delta
}
