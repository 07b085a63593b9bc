package gamedata

import "github.com/lixenwraith/timeloop/constants"

// CharacterID identifies one of the eight classmates that carry an affection value
type CharacterID string

const (
	Yutong    CharacterID = "yutong"
	Bingcheng CharacterID = "bingcheng"
	Zishuo    CharacterID = "zishuo"
	Yicheng   CharacterID = "yicheng"
	Haochen   CharacterID = "haochen"
	Yilin     CharacterID = "yilin"
	Linfeng   CharacterID = "linfeng"
	Ziming    CharacterID = "ziming"
)

// Characters lists the affection-bearing characters in display order
var Characters = []CharacterID{Yutong, Bingcheng, Zishuo, Yicheng, Haochen, Yilin, Linfeng, Ziming}

var characterNames = map[CharacterID]string{
	Yutong:    "姜雨彤",
	Bingcheng: "张秉诚",
	Zishuo:    "王梓硕",
	Yicheng:   "王翊丞",
	Haochen:   "姬昊辰",
	Yilin:     "房屹林",
	Linfeng:   "李林峰",
	Ziming:    "侯子鸣",
}

// Name returns the display name and whether the id is a known character
func (c CharacterID) Name() (string, bool) {
	name, ok := characterNames[c]
	return name, ok
}

// Known reports whether c is one of the fixed character ids
func (c CharacterID) Known() bool {
	_, ok := characterNames[c]
	return ok
}

// Tier is the label band an affection value falls into
type Tier int

const (
	TierStranger Tier = iota
	TierAcquainted
	TierNormal
	TierFriendly
	TierIntimate
)

func (t Tier) String() string {
	switch t {
	case TierStranger:
		return "stranger"
	case TierAcquainted:
		return "acquainted"
	case TierNormal:
		return "normal"
	case TierFriendly:
		return "friendly"
	case TierIntimate:
		return "intimate"
	default:
		return "unknown"
	}
}

// Label returns the in-game badge for the tier
func (t Tier) Label() string {
	switch t {
	case TierIntimate:
		return "❤亲密"
	case TierFriendly:
		return "✓友好"
	case TierNormal:
		return "○普通"
	case TierAcquainted:
		return "△认识"
	default:
		return "×陌生"
	}
}

// TierFor maps an affection value onto its tier
func TierFor(value int) Tier {
	switch {
	case value >= constants.AffectionIntimate:
		return TierIntimate
	case value >= constants.AffectionFriendly:
		return TierFriendly
	case value >= constants.AffectionNormal:
		return TierNormal
	case value >= constants.AffectionAcquainted:
		return TierAcquainted
	default:
		return TierStranger
	}
}

// ModifyAffection adds delta to the character's affection, unbounded
// Unknown ids are ignored; the return value reports whether the write applied
func (s *State) ModifyAffection(id CharacterID, delta int) bool {
	if _, ok := s.affections[id]; !ok {
		return false
	}
	s.affections[id] += delta
	return true
}

// Affection returns the character's affection, 0 for unknown ids
func (s *State) Affection(id CharacterID) int {
	return s.affections[id]
}

// AffectionTier returns the tier of the character's current affection
func (s *State) AffectionTier(id CharacterID) Tier {
	return TierFor(s.Affection(id))
}
