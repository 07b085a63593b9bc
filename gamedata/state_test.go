package gamedata

import (
	"math"
	"testing"

	"github.com/lixenwraith/timeloop/constants"
)

// TestResetRestoresDefaults verifies every getter returns the documented default after Reset
func TestResetRestoresDefaults(t *testing.T) {
	s := New()
	s.PlayerName = "林"
	s.PlayerGender = GenderMale
	s.SetLoopCount(9)
	s.CheckPhaseTransition()
	s.SetCurrentDay(3)
	s.ModifySanity(-50)
	s.ModifyLogic(40)
	s.ModifyAffection(Yutong, 33)
	s.FindClue(4)
	s.UnlockMemory(2)
	s.AddSecretLevel(3)
	s.SetFlag(FlagKnowsTimeLoop)
	s.AddPoints(PointsEscape, 4)

	s.Reset()

	checks := []struct {
		name     string
		got      int
		expected int
	}{
		{"sanity", s.Attribute(Sanity), 85},
		{"intuition", s.Attribute(Intuition), 30},
		{"courage", s.Attribute(Courage), 40},
		{"logic", s.Attribute(Logic), 35},
		{"loopCount", s.LoopCount(), 1},
		{"loopPhase", s.LoopPhase(), 0},
		{"currentDay", s.CurrentDay(), 1},
		{"secretLevel", s.SecretLevel(), 0},
		{"clues", s.CluesFoundCount(), 0},
		{"memories", s.MemoriesUnlockedCount(), 0},
		{"romantic", s.Points(PointsRomantic), 0},
		{"tragedy", s.Points(PointsTragedy), 0},
		{"escape", s.Points(PointsEscape), 0},
	}
	for _, c := range checks {
		if c.got != c.expected {
			t.Errorf("Expected %s=%d after reset, got %d", c.name, c.expected, c.got)
		}
	}

	for f := Flag(0); f < flagCount; f++ {
		if s.HasFlag(f) {
			t.Errorf("Expected flag %s cleared after reset", f)
		}
	}
	for _, id := range Characters {
		if s.Affection(id) != 0 {
			t.Errorf("Expected affection %s=0 after reset, got %d", id, s.Affection(id))
		}
	}
	if s.PlayerName != "" || s.PlayerGender != "" {
		t.Errorf("Expected empty player identity, got %q/%q", s.PlayerName, s.PlayerGender)
	}
	if s.CurrentState != "title" {
		t.Errorf("Expected currentState title, got %q", s.CurrentState)
	}
}

// TestModifyAttributeClamped checks bounds and monotonicity across extreme deltas
func TestModifyAttributeClamped(t *testing.T) {
	deltas := []int{math.MinInt, -1000, -101, -85, -1, 0, 1, 15, 16, 100, 1000, math.MaxInt}

	for _, attr := range Attributes {
		prev := -1
		for _, d := range deltas {
			s := New()
			s.ModifyAttribute(attr, d)
			got := s.Attribute(attr)

			if got < constants.AttributeMin || got > constants.AttributeMax {
				t.Fatalf("%s: delta %d produced out-of-range value %d", attr, d, got)
			}
			if got < prev {
				t.Errorf("%s: not monotonic, delta %d gave %d after %d", attr, d, got, prev)
			}
			prev = got
		}
	}

	s := New()
	s.ModifySanity(20)
	if s.Attribute(Sanity) != 100 {
		t.Errorf("Expected sanity clamped to 100, got %d", s.Attribute(Sanity))
	}
	s.ModifyIntuition(-31)
	if s.Attribute(Intuition) != 0 {
		t.Errorf("Expected intuition clamped to 0, got %d", s.Attribute(Intuition))
	}
}

func TestAffectionTiers(t *testing.T) {
	tests := []struct {
		value    int
		expected Tier
	}{
		{-30, TierStranger},
		{0, TierStranger},
		{19, TierStranger},
		{20, TierAcquainted},
		{39, TierAcquainted},
		{40, TierNormal},
		{60, TierFriendly},
		{79, TierFriendly},
		{80, TierIntimate},
		{250, TierIntimate},
	}

	for _, tt := range tests {
		s := New()
		s.ModifyAffection(Haochen, tt.value)
		if got := s.AffectionTier(Haochen); got != tt.expected {
			t.Errorf("Affection %d: expected %s, got %s", tt.value, tt.expected, got)
		}
	}
}

func TestModifyAffectionUnknownIgnored(t *testing.T) {
	s := New()
	before := s.Snapshot()

	if s.ModifyAffection("nobody", 50) {
		t.Error("Expected unknown character write to report false")
	}
	if s.Affection("nobody") != 0 {
		t.Errorf("Expected unknown character affection 0, got %d", s.Affection("nobody"))
	}
	after := s.Snapshot()
	if len(after.Affections) != len(before.Affections) {
		t.Errorf("Expected affection map size unchanged, got %d", len(after.Affections))
	}

	if !s.ModifyAffection(Yilin, -25) {
		t.Error("Expected known character write to report true")
	}
	if s.Affection(Yilin) != -25 {
		t.Errorf("Expected unbounded negative affection -25, got %d", s.Affection(Yilin))
	}
}

// TestCheckPhaseTransitionIdempotent verifies the phase flips exactly once
func TestCheckPhaseTransitionIdempotent(t *testing.T) {
	s := New()
	s.SetLoopCount(4)
	s.CheckPhaseTransition()
	if s.LoopPhase() != 0 || s.HasFlag(FlagDiscoveredAnomaly) {
		t.Fatal("Expected no transition below threshold")
	}

	s.SetLoopCount(5)
	s.CheckPhaseTransition()
	if s.LoopPhase() != 1 {
		t.Fatalf("Expected phase 1 at threshold, got %d", s.LoopPhase())
	}
	if !s.HasFlag(FlagDiscoveredAnomaly) {
		t.Error("Expected anomaly flag set with phase transition")
	}

	s.CheckPhaseTransition()
	if s.LoopPhase() != 1 {
		t.Errorf("Expected second call to keep phase 1, got %d", s.LoopPhase())
	}

	s.SetLoopCount(1)
	s.CheckPhaseTransition()
	if s.LoopPhase() != 1 {
		t.Error("Phase must never revert")
	}
}

func TestAdvanceDayWraps(t *testing.T) {
	s := New()

	if s.AdvanceDay() || s.CurrentDay() != 2 {
		t.Fatalf("Expected day 2 without wrap, got %d", s.CurrentDay())
	}
	if s.AdvanceDay() || s.CurrentDay() != 3 {
		t.Fatalf("Expected day 3 without wrap, got %d", s.CurrentDay())
	}
	if !s.AdvanceDay() {
		t.Fatal("Expected wrap after day 3")
	}
	if s.CurrentDay() != 1 || s.LoopCount() != 2 {
		t.Errorf("Expected day 1 loop 2, got day %d loop %d", s.CurrentDay(), s.LoopCount())
	}
}

func TestAdvanceDayRunsPhaseCheckOnWrap(t *testing.T) {
	s := New()
	s.SetLoopCount(4)
	s.SetCurrentDay(3)

	s.AdvanceDay()

	if s.LoopCount() != 5 || s.LoopPhase() != 1 {
		t.Errorf("Expected loop 5 phase 1, got loop %d phase %d", s.LoopCount(), s.LoopPhase())
	}
}

func TestSetCurrentDayOutOfRangeResets(t *testing.T) {
	s := New()
	for _, day := range []int{0, -2, 4, 99} {
		s.SetCurrentDay(2)
		s.SetCurrentDay(day)
		if s.CurrentDay() != 1 {
			t.Errorf("Day %d: expected defensive reset to 1, got %d", day, s.CurrentDay())
		}
	}
}

func TestCollectibles(t *testing.T) {
	s := New()

	if !s.FindClue(0) {
		t.Error("Expected first find to report new")
	}
	if s.FindClue(0) {
		t.Error("Expected repeat find to report not new")
	}
	if s.FindClue(constants.ClueCount) || s.FindClue(-1) {
		t.Error("Expected out-of-range clue ignored")
	}
	if !s.UnlockMemory(9) || s.UnlockMemory(10) {
		t.Error("Expected memory 9 unlock and memory 10 ignored")
	}
	if s.CluesFoundCount() != 1 || s.MemoriesUnlockedCount() != 1 {
		t.Errorf("Expected 1/1 collected, got %d/%d", s.CluesFoundCount(), s.MemoriesUnlockedCount())
	}
}

func TestStatusTexts(t *testing.T) {
	s := New()
	s.SetLoopCount(6)
	s.CheckPhaseTransition()
	s.ModifyAffection(Yutong, 85)
	s.ModifyAffection(Ziming, 25)
	s.FindClue(3)
	s.AddSecretLevel(2)

	status := s.StatusText()
	expectedStatus := "第6次循环【悬疑】\n理智: 85/100\n直觉: 30/100\n勇气: 40/100\n逻辑: 35/100"
	if status != expectedStatus {
		t.Errorf("Expected status %q, got %q", expectedStatus, status)
	}

	rel := s.RelationshipText()
	expectedRel := "人物关系:\n姜雨彤: ❤亲密\n侯子鸣: △认识"
	if rel != expectedRel {
		t.Errorf("Expected relationships %q, got %q", expectedRel, rel)
	}

	coll := s.CollectionText()
	expectedColl := "收集进度:\n线索: 1/20\n记忆: 0/10\n秘密等级: 2/5"
	if coll != expectedColl {
		t.Errorf("Expected collection %q, got %q", expectedColl, coll)
	}

	st := s.Stats()
	if st.Loops != 6 || st.YutongAffection != 85 || st.CluesFound != 1 {
		t.Errorf("Unexpected stats %+v", st)
	}
	if len(st.Lines()) != 5 {
		t.Errorf("Expected 5 stat lines, got %d", len(st.Lines()))
	}
}
