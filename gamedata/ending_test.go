package gamedata

import "testing"

func TestDetermineEndingPriority(t *testing.T) {
	tests := []struct {
		name          string
		setup         func(s *State)
		expected      Ending
		expectedMatch bool
	}{
		{
			name:          "Fresh state falls back to eternal",
			setup:         func(s *State) {},
			expected:      EndingEternal,
			expectedMatch: false,
		},
		{
			name: "Loop cap beats tragedy",
			setup: func(s *State) {
				s.SetLoopCount(15)
				s.AddPoints(PointsTragedy, 8)
			},
			expected:      EndingEternal,
			expectedMatch: true,
		},
		{
			name: "Romantic needs points and affection",
			setup: func(s *State) {
				s.AddPoints(PointsRomantic, 8)
				s.ModifyAffection(Yutong, 80)
				s.AddPoints(PointsTragedy, 8)
			},
			expected:      EndingRomantic,
			expectedMatch: true,
		},
		{
			name: "Romantic points without affection",
			setup: func(s *State) {
				s.AddPoints(PointsRomantic, 12)
				s.ModifyAffection(Yutong, 79)
			},
			expected:      EndingEternal,
			expectedMatch: false,
		},
		{
			name: "Tragic by points",
			setup: func(s *State) {
				s.AddPoints(PointsTragedy, 8)
			},
			expected:      EndingTragic,
			expectedMatch: true,
		},
		{
			name: "Tragic by sanity beats escape",
			setup: func(s *State) {
				s.ModifySanity(-65)
				s.AddPoints(PointsEscape, 8)
				s.SetFlag(FlagKnowsTimeLoop)
			},
			expected:      EndingTragic,
			expectedMatch: true,
		},
		{
			name: "Escape requires knowing the loop",
			setup: func(s *State) {
				s.AddPoints(PointsEscape, 8)
			},
			expected:      EndingEternal,
			expectedMatch: false,
		},
		{
			name: "Escape",
			setup: func(s *State) {
				s.AddPoints(PointsEscape, 9)
				s.SetFlag(FlagKnowsTimeLoop)
			},
			expected:      EndingEscape,
			expectedMatch: true,
		},
		{
			name: "Sanity ten is claimed by tragic first",
			setup: func(s *State) {
				s.ModifySanity(-75)
			},
			expected:      EndingTragic,
			expectedMatch: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			tt.setup(s)

			if got := s.DetermineEnding(); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
			if _, matched := s.MatchEnding(); matched != tt.expectedMatch {
				t.Errorf("Expected matched=%v, got %v", tt.expectedMatch, matched)
			}
		})
	}
}

func TestParseEnding(t *testing.T) {
	for _, e := range Endings {
		got, ok := ParseEnding(e.String())
		if !ok || got != e {
			t.Errorf("Expected %s to parse back, got %s (%v)", e, got, ok)
		}
	}
	if _, ok := ParseEnding("none"); ok {
		t.Error("Expected none to be rejected")
	}
}
