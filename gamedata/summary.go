package gamedata

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/timeloop/constants"
)

// StatusText renders the loop counter and the four attributes for the side panel
func (s *State) StatusText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "第%d次循环", s.loopCount)
	if s.loopPhase == 1 {
		b.WriteString("【悬疑】")
	}
	for _, a := range Attributes {
		fmt.Fprintf(&b, "\n%s: %d/%d", a.Label(), s.Attribute(a), constants.AttributeMax)
	}
	return b.String()
}

// RelationshipText lists characters the player has any positive affection with
func (s *State) RelationshipText() string {
	var b strings.Builder
	b.WriteString("人物关系:")
	for _, id := range Characters {
		if s.affections[id] <= 0 {
			continue
		}
		name, _ := id.Name()
		fmt.Fprintf(&b, "\n%s: %s", name, s.AffectionTier(id).Label())
	}
	return b.String()
}

// CollectionText renders collectible progress
func (s *State) CollectionText() string {
	return fmt.Sprintf("收集进度:\n线索: %d/%d\n记忆: %d/%d\n秘密等级: %d/%d",
		s.CluesFoundCount(), constants.ClueCount,
		s.MemoriesUnlockedCount(), constants.MemoryCount,
		s.secretLevel, constants.SecretLevelMax)
}

// Stats is the end-of-run summary shown from the ending scene
type Stats struct {
	Loops            int
	Sanity           int
	YutongAffection  int
	CluesFound       int
	MemoriesUnlocked int
}

// Stats collects the end-of-run summary
func (s *State) Stats() Stats {
	return Stats{
		Loops:            s.loopCount,
		Sanity:           s.sanity,
		YutongAffection:  s.Affection(Yutong),
		CluesFound:       s.CluesFoundCount(),
		MemoriesUnlocked: s.MemoriesUnlockedCount(),
	}
}

// Lines renders the summary one stat per line
func (st Stats) Lines() []string {
	return []string{
		fmt.Sprintf("循环次数: %d", st.Loops),
		fmt.Sprintf("最终理智: %d", st.Sanity),
		fmt.Sprintf("姜雨彤好感度: %d", st.YutongAffection),
		fmt.Sprintf("发现的线索: %d/%d", st.CluesFound, constants.ClueCount),
		fmt.Sprintf("解锁的记忆: %d/%d", st.MemoriesUnlocked, constants.MemoryCount),
	}
}
