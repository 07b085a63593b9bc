package story

import (
	"fmt"

	"github.com/lixenwraith/timeloop/constants"
	"github.com/lixenwraith/timeloop/dialogue"
	"github.com/lixenwraith/timeloop/gamedata"
)

// EntryKind selects how an ending entry is presented
type EntryKind int

const (
	EntryTitle EntryKind = iota
	EntryNarrative
	EntryDialogue
)

func (k EntryKind) String() string {
	switch k {
	case EntryTitle:
		return "title"
	case EntryNarrative:
		return "narrative"
	case EntryDialogue:
		return "dialogue"
	default:
		return "unknown"
	}
}

// EndingEntry is one revealed line of an ending
type EndingEntry struct {
	Kind    EntryKind
	Speaker dialogue.Speaker
	Text    string
}

// Render formats the entry for display, prefixing dialogue with the speaker name
func (e EndingEntry) Render(playerName string) string {
	if e.Kind == EntryDialogue {
		return e.Speaker.Name(playerName) + ": " + e.Text
	}
	return e.Text
}

func title(text string) EndingEntry     { return EndingEntry{Kind: EntryTitle, Text: text} }
func narrative(text string) EndingEntry { return EndingEntry{Kind: EntryNarrative, Text: text} }
func line(sp dialogue.Speaker, text string) EndingEntry {
	return EndingEntry{Kind: EntryDialogue, Speaker: sp, Text: text}
}

// Ending returns the ending script for kind; unknown kinds fall back to eternal
func Ending(kind gamedata.Ending, s *gamedata.State) []EndingEntry {
	switch kind {
	case gamedata.EndingRomantic:
		return []EndingEntry{
			title("【浪漫结局：永恒的陪伴】"),
			narrative(fmt.Sprintf("经历了%d次循环后...", s.LoopCount())),
			line(dialogue.SpeakerYutong, "我决定了...与其冒险让大家消失，"),
			line(dialogue.SpeakerYutong, "不如就维持这个循环。"),
			line(dialogue.SpeakerYutong, "因为这样...就能永远和你在一起了。"),
			line(dialogue.SpeakerPlayer, "（握住她的手）即使时间永远停留在这一天..."),
			line(dialogue.SpeakerPlayer, "只要有你在身边，就够了。"),
			narrative("你们牵着手，看着永远停留在八点十五分的夕阳。"),
			narrative("在这个永恒的九月二十七日，"),
			narrative("你们找到了属于彼此的永恒。"),
		}
	case gamedata.EndingTragic:
		return []EndingEntry{
			title("【悲剧结局：无法改变的过去】"),
			narrative("你知道了三年前的真相..."),
			line(dialogue.SpeakerYutong, "（跪倒在地，失声痛哭）为什么...为什么就是救不了大家..."),
			narrative("最终，你们决定维持这个悲伤的循环。"),
			narrative("在永远的九月二十七日里，"),
			narrative("守护着那些早已消逝的笑容。"),
		}
	case gamedata.EndingEscape:
		return []EndingEntry{
			title("【逃脱结局：打破循环的勇者】"),
			narrative("你们找到了打破循环的关键..."),
			line(dialogue.SpeakerYutong, "根据侯子鸣的计算，要打破循环需要满足三个条件："),
			narrative("在所有人的共同努力下，循环开始出现裂痕..."),
			narrative("时间开始流动，九月的风终于吹向了二十八日。"),
			narrative("虽然大家终究要分别，"),
			narrative("但至少...他们可以真正地安息了。"),
		}
	case gamedata.EndingNightmare:
		return []EndingEntry{
			title("【噩梦结局：破碎的理智】"),
			narrative("你的理智已经崩溃了..."),
			line(dialogue.SpeakerPlayer, "（自言自语）谁是真的？谁是假的？"),
			narrative("世界开始扭曲变形。"),
			narrative("同学的脸变成了模糊的面具。"),
			narrative("最终，你发现自己站在空无一人的教室里。"),
			narrative("而你的面前，是一面破碎的镜子。"),
			narrative("镜中的你，正在对你微笑..."),
		}
	default:
		return []EndingEntry{
			title("【永恒结局：无尽的轮回】"),
			narrative(fmt.Sprintf("第%d次循环...", constants.MaxLoops)),
			line(dialogue.SpeakerYutong, "（表情空洞）我累了..."),
			line(dialogue.SpeakerYutong, "真的...太累了。"),
			narrative("循环还在继续，但有些东西已经消失了。"),
			narrative("姜雨彤的记忆在逐渐褪色，"),
			narrative("连带着整个世界的真实感。"),
			narrative("也许有一天，你们都会变成"),
			narrative("连自己是谁都忘记的投影。"),
		}
	}
}
