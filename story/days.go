package story

import (
	"fmt"

	"github.com/lixenwraith/timeloop/dialogue"
	"github.com/lixenwraith/timeloop/gamedata"
)

const (
	toastClue          = "发现了线索！"
	toastImportantClue = "发现了重要线索！"
)

// Day builds the script for day from the current state
// Content depends on loop count and flags, so it is rebuilt on every entry
// Days outside 1..3 yield an empty script
func Day(s *gamedata.State, day int) Script {
	switch day {
	case 1:
		return day1(s)
	case 2:
		return day2(s)
	case 3:
		return day3(s)
	default:
		return Script{Day: day}
	}
}

func sys(text string) dialogue.Line     { return dialogue.Say(dialogue.SpeakerSystem, text) }
func thought(text string) dialogue.Line { return dialogue.Think(dialogue.SpeakerPlayer, text) }

func day1(s *gamedata.State) Script {
	sc := Script{Day: 1}
	loop := s.LoopCount()

	if loop == 1 {
		sc.Lines = []dialogue.Line{
			sys("九月二十七日 · 第一天 · 早晨"),
			thought("今天是我转学到二十七班的第一天。"),
			thought("站在校门前，看着'市第一中学'的牌子，心里有些紧张。"),
			sys("你深吸一口气，走进了校门..."),
		}
	} else {
		sc.Lines = []dialogue.Line{
			sys(fmt.Sprintf("第%d次循环 · 九月二十七日 · 早晨", loop)),
			thought("又回来了..."),
			thought("还是同样的校门，同样的九月二十七日。"),
		}
	}

	sc.Choices = []Choice{
		{
			Label: "直接去教室",
			Effect: Effect{
				Attributes: map[gamedata.Attribute]int{gamedata.Logic: 3},
				Affections: map[gamedata.CharacterID]int{gamedata.Yutong: 5},
				Flags:      []gamedata.Flag{gamedata.FlagMetYutong},
				Lines: []dialogue.Line{
					sys("你沿着熟悉（或不熟悉）的走廊走向二十七班..."),
					sys("走廊的墙壁上挂着历届优秀学生的照片，但有一张照片似乎...在微微闪烁？"),
					thought("（是我眼花了吗？）"),
					dialogue.Say(dialogue.SpeakerYutong, "你就是新来的转学生吧？我是班长姜雨彤。"),
				},
			},
		},
		{
			Label: "在校园里转转",
			Effect: Effect{
				Attributes: map[gamedata.Attribute]int{gamedata.Intuition: 5},
				Lines: []dialogue.Line{
					sys("你在校园里闲逛，注意到一些奇怪的细节..."),
					sys("操场上打篮球的学生，动作似乎有些僵硬。"),
				},
				Clues: []ClueDiscovery{{Index: 0, SecretBonus: 1, AfterLoop: 3, Toast: toastClue}},
			},
		},
	}

	if loop >= 3 {
		sc.Choices = append(sc.Choices, Choice{
			Label: "寻找异常之处",
			Effect: Effect{
				Attributes: map[gamedata.Attribute]int{gamedata.Sanity: -5, gamedata.Intuition: 8},
				Flags:      []gamedata.Flag{gamedata.FlagKnowsTimeLoop},
				Points:     map[gamedata.PointKind]int{gamedata.PointsEscape: 1},
				Lines:      []dialogue.Line{thought("（我必须找出这个循环的秘密...）")},
				Clues:      []ClueDiscovery{{Index: 1, SecretBonus: 2, OnlyIfNew: true, Toast: toastImportantClue}},
			},
		})
	}
	return sc
}

func day2(s *gamedata.State) Script {
	sc := Script{Day: 2}
	knows := s.KnowsTimeLoop()

	sc.Lines = append(sc.Lines, sys(fmt.Sprintf("第%d次循环 · 第二天 · 早晨", s.LoopCount())))
	if knows {
		sc.Lines = append(sc.Lines, thought("又开始了...但今天，我要找出真相。"))
	}

	sc.Choices = []Choice{
		{
			Label: "正常去学校",
			Effect: Effect{
				Flags: []gamedata.Flag{gamedata.FlagMetAllKings},
				Affections: map[gamedata.CharacterID]int{
					gamedata.Bingcheng: 3,
					gamedata.Zishuo:    3,
					gamedata.Yicheng:   3,
					gamedata.Haochen:   3,
				},
				Lines: []dialogue.Line{
					sys("你像往常一样走向学校..."),
					dialogue.Say(dialogue.SpeakerBingcheng, "哟，转学生！今天放学一起打球？"),
				},
			},
		},
		{
			Label: "尝试不同的路线",
			Effect: Effect{
				Attributes: map[gamedata.Attribute]int{gamedata.Intuition: 8},
				Points:     map[gamedata.PointKind]int{gamedata.PointsTragedy: 1},
				Memories:   []int{0},
				Lines: []dialogue.Line{
					sys("你尝试走不同的路线去学校..."),
					sys("路口的电线杆下，摆着一束早已枯萎的白菊。"),
				},
			},
		},
	}

	if knows {
		sc.Choices = append(sc.Choices, Choice{
			Label: "直接去找姜雨彤",
			Effect: Effect{
				Affections: map[gamedata.CharacterID]int{gamedata.Yutong: 15},
				Points:     map[gamedata.PointKind]int{gamedata.PointsRomantic: 2},
				Lines:      []dialogue.Line{sys("你直接跑到姜雨彤家楼下。")},
			},
		})
	}
	return sc
}

func day3(s *gamedata.State) Script {
	sc := Script{Day: 3}
	knows := s.KnowsTimeLoop()

	sc.Lines = append(sc.Lines, sys(fmt.Sprintf("第%d次循环 · 第三天 · 早晨", s.LoopCount())))
	if knows {
		sc.Lines = append(sc.Lines, thought("今天是最后的机会了...一定要救大家！"))
	}

	sc.Choices = []Choice{
		{
			Label: "前往天台",
			Effect: Effect{
				Attributes: map[gamedata.Attribute]int{gamedata.Sanity: -5},
				Points:     map[gamedata.PointKind]int{gamedata.PointsTragedy: 2},
				Flags:      []gamedata.Flag{gamedata.FlagConfrontedYilin},
				Memories:   []int{1},
				Lines: []dialogue.Line{
					sys("你来到了学校天台..."),
					dialogue.Say(dialogue.SpeakerYilin, "你也想起来了吗？三年前的今天。"),
				},
			},
		},
		{
			Label: "寻找其他线索",
			Effect: Effect{
				Attributes: map[gamedata.Attribute]int{gamedata.Intuition: 10},
				Points:     map[gamedata.PointKind]int{gamedata.PointsEscape: 2},
				Lines:      []dialogue.Line{sys("你在学校里寻找最后的线索...")},
				Clues:      []ClueDiscovery{{Index: 2, SecretBonus: 1, OnlyIfNew: true, Toast: toastClue}},
			},
		},
	}

	if knows && s.HasFlag(gamedata.FlagMetYutong) {
		sc.Choices = append(sc.Choices, Choice{
			Label: "和姜雨彤一起看夕阳",
			Effect: Effect{
				Affections: map[gamedata.CharacterID]int{gamedata.Yutong: 10},
				Points:     map[gamedata.PointKind]int{gamedata.PointsRomantic: 2},
				Lines: []dialogue.Line{
					dialogue.Say(dialogue.SpeakerYutong, "如果时间能一直停在这里就好了。"),
				},
			},
		})
	}
	return sc
}
