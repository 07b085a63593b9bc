// Package dialogue models narrative lines and the per-line typing reveal.
package dialogue

import "github.com/lixenwraith/timeloop/gamedata"

// Speaker identifies who says a line; classmates share ids with gamedata.CharacterID
type Speaker string

const (
	SpeakerPlayer  Speaker = "player"
	SpeakerTeacher Speaker = "teacher"
	SpeakerSystem  Speaker = "system"
	SpeakerUnknown Speaker = "unknown"

	SpeakerYutong    = Speaker(gamedata.Yutong)
	SpeakerBingcheng = Speaker(gamedata.Bingcheng)
	SpeakerZishuo    = Speaker(gamedata.Zishuo)
	SpeakerYicheng   = Speaker(gamedata.Yicheng)
	SpeakerHaochen   = Speaker(gamedata.Haochen)
	SpeakerYilin     = Speaker(gamedata.Yilin)
	SpeakerLinfeng   = Speaker(gamedata.Linfeng)
	SpeakerZiming    = Speaker(gamedata.Ziming)
)

// RGB is a 24-bit color packed as 0xRRGGBB
type RGB uint32

func (c RGB) R() uint8 { return uint8(c >> 16) }
func (c RGB) G() uint8 { return uint8(c >> 8) }
func (c RGB) B() uint8 { return uint8(c) }

// DefaultColor is used for speakers without an assigned color
const DefaultColor RGB = 0xFFFFFF

var speakerColors = map[Speaker]RGB{
	SpeakerPlayer:    0xC8DCFF,
	SpeakerYutong:    0xFFB4C8,
	SpeakerBingcheng: 0xFF6464,
	SpeakerZishuo:    0x64C8FF,
	SpeakerYicheng:   0xB4FFB4,
	SpeakerHaochen:   0xFFFF64,
	SpeakerYilin:     0xB4B4FF,
	SpeakerLinfeng:   0xFFC864,
	SpeakerZiming:    0x96DCDC,
	SpeakerTeacher:   0xDCDCDC,
	SpeakerSystem:    0xFFFF96,
	SpeakerUnknown:   0x969696,
}

var speakerNames = map[Speaker]string{
	SpeakerPlayer:  "玩家",
	SpeakerTeacher: "李老师",
	SpeakerSystem:  "系统",
	SpeakerUnknown: "???",
}

// Color returns the speaker's name color
func (s Speaker) Color() RGB {
	if c, ok := speakerColors[s]; ok {
		return c
	}
	return DefaultColor
}

// Name returns the display name; the player shows as playerName when one is set
func (s Speaker) Name(playerName string) string {
	if s == SpeakerPlayer && playerName != "" {
		return playerName
	}
	if name, ok := gamedata.CharacterID(s).Name(); ok {
		return name
	}
	if name, ok := speakerNames[s]; ok {
		return name
	}
	return "未知"
}
