package scene

import (
	"strings"

	"github.com/lixenwraith/timeloop/gamedata"
)

// Kind is the closed set of scene behaviours
type Kind int

const (
	KindTitle Kind = iota
	KindGame
	KindEnding
)

func (k Kind) String() string {
	switch k {
	case KindTitle:
		return "title"
	case KindGame:
		return "game"
	case KindEnding:
		return "ending"
	default:
		return "unknown"
	}
}

// Tag names a scene: title, game or ending(kind)
// Ending is only meaningful for KindEnding
type Tag struct {
	Kind   Kind
	Ending gamedata.Ending
}

var (
	TagTitle = Tag{Kind: KindTitle}
	TagGame  = Tag{Kind: KindGame}
)

// EndingTag builds the tag of the ending scene for e
func EndingTag(e gamedata.Ending) Tag {
	return Tag{Kind: KindEnding, Ending: e}
}

// String renders the persisted scene name: title, game, ending_<kind>
func (t Tag) String() string {
	if t.Kind == KindEnding {
		return "ending_" + t.Ending.String()
	}
	return t.Kind.String()
}

const endingPrefix = "ending_"

// ParseTag reverses Tag.String
func ParseTag(name string) (Tag, bool) {
	switch name {
	case "title":
		return TagTitle, true
	case "game":
		return TagGame, true
	}
	if rest, ok := strings.CutPrefix(name, endingPrefix); ok {
		if e, ok := gamedata.ParseEnding(rest); ok {
			return EndingTag(e), true
		}
	}
	return Tag{}, false
}
