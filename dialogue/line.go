package dialogue

import "unicode/utf8"

// Line is one immutable line of narrative text
type Line struct {
	Speaker Speaker
	Text    string
	Thought bool
}

// Say builds a spoken line
func Say(speaker Speaker, text string) Line {
	return Line{Speaker: speaker, Text: text}
}

// Think builds an inner-monologue line
func Think(speaker Speaker, text string) Line {
	return Line{Speaker: speaker, Text: text, Thought: true}
}

// Len returns the line length in characters (runes)
func (l Line) Len() int {
	return utf8.RuneCountInString(l.Text)
}

// FullText renders "name: text", marking inner monologue
func (l Line) FullText(playerName string) string {
	prefix := ""
	if l.Thought {
		prefix = "（内心）"
	}
	return l.Speaker.Name(playerName) + prefix + ": " + l.Text
}
