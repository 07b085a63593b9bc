package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/timeloop/dialogue"
	"github.com/lixenwraith/timeloop/gamedata"
	"github.com/lixenwraith/timeloop/scene"
	"github.com/lixenwraith/timeloop/status"
	"github.com/lixenwraith/timeloop/story"
)

const (
	dialogueRows = 4
	maxToasts    = 3
)

var (
	styleBase      = tcell.StyleDefault
	styleStatus    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0x6A, 0x9E, 0xE5))
	styleToast     = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.NewRGBColor(0xFF, 0xFF, 0x96))
	styleTitle     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleNarrative = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xDD, 0xDD, 0xDD)).Italic(true)
	stylePanel     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0x6A, 0x9E, 0xE5)).Bold(true)
	styleChoice    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleChoiceKey = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0x6A, 0x9E, 0xE5)).Bold(true)
	styleBorder    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0x4A, 0x4E, 0x8C))
	styleDebug     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleThought   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xC8, 0xDC, 0xFF)).Italic(true)
)

type toastMsg struct {
	text  string
	until time.Time
}

// TUI renders scenes onto a tcell screen and shows toasts
// Presenter calls only record the view model; Draw paints it
type TUI struct {
	screen  tcell.Screen
	state   *gamedata.State
	metrics *status.Registry
	debug   bool
	now     func() time.Time

	line      dialogue.Line
	displayed string
	hasLine   bool

	choices []string
	entries []story.EndingEntry

	panelTitle string
	panelLines []string
	hasPanel   bool

	toasts []toastMsg
	prompt *prompt
}

var (
	_ scene.Presenter = (*TUI)(nil)
	_ scene.Notifier  = (*TUI)(nil)
)

// NewTUI creates a presenter drawing to screen
func NewTUI(screen tcell.Screen, state *gamedata.State, metrics *status.Registry, debug bool) *TUI {
	return &TUI{
		screen:  screen,
		state:   state,
		metrics: metrics,
		debug:   debug,
		now:     time.Now,
	}
}

func (u *TUI) ShowLine(line dialogue.Line, displayed string) {
	u.line = line
	u.displayed = displayed
	u.hasLine = true
}

func (u *TUI) ShowChoices(labels []string) {
	u.choices = append(u.choices[:0], labels...)
}

func (u *TUI) HideChoices() {
	u.choices = u.choices[:0]
}

func (u *TUI) ShowEndingEntry(entry story.EndingEntry) {
	u.hasLine = false
	u.entries = append(u.entries, entry)
}

func (u *TUI) ShowPanel(title string, lines []string) {
	u.panelTitle = title
	u.panelLines = append([]string(nil), lines...)
	u.hasPanel = true
}

func (u *TUI) HidePanel() {
	u.hasPanel = false
}

// Clear drops everything except toasts
func (u *TUI) Clear() {
	u.hasLine = false
	u.displayed = ""
	u.choices = u.choices[:0]
	u.entries = u.entries[:0]
	u.hasPanel = false
}

// Toast queues a message for d; the oldest is dropped past maxToasts
func (u *TUI) Toast(text string, d time.Duration) {
	u.toasts = append(u.toasts, toastMsg{text: text, until: u.now().Add(d)})
	if len(u.toasts) > maxToasts {
		u.toasts = u.toasts[len(u.toasts)-maxToasts:]
	}
}

func (u *TUI) expireToasts() {
	now := u.now()
	kept := u.toasts[:0]
	for _, t := range u.toasts {
		if now.Before(t.until) {
			kept = append(kept, t)
		}
	}
	u.toasts = kept
}

// Draw paints the whole view model and shows the frame
func (u *TUI) Draw() {
	u.expireToasts()
	u.screen.Clear()
	w, h := u.screen.Size()

	bottom := h
	if u.debug && u.metrics != nil {
		bottom--
		u.drawText(0, bottom, w, u.metrics.Line(), styleDebug)
	}

	if u.state != nil && u.state.CurrentState == scene.TagGame.String() {
		u.drawText(1, 0, w-1, strings.ReplaceAll(u.state.StatusText(), "\n", "  "), styleStatus)
	}

	u.drawEntries(w, bottom)

	choiceBottom := bottom
	if u.hasLine {
		choiceBottom = bottom - dialogueRows - 1
		u.drawDialogue(w, choiceBottom, bottom)
	}
	// The prompt replaces the menu it was opened from
	if u.prompt != nil {
		u.drawPrompt(w, h)
	} else {
		u.drawChoices(w, choiceBottom)
		if u.hasPanel {
			u.drawPanel(w, h)
		}
	}
	for i, t := range u.toasts {
		msg := " " + t.text + " "
		u.drawText(centerX(msg, w), 2+i, w, msg, styleToast)
	}

	u.screen.Show()
}

func (u *TUI) drawEntries(w, bottom int) {
	y := 3
	for _, e := range u.entries {
		style := styleNarrative
		switch e.Kind {
		case story.EntryTitle:
			style = styleTitle
		case story.EntryDialogue:
			style = speakerStyle(e.Speaker)
		}
		for _, l := range wrapText(e.Render(u.playerName()), w-4) {
			if y >= bottom-len(u.choices)-1 {
				return
			}
			u.drawText(centerX(l, w), y, w, l, style)
			y++
		}
		if e.Kind == story.EntryTitle {
			y++
		}
	}
}

func (u *TUI) drawDialogue(w, top, bottom int) {
	for x := 0; x < w; x++ {
		u.screen.SetContent(x, top, '─', nil, styleBorder)
	}

	name := u.line.Speaker.Name(u.playerName())
	if u.line.Thought {
		name += "（内心）"
	}
	u.drawText(2, top+1, w, name, speakerStyle(u.line.Speaker).Bold(true))

	textStyle := styleBase
	if u.line.Thought {
		textStyle = styleThought
	}
	y := top + 2
	for _, l := range wrapText(u.displayed, w-4) {
		if y >= bottom {
			break
		}
		u.drawText(2, y, w-2, l, textStyle)
		y++
	}
}

func (u *TUI) drawChoices(w, bottom int) {
	y := bottom - len(u.choices) - 1
	for i, label := range u.choices {
		key := fmt.Sprintf(" %d ", i+1)
		x := centerX(key+label, w)
		x = u.drawText(x, y+i, w, key, styleChoiceKey)
		u.drawText(x, y+i, w, label, styleChoice)
	}
}

func (u *TUI) drawPanel(w, h int) {
	top := h/2 - (len(u.panelLines)+2)/2
	if top < 1 {
		top = 1
	}
	u.drawText(centerX(u.panelTitle, w), top, w, u.panelTitle, stylePanel)
	for i, l := range u.panelLines {
		u.drawText(centerX(l, w), top+2+i, w, l, styleBase)
	}
}

func (u *TUI) playerName() string {
	if u.state == nil {
		return ""
	}
	return u.state.PlayerName
}

// drawText writes s from x on row y, clipping at maxX; returns the next free column
func (u *TUI) drawText(x, y, maxX int, s string, style tcell.Style) int {
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if x+rw > maxX {
			break
		}
		u.screen.SetContent(x, y, r, nil, style)
		x += rw
	}
	return x
}

func speakerStyle(sp dialogue.Speaker) tcell.Style {
	c := sp.Color()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R()), int32(c.G()), int32(c.B())))
}
