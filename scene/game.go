package scene

import (
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/timeloop/constants"
	"github.com/lixenwraith/timeloop/dialogue"
	"github.com/lixenwraith/timeloop/story"
)

// Game drives one story day at a time: lines, then a branch point, then the next day
type Game struct {
	env *Env

	day     int
	lines   []dialogue.Line
	choices []story.Choice
	index   int

	typer        *dialogue.Typer
	awaiting     bool
	lastRevealed int
}

// NewGame creates the progression scene over env
func NewGame(env *Env) *Game {
	env = env.withDefaults()
	return &Game{
		env:   env,
		typer: dialogue.NewTyper(env.CharsPerSecond),
	}
}

// Init enters p.Day, or the state's current day when zero
func (g *Game) Init(p Params) {
	day := p.Day
	if day == 0 {
		day = g.env.State.CurrentDay()
	}
	g.env.State.SetCurrentDay(day)
	g.loadDay()
}

// loadDay rebuilds the script for the current day from state
func (g *Game) loadDay() {
	g.day = g.env.State.CurrentDay()
	script := story.Day(g.env.State, g.day)

	g.lines = append(g.lines[:0], script.Lines...)
	g.choices = script.Choices
	g.index = 0
	g.awaiting = false

	g.showCurrent()
}

func (g *Game) showCurrent() {
	if g.index >= len(g.lines) {
		g.showChoices()
		return
	}
	g.typer.Start(g.lines[g.index], g.env.Clock.Now())
	g.lastRevealed = 0
	g.env.Presenter.ShowLine(g.lines[g.index], g.typer.Displayed())
}

func (g *Game) showChoices() {
	if len(g.choices) == 0 {
		g.progressToNextDay()
		return
	}
	labels := make([]string, len(g.choices))
	for i, c := range g.choices {
		labels[i] = c.Label
	}
	g.awaiting = true
	g.env.Presenter.ShowChoices(labels)
}

// progressToNextDay advances the day, saving and announcing on loop wrap
func (g *Game) progressToNextDay() {
	st := g.env.State
	if st.AdvanceDay() {
		if st.Save(g.env.Store, g.env.SaveKey) {
			toast(g.env, story.Toast{
				Text:     fmt.Sprintf("第%d次循环开始", st.LoopCount()),
				Duration: constants.ToastLoopDuration,
			})
		} else {
			toast(g.env, story.Toast{Text: "保存失败", Duration: constants.ToastSaveDuration})
		}
		log.Printf("scene: loop %d started", st.LoopCount())
	}
	g.loadDay()
}

// Continue skips the typing reveal or moves to the next line
// Blocked while a choice is pending
func (g *Game) Continue() {
	if g.awaiting {
		return
	}
	if g.index >= len(g.lines) {
		g.showChoices()
		return
	}
	if g.typer.IsTyping() {
		g.typer.Skip()
		g.env.Presenter.ShowLine(g.typer.Line(), g.typer.Displayed())
		return
	}
	g.index++
	g.showCurrent()
}

// HasChoices reports whether a branch point awaits selection
func (g *Game) HasChoices() bool {
	return g.awaiting && len(g.choices) > 0
}

// SelectChoice applies choice i; out-of-range or unexpected selections are ignored
func (g *Game) SelectChoice(i int) {
	if !g.HasChoices() || i < 0 || i >= len(g.choices) {
		return
	}
	choice := g.choices[i]
	g.choices = nil
	g.awaiting = false
	g.env.Presenter.HideChoices()

	out := story.Apply(g.env.State, choice.Effect)
	g.lines = append(g.lines, out.Lines...)
	for _, t := range out.Toasts {
		toast(g.env, t)
	}

	g.showCurrent()
}

// Update advances the typing reveal on game time
func (g *Game) Update(dt time.Duration) {
	if !g.typer.IsTyping() {
		return
	}
	g.typer.Advance(g.env.Clock.Now())
	if n := g.typer.DisplayedLen(); n != g.lastRevealed {
		g.lastRevealed = n
		g.env.Presenter.ShowLine(g.typer.Line(), g.typer.Displayed())
		g.env.Sound.Blip()
	}
}

// Teardown drops any pending branch point
func (g *Game) Teardown() {
	g.choices = nil
	g.awaiting = false
	g.env.Presenter.HideChoices()
}

// Day returns the day being played
func (g *Game) Day() int { return g.day }

// Index returns the line cursor
func (g *Game) Index() int { return g.index }

// Lines returns the current line sequence
func (g *Game) Lines() []dialogue.Line { return g.lines }

// ChoiceLabels returns the pending choice labels
func (g *Game) ChoiceLabels() []string {
	labels := make([]string, len(g.choices))
	for i, c := range g.choices {
		labels[i] = c.Label
	}
	return labels
}

// IsTyping reports whether the current line is still being revealed
func (g *Game) IsTyping() bool { return g.typer.IsTyping() }

// Redraw re-presents the current line or pending choices
func (g *Game) Redraw() {
	if g.awaiting {
		g.env.Presenter.ShowChoices(g.ChoiceLabels())
		return
	}
	if g.index < len(g.lines) {
		g.env.Presenter.ShowLine(g.typer.Line(), g.typer.Displayed())
	}
}
