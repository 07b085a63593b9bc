// Package scene implements the scene behaviours selected by tag: the title
// menu, the day-by-day story progression and the ending reveal
package scene

import (
	"time"

	"github.com/lixenwraith/timeloop/constants"
	"github.com/lixenwraith/timeloop/dialogue"
	"github.com/lixenwraith/timeloop/engine"
	"github.com/lixenwraith/timeloop/gamedata"
	"github.com/lixenwraith/timeloop/story"
)

// Params are passed to a scene on activation
type Params struct {
	// Day selects the game day; zero continues from the state's current day
	Day int
	// Ending selects the ending script for ending scenes
	Ending gamedata.Ending
}

// Scene is the capability every scene behaviour provides
type Scene interface {
	Init(p Params)
	Update(dt time.Duration)
	Teardown()
}

// DialogueScene is a scene driven by continue and choice input
type DialogueScene interface {
	Scene
	Continue()
	SelectChoice(i int)
	HasChoices() bool
}

// Redrawer is implemented by scenes that can re-present themselves after an overlay closes
type Redrawer interface {
	Redraw()
}

// Presenter renders scene output; all calls are fire-and-forget
type Presenter interface {
	// ShowLine shows line with only displayed visible
	ShowLine(line dialogue.Line, displayed string)
	ShowChoices(labels []string)
	HideChoices()
	ShowEndingEntry(entry story.EndingEntry)
	// ShowPanel shows a titled list such as statistics, credits or a menu
	ShowPanel(title string, lines []string)
	HidePanel()
	Clear()
}

// Notifier shows ephemeral toast messages
type Notifier interface {
	Toast(text string, d time.Duration)
}

// Sound plays short cues
type Sound interface {
	Blip()
	Chime()
}

// Navigator performs session-level transitions requested from inside a scene
type Navigator interface {
	RequestNewGame()
	ContinueGame() bool
	ReturnToTitle()
	Restart()
	ShowStats()
	Quit()
}

// Env is the shared context scenes operate on
type Env struct {
	State   *gamedata.State
	Store   gamedata.Store
	SaveKey string
	Clock   engine.TimeProvider

	Presenter Presenter
	Notifier  Notifier
	Sound     Sound
	Navigator Navigator

	CharsPerSecond int
}

// withDefaults fills missing collaborators with no-op implementations
func (e *Env) withDefaults() *Env {
	out := *e
	if out.State == nil {
		out.State = gamedata.New()
	}
	if out.SaveKey == "" {
		out.SaveKey = constants.DefaultSaveKey
	}
	if out.Clock == nil {
		out.Clock = engine.NewMonotonicTimeProvider()
	}
	if out.Presenter == nil {
		out.Presenter = NopPresenter{}
	}
	if out.Notifier == nil {
		out.Notifier = NopNotifier{}
	}
	if out.Sound == nil {
		out.Sound = NopSound{}
	}
	if out.Navigator == nil {
		out.Navigator = NopNavigator{}
	}
	return &out
}

// NopPresenter discards output
type NopPresenter struct{}

func (NopPresenter) ShowLine(dialogue.Line, string) {}
func (NopPresenter) ShowChoices([]string) {}
func (NopPresenter) HideChoices() {}
func (NopPresenter) ShowEndingEntry(story.EndingEntry) {}
func (NopPresenter) ShowPanel(string, []string) {}
func (NopPresenter) HidePanel() {}
func (NopPresenter) Clear() {}

// NopNotifier discards toasts
type NopNotifier struct{}

func (NopNotifier) Toast(string, time.Duration) {}

// NopSound is silent
type NopSound struct{}

func (NopSound) Blip() {}
func (NopSound) Chime() {}

// NopNavigator ignores transition requests
type NopNavigator struct{}

func (NopNavigator) RequestNewGame() {}
func (NopNavigator) ContinueGame() bool { return false }
func (NopNavigator) ReturnToTitle() {}
func (NopNavigator) Restart() {}
func (NopNavigator) ShowStats() {}
func (NopNavigator) Quit() {}

func toast(env *Env, t story.Toast) {
	env.Notifier.Toast(t.Text, t.Duration)
	env.Sound.Chime()
}
