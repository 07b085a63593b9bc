// Package session owns the active scene and routes input and ticks to it
package session

import (
	"log"
	"time"

	"github.com/lixenwraith/timeloop/constants"
	"github.com/lixenwraith/timeloop/engine"
	"github.com/lixenwraith/timeloop/gamedata"
	"github.com/lixenwraith/timeloop/scene"
	"github.com/lixenwraith/timeloop/status"
)

// Controller holds the active scene and the persistent state
// Not safe for concurrent use; drive it from a single loop goroutine
type Controller struct {
	state    *gamedata.State
	env      *scene.Env
	registry *scene.Registry
	clock    *engine.PausableClock
	metrics  *status.Registry

	active    scene.Scene
	activeTag scene.Tag
	hasActive bool

	fallbackEndsRun bool
	paused          bool
	quitting        bool

	onNewGame     func()
	buildRegistry func(env *scene.Env) *scene.Registry
}

// New creates a controller over state; nothing is active until SwitchScene or Resume
func New(state *gamedata.State, opts ...Option) *Controller {
	if state == nil {
		state = gamedata.New()
	}
	c := &Controller{
		state:           state,
		env:             &scene.Env{State: state, SaveKey: constants.DefaultSaveKey},
		fallbackEndsRun: true,
		buildRegistry:   scene.NewDefaultRegistry,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.clock == nil {
		c.clock = engine.NewPausableClock(nil)
	}
	if c.metrics == nil {
		c.metrics = status.NewRegistry()
	}
	if c.env.Presenter == nil {
		c.env.Presenter = scene.NopPresenter{}
	}
	if c.env.Notifier == nil {
		c.env.Notifier = scene.NopNotifier{}
	}
	if c.env.Sound == nil {
		c.env.Sound = scene.NopSound{}
	}
	c.env.Clock = c.clock
	c.env.Navigator = c
	c.registry = c.buildRegistry(c.env)
	return c
}

// State returns the persistent state
func (c *Controller) State() *gamedata.State { return c.state }

// Metrics returns the metrics registry
func (c *Controller) Metrics() *status.Registry { return c.metrics }

// Clock returns the pausable game clock
func (c *Controller) Clock() *engine.PausableClock { return c.clock }

// ActiveTag returns the tag of the active scene
func (c *Controller) ActiveTag() (scene.Tag, bool) { return c.activeTag, c.hasActive }

// ActiveScene returns the active scene behaviour
func (c *Controller) ActiveScene() scene.Scene { return c.active }

// SwitchScene tears down the active scene and activates tag with params
// Unknown tags leave the current scene running and return false
func (c *Controller) SwitchScene(tag scene.Tag, params scene.Params) bool {
	next, ok := c.registry.Lookup(tag)
	if !ok {
		log.Printf("Switch to unregistered scene %s ignored", tag)
		return false
	}
	if tag.Kind == scene.KindEnding {
		params.Ending = tag.Ending
	}

	if c.active != nil {
		c.active.Teardown()
	}
	c.active = next
	c.activeTag = tag
	c.hasActive = true
	c.state.CurrentState = tag.String()
	c.metrics.Strings.Get(status.KeySceneActive).Store(tag.String())

	next.Init(params)
	return true
}

func (c *Controller) dialogueScene() (scene.DialogueScene, bool) {
	if c.active == nil {
		return nil, false
	}
	ds, ok := c.active.(scene.DialogueScene)
	return ds, ok
}

// HandleContinue forwards a continue input to a dialogue-driven scene
func (c *Controller) HandleContinue() {
	if c.paused {
		return
	}
	if ds, ok := c.dialogueScene(); ok {
		ds.Continue()
	}
}

// HandleChoiceSelect forwards a choice to the pause menu or to the active scene
func (c *Controller) HandleChoiceSelect(i int) {
	if c.paused {
		c.selectPauseOption(i)
		return
	}
	if ds, ok := c.dialogueScene(); ok && ds.HasChoices() {
		ds.SelectChoice(i)
	}
}

// HandleSave saves to the configured slot and toasts the outcome
func (c *Controller) HandleSave() bool {
	ok := c.save()
	if ok {
		c.env.Notifier.Toast("游戏已保存", constants.ToastSaveDuration)
	} else {
		c.env.Notifier.Toast("保存失败", constants.ToastSaveDuration)
	}
	return ok
}

func (c *Controller) save() bool {
	if c.state.Save(c.env.Store, c.env.SaveKey) {
		c.metrics.Inc(status.KeySaveOK)
		return true
	}
	c.metrics.Inc(status.KeySaveFailed)
	return false
}

func (c *Controller) load() bool {
	if c.state.Load(c.env.Store, c.env.SaveKey) {
		c.metrics.Inc(status.KeyLoadOK)
		return true
	}
	c.metrics.Inc(status.KeyLoadFailed)
	return false
}

// Tick updates the active scene and runs the ending check
// Ticks are ignored while paused
func (c *Controller) Tick(dt time.Duration) {
	if c.paused || c.active == nil {
		return
	}
	c.metrics.Inc(status.KeyTicks)

	c.active.Update(dt)
	c.checkEnding()

	c.metrics.Ints.Get(status.KeyLoopCount).Store(int64(c.state.LoopCount()))
}

// checkEnding switches to the matching ending while a run is in its final day
// Only Tick calls it, so a load always completes before the state is judged
// Leaving the game scene disarms the check, so each ending fires once
func (c *Controller) checkEnding() {
	if !c.hasActive || c.activeTag.Kind != scene.KindGame {
		return
	}
	if c.state.CurrentDay() < constants.EndingCheckDay {
		return
	}

	ending, matched := c.state.MatchEnding()
	if !matched && !c.fallbackEndsRun {
		return
	}
	target := scene.EndingTag(ending)
	if c.activeTag == target {
		return
	}
	log.Printf("Ending reached: %s after %d loops", ending, c.state.LoopCount())
	c.SwitchScene(target, scene.Params{})
}

// StartNewGame resets the state for a new player and enters day 1
func (c *Controller) StartNewGame(name string, gender gamedata.Gender) {
	c.state.Reset()
	c.state.PlayerName = name
	c.state.PlayerGender = gender
	if gender == gamedata.GenderMale {
		c.state.ModifyCourage(constants.GenderBonus)
	} else {
		c.state.ModifyIntuition(constants.GenderBonus)
	}
	c.SwitchScene(scene.TagGame, scene.Params{Day: 1})
}

// RequestNewGame asks the frontend for player details, or starts an anonymous game
func (c *Controller) RequestNewGame() {
	if c.onNewGame != nil {
		c.onNewGame()
		return
	}
	c.StartNewGame("", gamedata.GenderOther)
}

// ContinueGame loads the save slot and resumes on its current day
func (c *Controller) ContinueGame() bool {
	if !c.load() {
		return false
	}
	c.SwitchScene(scene.TagGame, scene.Params{Day: c.state.CurrentDay()})
	return true
}

// LoadGame reloads the save slot with a toast for either outcome
func (c *Controller) LoadGame() bool {
	if !c.ContinueGame() {
		c.env.Notifier.Toast("读取失败", constants.ToastSaveDuration)
		return false
	}
	c.env.Notifier.Toast("游戏已读取", constants.ToastSaveDuration)
	return true
}

// Resume loads the save slot and reopens the scene it was saved in
// Falls back to the title when nothing can be loaded
func (c *Controller) Resume() bool {
	if !c.load() {
		c.SwitchScene(scene.TagTitle, scene.Params{})
		return false
	}
	tag, ok := scene.ParseTag(c.state.CurrentState)
	if !ok || tag.Kind == scene.KindTitle {
		tag = scene.TagGame
	}
	c.SwitchScene(tag, scene.Params{Day: c.state.CurrentDay()})
	return true
}

// ReturnToTitle clears the run and shows the title
func (c *Controller) ReturnToTitle() {
	c.state.Reset()
	c.SwitchScene(scene.TagTitle, scene.Params{})
}

// Restart begins a fresh run for the same player
func (c *Controller) Restart() {
	c.StartNewGame(c.state.PlayerName, c.state.PlayerGender)
}

// ShowStats presents the run statistics
func (c *Controller) ShowStats() {
	c.env.Presenter.ShowPanel("游戏统计", c.state.Stats().Lines())
}

// Quit marks the session finished; the frontend loop polls Quitting
func (c *Controller) Quit() { c.quitting = true }

// Quitting reports whether Quit was requested
func (c *Controller) Quitting() bool { return c.quitting }

// Autosave saves silently while a run is in progress
func (c *Controller) Autosave() bool {
	if c.state.CurrentState != scene.TagGame.String() {
		return false
	}
	return c.save()
}
