package session

import (
	"github.com/lixenwraith/timeloop/scene"
	"github.com/lixenwraith/timeloop/status"
)

// Pause menu option indices
const (
	PauseOptionResume = iota
	PauseOptionSave
	PauseOptionLoad
	PauseOptionTitle
)

// PauseOptions are the pause menu labels
var PauseOptions = []string{"继续游戏", "保存游戏", "读取游戏", "返回标题"}

// Pause freezes game time and shows the pause menu
func (c *Controller) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.clock.Pause()
	c.metrics.Bools.Get(status.KeyPaused).Store(true)
	c.env.Presenter.ShowPanel("游戏暂停", PauseOptions)
}

// Unpause resumes game time
func (c *Controller) Unpause() {
	if !c.paused {
		return
	}
	c.paused = false
	c.clock.Resume()
	c.metrics.Bools.Get(status.KeyPaused).Store(false)
	c.metrics.Floats.Get(status.KeyPausedMs).Set(float64(c.clock.TotalPauseDuration().Milliseconds()))
	c.env.Presenter.HidePanel()
	c.redraw()
}

// TogglePause flips between paused and running
func (c *Controller) TogglePause() {
	if c.paused {
		c.Unpause()
	} else {
		c.Pause()
	}
}

// IsPaused reports whether the pause menu is open
func (c *Controller) IsPaused() bool { return c.paused }

// selectPauseOption runs a pause menu entry; any valid entry closes the menu
func (c *Controller) selectPauseOption(i int) {
	if i < 0 || i >= len(PauseOptions) {
		return
	}
	c.Unpause()

	switch i {
	case PauseOptionSave:
		c.HandleSave()
	case PauseOptionLoad:
		c.LoadGame()
	case PauseOptionTitle:
		c.SwitchScene(scene.TagTitle, scene.Params{})
	}
}

// redraw re-presents the active scene after the menu overlay closes
func (c *Controller) redraw() {
	if r, ok := c.active.(scene.Redrawer); ok {
		r.Redraw()
	}
}
