package scene

import (
	"time"

	"github.com/lixenwraith/timeloop/constants"
	"github.com/lixenwraith/timeloop/gamedata"
	"github.com/lixenwraith/timeloop/story"
)

// Ending option indices
const (
	EndingOptionTitle = iota
	EndingOptionRestart
	EndingOptionStats
)

// EndingOptions are offered once every entry is revealed
var EndingOptions = []string{"返回标题", "重新开始", "查看统计"}

// Ending reveals an ending script one entry per interval of game time
type Ending struct {
	env *Env

	kind     gamedata.Ending
	entries  []story.EndingEntry
	revealed int
	elapsed  time.Duration
	options  bool
}

// NewEnding creates the ending scene over env
func NewEnding(env *Env) *Ending {
	return &Ending{env: env.withDefaults()}
}

// Init loads the script for p.Ending and shows its first entry
func (e *Ending) Init(p Params) {
	e.kind = p.Ending
	if e.kind == gamedata.EndingNone {
		e.kind = gamedata.EndingEternal
	}
	e.entries = story.Ending(e.kind, e.env.State)
	e.revealed = 0
	e.elapsed = 0
	e.options = false

	e.env.Presenter.Clear()
	e.revealNext()
}

func (e *Ending) revealNext() {
	if e.revealed >= len(e.entries) {
		e.showOptions()
		return
	}
	e.env.Presenter.ShowEndingEntry(e.entries[e.revealed])
	e.revealed++
}

func (e *Ending) showOptions() {
	if e.options {
		return
	}
	e.options = true
	e.env.Presenter.ShowChoices(EndingOptions)
}

// Update reveals the entries that are due
func (e *Ending) Update(dt time.Duration) {
	if e.options || dt <= 0 {
		return
	}
	e.elapsed += dt
	for e.elapsed >= constants.EndingLineInterval && !e.options {
		e.elapsed -= constants.EndingLineInterval
		e.revealNext()
	}
}

// Continue reveals the next entry immediately, or closes an open panel once options are shown
func (e *Ending) Continue() {
	if e.options {
		e.env.Presenter.HidePanel()
		return
	}
	e.elapsed = 0
	e.revealNext()
}

// HasChoices reports whether the closing options are shown
func (e *Ending) HasChoices() bool {
	return e.options
}

// SelectChoice runs a closing option: title, restart or statistics
func (e *Ending) SelectChoice(i int) {
	if !e.options {
		return
	}
	switch i {
	case EndingOptionTitle:
		e.env.Navigator.ReturnToTitle()
	case EndingOptionRestart:
		e.env.Navigator.Restart()
	case EndingOptionStats:
		e.env.Navigator.ShowStats()
	}
}

// Teardown hides the closing options
func (e *Ending) Teardown() {
	e.options = false
	e.env.Presenter.HideChoices()
}

// Kind returns the ending being shown
func (e *Ending) Kind() gamedata.Ending { return e.kind }

// Revealed returns the number of entries shown so far
func (e *Ending) Revealed() int { return e.revealed }

// Total returns the number of entries in the script
func (e *Ending) Total() int { return len(e.entries) }

// Redraw re-presents the revealed entries and options
func (e *Ending) Redraw() {
	e.env.Presenter.Clear()
	for _, entry := range e.entries[:e.revealed] {
		e.env.Presenter.ShowEndingEntry(entry)
	}
	if e.options {
		e.env.Presenter.ShowChoices(EndingOptions)
	}
}
