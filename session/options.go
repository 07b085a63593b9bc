package session

import (
	"github.com/lixenwraith/timeloop/engine"
	"github.com/lixenwraith/timeloop/gamedata"
	"github.com/lixenwraith/timeloop/scene"
	"github.com/lixenwraith/timeloop/status"
)

// Option configures a Controller
type Option func(*Controller)

// WithStore sets the persistence provider and save slot
func WithStore(store gamedata.Store, key string) Option {
	return func(c *Controller) {
		c.env.Store = store
		c.env.SaveKey = key
	}
}

// WithTimeSource sets the source of both game time and save timestamps
func WithTimeSource(tp engine.TimeProvider) Option {
	return func(c *Controller) {
		c.clock = engine.NewPausableClock(tp)
		c.state.SetClock(tp.Now)
	}
}

// WithPresenter sets the renderer
func WithPresenter(p scene.Presenter) Option {
	return func(c *Controller) { c.env.Presenter = p }
}

// WithNotifier sets the toast surface
func WithNotifier(n scene.Notifier) Option {
	return func(c *Controller) { c.env.Notifier = n }
}

// WithSound sets the cue player
func WithSound(s scene.Sound) Option {
	return func(c *Controller) { c.env.Sound = s }
}

// WithMetrics publishes session metrics to r
func WithMetrics(r *status.Registry) Option {
	return func(c *Controller) { c.metrics = r }
}

// WithCharsPerSecond sets the typing speed of dialogue lines
func WithCharsPerSecond(cps int) Option {
	return func(c *Controller) { c.env.CharsPerSecond = cps }
}

// WithFallbackEndsRun controls whether the fallback eternal result of the
// ending evaluation ends the run; enabled by default
func WithFallbackEndsRun(enabled bool) Option {
	return func(c *Controller) { c.fallbackEndsRun = enabled }
}

// WithNewGameHandler is called when the title menu requests a new game,
// typically to prompt for a name and gender before StartNewGame
func WithNewGameHandler(fn func()) Option {
	return func(c *Controller) { c.onNewGame = fn }
}

// WithRegistry replaces the scene behaviours; nil entries are not allowed
func WithRegistry(build func(env *scene.Env) *scene.Registry) Option {
	return func(c *Controller) { c.buildRegistry = build }
}
