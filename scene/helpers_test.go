package scene

import (
	"time"

	"github.com/lixenwraith/timeloop/dialogue"
	"github.com/lixenwraith/timeloop/engine"
	"github.com/lixenwraith/timeloop/gamedata"
	"github.com/lixenwraith/timeloop/storage"
	"github.com/lixenwraith/timeloop/story"
)

const testKey = "timeLoopGameSave"

type recorder struct {
	lines   []string
	choices [][]string
	entries []story.EndingEntry
	panels  []string
	toasts  []string
	hidden  int
	clears  int
	blips   int
	chimes  int
}

func (r *recorder) ShowLine(l dialogue.Line, displayed string) { r.lines = append(r.lines, displayed) }
func (r *recorder) ShowChoices(labels []string) { r.choices = append(r.choices, labels) }
func (r *recorder) HideChoices() { r.hidden++ }
func (r *recorder) ShowEndingEntry(e story.EndingEntry) { r.entries = append(r.entries, e) }
func (r *recorder) ShowPanel(title string, _ []string) { r.panels = append(r.panels, title) }
func (r *recorder) HidePanel() { r.panels = append(r.panels, "") }
func (r *recorder) Clear() { r.clears++ }
func (r *recorder) Toast(text string, _ time.Duration) { r.toasts = append(r.toasts, text) }
func (r *recorder) Blip() { r.blips++ }
func (r *recorder) Chime() { r.chimes++ }

type navRecorder struct {
	calls       []string
	canContinue bool
}

func (n *navRecorder) RequestNewGame() { n.calls = append(n.calls, "new") }
func (n *navRecorder) ContinueGame() bool { n.calls = append(n.calls, "continue"); return n.canContinue }
func (n *navRecorder) ReturnToTitle() { n.calls = append(n.calls, "title") }
func (n *navRecorder) Restart() { n.calls = append(n.calls, "restart") }
func (n *navRecorder) ShowStats() { n.calls = append(n.calls, "stats") }
func (n *navRecorder) Quit() { n.calls = append(n.calls, "quit") }

type fixture struct {
	env   *Env
	rec   *recorder
	nav   *navRecorder
	store *storage.Memory
	clock *engine.MockTimeProvider
}

func newFixture() *fixture {
	rec := &recorder{}
	nav := &navRecorder{}
	store := storage.NewMemory()
	clock := engine.NewMockTimeProvider(time.Date(2025, 9, 27, 8, 15, 0, 0, time.UTC))
	st := gamedata.New()
	st.SetClock(clock.Now)
	return &fixture{
		env: &Env{
			State:          st,
			Store:          store,
			SaveKey:        testKey,
			Clock:          clock,
			Presenter:      rec,
			Notifier:       rec,
			Sound:          rec,
			Navigator:      nav,
			CharsPerSecond: 25,
		},
		rec:   rec,
		nav:   nav,
		store: store,
		clock: clock,
	}
}

// finishLines continues until the game scene blocks on a choice
func finishLines(g *Game) {
	for i := 0; i < 100 && !g.HasChoices(); i++ {
		g.Continue()
	}
}
