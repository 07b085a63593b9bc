package scene

import (
	"time"

	"github.com/lixenwraith/timeloop/constants"
	"github.com/lixenwraith/timeloop/gamedata"
)

// Title menu option indices
const (
	TitleOptionNewGame = iota
	TitleOptionContinue
	TitleOptionCredits
	TitleOptionExit
)

// TitleOptions are the title menu labels
var TitleOptions = []string{"开始新的循环", "继续游戏", "制作人员", "退出游戏"}

// Credits lists the credits panel lines
var Credits = []string{
	"制作人: 模拟战争工作室",
	"策划: 爱姜TV董事会",
	"程序: 侯子鸣",
	"美术: 还没有",
	"音乐: 也没有",
	"特别感谢: 所有参与内部测试玩家",
}

// Title is the main menu
type Title struct {
	env    *Env
	active bool
}

// NewTitle creates the title scene over env
func NewTitle(env *Env) *Title {
	return &Title{env: env.withDefaults()}
}

// Init shows the menu
func (t *Title) Init(Params) {
	t.active = true
	t.Redraw()
}

// Redraw re-presents the menu
func (t *Title) Redraw() {
	t.env.Presenter.Clear()
	t.env.Presenter.ShowPanel("二十七班的时间循环", []string{"时间、记忆与命运的交织"})
	t.env.Presenter.ShowChoices(TitleOptions)
}

func (t *Title) Update(time.Duration) {}

// Continue has no effect on the menu
func (t *Title) Continue() {}

// HasChoices reports whether the menu is shown
func (t *Title) HasChoices() bool { return t.active }

// HasSave reports whether the continue option can succeed
func (t *Title) HasSave() bool {
	return gamedata.HasSave(t.env.Store, t.env.SaveKey)
}

// SelectChoice runs a menu entry
func (t *Title) SelectChoice(i int) {
	if !t.active {
		return
	}
	switch i {
	case TitleOptionNewGame:
		t.env.Navigator.RequestNewGame()
	case TitleOptionContinue:
		if !t.env.Navigator.ContinueGame() {
			t.env.Notifier.Toast("没有找到存档", constants.ToastSaveDuration)
		}
	case TitleOptionCredits:
		t.env.Presenter.ShowPanel("制作人员", Credits)
	case TitleOptionExit:
		t.env.Navigator.Quit()
	}
}

// Teardown hides the menu
func (t *Title) Teardown() {
	t.active = false
	t.env.Presenter.HideChoices()
}
