package main

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/timeloop/gamedata"
)

// maxNameRunes bounds the player name typed at the prompt
const maxNameRunes = 12

// controls is the part of the session the key handler drives
type controls interface {
	HandleContinue()
	HandleChoiceSelect(i int)
	HandleSave() bool
	TogglePause()
	Quit()
}

type promptStage int

const (
	stageName promptStage = iota
	stageGender
)

// prompt collects the player name and gender for a new run
type prompt struct {
	stage promptStage
	name  []rune
	done  func(name string, gender gamedata.Gender)
}

// BeginPrompt opens the new-game prompt; done receives the answers
func (u *TUI) BeginPrompt(done func(name string, gender gamedata.Gender)) {
	u.prompt = &prompt{done: done}
}

// Prompting reports whether the new-game prompt is open
func (u *TUI) Prompting() bool { return u.prompt != nil }

func (u *TUI) drawPrompt(w, h int) {
	p := u.prompt
	top := h/2 - 2
	switch p.stage {
	case stageName:
		title := "请输入你的名字"
		u.drawText(centerX(title, w), top, w, title, stylePanel)
		field := "> " + string(p.name) + "_"
		u.drawText(centerX(field, w), top+2, w, field, styleBase)
		hint := "Enter 确认  Esc 取消"
		u.drawText(centerX(hint, w), top+4, w, hint, styleDebug)
	case stageGender:
		title := "请选择你的性别"
		u.drawText(centerX(title, w), top, w, title, stylePanel)
		opts := " 1 男生    2 女生 "
		u.drawText(centerX(opts, w), top+2, w, opts, styleChoice)
	}
}

// handlePromptKey edits the open prompt; returns false when no prompt is open
func (u *TUI) handlePromptKey(ev *tcell.EventKey) bool {
	p := u.prompt
	if p == nil {
		return false
	}

	if ev.Key() == tcell.KeyEscape {
		u.prompt = nil
		return true
	}

	switch p.stage {
	case stageName:
		switch ev.Key() {
		case tcell.KeyEnter:
			if len(p.name) > 0 {
				p.stage = stageGender
			}
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if len(p.name) > 0 {
				p.name = p.name[:len(p.name)-1]
			}
		case tcell.KeyRune:
			r := ev.Rune()
			if r != ' ' && r != utf8.RuneError && len(p.name) < maxNameRunes {
				p.name = append(p.name, r)
			}
		}
	case stageGender:
		if ev.Key() != tcell.KeyRune {
			return true
		}
		var gender gamedata.Gender
		switch ev.Rune() {
		case '1':
			gender = gamedata.GenderMale
		case '2':
			gender = gamedata.GenderOther
		default:
			return true
		}
		u.prompt = nil
		if p.done != nil {
			p.done(string(p.name), gender)
		}
	}
	return true
}

// handleEvent routes one terminal event; returns false when the app should exit
func handleEvent(ctrl controls, ui *TUI, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		ui.screen.Sync()
	case *tcell.EventKey:
		return handleKey(ctrl, ui, ev)
	}
	return true
}

func handleKey(ctrl controls, ui *TUI, ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		ctrl.Quit()
		return false
	}
	if ui.handlePromptKey(ev) {
		return true
	}

	switch ev.Key() {
	case tcell.KeyEnter:
		ctrl.HandleContinue()
	case tcell.KeyEscape:
		ctrl.TogglePause()
	case tcell.KeyCtrlS:
		ctrl.HandleSave()
	case tcell.KeyRune:
		r := ev.Rune()
		switch {
		case r == ' ':
			ctrl.HandleContinue()
		case r >= '1' && r <= '9':
			ctrl.HandleChoiceSelect(int(r - '1'))
		case r == 'q':
			ctrl.Quit()
			return false
		}
	}
	return true
}
