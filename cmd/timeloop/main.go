// Command timeloop runs the time-loop visual novel in the terminal
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/timeloop/audio"
	"github.com/lixenwraith/timeloop/config"
	"github.com/lixenwraith/timeloop/constants"
	"github.com/lixenwraith/timeloop/core"
	"github.com/lixenwraith/timeloop/engine"
	"github.com/lixenwraith/timeloop/gamedata"
	"github.com/lixenwraith/timeloop/scene"
	"github.com/lixenwraith/timeloop/session"
	"github.com/lixenwraith/timeloop/status"
)

func main() {
	if err := config.LoadDotenv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	store, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if cfg.ListSlots {
		if err := listSlots(os.Stdout, store, cfg.SaveSlot); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init screen: %v\n", err)
		os.Exit(1)
	}
	core.RegisterResetHook(screen.Fini)
	defer screen.Fini()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	screen.HideCursor()

	sound := audio.NewSoundManager()
	if cfg.Sound {
		if err := sound.Initialize(); err != nil {
			// Non-fatal, the game runs silent
			log.Printf("Audio initialization failed: %v", err)
		}
	} else {
		sound.SetEnabled(false)
	}
	defer sound.Cleanup()

	run(screen, store, sound, cfg)
}

// run wires the session to the screen and drives it until quit
func run(screen tcell.Screen, store gamedata.Store, sound scene.Sound, cfg config.Config) {
	state := gamedata.New()
	metrics := status.NewRegistry()
	ui := NewTUI(screen, state, metrics, cfg.Debug)

	var ctrl *session.Controller
	ctrl = session.New(state,
		session.WithStore(store, cfg.SaveSlot),
		session.WithTimeSource(engine.NewMonotonicTimeProvider()),
		session.WithPresenter(ui),
		session.WithNotifier(ui),
		session.WithSound(sound),
		session.WithMetrics(metrics),
		session.WithCharsPerSecond(cfg.TypingSpeed()),
		session.WithFallbackEndsRun(cfg.FallbackEndsRun),
		session.WithNewGameHandler(func() {
			ui.BeginPrompt(ctrl.StartNewGame)
		}),
	)

	// Toasts keep expiring while the pause menu is open
	ui.now = ctrl.Clock().RealTime

	if cfg.Continue {
		ctrl.Resume()
	} else {
		ctrl.SwitchScene(scene.TagTitle, scene.Params{})
	}

	events := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	last := time.Now()
	ui.Draw()
	for !ctrl.Quitting() {
		select {
		case ev := <-events:
			if !handleEvent(ctrl, ui, ev) {
				continue
			}
			ui.Draw()
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			ctrl.Tick(dt)
			metrics.Floats.Get(status.KeyFrameMillis).Smooth(float64(dt.Microseconds())/1000, 0.1)
			ui.Draw()
		}
	}

	if ctrl.Autosave() {
		log.Printf("autosaved on exit")
	}
}
