package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/game"
	blog "github.com/plus3/blockfall/log"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/panel"
	panelebiten "github.com/plus3/blockfall/panel/ebiten"
	"github.com/plus3/blockfall/screen"
)

func runPlay(cfg *config.Config) error {
	logger := blog.Logger()
	status := driver.NewStatus()
	opts := []game.Option{
		game.WithRandomizer(newRandomizer(cfg.Game.Seed)),
		game.WithListener(status),
		game.WithLogger(logger),
	}

	var music audio.Controls
	if cfg.Audio.Enabled {
		mixer, err := audio.New(ebitenaudio.NewContext(audio.SampleRate),
			audio.WithVolume(cfg.Audio.Volume),
			audio.WithMuted(cfg.Audio.Muted),
			audio.WithLogger(logger),
		)
		if err != nil {
			return fmt.Errorf("audio: %w", err)
		}
		music = mixer
		opts = append(opts, game.WithAudio(mixer))
	}
	engine := game.New(opts...)

	keyboard := screen.NewKeyboard()
	actions := &screen.ActionSystem{Keyboard: keyboard, Engine: engine, Music: music, Logger: logger}
	systems := []loop.System{actions}

	width, height := screen.WindowSize(cfg.Display.CellSize, cfg.Display.Panel)
	var (
		overlay screen.Overlay
		perf    *panel.Performance
	)
	if cfg.Display.Panel {
		overlay = panelebiten.NewImguiBackend(cfg.Display.Title, width, height)
		input := &panel.InputState{}
		keyboard.Captured = func() bool { return input.WantCaptureKeyboard }
		perf = panel.NewPerformance(nil, 120)
		systems = append(systems, &panel.System{
			Items: []panel.Item{
				&panel.Controls{Engine: engine, Status: status, Music: music, Logger: logger},
				perf,
			},
			Input: input,
		})
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle(cfg.Display.Title)
	}

	d := driver.New(engine, keyboard, systems...)
	if perf != nil {
		perf.Scheduler = d.Scheduler
	}

	blog.Info("session %s ready, press Enter to start", engine.ID())
	return ebiten.RunGame(&screen.Game{
		Driver:  d,
		Board:   screen.NewBoardView(cfg.Display.CellSize),
		Status:  status,
		Actions: actions,
		Overlay: overlay,
	})
}
