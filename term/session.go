package term

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/loop"
)

type action int

const (
	actionStart action = iota
	actionQuit
)

// Session wires a tcell screen to an engine. Key events are read on their own
// goroutine and handed to the loop goroutine, which owns the engine.
type Session struct {
	Screen tcell.Screen
	Engine *game.Engine
	Driver *driver.Driver
	View   *View

	intents *driver.ChanSource
	actions chan action
	logger  *log.Logger
	quit    bool
}

func NewSession(screen tcell.Screen, engine *game.Engine, status *driver.Status, logger *log.Logger) *Session {
	s := &Session{
		Screen:  screen,
		Engine:  engine,
		View:    &View{Screen: screen, Status: status},
		intents: driver.NewChanSource(64),
		actions: make(chan action, 8),
		logger:  logger,
	}
	s.Driver = driver.New(engine, s.intents,
		loop.SystemFunc(s.applyActions),
		&driver.RenderSystem{Engine: engine, Sink: s.View, Present: s.View.Present},
	)
	return s
}

// HandleEvent translates one terminal event. It reports false once the user asked to quit.
func (s *Session) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.Screen.Sync()
	case *tcell.EventKey:
		if intent, ok := keyIntent(ev); ok {
			if !s.intents.Send(intent) && s.logger != nil {
				s.logger.Debug("input buffer full", "intent", intent)
			}
			return true
		}
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			s.post(actionQuit)
			return false
		case tcell.KeyEnter:
			s.post(actionStart)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				s.post(actionQuit)
				return false
			case 'r', 'R':
				s.post(actionStart)
			}
		}
	}
	return true
}

func (s *Session) post(a action) {
	select {
	case s.actions <- a:
	default:
	}
}

func (s *Session) applyActions(frame *loop.Frame) {
	for {
		select {
		case a := <-s.actions:
			switch a {
			case actionStart:
				if err := s.Engine.Start(frame.Now); err != nil && s.logger != nil {
					s.logger.Debug("start ignored", "err", err)
				}
			case actionQuit:
				s.quit = true
			}
		default:
			return
		}
	}
}

// Quit reports whether a quit key has been applied.
func (s *Session) Quit() bool {
	return s.quit
}

// Run drives the session until ctx is cancelled or the user quits.
func (s *Session) Run(ctx context.Context, interval time.Duration) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		for {
			ev := s.Screen.PollEvent()
			if ev == nil {
				return
			}
			if !s.HandleEvent(ev) {
				cancel()
				return
			}
		}
	}()

	s.Driver.Run(ctx, interval)
}

func keyIntent(ev *tcell.EventKey) (game.Intent, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return game.IntentMoveLeft, true
	case tcell.KeyRight:
		return game.IntentMoveRight, true
	case tcell.KeyDown:
		return game.IntentSoftDrop, true
	case tcell.KeyUp:
		return game.IntentRotate, true
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return game.IntentTogglePause, true
		}
	}
	return 0, false
}
