package driver

import (
	"fmt"

	"github.com/plus3/blockfall/game"
)

// Status mirrors engine events for display: the score line, which controls are
// enabled and the game over message.
type Status struct {
	Phase   game.Phase
	Score   int
	Level   int
	Lines   int
	Message string
}

var _ game.Listener = (*Status)(nil)

func NewStatus() *Status {
	return &Status{Level: 1}
}

func (s *Status) OnEvent(ev game.Event) {
	s.Score, s.Level, s.Lines = ev.Score, ev.Level, ev.Lines

	switch ev.Kind {
	case game.EventStarted:
		s.Phase = game.Running
		s.Message = ""
	case game.EventPaused:
		s.Phase = game.Paused
	case game.EventResumed:
		s.Phase = game.Running
	case game.EventGameOver:
		s.Phase = game.GameOver
		s.Message = fmt.Sprintf("Game over! Score: %d", ev.Score)
	}
}

// CanStart is true before the first round and after a game over.
func (s *Status) CanStart() bool {
	return s.Phase == game.NotStarted || s.Phase == game.GameOver
}

func (s *Status) CanPause() bool {
	return s.Phase == game.Running || s.Phase == game.Paused
}

func (s *Status) PauseLabel() string {
	if s.Phase == game.Paused {
		return "Resume"
	}
	return "Pause"
}

// Listeners fans engine events out to several listeners.
type Listeners []game.Listener

func (l Listeners) OnEvent(ev game.Event) {
	for _, listener := range l {
		listener.OnEvent(ev)
	}
}
