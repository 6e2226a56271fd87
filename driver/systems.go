package driver

import (
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/loop"
)

// IntentSystem applies polled intents to the engine.
type IntentSystem struct {
	Engine *game.Engine
	Source IntentSource

	Applied  int64
	Rejected int64
}

func (s *IntentSystem) Execute(frame *loop.Frame) {
	for _, intent := range s.Source.Poll(frame.Now) {
		if s.Engine.Apply(intent, frame.Now) {
			s.Applied++
		} else {
			s.Rejected++
		}
	}
}

// DropSystem drives automatic descent.
type DropSystem struct {
	Engine *game.Engine
	Steps  int64
}

func (s *DropSystem) Execute(frame *loop.Frame) {
	if s.Engine.Tick(frame.Now) {
		s.Steps++
	}
}

// RenderSystem draws the engine into a sink once all other systems of the frame have run.
type RenderSystem struct {
	Engine *game.Engine
	Sink   game.RenderSink
	// Present, when set, is called after the engine has drawn.
	Present func()
}

func (s *RenderSystem) Execute(frame *loop.Frame) {
	frame.Commands.Defer(func() {
		s.Engine.Render(s.Sink)
		if s.Present != nil {
			s.Present()
		}
	})
}
