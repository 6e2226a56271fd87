package screen

import (
	"github.com/charmbracelet/log"

	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/loop"
)

// VolumeStep is how much one volume key press changes the volume.
const VolumeStep = 0.1

// ActionSystem carries out keyboard actions. It must run after the intent
// system that polls the keyboard.
type ActionSystem struct {
	Keyboard *Keyboard
	Engine   *game.Engine
	Music    audio.Controls
	Logger   *log.Logger

	Quit bool
}

func (s *ActionSystem) Execute(frame *loop.Frame) {
	for _, action := range s.Keyboard.Actions() {
		switch action {
		case ActionStart:
			if err := s.Engine.Start(frame.Now); err != nil && s.Logger != nil {
				s.Logger.Debug("start ignored", "err", err)
			}
		case ActionToggleMusic:
			if s.Music != nil {
				s.Music.ToggleMuted()
			}
		case ActionVolumeDown:
			if s.Music != nil {
				s.Music.SetVolume(s.Music.Volume() - VolumeStep)
			}
		case ActionVolumeUp:
			if s.Music != nil {
				s.Music.SetVolume(s.Music.Volume() + VolumeStep)
			}
		case ActionQuit:
			s.Quit = true
		}
	}
}
