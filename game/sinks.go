package game

import "image/color"

//go:generate go run golang.org/x/tools/cmd/stringer -type=Cue,Phase,Intent,DropResult,EventKind -output=enum_string.go

// Cue names a one-shot sound effect.
type Cue int

const (
	CueMove Cue = iota
	CueRotate
	CueDrop
	CueClear
)

// AudioSink plays cues and the background loop. Implementations must never
// panic or block the caller; playback failures are theirs to log and drop.
type AudioSink interface {
	Play(cue Cue)
	PlayLoop()
	StopLoop()
}

// RenderSink draws one frame in board coordinates.
type RenderSink interface {
	Clear()
	DrawCell(col, row int, c color.Color)
}

type nopAudio struct{}

func (nopAudio) Play(Cue)  {}
func (nopAudio) PlayLoop() {}
func (nopAudio) StopLoop() {}

// EventKind classifies engine notifications.
type EventKind int

const (
	EventStarted EventKind = iota
	EventScore
	EventPaused
	EventResumed
	EventGameOver
)

// Event is delivered to the session listener after the state change it describes.
type Event struct {
	Kind  EventKind
	Score int
	Level int
	Lines int
}

// Listener observes engine events. Hosts use it to refresh the score display
// and to re-enable Start once the round ends.
type Listener interface {
	OnEvent(ev Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(ev Event)

func (f ListenerFunc) OnEvent(ev Event) { f(ev) }
