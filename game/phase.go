package game

// Phase is the session state machine:
//
//	NotStarted -> Running <-> Paused
//	Running -> GameOver -> (Start) -> Running
type Phase int

const (
	NotStarted Phase = iota
	Running
	Paused
	GameOver
)

// AcceptsIntent reports whether an intent is delivered in this phase.
// Pause toggling is accepted while Running or Paused; everything else only while Running.
func (p Phase) AcceptsIntent(intent Intent) bool {
	switch p {
	case Running:
		return true
	case Paused:
		return intent == IntentTogglePause
	default:
		return false
	}
}

// Intent is a discrete player command delivered by an input source.
type Intent int

const (
	IntentMoveLeft Intent = iota
	IntentMoveRight
	IntentSoftDrop
	IntentRotate
	IntentTogglePause
)

// DropResult is the outcome of a descent step.
type DropResult int

const (
	Ignored DropResult = iota
	StillFalling
	Landed
)
