package screen

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/blockfall/game"
)

// Action is a key command handled outside the engine's intent set.
type Action int

const (
	ActionStart Action = iota
	ActionToggleMusic
	ActionVolumeDown
	ActionVolumeUp
	ActionQuit
)

var intentKeys = []struct {
	key    ebiten.Key
	intent game.Intent
}{
	{ebiten.KeyArrowLeft, game.IntentMoveLeft},
	{ebiten.KeyArrowRight, game.IntentMoveRight},
	{ebiten.KeyArrowDown, game.IntentSoftDrop},
	{ebiten.KeyArrowUp, game.IntentRotate},
	{ebiten.KeySpace, game.IntentTogglePause},
}

var actionKeys = []struct {
	key    ebiten.Key
	action Action
}{
	{ebiten.KeyEnter, ActionStart},
	{ebiten.KeyR, ActionStart},
	{ebiten.KeyM, ActionToggleMusic},
	{ebiten.KeyMinus, ActionVolumeDown},
	{ebiten.KeyEqual, ActionVolumeUp},
	{ebiten.KeyEscape, ActionQuit},
}

// Keyboard turns key presses into intents and actions, one event per press.
type Keyboard struct {
	JustPressed func(key ebiten.Key) bool
	// Captured reports whether another widget owns the keyboard this frame.
	Captured func() bool

	intents []game.Intent
	actions []Action
}

func NewKeyboard() *Keyboard {
	return &Keyboard{JustPressed: inpututil.IsKeyJustPressed}
}

func (k *Keyboard) Poll(time.Time) []game.Intent {
	k.intents = k.intents[:0]
	k.actions = k.actions[:0]
	if k.Captured != nil && k.Captured() {
		return nil
	}

	for _, b := range intentKeys {
		if k.JustPressed(b.key) {
			k.intents = append(k.intents, b.intent)
		}
	}
	for _, b := range actionKeys {
		if k.JustPressed(b.key) {
			k.actions = append(k.actions, b.action)
		}
	}
	return k.intents
}

// Actions returns the actions seen by the last Poll.
func (k *Keyboard) Actions() []Action {
	return k.actions
}
