// Package panel draws the Dear ImGui control and statistics windows on top of the game.
package panel

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/loop"
)

// Item is a window rendered once per frame.
type Item interface {
	Render(frame *loop.Frame)
}

// ItemFunc adapts a plain function to Item.
type ItemFunc func(frame *loop.Frame)

func (f ItemFunc) Render(frame *loop.Frame) { f(frame) }

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// System refreshes the input state and queues every item's render function.
// Rendering is deferred so windows see the state left by all other systems.
type System struct {
	Items []Item
	Input *InputState
}

func (s *System) Execute(frame *loop.Frame) {
	if s.Input != nil {
		io := imgui.CurrentIO()
		s.Input.WantCaptureMouse = io.WantCaptureMouse()
		s.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()
	}

	for _, item := range s.Items {
		frame.Commands.Defer(func() { item.Render(frame) })
	}
}
