package panel

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/charmbracelet/log"

	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/loop"
)

// Controls is the game window: score and level, Start and Pause buttons, the
// music switch and the volume slider.
type Controls struct {
	Engine *game.Engine
	Status *driver.Status
	Music  audio.Controls
	Logger *log.Logger
}

func (c *Controls) Render(frame *loop.Frame) {
	title := fmt.Sprintf("Blockfall %s###controls", c.Engine.ID().String()[:8])
	if !imgui.BeginV(title, nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Score: %d", c.Status.Score))
	imgui.Text(fmt.Sprintf("Level: %d", c.Status.Level))
	imgui.Text(fmt.Sprintf("Lines: %d", c.Status.Lines))

	imgui.Separator()
	if c.Status.CanStart() {
		if imgui.Button("Start") {
			if err := c.Engine.Start(frame.Now); err != nil && c.Logger != nil {
				c.Logger.Warn("start", "err", err)
			}
		}
	}
	if c.Status.CanPause() {
		if c.Status.CanStart() {
			imgui.SameLine()
		}
		if imgui.Button(c.Status.PauseLabel()) {
			c.Engine.TogglePause(frame.Now)
		}
	}

	if c.Music != nil {
		imgui.Separator()
		label := "Music: on"
		if c.Music.Muted() {
			label = "Music: off"
		}
		if imgui.Button(label) {
			c.Music.ToggleMuted()
		}

		volume := float32(c.Music.Volume())
		imgui.SetNextItemWidth(150)
		if imgui.SliderFloat("Volume", &volume, 0, 1) {
			c.Music.SetVolume(float64(volume))
		}
	}

	if c.Status.Message != "" {
		imgui.Separator()
		imgui.Text(c.Status.Message)
	}

	imgui.End()
}
