// Package screen runs a session in an ebiten window.
package screen

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/game"
)

const margin = 20

var background = color.RGBA{40, 40, 48, 255}

// Overlay draws a UI layer over the board, such as the Dear ImGui backend.
type Overlay interface {
	BeginFrame()
	EndFrame()
	Draw(screen *ebiten.Image)
	Layout(outsideWidth, outsideHeight int)
}

// Game implements ebiten.Game. Update steps the driver once per tick, Draw
// renders the engine into the board view.
type Game struct {
	Driver  *driver.Driver
	Board   *BoardView
	Status  *driver.Status
	Actions *ActionSystem
	Overlay Overlay
	Now     func() time.Time
}

func (g *Game) Update() error {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}

	if g.Overlay != nil {
		g.Overlay.BeginFrame()
	}
	g.Driver.Step(now())
	if g.Overlay != nil {
		g.Overlay.EndFrame()
	}

	if g.Actions != nil && g.Actions.Quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	g.Driver.Engine.Render(g.Board)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(margin, margin)
	screen.DrawImage(g.Board.Image(), op)

	if g.Overlay != nil {
		g.Overlay.Draw(screen)
		return
	}
	g.drawHUD(screen)
}

// drawHUD prints the score panel when no overlay is attached.
func (g *Game) drawHUD(screen *ebiten.Image) {
	if g.Status == nil {
		return
	}
	w, _ := g.Board.Size()
	x := w + 2*margin
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d\nLevel: %d\nLines: %d", g.Status.Score, g.Status.Level, g.Status.Lines), x, margin)

	hint := "Enter: start"
	if g.Status.CanPause() {
		hint = "Space: " + g.Status.PauseLabel()
	}
	ebitenutil.DebugPrintAt(screen, hint, x, margin+60)
	ebitenutil.DebugPrintAt(screen, "M: music  -/=: volume", x, margin+80)
	if g.Status.Message != "" {
		ebitenutil.DebugPrintAt(screen, g.Status.Message, x, margin+110)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Overlay != nil {
		g.Overlay.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// WindowSize is the initial window size for a board drawn with cellSize pixels per cell.
func WindowSize(cellSize int, withPanel bool) (int, int) {
	w, h := game.Cols*cellSize+2*margin+220, game.Rows*cellSize+2*margin
	if withPanel {
		w += 200
	}
	return w, h
}
