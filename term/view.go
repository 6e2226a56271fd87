// Package term plays a session in a terminal through tcell.
package term

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/game"
)

const (
	leftMargin = 2
	topMargin  = 1
	cellWidth  = 2
)

// DefStyle is the style of everything that is not a piece.
var DefStyle = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)

var borderStyle = DefStyle.Foreground(tcell.ColorGray)

// View is a render sink drawing the well into a tcell screen, two terminal
// columns per board cell, with the score panel to its right.
type View struct {
	Screen tcell.Screen
	Status *driver.Status
}

var _ game.RenderSink = (*View)(nil)

func (v *View) Clear() {
	v.Screen.Clear()
	v.drawBorder()
}

func (v *View) DrawCell(col, row int, c color.Color) {
	x, y := cellOrigin(col, row)
	style := tcell.StyleDefault.Background(tcell.FromImageColor(c))
	for dx := range cellWidth {
		v.Screen.SetContent(x+dx, y, ' ', nil, style)
	}
}

// Present draws the score panel and flushes the screen.
func (v *View) Present() {
	if v.Status != nil {
		x := leftMargin + game.Cols*cellWidth + 4
		drawText(v.Screen, x, topMargin, DefStyle, fmt.Sprintf("Score: %d", v.Status.Score))
		drawText(v.Screen, x, topMargin+1, DefStyle, fmt.Sprintf("Level: %d", v.Status.Level))
		drawText(v.Screen, x, topMargin+2, DefStyle, fmt.Sprintf("Lines: %d", v.Status.Lines))

		hint := "Enter: start"
		if v.Status.CanPause() {
			hint = "Space: " + v.Status.PauseLabel()
		}
		drawText(v.Screen, x, topMargin+4, DefStyle, hint)
		drawText(v.Screen, x, topMargin+5, DefStyle, "q: quit")
		if v.Status.Message != "" {
			drawText(v.Screen, x, topMargin+7, DefStyle.Bold(true), v.Status.Message)
		}
	}
	v.Screen.Show()
}

// drawBorder outlines the sides and floor; the well is open at the top.
func (v *View) drawBorder() {
	left := leftMargin - 1
	right := leftMargin + game.Cols*cellWidth
	bottom := topMargin + game.Rows

	for y := topMargin; y < bottom; y++ {
		v.Screen.SetContent(left, y, tcell.RuneVLine, nil, borderStyle)
		v.Screen.SetContent(right, y, tcell.RuneVLine, nil, borderStyle)
	}
	for x := leftMargin; x < right; x++ {
		v.Screen.SetContent(x, bottom, tcell.RuneHLine, nil, borderStyle)
	}
	v.Screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, borderStyle)
	v.Screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, borderStyle)
}

func cellOrigin(col, row int) (int, int) {
	return leftMargin + col*cellWidth, topMargin + row
}

// drawText places text at the specified coordinates with the provided style
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
