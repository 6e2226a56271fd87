package screen

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/blockfall/game"
)

var (
	boardBackground = color.RGBA{17, 17, 17, 255}
	gridColor       = color.RGBA{34, 34, 34, 255}
)

// BoardView is a render sink backed by an offscreen image of the well.
type BoardView struct {
	image    *ebiten.Image
	cellSize float32
}

var _ game.RenderSink = (*BoardView)(nil)

func NewBoardView(cellSize int) *BoardView {
	return &BoardView{
		image:    ebiten.NewImage(game.Cols*cellSize, game.Rows*cellSize),
		cellSize: float32(cellSize),
	}
}

func (v *BoardView) Clear() {
	v.image.Fill(boardBackground)
	w, h := float32(game.Cols)*v.cellSize, float32(game.Rows)*v.cellSize
	for col := 1; col < game.Cols; col++ {
		x := float32(col) * v.cellSize
		vector.StrokeLine(v.image, x, 0, x, h, 1, gridColor, false)
	}
	for row := 1; row < game.Rows; row++ {
		y := float32(row) * v.cellSize
		vector.StrokeLine(v.image, 0, y, w, y, 1, gridColor, false)
	}
}

// DrawCell fills one grid cell, leaving a one pixel gap to its neighbours.
func (v *BoardView) DrawCell(col, row int, c color.Color) {
	x, y := float32(col)*v.cellSize, float32(row)*v.cellSize
	vector.DrawFilledRect(v.image, x, y, v.cellSize-1, v.cellSize-1, c, false)
}

func (v *BoardView) Image() *ebiten.Image {
	return v.image
}

func (v *BoardView) Size() (int, int) {
	return v.image.Bounds().Dx(), v.image.Bounds().Dy()
}
