package game

// Randomizer picks piece types. *rand.Rand from math/rand/v2 satisfies it.
type Randomizer interface {
	IntN(n int) int
}

// Piece is the falling piece: a shape matrix anchored at the top-left origin (X, Y).
type Piece struct {
	Shape Shape
	X, Y  int
	Type  PieceType
}

// NewPiece places a fresh copy of t's shape at the spawn origin.
func NewPiece(t PieceType) Piece {
	shape := t.Shape()
	return Piece{
		Shape: shape,
		X:     Cols/2 - shape.Width()/2,
		Y:     0,
		Type:  t,
	}
}

// Spawn picks a catalog entry uniformly at random.
func Spawn(r Randomizer) Piece {
	return NewPiece(PieceType(r.IntN(int(pieceTypeCount))))
}

// Rotated returns the piece turned 90° clockwise about its bounding box.
// An R×C shape becomes C×R with rotated[i][j] = shape[R-1-j][i].
func (p Piece) Rotated() Piece {
	rows := p.Shape.Height()
	cols := p.Shape.Width()

	rotated := make(Shape, cols)
	for i := range rotated {
		rotated[i] = make([]uint8, rows)
		for j := range rows {
			rotated[i][j] = p.Shape[rows-1-j][i]
		}
	}

	p.Shape = rotated
	return p
}

// Cells returns the board coordinates of every occupied cell.
func (p Piece) Cells() [][2]int {
	cells := make([][2]int, 0, 4)
	for i, row := range p.Shape {
		for j, value := range row {
			if value != 0 {
				cells = append(cells, [2]int{p.X + j, p.Y + i})
			}
		}
	}
	return cells
}

// Clone returns a copy that shares no shape storage with p.
func (p Piece) Clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}
