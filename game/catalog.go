package game

import "image/color"

const (
	Rows = 20
	Cols = 10
)

// Shape is a rectangular 0/1 occupancy matrix.
type Shape [][]uint8

// PieceType indexes the catalog. The value written into the board on merge is PieceType+1.
type PieceType int

const (
	PieceI PieceType = iota
	PieceO
	PieceT
	PieceL
	PieceJ
	PieceS
	PieceZ

	pieceTypeCount
)

var catalogShapes = [pieceTypeCount]Shape{
	{ // I
		{1, 1, 1, 1},
	},
	{ // O
		{1, 1},
		{1, 1},
	},
	{ // T
		{1, 1, 1},
		{0, 1, 0},
	},
	{ // L
		{1, 1, 1},
		{1, 0, 0},
	},
	{ // J
		{1, 1, 1},
		{0, 0, 1},
	},
	{ // S
		{1, 1, 0},
		{0, 1, 1},
	},
	{ // Z
		{0, 1, 1},
		{1, 1, 0},
	},
}

var catalogColors = [pieceTypeCount]color.RGBA{
	{0x00, 0xf0, 0xf0, 0xff},
	{0xf0, 0xf0, 0x00, 0xff},
	{0xa0, 0x00, 0xf0, 0xff},
	{0xf0, 0xa0, 0x00, 0xff},
	{0x00, 0x00, 0xf0, 0xff},
	{0x00, 0xf0, 0x00, 0xff},
	{0xf0, 0x00, 0x00, 0xff},
}

// PieceTypes returns every catalog entry in order.
func PieceTypes() []PieceType {
	types := make([]PieceType, pieceTypeCount)
	for i := range types {
		types[i] = PieceType(i)
	}
	return types
}

// Valid reports whether t names a catalog entry.
func (t PieceType) Valid() bool {
	return t >= 0 && t < pieceTypeCount
}

// Shape returns a private copy of the catalog shape.
func (t PieceType) Shape() Shape {
	return catalogShapes[t].Clone()
}

func (t PieceType) Color() color.RGBA {
	return catalogColors[t]
}

// Cell is the value a piece of this type leaves on the board.
func (t PieceType) Cell() Cell {
	return Cell(t + 1)
}

func (t PieceType) String() string {
	return string("IOTLJSZ"[t])
}

// Clone returns a deep copy so callers can never alias catalog data.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for i := range s {
		out[i] = make([]uint8, len(s[i]))
		copy(out[i], s[i])
	}
	return out
}

// Width is the column count of the bounding box.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height is the row count of the bounding box.
func (s Shape) Height() int {
	return len(s)
}

// Equal reports whether both shapes have the same dimensions and occupancy.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if len(s[i]) != len(other[i]) {
			return false
		}
		for j := range s[i] {
			if s[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}
