package game

// Cell is 0 for empty or a 1-based piece type identifier.
type Cell uint8

// Empty is the zero cell.
const Empty Cell = 0

// Board is the grid of landed cells, indexed [row][col].
type Board [Rows][Cols]Cell

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// IsEmpty reports whether every cell is zero.
func (b *Board) IsEmpty() bool {
	for row := range b {
		for col := range b[row] {
			if b[row][col] != Empty {
				return false
			}
		}
	}
	return true
}

// At returns the cell at (col, row), or Empty when out of range.
func (b *Board) At(col, row int) Cell {
	if col < 0 || col >= Cols || row < 0 || row >= Rows {
		return Empty
	}
	return b[row][col]
}

// Collides reports whether p, shifted by (dx, dy), leaves the well or overlaps a landed cell.
// Cells above the top row only test the side walls and the floor.
func (b *Board) Collides(p Piece, dx, dy int) bool {
	for i, row := range p.Shape {
		for j, value := range row {
			if value == 0 {
				continue
			}

			x := p.X + j + dx
			y := p.Y + i + dy

			if x < 0 || x >= Cols || y >= Rows {
				return true
			}

			if y >= 0 && b[y][x] != Empty {
				return true
			}
		}
	}

	return false
}

// Merge writes the piece's cell value into every occupied position.
// The caller guarantees the piece does not collide at its current origin.
func (b *Board) Merge(p Piece) {
	cell := p.Type.Cell()
	for i, row := range p.Shape {
		for j, value := range row {
			if value == 0 {
				continue
			}

			x := p.X + j
			y := p.Y + i
			if y >= 0 && y < Rows && x >= 0 && x < Cols {
				b[y][x] = cell
			}
		}
	}
}

// ClearFullLines removes every full row, shifting the rows above it down and
// inserting empty rows at the top. It returns the number of rows removed.
func (b *Board) ClearFullLines() int {
	cleared := 0
	for row := Rows - 1; row >= 0; {
		if !b.rowFull(row) {
			row--
			continue
		}

		copy(b[1:row+1], b[0:row])
		b[0] = [Cols]Cell{}
		cleared++
		// the same index now holds the row that used to sit above it
	}
	return cleared
}

func (b *Board) rowFull(row int) bool {
	for _, cell := range b[row] {
		if cell == Empty {
			return false
		}
	}
	return true
}

