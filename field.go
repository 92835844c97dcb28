package brickgame

const (
	FieldWidth  = 10
	FieldHeight = 20
)

// Field is the grid of locked cells. Rows are stored top to bottom.
type Field struct {
	cells [FieldHeight][FieldWidth]bool
}

func inWindow(x, y int) bool {
	return x >= 0 && x < FieldWidth && y >= 0 && y < FieldHeight
}

// Occupied reports whether the cell is filled. Anything outside the playable
// window counts as occupied so walls and floor need no special casing.
func (f Field) Occupied(x, y int) bool {
	if !inWindow(x, y) {
		return true
	}
	return f.cells[y][x]
}

func (f *Field) Fill(x, y int) {
	if inWindow(x, y) {
		f.cells[y][x] = true
	}
}

func (f *Field) Clear() {
	f.cells = [FieldHeight][FieldWidth]bool{}
}

func (f Field) Rows() [FieldHeight][FieldWidth]bool {
	return f.cells
}

// Blocked reports whether shape, with its box placed at (x, y), overlaps a
// wall, the floor or a locked cell.
func (f Field) Blocked(shape Shape, x, y int) bool {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if shape[r][c] && f.Occupied(x+c, y+r) {
				return true
			}
		}
	}
	return false
}

// Lock writes the piece into the field. The piece's first row lands on
// anchorY-1: the anchor row is the row below the piece's top.
func (f *Field) Lock(p Piece, anchorX, anchorY int) {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if p.Shape[r][c] {
				f.Fill(anchorX+c, anchorY+r-1)
			}
		}
	}
}

func (f Field) rowFull(y int) bool {
	for x := 0; x < FieldWidth; x++ {
		if !f.cells[y][x] {
			return false
		}
	}
	return true
}

// ClearCompletedRows sweeps rows top to bottom. Each full row is overwritten
// by shifting every row above it down by one; row 0 keeps its contents.
// It returns the number of rows cleared.
func (f *Field) ClearCompletedRows() int {
	cleared := 0
	for y := 0; y < FieldHeight; y++ {
		if !f.rowFull(y) {
			continue
		}
		for k := y; k > 0; k-- {
			f.cells[k] = f.cells[k-1]
		}
		cleared++
	}
	return cleared
}
