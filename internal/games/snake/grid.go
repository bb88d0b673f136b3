// Package snake is the game itself: the grid, the entities on it, one tick of
// the simulation and the screen flow around it. It does no I/O.
package snake

// Board geometry. Coordinates are in surface units; every on-board cell has
// both coordinates aligned to CellSize.
const (
	BoardWidth  = 640
	BoardHeight = 480
	CellSize    = 20

	Cols = BoardWidth / CellSize  // 32
	Rows = BoardHeight / CellSize // 24
)

// Cell is a grid position in surface units.
type Cell struct {
	X, Y int
}

// At returns the cell at the given column and row.
func At(col, row int) Cell {
	return Cell{X: col * CellSize, Y: row * CellSize}
}

// Col returns the column index of the cell.
func (c Cell) Col() int {
	return floorDiv(c.X, CellSize)
}

// Row returns the row index of the cell.
func (c Cell) Row() int {
	return floorDiv(c.Y, CellSize)
}

// Add returns the neighbouring cell one step along d.
func (c Cell) Add(d Direction) Cell {
	switch d {
	case DirUp:
		return Cell{X: c.X, Y: c.Y - CellSize}
	case DirDown:
		return Cell{X: c.X, Y: c.Y + CellSize}
	case DirLeft:
		return Cell{X: c.X - CellSize, Y: c.Y}
	case DirRight:
		return Cell{X: c.X + CellSize, Y: c.Y}
	}
	return c
}

// InBounds reports whether the cell lies on the board.
func InBounds(c Cell) bool {
	return c.X >= 0 && c.X < BoardWidth && c.Y >= 0 && c.Y < BoardHeight
}

// contains reports whether cells holds c.
func contains(cells []Cell, c Cell) bool {
	for _, p := range cells {
		if p == c {
			return true
		}
	}
	return false
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Direction represents a movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
