package snake

// InitialLength is the number of snake segments after a reset.
const InitialLength = 3

// ObstacleCount is the number of cells in the obstacle bar.
const ObstacleCount = 10

// PatrolLength is the number of cells in each enemy body.
const PatrolLength = 3

// initialSnake returns the starting body: head on the last board row at the
// horizontal center, tail trailing to the left.
func initialSnake() []Cell {
	head := Cell{X: BoardWidth / 2, Y: BoardHeight - CellSize}
	body := make([]Cell, InitialLength)
	for i := range body {
		body[i] = Cell{X: head.X - i*CellSize, Y: head.Y}
	}
	return body
}

// obstacleLayout returns the horizontally centered obstacle bar.
func obstacleLayout() []Cell {
	startX := BoardWidth/2 - CellSize*(ObstacleCount/2)
	startY := BoardHeight/2 - CellSize
	cells := make([]Cell, ObstacleCount)
	for i := range cells {
		cells[i] = Cell{X: startX + i*CellSize, Y: startY}
	}
	return cells
}

// Patrol is an enemy body: a head followed by trailing segments.
type Patrol struct {
	Body []Cell // Head at index 0
	Dir  Direction
}

// Head returns the leading cell.
func (p Patrol) Head() Cell {
	return p.Body[0]
}

// follow shifts every trailing segment onto the position of the segment
// ahead of it. Called before the head moves.
func (p *Patrol) follow() {
	for i := len(p.Body) - 1; i > 0; i-- {
		p.Body[i] = p.Body[i-1]
	}
}

func newPatrol(head Cell, dir Direction) Patrol {
	body := make([]Cell, PatrolLength)
	for i := range body {
		body[i] = head
	}
	return Patrol{Body: body, Dir: dir}
}

// initialEnemies returns the vertical patrol (index 0) entering from the top
// edge and the horizontal patrol (index 1) waiting just off the left edge.
func initialEnemies() [2]Patrol {
	return [2]Patrol{
		newPatrol(Cell{X: BoardWidth / 2, Y: 0}, DirDown),
		newPatrol(Cell{X: -CellSize, Y: BoardHeight / 2}, DirRight),
	}
}

func cloneCells(cells []Cell) []Cell {
	if cells == nil {
		return nil
	}
	out := make([]Cell, len(cells))
	copy(out, cells)
	return out
}
