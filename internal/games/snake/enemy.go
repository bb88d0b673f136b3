package snake

// advanceEnemies moves both patrols one tick.
//
// The two reversals are coupled: the vertical patrol never turns around on
// its own. Once its head has left the board it keeps going while the
// horizontal patrol advances one cell per tick, and the vertical patrol only
// flips direction when the horizontal head has also left the board on its
// side.
func advanceEnemies(e *[2]Patrol) {
	vert, horiz := &e[0], &e[1]
	vert.follow()
	horiz.follow()

	if vert.Dir == DirDown {
		vert.Body[0].Y += CellSize
		if vert.Body[0].Y >= BoardHeight {
			horiz.Dir = DirRight
			horiz.Body[0].X += CellSize
			if horiz.Body[0].X >= BoardWidth {
				vert.Dir = DirUp
			}
		}
		return
	}

	vert.Body[0].Y -= CellSize
	if vert.Body[0].Y < 0 {
		horiz.Dir = DirLeft
		horiz.Body[0].X -= CellSize
		if horiz.Body[0].X < 0 {
			vert.Dir = DirDown
		}
	}
}

// enemyHit reports whether either patrol head sits on a snake cell.
func enemyHit(e *[2]Patrol, body []Cell) bool {
	return contains(body, e[0].Head()) || contains(body, e[1].Head())
}
