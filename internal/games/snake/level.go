package snake

import "fmt"

// Level selects which hazard sets are active for a session.
type Level int

const (
	LevelNone Level = iota // No level chosen yet
	Level1                 // Walls only
	Level2                 // Walls and the obstacle bar
	Level3                 // Walls, obstacle bar and both patrols
)

// LevelCount is the number of selectable levels.
const LevelCount = 3

// HasObstacles reports whether the obstacle bar is active.
func (l Level) HasObstacles() bool {
	return l >= Level2
}

// HasEnemies reports whether the enemy patrols are active.
func (l Level) HasEnemies() bool {
	return l == Level3
}

// Valid reports whether l is a selectable level.
func (l Level) Valid() bool {
	return l >= Level1 && l <= Level3
}

func (l Level) String() string {
	if !l.Valid() {
		return "none"
	}
	return fmt.Sprintf("level %d", int(l))
}

// Describe returns a one-line summary of the level's hazards.
func (l Level) Describe() string {
	switch l {
	case Level1:
		return "Board edges and your own tail"
	case Level2:
		return "Adds a 10-cell obstacle bar"
	case Level3:
		return "Adds two patrolling enemies"
	default:
		return ""
	}
}
