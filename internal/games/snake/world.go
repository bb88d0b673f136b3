package snake

import (
	"math/rand"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// FoodPoints is the score awarded per food eaten.
const FoodPoints = 10

// Outcome describes what ended (or did not end) a tick.
type Outcome int

const (
	OutcomeMoved    Outcome = iota // Snake advanced without eating
	OutcomeAte                     // Snake advanced onto food and grew
	OutcomeWall                    // Candidate head left the board
	OutcomeSelf                    // Candidate head hit the snake
	OutcomeObstacle                // Candidate head hit the obstacle bar
	OutcomeEnemy                   // A patrol head landed on the snake
	OutcomeIdle                    // World already over, nothing happened
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeWall:
		return "wall"
	case OutcomeSelf:
		return "self"
	case OutcomeObstacle:
		return "obstacle"
	case OutcomeEnemy:
		return "enemy"
	case OutcomeIdle:
		return "idle"
	default:
		return "unknown"
	}
}

// Fatal reports whether the outcome ends the game.
func (o Outcome) Fatal() bool {
	return o == OutcomeWall || o == OutcomeSelf || o == OutcomeObstacle || o == OutcomeEnemy
}

// World is the entity model for one game: snake, food, hazards and score.
// Step is the only method that mutates it during play.
type World struct {
	level       Level
	rng         *rand.Rand
	maxAttempts int
	tick        uint64

	snake   []Cell // Head at index 0
	heading Direction
	nextDir Direction // Buffered direction for next move
	food    Cell
	hasFood bool

	obstacles []Cell
	enemies   [2]Patrol

	score    int
	gameOver bool
	last     Outcome
}

// NewWorld creates a world for the given level and resets it.
func NewWorld(level Level, rng *rand.Rand, maxAttempts int) *World {
	w := &World{
		level:       level,
		rng:         rng,
		maxAttempts: maxAttempts,
	}
	w.Reset()
	return w
}

// Reset restores the initial entity model for the world's level.
func (w *World) Reset() {
	w.tick = 0
	w.snake = initialSnake()
	w.heading = DirUp
	w.nextDir = DirUp
	w.score = 0
	w.gameOver = false
	w.last = OutcomeMoved

	w.obstacles = nil
	if w.level.HasObstacles() {
		w.obstacles = obstacleLayout()
	}
	w.enemies = initialEnemies()

	w.food, w.hasFood = SpawnFood(w.rng, w.snake, w.obstacles, w.maxAttempts)
}

// Turn buffers a direction change for the next move. A request for the exact
// reverse of the current heading is ignored and Turn returns false.
func (w *World) Turn(d Direction) bool {
	if d == w.heading.Opposite() {
		return false
	}
	w.nextDir = d
	return true
}

// Step advances the simulation by one tick.
func (w *World) Step() core.StepResult {
	if w.gameOver {
		w.last = OutcomeIdle
		return core.StepResult{State: w.State()}
	}
	w.tick++
	w.last = w.advance()
	if w.last.Fatal() {
		w.gameOver = true
	}
	return core.StepResult{State: w.State()}
}

// advance runs the collision checks in order and moves the snake.
func (w *World) advance() Outcome {
	w.heading = w.nextDir
	candidate := w.snake[0].Add(w.heading)

	if !InBounds(candidate) {
		return OutcomeWall
	}
	if contains(w.snake, candidate) {
		return OutcomeSelf
	}
	if w.level.HasObstacles() && contains(w.obstacles, candidate) {
		return OutcomeObstacle
	}
	if w.level.HasEnemies() {
		advanceEnemies(&w.enemies)
		// Heads are checked against the snake before it moves
		if enemyHit(&w.enemies, w.snake) {
			return OutcomeEnemy
		}
	}

	w.snake = append(w.snake, Cell{})
	copy(w.snake[1:], w.snake)
	w.snake[0] = candidate

	if w.hasFood && candidate == w.food {
		w.score += FoodPoints
		w.food, w.hasFood = SpawnFood(w.rng, w.snake, w.obstacles, w.maxAttempts)
		return OutcomeAte
	}

	w.snake = w.snake[:len(w.snake)-1]
	return OutcomeMoved
}

// State returns the current game state.
func (w *World) State() core.GameState {
	return core.GameState{
		Score:    w.score,
		GameOver: w.gameOver,
	}
}

// Level returns the level the world was built for.
func (w *World) Level() Level { return w.level }

// Score returns the current score.
func (w *World) Score() int { return w.score }

// GameOver reports whether the last tick was terminal.
func (w *World) GameOver() bool { return w.gameOver }

// LastOutcome returns what happened on the most recent Step.
func (w *World) LastOutcome() Outcome { return w.last }

// Heading returns the direction of the last executed move.
func (w *World) Heading() Direction { return w.heading }

// Snake returns a copy of the snake body, head first.
func (w *World) Snake() []Cell { return cloneCells(w.snake) }

// Food returns the food cell. Only meaningful when HasFood is true.
func (w *World) Food() Cell { return w.food }

// HasFood reports whether food is on the board.
func (w *World) HasFood() bool { return w.hasFood }

// Obstacles returns a copy of the active obstacle cells.
func (w *World) Obstacles() []Cell { return cloneCells(w.obstacles) }

// Enemies returns copies of both patrols, vertical first.
func (w *World) Enemies() [2]Patrol {
	var out [2]Patrol
	for i, p := range w.enemies {
		out[i] = Patrol{Body: cloneCells(p.Body), Dir: p.Dir}
	}
	return out
}
