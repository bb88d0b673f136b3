package snake

// Snapshot captures the session state for determinism testing and replay.
type Snapshot struct {
	Frames   uint64
	Tick     uint64
	Phase    Phase
	Level    int
	Score    int
	SnakeLen int
	Head     Cell
	Dir      Direction
	Food     Cell
	HasFood  bool
	GameOver bool
	Outcome  Outcome
	Running  bool
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Frames:  s.frames,
		Phase:   s.phase,
		Level:   int(s.level),
		Outcome: s.lastOutcome,
		Running: s.running,
	}
	if w := s.world; w != nil {
		snap.Tick = w.tick
		snap.Score = w.score
		snap.SnakeLen = len(w.snake)
		snap.Head = w.snake[0]
		snap.Dir = w.heading
		snap.Food = w.food
		snap.HasFood = w.hasFood
		snap.GameOver = w.gameOver
	}
	return snap
}
