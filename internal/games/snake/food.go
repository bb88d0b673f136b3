package snake

import "math/rand"

// DefaultFoodAttempts bounds the rejection sampling in SpawnFood.
const DefaultFoodAttempts = 1024

// SpawnFood picks a cell in the playable interior (the board minus its
// outermost ring) that is not on the snake and not on an obstacle.
//
// Up to maxAttempts uniform samples are tried. When all of them hit occupied
// cells the interior is scanned row by row and the first free cell is
// returned. ok is false only when the interior has no free cell at all.
func SpawnFood(rng *rand.Rand, body, obstacles []Cell, maxAttempts int) (Cell, bool) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultFoodAttempts
	}

	free := func(c Cell) bool {
		return !contains(body, c) && !contains(obstacles, c)
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		c := At(rng.Intn(Cols-2)+1, rng.Intn(Rows-2)+1)
		if free(c) {
			return c, true
		}
	}

	return firstFree(free)
}

// firstFree scans the interior in row-major order.
func firstFree(free func(Cell) bool) (Cell, bool) {
	for row := 1; row < Rows-1; row++ {
		for col := 1; col < Cols-1; col++ {
			if c := At(col, row); free(c) {
				return c, true
			}
		}
	}
	return Cell{X: -1, Y: -1}, false
}
