package snake

import "testing"

func TestInBounds(t *testing.T) {
	tests := []struct {
		name     string
		c        Cell
		expected bool
	}{
		{"origin", Cell{0, 0}, true},
		{"last cell", Cell{BoardWidth - CellSize, BoardHeight - CellSize}, true},
		{"right edge", Cell{BoardWidth, 0}, false},
		{"bottom edge", Cell{0, BoardHeight}, false},
		{"left of board", Cell{-CellSize, 100}, false},
		{"above board", Cell{100, -CellSize}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := InBounds(tc.c); got != tc.expected {
				t.Errorf("InBounds(%v) = %v, expected %v", tc.c, got, tc.expected)
			}
		})
	}
}

func TestCellAdd(t *testing.T) {
	c := Cell{100, 100}
	tests := []struct {
		d        Direction
		expected Cell
	}{
		{DirUp, Cell{100, 80}},
		{DirDown, Cell{100, 120}},
		{DirLeft, Cell{80, 100}},
		{DirRight, Cell{120, 100}},
	}
	for _, tc := range tests {
		if got := c.Add(tc.d); got != tc.expected {
			t.Errorf("Add(%v) = %v, expected %v", tc.d, got, tc.expected)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}
	for d, opp := range pairs {
		if d.Opposite() != opp {
			t.Errorf("%v.Opposite() = %v, expected %v", d, d.Opposite(), opp)
		}
	}
}

func TestCellColRow(t *testing.T) {
	if c := At(3, 5); c.Col() != 3 || c.Row() != 5 {
		t.Errorf("At(3, 5) round trip gave (%d, %d)", c.Col(), c.Row())
	}
	if c := (Cell{-CellSize, 0}); c.Col() != -1 {
		t.Errorf("Col() of x=-%d should be -1, got %d", CellSize, c.Col())
	}
}
