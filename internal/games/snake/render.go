package snake

import (
	"fmt"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Each board cell is drawn two terminal columns wide and one row high.
const (
	ViewCols = Cols * 2 // 64
	ViewRows = Rows     // 24

	unitsPerCol = CellSize / 2
	unitsPerRow = CellSize
)

// Viewport places the board inside a terminal screen.
type Viewport struct {
	OffsetX, OffsetY int
	TooSmall         bool
}

// Layout centers the board in a screen of the given size.
func Layout(width, height int) Viewport {
	if width < ViewCols || height < ViewRows {
		return Viewport{TooSmall: true}
	}
	return Viewport{
		OffsetX: (width - ViewCols) / 2,
		OffsetY: (height - ViewRows) / 2,
	}
}

// SurfacePoint converts a terminal column/row to surface units, taking the
// center of the character cell. ok is false outside the board.
func (v Viewport) SurfacePoint(col, row int) (x, y int, ok bool) {
	if v.TooSmall {
		return 0, 0, false
	}
	col -= v.OffsetX
	row -= v.OffsetY
	if col < 0 || col >= ViewCols || row < 0 || row >= ViewRows {
		return 0, 0, false
	}
	return col*unitsPerCol + unitsPerCol/2, row*unitsPerRow + unitsPerRow/2, true
}

// text draws a label whose top-left corner is at surface position (x, y).
func (v Viewport) text(dst *core.Screen, x, y int, s string, c core.Color) {
	dst.DrawTextColored(v.OffsetX+x/unitsPerCol, v.OffsetY+y/unitsPerRow, s, c)
}

// centered draws a label centered on the board at the given row.
func (v Viewport) centered(dst *core.Screen, row int, s string, c core.Color) {
	col := (ViewCols - len([]rune(s))) / 2
	dst.DrawTextColored(v.OffsetX+col, v.OffsetY+row, s, c)
}

// cell draws a board cell as two glyphs. Off-board cells are skipped.
func (v Viewport) cell(dst *core.Screen, c Cell, glyph [2]rune, color core.Color) {
	if !InBounds(c) {
		return
	}
	x := v.OffsetX + c.Col()*2
	y := v.OffsetY + c.Row()
	dst.SetColored(x, y, glyph[0], color)
	dst.SetColored(x+1, y, glyph[1], color)
}

var (
	glyphHead     = [2]rune{'█', '█'}
	glyphBody     = [2]rune{'▓', '▓'}
	glyphFood     = [2]rune{'(', ')'}
	glyphObstacle = [2]rune{'▒', '▒'}
	glyphEnemy    = [2]rune{'█', '█'}
	glyphGround   = [2]rune{' ', '·'}
)

// Render draws the session to the screen.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	v := Layout(dst.Width(), dst.Height())
	if v.TooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Resize to at least %dx%d", ViewCols, ViewRows))
		return
	}

	if v.OffsetX > 0 && v.OffsetY > 0 {
		dst.DrawBox(core.NewRect(v.OffsetX-1, v.OffsetY-1, ViewCols+2, ViewRows+2))
	}

	switch s.phase {
	case PhaseMenu:
		s.renderMenu(dst, v)
	case PhaseLevelSelect:
		s.renderLevelSelect(dst, v)
	case PhaseHelp:
		s.renderHelp(dst, v)
	case PhasePlaying:
		s.renderBoard(dst, v)
	case PhasePaused:
		s.renderBoard(dst, v)
		renderOverlay(dst, v, "Paused", "Press Enter to resume!")
	case PhaseGameOver:
		renderOverlay(dst, v, fmt.Sprintf("Final Score: %d", s.State().Score), "Press Enter to return to the menu")
	}
}

func (s *Session) renderMenu(dst *core.Screen, v Viewport) {
	v.centered(dst, 5, "S N A K E", core.ColorBrightGreen)
	v.text(dst, StartButton.X, StartButton.Y, "CLICK HERE TO START!", core.ColorBrightWhite)
	v.text(dst, HelpButton.X+10, HelpButton.Y, "Need Help?", core.ColorWhite)
	v.centered(dst, ViewRows-1, "Enter: Start  |  H: Help  |  Q: Quit", core.ColorGray)
}

func (s *Session) renderLevelSelect(dst *core.Screen, v Viewport) {
	v.centered(dst, 3, "SELECT LEVEL", core.ColorBrightGreen)
	for i, r := range LevelButtons {
		lvl := Level(i + 1)
		v.text(dst, r.X+10, r.Y+10, fmt.Sprintf("LEVEL %d", i+1), core.ColorBrightWhite)
		v.text(dst, r.X+110, r.Y+10, lvl.Describe(), core.ColorGray)
	}
	v.centered(dst, ViewRows-1, "Click or press 1/2/3  |  Esc: Back", core.ColorGray)
}

func (s *Session) renderHelp(dst *core.Screen, v Viewport) {
	lines := []string{
		"Press Right to move the snake Right",
		"Press Left to move the snake Left",
		"Press Up to move the snake Upward",
		"Press Down to move the snake Down",
	}
	v.centered(dst, 4, "HELP", core.ColorBrightGreen)
	for i, line := range lines {
		v.centered(dst, 8+i*2, line, core.ColorWhite)
	}
	v.centered(dst, 18, "Press Enter to Back!", core.ColorBrightWhite)
}

func (s *Session) renderBoard(dst *core.Screen, v Viewport) {
	w := s.world
	if w == nil {
		return
	}

	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			v.cell(dst, At(col, row), glyphGround, core.ColorGray)
		}
	}

	if w.level.HasObstacles() {
		for _, c := range w.obstacles {
			v.cell(dst, c, glyphObstacle, core.ColorOrange)
		}
	}
	if w.level.HasEnemies() {
		colors := [2]core.Color{core.ColorBrightRed, core.ColorBlue}
		for i, p := range w.enemies {
			for _, c := range p.Body {
				v.cell(dst, c, glyphEnemy, colors[i])
			}
		}
	}
	if w.hasFood {
		v.cell(dst, w.food, glyphFood, core.ColorRed)
	}
	for i := len(w.snake) - 1; i >= 0; i-- {
		if i == 0 {
			v.cell(dst, w.snake[i], glyphHead, core.ColorBrightGreen)
		} else {
			v.cell(dst, w.snake[i], glyphBody, core.ColorGreen)
		}
	}

	// HUD sits on top of the first board row
	v.text(dst, 10, 10, fmt.Sprintf("Score: %d", w.score), core.ColorBrightWhite)
	v.text(dst, PauseButton.X, PauseButton.Y, "Pause", core.ColorYellow)
}

// renderOverlay draws a centered two-line message box on the board.
func renderOverlay(dst *core.Screen, v Viewport, line1, line2 string) {
	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect(v.OffsetX+(ViewCols-boxW)/2, v.OffsetY+(ViewRows-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	cx, cy := box.Center()
	dst.DrawTextColored(cx-len([]rune(line1))/2, cy-1, line1, core.ColorBrightWhite)
	dst.DrawTextColored(cx-len([]rune(line2))/2, cy+1, line2, core.ColorWhite)
}
