package headless

import (
	"fmt"
	"io"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// ScreenRecorder renders every frame into an off-screen buffer and keeps
// the latest one.
type ScreenRecorder struct {
	screen *core.Screen
	frames int
}

// NewScreenRecorder creates a recorder sized to the board view.
func NewScreenRecorder() *ScreenRecorder {
	return &ScreenRecorder{screen: core.NewScreen(snake.ViewCols, snake.ViewRows)}
}

func (r *ScreenRecorder) Present(s *snake.Session) error {
	s.Render(r.screen)
	r.frames++
	return nil
}

// Screen returns the most recent render.
func (r *ScreenRecorder) Screen() *core.Screen { return r.screen }

// Frames returns the number of frames presented.
func (r *ScreenRecorder) Frames() int { return r.frames }

// TraceWriter writes one snapshot line per frame.
type TraceWriter struct {
	w io.Writer
}

// NewTraceWriter creates a presenter writing to w.
func NewTraceWriter(w io.Writer) *TraceWriter {
	return &TraceWriter{w: w}
}

func (t *TraceWriter) Present(s *snake.Session) error {
	_, err := fmt.Fprintln(t.w, FormatSnapshot(s.Snapshot()))
	return err
}

// FormatSnapshot renders a snapshot as a single key=value line.
func FormatSnapshot(snap snake.Snapshot) string {
	line := fmt.Sprintf("frame=%d phase=%s running=%t", snap.Frames, snap.Phase, snap.Running)
	if snap.Level == 0 {
		return line
	}
	line += fmt.Sprintf(" level=%d tick=%d score=%d len=%d head=%d,%d dir=%s outcome=%s",
		snap.Level, snap.Tick, snap.Score, snap.SnakeLen, snap.Head.X, snap.Head.Y, snap.Dir, snap.Outcome)
	if snap.HasFood {
		line += fmt.Sprintf(" food=%d,%d", snap.Food.X, snap.Food.Y)
	}
	if snap.GameOver {
		line += " game_over=true"
	}
	return line
}

// Multi fans a frame out to several presenters in order.
type Multi []Presenter

func (m Multi) Present(s *snake.Session) error {
	for _, p := range m {
		if err := p.Present(s); err != nil {
			return err
		}
	}
	return nil
}
