package headless

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

func newSession(seed int64) *snake.Session {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	return snake.NewSession(cfg)
}

// sliceSource replays fixed frames.
type sliceSource struct {
	frames [][]core.Event
	polled int
}

func (s *sliceSource) Poll() ([]core.Event, bool) {
	if s.polled >= len(s.frames) {
		return nil, false
	}
	ev := s.frames[s.polled]
	s.polled++
	return ev, true
}

type failingPresenter struct{ after int }

func (p *failingPresenter) Present(*snake.Session) error {
	p.after--
	if p.after < 0 {
		return errors.New("display gone")
	}
	return nil
}

func TestRunStopsWhenSourceIsExhausted(t *testing.T) {
	sess := newSession(1)
	src := &sliceSource{frames: make([][]core.Event, 10)}
	rec := NewScreenRecorder()
	clock := NewManualClock(time.Unix(0, 0))

	if err := Run(context.Background(), sess, src, rec, clock); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if rec.Frames() != 10 || sess.Snapshot().Frames != 10 {
		t.Errorf("presented %d frames, session saw %d, expected 10", rec.Frames(), sess.Snapshot().Frames)
	}
	if !sess.Running() {
		t.Error("session should still be running")
	}
}

func TestRunPacesFrames(t *testing.T) {
	sess := newSession(1)
	src := &sliceSource{frames: make([][]core.Event, 7)}
	clock := NewManualClock(time.Unix(0, 0))

	if err := Run(context.Background(), sess, src, nil, clock); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	interval := time.Second / 7
	if clock.Slept() != 7*interval {
		t.Errorf("slept %v, expected %v", clock.Slept(), 7*interval)
	}
}

// Frames that overrun their slot are not followed by a sleep.
type slowSource struct {
	sliceSource
	clock *ManualClock
}

func (s *slowSource) Poll() ([]core.Event, bool) {
	s.clock.Advance(time.Second)
	return s.sliceSource.Poll()
}

func TestRunSkipsSleepWhenBehind(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	src := &slowSource{sliceSource: sliceSource{frames: make([][]core.Event, 3)}, clock: clock}

	if err := Run(context.Background(), newSession(1), src, nil, clock); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if clock.Slept() != 0 {
		t.Errorf("slept %v while behind schedule", clock.Slept())
	}
}

func TestRunStopsOnQuit(t *testing.T) {
	sess := newSession(1)
	src := &sliceSource{frames: [][]core.Event{
		nil,
		{core.QuitEvent()},
		nil,
		nil,
	}}

	if err := Run(context.Background(), sess, src, nil, NewManualClock(time.Unix(0, 0))); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if sess.Running() {
		t.Error("session should have stopped")
	}
	if src.polled != 2 {
		t.Errorf("polled %d frames, expected 2", src.polled)
	}
}

func TestRunHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := &sliceSource{frames: make([][]core.Event, 5)}
	err := Run(ctx, newSession(1), src, nil, NewManualClock(time.Unix(0, 0)))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, expected context.Canceled", err)
	}
	if src.polled != 0 {
		t.Errorf("polled %d frames after cancel", src.polled)
	}
}

func TestRunPresenterError(t *testing.T) {
	src := &sliceSource{frames: make([][]core.Event, 5)}
	err := Run(context.Background(), newSession(1), src, &failingPresenter{after: 2}, NewManualClock(time.Unix(0, 0)))
	if err == nil || !strings.Contains(err.Error(), "display gone") {
		t.Errorf("err = %v, expected presenter failure", err)
	}
	if src.polled != 3 {
		t.Errorf("polled %d frames, expected 3", src.polled)
	}
}

func TestParseScript(t *testing.T) {
	s, err := ParseScript([]byte(`
seed: 3
events:
  - {frame: 2, key: left}
  - {frame: 0, key: confirm}
  - {frame: 1, click: {x: 130, y: 150}}
  - {frame: 2, quit: true}
`))
	if err != nil {
		t.Fatalf("ParseScript() failed: %v", err)
	}
	if s.Seed != 3 || s.TotalFrames() != 3 {
		t.Errorf("seed=%d frames=%d", s.Seed, s.TotalFrames())
	}

	src, err := NewScriptSource(s)
	if err != nil {
		t.Fatalf("NewScriptSource() failed: %v", err)
	}
	expected := [][]core.Event{
		{core.KeyEvent(core.KeyConfirm)},
		{core.ClickEvent(130, 150)},
		{core.KeyEvent(core.KeyLeft), core.QuitEvent()},
	}
	for i, want := range expected {
		got, ok := src.Poll()
		if !ok {
			t.Fatalf("frame %d: source exhausted", i)
		}
		if len(got) != len(want) {
			t.Fatalf("frame %d: got %v, expected %v", i, got, want)
		}
		for j := range want {
			if got[j] != want[j] {
				t.Errorf("frame %d event %d = %+v, expected %+v", i, j, got[j], want[j])
			}
		}
	}
	if _, ok := src.Poll(); ok {
		t.Error("source should be exhausted")
	}
}

func TestParseScriptInvalid(t *testing.T) {
	tests := map[string]string{
		"malformed":      "events: [",
		"negative total": "frames: -1",
		"negative frame": "events:\n  - {frame: -1, key: up}",
		"past the end":   "frames: 2\nevents:\n  - {frame: 2, key: up}",
		"unknown key":    "events:\n  - {frame: 0, key: jump}",
		"empty event":    "events:\n  - {frame: 0}",
		"two payloads":   "events:\n  - {frame: 0, key: up, quit: true}",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseScript([]byte(data)); !errors.Is(err, ErrScriptInvalid) {
				t.Errorf("err = %v, expected ErrScriptInvalid", err)
			}
		})
	}
}

func TestLoadScriptAndReplay(t *testing.T) {
	s, err := LoadScript(filepath.Join("testdata", "level1_wall.yaml"))
	if err != nil {
		t.Fatalf("LoadScript() failed: %v", err)
	}
	src, err := NewScriptSource(s)
	if err != nil {
		t.Fatalf("NewScriptSource() failed: %v", err)
	}

	cfg := core.DefaultConfig()
	cfg.Seed = s.Seed
	sess := snake.NewSession(cfg)

	var trace strings.Builder
	rec := NewScreenRecorder()
	if err := Run(context.Background(), sess, src, Multi{rec, NewTraceWriter(&trace)}, NewManualClock(time.Unix(0, 0))); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if sess.Phase() != snake.PhaseMenu || !sess.Running() {
		t.Errorf("phase=%v running=%v, expected menu after confirming game over", sess.Phase(), sess.Running())
	}
	lines := strings.Split(strings.TrimSpace(trace.String()), "\n")
	if len(lines) != 30 {
		t.Fatalf("trace has %d lines, expected 30", len(lines))
	}
	if !strings.Contains(lines[24], "phase=game_over") || !strings.Contains(lines[24], "outcome=wall") {
		t.Errorf("frame 25 = %q, expected wall game over", lines[24])
	}
	if !strings.Contains(lines[23], "phase=playing") {
		t.Errorf("frame 24 = %q, expected still playing", lines[23])
	}
	if !strings.Contains(rec.Screen().String(), "CLICK HERE TO START!") {
		t.Error("final screen should show the menu")
	}
}

func TestFormatSnapshot(t *testing.T) {
	menu := FormatSnapshot(snake.Snapshot{Frames: 3, Phase: snake.PhaseMenu, Running: true})
	if menu != "frame=3 phase=menu running=true" {
		t.Errorf("menu line = %q", menu)
	}

	line := FormatSnapshot(snake.Snapshot{
		Frames: 9, Phase: snake.PhaseGameOver, Level: 2, Tick: 8, Score: 20, SnakeLen: 5,
		Head: snake.Cell{X: 220, Y: 240}, Dir: snake.DirUp, Outcome: snake.OutcomeObstacle,
		HasFood: true, Food: snake.Cell{X: 40, Y: 60}, GameOver: true,
	})
	for _, want := range []string{"level=2", "score=20", "head=220,240", "dir=up", "outcome=obstacle", "food=40,60", "game_over=true"} {
		if !strings.Contains(line, want) {
			t.Errorf("line %q missing %q", line, want)
		}
	}
}
