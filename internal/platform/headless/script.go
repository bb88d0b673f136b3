package headless

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// ErrScriptInvalid is returned for scripts that cannot be replayed.
var ErrScriptInvalid = errors.New("invalid input script")

// Script is a recorded sequence of inputs keyed by frame number.
//
//	seed: 7
//	frames: 40
//	events:
//	  - {frame: 0, key: confirm}
//	  - {frame: 1, click: {x: 200, y: 170}}
//	  - {frame: 5, key: left}
//	  - {frame: 39, quit: true}
type Script struct {
	Seed   int64         `yaml:"seed"`
	Frames int           `yaml:"frames"` // 0 runs until the frame after the last event
	Events []ScriptEvent `yaml:"events"`
}

// ScriptEvent is one input. Exactly one of Key, Click and Quit is set.
type ScriptEvent struct {
	Frame int    `yaml:"frame"`
	Key   string `yaml:"key,omitempty"`
	Click *Point `yaml:"click,omitempty"`
	Quit  bool   `yaml:"quit,omitempty"`
}

// Point is a pointer position in surface units.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// LoadScript reads and validates a script file.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("headless: failed to read script %s: %w", path, err)
	}
	return ParseScript(data)
}

// ParseScript decodes and validates a YAML script.
func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("headless: %w: %v", ErrScriptInvalid, err)
	}
	if err := s.Validate(); err != nil {
		return Script{}, err
	}
	return s, nil
}

// Validate checks frame numbers and event payloads.
func (s Script) Validate() error {
	if s.Frames < 0 {
		return fmt.Errorf("headless: %w: frames must not be negative", ErrScriptInvalid)
	}
	for i, ev := range s.Events {
		if ev.Frame < 0 {
			return fmt.Errorf("headless: %w: event %d has negative frame", ErrScriptInvalid, i)
		}
		if s.Frames > 0 && ev.Frame >= s.Frames {
			return fmt.Errorf("headless: %w: event %d at frame %d is past the last frame %d", ErrScriptInvalid, i, ev.Frame, s.Frames-1)
		}
		if _, err := ev.event(); err != nil {
			return fmt.Errorf("headless: %w: event %d: %v", ErrScriptInvalid, i, err)
		}
	}
	return nil
}

// TotalFrames returns the number of frames the script runs for.
func (s Script) TotalFrames() int {
	if s.Frames > 0 {
		return s.Frames
	}
	last := -1
	for _, ev := range s.Events {
		last = max(last, ev.Frame)
	}
	return last + 1
}

func (e ScriptEvent) event() (core.Event, error) {
	set := 0
	if e.Key != "" {
		set++
	}
	if e.Click != nil {
		set++
	}
	if e.Quit {
		set++
	}
	if set != 1 {
		return core.Event{}, errors.New("exactly one of key, click or quit must be set")
	}

	switch {
	case e.Quit:
		return core.QuitEvent(), nil
	case e.Click != nil:
		return core.ClickEvent(e.Click.X, e.Click.Y), nil
	default:
		k, ok := core.ParseKey(e.Key)
		if !ok {
			return core.Event{}, fmt.Errorf("unknown key %q", e.Key)
		}
		return core.KeyEvent(k), nil
	}
}

// ScriptSource replays a script one frame per Poll.
type ScriptSource struct {
	frames [][]core.Event
	next   int
}

// NewScriptSource builds a source from a validated script. Events sharing a
// frame keep their file order.
func NewScriptSource(s Script) (*ScriptSource, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	events := make([]ScriptEvent, len(s.Events))
	copy(events, s.Events)
	sort.SliceStable(events, func(i, j int) bool { return events[i].Frame < events[j].Frame })

	frames := make([][]core.Event, s.TotalFrames())
	for _, e := range events {
		ev, _ := e.event()
		frames[e.Frame] = append(frames[e.Frame], ev)
	}
	return &ScriptSource{frames: frames}, nil
}

// Poll returns the next frame's events.
func (s *ScriptSource) Poll() ([]core.Event, bool) {
	if s.next >= len(s.frames) {
		return nil, false
	}
	events := s.frames[s.next]
	s.next++
	return events, true
}

// Remaining returns the number of frames not yet polled.
func (s *ScriptSource) Remaining() int { return len(s.frames) - s.next }
