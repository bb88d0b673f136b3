// Package headless runs a session without a terminal. Each iteration polls
// input, runs one frame, presents it and sleeps until the next tick boundary.
package headless

import (
	"context"
	"fmt"
	"time"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// Clock abstracts wall time so loops can run instantly in tests.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// InputSource yields the events observed during one frame. ok is false once
// the source has nothing more to offer.
type InputSource interface {
	Poll() (events []core.Event, ok bool)
}

// Presenter shows the session after each frame.
type Presenter interface {
	Present(s *snake.Session) error
}

// Run drives the session until it stops running, the input source is
// exhausted or ctx is done. out may be nil.
func Run(ctx context.Context, sess *snake.Session, src InputSource, out Presenter, clock Clock) error {
	interval := time.Second / time.Duration(sess.TickRate())
	next := clock.Now()

	for sess.Running() {
		if err := ctx.Err(); err != nil {
			return err
		}

		events, ok := src.Poll()
		if !ok {
			return nil
		}
		sess.Frame(events)

		if out != nil {
			if err := out.Present(sess); err != nil {
				return fmt.Errorf("headless: present: %w", err)
			}
		}

		next = next.Add(interval)
		if d := next.Sub(clock.Now()); d > 0 {
			clock.Sleep(d)
		}
	}
	return nil
}

// SystemClock uses the real time.
type SystemClock struct{}

func (SystemClock) Now() time.Time        { return time.Now() }
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

// ManualClock advances only when slept on.
type ManualClock struct {
	t     time.Time
	slept time.Duration
}

// NewManualClock creates a clock starting at t.
func NewManualClock(t time.Time) *ManualClock {
	return &ManualClock{t: t}
}

func (c *ManualClock) Now() time.Time { return c.t }

func (c *ManualClock) Sleep(d time.Duration) {
	c.t = c.t.Add(d)
	c.slept += d
}

// Advance moves the clock forward without counting it as sleep.
func (c *ManualClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// Slept returns the total time passed to Sleep.
func (c *ManualClock) Slept() time.Duration { return c.slept }
