// Package replay advances a recorded timeline at a configurable speed,
// driven by the caller's frame time delta.
//
// The controller is pure presentation: it reads a finished timeline and
// hands its events to a Sink in order. It never re-runs search logic and
// never mutates the grid or any strategy.
package replay

import (
	"time"

	"github.com/katalvlaran/pathfinder/timeline"
)

// Controller walks one timeline: Idle → Playing → (Paused | Complete).
type Controller struct {
	tl     *timeline.Timeline
	pos    int     // next event to emit
	budget float64 // fractional events carried between frames
	state  State
	sink   Sink
}

// New returns an Idle controller with no timeline loaded.
func New(opts ...Option) *Controller {
	c := &Controller{sink: func(timeline.Event) {}}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Load replaces the timeline and rewinds to Idle.
func (c *Controller) Load(tl *timeline.Timeline) {
	c.tl = tl
	c.Restart()
}

// Restart rewinds the current timeline to its first event.
func (c *Controller) Restart() {
	c.pos = 0
	c.budget = 0
	c.state = Idle
}

// Pause stops advancement while Playing.
func (c *Controller) Pause() {
	if c.state == Playing {
		c.state = Paused
	}
}

// Resume continues a paused replay.
func (c *Controller) Resume() {
	if c.state == Paused {
		c.state = Playing
	}
}

// State returns the current lifecycle state.
func (c *Controller) State() State { return c.state }

// Position returns how many events were consumed so far.
func (c *Controller) Position() int { return c.pos }

// Len returns the number of events in the loaded timeline.
func (c *Controller) Len() int { return c.tl.Len() }

// Remaining returns how many events are still to be consumed.
func (c *Controller) Remaining() int { return c.tl.Len() - c.pos }

// Play advances the replay by dt at speed and reports whether it is
// complete. A call after completion restarts the same timeline.
func (c *Controller) Play(speed Speed, dt time.Duration) bool {
	_, done := c.Advance(speed, dt)

	return done
}

// Advance is Play that also returns the events consumed by this call.
//
// Behavior:
//  1. Complete restarts from the beginning; Idle starts Playing.
//  2. Paused consumes nothing.
//  3. Instant and anything past it consume the whole remainder; other
//     speeds accumulate dt × EventsPerSecond and consume its integer part.
//  4. An empty or missing timeline completes at once.
func (c *Controller) Advance(speed Speed, dt time.Duration) ([]timeline.Event, bool) {
	switch c.state {
	case Paused:
		return nil, false
	case Complete:
		c.Restart()
	}
	c.state = Playing

	remaining := c.Remaining()
	if remaining <= 0 {
		c.state = Complete
		return nil, true
	}

	n := remaining
	if speed < Instant {
		if dt > 0 {
			c.budget += dt.Seconds() * speed.EventsPerSecond()
		}
		n = int(c.budget)
		if n > remaining {
			n = remaining
		}
		c.budget -= float64(n)
	}

	out := make([]timeline.Event, 0, n)
	for i := 0; i < n; i++ {
		ev := c.tl.At(c.pos)
		c.pos++
		c.sink(ev)
		out = append(out, ev)
	}

	if c.pos >= c.tl.Len() {
		c.state = Complete
		c.budget = 0
		return out, true
	}

	return out, false
}
