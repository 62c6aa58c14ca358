// Package replay defines the speed and state enums of the replay controller.
package replay

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/pathfinder/timeline"
)

// ErrUnknownSpeed is returned by ParseSpeed for an unrecognized name.
var ErrUnknownSpeed = errors.New("replay: unknown speed")

// Speed selects how fast a recorded timeline is consumed.
type Speed uint8

const (
	Slow Speed = iota
	Average
	Fast
	SuperFast
	// Instant consumes the whole remaining timeline in one call.
	Instant
)

// eventsPerSecond maps each finite speed to its replay rate.
var eventsPerSecond = [...]float64{
	Slow:      15,
	Average:   60,
	Fast:      240,
	SuperFast: 1200,
}

// EventsPerSecond returns the replay rate of s; Instant and any speed
// past it report +Inf.
func (s Speed) EventsPerSecond() float64 {
	if int(s) < len(eventsPerSecond) {
		return eventsPerSecond[s]
	}

	return math.Inf(1)
}

// String returns the display label of s.
func (s Speed) String() string {
	switch s {
	case Slow:
		return "Slow"
	case Average:
		return "Normal"
	case Fast:
		return "Fast"
	case SuperFast:
		return "SuperFast"
	case Instant:
		return "Instant"
	default:
		return fmt.Sprintf("Speed(%d)", uint8(s))
	}
}

// ParseSpeed accepts the display labels (case-insensitive) plus "average".
func ParseSpeed(s string) (Speed, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "slow":
		return Slow, nil
	case "normal", "average":
		return Average, nil
	case "fast":
		return Fast, nil
	case "superfast":
		return SuperFast, nil
	case "instant":
		return Instant, nil
	}

	return Average, fmt.Errorf("%w: %q", ErrUnknownSpeed, s)
}

// State is the replay controller's lifecycle state.
type State uint8

const (
	// Idle: a timeline is loaded (or not) and nothing was played yet.
	Idle State = iota
	// Playing: events are being consumed.
	Playing
	// Paused: Play calls do not advance until Resume.
	Paused
	// Complete: every event was consumed.
	Complete
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Complete:
		return "complete"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Sink receives every event as the replay consumes it, in recorded order.
type Sink func(ev timeline.Event)

// Option configures a Controller.
type Option func(*Controller)

// WithSink installs fn as the per-event callback. A nil fn is ignored.
func WithSink(fn Sink) Option {
	return func(c *Controller) {
		if fn != nil {
			c.sink = fn
		}
	}
}
