// Package timeline records the tile state changes produced by a search so
// they can be replayed later, at any speed, as many times as needed.
//
// A Timeline is append-only while a search runs and read-only afterwards.
// It is the only channel between the synchronous search and the
// frame-paced replay: the search never waits on rendering, and the replay
// never re-runs search logic.
package timeline

import (
	"github.com/katalvlaran/pathfinder/grid"
)

// Event is one recorded visual state change of one tile.
type Event struct {
	Seq   int            // position in the timeline, starting at 0
	Index int            // tile index within the grid
	Coord grid.Coord     // tile coordinate, denormalized for renderers
	State grid.AnimState // state the tile switches to
}

// Timeline is an ordered, append-only sequence of Events.
// The zero value is an empty timeline ready for use.
type Timeline struct {
	events []Event
}

// New returns an empty Timeline with room for capacity events.
func New(capacity int) *Timeline {
	if capacity < 0 {
		capacity = 0
	}

	return &Timeline{events: make([]Event, 0, capacity)}
}

// Append records that the tile at index/coord switched to state.
// Seq is assigned from the current length.
func (t *Timeline) Append(index int, coord grid.Coord, state grid.AnimState) {
	t.events = append(t.events, Event{
		Seq:   len(t.events),
		Index: index,
		Coord: coord,
		State: state,
	})
}

// Len returns the number of recorded events.
func (t *Timeline) Len() int {
	if t == nil {
		return 0
	}

	return len(t.events)
}

// At returns the i-th event. i must be in [0, Len()).
func (t *Timeline) At(i int) Event {
	return t.events[i]
}

// Events returns a copy of all recorded events.
func (t *Timeline) Events() []Event {
	if t == nil {
		return nil
	}
	out := make([]Event, len(t.events))
	copy(out, t.events)

	return out
}

// Count returns how many events switch a tile to state s.
func (t *Timeline) Count(s grid.AnimState) int {
	if t == nil {
		return 0
	}
	n := 0
	for i := range t.events {
		if t.events[i].State == s {
			n++
		}
	}

	return n
}

// Reset drops every event, keeping the backing array.
func (t *Timeline) Reset() {
	t.events = t.events[:0]
}
