// Package algorithm defines the lifecycle states, result snapshot, strategy
// contract and sentinel errors shared by every search strategy.
package algorithm

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/pathfinder/replay"
)

// Sentinel errors. None of them is fatal: each describes a condition the
// caller reports and recovers from.
var (
	// ErrSelectionIncomplete wraps every Start/End precondition failure.
	ErrSelectionIncomplete = errors.New("algorithm: selection incomplete")

	// ErrStartNotSet indicates the grid has no Start tile.
	ErrStartNotSet = errors.New("algorithm: start tile not set")

	// ErrEndNotSet indicates the grid has no End tile.
	ErrEndNotSet = errors.New("algorithm: end tile not set")

	// ErrSameStartEnd indicates Start and End are the same tile.
	ErrSameStartEnd = errors.New("algorithm: start and end tiles are identical")

	// ErrAborted indicates a run was abandoned by Stop or by its context.
	ErrAborted = errors.New("algorithm: run aborted")

	// ErrAlreadyExecuting indicates Execute was called during a run.
	ErrAlreadyExecuting = errors.New("algorithm: already executing")
)

// Placeholders reported by the string accessors.
const (
	// NotRunYet is reported by result accessors before a run completes.
	NotRunYet = "Not run yet"
	// NoPath is reported as the cost of a run that found no path.
	NoPath = "No path"
)

// State is the lifecycle of one Algorithm.
type State int32

const (
	NotExecuted State = iota
	Executing
	Executed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case NotExecuted:
		return "not executed"
	case Executing:
		return "executing"
	case Executed:
		return "executed"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Data is the value snapshot of one completed run. It is copied out and
// never shared mutably.
type Data struct {
	RunID         uuid.UUID     // unique per completed run
	Name          string        // algorithm display name
	TimeTaken     time.Duration // wall time from Execute entry to loop exit
	PathCost      int           // sum of weights along the path, Start included, End excluded
	TilesExplored int           // tiles expanded by the run
	PathFound     bool          // whether End was reached
}

// TimeTakenString formats TimeTaken in milliseconds.
func (d Data) TimeTakenString() string {
	return strconv.FormatFloat(float64(d.TimeTaken)/float64(time.Millisecond), 'f', 3, 64) + " ms"
}

// PathCostString formats PathCost, or NoPath when nothing was found.
func (d Data) PathCostString() string {
	if !d.PathFound {
		return NoPath
	}

	return strconv.Itoa(d.PathCost)
}

// String summarizes the snapshot on one line.
func (d Data) String() string {
	return fmt.Sprintf("%s: time=%s cost=%s explored=%d",
		d.Name, d.TimeTakenString(), d.PathCostString(), d.TilesExplored)
}

// Strategy is one traversal discipline over the shared Run bookkeeping.
//
// A Strategy owns its open list and visited set. The runtime calls Init
// once per run, then Step while Pending() > 0, checking for cancellation
// between steps.
type Strategy interface {
	// Name is the display name of the algorithm.
	Name() string

	// Init seeds the open list with r.Start().
	Init(r *Run)

	// Step performs one open-list iteration and reports whether End was reached.
	Step(r *Run) bool

	// Pending returns the size of the open list.
	Pending() int

	// Abort discards the open list and the visited set. No partial state
	// may survive into the next run.
	Abort()
}

// Option configures an Algorithm.
type Option func(*Algorithm)

// WithReplayOptions passes options to the Algorithm's replay controller,
// e.g. replay.WithSink to receive events as they are replayed.
func WithReplayOptions(opts ...replay.Option) Option {
	return func(a *Algorithm) {
		a.replayOpts = append(a.replayOpts, opts...)
	}
}

// WithClock replaces time.Now for measuring TimeTaken.
func WithClock(now func() time.Time) Option {
	return func(a *Algorithm) {
		if now != nil {
			a.now = now
		}
	}
}
