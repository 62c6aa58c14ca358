package algorithm

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/pathfinder/grid"
	"github.com/katalvlaran/pathfinder/replay"
	"github.com/katalvlaran/pathfinder/timeline"
)

// Algorithm runs one Strategy against a grid and keeps the results of the
// last completed run together with a replay controller for its timeline.
//
// Execute runs synchronously on the caller's goroutine. Stop may be called
// from any goroutine; every other method belongs to the goroutine that
// owns the grid.
type Algorithm struct {
	grid     *grid.Grid
	strategy Strategy

	state atomic.Int32 // State
	stop  atomic.Bool  // set by Stop during Executing

	mu   sync.Mutex // orders enter, Stop and publish; guards the fields below
	run  *Run
	data Data
	path []grid.Coord

	replay     *replay.Controller
	replayOpts []replay.Option
	now        func() time.Time
}

// New binds strategy s to grid g.
func New(g *grid.Grid, s Strategy, opts ...Option) *Algorithm {
	a := &Algorithm{
		grid:     g,
		strategy: s,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.replay = replay.New(a.replayOpts...)
	a.data.Name = s.Name()

	return a
}

// Validate checks the Start/End preconditions of a run on g.
// Every failure wraps ErrSelectionIncomplete.
func Validate(g *grid.Grid) error {
	start, hasStart := g.StartIndex()
	if !hasStart {
		return fmt.Errorf("%w: %w", ErrSelectionIncomplete, ErrStartNotSet)
	}
	end, hasEnd := g.EndIndex()
	if !hasEnd {
		return fmt.Errorf("%w: %w", ErrSelectionIncomplete, ErrEndNotSet)
	}
	if start == end {
		return fmt.Errorf("%w: %w", ErrSelectionIncomplete, ErrSameStartEnd)
	}

	return nil
}

// Name returns the strategy's display name.
func (a *Algorithm) Name() string { return a.strategy.Name() }

// Grid returns the grid the algorithm searches.
func (a *Algorithm) Grid() *grid.Grid { return a.grid }

// State returns the lifecycle state.
func (a *Algorithm) State() State { return State(a.state.Load()) }

// Execute searches from Start to End and reports whether a path was found.
//
// Steps:
//  1. Validate Start/End; refuse a second concurrent run.
//  2. Discard the strategy's containers and build fresh bookkeeping.
//  3. Seed the open list and step until it empties or End is reached,
//     checking ctx and the stop flag before every step.
//  4. On success reconstruct the path and append it as Found events.
//  5. Snapshot Data, load the timeline into the replay controller and
//     move to Executed.
//
// An aborted run returns an error wrapping ErrAborted (and ctx.Err() when
// the context caused it) and leaves the algorithm NotExecuted.
func (a *Algorithm) Execute(ctx context.Context) (bool, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	// 1) preconditions
	if err := Validate(a.grid); err != nil {
		return false, err
	}
	if !a.enter() {
		return false, ErrAlreadyExecuting
	}

	began := a.now()
	start, _ := a.grid.StartIndex()
	end, _ := a.grid.EndIndex()

	// 2) fresh state
	a.strategy.Abort()
	r := newRun(a.grid, start, end)

	// 3) main loop
	a.strategy.Init(r)
	found := false
	for a.strategy.Pending() > 0 {
		if err := a.interrupted(ctx); err != nil {
			a.abort()
			return false, err
		}
		if a.strategy.Step(r) {
			found = true
			break
		}
	}
	elapsed := a.now().Sub(began)

	// 4) path
	var coords []grid.Coord
	cost := 0
	if found {
		var (
			path []int
			ok   bool
		)
		path, cost, ok = r.reconstruct()
		if !ok {
			found = false
		}
		for _, i := range path {
			x, y := a.grid.Coordinate(i)
			c := grid.Coord{X: x, Y: y}
			coords = append(coords, c)
			r.tl.Append(i, c, grid.Found)
		}
	}

	// 5) publish
	a.mu.Lock()
	a.run = r
	a.path = coords
	a.data = Data{
		RunID:         uuid.New(),
		Name:          a.strategy.Name(),
		TimeTaken:     elapsed,
		PathCost:      cost,
		TilesExplored: r.explored,
		PathFound:     found,
	}
	a.replay.Load(r.tl)
	a.state.Store(int32(Executed))
	a.mu.Unlock()

	return found, nil
}

// enter moves NotExecuted or Executed to Executing.
func (a *Algorithm) enter() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.State() == Executing {
		return false
	}
	a.stop.Store(false)
	a.state.Store(int32(Executing))

	return true
}

// interrupted returns the abort error if ctx is done or Stop was requested.
func (a *Algorithm) interrupted(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrAborted, ctx.Err())
	default:
	}
	if a.stop.Load() {
		return ErrAborted
	}

	return nil
}

// Stop aborts a run in progress or discards the results of a finished one.
// Either way the algorithm ends NotExecuted with empty containers.
// Stop is idempotent and safe from any goroutine.
func (a *Algorithm) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	// a run in progress owns the strategy; it clears it on its way out
	if a.State() == Executing {
		a.stop.Store(true)
		return
	}
	a.reset()
}

// abort ends the run in progress and clears its state.
func (a *Algorithm) abort() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.reset()
}

// reset clears the strategy and the published results. a.mu must be held.
func (a *Algorithm) reset() {
	a.strategy.Abort()
	a.run = nil
	a.path = nil
	a.data = Data{Name: a.strategy.Name()}
	a.replay.Load(nil)
	a.stop.Store(false)
	a.state.Store(int32(NotExecuted))
}

// executed reports whether results of a completed run are available.
func (a *Algorithm) executed() bool { return a.State() == Executed }

// Data returns the snapshot of the last completed run.
// ok is false unless the algorithm is Executed.
func (a *Algorithm) Data() (Data, bool) {
	if !a.executed() {
		return Data{Name: a.strategy.Name()}, false
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.data, true
}

// IsPathFound reports whether the last completed run reached End.
func (a *Algorithm) IsPathFound() bool {
	d, ok := a.Data()

	return ok && d.PathFound
}

// TimeTaken returns the formatted run time, or NotRunYet.
func (a *Algorithm) TimeTaken() string {
	d, ok := a.Data()
	if !ok {
		return NotRunYet
	}

	return d.TimeTakenString()
}

// TotalCost returns the formatted path cost, NoPath, or NotRunYet.
func (a *Algorithm) TotalCost() string {
	d, ok := a.Data()
	if !ok {
		return NotRunYet
	}

	return d.PathCostString()
}

// TilesExplored returns the formatted explored count, or NotRunYet.
func (a *Algorithm) TilesExplored() string {
	d, ok := a.Data()
	if !ok {
		return NotRunYet
	}

	return strconv.Itoa(d.TilesExplored)
}

// Path returns a copy of the last path in Start..End order, or nil.
func (a *Algorithm) Path() []grid.Coord {
	if !a.executed() {
		return nil
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.path) == 0 {
		return nil
	}
	out := make([]grid.Coord, len(a.path))
	copy(out, a.path)

	return out
}

// Timeline returns the timeline of the last completed run, or nil.
func (a *Algorithm) Timeline() *timeline.Timeline {
	if !a.executed() {
		return nil
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.run == nil {
		return nil
	}

	return a.run.tl
}

// Replay returns the controller that replays the last timeline.
func (a *Algorithm) Replay() *replay.Controller { return a.replay }

// PlayVisualization advances the replay by dt at speed and reports whether
// it is complete. Without a completed run there is nothing to show, so it
// reports true at once.
func (a *Algorithm) PlayVisualization(speed replay.Speed, dt time.Duration) bool {
	if !a.executed() {
		return true
	}

	return a.replay.Play(speed, dt)
}
