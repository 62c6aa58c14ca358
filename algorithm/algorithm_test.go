package algorithm_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinder/algorithm"
	"github.com/katalvlaran/pathfinder/grid"
	"github.com/katalvlaran/pathfinder/replay"
	"github.com/katalvlaran/pathfinder/timeline"
)

// flood is a minimal first-in-first-out strategy used to exercise the runtime.
type flood struct {
	queue   []int
	visited map[int]bool
}

func (f *flood) Name() string { return "flood" }

func (f *flood) Init(r *algorithm.Run) {
	f.visited = map[int]bool{}
	f.queue = append(f.queue, r.Start())
	r.Open(r.Start())
}

func (f *flood) Step(r *algorithm.Run) bool {
	cur := f.queue[0]
	f.queue = f.queue[1:]
	f.visited[cur] = true
	r.Explore(cur)
	if r.IsEnd(cur) {
		return true
	}
	r.EachNeighbor(cur, func(n int) bool {
		if !f.visited[n] && r.Discover(n, cur) {
			f.queue = append(f.queue, n)
		}
		return true
	})

	return false
}

func (f *flood) Pending() int { return len(f.queue) }

func (f *flood) Abort() {
	f.queue = nil
	f.visited = nil
}

// spinner never finishes on its own.
type spinner struct {
	steps  int
	onStep func(n int)
}

func (s *spinner) Name() string        { return "spinner" }
func (s *spinner) Init(*algorithm.Run) { s.steps = 0 }
func (s *spinner) Pending() int        { return 1 }
func (s *spinner) Abort()              { s.steps = 0 }

func (s *spinner) Step(*algorithm.Run) bool {
	s.steps++
	if s.onStep != nil {
		s.onStep(s.steps)
	}
	return false
}

// newGrid builds a w×h grid with Start at (0,0) and End at the far corner.
func newGrid(t *testing.T, w, h int) *grid.Grid {
	t.Helper()
	g, err := grid.New(w, h)
	require.NoError(t, err)
	g.SetTileType(grid.Coord{X: 0, Y: 0}, grid.StartTile)
	g.SetTileType(grid.Coord{X: w - 1, Y: h - 1}, grid.EndTile)

	return g
}

func TestValidate(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	err = algorithm.Validate(g)
	assert.ErrorIs(t, err, algorithm.ErrSelectionIncomplete)
	assert.ErrorIs(t, err, algorithm.ErrStartNotSet)

	g.SetTileType(grid.Coord{X: 0, Y: 0}, grid.StartTile)
	err = algorithm.Validate(g)
	assert.ErrorIs(t, err, algorithm.ErrSelectionIncomplete)
	assert.ErrorIs(t, err, algorithm.ErrEndNotSet)

	g.SetTileType(grid.Coord{X: 2, Y: 2}, grid.EndTile)
	assert.NoError(t, algorithm.Validate(g))
}

func TestExecute_Preconditions(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)
	a := algorithm.New(g, &flood{})

	found, err := a.Execute(context.Background())
	assert.False(t, found)
	assert.ErrorIs(t, err, algorithm.ErrStartNotSet)
	assert.Equal(t, algorithm.NotExecuted, a.State(), "a refused run never starts")
}

func TestExecute_ResultsAndAccessors(t *testing.T) {
	g := newGrid(t, 3, 3)
	tick := time.Unix(0, 0)
	clock := func() time.Time {
		tick = tick.Add(1500 * time.Microsecond)
		return tick
	}
	a := algorithm.New(g, &flood{}, algorithm.WithClock(clock))

	assert.Equal(t, algorithm.NotRunYet, a.TimeTaken())
	assert.Equal(t, algorithm.NotRunYet, a.TotalCost())
	assert.Equal(t, algorithm.NotRunYet, a.TilesExplored())
	assert.False(t, a.IsPathFound())

	found, err := a.Execute(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, algorithm.Executed, a.State())

	d, ok := a.Data()
	require.True(t, ok)
	assert.Equal(t, "flood", d.Name)
	assert.Equal(t, 4, d.PathCost, "End weight is excluded")
	assert.NotZero(t, d.RunID)
	assert.Equal(t, "1.500 ms", a.TimeTaken())
	assert.Equal(t, "4", a.TotalCost())

	path := a.Path()
	require.Len(t, path, 5)
	assert.Equal(t, grid.Coord{X: 0, Y: 0}, path[0])
	assert.Equal(t, grid.Coord{X: 2, Y: 2}, path[4])

	// Found events trail the search events in Start..End order.
	tl := a.Timeline()
	require.NotNil(t, tl)
	assert.Equal(t, 5, tl.Count(grid.Found))
	assert.Equal(t, d.TilesExplored, tl.Count(grid.Processed))
	last := tl.At(tl.Len() - 1)
	assert.Equal(t, grid.Found, last.State)
	assert.Equal(t, grid.Coord{X: 2, Y: 2}, last.Coord)
}

func TestExecute_CostIncludesStartWeight(t *testing.T) {
	g := newGrid(t, 3, 1)
	require.NoError(t, g.SetTileWeight(grid.Coord{X: 0, Y: 0}, 5))
	require.NoError(t, g.SetTileWeight(grid.Coord{X: 1, Y: 0}, 2))
	require.NoError(t, g.SetTileWeight(grid.Coord{X: 2, Y: 0}, 7))
	a := algorithm.New(g, &flood{})

	found, err := a.Execute(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "7", a.TotalCost(), "Start and the middle tile count, End does not")

	g.SetTileType(grid.Coord{X: 0, Y: 0}, grid.EndTile)
	g.SetTileType(grid.Coord{X: 1, Y: 0}, grid.StartTile)
	_, err = a.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2", a.TotalCost(), "a single step costs the Start weight")
}

func TestExecute_NoPath(t *testing.T) {
	g := newGrid(t, 3, 3)
	for x := 0; x < 3; x++ {
		g.SetTileType(grid.Coord{X: x, Y: 1}, grid.WallTile)
	}
	a := algorithm.New(g, &flood{})

	found, err := a.Execute(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, algorithm.Executed, a.State())
	assert.Equal(t, algorithm.NoPath, a.TotalCost())
	assert.Empty(t, a.Path())
	assert.Equal(t, "3", a.TilesExplored())
}

func TestExecute_ReRunGetsFreshRunID(t *testing.T) {
	g := newGrid(t, 4, 4)
	a := algorithm.New(g, &flood{})

	_, err := a.Execute(context.Background())
	require.NoError(t, err)
	first, _ := a.Data()

	_, err = a.Execute(context.Background())
	require.NoError(t, err)
	second, _ := a.Data()

	assert.NotEqual(t, first.RunID, second.RunID)
	assert.Equal(t, first.TilesExplored, second.TilesExplored, "no state leaks across runs")
	assert.Equal(t, first.PathCost, second.PathCost)
}

func TestExecute_ContextCancel(t *testing.T) {
	g := newGrid(t, 3, 3)
	ctx, cancel := context.WithCancel(context.Background())
	s := &spinner{onStep: func(n int) {
		if n == 10 {
			cancel()
		}
	}}
	a := algorithm.New(g, s)

	found, err := a.Execute(ctx)
	assert.False(t, found)
	assert.ErrorIs(t, err, algorithm.ErrAborted)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, algorithm.NotExecuted, a.State())
	assert.Equal(t, 0, s.steps, "aborted strategy is reset")
}

func TestExecute_StopDuringRun(t *testing.T) {
	g := newGrid(t, 3, 3)
	var a *algorithm.Algorithm
	s := &spinner{onStep: func(n int) {
		if n == 3 {
			a.Stop()
			a.Stop()
		}
	}}
	a = algorithm.New(g, s)

	_, err := a.Execute(context.Background())
	assert.ErrorIs(t, err, algorithm.ErrAborted)
	assert.NotErrorIs(t, err, context.Canceled)
	assert.Equal(t, algorithm.NotExecuted, a.State())
	assert.Equal(t, algorithm.NotRunYet, a.TimeTaken())

	// The stop flag does not survive into the next run.
	reached := 0
	s.onStep = func(n int) {
		reached = n
		if n == 5 {
			a.Stop()
		}
	}
	_, err = a.Execute(context.Background())
	assert.ErrorIs(t, err, algorithm.ErrAborted)
	assert.Equal(t, 5, reached)
}

func TestExecute_Reentrant(t *testing.T) {
	g := newGrid(t, 3, 3)
	var (
		a     *algorithm.Algorithm
		inner error
	)
	s := &spinner{onStep: func(n int) {
		if n == 1 {
			_, inner = a.Execute(context.Background())
			a.Stop()
		}
	}}
	a = algorithm.New(g, s)

	_, err := a.Execute(context.Background())
	assert.ErrorIs(t, err, algorithm.ErrAborted)
	assert.ErrorIs(t, inner, algorithm.ErrAlreadyExecuting)
}

func TestStop_ConcurrentWithExecute(t *testing.T) {
	g := newGrid(t, 30, 30)
	a := algorithm.New(g, &flood{})

	var wg sync.WaitGroup
	errs := make(chan error, 200)
	for w := 0; w < 2; w++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_, err := a.Execute(context.Background())
				errs <- err
			}
		}()
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				a.Stop()
				_ = a.TotalCost()
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err == nil {
			continue
		}
		assert.True(t, errors.Is(err, algorithm.ErrAborted) || errors.Is(err, algorithm.ErrAlreadyExecuting), "%v", err)
	}
	assert.NotEqual(t, algorithm.Executing, a.State())

	a.Stop()
	assert.Equal(t, algorithm.NotExecuted, a.State())
	found, err := a.Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, found, "nothing from the contended runs survives")
	assert.Equal(t, "58", a.TotalCost())
}

func TestStop_DiscardsResults(t *testing.T) {
	g := newGrid(t, 3, 3)
	a := algorithm.New(g, &flood{})
	_, err := a.Execute(context.Background())
	require.NoError(t, err)

	a.Stop()
	a.Stop()
	assert.Equal(t, algorithm.NotExecuted, a.State())
	assert.Nil(t, a.Timeline())
	assert.Nil(t, a.Path())
	_, ok := a.Data()
	assert.False(t, ok)
	assert.True(t, a.PlayVisualization(replay.Slow, time.Second), "nothing to replay")
}

func TestPlayVisualization(t *testing.T) {
	g := newGrid(t, 3, 3)
	var replayed int
	a := algorithm.New(g, &flood{}, algorithm.WithReplayOptions(
		replay.WithSink(func(timeline.Event) { replayed++ }),
	))
	assert.True(t, a.PlayVisualization(replay.Slow, time.Second), "not executed yet")

	_, err := a.Execute(context.Background())
	require.NoError(t, err)
	total := a.Timeline().Len()

	assert.False(t, a.PlayVisualization(replay.Slow, 100*time.Millisecond))
	assert.Equal(t, 1, replayed)
	assert.True(t, a.PlayVisualization(replay.Instant, 0))
	assert.Equal(t, total, replayed)
	assert.Equal(t, replay.Complete, a.Replay().State())
}
