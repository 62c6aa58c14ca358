package selector

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/katalvlaran/pathfinder/algorithm"
	"github.com/katalvlaran/pathfinder/astar"
	"github.com/katalvlaran/pathfinder/bfs"
	"github.com/katalvlaran/pathfinder/dfs"
	"github.com/katalvlaran/pathfinder/dijkstra"
	"github.com/katalvlaran/pathfinder/grid"
	"github.com/katalvlaran/pathfinder/replay"
)

// Selector owns one Algorithm per Type over a shared grid and remembers
// which one ran last.
type Selector struct {
	grid     *grid.Grid
	algs     [typeCount]*algorithm.Algorithm
	reporter Reporter
	algOpts  []algorithm.Option

	mu          sync.Mutex // guards the selection and snapshots
	current     Type
	selected    bool
	previous    algorithm.Data
	hasPrevious bool
}

// New builds a Selector over g with nothing selected.
func New(g *grid.Grid, opts ...Option) *Selector {
	s := &Selector{grid: g, reporter: Discard}
	for _, opt := range opts {
		opt(s)
	}
	s.algs[DepthFirstSearch] = dfs.New(g, s.algOpts...)
	s.algs[BreadthFirstSearch] = bfs.New(g, s.algOpts...)
	s.algs[Dijkstra] = dijkstra.New(g, s.algOpts...)
	s.algs[AStar] = astar.New(g, s.algOpts...)

	return s
}

// Grid returns the shared grid.
func (s *Selector) Grid() *grid.Grid { return s.grid }

// Algorithm returns the Algorithm bound to t.
func (s *Selector) Algorithm(t Type) (*algorithm.Algorithm, bool) {
	if !t.Valid() {
		return nil, false
	}

	return s.algs[t], true
}

// Current returns the selected Algorithm and its Type.
func (s *Selector) Current() (*algorithm.Algorithm, Type, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.selected {
		return nil, 0, false
	}

	return s.algs[s.current], s.current, true
}

// Execute selects t and runs it to completion.
//
// Steps:
//  1. Check Start/End; report which one is missing and return the error.
//  2. Keep the selected algorithm's last result as the previous snapshot.
//  3. Stop the previously selected algorithm if it is a different one.
//  4. Clear tile animation so the replay starts from a clean grid.
//  5. Run and report the outcome.
func (s *Selector) Execute(ctx context.Context, t Type) (bool, error) {
	if !t.Valid() {
		return false, ErrUnknownType
	}
	// 1) preconditions
	if err := algorithm.Validate(s.grid); err != nil {
		s.reportPrecondition(err)
		return false, err
	}

	// 2) + 3) switch selection
	s.mu.Lock()
	if s.selected {
		prev := s.algs[s.current]
		if d, ok := prev.Data(); ok {
			s.previous = d
			s.hasPrevious = true
		}
		if s.current != t {
			prev.Stop()
		}
	}
	s.current = t
	s.selected = true
	alg := s.algs[t]
	s.mu.Unlock()

	// 4) clean slate for the replay
	s.grid.ResetAnimation()

	// 5) run
	s.reporter.Report(MsgExecuting)
	found, err := alg.Execute(ctx)
	switch {
	case errors.Is(err, algorithm.ErrAborted):
		s.reporter.Report(MsgStopped)
		return false, err
	case err != nil:
		return false, err
	case found:
		s.reporter.Report(MsgPathFound)
	default:
		s.reporter.Report(MsgPathNotFound)
	}

	return found, nil
}

// reportPrecondition turns a Validate error into the matching prompt.
func (s *Selector) reportPrecondition(err error) {
	switch {
	case errors.Is(err, algorithm.ErrStartNotSet):
		s.reporter.Report(MsgSelectStart)
	case errors.Is(err, algorithm.ErrEndNotSet):
		s.reporter.Report(MsgSelectEnd)
	case errors.Is(err, algorithm.ErrSameStartEnd):
		s.reporter.Report(MsgSameStartEnd)
	}
}

// Stop stops the selected algorithm. No-op when nothing is selected.
func (s *Selector) Stop() {
	if alg, _, ok := s.Current(); ok {
		alg.Stop()
	}
}

// State returns the selected algorithm's state, NotExecuted when none.
func (s *Selector) State() algorithm.State {
	if alg, _, ok := s.Current(); ok {
		return alg.State()
	}

	return algorithm.NotExecuted
}

// PlayVisualization advances the selected algorithm's replay. With
// nothing selected there is nothing to show and it reports true.
func (s *Selector) PlayVisualization(speed replay.Speed, dt time.Duration) bool {
	if alg, _, ok := s.Current(); ok {
		return alg.PlayVisualization(speed, dt)
	}

	return true
}

// CurrentData returns the selected algorithm's last completed run.
func (s *Selector) CurrentData() (algorithm.Data, bool) {
	if alg, _, ok := s.Current(); ok {
		return alg.Data()
	}

	return algorithm.Data{}, false
}

// PreviousData returns the run that was current before the last Execute.
func (s *Selector) PreviousData() (algorithm.Data, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.previous, s.hasPrevious
}

// Name returns the selected algorithm's name, or NotSelected.
func (s *Selector) Name() string {
	return s.delegate((*algorithm.Algorithm).Name)
}

// TimeTaken delegates to the selected algorithm, or returns NotSelected.
func (s *Selector) TimeTaken() string {
	return s.delegate((*algorithm.Algorithm).TimeTaken)
}

// TotalCost delegates to the selected algorithm, or returns NotSelected.
func (s *Selector) TotalCost() string {
	return s.delegate((*algorithm.Algorithm).TotalCost)
}

// TilesExplored delegates to the selected algorithm, or returns NotSelected.
func (s *Selector) TilesExplored() string {
	return s.delegate((*algorithm.Algorithm).TilesExplored)
}

// IsPathFound reports whether the selected algorithm found a path.
func (s *Selector) IsPathFound() bool {
	alg, _, ok := s.Current()

	return ok && alg.IsPathFound()
}

func (s *Selector) delegate(fn func(*algorithm.Algorithm) string) string {
	alg, _, ok := s.Current()
	if !ok {
		return NotSelected
	}

	return fn(alg)
}
