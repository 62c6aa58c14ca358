// Package astar defines the A* search strategy, its heuristics and options.
package astar

import (
	"github.com/katalvlaran/pathfinder/algorithm"
	"github.com/katalvlaran/pathfinder/grid"
	"github.com/katalvlaran/pathfinder/internal/frontier"
)

// Name is the display name of the strategy.
const Name = "A*"

// Heuristic estimates the remaining cost from a tile to End.
type Heuristic func(from, to grid.Coord) int

// Manhattan returns the 4-directional distance scaled by scale, the
// cheapest weight a step can cost. With scale equal to the grid's minimum
// walkable weight it never overestimates, so paths stay optimal.
func Manhattan(scale int) Heuristic {
	if scale < 1 {
		scale = 1
	}

	return func(from, to grid.Coord) int {
		return from.Manhattan(to) * scale
	}
}

// Zero estimates nothing; A* with Zero expands exactly like Dijkstra.
func Zero(grid.Coord, grid.Coord) int { return 0 }

// Options configures the search.
type Options struct {
	// Heuristic overrides the default. Nil selects Manhattan scaled by the
	// grid's minimum walkable weight at the start of every run.
	Heuristic Heuristic
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options using the scaled Manhattan heuristic.
func DefaultOptions() Options {
	return Options{Heuristic: nil}
}

// WithHeuristic replaces the heuristic. A heuristic that overestimates
// may return a costlier path.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}

// Strategy is a best-first search ordered by cost so far plus the
// heuristic estimate. It implements algorithm.Strategy.
type Strategy struct {
	opts    Options
	h       Heuristic       // heuristic in effect for the current run
	goal    grid.Coord      // End coordinate of the current run
	open    *frontier.Queue // tiles keyed by f = g + h
	cost    map[int]int     // g: best known cost from Start
	visited map[int]bool    // tiles already popped
}

// NewStrategy returns an empty A* strategy.
func NewStrategy(opts ...Option) *Strategy {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Strategy{opts: o}
}

// New binds an A* search with the default heuristic to g.
func New(g *grid.Grid, opts ...algorithm.Option) *algorithm.Algorithm {
	return algorithm.New(g, NewStrategy(), opts...)
}

// Name returns the display name.
func (s *Strategy) Name() string { return Name }

// Pending returns the open list size.
func (s *Strategy) Pending() int {
	if s.open == nil {
		return 0
	}

	return s.open.Len()
}

// Abort drops the open list, the cost table and the visited set.
func (s *Strategy) Abort() {
	if s.open != nil {
		s.open.Clear()
	}
	s.cost = nil
	s.visited = nil
	s.h = nil
}
