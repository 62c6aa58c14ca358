// Package dijkstra defines the uniform-cost search strategy, its options
// and its constructor.
package dijkstra

import (
	"github.com/katalvlaran/pathfinder/algorithm"
	"github.com/katalvlaran/pathfinder/grid"
	"github.com/katalvlaran/pathfinder/internal/frontier"
)

// Name is the display name of the strategy.
const Name = "Dijkstra's Algorithm"

// Options configures the search.
type Options struct {
	// MaxCost, if > 0, keeps tiles whose path cost would exceed it out of
	// the open list. Zero or a negative value disables the limit.
	MaxCost int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options with no cost limit.
func DefaultOptions() Options {
	return Options{MaxCost: 0}
}

// WithMaxCost bounds the cost of any tile the search will open.
func WithMaxCost(c int) Option {
	return func(o *Options) {
		if c < 0 {
			c = 0
		}
		o.MaxCost = c
	}
}

// Strategy is a priority-queue uniform-cost search. It implements
// algorithm.Strategy.
type Strategy struct {
	opts    Options
	open    *frontier.Queue // tiles keyed by best known cost
	cost    map[int]int     // best known cost from Start
	visited map[int]bool    // tiles already popped; their cost is final
}

// NewStrategy returns an empty Dijkstra strategy.
func NewStrategy(opts ...Option) *Strategy {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Strategy{opts: o}
}

// New binds a Dijkstra search with default options to g.
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
}
