// Package dfs defines the depth-first search strategy and its constructor.
package dfs

import (
	"github.com/katalvlaran/pathfinder/algorithm"
	"github.com/katalvlaran/pathfinder/grid"
)

// Name is the display name of the strategy.
const Name = "Depth First Search"

// Strategy is a stack-driven depth-first search. It implements
// algorithm.Strategy; the zero value is ready to use.
type Strategy struct {
	stack   []int        // open list; the top is the tile being extended
	visited map[int]bool // tiles already peeked
}

// NewStrategy returns an empty depth-first strategy.
func NewStrategy() *Strategy { return &Strategy{} }

// New binds a depth-first search to g.
func New(g *grid.Grid, opts ...algorithm.Option) *algorithm.Algorithm {
	return algorithm.New(g, NewStrategy(), opts...)
}

// Name returns the display name.
func (s *Strategy) Name() string { return Name }

// Pending returns the stack depth.
func (s *Strategy) Pending() int { return len(s.stack) }

// Abort drops the stack and the visited set.
func (s *Strategy) Abort() {
	s.stack = nil
	s.visited = nil
}
