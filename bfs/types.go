// Package bfs defines the breadth-first search strategy and its constructor.
package bfs

import (
	"github.com/katalvlaran/pathfinder/algorithm"
	"github.com/katalvlaran/pathfinder/grid"
)

// Name is the display name of the strategy.
const Name = "Breadth First Search"

// Strategy is a FIFO breadth-first search. It implements
// algorithm.Strategy; the zero value is ready to use.
type Strategy struct {
	queue   []int        // open list, dequeued from the front
	visited map[int]bool // tiles already dequeued and expanded
}

// NewStrategy returns an empty breadth-first strategy.
func NewStrategy() *Strategy { return &Strategy{} }

// New binds a breadth-first search to g.
func New(g *grid.Grid, opts ...algorithm.Option) *algorithm.Algorithm {
	return algorithm.New(g, NewStrategy(), opts...)
}

// Name returns the display name.
func (s *Strategy) Name() string { return Name }

// Pending returns the queue length.
func (s *Strategy) Pending() int { return len(s.queue) }

// Abort drops the queue and the visited set.
func (s *Strategy) Abort() {
	s.queue = nil
	s.visited = nil
}
