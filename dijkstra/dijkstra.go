package dijkstra

import (
	"github.com/katalvlaran/pathfinder/algorithm"
	"github.com/katalvlaran/pathfinder/internal/frontier"
)

// Init queues Start at cost 0.
func (s *Strategy) Init(r *algorithm.Run) {
	n := r.Grid().Len()
	s.open = frontier.New(n)
	s.cost = make(map[int]int, n)
	s.visited = make(map[int]bool, n)

	s.cost[r.Start()] = 0
	s.open.Push(r.Start(), 0)
	r.Open(r.Start())
}

// Step pops the cheapest tile and relaxes its neighbors.
//
// Steps:
//  1. Pop the lowest-cost tile; mark and explore it; stop if it is End.
//  2. For each walkable unvisited neighbor, the candidate cost is the
//     popped cost plus the neighbor's weight.
//  3. Skip candidates over MaxCost or not strictly cheaper than the
//     neighbor's best known cost.
//  4. Record the new cost and predecessor and queue or decrease-key it.
func (s *Strategy) Step(r *algorithm.Run) bool {
	// 1) pop and mark
	cur, _ := s.open.Pop()
	s.visited[cur] = true
	r.Explore(cur)
	if r.IsEnd(cur) {
		return true
	}

	base := s.cost[cur]
	r.EachNeighbor(cur, func(n int) bool {
		if s.visited[n] {
			return true
		}
		// 2) candidate cost
		nd := base + r.Weight(n)

		// 3) limits and strict improvement
		if s.opts.MaxCost > 0 && nd > s.opts.MaxCost {
			return true
		}
		old, seen := s.cost[n]
		if seen && nd >= old {
			return true
		}

		// 4) relax
		s.cost[n] = nd
		if seen {
			r.Relax(n, cur)
		} else {
			r.Discover(n, cur)
		}
		s.open.Push(n, nd)

		return true
	})

	return false
}

// Cost returns the best known cost from Start to tile index i during or
// after the last run.
func (s *Strategy) Cost(i int) (int, bool) {
	c, ok := s.cost[i]

	return c, ok
}
