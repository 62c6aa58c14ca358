package astar

import (
	"github.com/katalvlaran/pathfinder/algorithm"
	"github.com/katalvlaran/pathfinder/grid"
	"github.com/katalvlaran/pathfinder/internal/frontier"
)

// Init resolves the heuristic for this grid and queues Start.
func (s *Strategy) Init(r *algorithm.Run) {
	g := r.Grid()
	n := g.Len()
	s.open = frontier.New(n)
	s.cost = make(map[int]int, n)
	s.visited = make(map[int]bool, n)

	s.h = s.opts.Heuristic
	if s.h == nil {
		s.h = Manhattan(g.MinWeight())
	}
	s.goal = coordOf(g, r.End())

	s.cost[r.Start()] = 0
	s.open.Push(r.Start(), s.h(coordOf(g, r.Start()), s.goal))
	r.Open(r.Start())
}

// Step pops the tile with the lowest f = g + h and relaxes its neighbors.
// Equal f values pop in push order, as in Dijkstra.
//
// Steps:
//  1. Pop; mark and explore; stop if it is End.
//  2. For each walkable unvisited neighbor, g' = g(cur) + weight.
//  3. Skip unless g' is strictly below the neighbor's best known g.
//  4. Record g' and the predecessor; queue at g' + h or decrease-key.
func (s *Strategy) Step(r *algorithm.Run) bool {
	// 1) pop and mark
	cur, _ := s.open.Pop()
	s.visited[cur] = true
	r.Explore(cur)
	if r.IsEnd(cur) {
		return true
	}

	g := r.Grid()
	base := s.cost[cur]
	r.EachNeighbor(cur, func(n int) bool {
		if s.visited[n] {
			return true
		}
		// 2) tentative cost
		nd := base + r.Weight(n)

		// 3) strict improvement
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
		s.open.Push(n, nd+s.h(coordOf(g, n), s.goal))

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

func coordOf(g *grid.Grid, i int) grid.Coord {
	x, y := g.Coordinate(i)

	return grid.Coord{X: x, Y: y}
}
