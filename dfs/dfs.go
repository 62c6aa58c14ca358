package dfs

import "github.com/katalvlaran/pathfinder/algorithm"

// Init pushes Start.
func (s *Strategy) Init(r *algorithm.Run) {
	n := r.Grid().Len()
	s.stack = make([]int, 0, n)
	s.visited = make(map[int]bool, n)
	s.stack = append(s.stack, r.Start())
	r.Open(r.Start())
}

// Step extends the path at the top of the stack by one tile.
//
// Steps:
//  1. Peek the top; mark and explore it, again on every backtrack.
//  2. Find its first unvisited walkable neighbor in expansion order.
//  3. None left: pop (backtrack).
//  4. Otherwise record the neighbor's predecessor; stop if it is End,
//     else push it so it becomes the next top.
func (s *Strategy) Step(r *algorithm.Run) bool {
	// 1) peek and mark
	top := s.stack[len(s.stack)-1]
	s.visited[top] = true
	r.Explore(top)

	// 2) first eligible neighbor
	next := -1
	r.EachNeighbor(top, func(n int) bool {
		if s.visited[n] {
			return true
		}
		next = n
		return false
	})

	// 3) dead end
	if next < 0 {
		s.stack = s.stack[:len(s.stack)-1]
		return false
	}

	// 4) End is detected on discovery
	r.Discover(next, top)
	if r.IsEnd(next) {
		return true
	}
	s.stack = append(s.stack, next)

	return false
}
