package bfs

import "github.com/katalvlaran/pathfinder/algorithm"

// Init enqueues Start.
func (s *Strategy) Init(r *algorithm.Run) {
	n := r.Grid().Len()
	s.queue = make([]int, 0, n)
	s.visited = make(map[int]bool, n)
	s.queue = append(s.queue, r.Start())
	r.Open(r.Start())
}

// Step dequeues one tile and expands it.
//
// Steps:
//  1. Dequeue the front tile; skip it if it was already expanded.
//  2. Mark and explore it; stop if it is End.
//  3. Enqueue every walkable neighbor not yet discovered, in expansion
//     order, recording the current tile as its predecessor.
func (s *Strategy) Step(r *algorithm.Run) bool {
	// 1) dequeue
	cur := s.queue[0]
	s.queue = s.queue[1:]
	if s.visited[cur] {
		return false
	}

	// 2) mark on dequeue
	s.visited[cur] = true
	r.Explore(cur)
	if r.IsEnd(cur) {
		return true
	}

	// 3) discover; a tile enters the queue once
	r.EachNeighbor(cur, func(n int) bool {
		if !s.visited[n] && r.Discover(n, cur) {
			s.queue = append(s.queue, n)
		}
		return true
	})

	return false
}
