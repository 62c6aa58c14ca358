// Package dijkstra is the uniform-cost search strategy for pathfinder grids.
//
// What:
//
//   - The open list is a min-priority queue keyed by the cost of the best
//     known path from Start. Entering a tile costs its Weight; Start
//     itself costs nothing. Start and End are fixed, so ranking routes
//     this way picks the same route as the reported PathCost, which
//     counts Start and leaves End out.
//   - Each step pops the cheapest tile, marks it visited and stops if it
//     is End. Its walkable unvisited neighbors are relaxed: a strictly
//     cheaper cost replaces the old one, updates the predecessor and
//     decreases the tile's key in place.
//   - Equal costs pop in the order they were queued, so neighbor
//     expansion order (Down, Up, Right, Left) decides ties.
//
// Guarantees:
//
//   - With weights >= 1 a popped tile's cost is final, so the path found
//     has the minimum total weight.
//   - Each tile is explored at most once.
//
// Complexity:
//
//   - Time:   O(N log N) for N = W×H; each tile is popped once and each
//     of its 4 edges triggers at most one O(log N) push or decrease-key.
//   - Memory: O(N) for the queue, the cost table and predecessors.
//
// Options:
//
//   - WithMaxCost(c): tiles whose cost would exceed c are never opened,
//     which bounds the search radius.
//
// Usage:
//
//	alg := dijkstra.New(g)
//	found, err := alg.Execute(ctx)
//
//	// with options, bind the strategy directly:
//	alg = algorithm.New(g, dijkstra.NewStrategy(dijkstra.WithMaxCost(50)))
package dijkstra
