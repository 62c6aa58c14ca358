// Package astar is the A* search strategy for pathfinder grids.
//
// What:
//
//   - Like Dijkstra, but the open list is keyed by f = g + h, where g is
//     the best known cost from Start and h estimates the cost left to End.
//   - The default h is the Manhattan distance to End times the grid's
//     minimum walkable weight, computed once per run.
//   - Equal f values pop in the order they were queued, so neighbor
//     expansion order decides ties as in Dijkstra.
//   - A decrease-key updates the tile in place and keeps the priority
//     queue free of duplicates.
//
// Guarantees:
//
//   - The default heuristic is consistent: one step changes the Manhattan
//     distance by one and costs at least the minimum weight. A popped
//     tile's g is therefore final, the path cost equals Dijkstra's, and A*
//     never explores more tiles than Dijkstra on the same grid.
//   - A custom heuristic that overestimates keeps finding a path whenever
//     one exists but may lose optimality; popped tiles are never reopened.
//
// Complexity:
//
//   - Time:   O(N log N) worst case for N = W×H, usually far less.
//   - Memory: O(N).
//
// Usage:
//
//	alg := astar.New(g)
//	found, err := alg.Execute(ctx)
//
//	alg = algorithm.New(g, astar.NewStrategy(astar.WithHeuristic(astar.Zero)))
package astar
