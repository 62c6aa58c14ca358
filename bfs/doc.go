// Package bfs is the breadth-first search strategy for pathfinder grids.
//
// What:
//
//   - A FIFO queue holds discovered tiles. Each step dequeues the front
//     tile, marks it visited, and stops if it is End.
//   - Otherwise its walkable neighbors are enqueued in Down, Up, Right,
//     Left order. A tile already discovered is never enqueued again, so
//     the first discoverer stays its predecessor.
//
// Guarantees:
//
//   - Tiles are expanded in non-decreasing step distance from Start, so
//     the path has the fewest tiles. Weights are ignored while searching;
//     on a uniform-weight grid the path is also cheapest.
//   - Each tile is explored at most once.
//
// Complexity:
//
//   - Time:   O(W×H); each tile is enqueued and expanded once.
//   - Memory: O(W×H) for the queue, the visited set and predecessors.
//
// Usage:
//
//	alg := bfs.New(g)
//	found, err := alg.Execute(ctx)
//	fmt.Println(alg.TotalCost(), alg.TilesExplored())
package bfs
