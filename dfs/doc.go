// Package dfs is the depth-first search strategy for pathfinder grids.
//
// What:
//
//   - A stack holds the current path. Each step peeks the top tile, marks
//     it visited and counts it as explored, then pushes its first
//     unvisited walkable neighbor in Down, Up, Right, Left order.
//   - A tile with no eligible neighbor is popped (backtracking). The tile
//     below it is peeked and counted again on the next step.
//   - End is detected when it is discovered as a neighbor, before it is
//     pushed, so End itself is never expanded.
//
// Guarantees:
//
//   - Finds a path whenever End is reachable from Start.
//   - The path is not shortest in general; on a single corridor it is.
//   - A tile is explored once per peek: once when it is pushed and once
//     more each time the search backtracks onto it, so TilesExplored can
//     exceed the number of tiles it reached.
//
// Complexity:
//
//   - Time:   O(W×H) steps; every tile is pushed once and popped once.
//   - Memory: O(W×H) for the stack and the visited set.
//
// Usage:
//
//	alg := dfs.New(g)
//	found, err := alg.Execute(ctx)
package dfs
