// Package grid is the tile arena every search in pathfinder runs over.
//
// What:
//
//   - Grid owns a dense, row-major width×height slice of Tiles; a tile is
//     addressed by the stable integer index y*Width + x.
//   - Each Tile has a TileType (Default, StartTile, EndTile, WallTile), a
//     traversal Weight (>= 1, the cost of entering the tile) and an
//     AnimState used only by renderers.
//   - At most one Start and one End exist; a tile is never both.
//   - Neighbor lookup is 4-directional (Up, Down, Right, Left).
//
// Why:
//
//   - Visited sets, predecessor maps and animation timelines key on tile
//     indices, so clearing them between runs is a plain map reset.
//   - Pointer input often lands outside the grid; mutators and queries
//     treat out-of-bounds coordinates as a no-op or an absent result.
//
// Complexity:
//
//   - SetTileType, GetNeighborTile, SetTileWeight: O(1).
//   - ClearGrid, GenerateRandomWalls, GenerateMaze, Regions: O(W×H).
//
// Randomness:
//
//	GenerateRandomWalls and GenerateMaze take an explicit *rand.Rand so
//	results are reproducible; NewRand(seed) builds one (seed 0 maps to a
//	fixed default).
//
// Errors:
//
//   - ErrEmptyGrid: non-positive dimensions passed to New.
//   - ErrBadWeight: a tile weight below 1.
//   - ErrBadPercent: a wall percentage outside [0,100].
//   - ErrUnknownTileType: ParseTileType got an unknown name.
package grid
