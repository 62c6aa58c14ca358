package grid

// Regions finds all contiguous areas of walkable tiles (anything but
// WallTile), 4-directionally connected. Each region is a slice of tile
// indices in discovery order; regions appear in row-major order of their
// first tile.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions() [][]int {
	seen := make([]bool, len(g.tiles))
	var regions [][]int

	for i0 := range g.tiles {
		if seen[i0] || !g.tiles[i0].Walkable() {
			continue
		}
		// BFS to collect the region
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, d := range ExpansionOrder {
				v, ok := g.NeighborIndex(u, d)
				if !ok || seen[v] || !g.tiles[v].Walkable() {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		regions = append(regions, queue)
	}

	return regions
}

// Reachable reports whether a walkable path joins a and b.
// Out-of-bounds or wall endpoints are never reachable.
func (g *Grid) Reachable(a, b Coord) bool {
	ia, okA := g.Index(a)
	ib, okB := g.Index(b)
	if !okA || !okB || !g.tiles[ia].Walkable() || !g.tiles[ib].Walkable() {
		return false
	}
	for _, region := range g.Regions() {
		has := 0
		for _, i := range region {
			if i == ia {
				has++
			}
			if i == ib {
				has++
			}
		}
		if has > 0 {
			return has == 2
		}
	}

	return false
}
