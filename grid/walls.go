package grid

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0 or a nil *rand.Rand.
const defaultRNGSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// math/rand.Rand is NOT goroutine-safe. Do not share one across goroutines.
func NewRand(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// rngOrDefault substitutes the deterministic default stream for nil.
func rngOrDefault(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return NewRand(0)
	}

	return rng
}

// GenerateRandomWalls turns percent% of the grid's tiles into walls.
//
// Tiles are drawn uniformly from rng, retrying on repeats, until the quota
// is met. Only Default tiles are eligible, so Start and End survive; the
// quota is capped by the number of eligible tiles. A nil rng uses the
// deterministic default stream.
//
// Returns the number of walls placed, or ErrBadPercent for percent
// outside [0,100].
// Complexity: O(W×H) expected for percent well below 100.
func (g *Grid) GenerateRandomWalls(percent int, rng *rand.Rand) (int, error) {
	if percent < 0 || percent > 100 {
		return 0, ErrBadPercent
	}
	r := rngOrDefault(rng)

	eligible := 0
	for i := range g.tiles {
		if g.tiles[i].Type == Default {
			eligible++
		}
	}
	want := len(g.tiles) * percent / 100
	if want > eligible {
		want = eligible
	}

	for placed := 0; placed < want; {
		i := r.Intn(len(g.tiles))
		if g.tiles[i].Type != Default {
			continue // repeat or reserved tile, draw again
		}
		g.tiles[i].Type = WallTile
		g.tiles[i].Anim = Idle
		placed++
	}

	return want, nil
}

// GenerateMaze fills the grid with walls and carves a perfect maze into it
// using Wilson's loop-erased random walks.
//
// Maze cells sit on even (x,y) coordinates; the odd tiles between two
// cells become passages. Start and End keep their roles and are never
// walled. A nil rng uses the deterministic default stream.
// Complexity: O(W×H) expected.
func (g *Grid) GenerateMaze(rng *rand.Rand) {
	r := rngOrDefault(rng)

	// 1) Wall everything except the Start/End tiles.
	for i := range g.tiles {
		if i == g.start || i == g.end {
			continue
		}
		g.tiles[i].Type = WallTile
		g.tiles[i].Anim = Idle
	}

	cw, ch := (g.width+1)/2, (g.height+1)/2
	n := cw * ch
	inTree := make([]bool, n)
	exit := make([]Direction, n)

	cellCoord := func(cell int) Coord {
		return Coord{X: cell % cw * 2, Y: cell / cw * 2}
	}
	open := func(c Coord) {
		i := g.index(c)
		if i == g.start || i == g.end {
			return
		}
		g.tiles[i].Type = Default
	}
	step := func(cell int, d Direction) int {
		dx, dy := d.offset()
		return (cell/cw+dy)*cw + cell%cw + dx
	}
	randomDir := func(cell int) Direction {
		var dirs [4]Direction
		k := 0
		cx, cy := cell%cw, cell/cw
		for _, d := range ExpansionOrder {
			dx, dy := d.offset()
			if nx, ny := cx+dx, cy+dy; nx >= 0 && nx < cw && ny >= 0 && ny < ch {
				dirs[k] = d
				k++
			}
		}
		return dirs[r.Intn(k)]
	}

	// 2) Seed the tree with one random cell.
	root := r.Intn(n)
	inTree[root] = true
	open(cellCoord(root))
	if n == 1 {
		return
	}

	// 3) From every cell outside the tree, walk until the tree is hit.
	//    Overwriting exit[] on revisits erases loops.
	for _, c := range r.Perm(n) {
		if inTree[c] {
			continue
		}
		for cur := c; !inTree[cur]; cur = step(cur, exit[cur]) {
			exit[cur] = randomDir(cur)
		}
		// 4) Carve the loop-erased path into the tree.
		for cur := c; !inTree[cur]; {
			inTree[cur] = true
			at := cellCoord(cur)
			open(at)
			open(at.Step(exit[cur]))
			cur = step(cur, exit[cur])
		}
	}
}
