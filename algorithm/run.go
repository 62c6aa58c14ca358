package algorithm

import (
	"github.com/katalvlaran/pathfinder/grid"
	"github.com/katalvlaran/pathfinder/timeline"
)

// Run holds the per-run bookkeeping every strategy reuses: the explored
// counter, the predecessor map and the animation timeline.
//
// A fresh Run is built for every Execute, so nothing leaks across runs.
type Run struct {
	grid     *grid.Grid
	start    int
	end      int
	prev     map[int]int // tile index → index that discovered it
	explored int
	tl       *timeline.Timeline
}

// newRun prepares the bookkeeping for a search from start to end.
func newRun(g *grid.Grid, start, end int) *Run {
	return &Run{
		grid:  g,
		start: start,
		end:   end,
		prev:  make(map[int]int, g.Len()),
		tl:    timeline.New(2 * g.Len()),
	}
}

// Grid returns the grid being searched. Strategies must not mutate it.
func (r *Run) Grid() *grid.Grid { return r.grid }

// Start returns the Start tile index.
func (r *Run) Start() int { return r.start }

// End returns the End tile index.
func (r *Run) End() int { return r.end }

// IsEnd reports whether i is the End tile.
func (r *Run) IsEnd(i int) bool { return i == r.end }

// Weight returns the cost of entering tile i.
func (r *Run) Weight(i int) int { return r.grid.TileAt(i).Weight }

// Explored returns how many tiles were expanded so far.
func (r *Run) Explored() int { return r.explored }

// Timeline returns the run's animation timeline.
func (r *Run) Timeline() *timeline.Timeline { return r.tl }

// EachNeighbor calls fn for every in-bounds, non-wall neighbor of i in
// grid.ExpansionOrder (Down, Up, Right, Left). Returning false from fn
// stops the iteration.
func (r *Run) EachNeighbor(i int, fn func(n int) bool) {
	for _, d := range grid.ExpansionOrder {
		n, ok := r.grid.NeighborIndex(i, d)
		if !ok || !r.grid.TileAt(n).Walkable() {
			continue
		}
		if !fn(n) {
			return
		}
	}
}

// Open records that tile i entered the open list.
func (r *Run) Open(i int) {
	r.record(i, grid.Processing)
}

// Explore counts one expansion of tile i. Strategies that revisit a tile,
// like depth-first backtracking, call it again on every revisit.
func (r *Run) Explore(i int) {
	r.explored++
	r.record(i, grid.Processed)
}

// Discovered reports whether i is the Start tile or already has a predecessor.
func (r *Run) Discovered(i int) bool {
	if i == r.start {
		return true
	}
	_, ok := r.prev[i]

	return ok
}

// Discover records from as the predecessor of i and opens i, unless i was
// discovered before; the first discoverer wins. Reports whether i is new.
func (r *Run) Discover(i, from int) bool {
	if r.Discovered(i) {
		return false
	}
	r.prev[i] = from
	r.Open(i)

	return true
}

// Relax replaces the predecessor of i with a cheaper one. Used by
// Dijkstra and A* while i is still in the open list.
func (r *Run) Relax(i, from int) {
	r.prev[i] = from
	r.Open(i)
}

// Previous returns the predecessor of i.
func (r *Run) Previous(i int) (int, bool) {
	p, ok := r.prev[i]

	return p, ok
}

// record appends one event to the timeline.
func (r *Run) record(i int, s grid.AnimState) {
	x, y := r.grid.Coordinate(i)
	r.tl.Append(i, grid.Coord{X: x, Y: y}, s)
}

// reconstruct walks the predecessor map backwards from End to Start.
// Returns the path in Start..End order and its cost: the sum of the
// weights of every tile the walk leaves, Start included and End excluded.
// ok is false if the chain is broken (End not reached).
func (r *Run) reconstruct() (path []int, cost int, ok bool) {
	path = append(path, r.end)
	for cur := r.end; cur != r.start; {
		p, found := r.prev[cur]
		if !found || len(path) > r.grid.Len() {
			return nil, 0, false
		}
		cost += r.Weight(p)
		path = append(path, p)
		cur = p
	}
	// reverse to get Start → End
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, cost, true
}
