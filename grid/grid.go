package grid

import (
	"strings"
)

// noTile marks an unset Start or End index.
const noTile = -1

// Grid owns a width×height arena of tiles and the Start/End bookkeeping.
//
// Grid is not safe for concurrent mutation. Searches only read it, and the
// surrounding application serializes edits against running searches.
type Grid struct {
	width, height int
	tiles         []Tile
	start, end    int
}

// New constructs a Grid with columns×rows Default tiles.
// Returns ErrEmptyGrid for non-positive dimensions and ErrBadWeight if
// WithDefaultWeight was given a value below 1.
// Complexity: O(W×H) time and memory.
func New(columns, rows int, opts ...Option) (*Grid, error) {
	if columns <= 0 || rows <= 0 {
		return nil, ErrEmptyGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.DefaultWeight < 1 {
		return nil, ErrBadWeight
	}

	g := &Grid{
		width:  columns,
		height: rows,
		tiles:  make([]Tile, columns*rows),
		start:  noTile,
		end:    noTile,
	}
	for i := range g.tiles {
		x, y := g.Coordinate(i)
		g.tiles[i] = Tile{Coord: Coord{X: x, Y: y}, Type: Default, Weight: o.DefaultWeight, Anim: Idle}
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the number of tiles.
func (g *Grid) Len() int { return len(g.tiles) }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Index maps c to its row-major index. The second result is false when c
// is out of bounds.
func (g *Grid) Index(c Coord) (int, bool) {
	if !g.InBounds(c) {
		return noTile, false
	}

	return g.index(c), true
}

// index maps an in-bounds coordinate to y*Width + x.
func (g *Grid) index(c Coord) int {
	return c.Y*g.width + c.X
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}

// Tile returns the tile at c, or false when c is out of bounds.
func (g *Grid) Tile(c Coord) (*Tile, bool) {
	if !g.InBounds(c) {
		return nil, false
	}

	return &g.tiles[g.index(c)], true
}

// TileAt returns the tile stored at index idx. idx must be in [0, Len()).
func (g *Grid) TileAt(idx int) *Tile {
	return &g.tiles[idx]
}

// SetTileType changes the role of the tile at c.
//
// Out-of-bounds coordinates are ignored: pointer input regularly lands
// outside the grid. The tile's animation state returns to Idle.
//
// Invariants kept:
//   - Default or WallTile releases the tile from the Start/End role.
//   - StartTile moves the Start role here; the previous Start tile becomes
//     Default, and the tile stops being End if it was.
//   - EndTile mirrors StartTile.
func (g *Grid) SetTileType(c Coord, t TileType) {
	if !g.InBounds(c) {
		return
	}
	i := g.index(c)

	switch t {
	case Default, WallTile:
		g.releaseRole(i)
	case StartTile:
		if g.end == i {
			g.end = noTile
		}
		g.demote(g.start, i)
		g.start = i
	case EndTile:
		if g.start == i {
			g.start = noTile
		}
		g.demote(g.end, i)
		g.end = i
	default:
		return
	}

	g.tiles[i].Type = t
	g.tiles[i].Anim = Idle
}

// releaseRole clears i from the Start and End slots.
func (g *Grid) releaseRole(i int) {
	if g.start == i {
		g.start = noTile
	}
	if g.end == i {
		g.end = noTile
	}
}

// demote turns the previous holder of a role back into a Default tile.
func (g *Grid) demote(prev, next int) {
	if prev == noTile || prev == next {
		return
	}
	g.tiles[prev].Type = Default
	g.tiles[prev].Anim = Idle
}

// SetTileWeight changes the traversal cost of the tile at c.
// Out-of-bounds coordinates are ignored; w < 1 yields ErrBadWeight.
func (g *Grid) SetTileWeight(c Coord, w int) error {
	if w < 1 {
		return ErrBadWeight
	}
	if !g.InBounds(c) {
		return nil
	}
	g.tiles[g.index(c)].Weight = w

	return nil
}

// SetAnimState records the visual state a renderer has drawn for c.
// Out-of-bounds coordinates are ignored.
func (g *Grid) SetAnimState(c Coord, s AnimState) {
	if !g.InBounds(c) {
		return
	}
	g.tiles[g.index(c)].Anim = s
}

// ResetAnimation returns every tile to Idle, keeping types and weights.
func (g *Grid) ResetAnimation() {
	for i := range g.tiles {
		g.tiles[i].Anim = Idle
	}
}

// GetNeighborTile returns the tile next to c in direction d.
// Off any edge or corner the second result is false; the returned
// coordinate is never invalid.
// Complexity: O(1).
func (g *Grid) GetNeighborTile(c Coord, d Direction) (*Tile, bool) {
	return g.Tile(c.Step(d))
}

// NeighborIndex is GetNeighborTile over indices, used by the search loops.
func (g *Grid) NeighborIndex(idx int, d Direction) (int, bool) {
	x, y := g.Coordinate(idx)

	return g.Index(Coord{X: x, Y: y}.Step(d))
}

// ClearGrid resets every tile to Default/Idle and unsets Start and End.
// Tile weights are kept.
func (g *Grid) ClearGrid() {
	for i := range g.tiles {
		g.tiles[i].Type = Default
		g.tiles[i].Anim = Idle
	}
	g.start = noTile
	g.end = noTile
}

// StartIndex returns the index of the Start tile, if set.
func (g *Grid) StartIndex() (int, bool) {
	return g.start, g.start != noTile
}

// EndIndex returns the index of the End tile, if set.
func (g *Grid) EndIndex() (int, bool) {
	return g.end, g.end != noTile
}

// StartTile returns the Start tile, if set.
func (g *Grid) StartTile() (*Tile, bool) {
	if g.start == noTile {
		return nil, false
	}

	return &g.tiles[g.start], true
}

// EndTile returns the End tile, if set.
func (g *Grid) EndTile() (*Tile, bool) {
	if g.end == noTile {
		return nil, false
	}

	return &g.tiles[g.end], true
}

// MinWeight returns the smallest weight among walkable tiles, or 1 when
// every tile is a wall. Heuristics scale by it to stay admissible.
func (g *Grid) MinWeight() int {
	minW := 0
	for i := range g.tiles {
		if !g.tiles[i].Walkable() {
			continue
		}
		if minW == 0 || g.tiles[i].Weight < minW {
			minW = g.tiles[i].Weight
		}
	}
	if minW == 0 {
		return 1
	}

	return minW
}

// String renders the grid one row per line:
// 'S' start, 'E' end, '#' wall, '.' default.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			switch g.tiles[y*g.width+x].Type {
			case StartTile:
				sb.WriteByte('S')
			case EndTile:
				sb.WriteByte('E')
			case WallTile:
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
