// Package grid defines core types, options, and sentinel errors
// for the grid model of github.com/katalvlaran/pathfinder.
package grid

import "fmt"

// TileType is the role a tile plays in a search.
type TileType uint8

const (
	// Default is an ordinary walkable tile.
	Default TileType = iota
	// StartTile is the single tile a search starts from.
	StartTile
	// EndTile is the single tile a search looks for.
	EndTile
	// WallTile is never traversed.
	WallTile
)

// String returns a human-readable name of the tile type.
func (t TileType) String() string {
	switch t {
	case Default:
		return "default"
	case StartTile:
		return "start"
	case EndTile:
		return "end"
	case WallTile:
		return "wall"
	default:
		return fmt.Sprintf("TileType(%d)", uint8(t))
	}
}

// ParseTileType is the inverse of TileType.String.
func ParseTileType(s string) (TileType, error) {
	switch s {
	case "default":
		return Default, nil
	case "start":
		return StartTile, nil
	case "end":
		return EndTile, nil
	case "wall":
		return WallTile, nil
	}

	return Default, fmt.Errorf("%w: %q", ErrUnknownTileType, s)
}

// AnimState is the visual state of a tile. It is presentation data only;
// no search decision ever reads it.
type AnimState uint8

const (
	// Idle tiles are drawn with their type color.
	Idle AnimState = iota
	// Processing tiles sit in an open list.
	Processing
	// Processed tiles were expanded.
	Processed
	// Found tiles lie on the reconstructed path.
	Found
)

// String returns a human-readable name of the animation state.
func (s AnimState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Processing:
		return "processing"
	case Processed:
		return "processed"
	case Found:
		return "found"
	default:
		return fmt.Sprintf("AnimState(%d)", uint8(s))
	}
}

// Direction selects one of the four orthogonal neighbors.
// Diagonal movement is not supported.
type Direction uint8

const (
	Up Direction = iota
	Down
	Right
	Left
)

// ExpansionOrder is the neighbor order shared by every search strategy.
// Keeping it fixed makes explored-tile counts reproducible.
var ExpansionOrder = [4]Direction{Down, Up, Right, Left}

// offset returns the (dx, dy) step of d. y grows downwards.
func (d Direction) offset() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Right:
		return 1, 0
	case Left:
		return -1, 0
	}

	return 0, 0
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Right:
		return "right"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Coord is a column/row position on the grid. Coordinates coming from
// pointer input may be negative or too large; every Grid method treats
// such values as out of bounds.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Step returns the coordinate one tile away in direction d.
// The result may lie outside the grid.
func (c Coord) Step(d Direction) Coord {
	dx, dy := d.offset()

	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Manhattan returns |dx| + |dy| between c and o.
func (c Coord) Manhattan(o Coord) int {
	dx, dy := c.X-o.X, c.Y-o.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	return dx + dy
}

// String formats the coordinate as "x,y".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Tile is one grid cell. The Grid owns every Tile for its whole lifetime;
// callers may read fields but should mutate only through Grid methods so
// the Start/End bookkeeping stays consistent.
type Tile struct {
	Coord  Coord     // fixed position within the grid
	Type   TileType  // role in the search
	Weight int       // cost of entering this tile, always >= 1
	Anim   AnimState // last visual state set by a renderer
}

// Walkable reports whether a search may enter the tile.
func (t *Tile) Walkable() bool {
	return t.Type != WallTile
}

// Option configures a Grid at construction.
type Option func(*Options)

// Options holds tunable parameters for a new Grid.
type Options struct {
	// DefaultWeight is the initial weight of every tile. Must be >= 1.
	DefaultWeight int
}

// DefaultOptions returns Options with DefaultWeight=1 (uniform unit grid).
func DefaultOptions() Options {
	return Options{DefaultWeight: 1}
}

// WithDefaultWeight sets the initial weight of every tile.
func WithDefaultWeight(w int) Option {
	return func(o *Options) {
		o.DefaultWeight = w
	}
}
