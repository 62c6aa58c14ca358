package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a grid was requested with no columns or no rows.
	ErrEmptyGrid = errors.New("grid: grid must have at least one column and one row")
	// ErrBadWeight indicates a tile weight below 1.
	ErrBadWeight = errors.New("grid: tile weight must be at least 1")
	// ErrBadPercent indicates a wall percentage outside [0,100].
	ErrBadPercent = errors.New("grid: wall percentage must be within [0,100]")
	// ErrUnknownTileType indicates an unparsable tile type name.
	ErrUnknownTileType = errors.New("grid: unknown tile type")
)
