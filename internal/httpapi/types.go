// Package httpapi exposes the grid and the search engine as a JSON API.
package httpapi

import (
	"time"

	"github.com/katalvlaran/pathfinder/algorithm"
	"github.com/katalvlaran/pathfinder/grid"
	"github.com/katalvlaran/pathfinder/timeline"
)

// tileJSON is one tile on the wire.
type tileJSON struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Type   string `json:"type"`
	Weight int    `json:"weight"`
	Anim   string `json:"anim"`
}

// gridJSON is the whole grid on the wire.
type gridJSON struct {
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Start  *grid.Coord `json:"start,omitempty"`
	End    *grid.Coord `json:"end,omitempty"`
	Rows   []string    `json:"rows"`
	Tiles  []tileJSON  `json:"tiles"`
}

// dataJSON mirrors algorithm.Data.
type dataJSON struct {
	RunID         string  `json:"run_id"`
	Name          string  `json:"name"`
	TimeTakenMS   float64 `json:"time_taken_ms"`
	PathCost      int     `json:"path_cost"`
	TilesExplored int     `json:"tiles_explored"`
	PathFound     bool    `json:"path_found"`
}

// runJSON answers POST /runs/{algorithm}.
type runJSON struct {
	Algorithm string       `json:"algorithm"`
	Found     bool         `json:"found"`
	Data      dataJSON     `json:"data"`
	Path      []grid.Coord `json:"path"`
	Events    int          `json:"events"`
	Message   string       `json:"message"`
}

// currentJSON answers GET /runs/current.
type currentJSON struct {
	Algorithm string    `json:"algorithm,omitempty"`
	State     string    `json:"state"`
	Message   string    `json:"message"`
	Current   *dataJSON `json:"current,omitempty"`
	Previous  *dataJSON `json:"previous,omitempty"`
}

// eventJSON is one timeline event on the wire.
type eventJSON struct {
	Seq   int    `json:"seq"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	State string `json:"state"`
}

// timelineJSON answers GET /runs/timeline.
type timelineJSON struct {
	Total  int         `json:"total"`
	From   int         `json:"from"`
	Events []eventJSON `json:"events"`
}

// tileTypeRequest is the body of PUT /grid/tiles/{x}/{y}.
type tileTypeRequest struct {
	Type string `json:"type"`
}

// weightRequest is the body of PUT /grid/tiles/{x}/{y}/weight.
type weightRequest struct {
	Weight int `json:"weight"`
}

// wallsRequest is the optional body of POST /grid/walls.
type wallsRequest struct {
	Percent *int `json:"percent"`
}

func toDataJSON(d algorithm.Data) dataJSON {
	return dataJSON{
		RunID:         d.RunID.String(),
		Name:          d.Name,
		TimeTakenMS:   float64(d.TimeTaken) / float64(time.Millisecond),
		PathCost:      d.PathCost,
		TilesExplored: d.TilesExplored,
		PathFound:     d.PathFound,
	}
}

func toEventJSON(ev timeline.Event) eventJSON {
	return eventJSON{Seq: ev.Seq, X: ev.Coord.X, Y: ev.Coord.Y, State: ev.State.String()}
}
