package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/katalvlaran/pathfinder/algorithm"
	"github.com/katalvlaran/pathfinder/grid"
	"github.com/katalvlaran/pathfinder/selector"
)

// snapshot renders the grid. The caller holds at least the read lock.
func (s *Server) snapshot() gridJSON {
	g := s.grid
	out := gridJSON{
		Width:  g.Width(),
		Height: g.Height(),
		Rows:   strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n"),
		Tiles:  make([]tileJSON, 0, g.Len()),
	}
	if t, ok := g.StartTile(); ok {
		c := t.Coord
		out.Start = &c
	}
	if t, ok := g.EndTile(); ok {
		c := t.Coord
		out.End = &c
	}
	for i := 0; i < g.Len(); i++ {
		t := g.TileAt(i)
		out.Tiles = append(out.Tiles, tileJSON{
			X: t.Coord.X, Y: t.Coord.Y,
			Type:   t.Type.String(),
			Weight: t.Weight,
			Anim:   t.Anim.String(),
		})
	}

	return out
}

// tileCoord parses {x} and {y} and checks the bounds.
func (s *Server) tileCoord(w http.ResponseWriter, r *http.Request) (grid.Coord, bool) {
	x, err := strconv.Atoi(chi.URLParam(r, "x"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid x coordinate")
		return grid.Coord{}, false
	}
	y, err := strconv.Atoi(chi.URLParam(r, "y"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid y coordinate")
		return grid.Coord{}, false
	}
	c := grid.Coord{X: x, Y: y}
	if !s.grid.InBounds(c) {
		respondError(w, http.StatusNotFound, "Tile "+c.String()+" is outside the grid")
		return grid.Coord{}, false
	}

	return c, true
}

// lockForEdit takes the write lock, or answers 409 while a run holds it.
func (s *Server) lockForEdit(w http.ResponseWriter) bool {
	if !s.mu.TryLock() {
		respondError(w, http.StatusConflict, errBusy.Error())
		return false
	}

	return true
}

// getGrid handles GET /grid.
func (s *Server) getGrid(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	respondJSON(w, http.StatusOK, s.snapshot())
}

// putTileType handles PUT /grid/tiles/{x}/{y} with {"type": "wall"}.
func (s *Server) putTileType(w http.ResponseWriter, r *http.Request) {
	var req tileTypeRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid body: "+err.Error())
		return
	}
	tt, err := grid.ParseTileType(req.Type)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !s.lockForEdit(w) {
		return
	}
	defer s.mu.Unlock()

	c, ok := s.tileCoord(w, r)
	if !ok {
		return
	}
	s.grid.ResetAnimation()
	s.grid.SetTileType(c, tt)
	t, _ := s.grid.Tile(c)
	respondJSON(w, http.StatusOK, tileJSON{X: c.X, Y: c.Y, Type: t.Type.String(), Weight: t.Weight, Anim: t.Anim.String()})
}

// putTileWeight handles PUT /grid/tiles/{x}/{y}/weight with {"weight": 3}.
func (s *Server) putTileWeight(w http.ResponseWriter, r *http.Request) {
	var req weightRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid body: "+err.Error())
		return
	}
	if !s.lockForEdit(w) {
		return
	}
	defer s.mu.Unlock()

	c, ok := s.tileCoord(w, r)
	if !ok {
		return
	}
	if err := s.grid.SetTileWeight(c, req.Weight); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	t, _ := s.grid.Tile(c)
	respondJSON(w, http.StatusOK, tileJSON{X: c.X, Y: c.Y, Type: t.Type.String(), Weight: t.Weight, Anim: t.Anim.String()})
}

// clearGrid handles POST /grid/clear.
func (s *Server) clearGrid(w http.ResponseWriter, r *http.Request) {
	if !s.lockForEdit(w) {
		return
	}
	defer s.mu.Unlock()

	s.sel.Stop()
	s.grid.ClearGrid()
	respondJSON(w, http.StatusOK, s.snapshot())
}

// randomWalls handles POST /grid/walls with an optional {"percent": 30}.
func (s *Server) randomWalls(w http.ResponseWriter, r *http.Request) {
	var req wallsRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid body: "+err.Error())
		return
	}
	percent := s.walls
	if req.Percent != nil {
		percent = *req.Percent
	}
	if !s.lockForEdit(w) {
		return
	}
	defer s.mu.Unlock()

	s.grid.ResetAnimation()
	placed, err := s.grid.GenerateRandomWalls(percent, s.rng)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"placed": placed, "grid": s.snapshot()})
}

// maze handles POST /grid/maze.
func (s *Server) maze(w http.ResponseWriter, r *http.Request) {
	if !s.lockForEdit(w) {
		return
	}
	defer s.mu.Unlock()

	s.grid.ResetAnimation()
	s.grid.GenerateMaze(s.rng)
	respondJSON(w, http.StatusOK, s.snapshot())
}

// startRun handles POST /runs/{algorithm}. The run is synchronous and
// bound to the request context.
func (s *Server) startRun(w http.ResponseWriter, r *http.Request) {
	typ, err := selector.ParseType(chi.URLParam(r, "algorithm"))
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	if !s.lockForEdit(w) {
		return
	}
	defer s.mu.Unlock()

	found, err := s.sel.Execute(r.Context(), typ)
	switch {
	case errors.Is(err, algorithm.ErrSelectionIncomplete):
		respondError(w, http.StatusConflict, s.lastMessage())
		return
	case errors.Is(err, algorithm.ErrAborted):
		respondError(w, http.StatusConflict, s.lastMessage())
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	alg, _ := s.sel.Algorithm(typ)
	d, _ := alg.Data()
	resp := runJSON{
		Algorithm: typ.String(),
		Found:     found,
		Data:      toDataJSON(d),
		Path:      alg.Path(),
		Message:   s.lastMessage(),
	}
	if tl := alg.Timeline(); tl != nil {
		resp.Events = tl.Len()
	}
	respondJSON(w, http.StatusOK, resp)
}

// stopRun handles POST /runs/stop. It never waits for the grid lock.
func (s *Server) stopRun(w http.ResponseWriter, r *http.Request) {
	s.sel.Stop()
	respondJSON(w, http.StatusOK, map[string]string{"state": s.sel.State().String()})
}

// currentRun handles GET /runs/current.
func (s *Server) currentRun(w http.ResponseWriter, r *http.Request) {
	out := currentJSON{
		State:   s.sel.State().String(),
		Message: s.lastMessage(),
	}
	if _, typ, ok := s.sel.Current(); ok {
		out.Algorithm = typ.String()
	}
	if d, ok := s.sel.CurrentData(); ok {
		dj := toDataJSON(d)
		out.Current = &dj
	}
	if d, ok := s.sel.PreviousData(); ok {
		dj := toDataJSON(d)
		out.Previous = &dj
	}
	respondJSON(w, http.StatusOK, out)
}

// runTimeline handles GET /runs/timeline?from=0&limit=100.
func (s *Server) runTimeline(w http.ResponseWriter, r *http.Request) {
	alg, _, ok := s.sel.Current()
	if !ok || alg.Timeline() == nil {
		respondError(w, http.StatusNotFound, "No completed run")
		return
	}
	tl := alg.Timeline()

	from, err := queryInt(r, "from", 0)
	if err != nil || from < 0 {
		respondError(w, http.StatusBadRequest, "Invalid from")
		return
	}
	limit, err := queryInt(r, "limit", tl.Len())
	if err != nil || limit < 0 {
		respondError(w, http.StatusBadRequest, "Invalid limit")
		return
	}

	out := timelineJSON{Total: tl.Len(), From: from, Events: []eventJSON{}}
	for i := from; i < tl.Len() && len(out.Events) < limit; i++ {
		out.Events = append(out.Events, toEventJSON(tl.At(i)))
	}
	respondJSON(w, http.StatusOK, out)
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def, nil
	}

	return strconv.Atoi(v)
}
