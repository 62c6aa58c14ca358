package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinder/algorithm"
	"github.com/katalvlaran/pathfinder/config"
	"github.com/katalvlaran/pathfinder/grid"
	"github.com/katalvlaran/pathfinder/replay"
	"github.com/katalvlaran/pathfinder/selector"
)

func newModel(t *testing.T, w, h int) Model {
	t.Helper()
	g, err := grid.New(w, h)
	require.NoError(t, err)
	cfg := config.Default()
	cfg.Speed = replay.Instant
	cfg.Algorithm = selector.BreadthFirstSearch

	return New(cfg, g)
}

// press sends each key to m and returns the resulting model.
func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}

	return m
}

func TestModel_EditKeys(t *testing.T) {
	m := newModel(t, 4, 3)
	m = press(t, m, "s", "right", "w", "right", "+", "+", "down", "e")

	start, ok := m.grid.StartTile()
	require.True(t, ok)
	assert.Equal(t, grid.Coord{X: 0, Y: 0}, start.Coord)
	end, ok := m.grid.EndTile()
	require.True(t, ok)
	assert.Equal(t, grid.Coord{X: 2, Y: 1}, end.Coord)
	wall, _ := m.grid.Tile(grid.Coord{X: 1, Y: 0})
	assert.Equal(t, grid.WallTile, wall.Type)
	heavy, _ := m.grid.Tile(grid.Coord{X: 2, Y: 0})
	assert.Equal(t, 3, heavy.Weight)

	// Walls toggle; the cursor never leaves the grid.
	m = press(t, m, "k", "h", "w", "h", "h", "h", "k")
	wall, _ = m.grid.Tile(grid.Coord{X: 1, Y: 0})
	assert.Equal(t, grid.Default, wall.Type)
	assert.Equal(t, grid.Coord{X: 0, Y: 0}, m.cursor)
}

func TestModel_RunAndReplay(t *testing.T) {
	m := newModel(t, 3, 3)
	m = press(t, m, "s", "right", "right", "down", "down", "e", "enter")
	assert.Equal(t, selector.MsgPathFound, m.status.msg)
	require.True(t, m.playing)

	next, cmd := m.Update(frameMsg(time.Now()))
	m = next.(Model)
	assert.NotNil(t, cmd, "the ticker keeps running")
	assert.False(t, m.playing, "Instant finishes in one frame")

	found := 0
	for i := 0; i < m.grid.Len(); i++ {
		if m.grid.TileAt(i).Anim == grid.Found {
			found++
		}
	}
	assert.Equal(t, 5, found)
	assert.Equal(t, "4", m.sel.TotalCost())
	assert.Contains(t, m.View(), "Breadth First Search")
}

func TestModel_RunWithoutSelection(t *testing.T) {
	m := newModel(t, 3, 3)
	m = press(t, m, "enter")
	assert.Equal(t, selector.MsgSelectStart, m.status.msg)
	assert.False(t, m.playing)

	m = press(t, m, "s", "enter")
	assert.Equal(t, selector.MsgSelectEnd, m.status.msg)
}

func TestModel_SpeedAndAlgorithmKeys(t *testing.T) {
	m := newModel(t, 3, 3)
	m = press(t, m, "[", "[")
	assert.Equal(t, replay.Fast, m.speed)
	m = press(t, m, "[", "[", "[", "[")
	assert.Equal(t, replay.Slow, m.speed, "speed stops at the slowest")
	m = press(t, m, "]")
	assert.Equal(t, replay.Average, m.speed)

	m = press(t, m, "4")
	assert.Equal(t, selector.AStar, m.algType)
	m = press(t, m, "1")
	assert.Equal(t, selector.DepthFirstSearch, m.algType)
}

func TestModel_StopClearsRun(t *testing.T) {
	m := newModel(t, 3, 3)
	m = press(t, m, "s", "down", "down", "e", "enter", ".")
	assert.Equal(t, algorithm.NotExecuted, m.sel.State())
	assert.Equal(t, selector.MsgStopped, m.status.msg)
	assert.Equal(t, algorithm.NotRunYet, m.sel.TotalCost())
}

func TestGlyph(t *testing.T) {
	cases := []struct {
		tile grid.Tile
		want string
	}{
		{grid.Tile{Type: grid.StartTile, Anim: grid.Found, Weight: 1}, "S"},
		{grid.Tile{Type: grid.EndTile, Weight: 1}, "E"},
		{grid.Tile{Type: grid.WallTile, Weight: 1}, "█"},
		{grid.Tile{Anim: grid.Found, Weight: 4}, "*"},
		{grid.Tile{Anim: grid.Processed, Weight: 1}, "o"},
		{grid.Tile{Anim: grid.Processing, Weight: 1}, "+"},
		{grid.Tile{Weight: 7}, "7"},
		{grid.Tile{Weight: 12}, "#"},
		{grid.Tile{Weight: 1}, "·"},
	}
	for _, tc := range cases {
		tile := tc.tile
		assert.Equal(t, tc.want, glyph(&tile))
	}
}

func TestView_RendersEveryRow(t *testing.T) {
	m := newModel(t, 5, 4)
	out := m.View()
	assert.Contains(t, out, "pathfinder")
	assert.Contains(t, out, selector.MsgSelectStart)
	assert.GreaterOrEqual(t, strings.Count(out, "\n"), 4)
}
