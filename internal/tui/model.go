// Package tui is the terminal front end: it edits the grid from the
// keyboard, runs the selected strategy and replays its timeline frame by
// frame.
package tui

import (
	"context"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/pathfinder/algorithm"
	"github.com/katalvlaran/pathfinder/config"
	"github.com/katalvlaran/pathfinder/grid"
	"github.com/katalvlaran/pathfinder/replay"
	"github.com/katalvlaran/pathfinder/selector"
	"github.com/katalvlaran/pathfinder/timeline"
)

// frameInterval paces the replay ticks.
const frameInterval = time.Second / 60

// speeds is the order "[" and "]" cycle through.
var speeds = [...]replay.Speed{replay.Slow, replay.Average, replay.Fast, replay.SuperFast, replay.Instant}

// frameMsg is one replay tick.
type frameMsg time.Time

// status holds the last reporter message. Shared by pointer so the
// selector's reporter and every copy of Model see the same line.
type status struct{ msg string }

// Model is the bubbletea model of the terminal front end.
type Model struct {
	grid     *grid.Grid
	sel      *selector.Selector
	status   *status
	rng      *rand.Rand
	cursor   grid.Coord
	algType  selector.Type
	speed    replay.Speed
	walls    int // wall percentage for random walls
	playing  bool
	lastTick time.Time
	width    int
	height   int
}

// New builds a Model over g using the settings in cfg.
func New(cfg config.Config, g *grid.Grid) Model {
	st := &status{msg: selector.MsgSelectStart}
	sink := func(ev timeline.Event) { g.SetAnimState(ev.Coord, ev.State) }
	sel := selector.New(g,
		selector.WithReporter(selector.ReporterFunc(func(msg string) { st.msg = msg })),
		selector.WithAlgorithmOptions(algorithm.WithReplayOptions(replay.WithSink(sink))),
	)

	return Model{
		grid:    g,
		sel:     sel,
		status:  st,
		rng:     grid.NewRand(cfg.Seed),
		algType: cfg.Algorithm,
		speed:   cfg.Speed,
		walls:   cfg.WallPercent,
	}
}

// Init starts the frame ticker.
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// Update handles key presses, window resizes and replay ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case frameMsg:
		m.advance(time.Time(msg))
		return m, tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// advance feeds the elapsed frame time to the replay.
func (m *Model) advance(now time.Time) {
	if !m.playing {
		m.lastTick = now
		return
	}
	dt := now.Sub(m.lastTick)
	if m.lastTick.IsZero() || dt < 0 {
		dt = 0
	}
	m.lastTick = now
	if m.sel.PlayVisualization(m.speed, dt) {
		m.playing = false
	}
}

// handleKey maps one key press to an action.
func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "ctrl+c", "q", "esc":
		m.sel.Stop()
		return m, tea.Quit

	case "up", "k":
		m.moveCursor(grid.Up)
	case "down", "j":
		m.moveCursor(grid.Down)
	case "left", "h":
		m.moveCursor(grid.Left)
	case "right", "l":
		m.moveCursor(grid.Right)

	case "s":
		m.edit(func() { m.grid.SetTileType(m.cursor, grid.StartTile) })
	case "e":
		m.edit(func() { m.grid.SetTileType(m.cursor, grid.EndTile) })
	case "w", " ":
		m.edit(m.toggleWall)
	case "x":
		m.edit(func() { m.grid.SetTileType(m.cursor, grid.Default) })
	case "+", "=":
		m.edit(func() { m.shiftWeight(1) })
	case "-":
		m.edit(func() { m.shiftWeight(-1) })
	case "c":
		m.edit(m.grid.ClearGrid)
	case "r":
		m.edit(func() { _, _ = m.grid.GenerateRandomWalls(m.walls, m.rng) })
	case "m":
		m.edit(func() { m.grid.GenerateMaze(m.rng) })

	case "1", "2", "3", "4":
		m.algType = selector.Types[key.String()[0]-'1']
	case "[":
		m.shiftSpeed(-1)
	case "]":
		m.shiftSpeed(1)

	case "enter":
		m.run()
	case "p":
		m.togglePause()
	case ".":
		m.sel.Stop()
		m.grid.ResetAnimation()
		m.playing = false
		m.status.msg = selector.MsgStopped
	}

	return m, nil
}

// edit applies a grid change. Any change invalidates the current replay.
func (m *Model) edit(fn func()) {
	if m.playing {
		m.sel.Stop()
		m.playing = false
	}
	m.grid.ResetAnimation()
	fn()
}

func (m *Model) moveCursor(d grid.Direction) {
	if next := m.cursor.Step(d); m.grid.InBounds(next) {
		m.cursor = next
	}
}

func (m *Model) toggleWall() {
	t, ok := m.grid.Tile(m.cursor)
	if !ok {
		return
	}
	if t.Type == grid.WallTile {
		m.grid.SetTileType(m.cursor, grid.Default)
		return
	}
	m.grid.SetTileType(m.cursor, grid.WallTile)
}

func (m *Model) shiftWeight(delta int) {
	t, ok := m.grid.Tile(m.cursor)
	if !ok {
		return
	}
	if w := t.Weight + delta; w >= 1 && w <= 9 {
		_ = m.grid.SetTileWeight(m.cursor, w)
	}
}

func (m *Model) shiftSpeed(delta int) {
	for i, s := range speeds {
		if s != m.speed {
			continue
		}
		if j := i + delta; j >= 0 && j < len(speeds) {
			m.speed = speeds[j]
		}
		return
	}
}

// run executes the chosen strategy and starts the replay.
func (m *Model) run() {
	if _, err := m.sel.Execute(context.Background(), m.algType); err != nil {
		m.playing = false
		return
	}
	m.playing = true
	m.lastTick = time.Time{}
}

func (m *Model) togglePause() {
	alg, _, ok := m.sel.Current()
	if !ok {
		return
	}
	ctl := alg.Replay()
	switch ctl.State() {
	case replay.Playing:
		ctl.Pause()
	case replay.Paused:
		ctl.Resume()
	}
}
