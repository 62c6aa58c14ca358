package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/pathfinder/algorithm"
	"github.com/katalvlaran/pathfinder/grid"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	statusStyle = lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("15")).Padding(0, 1)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1)

	startStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	endStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	wallStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	defaultStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	processingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	processedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	foundStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

// glyph returns the character drawn for t, before styling.
func glyph(t *grid.Tile) string {
	switch t.Type {
	case grid.StartTile:
		return "S"
	case grid.EndTile:
		return "E"
	case grid.WallTile:
		return "█"
	}
	switch t.Anim {
	case grid.Found:
		return "*"
	case grid.Processed:
		return "o"
	case grid.Processing:
		return "+"
	}
	if t.Weight > 1 {
		if t.Weight < 10 {
			return strconv.Itoa(t.Weight)
		}
		return "#"
	}

	return "·"
}

// tileStyle picks the style for t. Start and End keep their color while
// animated; the path color wins over the rest.
func tileStyle(t *grid.Tile) lipgloss.Style {
	switch t.Type {
	case grid.StartTile:
		return startStyle
	case grid.EndTile:
		return endStyle
	case grid.WallTile:
		return wallStyle
	}
	switch t.Anim {
	case grid.Found:
		return foundStyle
	case grid.Processed:
		return processedStyle
	case grid.Processing:
		return processingStyle
	}

	return defaultStyle
}

// renderGrid draws the grid with the cursor highlighted.
func (m Model) renderGrid() string {
	var b strings.Builder
	for y := 0; y < m.grid.Height(); y++ {
		for x := 0; x < m.grid.Width(); x++ {
			c := grid.Coord{X: x, Y: y}
			t, _ := m.grid.Tile(c)
			style := tileStyle(t)
			if c == m.cursor {
				style = style.Reverse(true)
			}
			b.WriteString(style.Render(glyph(t)))
		}
		if y < m.grid.Height()-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// renderPanel draws the run statistics of the current and previous run.
func (m Model) renderPanel() string {
	row := func(label, value string) string {
		return labelStyle.Render(fmt.Sprintf("%-14s", label)) + valueStyle.Render(value)
	}
	lines := []string{
		titleStyle.Render("pathfinder"),
		"",
		row("Next run", m.algType.String()),
		row("Speed", m.speed.String()),
		row("Replay", m.replayState()),
		"",
		titleStyle.Render("Current"),
		row("Algorithm", m.sel.Name()),
		row("Time", m.sel.TimeTaken()),
		row("Path cost", m.sel.TotalCost()),
		row("Explored", m.sel.TilesExplored()),
		"",
		titleStyle.Render("Previous"),
	}
	if prev, ok := m.sel.PreviousData(); ok {
		lines = append(lines,
			row("Algorithm", prev.Name),
			row("Time", prev.TimeTakenString()),
			row("Path cost", prev.PathCostString()),
			row("Explored", strconv.Itoa(prev.TilesExplored)),
		)
	} else {
		lines = append(lines, row("Algorithm", algorithm.NotRunYet))
	}
	tile, _ := m.grid.Tile(m.cursor)
	lines = append(lines, "", row("Cursor", fmt.Sprintf("%s w=%d", m.cursor, tile.Weight)))

	return panelStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) replayState() string {
	alg, _, ok := m.sel.Current()
	if !ok {
		return "-"
	}

	return alg.Replay().State().String()
}

const help = "arrows move · s start · e end · w wall · x clear tile · +/- weight · " +
	"1-4 algorithm · enter run · p pause · . stop · [ ] speed · r walls · m maze · c clear · q quit"

// View renders the grid, the statistics panel, the status line and help.
func (m Model) View() string {
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderGrid(), "  ", m.renderPanel())

	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		"",
		statusStyle.Render(m.status.msg),
		helpStyle.Render(help),
	)
}
