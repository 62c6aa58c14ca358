// Command pathfinder is the terminal front end: draw Start, End and walls
// on a grid, pick a strategy and watch it search.
package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/pathfinder/config"
	"github.com/katalvlaran/pathfinder/grid"
	"github.com/katalvlaran/pathfinder/internal/tui"
)

func main() {
	envFile := flag.String("env", "", "optional .env file (default: ./.env if present)")
	flag.Parse()

	var files []string
	if *envFile != "" {
		files = append(files, *envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}

	g, err := grid.New(cfg.Columns, cfg.Rows, grid.WithDefaultWeight(cfg.TileWeight))
	if err != nil {
		log.Fatalf("[APP] [FATAL] grid: %v", err)
	}

	p := tea.NewProgram(tui.New(cfg, g), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}
}
