// Command pathfinderd serves a pathfinder grid and its search engine as a
// JSON API.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/pathfinder/config"
	"github.com/katalvlaran/pathfinder/grid"
	"github.com/katalvlaran/pathfinder/internal/httpapi"
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

	api := httpapi.New(cfg, g, log.Default())
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("[APP] [INFO] listening on %s (%dx%d grid)", cfg.HTTPAddr, cfg.Columns, cfg.Rows)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[APP] [FATAL] %v", err)
		}
	}()

	<-ctx.Done()
	api.Selector().Stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[APP] [ERROR] shutdown: %v", err)
	}
	log.Printf("[APP] [INFO] stopped")
}
