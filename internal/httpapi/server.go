package httpapi

import (
	"errors"
	"log"
	"math/rand"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/katalvlaran/pathfinder/config"
	"github.com/katalvlaran/pathfinder/grid"
	"github.com/katalvlaran/pathfinder/selector"
)

// errBusy is reported when a run holds the grid.
var errBusy = errors.New("httpapi: a run is in progress")

// Server owns one grid and one selector and serves them over HTTP.
//
// Runs and grid edits take the write lock, so a run always sees a stable
// grid; reads take the read lock. POST /runs/stop bypasses the lock and
// raises the running algorithm's stop flag.
type Server struct {
	mu     sync.RWMutex
	grid   *grid.Grid
	sel    *selector.Selector
	rng    *rand.Rand
	walls  int
	logger *log.Logger

	msgMu   sync.Mutex
	message string
}

// New builds a Server over g using the wall and seed settings in cfg.
// A nil logger selects log.Default().
func New(cfg config.Config, g *grid.Grid, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		grid:    g,
		rng:     grid.NewRand(cfg.Seed),
		walls:   cfg.WallPercent,
		logger:  logger,
		message: selector.MsgSelectStart,
	}
	logReporter := selector.LogReporter(logger)
	s.sel = selector.New(g, selector.WithReporter(selector.ReporterFunc(func(msg string) {
		s.setMessage(msg)
		logReporter.Report(msg)
	})))

	return s
}

// Selector returns the selector the server drives.
func (s *Server) Selector() *selector.Selector { return s.sel }

// Routes configures every route and returns the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: s.logger, NoColor: true}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/grid", func(r chi.Router) {
		r.Get("/", s.getGrid)
		r.Put("/tiles/{x}/{y}", s.putTileType)
		r.Put("/tiles/{x}/{y}/weight", s.putTileWeight)
		r.Post("/clear", s.clearGrid)
		r.Post("/walls", s.randomWalls)
		r.Post("/maze", s.maze)
	})

	r.Route("/runs", func(r chi.Router) {
		r.Post("/stop", s.stopRun)
		r.Get("/current", s.currentRun)
		r.Get("/timeline", s.runTimeline)
		r.Post("/{algorithm}", s.startRun)
	})

	return r
}

func (s *Server) setMessage(msg string) {
	s.msgMu.Lock()
	s.message = msg
	s.msgMu.Unlock()
}

func (s *Server) lastMessage() string {
	s.msgMu.Lock()
	defer s.msgMu.Unlock()

	return s.message
}
