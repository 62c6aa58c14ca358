// Package selector defines the algorithm types, status messages, reporter
// and options of the selector facade.
package selector

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/katalvlaran/pathfinder/algorithm"
)

// ErrUnknownType indicates a name or value that is not an algorithm Type.
var ErrUnknownType = errors.New("selector: unknown algorithm type")

// Status messages sent to the Reporter.
const (
	MsgSelectStart  = "Select Start Tile (Press 'S')"
	MsgSelectEnd    = "Select End Tile (Press 'E')"
	MsgSameStartEnd = "Start and End tiles must differ"
	MsgExecuting    = "Executing Algorithm"
	MsgPathFound    = "Path Found! Visualizing Path!"
	MsgPathNotFound = "Path Not Found! Visualizing Path!"
	MsgStopped      = "Algorithm Stopped"

	// NotSelected is reported by the accessors before any Execute.
	NotSelected = "Not Selected!"
)

// Type names one of the four strategies.
type Type int

const (
	DepthFirstSearch Type = iota
	BreadthFirstSearch
	Dijkstra
	AStar

	typeCount
)

// Types lists every Type in menu order.
var Types = [...]Type{DepthFirstSearch, BreadthFirstSearch, Dijkstra, AStar}

// Valid reports whether t is one of the four strategies.
func (t Type) Valid() bool { return t >= DepthFirstSearch && t < typeCount }

// String returns the short key used on the command line and in URLs.
func (t Type) String() string {
	switch t {
	case DepthFirstSearch:
		return "dfs"
	case BreadthFirstSearch:
		return "bfs"
	case Dijkstra:
		return "dijkstra"
	case AStar:
		return "astar"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType accepts a short key ("dfs", "bfs", "dijkstra", "astar"), the
// alias "a*", or a display name such as "Breadth First Search". Matching
// ignores case and surrounding spaces.
func ParseType(s string) (Type, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	switch key {
	case "dfs", "depth first search", "depth-first search":
		return DepthFirstSearch, nil
	case "bfs", "breadth first search", "breadth-first search":
		return BreadthFirstSearch, nil
	case "dijkstra", "dijkstra's algorithm":
		return Dijkstra, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// Reporter receives user-facing status messages.
type Reporter interface {
	Report(msg string)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(msg string)

// Report calls f(msg).
func (f ReporterFunc) Report(msg string) { f(msg) }

// Discard drops every message.
var Discard Reporter = ReporterFunc(func(string) {})

// LogReporter writes every message to l as an info line.
func LogReporter(l *log.Logger) Reporter {
	if l == nil {
		l = log.Default()
	}

	return ReporterFunc(func(msg string) {
		l.Printf("[APP] [INFO] %s", msg)
	})
}

// Option configures a Selector.
type Option func(*Selector)

// WithReporter sets where status messages go. The default is Discard.
func WithReporter(r Reporter) Option {
	return func(s *Selector) {
		if r != nil {
			s.reporter = r
		}
	}
}

// WithAlgorithmOptions passes options to every Algorithm the selector owns.
func WithAlgorithmOptions(opts ...algorithm.Option) Option {
	return func(s *Selector) {
		s.algOpts = append(s.algOpts, opts...)
	}
}
