// Package algorithm is the shared runtime behind every search strategy.
//
// What:
//
//   - Algorithm drives one Strategy over a grid.Grid through the lifecycle
//     NotExecuted → Executing → Executed, and back to NotExecuted on Stop.
//   - Run is the bookkeeping every strategy reuses: the explored counter,
//     the predecessor map and the animation timeline. A fresh Run is built
//     for every Execute.
//   - Strategy owns only its open list and visited set, and decides when a
//     tile is marked, when it is expanded and when End is detected.
//   - Data is the value snapshot of a completed run (RunID, TimeTaken,
//     PathCost, TilesExplored, PathFound).
//
// Execution:
//
//	Execute is synchronous. Before every open-list iteration it checks its
//	context and a stop flag, so Stop (from any goroutine) or a cancelled
//	context ends the run within one iteration. An aborted run returns an
//	error wrapping ErrAborted and leaves no partial state behind.
//
// Paths:
//
//	On success the path is rebuilt by walking predecessors from End back
//	to Start. PathCost is the sum of the weights of every path tile the walk
//	leaves: Start is included, End is not. The path tiles are appended to the timeline as grid.Found
//	events in Start..End order after the search events.
//
// Replay:
//
//	PlayVisualization feeds the finished timeline to a replay.Controller;
//	the search never runs again to animate.
//
// Errors:
//
//   - ErrSelectionIncomplete wrapping ErrStartNotSet, ErrEndNotSet or
//     ErrSameStartEnd when the preconditions do not hold.
//   - ErrAlreadyExecuting when Execute is re-entered during a run.
//   - ErrAborted when Stop or the context ends a run.
package algorithm
