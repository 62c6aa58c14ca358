package timeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/pathfinder/grid"
	"github.com/katalvlaran/pathfinder/timeline"
)

func TestTimeline_AppendOrder(t *testing.T) {
	tl := timeline.New(4)
	tl.Append(0, grid.Coord{X: 0, Y: 0}, grid.Processing)
	tl.Append(0, grid.Coord{X: 0, Y: 0}, grid.Processed)
	tl.Append(3, grid.Coord{X: 1, Y: 1}, grid.Processing)

	assert.Equal(t, 3, tl.Len())
	for i, ev := range tl.Events() {
		assert.Equal(t, i, ev.Seq)
	}
	assert.Equal(t, grid.Coord{X: 1, Y: 1}, tl.At(2).Coord)
	assert.Equal(t, 2, tl.Count(grid.Processing))
	assert.Equal(t, 1, tl.Count(grid.Processed))
	assert.Equal(t, 0, tl.Count(grid.Found))
}

func TestTimeline_EventsIsACopy(t *testing.T) {
	tl := timeline.New(1)
	tl.Append(1, grid.Coord{X: 1}, grid.Processed)
	evs := tl.Events()
	evs[0].State = grid.Found
	assert.Equal(t, grid.Processed, tl.At(0).State)
}

func TestTimeline_ResetAndNil(t *testing.T) {
	var zero timeline.Timeline
	zero.Append(2, grid.Coord{X: 2}, grid.Processing)
	zero.Reset()
	assert.Equal(t, 0, zero.Len())
	zero.Append(5, grid.Coord{X: 5}, grid.Found)
	assert.Equal(t, 0, zero.At(0).Seq, "sequence restarts after Reset")

	var nilTL *timeline.Timeline
	assert.Equal(t, 0, nilTL.Len())
	assert.Nil(t, nilTL.Events())
	assert.Equal(t, 0, nilTL.Count(grid.Found))
}
