// Package frontier is the min-priority open list shared by the Dijkstra and
// A* strategies.
//
// Entries are tile indices ordered by an integer priority; equal
// priorities pop in push order, so neighbor expansion order decides ties.
// Each index appears at most once: pushing an index already queued with a
// lower priority is a decrease-key (heap.Fix) rather than a duplicate entry.
package frontier

import "container/heap"

// entry is one queued tile.
type entry struct {
	index    int    // tile index
	priority int    // ordering key, lower pops first
	seq      uint64 // push order, breaks priority ties
	pos      int    // position inside the heap slice
}

// entries implements heap.Interface over *entry, tracking positions for Fix.
type entries []*entry

func (e entries) Len() int { return len(e) }

func (e entries) Less(i, j int) bool {
	if e[i].priority != e[j].priority {
		return e[i].priority < e[j].priority
	}

	return e[i].seq < e[j].seq
}

func (e entries) Swap(i, j int) {
	e[i], e[j] = e[j], e[i]
	e[i].pos = i
	e[j].pos = j
}

func (e *entries) Push(x interface{}) {
	it := x.(*entry)
	it.pos = len(*e)
	*e = append(*e, it)
}

func (e *entries) Pop() interface{} {
	old := *e
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*e = old[:n-1]

	return it
}

// Queue is a min-priority queue of tile indices with decrease-key.
type Queue struct {
	heap    entries
	byIndex map[int]*entry
	nextSeq uint64
}

// New returns an empty Queue sized for capacity entries.
func New(capacity int) *Queue {
	if capacity < 0 {
		capacity = 0
	}

	return &Queue{
		heap:    make(entries, 0, capacity),
		byIndex: make(map[int]*entry, capacity),
	}
}

// Len returns the number of queued tiles.
func (q *Queue) Len() int { return len(q.heap) }

// Push queues index with priority. If index is already queued, a strictly
// lower priority replaces the old one and the entry takes a fresh push
// order; otherwise the call is ignored. Reports whether the queue changed.
// Complexity: O(log n).
func (q *Queue) Push(index, priority int) bool {
	seq := q.nextSeq
	if it, ok := q.byIndex[index]; ok {
		if priority >= it.priority {
			return false
		}
		it.priority = priority
		it.seq = seq
		q.nextSeq++
		heap.Fix(&q.heap, it.pos)

		return true
	}

	it := &entry{index: index, priority: priority, seq: seq}
	q.nextSeq++
	heap.Push(&q.heap, it)
	q.byIndex[index] = it

	return true
}

// Pop removes and returns the lowest-priority tile. The queue must not be empty.
// Complexity: O(log n).
func (q *Queue) Pop() (index, priority int) {
	it := heap.Pop(&q.heap).(*entry)
	delete(q.byIndex, it.index)

	return it.index, it.priority
}

// Clear discards every entry and reallocates the backing storage so no
// state from an aborted run survives.
func (q *Queue) Clear() {
	q.heap = make(entries, 0, cap(q.heap))
	q.byIndex = make(map[int]*entry, len(q.byIndex))
	q.nextSeq = 0
}
