// Package eventqueue implements the event priority queue: a
// min-priority structure over sweep events, ordered by
// the event comparator of event.Compare, supporting insertion of
// newly discovered events (from subdivision) interleaved with
// extraction of the next event to process.
package eventqueue

import (
	"github.com/google/btree"

	"github.com/polyclip-go/martinez/event"
)

// degree is the B-tree branching factor. Events compare cheaply (a
// handful of float comparisons), so a wide, shallow tree favors fewer
// pointer-chasing levels over the usual balance against comparison
// cost.
const degree = 32

// Queue is a min-priority queue of *event.Event, ordered by
// event.Compare. The zero value is not usable; use New.
type Queue struct {
	tree *btree.BTreeG[*event.Event]
}

// New returns an empty queue.
func New() *Queue {
	return &Queue{
		tree: btree.NewG(degree, func(a, b *event.Event) bool {
			return event.Before(a, b)
		}),
	}
}

// Push inserts e into the queue.
func (q *Queue) Push(e *event.Event) {
	q.tree.ReplaceOrInsert(e)
}

// Pop removes and returns the least event in the queue. It panics if
// the queue is empty; callers must check Empty first.
func (q *Queue) Pop() *event.Event {
	e, ok := q.tree.DeleteMin()
	if !ok {
		panic("eventqueue: Pop on empty queue")
	}
	return e
}

// Peek returns the least event without removing it, and whether the
// queue was non-empty.
func (q *Queue) Peek() (*event.Event, bool) {
	return q.tree.Min()
}

// Empty reports whether the queue holds no events.
func (q *Queue) Empty() bool {
	return q.tree.Len() == 0
}

// Len reports the number of events currently queued.
func (q *Queue) Len() int {
	return q.tree.Len()
}
