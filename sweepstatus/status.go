// Package sweepstatus implements the ordered sweep-line status
// structure: the set of edges currently crossing the sweep line,
// ordered bottom-to-top by event.SegmentBelow, supporting O(log n)
// insertion, removal, and neighbor lookup.
//
// Callers hold a *Handle (a thin wrapper around the underlying
// red-black tree node) from the moment a left event is inserted until
// its right twin is processed and it is removed, so the handle stays
// valid across structural changes to the tree around it.
package sweepstatus

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"

	"github.com/polyclip-go/martinez/event"
)

// Handle is an opaque reference to one event's position in the
// status. It remains valid until the event is removed.
type Handle struct {
	node *rbt.Node
}

// Status is the ordered set of left events currently active on the
// sweep line.
type Status struct {
	tree *rbt.Tree
}

// New returns an empty status structure.
func New() *Status {
	return &Status{
		tree: rbt.NewWith(func(a, b interface{}) int {
			ea, eb := a.(*event.Event), b.(*event.Event)
			if ea == eb {
				return 0
			}
			if event.SegmentBelow(ea, eb) {
				return -1
			}
			return 1
		}),
	}
}

// Insert adds e's segment to the status and returns a handle to its
// position.
func (s *Status) Insert(e *event.Event) *Handle {
	s.tree.Put(e, nil)
	node := s.tree.GetNode(e)
	h := &Handle{node: node}
	e.Handle = h
	return h
}

// Remove deletes the event at h from the status. h is invalid after
// this call.
func (s *Status) Remove(h *Handle) {
	s.tree.Remove(h.node.Key)
}

// Event returns the event h currently refers to.
func (h *Handle) Event() *event.Event {
	return h.node.Key.(*event.Event)
}

// Prev returns the event immediately below h in the status, and
// whether one exists. Removing another event can move keys between
// tree nodes, so the node is looked up again by h's event.
func (s *Status) Prev(h *Handle) (*event.Event, bool) {
	it := s.tree.IteratorAt(s.tree.GetNode(h.node.Key))
	if it.Prev() {
		return it.Key().(*event.Event), true
	}
	return nil, false
}

// Next returns the event immediately above h in the status, and
// whether one exists. Like Prev, it looks the node up again by h's
// event.
func (s *Status) Next(h *Handle) (*event.Event, bool) {
	it := s.tree.IteratorAt(s.tree.GetNode(h.node.Key))
	if it.Next() {
		return it.Key().(*event.Event), true
	}
	return nil, false
}

// Len reports how many events are currently active in the status.
func (s *Status) Len() int {
	return s.tree.Size()
}
