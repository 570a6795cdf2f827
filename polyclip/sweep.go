package polyclip

import (
	"github.com/polyclip-go/martinez/contour"
	"github.com/polyclip-go/martinez/event"
	"github.com/polyclip-go/martinez/eventqueue"
	"github.com/polyclip-go/martinez/geo"
	"github.com/polyclip-go/martinez/options"
	"github.com/polyclip-go/martinez/sweepstatus"
)

// sweep holds the mutable state of one running clipping operation:
// the event arena and queue, the ordered status line, the output
// assembler, and the running intersection log.
type sweep struct {
	op   Operation
	opts options.ClipperOptions

	arena     *event.Arena
	queue     *eventqueue.Queue
	status    *sweepstatus.Status
	assembler *contour.Assembler

	subjectBox, clippingBox geo.Box
	minMaxX                 float64

	intersections []geo.Point
}

// run computes op over subject and clipping, returning the result
// polygon and the full intersection log.
func (c *Clipper) run(op Operation) (Polygon, []geo.Point) {
	subjectEmpty := len(c.subject.Contours) == 0
	clippingEmpty := len(c.clipping.Contours) == 0
	if subjectEmpty || clippingEmpty {
		return emptyInputResult(op, c.subject, c.clipping, subjectEmpty, clippingEmpty), nil
	}

	subjectBox := c.subject.BoundingBox()
	clippingBox := c.clipping.BoundingBox()
	if !subjectBox.Overlaps(clippingBox) {
		return disjointResult(op, c.subject, c.clipping), nil
	}

	s := &sweep{
		op:          op,
		opts:        c.opts,
		arena:       event.NewArena(),
		queue:       eventqueue.New(),
		status:      sweepstatus.New(),
		assembler:   contour.NewAssembler(),
		subjectBox:  subjectBox,
		clippingBox: clippingBox,
		minMaxX:     min(subjectBox.MaxX, clippingBox.MaxX),
	}

	s.enqueuePolygon(c.subject, event.Subject)
	s.enqueuePolygon(c.clipping, event.Clipping)
	s.process()

	return resultsToPolygon(s.assembler.Assemble()), s.intersections
}

// emptyInputResult implements the zero-contour-input shortcut.
func emptyInputResult(op Operation, subject, clipping Polygon, subjectEmpty, clippingEmpty bool) Polygon {
	switch op {
	case Difference:
		return subject
	case Intersection:
		return Polygon{}
	default: // Union, Xor
		switch {
		case subjectEmpty && clippingEmpty:
			return Polygon{}
		case subjectEmpty:
			return clipping
		default:
			return subject
		}
	}
}

// disjointResult implements the disjoint-bounding-box shortcut.
func disjointResult(op Operation, subject, clipping Polygon) Polygon {
	switch op {
	case Difference:
		return subject
	case Intersection:
		return Polygon{}
	default: // Union, Xor
		return NewPolygon(append(append([]Contour{}, subject.Contours...), clipping.Contours...)...)
	}
}

// enqueuePolygon pushes two twin events for every non-degenerate edge
// of poly, labeled label.
func (s *sweep) enqueuePolygon(poly Polygon, label event.Label) {
	for _, c := range poly.Contours {
		n := len(c.Points)
		for i := 0; i < n; i++ {
			p, q := c.Points[i], c.Points[(i+1)%n]
			if geo.NewSegment(p, q).IsDegenerate() {
				continue
			}
			left, right := s.arena.NewPair(p, q, label)
			s.queue.Push(left)
			s.queue.Push(right)
		}
	}
}

// process drains the event queue, running the main loop of the sweep.
func (s *sweep) process() {
	for !s.queue.Empty() {
		peek, _ := s.queue.Peek()
		if s.shouldStop(peek.Point.X) {
			return
		}
		e := s.queue.Pop()
		if e.Left {
			s.handleLeft(e)
		} else {
			s.handleRight(e)
		}
	}
}

// shouldStop implements the early-termination checks of the main
// loop. For INTERSECTION, once x exceeds the shorter input's extent
// no remaining edge can lie inside the other polygon (the other
// polygon has already ended), so inside-other is guaranteed false and
// nothing more would be emitted; the same holds for DIFFERENCE once x
// exceeds the subject's own extent, since only clipping edges remain
// and they can only contribute to DIFFERENCE by lying inside subject.
// UNION has no such shortcut here: past the shorter input's extent its
// remaining edges are exactly the ones that *do* still need emitting
// (their inside-other is false, and UNION emits normal edges whose
// inside-other is false), so the sweep simply runs them through the
// ordinary loop instead of special-casing a bulk flush.
func (s *sweep) shouldStop(x float64) bool {
	switch s.op {
	case Intersection:
		return x > s.minMaxX
	case Difference:
		return x > s.subjectBox.MaxX
	default: // Union, Xor
		return false
	}
}

// handleLeft processes the insertion of left event e into the status.
func (s *sweep) handleLeft(e *event.Event) {
	handle := s.status.Insert(e)

	prev, hasPrev := s.status.Prev(handle)
	next, hasNext := s.status.Next(handle)

	s.computeFlags(e, prev, hasPrev)

	if hasNext {
		s.testIntersection(e, next)
	}
	if hasPrev {
		s.testIntersection(e, prev)
	}
}

// computeFlags implements the label computation of the main loop:
// given the entry immediately below the newly inserted e (if any), it
// sets e.InsideOther and e.Transition.
func (s *sweep) computeFlags(e, prev *event.Event, hasPrev bool) {
	if !hasPrev {
		e.InsideOther = false
		e.Transition = false
		return
	}

	if prev.EdgeType != event.Normal {
		prevHandle := prev.Handle.(*sweepstatus.Handle)
		pp, hasPP := s.status.Prev(prevHandle)
		if !hasPP {
			e.InsideOther = true
			e.Transition = false
			return
		}
		if prev.Label == e.Label {
			e.Transition = !prev.Transition
			e.InsideOther = !pp.Transition
		} else {
			e.Transition = !pp.Transition
			e.InsideOther = !prev.Transition
		}
		return
	}

	if prev.Label == e.Label {
		e.InsideOther = prev.InsideOther
		e.Transition = !prev.Transition
	} else {
		e.InsideOther = !prev.Transition
		e.Transition = prev.InsideOther
	}
}

// handleRight processes the removal of an edge via its right event e.
func (s *sweep) handleRight(e *event.Event) {
	left := e.Twin
	handle, active := left.Handle.(*sweepstatus.Handle)
	if !active {
		// Subdivision can leave a stale right event in the queue whose
		// left half was already re-processed under a new twin; nothing
		// to emit or erase for it.
		return
	}

	prev, hasPrev := s.status.Prev(handle)
	next, hasNext := s.status.Next(handle)

	if shouldEmit(s.op, left) {
		s.assembler.Add(left.Point, e.Point, left.Transition)
	}

	s.status.Remove(handle)
	left.Handle = nil

	if hasPrev && hasNext {
		s.testIntersection(prev, next)
	}
}

// shouldEmit implements the emission table of the main loop.
func shouldEmit(op Operation, left *event.Event) bool {
	switch left.EdgeType {
	case event.NonContributing:
		return false
	case event.SameTransition:
		return op == Intersection || op == Union
	case event.DifferentTransition:
		return op == Difference
	default: // Normal
		switch op {
		case Intersection:
			return left.InsideOther
		case Union:
			return !left.InsideOther
		case Difference:
			if left.Label == event.Subject {
				return !left.InsideOther
			}
			return left.InsideOther
		default: // Xor
			return true
		}
	}
}
