package polyclip

import (
	"sort"

	"github.com/polyclip-go/martinez/event"
	"github.com/polyclip-go/martinez/geo"
)

// testIntersection implements the intersection-handling dispatch
// between two adjacent active segments, keyed off the left events a
// and b. It subdivides one or both edges, or classifies an overlap,
// pushing any resulting events onto the queue. Nothing-to-do and
// shared-endpoint cases are filtered here before either edge is
// touched; every other intersection is recorded in the intersection
// log (one point for a single intersection, both overlap endpoints
// for a collinear overlap).
func (s *sweep) testIntersection(a, b *event.Event) {
	n, p1, p2 := geo.Intersect(a.Segment(), b.Segment(), s.opts.Epsilon, s.opts.SnapTolerance)

	switch n {
	case 0:
		return

	case 1:
		if sharesEndpoint(a, b, p1) {
			return
		}
		s.intersections = append(s.intersections, p1)
		if interiorTo(a, p1) {
			s.divide(a, p1)
		}
		if interiorTo(b, p1) {
			s.divide(b, p1)
		}

	case 2:
		if a.Label == b.Label {
			// Overlapping edges of the same polygon: the input is
			// assumed simple, so well-formed polygons never reach
			// here.
			return
		}
		s.intersections = append(s.intersections, p1, p2)
		s.handleOverlap(a, b, p1, p2)
	}
}

// interiorTo reports whether p lies strictly between e's two
// endpoints, i.e. dividing e at p would produce two non-degenerate
// halves.
func interiorTo(e *event.Event, p geo.Point) bool {
	return !p.Eq(e.Point) && !p.Eq(e.Twin.Point)
}

// sharesEndpoint reports whether p coincides with an endpoint of both
// a and b, meaning the single intersection point they report is
// simply the vertex they already share.
func sharesEndpoint(a, b *event.Event, p geo.Point) bool {
	aEnd := p.Eq(a.Point) || p.Eq(a.Twin.Point)
	bEnd := p.Eq(b.Point) || p.Eq(b.Twin.Point)
	return aEnd && bEnd
}

// divide is the single-split convenience used when only one new
// vertex is being introduced into e; see divideAt for the two
// resulting halves.
func (s *sweep) divide(e *event.Event, p geo.Point) {
	s.divideAt(e, p)
}

// divideAt wraps the arena's subdivision primitive: it splits e at p,
// pushes the two new events onto the queue, and logs the non-fatal
// diagnostic cases a numerically degenerate split can produce.
//
// near is e itself (unchanged identity, now spanning e's original
// point to p); far is the newly created pair spanning p to e's
// original twin point. Both remain valid *event.Event values the
// caller can mark EdgeType on directly.
func (s *sweep) divideAt(e *event.Event, p geo.Point) (near, far *event.Event) {
	newLeft, newRight, repaired, degenerate := s.arena.Divide(e, p)
	if degenerate {
		logDebugf("divide: split point %v coincides with an existing endpoint of %v", p, e.Segment())
	}
	if repaired {
		logDebugf("divide: repaired event-ordering inversion at split point %v", p)
	}
	s.queue.Push(newLeft)
	s.queue.Push(newRight)
	return e, newLeft
}

// overlapEndpoint is one of the (at most four) distinct endpoints
// along the shared line of two collinear overlapping segments, sorted
// by position along that line.
type overlapEndpoint struct {
	point Point
	// owner identifies which of a, b this endpoint belongs to: 0 or 1
	// for a's Point/Twin.Point, 2 or 3 for b's.
	owner int
}

// segmentOf maps an endpoint owner index to 0 (segment a) or 1
// (segment b).
func segmentOf(owner int) int {
	if owner < 2 {
		return 0
	}
	return 1
}

// handleOverlap implements the overlap-analysis table for a pair of
// collinear, distinct-polygon segments intersecting in a sub-segment
// (p1, p2): it classifies edge types and subdivides as needed so that
// every physically coincident piece of input edge is represented by
// exactly one NORMAL or classified event pair going forward.
func (s *sweep) handleOverlap(a, b *event.Event, p1, p2 geo.Point) {
	endpoints := []overlapEndpoint{
		{a.Point, 0}, {a.Twin.Point, 1},
		{b.Point, 2}, {b.Twin.Point, 3},
	}
	sort.SliceStable(endpoints, func(i, j int) bool {
		return endpoints[i].point.Less(endpoints[j].point)
	})
	distinct := dedupOverlapEndpoints(endpoints)

	switch len(distinct) {
	case 2:
		s.overlapEqualSegments(a, b)
	case 3:
		s.overlapSharedEndpoint(a, b, distinct)
	case 4:
		if segmentOf(distinct[0][0].owner) == segmentOf(distinct[3][0].owner) {
			s.overlapOneContainsOther(a, b, distinct)
		} else {
			s.overlapProperOverlap(a, b, distinct)
		}
	}
}

// dedupOverlapEndpoints collapses consecutive endpoints (after
// sorting) that share a coordinate into a single slot, keeping every
// owner that maps to it.
func dedupOverlapEndpoints(sorted []overlapEndpoint) [][]overlapEndpoint {
	var groups [][]overlapEndpoint
	for _, ep := range sorted {
		if len(groups) > 0 && groups[len(groups)-1][0].point.Eq(ep.point) {
			groups[len(groups)-1] = append(groups[len(groups)-1], ep)
			continue
		}
		groups = append(groups, []overlapEndpoint{ep})
	}
	return groups
}

// overlapTransitionType returns SAME_TRANSITION or DIFFERENT_TRANSITION
// depending on whether a and b's transition flags agree.
func overlapTransitionType(a, b *event.Event) event.EdgeType {
	if a.Transition == b.Transition {
		return event.SameTransition
	}
	return event.DifferentTransition
}

// markPair sets EdgeType on both e and its twin.
func markPair(e *event.Event, t event.EdgeType) {
	e.EdgeType = t
	e.Twin.EdgeType = t
}

func eventOf(owner int, a, b *event.Event) *event.Event {
	if segmentOf(owner) == 0 {
		return a
	}
	return b
}

// overlapEqualSegments handles the two-distinct-endpoint case: a and
// b describe the identical sub-segment.
func (s *sweep) overlapEqualSegments(a, b *event.Event) {
	markPair(a, event.NonContributing)
	markPair(b, overlapTransitionType(a, b))
}

// overlapSharedEndpoint handles the three-distinct-endpoint case: a
// and b share one endpoint exactly, and one of them extends further
// than the other. The segment that stops at the nearer endpoint (the
// "middle segment") is marked non-contributing; the longer segment is
// split at that same point, and the resulting near piece — the
// complement of its own outer endpoint — carries the combined
// transition type.
func (s *sweep) overlapSharedEndpoint(a, b *event.Event, distinct [][]overlapEndpoint) {
	middle := distinct[1][0].point

	sharedGroup := distinct[0]
	if len(sharedGroup) < 2 {
		sharedGroup = distinct[2]
	}
	shared := sharedGroup[0].point

	short := eventOf(distinct[1][0].owner, a, b)
	long := a
	if short == a {
		long = b
	}

	markPair(short, event.NonContributing)

	near, far := s.divideAt(long, middle)
	overlapFragment := near
	if !long.Point.Eq(shared) {
		overlapFragment = far
	}
	markPair(overlapFragment, overlapTransitionType(a, b))
}

// overlapProperOverlap handles the four-distinct-endpoint, properly
// overlapping case: neither segment contains the other, so the two
// segments' own endpoints interleave as (p0, p1, p2, p3) with p0/p2
// belonging to one segment and p1/p3 to the other. Splitting the
// p0-owner at p1 and the p1-owner at p2 isolates the shared [p1, p2]
// interval as two coincident fragments, one from each segment; one is
// marked non-contributing, the other carries the combined transition
// type. The two outer fragments ([p0,p1] and [p2,p3]) are left
// NORMAL.
func (s *sweep) overlapProperOverlap(a, b *event.Event, distinct [][]overlapEndpoint) {
	p1 := distinct[1][0].point
	p2 := distinct[2][0].point

	segAtP0 := eventOf(distinct[0][0].owner, a, b)
	segAtP1 := eventOf(distinct[1][0].owner, a, b)

	_, farOfP0 := s.divideAt(segAtP0, p1)
	nearOfP1, _ := s.divideAt(segAtP1, p2)

	markPair(farOfP0, event.NonContributing)
	markPair(nearOfP1, overlapTransitionType(a, b))
}

// overlapOneContainsOther handles the four-distinct-endpoint
// containment case: one segment's endpoints (p0, p3) strictly bracket
// the other's (p1, p2). The contained segment is marked
// non-contributing outright; the containing segment is split at both
// inner endpoints, isolating its own [p1, p2] fragment (coincident
// with the contained segment) to carry the combined transition type,
// leaving its two outer fragments NORMAL.
func (s *sweep) overlapOneContainsOther(a, b *event.Event, distinct [][]overlapEndpoint) {
	outer := eventOf(distinct[0][0].owner, a, b)
	inner := eventOf(distinct[1][0].owner, a, b)

	p1 := distinct[1][0].point
	p2 := distinct[2][0].point

	_, outerTail := s.divideAt(outer, p1)
	middle, _ := s.divideAt(outerTail, p2)

	markPair(inner, event.NonContributing)
	markPair(middle, overlapTransitionType(a, b))
}
