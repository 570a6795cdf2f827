// Package event implements the sweep event model: the point-in-time
// at which the sweep line crosses an edge endpoint, the twin-pair
// invariant linking an edge's two endpoints, and the comparators that
// give the event queue and the sweep-line status their orderings.
package event

import "github.com/polyclip-go/martinez/geo"

// Label identifies which input polygon an edge came from.
type Label uint8

const (
	Subject Label = iota
	Clipping
)

// String renders l as "Subject" or "Clipping".
func (l Label) String() string {
	if l == Clipping {
		return "Clipping"
	}
	return "Subject"
}

// EdgeType classifies how an edge contributes to each boolean
// operation, per the overlap-analysis performed during subdivision.
type EdgeType uint8

const (
	// Normal edges contribute per the inside/outside flags computed
	// during the sweep.
	Normal EdgeType = iota

	// NonContributing edges are suppressed entirely from the output.
	NonContributing

	// SameTransition marks overlapping collinear edges of opposite
	// polygons whose transitions agree; contributes to INTERSECTION
	// and UNION only.
	SameTransition

	// DifferentTransition marks overlapping collinear edges whose
	// transitions disagree; contributes to DIFFERENCE only.
	DifferentTransition
)

func (t EdgeType) String() string {
	switch t {
	case NonContributing:
		return "NonContributing"
	case SameTransition:
		return "SameTransition"
	case DifferentTransition:
		return "DifferentTransition"
	default:
		return "Normal"
	}
}

// Event describes one endpoint of one segment during the sweep.
//
// Exactly two Events describe any active or queued edge: e and e.Twin,
// with e.Twin.Twin == e, sharing Label and EdgeType, exactly one of
// them having Left == true, and that one's Point lexicographically
// (x, then y) not greater than the other's (vertical edges are
// oriented bottom-as-left).
type Event struct {
	Point Point

	// Left is true iff this event is the left (earlier, under the
	// event comparator) endpoint of its edge.
	Left bool

	Label    Label
	EdgeType EdgeType

	// Twin is the event at the other endpoint of the same segment.
	Twin *Event

	// Transition is true iff the segment crosses from outside to
	// inside the polygon it belongs to, as observed by the sweep.
	Transition bool

	// InsideOther is true iff the edge lies inside the other polygon.
	// Meaningful only on left events.
	InsideOther bool

	// Handle is the opaque position handle into the sweep-line status,
	// set when this (left) event is inserted and consulted when its
	// right twin is later popped. nil when the event is not currently
	// active in the status.
	Handle any

	// seq is assigned in creation order and used only to break ties
	// between events the comparators otherwise find indistinguishable:
	// the address of the event object, or a monotonically assigned
	// insertion sequence number, either works as a tiebreaker.
	seq uint64
}

// Point is a re-export of geo.Point so callers of this package do not
// need to import geo directly just to build an Event by hand in tests.
type Point = geo.Point

// Segment returns the segment this event (as a left event) represents,
// from Point to Twin.Point.
func (e *Event) Segment() geo.Segment {
	return geo.NewSegment(e.Point, e.Twin.Point)
}

// Other returns the opposite Label.
func (l Label) Other() Label {
	if l == Subject {
		return Clipping
	}
	return Subject
}
