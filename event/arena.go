package event

// Arena owns every Event created during one clipping operation. Events
// hold raw pointers to their twins, so an arena discipline applies:
// the arena grows monotonically until the operation returns, at which
// point every event it holds may be discarded together with it.
type Arena struct {
	nextSeq uint64
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// NewPair builds the two twin events for the edge (p, q), labeled with
// label. The earlier endpoint under the event comparator's (x, then y)
// order becomes the left event; for a vertical edge (equal x) the
// bottom endpoint is left.
//
// NewPair does not check for degenerate (p == q) edges: that filtering
// is the caller's job, at enqueue time.
func (a *Arena) NewPair(p, q Point, label Label) (left, right *Event) {
	e1 := &Event{Point: p, Label: label, EdgeType: Normal, seq: a.next()}
	e2 := &Event{Point: q, Label: label, EdgeType: Normal, seq: a.next()}
	e1.Twin, e2.Twin = e2, e1

	if pIsLeftOf(p, q) {
		e1.Left, e2.Left = true, false
		return e1, e2
	}
	e2.Left, e1.Left = true, false
	return e2, e1
}

// Divide implements the subdivision subroutine: split the edge
// represented by left event e at interior point p, wiring two
// new events (the trailing right half of e, and the leading left half
// of e.Twin) in between.
//
// It returns the new left event (the start of the edge's far half,
// still to be processed) and the new right event (the end of the
// edge's near half, which replaces e.Twin as e's active right
// endpoint). Both are pushed onto the event queue by the caller.
//
// repaired reports whether the pair-invariant swap described below
// fired; degenerate reports whether p coincides with one of e's
// existing endpoints, which the caller should have filtered before
// calling Divide and which makes the split a no-op on that half.
// Callers may treat both as non-fatal diagnostic signals.
func (a *Arena) Divide(e *Event, p Point) (newLeft, newRight *Event, repaired, degenerate bool) {
	degenerate = p.Eq(e.Point) || p.Eq(e.Twin.Point)
	oldTwin := e.Twin

	newRight = &Event{
		Point:    p,
		Left:     false,
		Label:    e.Label,
		EdgeType: e.EdgeType,
		seq:      a.next(),
	}
	newLeft = &Event{
		Point:    p,
		Left:     true,
		Label:    oldTwin.Label,
		EdgeType: oldTwin.EdgeType,
		seq:      a.next(),
	}

	newRight.Twin = e
	newLeft.Twin = oldTwin

	oldTwin.Twin = newLeft
	e.Twin = newRight

	// newLeft and oldTwin are now the twin pair of the far half of the
	// original edge; newLeft's point (the split point) is supposed to
	// be the lexicographically smaller of the two. A numerical
	// artifact of rounding in the split point can invert that — the
	// event comparator then ranks newLeft after oldTwin even though
	// newLeft is flagged as the left event. Swapping the flags repairs
	// the pair-invariant without touching either point.
	if Compare(newLeft, oldTwin) > 0 {
		newLeft.Left, oldTwin.Left = oldTwin.Left, newLeft.Left
		repaired = true
	}

	return newLeft, newRight, repaired, degenerate
}

func (a *Arena) next() uint64 {
	a.nextSeq++
	return a.nextSeq
}

// Seq exposes an event's insertion sequence number, the deterministic
// tiebreaker the comparators fall back to between collinear or
// otherwise indistinguishable events.
func Seq(e *Event) uint64 {
	return e.seq
}

func pIsLeftOf(p, q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}
