package event

import "github.com/polyclip-go/martinez/geo"

// Compare is the event comparator: a strict weak order over events,
// returning a negative number if a is
// processed strictly before b, a positive number if strictly after,
// and zero only when a and b are the same event.
func Compare(a, b *Event) int {
	if a == b {
		return 0
	}

	// 1-2: order by x, then by y.
	if a.Point.X != b.Point.X {
		return cmpFloat(a.Point.X, b.Point.X)
	}
	if a.Point.Y != b.Point.Y {
		return cmpFloat(a.Point.Y, b.Point.Y)
	}

	// 4: same point — right events (Left == false) go first.
	if a.Left != b.Left {
		if a.Left {
			return 1
		}
		return -1
	}

	// 5: same point, same side — a ranks after b iff a's segment passes
	// above b's other endpoint. The area is taken along a.Point→a.Twin,
	// so its sign reads the other way round for a right event.
	if area := geo.SignedArea(a.Point, a.Twin.Point, b.Twin.Point); area != 0 {
		above := area < 0
		if !a.Left {
			above = area > 0
		}
		if above {
			return 1
		}
		return -1
	}

	// Collinear and otherwise indistinguishable: fall back to a
	// deterministic insertion-order tiebreaker.
	return cmpUint64(a.seq, b.seq)
}

// Before reports whether a is processed strictly before b; it is the
// Less function the event queue orders by.
func Before(a, b *Event) bool {
	return Compare(a, b) < 0
}

// SegmentBelow is the sweep-line status comparator: it reports
// whether left event s currently sits strictly below left event t.
func SegmentBelow(s, t *Event) bool {
	if s == t {
		return false
	}

	area1 := geo.SignedArea(s.Point, s.Twin.Point, t.Point)
	area2 := geo.SignedArea(s.Point, s.Twin.Point, t.Twin.Point)

	if area1 != 0 || area2 != 0 {
		switch {
		case s.Point.Eq(t.Point):
			// Order by whether s passes below t's far endpoint.
			return area2 > 0

		case Before(t, s):
			// t was inserted first, so s.Point lies on the current
			// sweep line; s is below iff s.Point lies below t's
			// oriented segment.
			return geo.SignedArea(t.Point, t.Twin.Point, s.Point) < 0

		default:
			// s was inserted first, so t.Point lies on the current
			// sweep line; s is below iff t.Point lies above s's
			// oriented segment.
			return geo.SignedArea(s.Point, s.Twin.Point, t.Point) > 0
		}
	}

	// Collinear: break the tie deterministically.
	return s.seq < t.seq
}

func cmpFloat(a, b float64) int {
	if a > b {
		return 1
	}
	return -1
}

func cmpUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
