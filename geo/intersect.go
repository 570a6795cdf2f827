package geo

import "github.com/polyclip-go/martinez/numeric"

// Intersect computes the intersection of two segments, handling the
// proper, parallel, and collinear-overlap cases.
//
// epsilon governs the parallel-discriminant test; snapTolerance governs
// the endpoint-snapping applied to a single proper intersection point.
// Passing geo.DefaultEpsilon / geo.DefaultSnapTolerance reproduces the
// reference behavior.
//
// Returns a count of 0, 1, or 2:
//   - 0: the segments do not meet.
//   - 1: they meet at exactly one point, returned in p1.
//   - 2: they overlap collinearly; p1 and p2 are the two endpoints of
//     the shared sub-segment, in no particular order.
func Intersect(s1, s2 Segment, epsilon, snapTolerance float64) (count int, p1, p2 Point) {
	d0 := s1.Vector()
	d1 := s2.Vector()
	e := s2.Begin.Sub(s1.Begin)

	d0Sq := d0.Dot(d0)
	d1Sq := d1.Dot(d1)
	k := d0.Cross(d1)

	if k*k > epsilon*d0Sq*d1Sq {
		// Not parallel: solve s1.Begin + s*d0 == s2.Begin + t*d1.
		s := e.Cross(d1) / k
		t := e.Cross(d0) / k
		if s < 0 || s > 1 || t < 0 || t > 1 {
			return 0, Point{}, Point{}
		}
		p := snapToEndpoint(s1.Begin.Add(d0.Scale(s)), s1, s2, snapTolerance)
		return 1, p, Point{}
	}

	eCrossD0 := e.Cross(d0)
	if eCrossD0*eCrossD0 > epsilon*d0Sq*e.Dot(e) {
		return 0, Point{}, Point{} // parallel, not collinear
	}

	// Collinear: parameterize both segments' endpoints against s1's
	// direction (s1.Begin at u=0, s1.End at u=1) and intersect the two
	// parameter intervals.
	ua := e.Dot(d0) / d0Sq
	ub := s2.End.Sub(s1.Begin).Dot(d0) / d0Sq
	loS2, hiS2 := ua, ub
	if loS2 > hiS2 {
		loS2, hiS2 = hiS2, loS2
	}

	lo := max(0, loS2)
	hi := min(1, hiS2)
	if lo > hi {
		return 0, Point{}, Point{}
	}

	at := func(u float64) Point { return s1.Begin.Add(d0.Scale(u)) }
	if numeric.Equal(lo, hi, epsilon) {
		return 1, at(lo), Point{}
	}
	return 2, at(lo), at(hi)
}

// snapToEndpoint replaces p with whichever endpoint of s1 or s2 it lies
// within snapTolerance of, per coordinate, if any. This forecloses the
// rounding-error cascade that would otherwise spawn an infinitesimal
// segment the next time this point is subdivided against.
func snapToEndpoint(p Point, s1, s2 Segment, snapTolerance float64) Point {
	for _, q := range [...]Point{s1.Begin, s1.End, s2.Begin, s2.End} {
		if abs(p.X-q.X) < snapTolerance && abs(p.Y-q.Y) < snapTolerance {
			return q
		}
	}
	return p
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
