package geo

// Segment is an ordered pair of points. Unlike LineSegment in the
// corpus this type does not normalize its endpoints into an "upper" /
// "lower" order: the sweep relies on begin/end staying exactly as the
// caller built them, since Intersect's parameterization is expressed
// against Begin→End.
type Segment struct {
	Begin, End Point
}

// NewSegment returns the segment from begin to end.
func NewSegment(begin, end Point) Segment {
	return Segment{Begin: begin, End: end}
}

// Vector returns End - Begin.
func (s Segment) Vector() Point {
	return s.End.Sub(s.Begin)
}

// IsDegenerate reports whether s has zero length.
func (s Segment) IsDegenerate() bool {
	return s.Begin.Eq(s.End)
}

// PointOnSegment reports whether p lies within the axis-aligned
// bounding box of segment (a, b), inclusive of the boundary. This is
// deliberately the bounding-box sense, not a collinearity test — it is
// an external convenience, never used by the sweep itself.
func PointOnSegment(a, b, p Point) bool {
	minX, maxX := a.X, b.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
}
