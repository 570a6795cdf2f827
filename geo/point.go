package geo

import "fmt"

// Point is an immutable coordinate pair.
type Point struct {
	X, Y float64
}

// NewPoint returns the point (x, y).
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns p - q as a vector.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p scaled by s, treating p as a vector from the origin.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Cross returns the z-component of the 3-D cross product of p and q,
// treating both as vectors from the origin.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Dot returns the dot product of p and q, treating both as vectors from
// the origin.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Eq reports whether p and q have identical coordinates. Point
// equality is strict except where a tolerance is explicitly named
// (e.g. the snapping distance in Intersect); callers that need a
// tolerant compare do so explicitly rather than through Eq.
func (p Point) Eq(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Less implements the lexicographic (x, then y) order the event
// comparator is built on top of.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// String renders p as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Box is an axis-aligned bounding box.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

// Empty reports whether b contains no points, i.e. its minimum exceeds
// its maximum on some axis (as for a box assembled from zero input
// points). The zero value is the single point (0, 0) and is not empty.
func (b Box) Empty() bool {
	return b.MinX > b.MaxX || b.MinY > b.MaxY
}

// Overlaps reports whether b and other share at least one point.
func (b Box) Overlaps(other Box) bool {
	if b.Empty() || other.Empty() {
		return false
	}
	return b.MinX <= other.MaxX && other.MinX <= b.MaxX &&
		b.MinY <= other.MaxY && other.MinY <= b.MaxY
}

// Union returns the smallest box containing both b and other.
func (b Box) Union(other Box) Box {
	if b.Empty() {
		return other
	}
	if other.Empty() {
		return b
	}
	return Box{
		MinX: min(b.MinX, other.MinX),
		MinY: min(b.MinY, other.MinY),
		MaxX: max(b.MaxX, other.MaxX),
		MaxY: max(b.MaxY, other.MaxY),
	}
}

// BoxOf returns the bounding box of pts, or an Empty box if pts is empty.
func BoxOf(pts []Point) Box {
	if len(pts) == 0 {
		return Box{MinX: 1, MaxX: 0} // Empty
	}
	b := Box{MinX: pts[0].X, MaxX: pts[0].X, MinY: pts[0].Y, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		b.MinX = min(b.MinX, p.X)
		b.MaxX = max(b.MaxX, p.X)
		b.MinY = min(b.MinY, p.Y)
		b.MaxY = max(b.MaxY, p.Y)
	}
	return b
}
