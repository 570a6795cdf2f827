package polyclip

import (
	"github.com/polyclip-go/martinez/geo"
	"github.com/polyclip-go/martinez/options"
)

// ClipperOption configures a Clipper's numerical tolerances.
type ClipperOption = options.ClipperOptionsFunc

// WithEpsilon overrides the intersection kernel's parallel-discriminant
// tolerance (default geo.DefaultEpsilon).
func WithEpsilon(epsilon float64) ClipperOption {
	return options.WithEpsilon(epsilon)
}

// WithSnapTolerance overrides the endpoint-snapping distance applied
// after computing a segment intersection (default geo.DefaultSnapTolerance).
func WithSnapTolerance(delta float64) ClipperOption {
	return options.WithSnapTolerance(delta)
}

// Clipper computes Boolean set operations between a fixed pair of
// input polygons.
type Clipper struct {
	subject, clipping Polygon
	opts              options.ClipperOptions

	lastIntersections []geo.Point
}

// New constructs a Clipper over subject and clipping. Input contours
// are consumed read-only.
func New(subject, clipping Polygon, opts ...ClipperOption) *Clipper {
	o := options.Apply(options.ClipperOptions{
		Epsilon:       geo.DefaultEpsilon,
		SnapTolerance: geo.DefaultSnapTolerance,
	}, opts...)
	return &Clipper{subject: subject, clipping: clipping, opts: o}
}

// Compute runs op over the constructed inputs and returns the
// resulting polygon. It always succeeds; a plainly impossible result
// (e.g. the intersection of disjoint inputs) is a zero-contour
// polygon, not an error.
func (c *Clipper) Compute(op Operation) Polygon {
	poly, intersections := c.run(op)
	c.lastIntersections = intersections
	return poly
}

// ComputeWithIntersections runs op and additionally returns every
// intersection point the sweep computed, in the order the sweep
// discovered them. A count-1 intersection contributes one point; a
// count-2 collinear overlap between the two polygons contributes both
// endpoints of the overlap interval. A single point that is a vertex
// both segments already share is not an intersection and is not
// recorded. Points are not deduplicated.
func (c *Clipper) ComputeWithIntersections(op Operation) (Polygon, []Point) {
	poly, intersections := c.run(op)
	c.lastIntersections = intersections
	return poly, intersections
}

// IntersectionCount reports how many intersection points the most
// recent Compute or ComputeWithIntersections call produced. It is
// zero before either has been called.
func (c *Clipper) IntersectionCount() int {
	return len(c.lastIntersections)
}
