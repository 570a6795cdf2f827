// Package polyclip computes Boolean set operations — intersection,
// union, difference, and symmetric difference — between two planar
// polygons using the Martinez-Rueda-Feito plane-sweep clipping
// algorithm: an event queue drains edge endpoints left to right, a
// sweep-line status tracks vertically ordered active segments,
// pairwise intersections subdivide edges on the fly, and the
// surviving output segments are reassembled into closed contours with
// a hole/boundary hierarchy.
package polyclip

import (
	"github.com/polyclip-go/martinez/contour"
	"github.com/polyclip-go/martinez/geo"
)

// Point is a planar coordinate.
type Point = geo.Point

// Contour is an ordered sequence of vertices, implicitly closed (edge
// i runs from Points[i] to Points[(i+1)%len(Points)]).
//
// A contour returned from Compute or ComputeWithIntersections also
// carries a hole/boundary classification: whether it is a hole, its
// nesting depth, its parent contour's index (absent for boundaries),
// and the indices of its immediate children. Contours built with
// NewContour for input are unclassified (not a hole, depth 0, parent
// index -1, no children) and Validate does not consult these fields.
type Contour struct {
	Points []Point

	hole         bool
	depth        int
	parentIndex  int
	childIndices []int
}

// NewContour returns an input contour over pts. The classification
// fields are left unset; they are populated only on contours Compute
// or ComputeWithIntersections returns.
func NewContour(pts []Point) Contour {
	return Contour{Points: pts, parentIndex: -1}
}

// IsHole reports whether this contour is a hole rather than an outer
// boundary. Meaningful only on output contours.
func (c Contour) IsHole() bool { return c.hole }

// Depth is this contour's nesting depth: outer boundaries have even
// depth, holes odd depth. Meaningful only on output contours.
func (c Contour) Depth() int { return c.depth }

// ParentIndex is the index, within the owning Polygon's Contours, of
// this contour's immediate parent, or -1 if it has none. Meaningful
// only on output contours.
func (c Contour) ParentIndex() int { return c.parentIndex }

// ChildIndices lists the indices, within the owning Polygon's
// Contours, of this contour's immediate children. Meaningful only on
// output contours.
func (c Contour) ChildIndices() []int { return c.childIndices }

// Polygon is an ordered list of contours.
type Polygon struct {
	Contours []Contour
}

// NewPolygon returns a polygon over the given input contours.
func NewPolygon(contours ...Contour) Polygon {
	return Polygon{Contours: contours}
}

// BoundingBox returns the smallest axis-aligned box containing every
// vertex of p, or an empty box if p has no contours.
func (p Polygon) BoundingBox() geo.Box {
	box := geo.Box{MinX: 1, MaxX: 0}
	for _, c := range p.Contours {
		box = box.Union(geo.BoxOf(c.Points))
	}
	return box
}

// Area returns the signed area of p: the sum of each contour's
// shoelace area, with holes (negative-oriented relative to their
// parent) contributing negatively. For a well-formed output polygon
// this equals the set-theoretic area.
func (p Polygon) Area() float64 {
	var total float64
	for _, c := range p.Contours {
		total += contourArea(c.Points)
	}
	return total
}

func contourArea(pts []Point) float64 {
	if len(pts) < 3 {
		return 0
	}
	var sum float64
	n := len(pts)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return sum / 2
}

// Operation identifies which Boolean set operation to compute.
type Operation int

const (
	Intersection Operation = iota
	Union
	Difference
	Xor
)

// resultsToPolygon converts the contour assembler's classified results
// into a Polygon, carrying the hole/depth/parent/children
// classification onto each Contour's unexported fields.
func resultsToPolygon(results []contour.Result) Polygon {
	contours := make([]Contour, len(results))
	for i, r := range results {
		contours[i] = Contour{
			Points:       r.Points,
			hole:         r.Hole,
			depth:        r.Depth,
			parentIndex:  r.ParentIndex,
			childIndices: r.ChildIndices,
		}
	}
	return Polygon{Contours: contours}
}

func (op Operation) String() string {
	switch op {
	case Intersection:
		return "Intersection"
	case Union:
		return "Union"
	case Difference:
		return "Difference"
	case Xor:
		return "Xor"
	default:
		return "Operation(?)"
	}
}
