// Package contour implements the output assembler: it stitches the
// oriented output segments the sweep engine emits into closed point
// chains, then classifies each closed chain as an outer boundary or a
// hole with correct nesting depth, using the spatial context of the
// most recently closed chain plus the transition sign of the closing
// edge.
package contour

import (
	"slices"

	"github.com/polyclip-go/martinez/geo"
)

// Point is a re-export of geo.Point for callers that only need the
// contour package.
type Point = geo.Point

// chain is a growing (or, once closed, finished) sequence of points.
// While open its two ends are front() and back(); once closed the
// first and last point coincide.
type chain struct {
	points []Point

	// prevClosedIndex and transition are recorded at the moment this
	// chain closes: prevClosedIndex is the index (into the Assembler's
	// closed list) of whichever chain had most recently closed before
	// this one, or -1 if this is the first chain to close.
	// transition is the out-transition flag of the edge that closed it.
	prevClosedIndex int
	transition      bool
}

func (c *chain) front() Point { return c.points[0] }
func (c *chain) back() Point  { return c.points[len(c.points)-1] }

func (c *chain) isClosed() bool {
	return len(c.points) >= 2 && c.front().Eq(c.back())
}

func (c *chain) prepend(p Point) {
	c.points = append([]Point{p}, c.points...)
}

func (c *chain) append(p Point) {
	c.points = append(c.points, p)
}

func (c *chain) reverse() {
	for i, j := 0, len(c.points)-1; i < j; i, j = i+1, j-1 {
		c.points[i], c.points[j] = c.points[j], c.points[i]
	}
}

// tryExtend attempts to attach segment (a, b) to one end of c,
// returning whether it did.
func (c *chain) tryExtend(a, b Point) bool {
	switch {
	case c.front().Eq(a):
		c.prepend(b)
	case c.front().Eq(b):
		c.prepend(a)
	case c.back().Eq(a):
		c.append(b)
	case c.back().Eq(b):
		c.append(a)
	default:
		return false
	}
	return true
}

// tryMerge attempts to splice other onto c's open end, consuming
// other (reversing it if needed), and reports whether it did.
func (c *chain) tryMerge(other *chain) bool {
	switch {
	case c.back().Eq(other.front()):
		c.points = append(c.points, other.points[1:]...)
	case c.back().Eq(other.back()):
		other.reverse()
		c.points = append(c.points, other.points[1:]...)
	case c.front().Eq(other.back()):
		c.points = append(other.points[:len(other.points)-1], c.points...)
	case c.front().Eq(other.front()):
		other.reverse()
		c.points = append(other.points[:len(other.points)-1], c.points...)
	default:
		return false
	}
	return true
}

// Assembler accumulates emitted output segments into closed contours
// and classifies their hole/boundary hierarchy.
type Assembler struct {
	open            []*chain
	closed          []*chain
	lastClosedIndex int
}

// NewAssembler returns an empty assembler.
func NewAssembler() *Assembler {
	return &Assembler{lastClosedIndex: -1}
}

// Add records one output segment (p, q), oriented as the sweep saw
// it, with the out-transition flag of the right event that emitted
// it.
func (a *Assembler) Add(p, q Point, transition bool) {
	for i, ch := range a.open {
		if !ch.tryExtend(p, q) {
			continue
		}
		if ch.isClosed() {
			a.closeChain(i, transition)
			return
		}
		a.tryMergeIntoOthers(i)
		return
	}

	a.open = append(a.open, &chain{points: []Point{p, q}})
}

// closeChain removes the chain at index i from open, records its
// closing spatial context, and moves it to closed.
func (a *Assembler) closeChain(i int, transition bool) {
	ch := a.open[i]
	a.open = append(a.open[:i], a.open[i+1:]...)

	ch.prevClosedIndex = a.lastClosedIndex
	ch.transition = transition

	a.closed = append(a.closed, ch)
	a.lastClosedIndex = len(a.closed) - 1
}

// tryMergeIntoOthers attempts to join the open chain at index i with
// every other open chain, in case the segment just linked into it
// bridges two previously separate open chains into one.
func (a *Assembler) tryMergeIntoOthers(i int) {
	ch := a.open[i]
	for j, other := range a.open {
		if j == i {
			continue
		}
		if ch.tryMerge(other) {
			a.open = append(a.open[:j], a.open[j+1:]...)
			return
		}
	}
}

// Result is one classified output contour.
type Result struct {
	Points []Point

	// Hole is true iff this contour is a hole rather than an outer
	// boundary.
	Hole bool

	// Depth is the contour's nesting depth; outer boundaries have even
	// depth, holes odd depth.
	Depth int

	// ParentIndex is the index (into the returned slice) of this
	// contour's immediate parent, or -1 if it has none.
	ParentIndex int

	// ChildIndices lists the indices of this contour's immediate
	// children.
	ChildIndices []int
}

// Assemble finishes the sweep's output: it classifies every closed
// chain's hole/boundary hierarchy, winds boundaries counter-clockwise
// and holes clockwise, and returns the results in closing order.
func (a *Assembler) Assemble() []Result {
	results := make([]Result, len(a.closed))
	for i, ch := range a.closed {
		// Each chain's final point duplicates its first (that is what
		// made it "closed"); the contour's implicit-closing
		// representation drops the duplicate. A vertex on the straight
		// line through its two neighbours (such as a split point left
		// by subdivision) is dropped too.
		closed := ch.points[:len(ch.points)-1]
		var pts []Point
		for k, p := range closed {
			prev := closed[(k+len(closed)-1)%len(closed)]
			next := closed[(k+1)%len(closed)]
			if geo.SignedArea(prev, p, next) != 0 {
				pts = append(pts, p)
			}
		}

		if ch.prevClosedIndex < 0 {
			results[i] = Result{Points: pts, Hole: false, Depth: 0, ParentIndex: -1}
			continue
		}

		parent := &results[ch.prevClosedIndex]
		if ch.transition {
			if parent.Hole {
				results[i] = Result{
					Points:      pts,
					Hole:        true,
					Depth:       parent.Depth,
					ParentIndex: parent.ParentIndex,
				}
			} else {
				results[i] = Result{
					Points:      pts,
					Hole:        true,
					Depth:       parent.Depth + 1,
					ParentIndex: ch.prevClosedIndex,
				}
			}
		} else {
			results[i] = Result{
				Points:      pts,
				Hole:        false,
				Depth:       parent.Depth,
				ParentIndex: -1,
			}
		}
	}

	for i := range results {
		// Outer boundaries are wound counter-clockwise and holes
		// clockwise, so summed shoelace areas net holes out.
		var twiceArea float64
		pts := results[i].Points
		for k := range pts {
			twiceArea += pts[k].Cross(pts[(k+1)%len(pts)])
		}
		if (twiceArea < 0) != results[i].Hole {
			slices.Reverse(pts)
		}
		if results[i].ParentIndex >= 0 {
			p := results[i].ParentIndex
			results[p].ChildIndices = append(results[p].ChildIndices, i)
		}
	}

	return results
}
