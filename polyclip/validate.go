package polyclip

import (
	"errors"
	"fmt"

	"github.com/polyclip-go/martinez/geo"
)

// ErrDegenerateContour is returned by Validate for a contour with
// fewer than three points.
var ErrDegenerateContour = errors.New("polyclip: contour has fewer than 3 points")

// ErrZeroLengthEdge is returned by Validate for a contour with two
// consecutive identical vertices (an implicit zero-length edge).
var ErrZeroLengthEdge = errors.New("polyclip: contour has a zero-length edge")

// Validate reports whether c is a usable contour: at least three
// points and no zero-length edge between consecutive vertices
// (including the closing edge back to Points[0]). It does not check
// for self-intersection, which is outside this package's scope.
// Clipping never calls Validate itself — callers opt in.
func (c Contour) Validate() error {
	if len(c.Points) < 3 {
		return ErrDegenerateContour
	}
	n := len(c.Points)
	for i := 0; i < n; i++ {
		p, q := c.Points[i], c.Points[(i+1)%n]
		if geo.NewSegment(p, q).IsDegenerate() {
			return ErrZeroLengthEdge
		}
	}
	return nil
}

// Validate reports whether every contour of p is individually valid.
func (p Polygon) Validate() error {
	for i, c := range p.Contours {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("contour %d: %w", i, err)
		}
	}
	return nil
}
