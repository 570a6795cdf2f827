package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func seg(x1, y1, x2, y2 float64) Segment {
	return NewSegment(NewPoint(x1, y1), NewPoint(x2, y2))
}

func TestIntersect_Proper(t *testing.T) {
	s1 := seg(0, 0, 4, 4)
	s2 := seg(0, 4, 4, 0)
	count, p1, _ := Intersect(s1, s2, DefaultEpsilon, DefaultSnapTolerance)
	assert.Equal(t, 1, count)
	assert.InDelta(t, 2, p1.X, 1e-9)
	assert.InDelta(t, 2, p1.Y, 1e-9)
}

func TestIntersect_Disjoint(t *testing.T) {
	s1 := seg(0, 0, 1, 1)
	s2 := seg(5, 5, 6, 6)
	count, _, _ := Intersect(s1, s2, DefaultEpsilon, DefaultSnapTolerance)
	assert.Equal(t, 0, count)
}

func TestIntersect_ParallelNotCollinear(t *testing.T) {
	s1 := seg(0, 0, 4, 0)
	s2 := seg(0, 1, 4, 1)
	count, _, _ := Intersect(s1, s2, DefaultEpsilon, DefaultSnapTolerance)
	assert.Equal(t, 0, count)
}

func TestIntersect_CollinearOverlap(t *testing.T) {
	s1 := seg(0, 0, 3, 0)
	s2 := seg(1, 0, 4, 0)
	count, p1, p2 := Intersect(s1, s2, DefaultEpsilon, DefaultSnapTolerance)
	assert.Equal(t, 2, count)
	pts := map[float64]bool{p1.X: true, p2.X: true}
	assert.True(t, pts[1])
	assert.True(t, pts[3])
}

func TestIntersect_CollinearTouchAtPoint(t *testing.T) {
	s1 := seg(0, 0, 2, 0)
	s2 := seg(2, 0, 4, 0)
	count, p1, _ := Intersect(s1, s2, DefaultEpsilon, DefaultSnapTolerance)
	assert.Equal(t, 1, count)
	assert.InDelta(t, 2, p1.X, 1e-9)
}

func TestIntersect_CollinearDisjoint(t *testing.T) {
	s1 := seg(0, 0, 1, 0)
	s2 := seg(2, 0, 3, 0)
	count, _, _ := Intersect(s1, s2, DefaultEpsilon, DefaultSnapTolerance)
	assert.Equal(t, 0, count)
}

func TestIntersect_InteriorCrossingNotSnapped(t *testing.T) {
	s1 := seg(0, 0, 2, 2)
	s2 := seg(0, 2.00000001, 2.00000001, 0) // crosses s1 very close to (1, 1)
	count, p1, _ := Intersect(s1, s2, DefaultEpsilon, 1e-3)
	assert.Equal(t, 1, count)
	// The true crossing point is very close to (1, 1), well within
	// 1e-3 of neither endpoint, so this mostly exercises that snapping
	// leaves an interior crossing alone.
	assert.InDelta(t, 1, p1.X, 1e-2)
}

func TestIntersect_SharedEndpoint(t *testing.T) {
	s1 := seg(0, 0, 2, 2)
	s2 := seg(2, 2, 4, 0)
	count, p1, _ := Intersect(s1, s2, DefaultEpsilon, DefaultSnapTolerance)
	assert.Equal(t, 1, count)
	assert.True(t, p1.Eq(NewPoint(2, 2)))
}

func TestSignedArea(t *testing.T) {
	// Counter-clockwise triangle has positive area.
	a, b, c := NewPoint(0, 0), NewPoint(1, 0), NewPoint(0, 1)
	assert.Greater(t, SignedArea(a, b, c), 0.0)
	assert.Less(t, SignedArea(a, c, b), 0.0)

	// Collinear points have zero area.
	assert.Equal(t, 0.0, SignedArea(NewPoint(0, 0), NewPoint(1, 1), NewPoint(2, 2)))
}

func TestPointOnSegment(t *testing.T) {
	a, b := NewPoint(0, 0), NewPoint(4, 4)
	assert.True(t, PointOnSegment(a, b, NewPoint(2, 2)))
	assert.True(t, PointOnSegment(a, b, NewPoint(0, 4))) // inside bbox, off the line
	assert.False(t, PointOnSegment(a, b, NewPoint(5, 5)))
}

func TestBox(t *testing.T) {
	pts := []Point{NewPoint(1, 2), NewPoint(-1, 5), NewPoint(3, 0)}
	b := BoxOf(pts)
	assert.Equal(t, Box{MinX: -1, MinY: 0, MaxX: 3, MaxY: 5}, b)
	assert.False(t, b.Empty())

	other := Box{MinX: 10, MinY: 10, MaxX: 20, MaxY: 20}
	assert.False(t, b.Overlaps(other))
	assert.True(t, b.Overlaps(b))

	empty := BoxOf(nil)
	assert.True(t, empty.Empty())
	assert.Equal(t, other, empty.Union(other))
}
