package geo

// SignedArea returns twice the signed area of triangle (a, b, c):
//
//	(a.X−c.X)·(b.Y−c.Y) − (b.X−c.X)·(a.Y−c.Y)
//
// It is positive iff a→b→c turns counter-clockwise, negative iff it
// turns clockwise, and zero iff the three points are collinear.
func SignedArea(a, b, c Point) float64 {
	return (a.X-c.X)*(b.Y-c.Y) - (b.X-c.X)*(a.Y-c.Y)
}
