package geom

// Contains reports whether p lies inside poly using the even-odd rule
// with a horizontal ray cast towards +X. The last vertex connects back to
// the first.
func Contains(p Point, poly []Point) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	inside := false
	a := poly[n-1]
	for _, b := range poly {
		if (a.Y > p.Y) != (b.Y > p.Y) {
			// 1e-12 keeps a zero-height edge from dividing by zero
			x := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y+1e-12) + a.X
			if p.X <= x {
				inside = !inside
			}
		}
		a = b
	}
	return inside
}
