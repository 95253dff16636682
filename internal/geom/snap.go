package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// canonical holds the unit directions at 0, 30, 45, 60 and 90 degrees in
// the first quadrant.
var canonical = [5]Point{
	{X: 1, Y: 0},
	{X: math.Sqrt(3) / 2, Y: 0.5},
	{X: math.Sqrt2 / 2, Y: math.Sqrt2 / 2},
	{X: 0.5, Y: math.Sqrt(3) / 2},
	{X: 0, Y: 1},
}

// Snap rotates free about origin onto the closest canonical angle,
// mirrored into the quadrant free lies in. The distance from origin is
// preserved. When free equals origin there is no direction and free is
// returned as is.
func Snap(origin, free Point) Point {
	d := r2.Sub(free, origin)
	r := r2.Norm(d)
	if r == 0 {
		return free
	}
	u := r2.Scale(1/r, d)
	sx, sy := 1.0, 1.0
	if d.X < 0 {
		sx = -1
	}
	if d.Y < 0 {
		sy = -1
	}
	best, bestDot := Point{}, math.Inf(-1)
	for _, c := range canonical {
		c = Point{X: sx * c.X, Y: sy * c.Y}
		if dot := r2.Dot(c, u); dot > bestDot {
			best, bestDot = c, dot
		}
	}
	return r2.Add(origin, r2.Scale(r, best))
}
