package geom

import "gonum.org/v1/gonum/spatial/r2"

// degenerateLen is the edge length below which a drag basis direction is
// treated as undefined.
const degenerateLen = 1e-9

// Reject returns the component of w orthogonal to v. A zero v yields the
// zero vector.
func Reject(w, v Point) Point {
	lv2 := r2.Norm2(v)
	if lv2 == 0 {
		return Point{}
	}
	return r2.Sub(w, r2.Scale(r2.Dot(w, v)/lv2, v))
}

// BuildRect derives a rectangle from three clicks: p1 and p2 give the
// first edge, p3 gives the offset of the opposite edge. Only the part of
// p3-p2 orthogonal to the first edge is used, so the result is always a
// true rectangle. Callers must keep p1 and p2 distinct.
func BuildRect(p1, p2, p3 Point) Zone {
	u := Reject(r2.Sub(p3, p2), r2.Sub(p2, p1))
	return Zone{p1, p2, r2.Add(p2, u), r2.Add(p1, u)}
}

// Reconcile restores the rectangle after vertex i has been overwritten
// with a new position. Vertex i and its opposite vertex stay where they
// are. The two neighbours are rebuilt along the directions the edges
// from i had before the move, so the rectangle keeps its orientation.
//
// When the edge to the right neighbour has no length the basis falls
// back to the x axis; when the left edge has no component orthogonal to
// it, the second basis vector is the first one rotated by +90 degrees.
// With all three other vertices on top of i this yields the axis basis
// (1,0), (0,1).
func Reconcile(z Zone, i int) Zone {
	i = ((i % 4) + 4) % 4
	right, opp, left := (i+1)%4, (i+2)%4, (i+3)%4
	p, o := z[i], z[opp]

	v0 := r2.Sub(z[right], p)
	w0 := r2.Sub(z[left], p)

	e1 := Point{X: 1}
	if n := r2.Norm(v0); n >= degenerateLen {
		e1 = r2.Scale(1/n, v0)
	}
	e2 := Point{X: -e1.Y, Y: e1.X}
	if wp := Reject(w0, v0); r2.Norm(wp) >= degenerateLen {
		e2 = r2.Unit(wp)
	}

	op := r2.Sub(o, p)
	a, b := r2.Dot(op, e1), r2.Dot(op, e2)

	var out Zone
	out[i] = p
	out[right] = r2.Add(p, r2.Scale(a, e1))
	out[opp] = o
	out[left] = r2.Add(p, r2.Scale(b, e2))
	return out
}

// MoveVertex places vertex i of z at p and returns the reconciled rectangle.
func MoveVertex(z Zone, i int, p Point) Zone {
	z[((i%4)+4)%4] = p
	return Reconcile(z, i)
}
