package editor

import (
	"image"

	"zonedrawer/internal/geom"
)

// Handle is a grabbable vertex marker.
type Handle struct {
	Zone, Vertex int
	At           image.Point
}

// Handles lists a marker for every vertex of every zone, in drawing
// order. It is recomputed from the store on each call, so it can never
// disagree with the zones it points into.
func (e *Editor) Handles() []Handle {
	zones := e.Store.Zones()
	hs := make([]Handle, 0, 4*len(zones))
	for zi, z := range zones {
		for vi, p := range z {
			hs = append(hs, Handle{Zone: zi, Vertex: vi, At: e.Mapper.ToCanvas(p)})
		}
	}
	return hs
}

// HandleAt returns the handle nearest to at within the handle radius.
// Handles drawn later sit on top and win ties.
func (e *Editor) HandleAt(at image.Point) (Handle, bool) {
	r2 := e.HandleRadius * e.HandleRadius
	var best Handle
	found := false
	bestD := 0
	for _, h := range e.Handles() {
		dx, dy := h.At.X-at.X, h.At.Y-at.Y
		d := dx*dx + dy*dy
		if d > r2 {
			continue
		}
		if !found || d <= bestD {
			best, bestD, found = h, d, true
		}
	}
	return best, found
}

// Preview describes the zone under construction in world units.
type Preview struct {
	// Points are the clicks collected so far.
	Points []geom.Point
	// Edge is the first edge once two points exist.
	Edge []geom.Point
	// Guide runs from the last point to the cursor while only one point
	// exists.
	Guide []geom.Point
	// Rect is the zone the next click would create.
	Rect []geom.Point
}

func (e *Editor) Preview() Preview {
	s := e.State
	var pv Preview
	if s.Mode != ModeZone || len(s.Pending) == 0 {
		return pv
	}
	pv.Points = append(pv.Points, s.Pending...)
	if len(s.Pending) == 2 {
		pv.Edge = []geom.Point{s.Pending[0], s.Pending[1]}
	}
	if !s.HasCursor {
		return pv
	}
	switch len(s.Pending) {
	case 1:
		pv.Guide = []geom.Point{s.Pending[0], s.Cursor}
	case 2:
		z := geom.BuildRect(s.Pending[0], s.Pending[1], s.Cursor)
		pv.Rect = z.Polygon()
	}
	return pv
}
