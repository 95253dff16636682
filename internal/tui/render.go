package tui

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"zonedrawer/internal/geom"
)

type canvasLayer struct {
	buf   *brailleBuf
	style lipgloss.Style
}

// project maps world points to canvas micro-pixels.
func (m Model) project(pts []geom.Point) []image.Point {
	out := make([]image.Point, 0, len(pts))
	for _, p := range pts {
		out = append(out, m.ed.Mapper.ToCanvas(p))
	}
	return out
}

// renderCanvas draws the scenario into a w x h cell block. Later layers
// in the list lose to earlier ones where they share a cell; markers
// replace the cell outright.
func (m Model) renderCanvas(w, h int) string {
	e := m.ed
	preview := newBrailleBuf(w, h)
	zones := newBrailleBuf(w, h)
	target := newBrailleBuf(w, h)
	frame := newBrailleBuf(w, h)

	cw, ch := e.Mapper.Size()
	frame.polyline([]image.Point{{0, 0}, {cw, 0}, {cw, ch}, {0, ch}}, true, 1, 1)

	// shade the zone a secondary click would delete
	if m.hovering && len(e.State.Pending) == 0 && e.State.Drag == nil {
		if i, ok := e.Store.ZoneAt(m.hoverWorld); ok {
			if z, err := e.Store.Zone(i); err == nil {
				target.fillPolygon(m.project(z.Polygon()))
			}
		}
	}
	for _, z := range e.Store.Zones() {
		zones.polyline(m.project(z.Polygon()), true, 1, 0)
	}
	for _, hd := range e.Handles() {
		zones.square(hd.At.X, hd.At.Y, 1)
	}

	pv := e.Preview()
	preview.polyline(m.project(pv.Edge), false, 1, 0)
	preview.polyline(m.project(pv.Guide), false, 2, 2)
	preview.polyline(m.project(pv.Rect), true, 2, 2)

	markers := map[image.Point]string{}
	mark := func(at image.Point, s string) {
		markers[image.Pt(at.X/2, at.Y/4)] = s
	}
	for _, p := range pv.Points {
		mark(e.Mapper.ToCanvas(p), previewStyle.Render("+"))
	}
	if m.hovering {
		if hd, ok := e.HandleAt(m.hoverMic); ok {
			mark(hd.At, hoverStyle.Render("◯"))
		}
	}
	if d := e.State.Drag; d != nil {
		if z, err := e.Store.Zone(d.Zone); err == nil {
			mark(e.Mapper.ToCanvas(z[d.Vertex]), hoverStyle.Render("◉"))
		}
	}
	if p, ok := e.Store.Start(); ok {
		mark(e.Mapper.ToCanvas(p), startStyle.Render("S"))
	}
	if p, ok := e.Store.Finish(); ok {
		mark(e.Mapper.ToCanvas(p), finishStyle.Render("F"))
	}

	layers := []canvasLayer{
		{preview, previewStyle},
		{zones, zoneStyle},
		{target, targetStyle},
		{frame, dimStyle},
	}
	return composeCanvas(w, h, layers, markers)
}

// composeCanvas styles runs of cells that come from the same layer
// together, so each row costs a handful of escape sequences.
func composeCanvas(w, h int, layers []canvasLayer, markers map[image.Point]string) string {
	var sb strings.Builder
	for y := 0; y < h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		var run strings.Builder
		runLayer := -1
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runLayer < 0 {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(layers[runLayer].style.Render(run.String()))
			}
			run.Reset()
		}
		for x := 0; x < w; x++ {
			if s, ok := markers[image.Pt(x, y)]; ok {
				flush()
				sb.WriteString(s)
				continue
			}
			li, r := -1, ' '
			for i, l := range layers {
				if g, ok := l.buf.glyph(x, y); ok {
					li, r = i, g
					break
				}
			}
			if li != runLayer {
				flush()
				runLayer = li
			}
			run.WriteRune(r)
		}
		flush()
	}
	return sb.String()
}
