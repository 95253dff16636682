package tui

import (
	"image"
	"sort"
)

type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// dot bit for each micro position inside a cell, [column][row]
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= brailleBits[rx][ry]
}

func (b *brailleBuf) pixel(mx, my int) bool {
	if mx < 0 || my < 0 || my/4 >= b.h || mx/2 >= b.w {
		return false
	}
	return b.m[my/4][mx/2]&brailleBits[mx%2][my%4] != 0
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int) {
	b.dashLineMicro(x0, y0, x1, y1, 1, 0)
}

// dashLineMicro draws on pixels followed by off gaps along the line.
func (b *brailleBuf) dashLineMicro(x0, y0, x1, y1, on, off int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for step := 0; ; step++ {
		if step%(on+off) < on {
			b.setPixel(x0, y0)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// polyline joins pts in order and closes the ring when closed is set.
func (b *brailleBuf) polyline(pts []image.Point, closed bool, on, off int) {
	for i := 0; i+1 < len(pts); i++ {
		b.dashLineMicro(pts[i].X, pts[i].Y, pts[i+1].X, pts[i+1].Y, on, off)
	}
	if closed && len(pts) > 2 {
		a, z := pts[len(pts)-1], pts[0]
		b.dashLineMicro(a.X, a.Y, z.X, z.Y, on, off)
	}
}

// square sets a (2r+1)-wide block centred on (mx, my).
func (b *brailleBuf) square(mx, my, r int) {
	for y := my - r; y <= my+r; y++ {
		for x := mx - r; x <= mx+r; x++ {
			b.setPixel(x, y)
		}
	}
}

// fillPolygon fills a ring with the even-odd rule, one micro scanline at
// a time.
func (b *brailleBuf) fillPolygon(ring []image.Point) {
	if len(ring) < 3 {
		return
	}
	hMic := b.h * 4
	for yMic := 0; yMic < hMic; yMic++ {
		var xs []int
		for i := range ring {
			a := ring[i]
			c := ring[(i+1)%len(ring)]
			if a.Y == c.Y { // horizontal edge: skip
				continue
			}
			if (yMic >= a.Y && yMic < c.Y) || (yMic >= c.Y && yMic < a.Y) {
				t := float64(yMic-a.Y) / float64(c.Y-a.Y)
				xs = append(xs, int(float64(a.X)+t*float64(c.X-a.X)))
			}
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for xMic := max(0, xs[i]); xMic <= xs[i+1]; xMic++ {
				b.setPixel(xMic, yMic)
			}
		}
	}
}

// glyph is the braille rune for a cell, or a space when it is empty.
func (b *brailleBuf) glyph(cx, cy int) (rune, bool) {
	mask := b.m[cy][cx]
	if mask == 0 {
		return ' ', false
	}
	return rune(0x2800 + int(mask)), true
}
