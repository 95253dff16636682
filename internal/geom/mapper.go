package geom

import (
	"image"
	"math"
)

// Mapper converts between canvas pixels and world units. The canvas
// horizontal axis runs along world Y and the vertical axis along world X,
// both reversed: the top-left pixel is (XMax, YMax).
type Mapper struct {
	b    Bounds
	w, h int
}

func NewMapper(b Bounds, w, h int) Mapper {
	return Mapper{b: b, w: max(1, w), h: max(1, h)}
}

// FitMapper returns the largest mapper whose canvas fits in maxW x maxH
// pixels while keeping the world aspect ratio.
func FitMapper(b Bounds, maxW, maxH int) Mapper {
	maxW, maxH = max(1, maxW), max(1, maxH)
	aspect := b.Width() / b.Height()
	h := maxH
	w := int(float64(h) * aspect)
	if w > maxW {
		w = maxW
		h = int(float64(w) / aspect)
	}
	return NewMapper(b, w, h)
}

func (m Mapper) Size() (int, int) { return m.w, m.h }

func (m Mapper) Bounds() Bounds { return m.b }

func (m Mapper) ToWorld(c image.Point) Point {
	return m.ToWorldF(float64(c.X), float64(c.Y))
}

// ToWorldF is ToWorld for sub-pixel canvas positions.
func (m Mapper) ToWorldF(px, py float64) Point {
	return Point{
		X: m.b.XMax - py/float64(m.h)*m.b.Height(),
		Y: m.b.YMax - px/float64(m.w)*m.b.Width(),
	}
}

func (m Mapper) ToCanvas(p Point) image.Point {
	px, py := m.ToCanvasF(p)
	return image.Pt(int(math.Round(px)), int(math.Round(py)))
}

// ToCanvasF is ToCanvas without rounding.
func (m Mapper) ToCanvasF(p Point) (float64, float64) {
	px := (m.b.YMax - p.Y) / m.b.Width() * float64(m.w)
	py := (m.b.XMax - p.X) / m.b.Height() * float64(m.h)
	return px, py
}

// Clamp limits c to the canvas rectangle, edges included.
func (m Mapper) Clamp(c image.Point) image.Point {
	return image.Pt(clamp(c.X, 0, m.w), clamp(c.Y, 0, m.h))
}

// Scale is the number of canvas pixels per world unit.
func (m Mapper) Scale() float64 {
	return float64(m.w) / m.b.Width()
}

func clamp[T int | float64](v, lo, hi T) T {
	return max(lo, min(hi, v))
}
