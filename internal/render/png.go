// Package render draws a scenario to a PNG image for sharing outside the
// terminal.
package render

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"zonedrawer/internal/geom"
	"zonedrawer/internal/scenario"
)

type Options struct {
	// Height of the image in pixels; the width follows the world aspect.
	Height   int
	FontSize float64
}

const (
	markerRadius = 5.0
	handleRadius = 4.0
	minWidth     = 200
)

// Size returns the image dimensions for b at the given height.
func Size(b geom.Bounds, height int) (int, int) {
	w := int(float64(height) * b.Width() / b.Height())
	return max(minWidth, w), height
}

// PNG draws the zones with their vertex handles, the start point in red
// and the finish point in blue, and writes the image to w.
func PNG(w io.Writer, s *scenario.Store, b geom.Bounds, opts Options) error {
	if opts.Height <= 0 {
		return fmt.Errorf("render: height %d must be positive", opts.Height)
	}
	iw, ih := Size(b, opts.Height)
	m := geom.NewMapper(b, iw, ih)

	dc := gg.NewContext(iw, ih)
	dc.SetHexColor("#ffffff")
	dc.Clear()

	if opts.FontSize > 0 {
		f, err := truetype.Parse(gomono.TTF)
		if err != nil {
			return fmt.Errorf("render: parse font: %w", err)
		}
		dc.SetFontFace(truetype.NewFace(f, &truetype.Options{
			Size:    opts.FontSize,
			DPI:     72,
			Hinting: font.HintingFull,
		}))
	}

	for i, z := range s.Zones() {
		dc.NewSubPath()
		for j, p := range z {
			x, y := m.ToCanvasF(p)
			if j == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.ClosePath()
		dc.SetHexColor("#ff0000")
		dc.SetLineWidth(2)
		dc.Stroke()

		for _, p := range z {
			x, y := m.ToCanvasF(p)
			dc.DrawCircle(x, y, handleRadius)
			dc.SetHexColor("#ffaaaa")
			dc.FillPreserve()
			dc.SetHexColor("#cc0000")
			dc.SetLineWidth(1)
			dc.Stroke()
		}

		if opts.FontSize > 0 {
			cx, cy := m.ToCanvasF(z.Centroid())
			dc.SetHexColor("#800000")
			dc.DrawStringAnchored(strconv.Itoa(i+1), cx, cy, 0.5, 0.5)
		}
	}

	marker := func(p geom.Point, color, label string) {
		x, y := m.ToCanvasF(p)
		dc.DrawCircle(x, y, markerRadius)
		dc.SetHexColor(color)
		dc.Fill()
		if opts.FontSize > 0 {
			dc.DrawStringAnchored(label, x+markerRadius+2, y, 0, 0.5)
		}
	}
	if p, ok := s.Start(); ok {
		marker(p, "#ff0000", "S")
	}
	if p, ok := s.Finish(); ok {
		marker(p, "#0000ff", "F")
	}

	return dc.EncodePNG(w)
}

// WritePNG renders to path.
func WritePNG(path string, s *scenario.Store, b geom.Bounds, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := PNG(f, s, b, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
