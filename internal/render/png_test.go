package render

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"zonedrawer/internal/geom"
	"zonedrawer/internal/scenario"
)

var bounds = geom.Bounds{XMin: -1200, XMax: 3700, YMin: -1500, YMax: 1500}

func testStore() *scenario.Store {
	s := scenario.NewStore()
	s.SetStart(geom.Point{X: 0, Y: 0})
	s.SetFinish(geom.Point{X: 3000, Y: -1000})
	s.AddZone(geom.BuildRect(geom.Point{X: 500, Y: 500}, geom.Point{X: 1500, Y: 800}, geom.Point{X: 1200, Y: 1200}))
	return s
}

func colorAt(img image.Image, p image.Point) [3]uint32 {
	r, g, b, _ := img.At(p.X, p.Y).RGBA()
	return [3]uint32{r >> 8, g >> 8, b >> 8}
}

func TestPNG(t *testing.T) {
	var buf bytes.Buffer
	s := testStore()
	if err := PNG(&buf, s, bounds, Options{Height: 490, FontSize: 10}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	w, h := Size(bounds, 490)
	if got := img.Bounds().Size(); got != image.Pt(w, h) {
		t.Errorf("size %v, want %dx%d", got, w, h)
	}

	m := geom.NewMapper(bounds, w, h)
	start, _ := s.Start()
	if c := colorAt(img, m.ToCanvas(start)); c != [3]uint32{255, 0, 0} {
		t.Errorf("start marker color %v", c)
	}
	finish, _ := s.Finish()
	if c := colorAt(img, m.ToCanvas(finish)); c != [3]uint32{0, 0, 255} {
		t.Errorf("finish marker color %v", c)
	}
	if c := colorAt(img, image.Pt(1, 1)); c != [3]uint32{255, 255, 255} {
		t.Errorf("background color %v", c)
	}
}

func TestPNGErrors(t *testing.T) {
	var buf bytes.Buffer
	if err := PNG(&buf, testStore(), bounds, Options{}); err == nil {
		t.Error("zero height: expected an error")
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zones.png")
	if err := WritePNG(path, scenario.NewStore(), bounds, Options{Height: 100}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 200 || cfg.Height != 100 {
		t.Errorf("size %dx%d, want the 200 pixel minimum width", cfg.Width, cfg.Height)
	}
}
