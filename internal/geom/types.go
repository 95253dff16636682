package geom

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a 2D point in world units.
type Point = r2.Vec

// Bounds is the rectangle of valid world coordinates.
type Bounds struct {
	XMin float64 `toml:"x_min"`
	XMax float64 `toml:"x_max"`
	YMin float64 `toml:"y_min"`
	YMax float64 `toml:"y_max"`
}

var ErrBounds = errors.New("invalid bounds")

func (b Bounds) Validate() error {
	if b.XMax <= b.XMin {
		return fmt.Errorf("%w: x_max %g <= x_min %g", ErrBounds, b.XMax, b.XMin)
	}
	if b.YMax <= b.YMin {
		return fmt.Errorf("%w: y_max %g <= y_min %g", ErrBounds, b.YMax, b.YMin)
	}
	return nil
}

// Width is the world span shown along the canvas horizontal axis (world Y).
func (b Bounds) Width() float64 { return b.YMax - b.YMin }

// Height is the world span shown along the canvas vertical axis (world X).
func (b Bounds) Height() float64 { return b.XMax - b.XMin }

// Zone is a rectangle given by four vertices in edge order A, B, C, D.
type Zone [4]Point

// Polygon returns the vertices as a slice.
func (z Zone) Polygon() []Point { return z[:] }

func (z Zone) Contains(p Point) bool { return Contains(p, z[:]) }

func (z Zone) Centroid() Point {
	var c Point
	for _, p := range z {
		c = r2.Add(c, p)
	}
	return r2.Scale(0.25, c)
}

// Degenerate reports whether either side of the rectangle is shorter than eps.
func (z Zone) Degenerate(eps float64) bool {
	return r2.Norm(r2.Sub(z[1], z[0])) < eps || r2.Norm(r2.Sub(z[2], z[1])) < eps
}
