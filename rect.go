package gfx

import "github.com/gogpu/gfx/internal/tess"

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X, Y, W, H float32
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Min returns the corner at (X, Y).
func (r Rect) Min() Point { return Point{X: r.X, Y: r.Y} }

// Max returns the corner at (X+W, Y+H).
func (r Rect) Max() Point { return Point{X: r.X + r.W, Y: r.Y + r.H} }

// Contains reports whether p lies inside r, edges included.
// r must have a non-negative size.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

func (r Rect) tess() tess.Rect {
	return tess.Rect{X: float64(r.X), Y: float64(r.Y), W: float64(r.W), H: float64(r.H)}
}
