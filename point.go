package gfx

import (
	"github.com/chewxy/math32"
	"seehuhn.de/go/geom/vec"
)

// Point is a 2D position or vector in mesh space.
type Point struct {
	X, Y float32
}

// Pt is a convenience function to create a Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by s.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Length returns the length of the vector.
func (p Point) Length() float32 {
	return math32.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float32 {
	return p.Sub(q).Length()
}

// Array returns the coordinates as a two-element array.
func (p Point) Array() [2]float32 {
	return [2]float32{p.X, p.Y}
}

func (p Point) vec() vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

func pointFromVec(v vec.Vec2) Point {
	return Point{X: float32(v.X), Y: float32(v.Y)}
}

func toVecs(dst []vec.Vec2, points []Point) []vec.Vec2 {
	for _, p := range points {
		dst = append(dst, p.vec())
	}
	return dst
}
