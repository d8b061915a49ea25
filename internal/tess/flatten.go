package tess

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Segment count bounds for flattened circles.
const (
	minCircleSegments = 3
	maxCircleSegments = 1024
)

// circleSegments returns the number of chords needed to approximate a full
// circle of radius r so that no chord strays more than tol from the arc.
//
// A chord spanning angle θ has sagitta r(1-cos(θ/2)); solving for the
// tolerance gives θ = 2·acos(1-tol/r) and n = ceil(π / acos(1-tol/r)).
func circleSegments(r, tol float64) int {
	r = math.Abs(r)
	if r == 0 || tol >= r {
		return minCircleSegments
	}
	n := math.Ceil(math.Pi / math.Acos(1-tol/r))
	if math.IsNaN(n) || n > maxCircleSegments {
		return maxCircleSegments
	}
	return max(int(n), minCircleSegments)
}

// arcSegments returns the number of chords for an arc of the given sweep.
func arcSegments(r, sweep, tol float64) int {
	r = math.Abs(r)
	sweep = math.Abs(sweep)
	if r == 0 || sweep == 0 {
		return 1
	}
	if tol >= r {
		return max(1, int(math.Ceil(sweep/(math.Pi/2))))
	}
	step := 2 * math.Acos(1-tol/r)
	n := math.Ceil(sweep / step)
	if math.IsNaN(n) || n > maxCircleSegments {
		return maxCircleSegments
	}
	return max(int(n), 1)
}

// appendEllipse appends n points on the ellipse with the given center and
// radii, starting at angle 0 and proceeding with increasing angle.
func appendEllipse(dst []vec.Vec2, center vec.Vec2, rx, ry float64, n int) []vec.Vec2 {
	step := 2 * math.Pi / float64(n)
	for k := range n {
		sin, cos := math.Sincos(step * float64(k))
		dst = append(dst, vec.Vec2{X: center.X + rx*cos, Y: center.Y + ry*sin})
	}
	return dst
}

// appendArc appends points on a circular arc from angle a0 to a1 (inclusive
// at both ends) split into n chords.
func appendArc(dst []vec.Vec2, center vec.Vec2, r, a0, a1 float64, n int) []vec.Vec2 {
	step := (a1 - a0) / float64(n)
	for k := 0; k <= n; k++ {
		sin, cos := math.Sincos(a0 + step*float64(k))
		dst = append(dst, vec.Vec2{X: center.X + r*cos, Y: center.Y + r*sin})
	}
	return dst
}

// normalized returns r with non-negative width and height.
func (r Rect) normalized() Rect {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

// roundedRectPoints returns the outline of a rounded rectangle, traversed
// in the same order as Rect.corners. The radius is clamped to half the
// smaller side; a zero radius yields the four plain corners.
func roundedRectPoints(rect Rect, radius, tol float64) []vec.Vec2 {
	rect = rect.normalized()
	radius = min(math.Abs(radius), rect.W/2, rect.H/2)
	if radius <= 0 {
		c := rect.corners()
		return c[:]
	}

	n := arcSegments(radius, math.Pi/2, tol)
	pts := make([]vec.Vec2, 0, 4*(n+1))
	x0, y0 := rect.X+radius, rect.Y+radius
	x1, y1 := rect.X+rect.W-radius, rect.Y+rect.H-radius

	pts = appendArc(pts, vec.Vec2{X: x0, Y: y0}, radius, math.Pi, 1.5*math.Pi, n)
	pts = appendArc(pts, vec.Vec2{X: x1, Y: y0}, radius, 1.5*math.Pi, 2*math.Pi, n)
	pts = appendArc(pts, vec.Vec2{X: x1, Y: y1}, radius, 0, 0.5*math.Pi, n)
	pts = appendArc(pts, vec.Vec2{X: x0, Y: y1}, radius, 0.5*math.Pi, math.Pi, n)
	return dedup(pts, true)
}

// dedup removes consecutive duplicate points. For closed contours a last
// point equal to the first is dropped as well.
func dedup(pts []vec.Vec2, closed bool) []vec.Vec2 {
	if len(pts) < 2 {
		return pts
	}
	out := make([]vec.Vec2, 0, len(pts))
	out = append(out, pts[0])
	for _, p := range pts[1:] {
		if !samePoint(p, out[len(out)-1]) {
			out = append(out, p)
		}
	}
	if closed && len(out) > 1 && samePoint(out[0], out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}

const epsilon = 1e-9

func samePoint(a, b vec.Vec2) bool {
	return math.Abs(a.X-b.X) <= epsilon && math.Abs(a.Y-b.Y) <= epsilon
}

func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// normal returns the unit left normal of d, or the zero vector for a zero d.
func normal(d vec.Vec2) vec.Vec2 {
	l := d.Length()
	if l == 0 {
		return vec.Vec2{}
	}
	return vec.Vec2{X: -d.Y / l, Y: d.X / l}
}

// unit returns d scaled to length 1, or the zero vector.
func unit(d vec.Vec2) vec.Vec2 {
	l := d.Length()
	if l == 0 {
		return vec.Vec2{}
	}
	return d.Mul(1 / l)
}

// signedArea returns twice the signed area of a closed contour.
func signedArea(pts []vec.Vec2) float64 {
	var a float64
	for i := range pts {
		j := (i + 1) % len(pts)
		a += cross(pts[i], pts[j])
	}
	return a
}

// finite reports whether every coordinate is a finite number.
func finite(pts []vec.Vec2) bool {
	for _, p := range pts {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return false
		}
	}
	return true
}
