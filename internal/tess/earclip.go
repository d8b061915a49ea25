package tess

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// earClip triangulates a simple polygon and calls emit for each triangle
// with indices into pts. Triangles keep the winding of the input contour.
//
// Consecutive duplicates must have been removed. When no ear can be found
// collinear vertices are dropped and the search restarts; if that does not
// help either the contour is not simple and ErrInvalidGeometry is returned.
func earClip(pts []vec.Vec2, emit func(a, b, c int)) error {
	n := len(pts)
	if n < 3 {
		return nil
	}

	orient := 1.0
	if signedArea(pts) < 0 {
		orient = -1
	}

	remaining := make([]int, n)
	for i := range remaining {
		remaining[i] = i
	}

	for len(remaining) > 3 {
		if i := findEar(pts, remaining, orient); i >= 0 {
			m := len(remaining)
			emit(remaining[(i+m-1)%m], remaining[i], remaining[(i+1)%m])
			remaining = append(remaining[:i], remaining[i+1:]...)
			continue
		}
		if i := findCollinear(pts, remaining); i >= 0 {
			remaining = append(remaining[:i], remaining[i+1:]...)
			continue
		}
		return ErrInvalidGeometry
	}

	a, b, c := pts[remaining[0]], pts[remaining[1]], pts[remaining[2]]
	if math.Abs(cross(b.Sub(a), c.Sub(b))) > epsilon {
		emit(remaining[0], remaining[1], remaining[2])
	}
	return nil
}

// findEar returns the position in remaining of a vertex that forms an ear,
// or -1.
func findEar(pts []vec.Vec2, remaining []int, orient float64) int {
	m := len(remaining)
	for i := range m {
		ia, ib, ic := remaining[(i+m-1)%m], remaining[i], remaining[(i+1)%m]
		a, b, c := pts[ia], pts[ib], pts[ic]
		if cross(b.Sub(a), c.Sub(b))*orient <= epsilon {
			continue // reflex or flat
		}
		ear := true
		for _, j := range remaining {
			if j == ia || j == ib || j == ic {
				continue
			}
			p := pts[j]
			if samePoint(p, a) || samePoint(p, b) || samePoint(p, c) {
				continue
			}
			if inTriangle(p, a, b, c, orient) {
				ear = false
				break
			}
		}
		if ear {
			return i
		}
	}
	return -1
}

// findCollinear returns the position in remaining of a vertex lying on the
// line through its neighbors, or -1.
func findCollinear(pts []vec.Vec2, remaining []int) int {
	m := len(remaining)
	for i := range m {
		a, b, c := pts[remaining[(i+m-1)%m]], pts[remaining[i]], pts[remaining[(i+1)%m]]
		if math.Abs(cross(b.Sub(a), c.Sub(b))) <= epsilon {
			return i
		}
	}
	return -1
}

// inTriangle reports whether p lies inside or on the boundary of the
// triangle abc with the given orientation.
func inTriangle(p, a, b, c vec.Vec2, orient float64) bool {
	d1 := cross(b.Sub(a), p.Sub(a)) * orient
	d2 := cross(c.Sub(b), p.Sub(b)) * orient
	d3 := cross(a.Sub(c), p.Sub(c)) * orient
	return d1 >= -epsilon && d2 >= -epsilon && d3 >= -epsilon
}
