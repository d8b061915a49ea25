package tess

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// convexity summarizes the turns of a closed contour.
type convexity struct {
	// convex is set when every non-flat turn has the same direction and the
	// contour winds around its interior exactly once.
	convex bool

	// winding is +1 for counter-clockwise, -1 for clockwise, 0 when the
	// contour has no turns at all.
	winding int
}

// analyzeConvexity walks the turns of the closed contour pts in O(n).
// Flat turns are ignored. A contour whose turns all agree but whose total
// turning exceeds one revolution, such as a pentagram, is not convex.
func analyzeConvexity(pts []vec.Vec2) convexity {
	n := len(pts)
	if n < 3 {
		return convexity{}
	}

	var pos, neg int
	var turning float64
	for i := range n {
		e1 := pts[(i+1)%n].Sub(pts[i])
		e2 := pts[(i+2)%n].Sub(pts[(i+1)%n])
		c := cross(e1, e2)
		switch {
		case c > epsilon:
			pos++
		case c < -epsilon:
			neg++
		case e1.Dot(e2) < 0:
			return convexity{} // the contour doubles back on itself
		default:
			continue
		}
		turning += math.Atan2(c, e1.Dot(e2))
	}

	var res convexity
	switch {
	case pos > 0 && neg == 0:
		res.winding = 1
	case neg > 0 && pos == 0:
		res.winding = -1
	default:
		return res
	}
	res.convex = math.Abs(math.Abs(turning)-2*math.Pi) < 1e-3
	return res
}
