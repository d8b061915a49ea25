package tess

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// sweepEdge is a non-horizontal contour edge stored top to bottom.
type sweepEdge struct {
	top, bottom vec.Vec2
	// winding is +1 when the contour runs from bottom to top (decreasing
	// y), -1 otherwise. A counter-clockwise contour has winding +1 inside.
	winding int
}

func (e sweepEdge) xAt(y float64) float64 {
	switch {
	case y <= e.top.Y:
		return e.top.X
	case y >= e.bottom.Y:
		return e.bottom.X
	}
	t := (y - e.top.Y) / (e.bottom.Y - e.top.Y)
	return e.top.X + t*(e.bottom.X-e.top.X)
}

// inside reports whether a region with winding number w is filled.
func (r FillRule) inside(w int) bool {
	if r == FillRuleNonZero {
		return w != 0
	}
	return w%2 != 0
}

// isSimple reports whether the closed contour pts has no self-intersections,
// touching vertices or edges that fold back onto their neighbor. It is
// O(n²) in the number of edges.
func isSimple(pts []vec.Vec2) bool {
	n := len(pts)
	for i := range n {
		a, b := pts[i], pts[(i+1)%n]
		c := pts[(i+2)%n]
		if math.Abs(cross(b.Sub(a), c.Sub(b))) <= epsilon && b.Sub(a).Dot(c.Sub(b)) < 0 {
			return false
		}
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // adjacent through the closing edge
			}
			if segmentsTouch(a, b, pts[j], pts[(j+1)%n]) {
				return false
			}
		}
	}
	return true
}

func orientation(a, b, c vec.Vec2) int {
	v := cross(b.Sub(a), c.Sub(a))
	switch {
	case v > epsilon:
		return 1
	case v < -epsilon:
		return -1
	}
	return 0
}

// onSegment reports whether p, known to be collinear with a-b, lies on it.
func onSegment(a, b, p vec.Vec2) bool {
	return p.X >= math.Min(a.X, b.X)-epsilon && p.X <= math.Max(a.X, b.X)+epsilon &&
		p.Y >= math.Min(a.Y, b.Y)-epsilon && p.Y <= math.Max(a.Y, b.Y)+epsilon
}

// segmentsTouch reports whether segments a-b and c-d share any point.
func segmentsTouch(a, b, c, d vec.Vec2) bool {
	o1, o2 := orientation(a, b, c), orientation(a, b, d)
	o3, o4 := orientation(c, d, a), orientation(c, d, b)
	if o1*o2 < 0 && o3*o4 < 0 {
		return true
	}
	return (o1 == 0 && onSegment(a, b, c)) ||
		(o2 == 0 && onSegment(a, b, d)) ||
		(o3 == 0 && onSegment(c, d, a)) ||
		(o4 == 0 && onSegment(c, d, b))
}

// fillSweep fills a contour that is not simple. The plane is cut into
// horizontal slabs at every vertex and every edge crossing; inside a slab no
// two edges cross, so the spans between consecutive edges are trapezoids
// whose winding number is constant. Spans selected by rule are emitted as
// two triangles each, oriented by the sign of their winding number.
func (t *FillTessellator) fillSweep(pts []vec.Vec2, rule FillRule, out FillGeometryBuilder) (Count, error) {
	out.BeginGeometry()

	n := len(pts)
	edges := make([]sweepEdge, 0, n)
	ys := make([]float64, 0, 2*n)
	for i := range n {
		a, b := pts[i], pts[(i+1)%n]
		ys = append(ys, a.Y)
		switch {
		case a.Y < b.Y:
			edges = append(edges, sweepEdge{top: a, bottom: b, winding: -1})
		case a.Y > b.Y:
			edges = append(edges, sweepEdge{top: b, bottom: a, winding: 1})
		}
	}
	for i := range edges {
		for j := i + 1; j < len(edges); j++ {
			if y, ok := crossingY(edges[i], edges[j]); ok {
				ys = append(ys, y)
			}
		}
	}
	slices.Sort(ys)
	ys = slices.CompactFunc(ys, func(a, b float64) bool { return b-a <= epsilon })

	ids := make(map[vec.Vec2]uint32)
	vertex := func(p vec.Vec2) (uint32, error) {
		if id, ok := ids[p]; ok {
			return id, nil
		}
		id, err := out.AddFillVertex(FillVertex{Position: p})
		if err != nil {
			return 0, err
		}
		ids[p] = id
		return id, nil
	}

	var active []sweepEdge
	for s := 0; s+1 < len(ys); s++ {
		y0, y1 := ys[s], ys[s+1]
		if y1-y0 <= epsilon {
			continue
		}
		ym := (y0 + y1) / 2
		active = active[:0]
		for _, e := range edges {
			if e.top.Y < ym && ym < e.bottom.Y {
				active = append(active, e)
			}
		}
		slices.SortFunc(active, func(a, b sweepEdge) int {
			xa, xb := a.xAt(ym), b.xAt(ym)
			switch {
			case xa < xb:
				return -1
			case xa > xb:
				return 1
			}
			return 0
		})

		w := 0
		var left sweepEdge
		for _, e := range active {
			before := w
			w += e.winding
			switch {
			case !rule.inside(before) && rule.inside(w):
				left = e
			case rule.inside(before) && !rule.inside(w):
				if err := emitTrapezoid(left, e, y0, y1, before > 0, vertex, out); err != nil {
					out.AbortGeometry()
					return Count{}, err
				}
			}
		}
	}
	return out.EndGeometry(), nil
}

// crossingY returns the y coordinate where two edges cross, if they do.
// Parallel edges report no crossing; their endpoints are slab boundaries
// already.
func crossingY(e, f sweepEdge) (float64, bool) {
	d1 := e.bottom.Sub(e.top)
	d2 := f.bottom.Sub(f.top)
	den := cross(d1, d2)
	if math.Abs(den) <= epsilon {
		return 0, false
	}
	r := f.top.Sub(e.top)
	s := cross(r, d2) / den
	u := cross(r, d1) / den
	if s < 0 || s > 1 || u < 0 || u > 1 {
		return 0, false
	}
	return e.top.Y + s*d1.Y, true
}

func emitTrapezoid(l, r sweepEdge, y0, y1 float64, positive bool, vertex func(vec.Vec2) (uint32, error), out FillGeometryBuilder) error {
	corners := [4]vec.Vec2{
		{X: l.xAt(y0), Y: y0},
		{X: r.xAt(y0), Y: y0},
		{X: r.xAt(y1), Y: y1},
		{X: l.xAt(y1), Y: y1},
	}
	var ids [4]uint32
	for i, p := range corners {
		id, err := vertex(p)
		if err != nil {
			return err
		}
		ids[i] = id
	}
	for _, tri := range [2][3]int{{0, 1, 2}, {0, 2, 3}} {
		a, b, c := corners[tri[0]], corners[tri[1]], corners[tri[2]]
		if math.Abs(cross(b.Sub(a), c.Sub(a))) <= epsilon {
			continue // the span closes to a point at a crossing
		}
		if positive {
			out.AddTriangle(ids[tri[0]], ids[tri[1]], ids[tri[2]])
		} else {
			out.AddTriangle(ids[tri[0]], ids[tri[2]], ids[tri[1]])
		}
	}
	return nil
}
