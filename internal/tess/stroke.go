package tess

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// StrokeTessellator triangulates the outline of shapes at a given width.
//
// Every segment becomes a quad of four vertices. Joins and caps add their
// own vertices around the path point they belong to, so overlapping
// triangles are expected at corners. The zero value is ready to use; a
// StrokeTessellator must not be used concurrently.
type StrokeTessellator struct {
	scratch []vec.Vec2
}

// NewStrokeTessellator returns a new stroke tessellator.
func NewStrokeTessellator() *StrokeTessellator {
	return &StrokeTessellator{}
}

// TessellatePolygon strokes the path through points. Closed paths are joined
// at every vertex including the first; open paths get caps at both ends.
//
// A path whose points all coincide is drawn as its cap: a disc for round
// caps, a square for square caps and nothing for butt caps.
func (t *StrokeTessellator) TessellatePolygon(points []vec.Vec2, closed bool, opts StrokeOptions, out StrokeGeometryBuilder) (Count, error) {
	return t.strokePath(points, closed, opts, out)
}

// TessellateRectangle strokes the outline of rect.
func (t *StrokeTessellator) TessellateRectangle(rect Rect, opts StrokeOptions, out StrokeGeometryBuilder) (Count, error) {
	c := rect.corners()
	return t.strokePath(c[:], true, opts, out)
}

// TessellateCircle strokes a circle flattened to opts.Tolerance. A zero
// radius produces nothing.
func (t *StrokeTessellator) TessellateCircle(center vec.Vec2, radius float64, opts StrokeOptions, out StrokeGeometryBuilder) (Count, error) {
	return t.TessellateEllipse(center, vec.Vec2{X: radius, Y: radius}, opts, out)
}

// TessellateEllipse strokes an axis-aligned ellipse.
func (t *StrokeTessellator) TessellateEllipse(center, radii vec.Vec2, opts StrokeOptions, out StrokeGeometryBuilder) (Count, error) {
	rx, ry := math.Abs(radii.X), math.Abs(radii.Y)
	if rx == 0 || ry == 0 {
		out.BeginGeometry()
		return out.EndGeometry(), nil
	}
	n := circleSegments(max(rx, ry), tolerance(opts.Tolerance))
	t.scratch = appendEllipse(t.scratch[:0], center, rx, ry, n)
	return t.strokePath(t.scratch, true, opts, out)
}

// TessellateRoundedRectangle strokes a rectangle with rounded corners.
func (t *StrokeTessellator) TessellateRoundedRectangle(rect Rect, radius float64, opts StrokeOptions, out StrokeGeometryBuilder) (Count, error) {
	pts := roundedRectPoints(rect, radius, tolerance(opts.Tolerance))
	return t.strokePath(pts, true, opts, out)
}

// emitter forwards to a StrokeGeometryBuilder and keeps the first error.
type emitter struct {
	out StrokeGeometryBuilder
	err error
}

func (e *emitter) vertex(pos, path vec.Vec2, side Side) uint32 {
	if e.err != nil {
		return 0
	}
	id, err := e.out.AddStrokeVertex(StrokeVertex{Position: pos, PathPosition: path, Side: side})
	if err != nil {
		e.err = err
	}
	return id
}

func (e *emitter) triangle(a, b, c uint32) {
	if e.err == nil {
		e.out.AddTriangle(a, b, c)
	}
}

type strokeParams struct {
	hw         float64 // half width
	miterLimit float64
	tol        float64
	join       LineJoin
}

func (t *StrokeTessellator) strokePath(points []vec.Vec2, closed bool, opts StrokeOptions, out StrokeGeometryBuilder) (Count, error) {
	out.BeginGeometry()
	if opts.LineWidth <= 0 || len(points) == 0 {
		return out.EndGeometry(), nil
	}
	if !finite(points) {
		out.AbortGeometry()
		return Count{}, ErrInvalidGeometry
	}

	sp := strokeParams{
		hw:         opts.LineWidth / 2,
		miterLimit: opts.MiterLimit,
		tol:        tolerance(opts.Tolerance),
		join:       opts.LineJoin,
	}
	switch {
	case sp.miterLimit <= 0:
		sp.miterLimit = DefaultMiterLimit
	case sp.miterLimit < 1:
		sp.miterLimit = 1
	}

	pts := dedup(points, closed)
	e := &emitter{out: out}

	switch {
	case len(pts) == 1:
		if !closed {
			degenerateCap(e, pts[0], opts.StartCap, sp)
		}
	case closed && len(pts) > 2:
		n := len(pts)
		for i := range n {
			segment(e, pts[i], pts[(i+1)%n], sp.hw)
		}
		for i := range n {
			join(e, pts[(i+n-1)%n], pts[i], pts[(i+1)%n], sp)
		}
	default:
		n := len(pts)
		for i := 0; i+1 < n; i++ {
			segment(e, pts[i], pts[i+1], sp.hw)
		}
		for i := 1; i+1 < n; i++ {
			join(e, pts[i-1], pts[i], pts[i+1], sp)
		}
		if !closed {
			endCap(e, pts[0], unit(pts[0].Sub(pts[1])), opts.StartCap, sp)
			endCap(e, pts[n-1], unit(pts[n-1].Sub(pts[n-2])), opts.EndCap, sp)
		}
	}

	if e.err != nil {
		out.AbortGeometry()
		return Count{}, e.err
	}
	return out.EndGeometry(), nil
}

// segment emits the quad covering a→b.
func segment(e *emitter, a, b vec.Vec2, hw float64) {
	n := normal(b.Sub(a)).Mul(hw)
	i0 := e.vertex(a.Add(n), a, SidePositive)
	i1 := e.vertex(a.Sub(n), a, SideNegative)
	i2 := e.vertex(b.Add(n), b, SidePositive)
	i3 := e.vertex(b.Sub(n), b, SideNegative)
	e.triangle(i0, i1, i2)
	e.triangle(i2, i1, i3)
}

// join fills the gap on the outer side of the corner at p.
func join(e *emitter, prev, p, next vec.Vec2, sp strokeParams) {
	d0 := unit(p.Sub(prev))
	d1 := unit(next.Sub(p))
	c := cross(d0, d1)
	dot := d0.Dot(d1)
	if math.Abs(c) <= epsilon && dot > 0 {
		return // straight
	}

	sign, side := 1.0, SidePositive
	if c > 0 {
		sign, side = -1, SideNegative
	}
	n0 := normal(d0).Mul(sign)
	n1 := normal(d1).Mul(sign)
	o0 := p.Add(n0.Mul(sp.hw))
	o1 := p.Add(n1.Mul(sp.hw))

	switch sp.join {
	case LineJoinRound:
		roundFan(e, p, n0, n1, sp)
		return
	case LineJoinMiter:
		cosHalf := math.Sqrt(max(0, (1+dot)/2))
		if cosHalf > epsilon && 1/cosHalf <= sp.miterLimit {
			m := p.Add(unit(n0.Add(n1)).Mul(sp.hw / cosHalf))
			ic := e.vertex(p, p, SideCenter)
			i0 := e.vertex(o0, p, side)
			im := e.vertex(m, p, side)
			i1 := e.vertex(o1, p, side)
			e.triangle(ic, i0, im)
			e.triangle(ic, im, i1)
			return
		}
	}

	ic := e.vertex(p, p, SideCenter)
	i0 := e.vertex(o0, p, side)
	i1 := e.vertex(o1, p, side)
	e.triangle(ic, i0, i1)
}

// roundFan emits a fan around center sweeping from direction u0 to u1 (both
// unit vectors) at radius sp.hw, turning the short way.
func roundFan(e *emitter, center, u0, u1 vec.Vec2, sp strokeParams) {
	sweep := math.Acos(max(-1, min(1, u0.Dot(u1))))
	if cross(u0, u1) < 0 {
		sweep = -sweep
	}
	arc(e, center, u0, sweep, sp)
}

// arc emits a fan around center starting at direction u0 and rotating by
// sweep radians.
func arc(e *emitter, center, u0 vec.Vec2, sweep float64, sp strokeParams) {
	n := arcSegments(sp.hw, sweep, sp.tol)
	ic := e.vertex(center, center, SideCenter)
	prev := e.vertex(center.Add(u0.Mul(sp.hw)), center, SidePositive)
	for k := 1; k <= n; k++ {
		u := rotate(u0, sweep*float64(k)/float64(n))
		cur := e.vertex(center.Add(u.Mul(sp.hw)), center, SidePositive)
		e.triangle(ic, prev, cur)
		prev = cur
	}
}

// endCap emits the cap at p, where dir points away from the path.
func endCap(e *emitter, p, dir vec.Vec2, lineCap LineCap, sp strokeParams) {
	n := vec.Vec2{X: -dir.Y, Y: dir.X}
	switch lineCap {
	case LineCapSquare:
		ext := dir.Mul(sp.hw)
		off := n.Mul(sp.hw)
		i0 := e.vertex(p.Add(off), p, SidePositive)
		i1 := e.vertex(p.Sub(off), p, SideNegative)
		i2 := e.vertex(p.Add(off).Add(ext), p, SidePositive)
		i3 := e.vertex(p.Sub(off).Add(ext), p, SideNegative)
		e.triangle(i0, i1, i2)
		e.triangle(i2, i1, i3)
	case LineCapRound:
		// Half disc from +n through dir to -n.
		sweep := math.Pi
		if cross(n, dir) < 0 {
			sweep = -sweep
		}
		arc(e, p, n, sweep, sp)
	}
}

// degenerateCap draws a zero-length path as its cap.
func degenerateCap(e *emitter, p vec.Vec2, lineCap LineCap, sp strokeParams) {
	switch lineCap {
	case LineCapRound:
		arc(e, p, vec.Vec2{X: 1}, 2*math.Pi, sp)
	case LineCapSquare:
		h := sp.hw
		i0 := e.vertex(vec.Vec2{X: p.X - h, Y: p.Y - h}, p, SidePositive)
		i1 := e.vertex(vec.Vec2{X: p.X + h, Y: p.Y - h}, p, SidePositive)
		i2 := e.vertex(vec.Vec2{X: p.X + h, Y: p.Y + h}, p, SideNegative)
		i3 := e.vertex(vec.Vec2{X: p.X - h, Y: p.Y + h}, p, SideNegative)
		e.triangle(i0, i1, i2)
		e.triangle(i0, i2, i3)
	}
}

func rotate(v vec.Vec2, angle float64) vec.Vec2 {
	sin, cos := math.Sincos(angle)
	return vec.Vec2{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}
