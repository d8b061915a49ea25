package tess

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// FillTessellator triangulates the interior of shapes.
//
// The zero value is ready to use. A FillTessellator keeps scratch space
// between calls and must not be used concurrently.
type FillTessellator struct {
	scratch []vec.Vec2
	ids     []uint32
}

// NewFillTessellator returns a new fill tessellator.
func NewFillTessellator() *FillTessellator {
	return &FillTessellator{}
}

// TessellatePolygon fills the contour through points. Fill contours are
// always closed, so closed only affects stroking and is accepted here for
// symmetry with StrokeTessellator.
//
// Simple contours are fanned when convex and ear clipped otherwise; both
// fill rules agree on them. Self-intersecting contours are cut into
// trapezoids at their crossings and filled according to opts.FillRule.
// Output triangles follow the winding of the region they cover.
//
// Degenerate simple contours (fewer than three distinct points, zero area)
// produce no geometry and no error. Non-finite coordinates return
// ErrInvalidGeometry, with the builder's partial output aborted.
func (t *FillTessellator) TessellatePolygon(points []vec.Vec2, _ bool, opts FillOptions, out FillGeometryBuilder) (Count, error) {
	pts := dedup(append(t.scratch[:0], points...), true)
	t.scratch = pts
	if len(pts) > 3 && finite(pts) && !isSimple(pts) {
		return t.fillSweep(pts, opts.FillRule, out)
	}
	return t.fillContour(pts, analyzeConvexity(pts).convex, out)
}

// TessellateRectangle fills an axis-aligned rectangle with two triangles:
// vertices origin, +x, +x+y, +y and indices 0 1 2, 0 2 3.
func (t *FillTessellator) TessellateRectangle(rect Rect, _ FillOptions, out FillGeometryBuilder) (Count, error) {
	c := rect.corners()
	out.BeginGeometry()
	var ids [4]uint32
	for i, p := range c {
		id, err := out.AddFillVertex(FillVertex{Position: p})
		if err != nil {
			out.AbortGeometry()
			return Count{}, err
		}
		ids[i] = id
	}
	out.AddTriangle(ids[0], ids[1], ids[2])
	out.AddTriangle(ids[0], ids[2], ids[3])
	return out.EndGeometry(), nil
}

// TessellateCircle fills a circle flattened to opts.Tolerance. A zero radius
// produces nothing; the sign of the radius is ignored.
func (t *FillTessellator) TessellateCircle(center vec.Vec2, radius float64, opts FillOptions, out FillGeometryBuilder) (Count, error) {
	return t.TessellateEllipse(center, vec.Vec2{X: radius, Y: radius}, opts, out)
}

// TessellateEllipse fills an axis-aligned ellipse with the given radii.
func (t *FillTessellator) TessellateEllipse(center, radii vec.Vec2, opts FillOptions, out FillGeometryBuilder) (Count, error) {
	rx, ry := math.Abs(radii.X), math.Abs(radii.Y)
	if rx == 0 || ry == 0 {
		out.BeginGeometry()
		return out.EndGeometry(), nil
	}
	n := circleSegments(max(rx, ry), tolerance(opts.Tolerance))
	t.scratch = appendEllipse(t.scratch[:0], center, rx, ry, n)
	return t.fillContour(t.scratch, true, out)
}

// TessellateRoundedRectangle fills a rectangle whose corners are quarter
// circles of the given radius, clamped to half the smaller side.
func (t *FillTessellator) TessellateRoundedRectangle(rect Rect, radius float64, opts FillOptions, out FillGeometryBuilder) (Count, error) {
	if radius == 0 {
		return t.TessellateRectangle(rect, opts, out)
	}
	pts := roundedRectPoints(rect, radius, tolerance(opts.Tolerance))
	return t.fillContour(pts, true, out)
}

// fillContour emits pts as vertices and triangulates them, as a fan from the
// first point when convex is set and by ear clipping otherwise.
func (t *FillTessellator) fillContour(pts []vec.Vec2, convex bool, out FillGeometryBuilder) (Count, error) {
	out.BeginGeometry()
	if !finite(pts) {
		out.AbortGeometry()
		return Count{}, ErrInvalidGeometry
	}
	if len(pts) < 3 || math.Abs(signedArea(pts)) <= epsilon {
		return out.EndGeometry(), nil
	}

	ids := t.ids[:0]
	for _, p := range pts {
		id, err := out.AddFillVertex(FillVertex{Position: p})
		if err != nil {
			out.AbortGeometry()
			return Count{}, err
		}
		ids = append(ids, id)
	}
	t.ids = ids

	if convex {
		for i := 1; i+1 < len(ids); i++ {
			if math.Abs(cross(pts[i].Sub(pts[0]), pts[i+1].Sub(pts[0]))) <= epsilon {
				continue // collinear with the fan apex
			}
			out.AddTriangle(ids[0], ids[i], ids[i+1])
		}
		return out.EndGeometry(), nil
	}

	err := earClip(pts, func(a, b, c int) {
		out.AddTriangle(ids[a], ids[b], ids[c])
	})
	if err != nil {
		out.AbortGeometry()
		return Count{}, err
	}
	return out.EndGeometry(), nil
}
