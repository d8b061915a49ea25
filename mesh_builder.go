// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import (
	"fmt"

	"github.com/gogpu/gfx/internal/tess"
	"seehuhn.de/go/geom/vec"
)

// MeshBuilder accumulates triangle-list geometry from shape calls into one
// vertex/index pair.
//
// Each shape call appends to the builder; nothing is ever removed or
// reordered except by Reset. Calls return the builder so they can be
// chained, along with an error for validation and tessellation failures.
// A failing call contributes nothing.
//
//	b := gfx.NewMeshBuilder()
//	b.Rectangle(gfx.FillMode(), gfx.NewRect(0, 0, 10, 10), gfx.White)
//	b.Circle(gfx.StrokeMode(2), gfx.Pt(5, 5), 4, 0.1, gfx.Red)
//	mesh, err := gfx.NewMeshFromData(dev, b.Build())
//
// A MeshBuilder is not safe for concurrent use.
type MeshBuilder struct {
	buffers   tess.VertexBuffers[Vertex]
	tolerance float64
	fill      tess.FillTessellator
	stroke    tess.StrokeTessellator
	points    []vec.Vec2
}

// NewMeshBuilder creates an empty builder.
func NewMeshBuilder(opts ...BuilderOption) *MeshBuilder {
	o := defaultBuilderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	b := &MeshBuilder{tolerance: o.tolerance}
	if o.vertices > 0 {
		b.buffers.Vertices = make([]Vertex, 0, o.vertices)
	}
	if o.indices > 0 {
		b.buffers.Indices = make([]uint32, 0, o.indices)
	}
	return b
}

// Line strokes an open path through points with the given width.
// It needs at least 2 points.
func (b *MeshBuilder) Line(points []Point, width float32, color Color) (*MeshBuilder, error) {
	return b.Polyline(StrokeMode(width), points, color)
}

// Polyline draws an open path through points. It needs at least 2 points.
func (b *MeshBuilder) Polyline(mode DrawMode, points []Point, color Color) (*MeshBuilder, error) {
	if len(points) < 2 {
		return b, fmt.Errorf("%w: MeshBuilder.Polyline got a list of < 2 points", ErrTooFewPoints)
	}
	return b, b.path("Polyline", mode, points, false, newVertexBuilder(color))
}

// Polygon draws a closed path through points. It needs at least 3 points.
//
// Points should be given in clockwise order. Other orders are accepted
// without error.
func (b *MeshBuilder) Polygon(mode DrawMode, points []Point, color Color) (*MeshBuilder, error) {
	if len(points) < 3 {
		return b, fmt.Errorf("%w: MeshBuilder.Polygon got a list of < 3 points", ErrTooFewPoints)
	}
	return b, b.path("Polygon", mode, points, true, newVertexBuilder(color))
}

// PolylineWithVertexBuilder draws a path through points, building every
// vertex with ctor instead of the default solid-color constructor. It needs
// at least 2 points.
func (b *MeshBuilder) PolylineWithVertexBuilder(mode DrawMode, points []Point, closed bool, ctor VertexConstructor) (*MeshBuilder, error) {
	if len(points) < 2 {
		return b, fmt.Errorf("%w: MeshBuilder.PolylineWithVertexBuilder got a list of < 2 points", ErrTooFewPoints)
	}
	return b, b.path("PolylineWithVertexBuilder", mode, points, closed, ctor)
}

func (b *MeshBuilder) path(op string, mode DrawMode, points []Point, closed bool, ctor VertexConstructor) error {
	b.points = toVecs(b.points[:0], points)
	pts := b.points
	return b.emit(op, mode, ctor,
		func(opts FillOptions, out tess.FillGeometryBuilder) (tess.Count, error) {
			return b.fill.TessellatePolygon(pts, closed, opts, out)
		},
		func(opts StrokeOptions, out tess.StrokeGeometryBuilder) (tess.Count, error) {
			return b.stroke.TessellatePolygon(pts, closed, opts, out)
		})
}

// Circle draws a circle flattened so no chord strays more than tolerance
// from the true curve. tolerance overrides the mode's own tolerance.
//
// Circle panics if tolerance is not positive. Degenerate circles, such as a
// zero radius, produce no geometry and no error.
func (b *MeshBuilder) Circle(mode DrawMode, center Point, radius, tolerance float32, color Color) *MeshBuilder {
	mustPositiveTolerance("MeshBuilder.Circle", tolerance)
	c, r := center.vec(), float64(radius)
	err := b.emit("Circle", mode.withExactTolerance(float64(tolerance)), newVertexBuilder(color),
		func(opts FillOptions, out tess.FillGeometryBuilder) (tess.Count, error) {
			return b.fill.TessellateCircle(c, r, opts, out)
		},
		func(opts StrokeOptions, out tess.StrokeGeometryBuilder) (tess.Count, error) {
			return b.stroke.TessellateCircle(c, r, opts, out)
		})
	b.ignore(err)
	return b
}

// Ellipse draws an axis-aligned ellipse with horizontal radius radius1 and
// vertical radius radius2. Tolerance and degenerate input are handled as in
// Circle.
func (b *MeshBuilder) Ellipse(mode DrawMode, center Point, radius1, radius2, tolerance float32, color Color) *MeshBuilder {
	mustPositiveTolerance("MeshBuilder.Ellipse", tolerance)
	c := center.vec()
	radii := vec.Vec2{X: float64(radius1), Y: float64(radius2)}
	err := b.emit("Ellipse", mode.withExactTolerance(float64(tolerance)), newVertexBuilder(color),
		func(opts FillOptions, out tess.FillGeometryBuilder) (tess.Count, error) {
			return b.fill.TessellateEllipse(c, radii, opts, out)
		},
		func(opts StrokeOptions, out tess.StrokeGeometryBuilder) (tess.Count, error) {
			return b.stroke.TessellateEllipse(c, radii, opts, out)
		})
	b.ignore(err)
	return b
}

// Rectangle draws an axis-aligned rectangle. A filled rectangle is always
// 4 vertices and 6 indices.
func (b *MeshBuilder) Rectangle(mode DrawMode, bounds Rect, color Color) (*MeshBuilder, error) {
	r := bounds.tess()
	return b, b.emit("Rectangle", mode, newVertexBuilder(color),
		func(opts FillOptions, out tess.FillGeometryBuilder) (tess.Count, error) {
			return b.fill.TessellateRectangle(r, opts, out)
		},
		func(opts StrokeOptions, out tess.StrokeGeometryBuilder) (tess.Count, error) {
			return b.stroke.TessellateRectangle(r, opts, out)
		})
}

// RoundedRectangle draws a rectangle whose corners are quarter circles of
// the given radius, clamped to half the shorter side.
func (b *MeshBuilder) RoundedRectangle(mode DrawMode, bounds Rect, radius float32, color Color) (*MeshBuilder, error) {
	r, rad := bounds.tess(), float64(radius)
	return b, b.emit("RoundedRectangle", mode, newVertexBuilder(color),
		func(opts FillOptions, out tess.FillGeometryBuilder) (tess.Count, error) {
			return b.fill.TessellateRoundedRectangle(r, rad, opts, out)
		},
		func(opts StrokeOptions, out tess.StrokeGeometryBuilder) (tess.Count, error) {
			return b.stroke.TessellateRoundedRectangle(r, rad, opts, out)
		})
}

// Triangles appends raw triangles, one per consecutive triple of points.
// Vertices are not shared between triangles and use their position as UV.
func (b *MeshBuilder) Triangles(points []Point, color Color) (*MeshBuilder, error) {
	if len(points)%3 != 0 {
		return b, fmt.Errorf("%w: MeshBuilder.Triangles got %d points", ErrTriangleCount, len(points))
	}
	base := len(b.buffers.Vertices)
	if uint64(base)+uint64(len(points)) > 1<<32 {
		return b, fmt.Errorf("gfx: MeshBuilder.Triangles: %w", tess.ErrTooManyVertices)
	}
	vb := newVertexBuilder(color)
	for i, p := range points {
		b.buffers.Vertices = append(b.buffers.Vertices, vb.newVertex(p))
		b.buffers.Indices = append(b.buffers.Indices, uint32(base+i)) //nolint:gosec // checked above
	}
	return b, nil
}

// Build returns a view of the accumulated geometry. The builder is not
// reset and may be extended further; the view then goes stale.
func (b *MeshBuilder) Build() MeshData {
	return MeshData{Vertices: b.buffers.Vertices, Indices: b.buffers.Indices}
}

// Reset empties the builder, keeping its allocated storage for reuse.
// Views returned by Build before Reset must not be used afterwards.
func (b *MeshBuilder) Reset() {
	b.buffers.Truncate(0, 0)
}

// Len returns the number of accumulated vertices and indices.
func (b *MeshBuilder) Len() (vertices, indices int) {
	return b.buffers.Len()
}

// emit runs one tessellation into the accumulator and wraps its error. On
// failure everything the call appended is dropped.
func (b *MeshBuilder) emit(
	op string,
	mode DrawMode,
	ctor VertexConstructor,
	fill func(FillOptions, tess.FillGeometryBuilder) (tess.Count, error),
	stroke func(StrokeOptions, tess.StrokeGeometryBuilder) (tess.Count, error),
) error {
	mode = mode.withTolerance(b.tolerance)
	nv, ni := b.buffers.Len()
	out := tess.NewBuffersBuilder(&b.buffers, ctor)

	var (
		count tess.Count
		err   error
	)
	if mode.IsFill() {
		count, err = fill(mode.fill, out)
	} else {
		count, err = stroke(mode.line, out)
	}
	if err != nil {
		b.buffers.Truncate(nv, ni)
		return fmt.Errorf("gfx: MeshBuilder.%s: %w", op, err)
	}
	Logger().Debug("gfx: tessellated", "op", op, "mode", mode.String(),
		"vertices", count.Vertices, "indices", count.Indices)
	return nil
}

// ignore drops a tessellation error for shapes whose degenerate input is
// allowed to produce nothing.
func (b *MeshBuilder) ignore(err error) {
	if err != nil {
		Logger().Warn("gfx: tessellation dropped", "err", err)
	}
}
