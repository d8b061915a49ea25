package tess

import (
	"errors"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Tessellation errors.
var (
	// ErrInvalidGeometry is returned when the input shape cannot be turned
	// into triangles, e.g. a contour with non-finite coordinates.
	ErrInvalidGeometry = errors.New("tess: invalid geometry")

	// ErrTooManyVertices is returned when the output would not be
	// addressable with 32-bit indices.
	ErrTooManyVertices = errors.New("tess: too many vertices")
)

// Count is the amount of geometry produced by one tessellation.
type Count struct {
	Vertices uint32
	Indices  uint32
}

// Add returns the sum of two counts.
func (c Count) Add(o Count) Count {
	return Count{Vertices: c.Vertices + o.Vertices, Indices: c.Indices + o.Indices}
}

// IsEmpty reports whether nothing was produced.
func (c Count) IsEmpty() bool {
	return c.Vertices == 0 && c.Indices == 0
}

// Side is the side of the path a stroke vertex lies on, relative to the
// direction of travel.
type Side uint8

const (
	// SidePositive is the side the positive normal points to.
	SidePositive Side = iota
	// SideNegative is the opposite side.
	SideNegative
	// SideCenter marks vertices placed on the path itself (round join and
	// cap fan centers).
	SideCenter
)

// FillVertex is a position emitted by the fill tessellator.
type FillVertex struct {
	Position vec.Vec2
}

// StrokeVertex is a position emitted by the stroke tessellator.
type StrokeVertex struct {
	// Position is the final vertex position.
	Position vec.Vec2
	// PathPosition is the point on the stroked path this vertex was offset from.
	PathPosition vec.Vec2
	// Side is the side of the path the vertex lies on.
	Side Side
}

// GeometryBuilder receives triangles from a tessellator.
//
// A tessellation brackets its output with BeginGeometry and either
// EndGeometry (success) or AbortGeometry (failure). AbortGeometry must drop
// everything emitted since the matching BeginGeometry.
type GeometryBuilder interface {
	BeginGeometry()
	EndGeometry() Count
	AbortGeometry()
	// AddTriangle records a triangle. Indices are the values returned by the
	// vertex methods of the concrete builder.
	AddTriangle(a, b, c uint32)
}

// FillGeometryBuilder is a GeometryBuilder for fill output.
type FillGeometryBuilder interface {
	GeometryBuilder
	AddFillVertex(v FillVertex) (uint32, error)
}

// StrokeGeometryBuilder is a GeometryBuilder for stroke output.
type StrokeGeometryBuilder interface {
	GeometryBuilder
	AddStrokeVertex(v StrokeVertex) (uint32, error)
}

// FillVertexConstructor converts fill positions to vertices of type V.
type FillVertexConstructor[V any] interface {
	NewFillVertex(v FillVertex) V
}

// StrokeVertexConstructor converts stroke positions to vertices of type V.
type StrokeVertexConstructor[V any] interface {
	NewStrokeVertex(v StrokeVertex) V
}

// VertexConstructor converts both fill and stroke positions.
type VertexConstructor[V any] interface {
	FillVertexConstructor[V]
	StrokeVertexConstructor[V]
}

// VertexBuffers is a growable vertex/index accumulator.
type VertexBuffers[V any] struct {
	Vertices []V
	Indices  []uint32
}

// Len returns the number of vertices and indices held.
func (b *VertexBuffers[V]) Len() (vertices, indices int) {
	return len(b.Vertices), len(b.Indices)
}

// Truncate shrinks both sequences to the given lengths, keeping capacity.
func (b *VertexBuffers[V]) Truncate(vertices, indices int) {
	b.Vertices = b.Vertices[:vertices]
	b.Indices = b.Indices[:indices]
}

// BuffersBuilder appends tessellator output to a VertexBuffers.
//
// Returned vertex indices are absolute positions in the accumulator, so
// output of successive tessellations indexes correctly into the cumulative
// vertex sequence.
type BuffersBuilder[V any] struct {
	buffers     *VertexBuffers[V]
	ctor        VertexConstructor[V]
	firstVertex int
	firstIndex  int
}

// NewBuffersBuilder creates a builder writing into buffers through ctor.
func NewBuffersBuilder[V any](buffers *VertexBuffers[V], ctor VertexConstructor[V]) *BuffersBuilder[V] {
	return &BuffersBuilder[V]{buffers: buffers, ctor: ctor}
}

// BeginGeometry marks the start of a tessellation.
func (b *BuffersBuilder[V]) BeginGeometry() {
	b.firstVertex = len(b.buffers.Vertices)
	b.firstIndex = len(b.buffers.Indices)
}

// EndGeometry returns what was produced since BeginGeometry.
func (b *BuffersBuilder[V]) EndGeometry() Count {
	return Count{
		Vertices: uint32(len(b.buffers.Vertices) - b.firstVertex), //nolint:gosec // bounded by AddFillVertex/AddStrokeVertex
		Indices:  uint32(len(b.buffers.Indices) - b.firstIndex),   //nolint:gosec // three per triangle, bounded likewise
	}
}

// AbortGeometry drops everything since BeginGeometry.
func (b *BuffersBuilder[V]) AbortGeometry() {
	b.buffers.Truncate(b.firstVertex, b.firstIndex)
}

// AddTriangle appends three indices.
func (b *BuffersBuilder[V]) AddTriangle(i0, i1, i2 uint32) {
	b.buffers.Indices = append(b.buffers.Indices, i0, i1, i2)
}

// AddFillVertex appends a vertex built from a fill position.
func (b *BuffersBuilder[V]) AddFillVertex(v FillVertex) (uint32, error) {
	return b.push(b.ctor.NewFillVertex(v))
}

// AddStrokeVertex appends a vertex built from a stroke position.
func (b *BuffersBuilder[V]) AddStrokeVertex(v StrokeVertex) (uint32, error) {
	return b.push(b.ctor.NewStrokeVertex(v))
}

func (b *BuffersBuilder[V]) push(v V) (uint32, error) {
	n := len(b.buffers.Vertices)
	if uint64(n) >= math.MaxUint32 {
		return 0, ErrTooManyVertices
	}
	b.buffers.Vertices = append(b.buffers.Vertices, v)
	return uint32(n), nil
}

// Rect is an axis-aligned rectangle given by its origin and size.
type Rect struct {
	X, Y, W, H float64
}

// corners returns the four corners starting at the origin, in the order
// origin, +x, +x+y, +y.
func (r Rect) corners() [4]vec.Vec2 {
	return [4]vec.Vec2{
		{X: r.X, Y: r.Y},
		{X: r.X + r.W, Y: r.Y},
		{X: r.X + r.W, Y: r.Y + r.H},
		{X: r.X, Y: r.Y + r.H},
	}
}
