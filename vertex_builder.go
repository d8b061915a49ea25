package gfx

import "github.com/gogpu/gfx/internal/tess"

// Tessellator output types, for custom VertexConstructor implementations.
type (
	FillVertex   = tess.FillVertex
	StrokeVertex = tess.StrokeVertex
)

// VertexConstructor builds Vertex values from tessellator output. See
// MeshBuilder.PolylineWithVertexBuilder.
type VertexConstructor = tess.VertexConstructor[Vertex]

// vertexBuilder stamps one color on every vertex. Tessellated vertices get
// UV (0,0); raw triangle vertices use their position as UV.
type vertexBuilder struct {
	color [4]float32
}

func newVertexBuilder(c Color) vertexBuilder {
	return vertexBuilder{color: c.Linear().Array()}
}

// NewFillVertex implements tess.FillVertexConstructor.
func (vb vertexBuilder) NewFillVertex(v tess.FillVertex) Vertex {
	return Vertex{Position: pointFromVec(v.Position).Array(), Color: vb.color}
}

// NewStrokeVertex implements tess.StrokeVertexConstructor.
func (vb vertexBuilder) NewStrokeVertex(v tess.StrokeVertex) Vertex {
	return Vertex{Position: pointFromVec(v.Position).Array(), Color: vb.color}
}

func (vb vertexBuilder) newVertex(p Point) Vertex {
	return Vertex{Position: p.Array(), UV: p.Array(), Color: vb.color}
}
