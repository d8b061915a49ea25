package gfx

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
)

// VertexStride is the size of one serialized Vertex in bytes.
// Layout: position float32x2 @0, UV float32x2 @8, color float32x4 @16.
const VertexStride = 32

// Attribute offsets within a vertex.
const (
	vertexPositionOffset = 0
	vertexUVOffset       = 8
	vertexColorOffset    = 16
)

// Vertex is one mesh vertex: position, texture coordinate and linear color.
type Vertex struct {
	Position [2]float32
	UV       [2]float32
	Color    [4]float32
}

// NewVertex creates a vertex whose UV equals its position, the convention
// for hand-built paths that sample a texture in mesh space.
func NewVertex(p Point, c LinearColor) Vertex {
	return Vertex{
		Position: p.Array(),
		UV:       p.Array(),
		Color:    c.Array(),
	}
}

// Point returns the vertex position.
func (v Vertex) Point() Point {
	return Point{X: v.Position[0], Y: v.Position[1]}
}

// VertexLayout describes Vertex for render pipeline creation: position at
// shader location 0, UV at 1, color at 2.
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: vertexPositionOffset, ShaderLocation: 0},
				{Format: gputypes.VertexFormatFloat32x2, Offset: vertexUVOffset, ShaderLocation: 1},
				{Format: gputypes.VertexFormatFloat32x4, Offset: vertexColorOffset, ShaderLocation: 2},
			},
		},
	}
}

// AppendVertexBytes appends the little-endian serialization of vs to dst.
func AppendVertexBytes(dst []byte, vs []Vertex) []byte {
	dst = grow(dst, len(vs)*VertexStride)
	for i := range vs {
		off := len(dst)
		dst = dst[:off+VertexStride]
		writeVertex(dst[off:off+VertexStride], &vs[i])
	}
	return dst
}

func writeVertex(buf []byte, v *Vertex) {
	putFloat32(buf[0:4], v.Position[0])
	putFloat32(buf[4:8], v.Position[1])
	putFloat32(buf[8:12], v.UV[0])
	putFloat32(buf[12:16], v.UV[1])
	putFloat32(buf[16:20], v.Color[0])
	putFloat32(buf[20:24], v.Color[1])
	putFloat32(buf[24:28], v.Color[2])
	putFloat32(buf[28:32], v.Color[3])
}

func putFloat32(b []byte, f float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(f))
}

// AppendIndexBytes appends the little-endian serialization of is to dst.
func AppendIndexBytes(dst []byte, is []uint32) []byte {
	dst = grow(dst, len(is)*4)
	for _, idx := range is {
		dst = binary.LittleEndian.AppendUint32(dst, idx)
	}
	return dst
}

// grow makes room for n more bytes without changing len(dst).
func grow(dst []byte, n int) []byte {
	if cap(dst)-len(dst) >= n {
		return dst
	}
	out := make([]byte, len(dst), len(dst)+n)
	copy(out, dst)
	return out
}
