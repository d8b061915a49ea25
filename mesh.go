// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import (
	"errors"
	"fmt"

	"github.com/gogpu/gfx/gpu"
	"github.com/gogpu/gputypes"
)

// Buffer labels used for mesh allocations.
const (
	vertexBufferLabel = "mesh vertices"
	indexBufferLabel  = "mesh indices"
)

// ErrMeshReleased is returned when updating a mesh after Release.
var ErrMeshReleased = errors.New("gfx: mesh released")

// Mesh owns a vertex buffer and an index buffer on a GPU device.
//
// Buffers only grow. Updates that fit the current capacity are written in
// place; larger updates allocate a new buffer and give the mesh a new ID.
// Renderers that cache per-mesh state (bind groups, draw calls) key it by
// ID and rebuild when it changes.
//
// A Mesh is not safe for concurrent mutation.
type Mesh struct {
	vertices *gpu.Buffer
	indices  *gpu.Buffer

	vertexCap   int
	indexCap    int
	vertexCount int
	indexCount  int

	id uint64

	// staging is reused for serialization across updates.
	staging []byte
}

// NewMesh uploads vertices and indices into fresh buffers sized exactly to
// the data. Capacities equal the lengths given.
func NewMesh(dev gpu.Device, vertices []Vertex, indices []uint32) (*Mesh, error) {
	if dev == nil {
		return nil, gpu.ErrNilDevice
	}
	m := &Mesh{}

	m.staging = AppendVertexBytes(m.staging[:0], vertices)
	vb, err := dev.CreateBufferInit(vertexBufferLabel, gpu.VertexUsage, m.staging)
	if err != nil {
		return nil, fmt.Errorf("gfx: NewMesh: %w", err)
	}

	m.staging = AppendIndexBytes(m.staging[:0], indices)
	ib, err := dev.CreateBufferInit(indexBufferLabel, gpu.IndexUsage, m.staging)
	if err != nil {
		vb.Release()
		return nil, fmt.Errorf("gfx: NewMesh: %w", err)
	}

	m.vertices, m.indices = vb, ib
	m.vertexCap, m.vertexCount = len(vertices), len(vertices)
	m.indexCap, m.indexCount = len(indices), len(indices)
	m.id = NextMeshID()

	Logger().Debug("gfx: mesh created", "id", m.id, "vertices", len(vertices), "indices", len(indices))
	return m, nil
}

// NewMeshFromData is NewMesh over the slices of d.
func NewMeshFromData(dev gpu.Device, d MeshData) (*Mesh, error) {
	return NewMesh(dev, d.Vertices, d.Indices)
}

// MustNewMesh is like NewMesh but panics if the device fails.
func MustNewMesh(dev gpu.Device, vertices []Vertex, indices []uint32) *Mesh {
	m, err := NewMesh(dev, vertices, indices)
	if err != nil {
		panic(err)
	}
	return m
}

// SetVertices replaces the mesh's vertices.
//
// When len(vertices) fits the vertex capacity the bytes are written into
// the existing buffer at offset 0; capacity and ID do not change. Otherwise
// a buffer of exactly len(vertices) is allocated, the old one is released
// and the mesh gets a new ID. If allocation or the write fails, the mesh's
// counts, capacities and ID are unchanged.
func (m *Mesh) SetVertices(dev gpu.Device, vertices []Vertex) error {
	if m.vertices == nil {
		return ErrMeshReleased
	}
	m.staging = AppendVertexBytes(m.staging[:0], vertices)
	buf, grown, err := m.update(dev, m.vertices, m.vertexCap, len(vertices), vertexBufferLabel, gpu.VertexUsage)
	if err != nil {
		return fmt.Errorf("gfx: Mesh.SetVertices: %w", err)
	}
	m.vertices = buf
	m.vertexCount = len(vertices)
	if grown {
		m.vertexCap = len(vertices)
	}
	return nil
}

// SetIndices replaces the mesh's indices, with the same capacity policy as
// SetVertices.
func (m *Mesh) SetIndices(dev gpu.Device, indices []uint32) error {
	if m.indices == nil {
		return ErrMeshReleased
	}
	m.staging = AppendIndexBytes(m.staging[:0], indices)
	buf, grown, err := m.update(dev, m.indices, m.indexCap, len(indices), indexBufferLabel, gpu.IndexUsage)
	if err != nil {
		return fmt.Errorf("gfx: Mesh.SetIndices: %w", err)
	}
	m.indices = buf
	m.indexCount = len(indices)
	if grown {
		m.indexCap = len(indices)
	}
	return nil
}

// update writes m.staging into cur when n elements fit capacity, or
// replaces cur with a new buffer holding it. It returns the buffer to keep.
func (m *Mesh) update(dev gpu.Device, cur *gpu.Buffer, capacity, n int, label string, usage gputypes.BufferUsage) (*gpu.Buffer, bool, error) {
	if dev == nil {
		return nil, false, gpu.ErrNilDevice
	}
	if n <= capacity {
		if len(m.staging) > 0 {
			if err := dev.WriteBuffer(cur, 0, m.staging); err != nil {
				return nil, false, err
			}
		}
		Logger().Debug("gfx: mesh updated in place", "id", m.id, "buffer", label, "count", n, "capacity", capacity)
		return cur, false, nil
	}

	buf, err := dev.CreateBufferInit(label, usage, m.staging)
	if err != nil {
		return nil, false, err
	}
	cur.Release()
	old := m.id
	m.id = NextMeshID()
	Logger().Debug("gfx: mesh reallocated", "old_id", old, "id", m.id, "buffer", label, "capacity", n)
	return buf, true, nil
}

// ID returns the mesh identity. It changes whenever a buffer is reallocated
// and is unique across all meshes in the process.
func (m *Mesh) ID() uint64 { return m.id }

// VertexBuffer returns the vertex buffer handle. Callers that keep it past
// the next update must Clone it.
func (m *Mesh) VertexBuffer() *gpu.Buffer { return m.vertices }

// IndexBuffer returns the index buffer handle. See VertexBuffer.
func (m *Mesh) IndexBuffer() *gpu.Buffer { return m.indices }

// VertexCount returns the number of vertices currently in use.
func (m *Mesh) VertexCount() int { return m.vertexCount }

// IndexCount returns the number of indices currently in use.
func (m *Mesh) IndexCount() int { return m.indexCount }

// VertexCapacity returns the number of vertices the vertex buffer holds.
func (m *Mesh) VertexCapacity() int { return m.vertexCap }

// IndexCapacity returns the number of indices the index buffer holds.
func (m *Mesh) IndexCapacity() int { return m.indexCap }

// Release drops the mesh's references to its buffers. Device buffers are
// destroyed once every clone handed out by DrawCall is released too.
// Release is idempotent.
func (m *Mesh) Release() {
	if m.vertices != nil {
		m.vertices.Release()
		m.vertices = nil
	}
	if m.indices != nil {
		m.indices.Release()
		m.indices = nil
	}
	m.staging = nil
}

// DrawCall is a snapshot of what a renderer needs to draw a mesh. It holds
// its own references to the buffers and must be released.
type DrawCall struct {
	VertexBuffer *gpu.Buffer
	IndexBuffer  *gpu.Buffer
	IndexFormat  gputypes.IndexFormat
	IndexCount   uint32
	MeshID       uint64
}

// DrawCall returns a snapshot of the mesh for drawing. It panics if the
// mesh was released.
func (m *Mesh) DrawCall() DrawCall {
	if m.vertices == nil {
		panic(ErrMeshReleased)
	}
	return DrawCall{
		VertexBuffer: m.vertices.Clone(),
		IndexBuffer:  m.indices.Clone(),
		IndexFormat:  gputypes.IndexFormatUint32,
		IndexCount:   uint32(m.indexCount), //nolint:gosec // indices are uint32-addressable
		MeshID:       m.id,
	}
}

// Release drops the draw call's buffer references.
func (d *DrawCall) Release() {
	if d.VertexBuffer != nil {
		d.VertexBuffer.Release()
		d.VertexBuffer = nil
	}
	if d.IndexBuffer != nil {
		d.IndexBuffer.Release()
		d.IndexBuffer = nil
	}
}
