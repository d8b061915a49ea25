// Package gfx turns 2D shape descriptions into GPU-resident triangle meshes.
//
// # Overview
//
// A MeshBuilder accumulates geometry: lines, polylines, polygons, circles,
// ellipses, rectangles, rounded rectangles and raw triangle lists. Shapes
// are tessellated into triangles as they are added; every call appends to
// the same vertex and index sequences, so one builder can hold a whole
// scene layer. Build returns a view of the accumulated data, which NewMesh
// uploads to a device as a vertex buffer and an index buffer.
//
//	b := gfx.NewMeshBuilder()
//	b.Circle(gfx.FillMode(), gfx.Pt(100, 100), 40, 0.1, gfx.Red)
//	if _, err := b.Polyline(gfx.StrokeMode(2), pts, gfx.White); err != nil {
//		return err
//	}
//	mesh, err := gfx.NewMeshFromData(dev, b.Build())
//
// # Updating meshes
//
// Mesh.SetVertices and Mesh.SetIndices rewrite a mesh in place while the
// new data fits the current buffers. Larger data replaces the buffer and
// gives the mesh a new identity (Mesh.ID). Renderers that cache
// per-mesh state, such as bind groups, key it by ID so a reallocated mesh
// misses the cache instead of drawing from a stale buffer; see BindingCache.
//
// # Vertex format
//
// Every vertex is 32 bytes: position (2×float32) at offset 0, UV
// (2×float32) at offset 8 and linear RGBA color (4×float32) at offset 16.
// VertexLayout describes it for pipeline creation and ShaderSource is a
// matching WGSL shader.
//
// # Logging
//
// gfx is silent by default. SetLogger enables structured logging through
// log/slog for gfx and the gpu package.
package gfx
