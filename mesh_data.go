package gfx

import "fmt"

// MeshData is a read-only view of triangle-list geometry, as returned by
// MeshBuilder.Build. It does not own its slices.
type MeshData struct {
	Vertices []Vertex
	Indices  []uint32
}

// Validate reports whether d is a well-formed triangle list: the index
// count is a multiple of 3 and every index refers to a vertex.
func (d MeshData) Validate() error {
	if len(d.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices is not a multiple of 3", ErrInvalidMeshData, len(d.Indices))
	}
	n := uint64(len(d.Vertices))
	for i, idx := range d.Indices {
		if uint64(idx) >= n {
			return fmt.Errorf("%w: index %d at position %d out of range for %d vertices",
				ErrInvalidMeshData, idx, i, n)
		}
	}
	return nil
}

// Triangles returns the number of triangles in d.
func (d MeshData) Triangles() int {
	return len(d.Indices) / 3
}

// Bounds returns the smallest rectangle containing every vertex, and false
// when d has no vertices.
func (d MeshData) Bounds() (Rect, bool) {
	if len(d.Vertices) == 0 {
		return Rect{}, false
	}
	lo, hi := d.Vertices[0].Point(), d.Vertices[0].Point()
	for _, v := range d.Vertices[1:] {
		p := v.Point()
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}
	return Rect{X: lo.X, Y: lo.Y, W: hi.X - lo.X, H: hi.Y - lo.Y}, true
}
