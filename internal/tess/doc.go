// Package tess turns 2D shapes into indexed triangle lists.
//
// Two tessellators are provided:
//   - FillTessellator: triangulates the interior of a closed contour
//   - StrokeTessellator: builds a bounded-width outline along a path
//
// # Output
//
// Tessellators never allocate output storage themselves. They write through a
// geometry builder (FillGeometryBuilder or StrokeGeometryBuilder) which turns
// each emitted position into a caller-defined vertex type and records triangle
// indices. BuffersBuilder is the standard builder: it appends to a
// VertexBuffers accumulator and returns indices that are absolute into the
// whole accumulator, so several tessellations can share one vertex/index pair.
//
// # Tolerance
//
// Curves (circles, ellipses, round joins and caps, rounded corners) are
// flattened into line segments. The tolerance is the maximum distance between
// the true curve and its polyline approximation. It must be strictly positive.
//
// # Errors
//
// Geometrically invalid input (non-finite coordinates, a contour ear
// clipping cannot resolve, or an output that would overflow 32-bit indices) is reported as ErrInvalidGeometry
// or ErrTooManyVertices, and everything the failed call emitted is discarded
// via AbortGeometry. Degenerate but harmless input (zero radius, zero area,
// fewer than three distinct points for a fill) produces no geometry and no
// error.
package tess
