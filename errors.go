package gfx

import "errors"

// Validation errors returned by MeshBuilder. The builder is left unchanged
// when one is returned.
var (
	// ErrTooFewPoints is returned when a shape gets fewer points than it
	// needs. The message names the minimum.
	ErrTooFewPoints = errors.New("gfx: too few points")

	// ErrTriangleCount is returned by Triangles when the number of points
	// is not a multiple of 3.
	ErrTriangleCount = errors.New("gfx: triangle point count is not a multiple of 3")

	// ErrInvalidMeshData is returned by MeshData.Validate.
	ErrInvalidMeshData = errors.New("gfx: invalid mesh data")
)
