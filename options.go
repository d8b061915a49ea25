package gfx

import "fmt"

// BuilderOption configures a MeshBuilder during creation.
//
// Example:
//
//	b := gfx.NewMeshBuilder(gfx.WithTolerance(0.05), gfx.WithCapacity(1024, 3072))
type BuilderOption func(*builderOptions)

type builderOptions struct {
	tolerance float64
	vertices  int
	indices   int
}

func defaultBuilderOptions() builderOptions {
	return builderOptions{tolerance: DefaultTolerance}
}

// DefaultTolerance is the flattening tolerance used when a DrawMode does
// not set one.
const DefaultTolerance = 0.1

// WithTolerance sets the flattening tolerance for draw modes that leave it
// unset: FillMode, StrokeMode and the zero DrawMode. Modes built with Fill
// or Stroke from options carrying a tolerance keep their own. It panics if
// tol is not positive.
func WithTolerance(tol float32) BuilderOption {
	mustPositiveTolerance("WithTolerance", tol)
	return func(o *builderOptions) {
		o.tolerance = float64(tol)
	}
}

// WithCapacity preallocates room for the given number of vertices and
// indices.
func WithCapacity(vertices, indices int) BuilderOption {
	return func(o *builderOptions) {
		o.vertices = max(vertices, 0)
		o.indices = max(indices, 0)
	}
}

// mustPositiveTolerance panics unless tol > 0. A non-positive (or NaN)
// tolerance cannot produce a finite tessellation and is a caller bug.
func mustPositiveTolerance(op string, tol float32) {
	if !(tol > 0) {
		panic(fmt.Sprintf("gfx: %s: tolerance must be positive, got %v", op, tol))
	}
}
