package gfx

import "sync/atomic"

var nextMeshID atomic.Uint64

// NextMeshID returns a process-wide unique mesh identity. Values increase
// monotonically within one goroutine; concurrent callers never get the
// same value.
func NextMeshID() uint64 {
	return nextMeshID.Add(1) - 1
}
