package gpu

import "github.com/gogpu/gputypes"

// Usage classes for mesh buffers. Both allow in-place updates via WriteBuffer.
var (
	VertexUsage = gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst
	IndexUsage  = gputypes.BufferUsageIndex | gputypes.BufferUsageCopyDst
)

// Device creates and updates GPU buffers.
type Device interface {
	// CreateBufferInit creates a buffer holding contents. Zero-length
	// contents still produce a valid, minimally sized buffer.
	CreateBufferInit(label string, usage gputypes.BufferUsage, contents []byte) (*Buffer, error)

	// WriteBuffer overwrites buf starting at offset. offset+len(data) must
	// not exceed the buffer size. Writing to a released handle returns
	// ErrBufferReleased.
	WriteBuffer(buf *Buffer, offset uint64, data []byte) error
}
