// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"fmt"
	"sync/atomic"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// nextBufferID hands out allocation IDs, starting at 1.
var nextBufferID atomic.Uint64

// allocation is one device buffer shared by every handle cloned from it.
type allocation struct {
	id      uint64
	label   string
	size    uint64
	usage   gputypes.BufferUsage
	raw     hal.Buffer
	refs    atomic.Int64
	destroy func()
}

// Buffer is a reference-counted handle to a device buffer.
//
// Each handle owns one reference. Clone creates another handle, Release
// gives a handle's reference back; releasing a handle twice is a no-op.
// The device buffer is destroyed exactly once, when the last reference goes.
// Handles are safe to Clone and Release from multiple goroutines.
type Buffer struct {
	alloc    *allocation
	released atomic.Bool
}

// NewBuffer wraps a freshly created device buffer in a handle holding the
// only reference. raw may be nil for devices that do not go through the HAL.
// destroy is called once, when the last reference is released.
//
// Device implementations call this; users get buffers from Device.
func NewBuffer(label string, size uint64, usage gputypes.BufferUsage, raw hal.Buffer, destroy func()) *Buffer {
	a := &allocation{
		id:      nextBufferID.Add(1),
		label:   label,
		size:    size,
		usage:   usage,
		raw:     raw,
		destroy: destroy,
	}
	a.refs.Store(1)
	return &Buffer{alloc: a}
}

// ID identifies the device allocation. Clones share it.
func (b *Buffer) ID() uint64 { return b.alloc.id }

// Label returns the debug label.
func (b *Buffer) Label() string { return b.alloc.label }

// Size returns the allocated size in bytes.
func (b *Buffer) Size() uint64 { return b.alloc.size }

// Usage returns the usage flags the buffer was created with.
func (b *Buffer) Usage() gputypes.BufferUsage { return b.alloc.usage }

// Raw returns the underlying HAL buffer, or nil if the device is not
// HAL-backed or the handle was released.
func (b *Buffer) Raw() hal.Buffer {
	if b.released.Load() {
		return nil
	}
	return b.alloc.raw
}

// Refs returns the number of live handles sharing the allocation.
func (b *Buffer) Refs() int64 { return b.alloc.refs.Load() }

// Released reports whether this handle has been released.
func (b *Buffer) Released() bool { return b.released.Load() }

// SameAllocation reports whether b and o refer to the same device buffer.
func (b *Buffer) SameAllocation(o *Buffer) bool {
	return b != nil && o != nil && b.alloc == o.alloc
}

// Clone returns a new handle to the same allocation.
// It panics if b was already released.
func (b *Buffer) Clone() *Buffer {
	if b.released.Load() {
		panic(fmt.Errorf("%w: clone of %q", ErrBufferReleased, b.alloc.label))
	}
	b.alloc.refs.Add(1)
	return &Buffer{alloc: b.alloc}
}

// Release drops this handle's reference.
func (b *Buffer) Release() {
	if b == nil || !b.released.CompareAndSwap(false, true) {
		return
	}
	if b.alloc.refs.Add(-1) == 0 {
		slogger().Debug("gpu: destroy buffer", "id", b.alloc.id, "label", b.alloc.label, "size", b.alloc.size)
		if b.alloc.destroy != nil {
			b.alloc.destroy()
		}
	}
}

// String returns a short description for logs.
func (b *Buffer) String() string {
	return fmt.Sprintf("Buffer(%d %q, %d bytes, refs=%d)", b.alloc.id, b.alloc.label, b.alloc.size, b.alloc.refs.Load())
}
