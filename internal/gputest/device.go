// Package gputest provides an in-memory gpu.Device that records every
// buffer operation, for tests that need to inspect uploaded bytes.
package gputest

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gfx/gpu"
	"github.com/gogpu/gputypes"
)

// ErrInjected is returned by CreateBufferInit after FailNextCreate or
// FailLabel, and by WriteBuffer after FailNextWrite.
var ErrInjected = errors.New("gputest: injected create failure")

// Device is a recording gpu.Device backed by byte slices.
type Device struct {
	mu        sync.Mutex
	contents  map[uint64][]byte
	creates   int
	writes    int
	destroys  int
	failNext  int
	failWrite int
	failLabel string
	lastLabel string
}

// NewDevice returns an empty recording device.
func NewDevice() *Device {
	return &Device{contents: make(map[uint64][]byte)}
}

// FailNextCreate makes the next n CreateBufferInit calls fail.
func (d *Device) FailNextCreate(n int) {
	d.mu.Lock()
	d.failNext = n
	d.mu.Unlock()
}

// FailNextWrite makes the next n WriteBuffer calls fail without writing.
func (d *Device) FailNextWrite(n int) {
	d.mu.Lock()
	d.failWrite = n
	d.mu.Unlock()
}

// FailLabel makes the next CreateBufferInit call for label fail.
func (d *Device) FailLabel(label string) {
	d.mu.Lock()
	d.failLabel = label
	d.mu.Unlock()
}

// CreateBufferInit implements gpu.Device.
func (d *Device) CreateBufferInit(label string, usage gputypes.BufferUsage, contents []byte) (*gpu.Buffer, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.failNext > 0 {
		d.failNext--
		return nil, fmt.Errorf("create %q: %w", label, ErrInjected)
	}
	if d.failLabel != "" && d.failLabel == label {
		d.failLabel = ""
		return nil, fmt.Errorf("create %q: %w", label, ErrInjected)
	}
	d.creates++
	d.lastLabel = label

	size := max(uint64(len(contents)+3)&^3, 4)
	data := make([]byte, size)
	copy(data, contents)

	var buf *gpu.Buffer
	buf = gpu.NewBuffer(label, size, usage, nil, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		d.destroys++
		delete(d.contents, buf.ID())
	})
	d.contents[buf.ID()] = data
	return buf, nil
}

// WriteBuffer implements gpu.Device. It panics when the write runs past the
// end of the buffer, which on a real device is a validation error.
func (d *Device) WriteBuffer(buf *gpu.Buffer, offset uint64, data []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if buf.Released() {
		return fmt.Errorf("gputest: write to %v: %w", buf, gpu.ErrBufferReleased)
	}
	if d.failWrite > 0 {
		d.failWrite--
		return fmt.Errorf("write %q: %w", buf.Label(), ErrInjected)
	}
	dst, ok := d.contents[buf.ID()]
	if !ok {
		panic(fmt.Sprintf("gputest: write to unknown %v", buf))
	}
	if offset+uint64(len(data)) > uint64(len(dst)) {
		panic(fmt.Sprintf("gputest: write of %d bytes at %d overflows %v", len(data), offset, buf))
	}
	copy(dst[offset:], data)
	d.writes++
	return nil
}

// Contents returns a copy of the bytes held by buf's allocation.
func (d *Device) Contents(buf *gpu.Buffer) []byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]byte(nil), d.contents[buf.ID()]...)
}

// Live returns the number of allocations not yet destroyed.
func (d *Device) Live() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.contents)
}

// Stats returns the number of creates, writes and destroys so far.
func (d *Device) Stats() (creates, writes, destroys int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.creates, d.writes, d.destroys
}

// LastLabel returns the label of the most recently created buffer.
func (d *Device) LastLabel() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastLabel
}
