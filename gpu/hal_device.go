// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// copyBufferAlignment is the granularity of buffer sizes and queue writes.
const copyBufferAlignment uint64 = 4

// HALDevice implements Device on a HAL device and queue.
//
// HALDevice does not own the device or queue; whoever opened them destroys
// them after every buffer created here has been released. It is safe for
// concurrent use.
type HALDevice struct {
	device      hal.Device
	queue       hal.Queue
	labelPrefix string
}

// Option configures a HALDevice.
type Option func(*HALDevice)

// WithLabelPrefix prepends prefix to every buffer label, so buffers of one
// subsystem are easy to spot in GPU debuggers.
func WithLabelPrefix(prefix string) Option {
	return func(d *HALDevice) {
		d.labelPrefix = prefix
	}
}

// NewHALDevice returns a Device backed by device and queue.
func NewHALDevice(device hal.Device, queue hal.Queue, opts ...Option) (*HALDevice, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if queue == nil {
		return nil, ErrNilQueue
	}
	d := &HALDevice{device: device, queue: queue}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// NewHALDeviceFromProvider borrows the HAL device and queue of a host
// application. The provider must implement HalDevice() any and
// HalQueue() any returning hal.Device and hal.Queue.
func NewHALDeviceFromProvider(provider gpucontext.DeviceProvider, opts ...Option) (*HALDevice, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrNoHALProvider
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrNoHALProvider)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrNoHALProvider)
	}
	return NewHALDevice(device, queue, opts...)
}

// HalDevice returns the underlying HAL device.
func (d *HALDevice) HalDevice() hal.Device { return d.device }

// HalQueue returns the underlying HAL queue.
func (d *HALDevice) HalQueue() hal.Queue { return d.queue }

// CreateBufferInit creates a buffer of len(contents) bytes, rounded up to
// the copy alignment with a minimum of 4, and uploads contents into it.
func (d *HALDevice) CreateBufferInit(label string, usage gputypes.BufferUsage, contents []byte) (*Buffer, error) {
	label = d.labelPrefix + label
	size := max(alignUp(uint64(len(contents))), copyBufferAlignment)

	raw, err := d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  size,
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create buffer %q (%d bytes): %w", label, size, err)
	}
	if len(contents) > 0 {
		if err := d.queue.WriteBuffer(raw, 0, padded(contents)); err != nil {
			d.device.DestroyBuffer(raw)
			return nil, fmt.Errorf("gpu: upload buffer %q: %w", label, err)
		}
	}
	slogger().Debug("gpu: create buffer", "label", label, "size", size, "data", len(contents))

	device := d.device
	return NewBuffer(label, size, usage, raw, func() { device.DestroyBuffer(raw) }), nil
}

// WriteBuffer uploads data into buf at offset. Data is padded with zeros to
// the copy alignment.
func (d *HALDevice) WriteBuffer(buf *Buffer, offset uint64, data []byte) error {
	raw := buf.Raw()
	if raw == nil {
		return fmt.Errorf("%w: %q", ErrBufferReleased, buf.Label())
	}
	if len(data) == 0 {
		return nil
	}
	if err := d.queue.WriteBuffer(raw, offset, padded(data)); err != nil {
		return fmt.Errorf("gpu: write buffer %q at %d: %w", buf.Label(), offset, err)
	}
	return nil
}

// CreateShaderModule creates a shader module from SPIR-V words.
func (d *HALDevice) CreateShaderModule(label string, spirv []uint32) (hal.ShaderModule, error) {
	label = d.labelPrefix + label
	module, err := d.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  label,
		Source: hal.ShaderSource{SPIRV: spirv},
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create shader module %q: %w", label, err)
	}
	slogger().Debug("gpu: create shader module", "label", label, "words", len(spirv))
	return module, nil
}

// DestroyShaderModule destroys a module created by CreateShaderModule.
func (d *HALDevice) DestroyShaderModule(module hal.ShaderModule) {
	if module != nil {
		d.device.DestroyShaderModule(module)
	}
}

func alignUp(n uint64) uint64 {
	return (n + copyBufferAlignment - 1) &^ (copyBufferAlignment - 1)
}

// padded returns data extended with zeros to a multiple of the copy
// alignment. data itself is returned when already aligned.
func padded(data []byte) []byte {
	n := alignUp(uint64(len(data)))
	if n == uint64(len(data)) {
		return data
	}
	out := make([]byte, n)
	copy(out, data)
	return out
}
