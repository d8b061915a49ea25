// Package gpu is the graphics device service meshes upload through.
//
// A Device creates buffers initialized with data and overwrites buffer
// contents in place. HALDevice implements Device on top of a gogpu/wgpu HAL
// device and queue, either opened directly or borrowed from a host
// application through a gpucontext.DeviceProvider.
//
// Buffers are shared handles. Clone hands out another reference to the same
// device allocation and Release drops one; the allocation is destroyed when
// the last reference is released. This lets a renderer keep drawing from a
// buffer it was handed even after the owning mesh replaced it.
//
//	dev, err := gpu.NewHALDevice(halDevice, halQueue)
//	buf, err := dev.CreateBufferInit("mesh vertices", gpu.VertexUsage, data)
//	defer buf.Release()
//	err = dev.WriteBuffer(buf, 0, newData)
package gpu
