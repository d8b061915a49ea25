package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal/noop"
)

// OpenNoopDevice opens a device on the noop HAL backend, which accepts
// every call and renders nothing. It is meant for headless tools and
// tests. The returned function closes the device.
func OpenNoopDevice(opts ...Option) (*HALDevice, func(), error) {
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		return nil, nil, fmt.Errorf("gpu: noop instance: %w", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, nil, errors.New("gpu: noop backend reported no adapters")
	}
	open, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, nil, fmt.Errorf("gpu: open noop adapter: %w", err)
	}
	dev, err := NewHALDevice(open.Device, open.Queue, opts...)
	if err != nil {
		open.Device.Destroy()
		instance.Destroy()
		return nil, nil, err
	}
	closeFn := func() {
		open.Device.Destroy()
		instance.Destroy()
	}
	return dev, closeFn, nil
}
