package gpu

import "errors"

var (
	// ErrNilDevice is returned when a HAL device is required but nil.
	ErrNilDevice = errors.New("gpu: device is nil")

	// ErrNilQueue is returned when a HAL queue is required but nil.
	ErrNilQueue = errors.New("gpu: queue is nil")

	// ErrNoHALProvider is returned when a device provider does not expose
	// HAL device and queue handles.
	ErrNoHALProvider = errors.New("gpu: provider does not expose HAL types")

	// ErrBufferReleased is returned when using a buffer handle after Release.
	ErrBufferReleased = errors.New("gpu: buffer has been released")
)
