// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package cl

// CreateCommandQueueWithProperties creates a host or device command
// queue on device. props is a zero-terminated cl_queue_properties
// list and may be nil.
func CreateCommandQueueWithProperties(ctx Context, device Device, props []uint64) (CommandQueue, error) {
	rt, err := loadRuntime()
	if err != nil {
		return 0, err
	}
	fn, err := rt.createCommandQueueWithProperties.get()
	if err != nil {
		return 0, err
	}
	var st int32
	queue := fn(ctx, device, propsPtr(props), &st)
	if st != Success {
		return 0, Status(st)
	}
	return queue, nil
}

// RetainCommandQueue increments the reference count of queue.
func RetainCommandQueue(queue CommandQueue) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.retainCommandQueue.get()
	if err != nil {
		return err
	}
	return statusErr(fn(queue))
}

// ReleaseCommandQueue decrements the reference count of queue.
func ReleaseCommandQueue(queue CommandQueue) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.releaseCommandQueue.get()
	if err != nil {
		return err
	}
	return statusErr(fn(queue))
}

// GetCommandQueueInfo returns the raw value of the given queue
// parameter.
func GetCommandQueueInfo(queue CommandQueue, param uint32) ([]byte, error) {
	rt, err := loadRuntime()
	if err != nil {
		return nil, err
	}
	fn, err := rt.getCommandQueueInfo.get()
	if err != nil {
		return nil, err
	}
	return objInfo(fn, queue, param)
}

// Flush submits all previously queued commands to the device.
func Flush(queue CommandQueue) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.flush.get()
	if err != nil {
		return err
	}
	return statusErr(fn(queue))
}

// Finish blocks until all previously queued commands have completed.
func Finish(queue CommandQueue) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.finish.get()
	if err != nil {
		return err
	}
	return statusErr(fn(queue))
}

// CreateCommandQueue creates an in-order command queue.
//
// Deprecated: as of OpenCL 2.0, use
// CreateCommandQueueWithProperties. It remains the only choice on
// 1.x drivers.
func CreateCommandQueue(ctx Context, device Device, props uint64) (CommandQueue, error) {
	rt, err := loadRuntime()
	if err != nil {
		return 0, err
	}
	fn, err := rt.createCommandQueue.get()
	if err != nil {
		return 0, err
	}
	var st int32
	queue := fn(ctx, device, props, &st)
	if st != Success {
		return 0, Status(st)
	}
	return queue, nil
}
