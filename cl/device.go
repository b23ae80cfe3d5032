// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package cl

// GetDeviceIDs returns the devices of the given type available on
// platform.
func GetDeviceIDs(platform Platform, devType uint64) ([]Device, error) {
	rt, err := loadRuntime()
	if err != nil {
		return nil, err
	}
	fn, err := rt.getDeviceIDs.get()
	if err != nil {
		return nil, err
	}
	var n uint32
	if st := fn(platform, devType, 0, nil, &n); st != Success {
		return nil, Status(st)
	}
	if n == 0 {
		return nil, nil
	}
	ids := make([]Device, n)
	if st := fn(platform, devType, n, &ids[0], nil); st != Success {
		return nil, Status(st)
	}
	return ids, nil
}

// GetDeviceInfo returns the raw value of the given device
// parameter. Use InfoString/InfoValue to interpret it.
func GetDeviceInfo(device Device, param uint32) ([]byte, error) {
	rt, err := loadRuntime()
	if err != nil {
		return nil, err
	}
	fn, err := rt.getDeviceInfo.get()
	if err != nil {
		return nil, err
	}
	return objInfo(fn, device, param)
}

// CreateSubDevices partitions device according to the
// zero-terminated property list.
func CreateSubDevices(device Device, props []uintptr) ([]Device, error) {
	rt, err := loadRuntime()
	if err != nil {
		return nil, err
	}
	fn, err := rt.createSubDevices.get()
	if err != nil {
		return nil, err
	}
	var n uint32
	if st := fn(device, ctxPropsPtr(props), 0, nil, &n); st != Success {
		return nil, Status(st)
	}
	if n == 0 {
		return nil, nil
	}
	subs := make([]Device, n)
	if st := fn(device, ctxPropsPtr(props), n, &subs[0], nil); st != Success {
		return nil, Status(st)
	}
	return subs, nil
}

// RetainDevice increments the reference count of a sub-device.
func RetainDevice(device Device) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.retainDevice.get()
	if err != nil {
		return err
	}
	return statusErr(fn(device))
}

// ReleaseDevice decrements the reference count of a sub-device.
func ReleaseDevice(device Device) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.releaseDevice.get()
	if err != nil {
		return err
	}
	return statusErr(fn(device))
}

// SetDefaultDeviceCommandQueue replaces the default device queue of
// device in ctx.
func SetDefaultDeviceCommandQueue(ctx Context, device Device, queue CommandQueue) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.setDefaultDeviceCommandQueue.get()
	if err != nil {
		return err
	}
	return statusErr(fn(ctx, device, queue))
}

// GetDeviceAndHostTimer returns a synchronized pair of device and
// host timestamps.
func GetDeviceAndHostTimer(device Device) (devTime, hostTime uint64, err error) {
	rt, err := loadRuntime()
	if err != nil {
		return 0, 0, err
	}
	fn, err := rt.getDeviceAndHostTimer.get()
	if err != nil {
		return 0, 0, err
	}
	if st := fn(device, &devTime, &hostTime); st != Success {
		return 0, 0, Status(st)
	}
	return devTime, hostTime, nil
}

// GetHostTimer returns the current host clock as seen by device.
func GetHostTimer(device Device) (uint64, error) {
	rt, err := loadRuntime()
	if err != nil {
		return 0, err
	}
	fn, err := rt.getHostTimer.get()
	if err != nil {
		return 0, err
	}
	var t uint64
	if st := fn(device, &t); st != Success {
		return 0, Status(st)
	}
	return t, nil
}
