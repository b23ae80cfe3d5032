// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package cl

import "unsafe"

// CreateContext creates a context over the given devices.
// props is a zero-terminated cl_context_properties list and may be
// nil. pfnNotify, if nonzero, must come from NewCallback.
func CreateContext(props []uintptr, devices []Device, pfnNotify uintptr, userData unsafe.Pointer) (Context, error) {
	rt, err := loadRuntime()
	if err != nil {
		return 0, err
	}
	fn, err := rt.createContext.get()
	if err != nil {
		return 0, err
	}
	n, devs := devicesArgs(devices)
	var st int32
	ctx := fn(ctxPropsPtr(props), n, devs, pfnNotify, userData, &st)
	if st != Success {
		return 0, Status(st)
	}
	return ctx, nil
}

// CreateContextFromType creates a context over all devices of the
// given type.
func CreateContextFromType(props []uintptr, devType uint64, pfnNotify uintptr, userData unsafe.Pointer) (Context, error) {
	rt, err := loadRuntime()
	if err != nil {
		return 0, err
	}
	fn, err := rt.createContextFromType.get()
	if err != nil {
		return 0, err
	}
	var st int32
	ctx := fn(ctxPropsPtr(props), devType, pfnNotify, userData, &st)
	if st != Success {
		return 0, Status(st)
	}
	return ctx, nil
}

// RetainContext increments the reference count of ctx.
func RetainContext(ctx Context) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.retainContext.get()
	if err != nil {
		return err
	}
	return statusErr(fn(ctx))
}

// ReleaseContext decrements the reference count of ctx.
func ReleaseContext(ctx Context) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.releaseContext.get()
	if err != nil {
		return err
	}
	return statusErr(fn(ctx))
}

// GetContextInfo returns the raw value of the given context
// parameter.
func GetContextInfo(ctx Context, param uint32) ([]byte, error) {
	rt, err := loadRuntime()
	if err != nil {
		return nil, err
	}
	fn, err := rt.getContextInfo.get()
	if err != nil {
		return nil, err
	}
	return objInfo(fn, ctx, param)
}

// SetContextDestructorCallback registers a callback to run when ctx
// is destroyed. Requires OpenCL 3.0.
func SetContextDestructorCallback(ctx Context, pfnNotify uintptr, userData unsafe.Pointer) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.setContextDestructorCallback.get()
	if err != nil {
		return err
	}
	return statusErr(fn(ctx, pfnNotify, userData))
}
