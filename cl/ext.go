// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package cl

import "unsafe"

// GetExtensionFunctionAddressForPlatform returns the address of an
// extension entry point, or 0 when the platform does not export it.
// Pass the result to RegisterExtensionFunc to make it callable.
func GetExtensionFunctionAddressForPlatform(platform Platform, name string) (uintptr, error) {
	rt, err := loadRuntime()
	if err != nil {
		return 0, err
	}
	fn, err := rt.getExtensionFunctionAddressForPlatform.get()
	if err != nil {
		return 0, err
	}
	return fn(platform, name), nil
}

// GetExtensionFunctionAddress returns the address of an extension
// entry point.
//
// Deprecated: as of OpenCL 1.2, use
// GetExtensionFunctionAddressForPlatform.
func GetExtensionFunctionAddress(name string) (uintptr, error) {
	rt, err := loadRuntime()
	if err != nil {
		return 0, err
	}
	fn, err := rt.getExtensionFunctionAddress.get()
	if err != nil {
		return 0, err
	}
	return fn(name), nil
}

// RegisterExtensionFunc makes an extension function address
// callable through fptr, which must be a pointer to a function
// variable whose signature matches the extension's C signature.
func RegisterExtensionFunc(fptr any, addr uintptr) {
	registerFunc(fptr, addr)
}

// IcdGetPlatformIDsKHR returns the platforms known to the ICD
// loader (cl_khr_icd).
func IcdGetPlatformIDsKHR() ([]Platform, error) {
	rt, err := loadRuntime()
	if err != nil {
		return nil, err
	}
	fn, err := rt.icdGetPlatformIDsKHR.get()
	if err != nil {
		return nil, err
	}
	var n uint32
	if st := fn(0, nil, &n); st != Success {
		return nil, Status(st)
	}
	if n == 0 {
		return nil, nil
	}
	ids := make([]Platform, n)
	if st := fn(n, &ids[0], nil); st != Success {
		return nil, Status(st)
	}
	return ids, nil
}

// GetICDLoaderInfoOCLICD returns the raw value of the given ICD
// loader parameter (cl_loader_info).
func GetICDLoaderInfoOCLICD(param uint32) ([]byte, error) {
	rt, err := loadRuntime()
	if err != nil {
		return nil, err
	}
	fn, err := rt.getICDLoaderInfoOCLICD.get()
	if err != nil {
		return nil, err
	}
	return getInfo(func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) int32 {
		return fn(param, size, value, sizeRet)
	})
}

// TerminateContextKHR terminates a context created with the
// CL_CONTEXT_TERMINATE_KHR property enabled
// (cl_khr_terminate_context).
func TerminateContextKHR(ctx Context) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.terminateContextKHR.get()
	if err != nil {
		return err
	}
	return statusErr(fn(ctx))
}

// CreateCommandQueueWithPropertiesKHR is the
// cl_khr_create_command_queue backport of
// CreateCommandQueueWithProperties to OpenCL 1.x platforms.
func CreateCommandQueueWithPropertiesKHR(ctx Context, device Device, props []uint64) (CommandQueue, error) {
	rt, err := loadRuntime()
	if err != nil {
		return 0, err
	}
	fn, err := rt.createCommandQueueWithPropertiesKHR.get()
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
