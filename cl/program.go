// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package cl

import (
	"runtime"
	"unsafe"
)

// CreateProgramWithSource creates a program object from OpenCL C
// source strings, which are concatenated in order.
func CreateProgramWithSource(ctx Context, srcs []string) (Program, error) {
	rt, err := loadRuntime()
	if err != nil {
		return 0, err
	}
	fn, err := rt.createProgramWithSource.get()
	if err != nil {
		return 0, err
	}
	if len(srcs) == 0 {
		return 0, Status(InvalidValue)
	}
	ptrs := make([]*byte, len(srcs))
	lens := make([]uintptr, len(srcs))
	for i, s := range srcs {
		if s != "" {
			ptrs[i] = unsafe.StringData(s)
		}
		lens[i] = uintptr(len(s))
	}
	var st int32
	prog := fn(ctx, uint32(len(srcs)), &ptrs[0], &lens[0], &st)
	runtime.KeepAlive(srcs)
	runtime.KeepAlive(ptrs)
	if st != Success {
		return 0, Status(st)
	}
	return prog, nil
}

// CreateProgramWithBinary creates a program object from one
// pre-built binary per device. The returned status slice has one
// entry per device telling whether its binary loaded.
func CreateProgramWithBinary(ctx Context, devices []Device, binaries [][]byte) (Program, []int32, error) {
	rt, err := loadRuntime()
	if err != nil {
		return 0, nil, err
	}
	fn, err := rt.createProgramWithBinary.get()
	if err != nil {
		return 0, nil, err
	}
	if len(devices) == 0 || len(devices) != len(binaries) {
		return 0, nil, Status(InvalidValue)
	}
	ptrs := make([]*byte, len(binaries))
	lens := make([]uintptr, len(binaries))
	for i, b := range binaries {
		if len(b) > 0 {
			ptrs[i] = &b[0]
		}
		lens[i] = uintptr(len(b))
	}
	binStatus := make([]int32, len(devices))
	var st int32
	prog := fn(ctx, uint32(len(devices)), &devices[0], &lens[0], &ptrs[0], &binStatus[0], &st)
	runtime.KeepAlive(binaries)
	runtime.KeepAlive(ptrs)
	if st != Success {
		return 0, binStatus, Status(st)
	}
	return prog, binStatus, nil
}

// CreateProgramWithBuiltInKernels creates a program object from the
// semicolon-separated list of built-in kernel names.
func CreateProgramWithBuiltInKernels(ctx Context, devices []Device, kernelNames string) (Program, error) {
	rt, err := loadRuntime()
	if err != nil {
		return 0, err
	}
	fn, err := rt.createProgramWithBuiltInKernels.get()
	if err != nil {
		return 0, err
	}
	n, devs := devicesArgs(devices)
	var st int32
	prog := fn(ctx, n, devs, kernelNames, &st)
	if st != Success {
		return 0, Status(st)
	}
	return prog, nil
}

// CreateProgramWithIL creates a program object from an intermediate
// language binary (typically SPIR-V).
func CreateProgramWithIL(ctx Context, il []byte) (Program, error) {
	rt, err := loadRuntime()
	if err != nil {
		return 0, err
	}
	fn, err := rt.createProgramWithIL.get()
	if err != nil {
		return 0, err
	}
	if len(il) == 0 {
		return 0, Status(InvalidValue)
	}
	var st int32
	prog := fn(ctx, unsafe.Pointer(&il[0]), uintptr(len(il)), &st)
	runtime.KeepAlive(il)
	if st != Success {
		return 0, Status(st)
	}
	return prog, nil
}

// RetainProgram increments the reference count of prog.
func RetainProgram(prog Program) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.retainProgram.get()
	if err != nil {
		return err
	}
	return statusErr(fn(prog))
}

// ReleaseProgram decrements the reference count of prog.
func ReleaseProgram(prog Program) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.releaseProgram.get()
	if err != nil {
		return err
	}
	return statusErr(fn(prog))
}

// BuildProgram compiles and links prog for the given devices (or
// for all devices in its context when the list is empty).
// When pfnNotify is nonzero the build is asynchronous and the call
// returns before it finishes. Build logs are available through
// GetProgramBuildInfo regardless of the outcome.
func BuildProgram(prog Program, devices []Device, options string, pfnNotify uintptr, userData unsafe.Pointer) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.buildProgram.get()
	if err != nil {
		return err
	}
	n, devs := devicesArgs(devices)
	return statusErr(fn(prog, n, devs, options, pfnNotify, userData))
}

// CompileProgram compiles prog's source, resolving #include
// directives against the named header programs.
func CompileProgram(prog Program, devices []Device, options string, headers []Program, headerNames []string, pfnNotify uintptr, userData unsafe.Pointer) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.compileProgram.get()
	if err != nil {
		return err
	}
	if len(headers) != len(headerNames) {
		return Status(InvalidValue)
	}
	var (
		hdrs  *Program
		names **byte
	)
	var nameBytes [][]byte
	if len(headers) > 0 {
		hdrs = &headers[0]
		// Header names must be NUL-terminated C strings.
		nameBytes = make([][]byte, len(headerNames))
		namePtrs := make([]*byte, len(headerNames))
		for i, s := range headerNames {
			nameBytes[i] = append([]byte(s), 0)
			namePtrs[i] = &nameBytes[i][0]
		}
		names = &namePtrs[0]
	}
	n, devs := devicesArgs(devices)
	st := fn(prog, n, devs, options, uint32(len(headers)), hdrs, names, pfnNotify, userData)
	runtime.KeepAlive(nameBytes)
	return statusErr(st)
}

// LinkProgram links compiled programs and libraries into a new
// executable program for the given devices.
func LinkProgram(ctx Context, devices []Device, options string, programs []Program, pfnNotify uintptr, userData unsafe.Pointer) (Program, error) {
	rt, err := loadRuntime()
	if err != nil {
		return 0, err
	}
	fn, err := rt.linkProgram.get()
	if err != nil {
		return 0, err
	}
	var progs *Program
	if len(programs) > 0 {
		progs = &programs[0]
	}
	n, devs := devicesArgs(devices)
	var st int32
	prog := fn(ctx, n, devs, options, uint32(len(programs)), progs, pfnNotify, userData, &st)
	if st != Success {
		return 0, Status(st)
	}
	return prog, nil
}

// SetProgramReleaseCallback registers a callback to run when prog
// is destroyed.
//
// Deprecated: as of OpenCL 3.0 this entry point is optional and
// most runtimes reject it.
func SetProgramReleaseCallback(prog Program, pfnNotify uintptr, userData unsafe.Pointer) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.setProgramReleaseCallback.get()
	if err != nil {
		return err
	}
	return statusErr(fn(prog, pfnNotify, userData))
}

// SetProgramSpecializationConstant sets the value of a SPIR-V
// specialization constant before the program is built.
func SetProgramSpecializationConstant(prog Program, specID uint32, specSize uintptr, specValue unsafe.Pointer) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.setProgramSpecializationConstant.get()
	if err != nil {
		return err
	}
	return statusErr(fn(prog, specID, specSize, specValue))
}

// UnloadPlatformCompiler hints that the platform's compiler may be
// unloaded to reclaim resources.
func UnloadPlatformCompiler(platform Platform) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.unloadPlatformCompiler.get()
	if err != nil {
		return err
	}
	return statusErr(fn(platform))
}

// GetProgramInfo returns the raw value of the given program
// parameter.
func GetProgramInfo(prog Program, param uint32) ([]byte, error) {
	rt, err := loadRuntime()
	if err != nil {
		return nil, err
	}
	fn, err := rt.getProgramInfo.get()
	if err != nil {
		return nil, err
	}
	return objInfo(fn, prog, param)
}

// GetProgramBuildInfo returns the raw value of the given build
// parameter for one device, the build log in particular.
func GetProgramBuildInfo(prog Program, device Device, param uint32) ([]byte, error) {
	rt, err := loadRuntime()
	if err != nil {
		return nil, err
	}
	fn, err := rt.getProgramBuildInfo.get()
	if err != nil {
		return nil, err
	}
	return getInfo(func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) int32 {
		return fn(prog, device, param, size, value, sizeRet)
	})
}

// UnloadCompiler hints that the compiler may be unloaded.
//
// Deprecated: as of OpenCL 1.2, use UnloadPlatformCompiler.
func UnloadCompiler() error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.unloadCompiler.get()
	if err != nil {
		return err
	}
	return statusErr(fn())
}
