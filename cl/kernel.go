// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package cl

import "unsafe"

// CreateKernel creates a kernel object for the named __kernel
// function in a built program.
func CreateKernel(prog Program, name string) (Kernel, error) {
	rt, err := loadRuntime()
	if err != nil {
		return 0, err
	}
	fn, err := rt.createKernel.get()
	if err != nil {
		return 0, err
	}
	var st int32
	krn := fn(prog, name, &st)
	if st != Success {
		return 0, Status(st)
	}
	return krn, nil
}

// CreateKernelsInProgram creates one kernel object per __kernel
// function in a built program.
func CreateKernelsInProgram(prog Program) ([]Kernel, error) {
	rt, err := loadRuntime()
	if err != nil {
		return nil, err
	}
	fn, err := rt.createKernelsInProgram.get()
	if err != nil {
		return nil, err
	}
	var n uint32
	if st := fn(prog, 0, nil, &n); st != Success {
		return nil, Status(st)
	}
	if n == 0 {
		return nil, nil
	}
	krns := make([]Kernel, n)
	if st := fn(prog, n, &krns[0], nil); st != Success {
		return nil, Status(st)
	}
	return krns, nil
}

// CloneKernel makes a copy of krn with its own argument bindings.
func CloneKernel(krn Kernel) (Kernel, error) {
	rt, err := loadRuntime()
	if err != nil {
		return 0, err
	}
	fn, err := rt.cloneKernel.get()
	if err != nil {
		return 0, err
	}
	var st int32
	clone := fn(krn, &st)
	if st != Success {
		return 0, Status(st)
	}
	return clone, nil
}

// RetainKernel increments the reference count of krn.
func RetainKernel(krn Kernel) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.retainKernel.get()
	if err != nil {
		return err
	}
	return statusErr(fn(krn))
}

// ReleaseKernel decrements the reference count of krn.
func ReleaseKernel(krn Kernel) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.releaseKernel.get()
	if err != nil {
		return err
	}
	return statusErr(fn(krn))
}

// SetKernelArg sets the argument at index to size bytes read from
// value. For __local arguments value must be nil; for memory
// objects it points to the Mem handle.
func SetKernelArg(krn Kernel, index uint32, size uintptr, value unsafe.Pointer) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.setKernelArg.get()
	if err != nil {
		return err
	}
	return statusErr(fn(krn, index, size, value))
}

// SetKernelArgSVMPointer sets a pointer argument to an SVM address.
func SetKernelArgSVMPointer(krn Kernel, index uint32, value unsafe.Pointer) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.setKernelArgSVMPointer.get()
	if err != nil {
		return err
	}
	return statusErr(fn(krn, index, value))
}

// SetKernelExecInfo passes execution hints to krn, such as the set
// of SVM pointers it may dereference indirectly.
func SetKernelExecInfo(krn Kernel, param uint32, size uintptr, value unsafe.Pointer) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.setKernelExecInfo.get()
	if err != nil {
		return err
	}
	return statusErr(fn(krn, param, size, value))
}

// GetKernelInfo returns the raw value of the given kernel
// parameter.
func GetKernelInfo(krn Kernel, param uint32) ([]byte, error) {
	rt, err := loadRuntime()
	if err != nil {
		return nil, err
	}
	fn, err := rt.getKernelInfo.get()
	if err != nil {
		return nil, err
	}
	return objInfo(fn, krn, param)
}

// GetKernelArgInfo returns the raw value of the given parameter of
// one kernel argument. Requires the program to have been built with
// -cl-kernel-arg-info.
func GetKernelArgInfo(krn Kernel, index, param uint32) ([]byte, error) {
	rt, err := loadRuntime()
	if err != nil {
		return nil, err
	}
	fn, err := rt.getKernelArgInfo.get()
	if err != nil {
		return nil, err
	}
	return getInfo(func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) int32 {
		return fn(krn, index, param, size, value, sizeRet)
	})
}

// GetKernelWorkGroupInfo returns the raw value of the given
// work-group parameter of krn on one device.
func GetKernelWorkGroupInfo(krn Kernel, device Device, param uint32) ([]byte, error) {
	rt, err := loadRuntime()
	if err != nil {
		return nil, err
	}
	fn, err := rt.getKernelWorkGroupInfo.get()
	if err != nil {
		return nil, err
	}
	return getInfo(func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) int32 {
		return fn(krn, device, param, size, value, sizeRet)
	})
}

// GetKernelSubGroupInfo returns the raw value of the given
// sub-group parameter of krn on one device. input is the
// parameter-specific input value and may be nil.
func GetKernelSubGroupInfo(krn Kernel, device Device, param uint32, input []byte) ([]byte, error) {
	rt, err := loadRuntime()
	if err != nil {
		return nil, err
	}
	fn, err := rt.getKernelSubGroupInfo.get()
	if err != nil {
		return nil, err
	}
	var in unsafe.Pointer
	if len(input) > 0 {
		in = unsafe.Pointer(&input[0])
	}
	return getInfo(func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) int32 {
		return fn(krn, device, param, uintptr(len(input)), in, size, value, sizeRet)
	})
}

// EnqueueNDRangeKernel enqueues a kernel over a workDim-dimensional
// index space. globalOffset and localSize may be nil; globalSize
// must have workDim elements.
func EnqueueNDRangeKernel(queue CommandQueue, krn Kernel, workDim uint32, globalOffset, globalSize, localSize []uintptr, waitList []Event, event *Event) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.enqueueNDRangeKernel.get()
	if err != nil {
		return err
	}
	n, wl := waitListArgs(waitList)
	return statusErr(fn(queue, krn, workDim, sizeTPtr(globalOffset), sizeTPtr(globalSize), sizeTPtr(localSize), n, wl, event))
}

// EnqueueNativeKernel enqueues a host function. userFunc must come
// from NewCallback; args is copied by the runtime, with each Mem in
// mems patched into the copy at the corresponding memLocs offset.
func EnqueueNativeKernel(queue CommandQueue, userFunc uintptr, args unsafe.Pointer, argsSize uintptr, mems []Mem, memLocs []unsafe.Pointer, waitList []Event, event *Event) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.enqueueNativeKernel.get()
	if err != nil {
		return err
	}
	var (
		memPtr *Mem
		locPtr *unsafe.Pointer
	)
	if len(mems) > 0 {
		memPtr = &mems[0]
	}
	if len(memLocs) > 0 {
		locPtr = &memLocs[0]
	}
	n, wl := waitListArgs(waitList)
	return statusErr(fn(queue, userFunc, args, argsSize, uint32(len(mems)), memPtr, locPtr, n, wl, event))
}

// EnqueueTask enqueues a kernel as a single work-item.
//
// Deprecated: as of OpenCL 2.0, use EnqueueNDRangeKernel with a
// 1x1x1 index space.
func EnqueueTask(queue CommandQueue, krn Kernel, waitList []Event, event *Event) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.enqueueTask.get()
	if err != nil {
		return err
	}
	n, wl := waitListArgs(waitList)
	return statusErr(fn(queue, krn, n, wl, event))
}
