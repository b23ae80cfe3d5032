// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package cl

import "unsafe"

// SVMAlloc allocates a shared virtual memory buffer of size bytes.
// alignment must be a power of two (or zero for the largest
// supported data type). Returns nil when the allocation fails; SVM
// allocation reports no status code.
func SVMAlloc(ctx Context, flags uint64, size uintptr, alignment uint32) (unsafe.Pointer, error) {
	rt, err := loadRuntime()
	if err != nil {
		return nil, err
	}
	fn, err := rt.svmAlloc.get()
	if err != nil {
		return nil, err
	}
	return fn(ctx, flags, size, alignment), nil
}

// SVMFree frees a buffer allocated by SVMAlloc without waiting for
// enqueued commands that may be using it. Use EnqueueSVMFree to
// defer the free until such commands finish.
func SVMFree(ctx Context, svmPtr unsafe.Pointer) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.svmFree.get()
	if err != nil {
		return err
	}
	fn(ctx, svmPtr)
	return nil
}

// EnqueueSVMFree frees SVM buffers once prior commands complete.
// pfnFree, if nonzero, must come from NewCallback and is invoked
// instead of the default SVMFree.
func EnqueueSVMFree(queue CommandQueue, ptrs []unsafe.Pointer, pfnFree uintptr, userData unsafe.Pointer, waitList []Event, event *Event) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.enqueueSVMFree.get()
	if err != nil {
		return err
	}
	var pp *unsafe.Pointer
	if len(ptrs) > 0 {
		pp = &ptrs[0]
	}
	n, wl := waitListArgs(waitList)
	return statusErr(fn(queue, uint32(len(ptrs)), pp, pfnFree, userData, n, wl, event))
}

// EnqueueSVMMemcpy copies size bytes between two SVM (or host)
// pointers.
func EnqueueSVMMemcpy(queue CommandQueue, blocking bool, dst, src unsafe.Pointer, size uintptr, waitList []Event, event *Event) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.enqueueSVMMemcpy.get()
	if err != nil {
		return err
	}
	n, wl := waitListArgs(waitList)
	return statusErr(fn(queue, clBool(blocking), dst, src, size, n, wl, event))
}

// EnqueueSVMMemFill fills size bytes of an SVM buffer with copies
// of the pattern.
func EnqueueSVMMemFill(queue CommandQueue, svmPtr, pattern unsafe.Pointer, patternSize, size uintptr, waitList []Event, event *Event) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.enqueueSVMMemFill.get()
	if err != nil {
		return err
	}
	n, wl := waitListArgs(waitList)
	return statusErr(fn(queue, svmPtr, pattern, patternSize, size, n, wl, event))
}

// EnqueueSVMMap makes size bytes of a coarse-grained SVM buffer
// accessible to the host.
func EnqueueSVMMap(queue CommandQueue, blocking bool, flags uint64, svmPtr unsafe.Pointer, size uintptr, waitList []Event, event *Event) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.enqueueSVMMap.get()
	if err != nil {
		return err
	}
	n, wl := waitListArgs(waitList)
	return statusErr(fn(queue, clBool(blocking), flags, svmPtr, size, n, wl, event))
}

// EnqueueSVMUnmap releases a mapping made by EnqueueSVMMap.
func EnqueueSVMUnmap(queue CommandQueue, svmPtr unsafe.Pointer, waitList []Event, event *Event) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.enqueueSVMUnmap.get()
	if err != nil {
		return err
	}
	n, wl := waitListArgs(waitList)
	return statusErr(fn(queue, svmPtr, n, wl, event))
}

// EnqueueSVMMigrateMem migrates SVM regions to the device
// associated with queue. sizes may be nil to migrate from the start
// of each region, or per-pointer byte counts.
func EnqueueSVMMigrateMem(queue CommandQueue, ptrs []unsafe.Pointer, sizes []uintptr, flags uint64, waitList []Event, event *Event) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.enqueueSVMMigrateMem.get()
	if err != nil {
		return err
	}
	var pp *unsafe.Pointer
	if len(ptrs) > 0 {
		pp = &ptrs[0]
	}
	n, wl := waitListArgs(waitList)
	return statusErr(fn(queue, uint32(len(ptrs)), pp, sizeTPtr(sizes), flags, n, wl, event))
}
