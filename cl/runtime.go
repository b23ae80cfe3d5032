// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package cl

import (
	"errors"
	"sync"
	"unsafe"

	"gviegas/opencl/internal/dynlib"
)

// ErrRuntimeNotLoaded means that no OpenCL library could be opened
// from any candidate path. The outcome is cached; once loading has
// failed it fails identically for the rest of the process.
var ErrRuntimeNotLoaded = errors.New("cl: OpenCL library not loaded")

// MissingFunctionError means that the OpenCL library loaded but
// does not export a particular entry point (driver older than the
// declared version, or extension not present).
type MissingFunctionError struct {
	// Name of the native entry point, e.g. "clGetPlatformIDs".
	Name string
}

func (e *MissingFunctionError) Error() string {
	return "cl: " + e.Name + " not available in this OpenCL runtime"
}

// Indirection over dynlib so loader tests can substitute doubles.
var (
	openLibrary  = dynlib.Open
	lookupSymbol = dynlib.Lookup
	registerFunc = dynlib.Register
)

// loadRuntime returns the process-wide runtime.
// The library open and symbol binding happen exactly once; callers
// from any goroutine observe the same outcome. There is no retry
// and no unload: function pointers handed out earlier may still be
// executing, so the library stays open until the process exits.
var loadRuntime = sync.OnceValues(openRuntime)

// IsRuntimeAvailable reports whether the OpenCL library is loaded,
// attempting the load if it has not happened yet.
func IsRuntimeAvailable() bool {
	_, err := loadRuntime()
	return err == nil
}

// NewCallback returns a pointer to fn that the OpenCL runtime can
// call. It is meant for the pfnNotify parameters taken by
// CreateContext, SetEventCallback, BuildProgram and the like.
// fn's signature must match the callback's C signature, with
// handles and pointers passed as their Go counterparts.
// Callbacks are never deallocated; create them once and reuse.
func NewCallback(fn any) uintptr {
	return dynlib.NewCallback(fn)
}

// infoFunc is the shared shape of the clGet*Info entry points.
type infoFunc[H ~uintptr] func(obj H, param uint32, size uintptr, value unsafe.Pointer, sizeRet *uintptr) int32

// Runtime is the symbol table of the OpenCL library: one slot per
// entry point that this package can call, each independently
// optional. It is created once, is read-only afterwards, and is
// shared by every wrapper in the package.
type Runtime struct {
	lib uintptr

	// Platform API.
	getPlatformIDs  slot[func(numEntries uint32, platforms *Platform, numPlatforms *uint32) int32]
	getPlatformInfo slot[infoFunc[Platform]]

	// Device APIs.
	getDeviceIDs                 slot[func(platform Platform, devType uint64, numEntries uint32, devices *Device, numDevices *uint32) int32]
	getDeviceInfo                slot[infoFunc[Device]]
	createSubDevices             slot[func(dev Device, props *uintptr, numDevices uint32, devices *Device, numRet *uint32) int32]
	retainDevice                 slot[func(dev Device) int32]
	releaseDevice                slot[func(dev Device) int32]
	setDefaultDeviceCommandQueue slot[func(ctx Context, dev Device, queue CommandQueue) int32]
	getDeviceAndHostTimer        slot[func(dev Device, devTimestamp, hostTimestamp *uint64) int32]
	getHostTimer                 slot[func(dev Device, hostTimestamp *uint64) int32]

	// Context APIs.
	createContext                slot[func(props *uintptr, numDevices uint32, devices *Device, pfnNotify uintptr, userData unsafe.Pointer, status *int32) Context]
	createContextFromType        slot[func(props *uintptr, devType uint64, pfnNotify uintptr, userData unsafe.Pointer, status *int32) Context]
	retainContext                slot[func(ctx Context) int32]
	releaseContext               slot[func(ctx Context) int32]
	getContextInfo               slot[infoFunc[Context]]
	setContextDestructorCallback slot[func(ctx Context, pfnNotify uintptr, userData unsafe.Pointer) int32]

	// Command queue APIs.
	createCommandQueueWithProperties slot[func(ctx Context, dev Device, props *uint64, status *int32) CommandQueue]
	retainCommandQueue               slot[func(queue CommandQueue) int32]
	releaseCommandQueue              slot[func(queue CommandQueue) int32]
	getCommandQueueInfo              slot[infoFunc[CommandQueue]]

	// Memory object APIs.
	createBuffer                   slot[func(ctx Context, flags uint64, size uintptr, hostPtr unsafe.Pointer, status *int32) Mem]
	createSubBuffer                slot[func(buf Mem, flags uint64, createType uint32, createInfo unsafe.Pointer, status *int32) Mem]
	createImage                    slot[func(ctx Context, flags uint64, format *ImageFormat, desc *ImageDesc, hostPtr unsafe.Pointer, status *int32) Mem]
	createPipe                     slot[func(ctx Context, flags uint64, packetSize, maxPackets uint32, props *uint64, status *int32) Mem]
	createBufferWithProperties     slot[func(ctx Context, props *uint64, flags uint64, size uintptr, hostPtr unsafe.Pointer, status *int32) Mem]
	createImageWithProperties      slot[func(ctx Context, props *uint64, flags uint64, format *ImageFormat, desc *ImageDesc, hostPtr unsafe.Pointer, status *int32) Mem]
	retainMemObject                slot[func(mem Mem) int32]
	releaseMemObject               slot[func(mem Mem) int32]
	getSupportedImageFormats       slot[func(ctx Context, flags uint64, imageType, numEntries uint32, formats *ImageFormat, numRet *uint32) int32]
	getMemObjectInfo               slot[infoFunc[Mem]]
	getImageInfo                   slot[infoFunc[Mem]]
	getPipeInfo                    slot[infoFunc[Mem]]
	setMemObjectDestructorCallback slot[func(mem Mem, pfnNotify uintptr, userData unsafe.Pointer) int32]

	// SVM allocation APIs.
	svmAlloc slot[func(ctx Context, flags uint64, size uintptr, alignment uint32) unsafe.Pointer]
	svmFree  slot[func(ctx Context, svmPtr unsafe.Pointer)]

	// Sampler APIs.
	createSamplerWithProperties slot[func(ctx Context, props *uint64, status *int32) Sampler]
	retainSampler               slot[func(smp Sampler) int32]
	releaseSampler              slot[func(smp Sampler) int32]
	getSamplerInfo              slot[infoFunc[Sampler]]

	// Program object APIs.
	createProgramWithSource          slot[func(ctx Context, count uint32, strs **byte, lengths *uintptr, status *int32) Program]
	createProgramWithBinary          slot[func(ctx Context, numDevices uint32, devices *Device, lengths *uintptr, binaries **byte, binStatus *int32, status *int32) Program]
	createProgramWithBuiltInKernels  slot[func(ctx Context, numDevices uint32, devices *Device, kernelNames string, status *int32) Program]
	createProgramWithIL              slot[func(ctx Context, il unsafe.Pointer, length uintptr, status *int32) Program]
	retainProgram                    slot[func(prog Program) int32]
	releaseProgram                   slot[func(prog Program) int32]
	buildProgram                     slot[func(prog Program, numDevices uint32, devices *Device, options string, pfnNotify uintptr, userData unsafe.Pointer) int32]
	compileProgram                   slot[func(prog Program, numDevices uint32, devices *Device, options string, numHeaders uint32, headers *Program, headerNames **byte, pfnNotify uintptr, userData unsafe.Pointer) int32]
	linkProgram                      slot[func(ctx Context, numDevices uint32, devices *Device, options string, numPrograms uint32, programs *Program, pfnNotify uintptr, userData unsafe.Pointer, status *int32) Program]
	setProgramReleaseCallback        slot[func(prog Program, pfnNotify uintptr, userData unsafe.Pointer) int32]
	setProgramSpecializationConstant slot[func(prog Program, specID uint32, specSize uintptr, specValue unsafe.Pointer) int32]
	unloadPlatformCompiler           slot[func(platform Platform) int32]
	getProgramInfo                   slot[infoFunc[Program]]
	getProgramBuildInfo              slot[func(prog Program, dev Device, param uint32, size uintptr, value unsafe.Pointer, sizeRet *uintptr) int32]

	// Kernel object APIs.
	createKernel           slot[func(prog Program, name string, status *int32) Kernel]
	createKernelsInProgram slot[func(prog Program, numKernels uint32, kernels *Kernel, numRet *uint32) int32]
	cloneKernel            slot[func(krn Kernel, status *int32) Kernel]
	retainKernel           slot[func(krn Kernel) int32]
	releaseKernel          slot[func(krn Kernel) int32]
	setKernelArg           slot[func(krn Kernel, index uint32, size uintptr, value unsafe.Pointer) int32]
	setKernelArgSVMPointer slot[func(krn Kernel, index uint32, value unsafe.Pointer) int32]
	setKernelExecInfo      slot[func(krn Kernel, param uint32, size uintptr, value unsafe.Pointer) int32]
	getKernelInfo          slot[infoFunc[Kernel]]
	getKernelArgInfo       slot[func(krn Kernel, index, param uint32, size uintptr, value unsafe.Pointer, sizeRet *uintptr) int32]
	getKernelWorkGroupInfo slot[func(krn Kernel, dev Device, param uint32, size uintptr, value unsafe.Pointer, sizeRet *uintptr) int32]
	getKernelSubGroupInfo  slot[func(krn Kernel, dev Device, param uint32, inputSize uintptr, input unsafe.Pointer, size uintptr, value unsafe.Pointer, sizeRet *uintptr) int32]

	// Event object APIs.
	waitForEvents      slot[func(numEvents uint32, events *Event) int32]
	getEventInfo       slot[infoFunc[Event]]
	createUserEvent    slot[func(ctx Context, status *int32) Event]
	retainEvent        slot[func(ev Event) int32]
	releaseEvent       slot[func(ev Event) int32]
	setUserEventStatus slot[func(ev Event, execStatus int32) int32]
	setEventCallback   slot[func(ev Event, callbackType int32, pfnNotify uintptr, userData unsafe.Pointer) int32]

	// Profiling APIs.
	getEventProfilingInfo slot[infoFunc[Event]]

	// Flush and finish APIs.
	flush  slot[func(queue CommandQueue) int32]
	finish slot[func(queue CommandQueue) int32]

	// Enqueued commands APIs.
	enqueueReadBuffer          slot[func(queue CommandQueue, buf Mem, blocking uint32, offset, size uintptr, ptr unsafe.Pointer, numWait uint32, waitList, event *Event) int32]
	enqueueReadBufferRect      slot[func(queue CommandQueue, buf Mem, blocking uint32, bufOrigin, hostOrigin, region *uintptr, bufRowPitch, bufSlicePitch, hostRowPitch, hostSlicePitch uintptr, ptr unsafe.Pointer, numWait uint32, waitList, event *Event) int32]
	enqueueWriteBuffer         slot[func(queue CommandQueue, buf Mem, blocking uint32, offset, size uintptr, ptr unsafe.Pointer, numWait uint32, waitList, event *Event) int32]
	enqueueWriteBufferRect     slot[func(queue CommandQueue, buf Mem, blocking uint32, bufOrigin, hostOrigin, region *uintptr, bufRowPitch, bufSlicePitch, hostRowPitch, hostSlicePitch uintptr, ptr unsafe.Pointer, numWait uint32, waitList, event *Event) int32]
	enqueueFillBuffer          slot[func(queue CommandQueue, buf Mem, pattern unsafe.Pointer, patternSize, offset, size uintptr, numWait uint32, waitList, event *Event) int32]
	enqueueCopyBuffer          slot[func(queue CommandQueue, src, dst Mem, srcOffset, dstOffset, size uintptr, numWait uint32, waitList, event *Event) int32]
	enqueueCopyBufferRect      slot[func(queue CommandQueue, src, dst Mem, srcOrigin, dstOrigin, region *uintptr, srcRowPitch, srcSlicePitch, dstRowPitch, dstSlicePitch uintptr, numWait uint32, waitList, event *Event) int32]
	enqueueReadImage           slot[func(queue CommandQueue, img Mem, blocking uint32, origin, region *uintptr, rowPitch, slicePitch uintptr, ptr unsafe.Pointer, numWait uint32, waitList, event *Event) int32]
	enqueueWriteImage          slot[func(queue CommandQueue, img Mem, blocking uint32, origin, region *uintptr, rowPitch, slicePitch uintptr, ptr unsafe.Pointer, numWait uint32, waitList, event *Event) int32]
	enqueueFillImage           slot[func(queue CommandQueue, img Mem, fillColor unsafe.Pointer, origin, region *uintptr, numWait uint32, waitList, event *Event) int32]
	enqueueCopyImage           slot[func(queue CommandQueue, src, dst Mem, srcOrigin, dstOrigin, region *uintptr, numWait uint32, waitList, event *Event) int32]
	enqueueCopyImageToBuffer   slot[func(queue CommandQueue, src, dst Mem, srcOrigin, region *uintptr, dstOffset uintptr, numWait uint32, waitList, event *Event) int32]
	enqueueCopyBufferToImage   slot[func(queue CommandQueue, src, dst Mem, srcOffset uintptr, dstOrigin, region *uintptr, numWait uint32, waitList, event *Event) int32]
	enqueueMapBuffer           slot[func(queue CommandQueue, buf Mem, blocking uint32, flags uint64, offset, size uintptr, numWait uint32, waitList, event *Event, status *int32) unsafe.Pointer]
	enqueueMapImage            slot[func(queue CommandQueue, img Mem, blocking uint32, flags uint64, origin, region, rowPitch, slicePitch *uintptr, numWait uint32, waitList, event *Event, status *int32) unsafe.Pointer]
	enqueueUnmapMemObject      slot[func(queue CommandQueue, mem Mem, mapped unsafe.Pointer, numWait uint32, waitList, event *Event) int32]
	enqueueMigrateMemObjects   slot[func(queue CommandQueue, numMem uint32, mems *Mem, flags uint64, numWait uint32, waitList, event *Event) int32]
	enqueueNDRangeKernel       slot[func(queue CommandQueue, krn Kernel, workDim uint32, globalOffset, globalSize, localSize *uintptr, numWait uint32, waitList, event *Event) int32]
	enqueueNativeKernel        slot[func(queue CommandQueue, userFunc uintptr, args unsafe.Pointer, argsSize uintptr, numMem uint32, mems *Mem, memLocs *unsafe.Pointer, numWait uint32, waitList, event *Event) int32]
	enqueueMarkerWithWaitList  slot[func(queue CommandQueue, numWait uint32, waitList, event *Event) int32]
	enqueueBarrierWithWaitList slot[func(queue CommandQueue, numWait uint32, waitList, event *Event) int32]
	enqueueSVMFree             slot[func(queue CommandQueue, numPtrs uint32, ptrs *unsafe.Pointer, pfnFree uintptr, userData unsafe.Pointer, numWait uint32, waitList, event *Event) int32]
	enqueueSVMMemcpy           slot[func(queue CommandQueue, blocking uint32, dst, src unsafe.Pointer, size uintptr, numWait uint32, waitList, event *Event) int32]
	enqueueSVMMemFill          slot[func(queue CommandQueue, svmPtr, pattern unsafe.Pointer, patternSize, size uintptr, numWait uint32, waitList, event *Event) int32]
	enqueueSVMMap              slot[func(queue CommandQueue, blocking uint32, flags uint64, svmPtr unsafe.Pointer, size uintptr, numWait uint32, waitList, event *Event) int32]
	enqueueSVMUnmap            slot[func(queue CommandQueue, svmPtr unsafe.Pointer, numWait uint32, waitList, event *Event) int32]
	enqueueSVMMigrateMem       slot[func(queue CommandQueue, numPtrs uint32, ptrs *unsafe.Pointer, sizes *uintptr, flags uint64, numWait uint32, waitList, event *Event) int32]

	// Extension function access.
	getExtensionFunctionAddressForPlatform slot[func(platform Platform, name string) uintptr]

	// Deprecated OpenCL 1.1 APIs.
	createImage2D               slot[func(ctx Context, flags uint64, format *ImageFormat, width, height, rowPitch uintptr, hostPtr unsafe.Pointer, status *int32) Mem]
	createImage3D               slot[func(ctx Context, flags uint64, format *ImageFormat, width, height, depth, rowPitch, slicePitch uintptr, hostPtr unsafe.Pointer, status *int32) Mem]
	enqueueMarker               slot[func(queue CommandQueue, event *Event) int32]
	enqueueWaitForEvents        slot[func(queue CommandQueue, numEvents uint32, events *Event) int32]
	enqueueBarrier              slot[func(queue CommandQueue) int32]
	unloadCompiler              slot[func() int32]
	getExtensionFunctionAddress slot[func(name string) uintptr]

	// Deprecated OpenCL 2.0 APIs.
	createCommandQueue slot[func(ctx Context, dev Device, props uint64, status *int32) CommandQueue]
	createSampler      slot[func(ctx Context, normalizedCoords, addressingMode, filterMode uint32, status *int32) Sampler]
	enqueueTask        slot[func(queue CommandQueue, krn Kernel, numWait uint32, waitList, event *Event) int32]

	// OpenGL sharing (cl_gl).
	createFromGLBuffer       slot[func(ctx Context, flags uint64, bufobj uint32, status *int32) Mem]
	createFromGLTexture      slot[func(ctx Context, flags uint64, target uint32, miplevel int32, texture uint32, status *int32) Mem]
	createFromGLRenderbuffer slot[func(ctx Context, flags uint64, renderbuffer uint32, status *int32) Mem]
	getGLObjectInfo          slot[func(mem Mem, objectType, objectName *uint32) int32]
	getGLTextureInfo         slot[infoFunc[Mem]]
	enqueueAcquireGLObjects  slot[func(queue CommandQueue, numObjects uint32, mems *Mem, numWait uint32, waitList, event *Event) int32]
	enqueueReleaseGLObjects  slot[func(queue CommandQueue, numObjects uint32, mems *Mem, numWait uint32, waitList, event *Event) int32]
	getGLContextInfoKHR      slot[func(props *uintptr, param uint32, size uintptr, value unsafe.Pointer, sizeRet *uintptr) int32]

	// ICD and KHR extensions (cl_ext).
	icdGetPlatformIDsKHR                slot[func(numEntries uint32, platforms *Platform, numPlatforms *uint32) int32]
	getICDLoaderInfoOCLICD              slot[func(param uint32, size uintptr, value unsafe.Pointer, sizeRet *uintptr) int32]
	terminateContextKHR                 slot[func(ctx Context) int32]
	createCommandQueueWithPropertiesKHR slot[func(ctx Context, dev Device, props *uint64, status *int32) CommandQueue]
}
