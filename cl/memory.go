// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package cl

import "unsafe"

// CreateBuffer creates a buffer object of size bytes.
// hostPtr, when non-nil, must point to at least size bytes and must
// stay valid for as long as the flags demand (CL_MEM_USE_HOST_PTR
// in particular).
func CreateBuffer(ctx Context, flags uint64, size uintptr, hostPtr unsafe.Pointer) (Mem, error) {
	rt, err := loadRuntime()
	if err != nil {
		return 0, err
	}
	fn, err := rt.createBuffer.get()
	if err != nil {
		return 0, err
	}
	var st int32
	mem := fn(ctx, flags, size, hostPtr, &st)
	if st != Success {
		return 0, Status(st)
	}
	return mem, nil
}

// CreateBufferWithProperties is CreateBuffer with a zero-terminated
// cl_mem_properties list. Requires OpenCL 3.0.
func CreateBufferWithProperties(ctx Context, props []uint64, flags uint64, size uintptr, hostPtr unsafe.Pointer) (Mem, error) {
	rt, err := loadRuntime()
	if err != nil {
		return 0, err
	}
	fn, err := rt.createBufferWithProperties.get()
	if err != nil {
		return 0, err
	}
	var st int32
	mem := fn(ctx, propsPtr(props), flags, size, hostPtr, &st)
	if st != Success {
		return 0, Status(st)
	}
	return mem, nil
}

// CreateSubBuffer creates a buffer aliasing the given region of buf.
func CreateSubBuffer(buf Mem, flags uint64, region BufferRegion) (Mem, error) {
	rt, err := loadRuntime()
	if err != nil {
		return 0, err
	}
	fn, err := rt.createSubBuffer.get()
	if err != nil {
		return 0, err
	}
	var st int32
	mem := fn(buf, flags, BufferCreateTypeRegion, unsafe.Pointer(&region), &st)
	if st != Success {
		return 0, Status(st)
	}
	return mem, nil
}

// CreateImage creates an image object described by format and desc.
func CreateImage(ctx Context, flags uint64, format ImageFormat, desc ImageDesc, hostPtr unsafe.Pointer) (Mem, error) {
	rt, err := loadRuntime()
	if err != nil {
		return 0, err
	}
	fn, err := rt.createImage.get()
	if err != nil {
		return 0, err
	}
	var st int32
	mem := fn(ctx, flags, &format, &desc, hostPtr, &st)
	if st != Success {
		return 0, Status(st)
	}
	return mem, nil
}

// CreateImageWithProperties is CreateImage with a zero-terminated
// cl_mem_properties list. Requires OpenCL 3.0.
func CreateImageWithProperties(ctx Context, props []uint64, flags uint64, format ImageFormat, desc ImageDesc, hostPtr unsafe.Pointer) (Mem, error) {
	rt, err := loadRuntime()
	if err != nil {
		return 0, err
	}
	fn, err := rt.createImageWithProperties.get()
	if err != nil {
		return 0, err
	}
	var st int32
	mem := fn(ctx, propsPtr(props), flags, &format, &desc, hostPtr, &st)
	if st != Success {
		return 0, Status(st)
	}
	return mem, nil
}

// CreatePipe creates a pipe object holding maxPackets packets of
// packetSize bytes each.
func CreatePipe(ctx Context, flags uint64, packetSize, maxPackets uint32, props []uint64) (Mem, error) {
	rt, err := loadRuntime()
	if err != nil {
		return 0, err
	}
	fn, err := rt.createPipe.get()
	if err != nil {
		return 0, err
	}
	var st int32
	mem := fn(ctx, flags, packetSize, maxPackets, propsPtr(props), &st)
	if st != Success {
		return 0, Status(st)
	}
	return mem, nil
}

// RetainMemObject increments the reference count of mem.
func RetainMemObject(mem Mem) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.retainMemObject.get()
	if err != nil {
		return err
	}
	return statusErr(fn(mem))
}

// ReleaseMemObject decrements the reference count of mem.
func ReleaseMemObject(mem Mem) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.releaseMemObject.get()
	if err != nil {
		return err
	}
	return statusErr(fn(mem))
}

// GetSupportedImageFormats returns the image formats supported by
// ctx for the given flags and image type.
func GetSupportedImageFormats(ctx Context, flags uint64, imageType uint32) ([]ImageFormat, error) {
	rt, err := loadRuntime()
	if err != nil {
		return nil, err
	}
	fn, err := rt.getSupportedImageFormats.get()
	if err != nil {
		return nil, err
	}
	var n uint32
	if st := fn(ctx, flags, imageType, 0, nil, &n); st != Success {
		return nil, Status(st)
	}
	if n == 0 {
		return nil, nil
	}
	formats := make([]ImageFormat, n)
	if st := fn(ctx, flags, imageType, n, &formats[0], nil); st != Success {
		return nil, Status(st)
	}
	return formats, nil
}

// GetMemObjectInfo returns the raw value of the given memory object
// parameter.
func GetMemObjectInfo(mem Mem, param uint32) ([]byte, error) {
	rt, err := loadRuntime()
	if err != nil {
		return nil, err
	}
	fn, err := rt.getMemObjectInfo.get()
	if err != nil {
		return nil, err
	}
	return objInfo(fn, mem, param)
}

// GetImageInfo returns the raw value of the given image parameter.
func GetImageInfo(img Mem, param uint32) ([]byte, error) {
	rt, err := loadRuntime()
	if err != nil {
		return nil, err
	}
	fn, err := rt.getImageInfo.get()
	if err != nil {
		return nil, err
	}
	return objInfo(fn, img, param)
}

// GetPipeInfo returns the raw value of the given pipe parameter.
func GetPipeInfo(pipe Mem, param uint32) ([]byte, error) {
	rt, err := loadRuntime()
	if err != nil {
		return nil, err
	}
	fn, err := rt.getPipeInfo.get()
	if err != nil {
		return nil, err
	}
	return objInfo(fn, pipe, param)
}

// SetMemObjectDestructorCallback registers a callback to run when
// mem is destroyed. Callbacks run in reverse registration order.
func SetMemObjectDestructorCallback(mem Mem, pfnNotify uintptr, userData unsafe.Pointer) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.setMemObjectDestructorCallback.get()
	if err != nil {
		return err
	}
	return statusErr(fn(mem, pfnNotify, userData))
}

// EnqueueReadBuffer reads size bytes from buf at offset into ptr.
func EnqueueReadBuffer(queue CommandQueue, buf Mem, blocking bool, offset, size uintptr, ptr unsafe.Pointer, waitList []Event, event *Event) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.enqueueReadBuffer.get()
	if err != nil {
		return err
	}
	n, wl := waitListArgs(waitList)
	return statusErr(fn(queue, buf, clBool(blocking), offset, size, ptr, n, wl, event))
}

// EnqueueWriteBuffer writes size bytes from ptr into buf at offset.
func EnqueueWriteBuffer(queue CommandQueue, buf Mem, blocking bool, offset, size uintptr, ptr unsafe.Pointer, waitList []Event, event *Event) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.enqueueWriteBuffer.get()
	if err != nil {
		return err
	}
	n, wl := waitListArgs(waitList)
	return statusErr(fn(queue, buf, clBool(blocking), offset, size, ptr, n, wl, event))
}

// EnqueueReadBufferRect reads a 2D or 3D region of buf into ptr.
// Origins and region are 3-element (x, y, z) vectors in bytes, rows
// and slices.
func EnqueueReadBufferRect(queue CommandQueue, buf Mem, blocking bool, bufOrigin, hostOrigin, region [3]uintptr, bufRowPitch, bufSlicePitch, hostRowPitch, hostSlicePitch uintptr, ptr unsafe.Pointer, waitList []Event, event *Event) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.enqueueReadBufferRect.get()
	if err != nil {
		return err
	}
	n, wl := waitListArgs(waitList)
	return statusErr(fn(queue, buf, clBool(blocking), &bufOrigin[0], &hostOrigin[0], &region[0], bufRowPitch, bufSlicePitch, hostRowPitch, hostSlicePitch, ptr, n, wl, event))
}

// EnqueueWriteBufferRect writes a 2D or 3D region from ptr into buf.
func EnqueueWriteBufferRect(queue CommandQueue, buf Mem, blocking bool, bufOrigin, hostOrigin, region [3]uintptr, bufRowPitch, bufSlicePitch, hostRowPitch, hostSlicePitch uintptr, ptr unsafe.Pointer, waitList []Event, event *Event) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.enqueueWriteBufferRect.get()
	if err != nil {
		return err
	}
	n, wl := waitListArgs(waitList)
	return statusErr(fn(queue, buf, clBool(blocking), &bufOrigin[0], &hostOrigin[0], &region[0], bufRowPitch, bufSlicePitch, hostRowPitch, hostSlicePitch, ptr, n, wl, event))
}

// EnqueueFillBuffer fills size bytes of buf at offset with copies
// of the pattern. pattern must stay valid until the command runs.
func EnqueueFillBuffer(queue CommandQueue, buf Mem, pattern unsafe.Pointer, patternSize, offset, size uintptr, waitList []Event, event *Event) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.enqueueFillBuffer.get()
	if err != nil {
		return err
	}
	n, wl := waitListArgs(waitList)
	return statusErr(fn(queue, buf, pattern, patternSize, offset, size, n, wl, event))
}

// EnqueueCopyBuffer copies size bytes between two buffer objects.
func EnqueueCopyBuffer(queue CommandQueue, src, dst Mem, srcOffset, dstOffset, size uintptr, waitList []Event, event *Event) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.enqueueCopyBuffer.get()
	if err != nil {
		return err
	}
	n, wl := waitListArgs(waitList)
	return statusErr(fn(queue, src, dst, srcOffset, dstOffset, size, n, wl, event))
}

// EnqueueCopyBufferRect copies a 2D or 3D region between buffers.
func EnqueueCopyBufferRect(queue CommandQueue, src, dst Mem, srcOrigin, dstOrigin, region [3]uintptr, srcRowPitch, srcSlicePitch, dstRowPitch, dstSlicePitch uintptr, waitList []Event, event *Event) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.enqueueCopyBufferRect.get()
	if err != nil {
		return err
	}
	n, wl := waitListArgs(waitList)
	return statusErr(fn(queue, src, dst, &srcOrigin[0], &dstOrigin[0], &region[0], srcRowPitch, srcSlicePitch, dstRowPitch, dstSlicePitch, n, wl, event))
}

// EnqueueReadImage reads a region of img into ptr.
func EnqueueReadImage(queue CommandQueue, img Mem, blocking bool, origin, region [3]uintptr, rowPitch, slicePitch uintptr, ptr unsafe.Pointer, waitList []Event, event *Event) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.enqueueReadImage.get()
	if err != nil {
		return err
	}
	n, wl := waitListArgs(waitList)
	return statusErr(fn(queue, img, clBool(blocking), &origin[0], &region[0], rowPitch, slicePitch, ptr, n, wl, event))
}

// EnqueueWriteImage writes a region from ptr into img.
func EnqueueWriteImage(queue CommandQueue, img Mem, blocking bool, origin, region [3]uintptr, rowPitch, slicePitch uintptr, ptr unsafe.Pointer, waitList []Event, event *Event) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.enqueueWriteImage.get()
	if err != nil {
		return err
	}
	n, wl := waitListArgs(waitList)
	return statusErr(fn(queue, img, clBool(blocking), &origin[0], &region[0], rowPitch, slicePitch, ptr, n, wl, event))
}

// EnqueueFillImage fills a region of img with fillColor, whose
// format must match the image's channel data type.
func EnqueueFillImage(queue CommandQueue, img Mem, fillColor unsafe.Pointer, origin, region [3]uintptr, waitList []Event, event *Event) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.enqueueFillImage.get()
	if err != nil {
		return err
	}
	n, wl := waitListArgs(waitList)
	return statusErr(fn(queue, img, fillColor, &origin[0], &region[0], n, wl, event))
}

// EnqueueCopyImage copies a region between two image objects.
func EnqueueCopyImage(queue CommandQueue, src, dst Mem, srcOrigin, dstOrigin, region [3]uintptr, waitList []Event, event *Event) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.enqueueCopyImage.get()
	if err != nil {
		return err
	}
	n, wl := waitListArgs(waitList)
	return statusErr(fn(queue, src, dst, &srcOrigin[0], &dstOrigin[0], &region[0], n, wl, event))
}

// EnqueueCopyImageToBuffer copies a region of an image into a
// buffer at dstOffset.
func EnqueueCopyImageToBuffer(queue CommandQueue, src, dst Mem, srcOrigin, region [3]uintptr, dstOffset uintptr, waitList []Event, event *Event) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.enqueueCopyImageToBuffer.get()
	if err != nil {
		return err
	}
	n, wl := waitListArgs(waitList)
	return statusErr(fn(queue, src, dst, &srcOrigin[0], &region[0], dstOffset, n, wl, event))
}

// EnqueueCopyBufferToImage copies from a buffer at srcOffset into a
// region of an image.
func EnqueueCopyBufferToImage(queue CommandQueue, src, dst Mem, srcOffset uintptr, dstOrigin, region [3]uintptr, waitList []Event, event *Event) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.enqueueCopyBufferToImage.get()
	if err != nil {
		return err
	}
	n, wl := waitListArgs(waitList)
	return statusErr(fn(queue, src, dst, srcOffset, &dstOrigin[0], &region[0], n, wl, event))
}

// EnqueueMapBuffer maps a region of buf into host memory.
// The mapping stays valid until EnqueueUnmapMemObject.
func EnqueueMapBuffer(queue CommandQueue, buf Mem, blocking bool, flags uint64, offset, size uintptr, waitList []Event, event *Event) (unsafe.Pointer, error) {
	rt, err := loadRuntime()
	if err != nil {
		return nil, err
	}
	fn, err := rt.enqueueMapBuffer.get()
	if err != nil {
		return nil, err
	}
	n, wl := waitListArgs(waitList)
	var st int32
	ptr := fn(queue, buf, clBool(blocking), flags, offset, size, n, wl, event, &st)
	if st != Success {
		return nil, Status(st)
	}
	return ptr, nil
}

// EnqueueMapImage maps a region of img into host memory, returning
// the mapping along with its row and slice pitches.
func EnqueueMapImage(queue CommandQueue, img Mem, blocking bool, flags uint64, origin, region [3]uintptr, waitList []Event, event *Event) (ptr unsafe.Pointer, rowPitch, slicePitch uintptr, err error) {
	rt, err := loadRuntime()
	if err != nil {
		return nil, 0, 0, err
	}
	fn, err := rt.enqueueMapImage.get()
	if err != nil {
		return nil, 0, 0, err
	}
	n, wl := waitListArgs(waitList)
	var st int32
	ptr = fn(queue, img, clBool(blocking), flags, &origin[0], &region[0], &rowPitch, &slicePitch, n, wl, event, &st)
	if st != Success {
		return nil, 0, 0, Status(st)
	}
	return ptr, rowPitch, slicePitch, nil
}

// EnqueueUnmapMemObject unmaps a mapping returned by EnqueueMapBuffer
// or EnqueueMapImage.
func EnqueueUnmapMemObject(queue CommandQueue, mem Mem, mapped unsafe.Pointer, waitList []Event, event *Event) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.enqueueUnmapMemObject.get()
	if err != nil {
		return err
	}
	n, wl := waitListArgs(waitList)
	return statusErr(fn(queue, mem, mapped, n, wl, event))
}

// EnqueueMigrateMemObjects migrates memory objects to the device
// associated with queue.
func EnqueueMigrateMemObjects(queue CommandQueue, mems []Mem, flags uint64, waitList []Event, event *Event) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.enqueueMigrateMemObjects.get()
	if err != nil {
		return err
	}
	var memPtr *Mem
	if len(mems) > 0 {
		memPtr = &mems[0]
	}
	n, wl := waitListArgs(waitList)
	return statusErr(fn(queue, uint32(len(mems)), memPtr, flags, n, wl, event))
}

// CreateImage2D creates a 2D image object.
//
// Deprecated: as of OpenCL 1.2, use CreateImage.
func CreateImage2D(ctx Context, flags uint64, format ImageFormat, width, height, rowPitch uintptr, hostPtr unsafe.Pointer) (Mem, error) {
	rt, err := loadRuntime()
	if err != nil {
		return 0, err
	}
	fn, err := rt.createImage2D.get()
	if err != nil {
		return 0, err
	}
	var st int32
	mem := fn(ctx, flags, &format, width, height, rowPitch, hostPtr, &st)
	if st != Success {
		return 0, Status(st)
	}
	return mem, nil
}

// CreateImage3D creates a 3D image object.
//
// Deprecated: as of OpenCL 1.2, use CreateImage.
func CreateImage3D(ctx Context, flags uint64, format ImageFormat, width, height, depth, rowPitch, slicePitch uintptr, hostPtr unsafe.Pointer) (Mem, error) {
	rt, err := loadRuntime()
	if err != nil {
		return 0, err
	}
	fn, err := rt.createImage3D.get()
	if err != nil {
		return 0, err
	}
	var st int32
	mem := fn(ctx, flags, &format, width, height, depth, rowPitch, slicePitch, hostPtr, &st)
	if st != Success {
		return 0, Status(st)
	}
	return mem, nil
}
