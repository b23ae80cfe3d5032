// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package cl

// Handles to OpenCL objects. They are opaque pointers owned by the
// OpenCL runtime; the zero value means "no object".
type (
	// Platform is a cl_platform_id.
	Platform uintptr
	// Device is a cl_device_id.
	Device uintptr
	// Context is a cl_context.
	Context uintptr
	// CommandQueue is a cl_command_queue.
	CommandQueue uintptr
	// Mem is a cl_mem (buffer, image or pipe).
	Mem uintptr
	// Program is a cl_program.
	Program uintptr
	// Kernel is a cl_kernel.
	Kernel uintptr
	// Event is a cl_event.
	Event uintptr
	// Sampler is a cl_sampler.
	Sampler uintptr
)

// ImageFormat is the cl_image_format structure.
type ImageFormat struct {
	ChannelOrder    uint32
	ChannelDataType uint32
}

// ImageDesc is the cl_image_desc structure.
// Field order and sizes must match the C layout exactly, since the
// runtime reads it through a pointer.
type ImageDesc struct {
	Type         uint32
	Width        uintptr
	Height       uintptr
	Depth        uintptr
	ArraySize    uintptr
	RowPitch     uintptr
	SlicePitch   uintptr
	NumMipLevels uint32
	NumSamples   uint32
	Buffer       Mem
}

// BufferRegion is the cl_buffer_region structure passed to
// CreateSubBuffer.
type BufferRegion struct {
	Origin uintptr
	Size   uintptr
}

// clBool converts a Go bool to a cl_bool.
func clBool(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// waitListArgs splits an event wait list into the (count, pointer)
// pair that the enqueue entry points take.
func waitListArgs(waitList []Event) (uint32, *Event) {
	if len(waitList) == 0 {
		return 0, nil
	}
	return uint32(len(waitList)), &waitList[0]
}

// sizeTPtr returns a pointer to the first element, or nil for an
// empty slice.
func sizeTPtr(s []uintptr) *uintptr {
	if len(s) == 0 {
		return nil
	}
	return &s[0]
}

// propsPtr returns a pointer to a zero-terminated property list, or
// nil for an empty one.
func propsPtr(props []uint64) *uint64 {
	if len(props) == 0 {
		return nil
	}
	return &props[0]
}

// ctxPropsPtr is propsPtr for cl_context_properties lists, which
// are pointer-sized rather than 64-bit.
func ctxPropsPtr(props []uintptr) *uintptr {
	if len(props) == 0 {
		return nil
	}
	return &props[0]
}

// devicesArgs splits a device list into the (count, pointer) pair
// taken by program and sub-device entry points.
func devicesArgs(devices []Device) (uint32, *Device) {
	if len(devices) == 0 {
		return 0, nil
	}
	return uint32(len(devices)), &devices[0]
}
