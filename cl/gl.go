// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package cl

import "unsafe"

// OpenGL interop (cl_khr_gl_sharing). The context must have been
// created with the GL context and display properties set.

// CreateFromGLBuffer creates a buffer object from an OpenGL buffer.
func CreateFromGLBuffer(ctx Context, flags uint64, bufobj uint32) (Mem, error) {
	rt, err := loadRuntime()
	if err != nil {
		return 0, err
	}
	fn, err := rt.createFromGLBuffer.get()
	if err != nil {
		return 0, err
	}
	var st int32
	mem := fn(ctx, flags, bufobj, &st)
	if st != Success {
		return 0, Status(st)
	}
	return mem, nil
}

// CreateFromGLTexture creates an image object from an OpenGL
// texture level.
func CreateFromGLTexture(ctx Context, flags uint64, target uint32, miplevel int32, texture uint32) (Mem, error) {
	rt, err := loadRuntime()
	if err != nil {
		return 0, err
	}
	fn, err := rt.createFromGLTexture.get()
	if err != nil {
		return 0, err
	}
	var st int32
	mem := fn(ctx, flags, target, miplevel, texture, &st)
	if st != Success {
		return 0, Status(st)
	}
	return mem, nil
}

// CreateFromGLRenderbuffer creates an image object from an OpenGL
// renderbuffer.
func CreateFromGLRenderbuffer(ctx Context, flags uint64, renderbuffer uint32) (Mem, error) {
	rt, err := loadRuntime()
	if err != nil {
		return 0, err
	}
	fn, err := rt.createFromGLRenderbuffer.get()
	if err != nil {
		return 0, err
	}
	var st int32
	mem := fn(ctx, flags, renderbuffer, &st)
	if st != Success {
		return 0, Status(st)
	}
	return mem, nil
}

// GetGLObjectInfo returns the OpenGL object type and name behind a
// shared memory object.
func GetGLObjectInfo(mem Mem) (objectType, objectName uint32, err error) {
	rt, err := loadRuntime()
	if err != nil {
		return 0, 0, err
	}
	fn, err := rt.getGLObjectInfo.get()
	if err != nil {
		return 0, 0, err
	}
	if st := fn(mem, &objectType, &objectName); st != Success {
		return 0, 0, Status(st)
	}
	return objectType, objectName, nil
}

// GetGLTextureInfo returns the raw value of the given GL texture
// parameter of a shared image object.
func GetGLTextureInfo(mem Mem, param uint32) ([]byte, error) {
	rt, err := loadRuntime()
	if err != nil {
		return nil, err
	}
	fn, err := rt.getGLTextureInfo.get()
	if err != nil {
		return nil, err
	}
	return objInfo(fn, mem, param)
}

// EnqueueAcquireGLObjects acquires shared objects for OpenCL use.
// The corresponding OpenGL work must have completed first.
func EnqueueAcquireGLObjects(queue CommandQueue, mems []Mem, waitList []Event, event *Event) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.enqueueAcquireGLObjects.get()
	if err != nil {
		return err
	}
	var memPtr *Mem
	if len(mems) > 0 {
		memPtr = &mems[0]
	}
	n, wl := waitListArgs(waitList)
	return statusErr(fn(queue, uint32(len(mems)), memPtr, n, wl, event))
}

// EnqueueReleaseGLObjects releases shared objects back to OpenGL.
func EnqueueReleaseGLObjects(queue CommandQueue, mems []Mem, waitList []Event, event *Event) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.enqueueReleaseGLObjects.get()
	if err != nil {
		return err
	}
	var memPtr *Mem
	if len(mems) > 0 {
		memPtr = &mems[0]
	}
	n, wl := waitListArgs(waitList)
	return statusErr(fn(queue, uint32(len(mems)), memPtr, n, wl, event))
}

// GetGLContextInfoKHR returns the raw value of the given parameter
// of the GL context named by the property list, the devices able to
// share with it in particular.
func GetGLContextInfoKHR(props []uintptr, param uint32) ([]byte, error) {
	rt, err := loadRuntime()
	if err != nil {
		return nil, err
	}
	fn, err := rt.getGLContextInfoKHR.get()
	if err != nil {
		return nil, err
	}
	return getInfo(func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) int32 {
		return fn(ctxPropsPtr(props), param, size, value, sizeRet)
	})
}
