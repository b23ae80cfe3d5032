// Copyright 2024 Gustavo C. Viegas. All rights reserved.

//go:build opencl_static

package cl

// Static binding. Instead of searching for the OpenCL library at
// run time, the entry points are taken from the library the binary
// was linked against, so loading cannot fail and the dispatch path
// never yields ErrRuntimeNotLoaded. It requires an OpenCL 3.0 SDK
// at build time (the Khronos or ocl-icd ICD loader on unix).
// The cl_ext entry points are not part of the link-time interface;
// their slots stay unresolved and are reached, if at all, through
// clGetExtensionFunctionAddressForPlatform.

/*
#cgo LDFLAGS: -lOpenCL

#define CL_TARGET_OPENCL_VERSION 300
#define CL_USE_DEPRECATED_OPENCL_1_0_APIS
#define CL_USE_DEPRECATED_OPENCL_1_1_APIS
#define CL_USE_DEPRECATED_OPENCL_1_2_APIS
#define CL_USE_DEPRECATED_OPENCL_2_0_APIS
#define CL_USE_DEPRECATED_OPENCL_2_1_APIS
#define CL_USE_DEPRECATED_OPENCL_2_2_APIS

#include <CL/cl.h>
#include <CL/cl_gl.h>

static void *p_clGetPlatformIDs = (void*)clGetPlatformIDs;
static void *p_clGetPlatformInfo = (void*)clGetPlatformInfo;
static void *p_clGetDeviceIDs = (void*)clGetDeviceIDs;
static void *p_clGetDeviceInfo = (void*)clGetDeviceInfo;
static void *p_clCreateSubDevices = (void*)clCreateSubDevices;
static void *p_clRetainDevice = (void*)clRetainDevice;
static void *p_clReleaseDevice = (void*)clReleaseDevice;
static void *p_clSetDefaultDeviceCommandQueue = (void*)clSetDefaultDeviceCommandQueue;
static void *p_clGetDeviceAndHostTimer = (void*)clGetDeviceAndHostTimer;
static void *p_clGetHostTimer = (void*)clGetHostTimer;
static void *p_clCreateContext = (void*)clCreateContext;
static void *p_clCreateContextFromType = (void*)clCreateContextFromType;
static void *p_clRetainContext = (void*)clRetainContext;
static void *p_clReleaseContext = (void*)clReleaseContext;
static void *p_clGetContextInfo = (void*)clGetContextInfo;
static void *p_clSetContextDestructorCallback = (void*)clSetContextDestructorCallback;
static void *p_clCreateCommandQueueWithProperties = (void*)clCreateCommandQueueWithProperties;
static void *p_clRetainCommandQueue = (void*)clRetainCommandQueue;
static void *p_clReleaseCommandQueue = (void*)clReleaseCommandQueue;
static void *p_clGetCommandQueueInfo = (void*)clGetCommandQueueInfo;
static void *p_clCreateBuffer = (void*)clCreateBuffer;
static void *p_clCreateSubBuffer = (void*)clCreateSubBuffer;
static void *p_clCreateImage = (void*)clCreateImage;
static void *p_clCreatePipe = (void*)clCreatePipe;
static void *p_clCreateBufferWithProperties = (void*)clCreateBufferWithProperties;
static void *p_clCreateImageWithProperties = (void*)clCreateImageWithProperties;
static void *p_clRetainMemObject = (void*)clRetainMemObject;
static void *p_clReleaseMemObject = (void*)clReleaseMemObject;
static void *p_clGetSupportedImageFormats = (void*)clGetSupportedImageFormats;
static void *p_clGetMemObjectInfo = (void*)clGetMemObjectInfo;
static void *p_clGetImageInfo = (void*)clGetImageInfo;
static void *p_clGetPipeInfo = (void*)clGetPipeInfo;
static void *p_clSetMemObjectDestructorCallback = (void*)clSetMemObjectDestructorCallback;
static void *p_clSVMAlloc = (void*)clSVMAlloc;
static void *p_clSVMFree = (void*)clSVMFree;
static void *p_clCreateSamplerWithProperties = (void*)clCreateSamplerWithProperties;
static void *p_clRetainSampler = (void*)clRetainSampler;
static void *p_clReleaseSampler = (void*)clReleaseSampler;
static void *p_clGetSamplerInfo = (void*)clGetSamplerInfo;
static void *p_clCreateProgramWithSource = (void*)clCreateProgramWithSource;
static void *p_clCreateProgramWithBinary = (void*)clCreateProgramWithBinary;
static void *p_clCreateProgramWithBuiltInKernels = (void*)clCreateProgramWithBuiltInKernels;
static void *p_clCreateProgramWithIL = (void*)clCreateProgramWithIL;
static void *p_clRetainProgram = (void*)clRetainProgram;
static void *p_clReleaseProgram = (void*)clReleaseProgram;
static void *p_clBuildProgram = (void*)clBuildProgram;
static void *p_clCompileProgram = (void*)clCompileProgram;
static void *p_clLinkProgram = (void*)clLinkProgram;
static void *p_clSetProgramReleaseCallback = (void*)clSetProgramReleaseCallback;
static void *p_clSetProgramSpecializationConstant = (void*)clSetProgramSpecializationConstant;
static void *p_clUnloadPlatformCompiler = (void*)clUnloadPlatformCompiler;
static void *p_clGetProgramInfo = (void*)clGetProgramInfo;
static void *p_clGetProgramBuildInfo = (void*)clGetProgramBuildInfo;
static void *p_clCreateKernel = (void*)clCreateKernel;
static void *p_clCreateKernelsInProgram = (void*)clCreateKernelsInProgram;
static void *p_clCloneKernel = (void*)clCloneKernel;
static void *p_clRetainKernel = (void*)clRetainKernel;
static void *p_clReleaseKernel = (void*)clReleaseKernel;
static void *p_clSetKernelArg = (void*)clSetKernelArg;
static void *p_clSetKernelArgSVMPointer = (void*)clSetKernelArgSVMPointer;
static void *p_clSetKernelExecInfo = (void*)clSetKernelExecInfo;
static void *p_clGetKernelInfo = (void*)clGetKernelInfo;
static void *p_clGetKernelArgInfo = (void*)clGetKernelArgInfo;
static void *p_clGetKernelWorkGroupInfo = (void*)clGetKernelWorkGroupInfo;
static void *p_clGetKernelSubGroupInfo = (void*)clGetKernelSubGroupInfo;
static void *p_clWaitForEvents = (void*)clWaitForEvents;
static void *p_clGetEventInfo = (void*)clGetEventInfo;
static void *p_clCreateUserEvent = (void*)clCreateUserEvent;
static void *p_clRetainEvent = (void*)clRetainEvent;
static void *p_clReleaseEvent = (void*)clReleaseEvent;
static void *p_clSetUserEventStatus = (void*)clSetUserEventStatus;
static void *p_clSetEventCallback = (void*)clSetEventCallback;
static void *p_clGetEventProfilingInfo = (void*)clGetEventProfilingInfo;
static void *p_clFlush = (void*)clFlush;
static void *p_clFinish = (void*)clFinish;
static void *p_clEnqueueReadBuffer = (void*)clEnqueueReadBuffer;
static void *p_clEnqueueReadBufferRect = (void*)clEnqueueReadBufferRect;
static void *p_clEnqueueWriteBuffer = (void*)clEnqueueWriteBuffer;
static void *p_clEnqueueWriteBufferRect = (void*)clEnqueueWriteBufferRect;
static void *p_clEnqueueFillBuffer = (void*)clEnqueueFillBuffer;
static void *p_clEnqueueCopyBuffer = (void*)clEnqueueCopyBuffer;
static void *p_clEnqueueCopyBufferRect = (void*)clEnqueueCopyBufferRect;
static void *p_clEnqueueReadImage = (void*)clEnqueueReadImage;
static void *p_clEnqueueWriteImage = (void*)clEnqueueWriteImage;
static void *p_clEnqueueFillImage = (void*)clEnqueueFillImage;
static void *p_clEnqueueCopyImage = (void*)clEnqueueCopyImage;
static void *p_clEnqueueCopyImageToBuffer = (void*)clEnqueueCopyImageToBuffer;
static void *p_clEnqueueCopyBufferToImage = (void*)clEnqueueCopyBufferToImage;
static void *p_clEnqueueMapBuffer = (void*)clEnqueueMapBuffer;
static void *p_clEnqueueMapImage = (void*)clEnqueueMapImage;
static void *p_clEnqueueUnmapMemObject = (void*)clEnqueueUnmapMemObject;
static void *p_clEnqueueMigrateMemObjects = (void*)clEnqueueMigrateMemObjects;
static void *p_clEnqueueNDRangeKernel = (void*)clEnqueueNDRangeKernel;
static void *p_clEnqueueNativeKernel = (void*)clEnqueueNativeKernel;
static void *p_clEnqueueMarkerWithWaitList = (void*)clEnqueueMarkerWithWaitList;
static void *p_clEnqueueBarrierWithWaitList = (void*)clEnqueueBarrierWithWaitList;
static void *p_clEnqueueSVMFree = (void*)clEnqueueSVMFree;
static void *p_clEnqueueSVMMemcpy = (void*)clEnqueueSVMMemcpy;
static void *p_clEnqueueSVMMemFill = (void*)clEnqueueSVMMemFill;
static void *p_clEnqueueSVMMap = (void*)clEnqueueSVMMap;
static void *p_clEnqueueSVMUnmap = (void*)clEnqueueSVMUnmap;
static void *p_clEnqueueSVMMigrateMem = (void*)clEnqueueSVMMigrateMem;
static void *p_clGetExtensionFunctionAddressForPlatform = (void*)clGetExtensionFunctionAddressForPlatform;
static void *p_clCreateImage2D = (void*)clCreateImage2D;
static void *p_clCreateImage3D = (void*)clCreateImage3D;
static void *p_clEnqueueMarker = (void*)clEnqueueMarker;
static void *p_clEnqueueWaitForEvents = (void*)clEnqueueWaitForEvents;
static void *p_clEnqueueBarrier = (void*)clEnqueueBarrier;
static void *p_clUnloadCompiler = (void*)clUnloadCompiler;
static void *p_clGetExtensionFunctionAddress = (void*)clGetExtensionFunctionAddress;
static void *p_clCreateCommandQueue = (void*)clCreateCommandQueue;
static void *p_clCreateSampler = (void*)clCreateSampler;
static void *p_clEnqueueTask = (void*)clEnqueueTask;
static void *p_clCreateFromGLBuffer = (void*)clCreateFromGLBuffer;
static void *p_clCreateFromGLTexture = (void*)clCreateFromGLTexture;
static void *p_clCreateFromGLRenderbuffer = (void*)clCreateFromGLRenderbuffer;
static void *p_clGetGLObjectInfo = (void*)clGetGLObjectInfo;
static void *p_clGetGLTextureInfo = (void*)clGetGLTextureInfo;
static void *p_clEnqueueAcquireGLObjects = (void*)clEnqueueAcquireGLObjects;
static void *p_clEnqueueReleaseGLObjects = (void*)clEnqueueReleaseGLObjects;
static void *p_clGetGLContextInfoKHR = (void*)clGetGLContextInfoKHR;
*/
import "C"

import "log/slog"

// staticAddrs maps entry point names to their link-time addresses.
func staticAddrs() map[string]uintptr {
	return map[string]uintptr{
		"clGetPlatformIDs":                         uintptr(C.p_clGetPlatformIDs),
		"clGetPlatformInfo":                        uintptr(C.p_clGetPlatformInfo),
		"clGetDeviceIDs":                           uintptr(C.p_clGetDeviceIDs),
		"clGetDeviceInfo":                          uintptr(C.p_clGetDeviceInfo),
		"clCreateSubDevices":                       uintptr(C.p_clCreateSubDevices),
		"clRetainDevice":                           uintptr(C.p_clRetainDevice),
		"clReleaseDevice":                          uintptr(C.p_clReleaseDevice),
		"clSetDefaultDeviceCommandQueue":           uintptr(C.p_clSetDefaultDeviceCommandQueue),
		"clGetDeviceAndHostTimer":                  uintptr(C.p_clGetDeviceAndHostTimer),
		"clGetHostTimer":                           uintptr(C.p_clGetHostTimer),
		"clCreateContext":                          uintptr(C.p_clCreateContext),
		"clCreateContextFromType":                  uintptr(C.p_clCreateContextFromType),
		"clRetainContext":                          uintptr(C.p_clRetainContext),
		"clReleaseContext":                         uintptr(C.p_clReleaseContext),
		"clGetContextInfo":                         uintptr(C.p_clGetContextInfo),
		"clSetContextDestructorCallback":           uintptr(C.p_clSetContextDestructorCallback),
		"clCreateCommandQueueWithProperties":       uintptr(C.p_clCreateCommandQueueWithProperties),
		"clRetainCommandQueue":                     uintptr(C.p_clRetainCommandQueue),
		"clReleaseCommandQueue":                    uintptr(C.p_clReleaseCommandQueue),
		"clGetCommandQueueInfo":                    uintptr(C.p_clGetCommandQueueInfo),
		"clCreateBuffer":                           uintptr(C.p_clCreateBuffer),
		"clCreateSubBuffer":                        uintptr(C.p_clCreateSubBuffer),
		"clCreateImage":                            uintptr(C.p_clCreateImage),
		"clCreatePipe":                             uintptr(C.p_clCreatePipe),
		"clCreateBufferWithProperties":             uintptr(C.p_clCreateBufferWithProperties),
		"clCreateImageWithProperties":              uintptr(C.p_clCreateImageWithProperties),
		"clRetainMemObject":                        uintptr(C.p_clRetainMemObject),
		"clReleaseMemObject":                       uintptr(C.p_clReleaseMemObject),
		"clGetSupportedImageFormats":               uintptr(C.p_clGetSupportedImageFormats),
		"clGetMemObjectInfo":                       uintptr(C.p_clGetMemObjectInfo),
		"clGetImageInfo":                           uintptr(C.p_clGetImageInfo),
		"clGetPipeInfo":                            uintptr(C.p_clGetPipeInfo),
		"clSetMemObjectDestructorCallback":         uintptr(C.p_clSetMemObjectDestructorCallback),
		"clSVMAlloc":                               uintptr(C.p_clSVMAlloc),
		"clSVMFree":                                uintptr(C.p_clSVMFree),
		"clCreateSamplerWithProperties":            uintptr(C.p_clCreateSamplerWithProperties),
		"clRetainSampler":                          uintptr(C.p_clRetainSampler),
		"clReleaseSampler":                         uintptr(C.p_clReleaseSampler),
		"clGetSamplerInfo":                         uintptr(C.p_clGetSamplerInfo),
		"clCreateProgramWithSource":                uintptr(C.p_clCreateProgramWithSource),
		"clCreateProgramWithBinary":                uintptr(C.p_clCreateProgramWithBinary),
		"clCreateProgramWithBuiltInKernels":        uintptr(C.p_clCreateProgramWithBuiltInKernels),
		"clCreateProgramWithIL":                    uintptr(C.p_clCreateProgramWithIL),
		"clRetainProgram":                          uintptr(C.p_clRetainProgram),
		"clReleaseProgram":                         uintptr(C.p_clReleaseProgram),
		"clBuildProgram":                           uintptr(C.p_clBuildProgram),
		"clCompileProgram":                         uintptr(C.p_clCompileProgram),
		"clLinkProgram":                            uintptr(C.p_clLinkProgram),
		"clSetProgramReleaseCallback":              uintptr(C.p_clSetProgramReleaseCallback),
		"clSetProgramSpecializationConstant":       uintptr(C.p_clSetProgramSpecializationConstant),
		"clUnloadPlatformCompiler":                 uintptr(C.p_clUnloadPlatformCompiler),
		"clGetProgramInfo":                         uintptr(C.p_clGetProgramInfo),
		"clGetProgramBuildInfo":                    uintptr(C.p_clGetProgramBuildInfo),
		"clCreateKernel":                           uintptr(C.p_clCreateKernel),
		"clCreateKernelsInProgram":                 uintptr(C.p_clCreateKernelsInProgram),
		"clCloneKernel":                            uintptr(C.p_clCloneKernel),
		"clRetainKernel":                           uintptr(C.p_clRetainKernel),
		"clReleaseKernel":                          uintptr(C.p_clReleaseKernel),
		"clSetKernelArg":                           uintptr(C.p_clSetKernelArg),
		"clSetKernelArgSVMPointer":                 uintptr(C.p_clSetKernelArgSVMPointer),
		"clSetKernelExecInfo":                      uintptr(C.p_clSetKernelExecInfo),
		"clGetKernelInfo":                          uintptr(C.p_clGetKernelInfo),
		"clGetKernelArgInfo":                       uintptr(C.p_clGetKernelArgInfo),
		"clGetKernelWorkGroupInfo":                 uintptr(C.p_clGetKernelWorkGroupInfo),
		"clGetKernelSubGroupInfo":                  uintptr(C.p_clGetKernelSubGroupInfo),
		"clWaitForEvents":                          uintptr(C.p_clWaitForEvents),
		"clGetEventInfo":                           uintptr(C.p_clGetEventInfo),
		"clCreateUserEvent":                        uintptr(C.p_clCreateUserEvent),
		"clRetainEvent":                            uintptr(C.p_clRetainEvent),
		"clReleaseEvent":                           uintptr(C.p_clReleaseEvent),
		"clSetUserEventStatus":                     uintptr(C.p_clSetUserEventStatus),
		"clSetEventCallback":                       uintptr(C.p_clSetEventCallback),
		"clGetEventProfilingInfo":                  uintptr(C.p_clGetEventProfilingInfo),
		"clFlush":                                  uintptr(C.p_clFlush),
		"clFinish":                                 uintptr(C.p_clFinish),
		"clEnqueueReadBuffer":                      uintptr(C.p_clEnqueueReadBuffer),
		"clEnqueueReadBufferRect":                  uintptr(C.p_clEnqueueReadBufferRect),
		"clEnqueueWriteBuffer":                     uintptr(C.p_clEnqueueWriteBuffer),
		"clEnqueueWriteBufferRect":                 uintptr(C.p_clEnqueueWriteBufferRect),
		"clEnqueueFillBuffer":                      uintptr(C.p_clEnqueueFillBuffer),
		"clEnqueueCopyBuffer":                      uintptr(C.p_clEnqueueCopyBuffer),
		"clEnqueueCopyBufferRect":                  uintptr(C.p_clEnqueueCopyBufferRect),
		"clEnqueueReadImage":                       uintptr(C.p_clEnqueueReadImage),
		"clEnqueueWriteImage":                      uintptr(C.p_clEnqueueWriteImage),
		"clEnqueueFillImage":                       uintptr(C.p_clEnqueueFillImage),
		"clEnqueueCopyImage":                       uintptr(C.p_clEnqueueCopyImage),
		"clEnqueueCopyImageToBuffer":               uintptr(C.p_clEnqueueCopyImageToBuffer),
		"clEnqueueCopyBufferToImage":               uintptr(C.p_clEnqueueCopyBufferToImage),
		"clEnqueueMapBuffer":                       uintptr(C.p_clEnqueueMapBuffer),
		"clEnqueueMapImage":                        uintptr(C.p_clEnqueueMapImage),
		"clEnqueueUnmapMemObject":                  uintptr(C.p_clEnqueueUnmapMemObject),
		"clEnqueueMigrateMemObjects":               uintptr(C.p_clEnqueueMigrateMemObjects),
		"clEnqueueNDRangeKernel":                   uintptr(C.p_clEnqueueNDRangeKernel),
		"clEnqueueNativeKernel":                    uintptr(C.p_clEnqueueNativeKernel),
		"clEnqueueMarkerWithWaitList":              uintptr(C.p_clEnqueueMarkerWithWaitList),
		"clEnqueueBarrierWithWaitList":             uintptr(C.p_clEnqueueBarrierWithWaitList),
		"clEnqueueSVMFree":                         uintptr(C.p_clEnqueueSVMFree),
		"clEnqueueSVMMemcpy":                       uintptr(C.p_clEnqueueSVMMemcpy),
		"clEnqueueSVMMemFill":                      uintptr(C.p_clEnqueueSVMMemFill),
		"clEnqueueSVMMap":                          uintptr(C.p_clEnqueueSVMMap),
		"clEnqueueSVMUnmap":                        uintptr(C.p_clEnqueueSVMUnmap),
		"clEnqueueSVMMigrateMem":                   uintptr(C.p_clEnqueueSVMMigrateMem),
		"clGetExtensionFunctionAddressForPlatform": uintptr(C.p_clGetExtensionFunctionAddressForPlatform),
		"clCreateImage2D":                          uintptr(C.p_clCreateImage2D),
		"clCreateImage3D":                          uintptr(C.p_clCreateImage3D),
		"clEnqueueMarker":                          uintptr(C.p_clEnqueueMarker),
		"clEnqueueWaitForEvents":                   uintptr(C.p_clEnqueueWaitForEvents),
		"clEnqueueBarrier":                         uintptr(C.p_clEnqueueBarrier),
		"clUnloadCompiler":                         uintptr(C.p_clUnloadCompiler),
		"clGetExtensionFunctionAddress":            uintptr(C.p_clGetExtensionFunctionAddress),
		"clCreateCommandQueue":                     uintptr(C.p_clCreateCommandQueue),
		"clCreateSampler":                          uintptr(C.p_clCreateSampler),
		"clEnqueueTask":                            uintptr(C.p_clEnqueueTask),
		"clCreateFromGLBuffer":                     uintptr(C.p_clCreateFromGLBuffer),
		"clCreateFromGLTexture":                    uintptr(C.p_clCreateFromGLTexture),
		"clCreateFromGLRenderbuffer":               uintptr(C.p_clCreateFromGLRenderbuffer),
		"clGetGLObjectInfo":                        uintptr(C.p_clGetGLObjectInfo),
		"clGetGLTextureInfo":                       uintptr(C.p_clGetGLTextureInfo),
		"clEnqueueAcquireGLObjects":                uintptr(C.p_clEnqueueAcquireGLObjects),
		"clEnqueueReleaseGLObjects":                uintptr(C.p_clEnqueueReleaseGLObjects),
		"clGetGLContextInfoKHR":                    uintptr(C.p_clGetGLContextInfoKHR),
	}
}

// openRuntime binds the symbol table against the link-time
// addresses. It cannot fail; slots without a link-time address stay
// unresolved.
func openRuntime() (*Runtime, error) {
	rt := &Runtime{}
	addrs := staticAddrs()
	var bound, absent int
	for _, s := range rt.symbols() {
		if addr, ok := addrs[s.symbol()]; ok {
			s.bind(addr)
			bound++
		} else {
			absent++
		}
	}
	slog.Debug("cl: symbol table bound statically", "resolved", bound, "absent", absent)
	return rt, nil
}
