// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package cl

// symbols names every entry point of the symbol table and returns
// the list the loader binds against. Each entry point appears here
// exactly once; adding a slot to Runtime without listing it here
// leaves it permanently unresolved, and listing a name twice would
// bind the same symbol to two slots. Order follows cl.h.
func (rt *Runtime) symbols() []binder {
	return []binder{
		// Platform API.
		sym(&rt.getPlatformIDs, "clGetPlatformIDs"),
		sym(&rt.getPlatformInfo, "clGetPlatformInfo"),

		// Device APIs.
		sym(&rt.getDeviceIDs, "clGetDeviceIDs"),
		sym(&rt.getDeviceInfo, "clGetDeviceInfo"),
		sym(&rt.createSubDevices, "clCreateSubDevices"),
		sym(&rt.retainDevice, "clRetainDevice"),
		sym(&rt.releaseDevice, "clReleaseDevice"),
		sym(&rt.setDefaultDeviceCommandQueue, "clSetDefaultDeviceCommandQueue"),
		sym(&rt.getDeviceAndHostTimer, "clGetDeviceAndHostTimer"),
		sym(&rt.getHostTimer, "clGetHostTimer"),

		// Context APIs.
		sym(&rt.createContext, "clCreateContext"),
		sym(&rt.createContextFromType, "clCreateContextFromType"),
		sym(&rt.retainContext, "clRetainContext"),
		sym(&rt.releaseContext, "clReleaseContext"),
		sym(&rt.getContextInfo, "clGetContextInfo"),
		sym(&rt.setContextDestructorCallback, "clSetContextDestructorCallback"),

		// Command queue APIs.
		sym(&rt.createCommandQueueWithProperties, "clCreateCommandQueueWithProperties"),
		sym(&rt.retainCommandQueue, "clRetainCommandQueue"),
		sym(&rt.releaseCommandQueue, "clReleaseCommandQueue"),
		sym(&rt.getCommandQueueInfo, "clGetCommandQueueInfo"),

		// Memory object APIs.
		sym(&rt.createBuffer, "clCreateBuffer"),
		sym(&rt.createSubBuffer, "clCreateSubBuffer"),
		sym(&rt.createImage, "clCreateImage"),
		sym(&rt.createPipe, "clCreatePipe"),
		sym(&rt.createBufferWithProperties, "clCreateBufferWithProperties"),
		sym(&rt.createImageWithProperties, "clCreateImageWithProperties"),
		sym(&rt.retainMemObject, "clRetainMemObject"),
		sym(&rt.releaseMemObject, "clReleaseMemObject"),
		sym(&rt.getSupportedImageFormats, "clGetSupportedImageFormats"),
		sym(&rt.getMemObjectInfo, "clGetMemObjectInfo"),
		sym(&rt.getImageInfo, "clGetImageInfo"),
		sym(&rt.getPipeInfo, "clGetPipeInfo"),
		sym(&rt.setMemObjectDestructorCallback, "clSetMemObjectDestructorCallback"),

		// SVM allocation APIs.
		sym(&rt.svmAlloc, "clSVMAlloc"),
		sym(&rt.svmFree, "clSVMFree"),

		// Sampler APIs.
		sym(&rt.createSamplerWithProperties, "clCreateSamplerWithProperties"),
		sym(&rt.retainSampler, "clRetainSampler"),
		sym(&rt.releaseSampler, "clReleaseSampler"),
		sym(&rt.getSamplerInfo, "clGetSamplerInfo"),

		// Program object APIs.
		sym(&rt.createProgramWithSource, "clCreateProgramWithSource"),
		sym(&rt.createProgramWithBinary, "clCreateProgramWithBinary"),
		sym(&rt.createProgramWithBuiltInKernels, "clCreateProgramWithBuiltInKernels"),
		sym(&rt.createProgramWithIL, "clCreateProgramWithIL"),
		sym(&rt.retainProgram, "clRetainProgram"),
		sym(&rt.releaseProgram, "clReleaseProgram"),
		sym(&rt.buildProgram, "clBuildProgram"),
		sym(&rt.compileProgram, "clCompileProgram"),
		sym(&rt.linkProgram, "clLinkProgram"),
		sym(&rt.setProgramReleaseCallback, "clSetProgramReleaseCallback"),
		sym(&rt.setProgramSpecializationConstant, "clSetProgramSpecializationConstant"),
		sym(&rt.unloadPlatformCompiler, "clUnloadPlatformCompiler"),
		sym(&rt.getProgramInfo, "clGetProgramInfo"),
		sym(&rt.getProgramBuildInfo, "clGetProgramBuildInfo"),

		// Kernel object APIs.
		sym(&rt.createKernel, "clCreateKernel"),
		sym(&rt.createKernelsInProgram, "clCreateKernelsInProgram"),
		sym(&rt.cloneKernel, "clCloneKernel"),
		sym(&rt.retainKernel, "clRetainKernel"),
		sym(&rt.releaseKernel, "clReleaseKernel"),
		sym(&rt.setKernelArg, "clSetKernelArg"),
		sym(&rt.setKernelArgSVMPointer, "clSetKernelArgSVMPointer"),
		sym(&rt.setKernelExecInfo, "clSetKernelExecInfo"),
		sym(&rt.getKernelInfo, "clGetKernelInfo"),
		sym(&rt.getKernelArgInfo, "clGetKernelArgInfo"),
		sym(&rt.getKernelWorkGroupInfo, "clGetKernelWorkGroupInfo"),
		sym(&rt.getKernelSubGroupInfo, "clGetKernelSubGroupInfo"),

		// Event object APIs.
		sym(&rt.waitForEvents, "clWaitForEvents"),
		sym(&rt.getEventInfo, "clGetEventInfo"),
		sym(&rt.createUserEvent, "clCreateUserEvent"),
		sym(&rt.retainEvent, "clRetainEvent"),
		sym(&rt.releaseEvent, "clReleaseEvent"),
		sym(&rt.setUserEventStatus, "clSetUserEventStatus"),
		sym(&rt.setEventCallback, "clSetEventCallback"),

		// Profiling APIs.
		sym(&rt.getEventProfilingInfo, "clGetEventProfilingInfo"),

		// Flush and finish APIs.
		sym(&rt.flush, "clFlush"),
		sym(&rt.finish, "clFinish"),

		// Enqueued commands APIs.
		sym(&rt.enqueueReadBuffer, "clEnqueueReadBuffer"),
		sym(&rt.enqueueReadBufferRect, "clEnqueueReadBufferRect"),
		sym(&rt.enqueueWriteBuffer, "clEnqueueWriteBuffer"),
		sym(&rt.enqueueWriteBufferRect, "clEnqueueWriteBufferRect"),
		sym(&rt.enqueueFillBuffer, "clEnqueueFillBuffer"),
		sym(&rt.enqueueCopyBuffer, "clEnqueueCopyBuffer"),
		sym(&rt.enqueueCopyBufferRect, "clEnqueueCopyBufferRect"),
		sym(&rt.enqueueReadImage, "clEnqueueReadImage"),
		sym(&rt.enqueueWriteImage, "clEnqueueWriteImage"),
		sym(&rt.enqueueFillImage, "clEnqueueFillImage"),
		sym(&rt.enqueueCopyImage, "clEnqueueCopyImage"),
		sym(&rt.enqueueCopyImageToBuffer, "clEnqueueCopyImageToBuffer"),
		sym(&rt.enqueueCopyBufferToImage, "clEnqueueCopyBufferToImage"),
		sym(&rt.enqueueMapBuffer, "clEnqueueMapBuffer"),
		sym(&rt.enqueueMapImage, "clEnqueueMapImage"),
		sym(&rt.enqueueUnmapMemObject, "clEnqueueUnmapMemObject"),
		sym(&rt.enqueueMigrateMemObjects, "clEnqueueMigrateMemObjects"),
		sym(&rt.enqueueNDRangeKernel, "clEnqueueNDRangeKernel"),
		sym(&rt.enqueueNativeKernel, "clEnqueueNativeKernel"),
		sym(&rt.enqueueMarkerWithWaitList, "clEnqueueMarkerWithWaitList"),
		sym(&rt.enqueueBarrierWithWaitList, "clEnqueueBarrierWithWaitList"),
		sym(&rt.enqueueSVMFree, "clEnqueueSVMFree"),
		sym(&rt.enqueueSVMMemcpy, "clEnqueueSVMMemcpy"),
		sym(&rt.enqueueSVMMemFill, "clEnqueueSVMMemFill"),
		sym(&rt.enqueueSVMMap, "clEnqueueSVMMap"),
		sym(&rt.enqueueSVMUnmap, "clEnqueueSVMUnmap"),
		sym(&rt.enqueueSVMMigrateMem, "clEnqueueSVMMigrateMem"),

		// Extension function access.
		sym(&rt.getExtensionFunctionAddressForPlatform, "clGetExtensionFunctionAddressForPlatform"),

		// Deprecated OpenCL 1.1 APIs.
		sym(&rt.createImage2D, "clCreateImage2D"),
		sym(&rt.createImage3D, "clCreateImage3D"),
		sym(&rt.enqueueMarker, "clEnqueueMarker"),
		sym(&rt.enqueueWaitForEvents, "clEnqueueWaitForEvents"),
		sym(&rt.enqueueBarrier, "clEnqueueBarrier"),
		sym(&rt.unloadCompiler, "clUnloadCompiler"),
		sym(&rt.getExtensionFunctionAddress, "clGetExtensionFunctionAddress"),

		// Deprecated OpenCL 2.0 APIs.
		sym(&rt.createCommandQueue, "clCreateCommandQueue"),
		sym(&rt.createSampler, "clCreateSampler"),
		sym(&rt.enqueueTask, "clEnqueueTask"),

		// OpenGL sharing (cl_gl).
		sym(&rt.createFromGLBuffer, "clCreateFromGLBuffer"),
		sym(&rt.createFromGLTexture, "clCreateFromGLTexture"),
		sym(&rt.createFromGLRenderbuffer, "clCreateFromGLRenderbuffer"),
		sym(&rt.getGLObjectInfo, "clGetGLObjectInfo"),
		sym(&rt.getGLTextureInfo, "clGetGLTextureInfo"),
		sym(&rt.enqueueAcquireGLObjects, "clEnqueueAcquireGLObjects"),
		sym(&rt.enqueueReleaseGLObjects, "clEnqueueReleaseGLObjects"),
		sym(&rt.getGLContextInfoKHR, "clGetGLContextInfoKHR"),

		// ICD and KHR extensions (cl_ext).
		sym(&rt.icdGetPlatformIDsKHR, "clIcdGetPlatformIDsKHR"),
		sym(&rt.getICDLoaderInfoOCLICD, "clGetICDLoaderInfoOCLICD"),
		sym(&rt.terminateContextKHR, "clTerminateContextKHR"),
		sym(&rt.createCommandQueueWithPropertiesKHR, "clCreateCommandQueueWithPropertiesKHR"),
	}
}
