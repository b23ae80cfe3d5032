// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package cl

import "strconv"

// Status is a non-success status code returned by an OpenCL entry
// point. It is passed through exactly as the runtime produced it;
// the dispatch layer never remaps native codes.
type Status int32

func (s Status) Error() string {
	return "cl: " + s.String()
}

// String returns the Khronos name of the status code, or the raw
// value if the code is unknown.
func (s Status) String() string {
	switch s {
	case Success:
		return "CL_SUCCESS"
	case DeviceNotFound:
		return "CL_DEVICE_NOT_FOUND"
	case DeviceNotAvailable:
		return "CL_DEVICE_NOT_AVAILABLE"
	case CompilerNotAvailable:
		return "CL_COMPILER_NOT_AVAILABLE"
	case MemObjectAllocationFailure:
		return "CL_MEM_OBJECT_ALLOCATION_FAILURE"
	case OutOfResources:
		return "CL_OUT_OF_RESOURCES"
	case OutOfHostMemory:
		return "CL_OUT_OF_HOST_MEMORY"
	case ProfilingInfoNotAvailable:
		return "CL_PROFILING_INFO_NOT_AVAILABLE"
	case MemCopyOverlap:
		return "CL_MEM_COPY_OVERLAP"
	case ImageFormatMismatch:
		return "CL_IMAGE_FORMAT_MISMATCH"
	case ImageFormatNotSupported:
		return "CL_IMAGE_FORMAT_NOT_SUPPORTED"
	case BuildProgramFailure:
		return "CL_BUILD_PROGRAM_FAILURE"
	case MapFailure:
		return "CL_MAP_FAILURE"
	case MisalignedSubBufferOffset:
		return "CL_MISALIGNED_SUB_BUFFER_OFFSET"
	case ExecStatusErrorForEventsInWaitList:
		return "CL_EXEC_STATUS_ERROR_FOR_EVENTS_IN_WAIT_LIST"
	case CompileProgramFailure:
		return "CL_COMPILE_PROGRAM_FAILURE"
	case LinkerNotAvailable:
		return "CL_LINKER_NOT_AVAILABLE"
	case LinkProgramFailure:
		return "CL_LINK_PROGRAM_FAILURE"
	case DevicePartitionFailed:
		return "CL_DEVICE_PARTITION_FAILED"
	case KernelArgInfoNotAvailable:
		return "CL_KERNEL_ARG_INFO_NOT_AVAILABLE"
	case InvalidValue:
		return "CL_INVALID_VALUE"
	case InvalidDeviceType:
		return "CL_INVALID_DEVICE_TYPE"
	case InvalidPlatform:
		return "CL_INVALID_PLATFORM"
	case InvalidDevice:
		return "CL_INVALID_DEVICE"
	case InvalidContext:
		return "CL_INVALID_CONTEXT"
	case InvalidQueueProperties:
		return "CL_INVALID_QUEUE_PROPERTIES"
	case InvalidCommandQueue:
		return "CL_INVALID_COMMAND_QUEUE"
	case InvalidHostPtr:
		return "CL_INVALID_HOST_PTR"
	case InvalidMemObject:
		return "CL_INVALID_MEM_OBJECT"
	case InvalidImageFormatDescriptor:
		return "CL_INVALID_IMAGE_FORMAT_DESCRIPTOR"
	case InvalidImageSize:
		return "CL_INVALID_IMAGE_SIZE"
	case InvalidSampler:
		return "CL_INVALID_SAMPLER"
	case InvalidBinary:
		return "CL_INVALID_BINARY"
	case InvalidBuildOptions:
		return "CL_INVALID_BUILD_OPTIONS"
	case InvalidProgram:
		return "CL_INVALID_PROGRAM"
	case InvalidProgramExecutable:
		return "CL_INVALID_PROGRAM_EXECUTABLE"
	case InvalidKernelName:
		return "CL_INVALID_KERNEL_NAME"
	case InvalidKernelDefinition:
		return "CL_INVALID_KERNEL_DEFINITION"
	case InvalidKernel:
		return "CL_INVALID_KERNEL"
	case InvalidArgIndex:
		return "CL_INVALID_ARG_INDEX"
	case InvalidArgValue:
		return "CL_INVALID_ARG_VALUE"
	case InvalidArgSize:
		return "CL_INVALID_ARG_SIZE"
	case InvalidKernelArgs:
		return "CL_INVALID_KERNEL_ARGS"
	case InvalidWorkDimension:
		return "CL_INVALID_WORK_DIMENSION"
	case InvalidWorkGroupSize:
		return "CL_INVALID_WORK_GROUP_SIZE"
	case InvalidWorkItemSize:
		return "CL_INVALID_WORK_ITEM_SIZE"
	case InvalidGlobalOffset:
		return "CL_INVALID_GLOBAL_OFFSET"
	case InvalidEventWaitList:
		return "CL_INVALID_EVENT_WAIT_LIST"
	case InvalidEvent:
		return "CL_INVALID_EVENT"
	case InvalidOperation:
		return "CL_INVALID_OPERATION"
	case InvalidGLObject:
		return "CL_INVALID_GL_OBJECT"
	case InvalidBufferSize:
		return "CL_INVALID_BUFFER_SIZE"
	case InvalidMipLevel:
		return "CL_INVALID_MIP_LEVEL"
	case InvalidGlobalWorkSize:
		return "CL_INVALID_GLOBAL_WORK_SIZE"
	case InvalidProperty:
		return "CL_INVALID_PROPERTY"
	case InvalidImageDescriptor:
		return "CL_INVALID_IMAGE_DESCRIPTOR"
	case InvalidCompilerOptions:
		return "CL_INVALID_COMPILER_OPTIONS"
	case InvalidLinkerOptions:
		return "CL_INVALID_LINKER_OPTIONS"
	case InvalidDevicePartitionCount:
		return "CL_INVALID_DEVICE_PARTITION_COUNT"
	case InvalidPipeSize:
		return "CL_INVALID_PIPE_SIZE"
	case InvalidDeviceQueue:
		return "CL_INVALID_DEVICE_QUEUE"
	case InvalidSpecID:
		return "CL_INVALID_SPEC_ID"
	case MaxSizeRestrictionExceeded:
		return "CL_MAX_SIZE_RESTRICTION_EXCEEDED"
	case InvalidGLSharegroupReferenceKHR:
		return "CL_INVALID_GL_SHAREGROUP_REFERENCE_KHR"
	case PlatformNotFoundKHR:
		return "CL_PLATFORM_NOT_FOUND_KHR"
	case ContextTerminatedKHR:
		return "CL_CONTEXT_TERMINATED_KHR"
	}
	return "error " + strconv.Itoa(int(s))
}

// statusErr converts a native status code into an error, with nil
// meaning CL_SUCCESS.
func statusErr(st int32) error {
	if st == Success {
		return nil
	}
	return Status(st)
}
