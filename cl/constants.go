// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package cl

// Status codes returned by the OpenCL runtime.
const (
	Success                                = 0
	DeviceNotFound                         = -1
	DeviceNotAvailable                     = -2
	CompilerNotAvailable                   = -3
	MemObjectAllocationFailure             = -4
	OutOfResources                         = -5
	OutOfHostMemory                        = -6
	ProfilingInfoNotAvailable              = -7
	MemCopyOverlap                         = -8
	ImageFormatMismatch                    = -9
	ImageFormatNotSupported                = -10
	BuildProgramFailure                    = -11
	MapFailure                             = -12
	MisalignedSubBufferOffset              = -13
	ExecStatusErrorForEventsInWaitList     = -14
	CompileProgramFailure                  = -15
	LinkerNotAvailable                     = -16
	LinkProgramFailure                     = -17
	DevicePartitionFailed                  = -18
	KernelArgInfoNotAvailable              = -19
	InvalidValue                           = -30
	InvalidDeviceType                      = -31
	InvalidPlatform                        = -32
	InvalidDevice                          = -33
	InvalidContext                         = -34
	InvalidQueueProperties                 = -35
	InvalidCommandQueue                    = -36
	InvalidHostPtr                         = -37
	InvalidMemObject                       = -38
	InvalidImageFormatDescriptor           = -39
	InvalidImageSize                       = -40
	InvalidSampler                         = -41
	InvalidBinary                          = -42
	InvalidBuildOptions                    = -43
	InvalidProgram                         = -44
	InvalidProgramExecutable               = -45
	InvalidKernelName                      = -46
	InvalidKernelDefinition                = -47
	InvalidKernel                          = -48
	InvalidArgIndex                        = -49
	InvalidArgValue                        = -50
	InvalidArgSize                         = -51
	InvalidKernelArgs                      = -52
	InvalidWorkDimension                   = -53
	InvalidWorkGroupSize                   = -54
	InvalidWorkItemSize                    = -55
	InvalidGlobalOffset                    = -56
	InvalidEventWaitList                   = -57
	InvalidEvent                           = -58
	InvalidOperation                       = -59
	InvalidGLObject                        = -60
	InvalidBufferSize                      = -61
	InvalidMipLevel                        = -62
	InvalidGlobalWorkSize                  = -63
	InvalidProperty                        = -64
	InvalidImageDescriptor                 = -65
	InvalidCompilerOptions                 = -66
	InvalidLinkerOptions                   = -67
	InvalidDevicePartitionCount            = -68
	InvalidPipeSize                        = -69
	InvalidDeviceQueue                     = -70
	InvalidSpecID                          = -71
	MaxSizeRestrictionExceeded             = -72
	InvalidGLSharegroupReferenceKHR        = -1000
	PlatformNotFoundKHR                    = -1001
	ContextTerminatedKHR                   = -1121
)

// Device types (cl_device_type bitfield).
const (
	DeviceTypeDefault     = 1 << 0
	DeviceTypeCPU         = 1 << 1
	DeviceTypeGPU         = 1 << 2
	DeviceTypeAccelerator = 1 << 3
	DeviceTypeCustom      = 1 << 4
	DeviceTypeAll         = 0xFFFFFFFF
)

// Platform info parameter names (cl_platform_info).
const (
	PlatformProfile           = 0x0900
	PlatformVersion           = 0x0901
	PlatformName              = 0x0902
	PlatformVendor            = 0x0903
	PlatformExtensions        = 0x0904
	PlatformHostTimerResolution = 0x0905
	PlatformNumericVersion    = 0x0906
	PlatformExtensionsWithVersion = 0x0907
)

// Device info parameter names (cl_device_info), partial set.
const (
	DeviceType                   = 0x1000
	DeviceVendorID               = 0x1001
	DeviceMaxComputeUnits        = 0x1002
	DeviceMaxWorkItemDimensions  = 0x1003
	DeviceMaxWorkGroupSize       = 0x1004
	DeviceMaxWorkItemSizes       = 0x1005
	DeviceMaxMemAllocSize        = 0x1010
	DeviceImageSupport           = 0x1016
	DeviceMaxSamplers            = 0x1018
	DeviceGlobalMemSize          = 0x101F
	DeviceLocalMemSize           = 0x1023
	DeviceAvailable              = 0x1027
	DeviceCompilerAvailable      = 0x1028
	DeviceName                   = 0x102B
	DeviceVendor                 = 0x102C
	DriverVersion                = 0x102D
	DeviceProfile                = 0x102E
	DeviceVersion                = 0x102F
	DeviceExtensions             = 0x1030
	DevicePlatform               = 0x1031
	DeviceOpenCLCVersion         = 0x103D
	DeviceLinkerAvailable        = 0x103E
	DeviceBuiltInKernels         = 0x103F
	DeviceSVMCapabilities        = 0x1053
	DeviceNumericVersion         = 0x105E
)

// Context info parameter names (cl_context_info).
const (
	ContextReferenceCount = 0x1080
	ContextDevices        = 0x1081
	ContextProperties     = 0x1082
	ContextNumDevices     = 0x1083
)

// Context properties (cl_context_properties keys).
const (
	ContextPlatform        = 0x1084
	ContextInteropUserSync = 0x1085
)

// Command queue info parameter names (cl_command_queue_info).
const (
	QueueContext        = 0x1090
	QueueDevice         = 0x1091
	QueueReferenceCount = 0x1092
	QueueProperties     = 0x1093
	QueueSize           = 0x1094
	QueueDeviceDefault  = 0x1095
)

// Command queue properties (cl_command_queue_properties bitfield).
const (
	QueueOutOfOrderExecModeEnable = 1 << 0
	QueueProfilingEnable          = 1 << 1
	QueueOnDevice                 = 1 << 2
	QueueOnDeviceDefault          = 1 << 3
)

// Memory flags (cl_mem_flags bitfield).
const (
	MemReadWrite     = 1 << 0
	MemWriteOnly     = 1 << 1
	MemReadOnly      = 1 << 2
	MemUseHostPtr    = 1 << 3
	MemAllocHostPtr  = 1 << 4
	MemCopyHostPtr   = 1 << 5
	MemHostWriteOnly = 1 << 7
	MemHostReadOnly  = 1 << 8
	MemHostNoAccess  = 1 << 9
	MemSVMFineGrainBuffer = 1 << 10
	MemSVMAtomics         = 1 << 11
	MemKernelReadAndWrite = 1 << 12
)

// SVM memory flags (cl_svm_mem_flags bitfield); they share the
// cl_mem_flags values above.
const (
	SVMMemReadWrite       = MemReadWrite
	SVMMemWriteOnly       = MemWriteOnly
	SVMMemReadOnly        = MemReadOnly
	SVMMemFineGrainBuffer = MemSVMFineGrainBuffer
	SVMMemAtomics         = MemSVMAtomics
)

// Map flags (cl_map_flags bitfield).
const (
	MapRead                 = 1 << 0
	MapWrite                = 1 << 1
	MapWriteInvalidateRegion = 1 << 2
)

// Memory migration flags (cl_mem_migration_flags bitfield).
const (
	MigrateMemObjectHost             = 1 << 0
	MigrateMemObjectContentUndefined = 1 << 1
)

// Memory object types (cl_mem_object_type).
const (
	MemObjectBuffer         = 0x10F0
	MemObjectImage2D        = 0x10F1
	MemObjectImage3D        = 0x10F2
	MemObjectImage2DArray   = 0x10F3
	MemObjectImage1D        = 0x10F4
	MemObjectImage1DArray   = 0x10F5
	MemObjectImage1DBuffer  = 0x10F6
	MemObjectPipe           = 0x10F7
)

// Buffer creation types (cl_buffer_create_type).
const (
	BufferCreateTypeRegion = 0x1220
)

// Memory object info parameter names (cl_mem_info).
const (
	MemType           = 0x1100
	MemFlags          = 0x1101
	MemSize           = 0x1102
	MemHostPtr        = 0x1103
	MemMapCount       = 0x1104
	MemReferenceCount = 0x1105
	MemContext        = 0x1106
	MemAssociatedMemObject = 0x1107
	MemOffset         = 0x1108
	MemUsesSVMPointer = 0x1109
	MemProperties     = 0x110A
)

// Image info parameter names (cl_image_info).
const (
	ImageFormatInfo  = 0x1110
	ImageElementSize = 0x1111
	ImageRowPitch    = 0x1112
	ImageSlicePitch  = 0x1113
	ImageWidth       = 0x1114
	ImageHeight      = 0x1115
	ImageDepth       = 0x1116
	ImageArraySize   = 0x1117
	ImageNumMipLevels = 0x119
	ImageNumSamples  = 0x111A
)

// Sampler info parameter names (cl_sampler_info).
const (
	SamplerReferenceCount   = 0x1150
	SamplerContext          = 0x1151
	SamplerNormalizedCoords = 0x1152
	SamplerAddressingModeInfo = 0x1153
	SamplerFilterModeInfo   = 0x1154
	SamplerProperties       = 0x1158
)

// Addressing modes (cl_addressing_mode).
const (
	AddressNone           = 0x1130
	AddressClampToEdge    = 0x1131
	AddressClamp          = 0x1132
	AddressRepeat         = 0x1133
	AddressMirroredRepeat = 0x1134
)

// Filter modes (cl_filter_mode).
const (
	FilterNearest = 0x1140
	FilterLinear  = 0x1141
)

// Program info parameter names (cl_program_info).
const (
	ProgramReferenceCount = 0x1160
	ProgramContext        = 0x1161
	ProgramNumDevices     = 0x1162
	ProgramDevices        = 0x1163
	ProgramSource         = 0x1164
	ProgramBinarySizes    = 0x1165
	ProgramBinaries       = 0x1166
	ProgramNumKernels     = 0x1167
	ProgramKernelNames    = 0x1168
	ProgramIL             = 0x1169
)

// Program build info parameter names (cl_program_build_info).
const (
	ProgramBuildStatus  = 0x1181
	ProgramBuildOptions = 0x1182
	ProgramBuildLog     = 0x1183
	ProgramBinaryType   = 0x1184
)

// Build status values (cl_build_status).
const (
	BuildSuccess    = 0
	BuildNone       = -1
	BuildError      = -2
	BuildInProgress = -3
)

// Kernel info parameter names (cl_kernel_info).
const (
	KernelFunctionName   = 0x1190
	KernelNumArgs        = 0x1191
	KernelReferenceCount = 0x1192
	KernelContext        = 0x1193
	KernelProgram        = 0x1194
	KernelAttributes     = 0x1195
)

// Kernel work-group info parameter names (cl_kernel_work_group_info).
const (
	KernelWorkGroupSize        = 0x11B0
	KernelCompileWorkGroupSize = 0x11B1
	KernelLocalMemSize         = 0x11B2
	KernelPreferredWorkGroupSizeMultiple = 0x11B3
	KernelPrivateMemSize       = 0x11B4
	KernelGlobalWorkSize       = 0x11B5
)

// Event info parameter names (cl_event_info).
const (
	EventCommandQueue           = 0x11D0
	EventCommandType            = 0x11D1
	EventReferenceCount         = 0x11D2
	EventCommandExecutionStatus = 0x11D3
	EventContext                = 0x11D4
)

// Command execution status values.
const (
	Complete  = 0x0
	Running   = 0x1
	Submitted = 0x2
	Queued    = 0x3
)

// Profiling info parameter names (cl_profiling_info).
const (
	ProfilingCommandQueued   = 0x1280
	ProfilingCommandSubmit   = 0x1281
	ProfilingCommandStart    = 0x1282
	ProfilingCommandEnd      = 0x1283
	ProfilingCommandComplete = 0x1284
)

// GL object types (cl_gl_object_type).
const (
	GLObjectBuffer       = 0x2000
	GLObjectTexture2D    = 0x2001
	GLObjectTexture3D    = 0x2002
	GLObjectRenderbuffer = 0x2003
	GLObjectTexture2DArray = 0x200E
	GLObjectTexture1D      = 0x200F
	GLObjectTexture1DArray = 0x2010
	GLObjectTextureBuffer  = 0x2011
)

// ICD loader info parameter names (cl_icdl_*).
const (
	ICDLOCLVersion = 1
	ICDLVersion    = 2
	ICDLName       = 3
	ICDLVendor     = 4
)
