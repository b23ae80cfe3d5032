// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package cl

import (
	"errors"
	"fmt"
	"slices"
	"testing"
	"unsafe"
)

// stubRuntime installs an empty, named symbol table as the
// process-wide runtime. Tests resolve individual slots with set.
func stubRuntime(t *testing.T) *Runtime {
	t.Helper()
	rt := &Runtime{}
	rt.symbols()
	prev := loadRuntime
	loadRuntime = func() (*Runtime, error) { return rt, nil }
	t.Cleanup(func() { loadRuntime = prev })
	return rt
}

func TestGetPlatformIDs(t *testing.T) {
	rt := stubRuntime(t)
	want := []Platform{0x10, 0x20}
	rt.getPlatformIDs.set(func(numEntries uint32, platforms *Platform, numPlatforms *uint32) int32 {
		if platforms == nil {
			*numPlatforms = uint32(len(want))
			return Success
		}
		copy(unsafe.Slice(platforms, numEntries), want)
		return Success
	})
	ids, err := GetPlatformIDs()
	if err != nil {
		t.Fatalf("GetPlatformIDs:\nhave %v\nwant nil", err)
	}
	if !slices.Equal(ids, want) {
		t.Fatalf("GetPlatformIDs:\nhave %v\nwant %v", ids, want)
	}
}

func TestGetPlatformIDsNone(t *testing.T) {
	rt := stubRuntime(t)
	rt.getPlatformIDs.set(func(numEntries uint32, platforms *Platform, numPlatforms *uint32) int32 {
		if platforms == nil {
			*numPlatforms = 0
		}
		return Success
	})
	ids, err := GetPlatformIDs()
	if err != nil {
		t.Fatalf("GetPlatformIDs:\nhave %v\nwant nil", err)
	}
	if ids != nil {
		t.Fatalf("GetPlatformIDs:\nhave %v\nwant nil", ids)
	}
}

func TestStatusPassthrough(t *testing.T) {
	rt := stubRuntime(t)
	rt.getPlatformIDs.set(func(numEntries uint32, platforms *Platform, numPlatforms *uint32) int32 {
		return OutOfHostMemory
	})
	_, err := GetPlatformIDs()
	var st Status
	if !errors.As(err, &st) {
		t.Fatalf("GetPlatformIDs error:\nhave %T\nwant Status", err)
	}
	if st != OutOfHostMemory {
		t.Fatalf("status:\nhave %d\nwant %d", st, OutOfHostMemory)
	}
	if s := err.Error(); s != "cl: CL_OUT_OF_HOST_MEMORY" {
		t.Fatalf("Error:\nhave %q\nwant %q", s, "cl: CL_OUT_OF_HOST_MEMORY")
	}
}

func TestMissingFunctionDispatch(t *testing.T) {
	rt := stubRuntime(t)
	// The runtime loaded, but this entry point was not resolved.
	err := SetContextDestructorCallback(1, 0, nil)
	var missing *MissingFunctionError
	if !errors.As(err, &missing) {
		t.Fatalf("SetContextDestructorCallback error:\nhave %T\nwant *MissingFunctionError", err)
	}
	if missing.Name != "clSetContextDestructorCallback" {
		t.Fatalf("Name:\nhave %q\nwant %q", missing.Name, "clSetContextDestructorCallback")
	}
	if errors.Is(err, ErrRuntimeNotLoaded) {
		t.Fatal("missing function must not match ErrRuntimeNotLoaded")
	}
	// Other slots keep working.
	rt.finish.set(func(queue CommandQueue) int32 { return Success })
	if err := Finish(1); err != nil {
		t.Fatalf("Finish:\nhave %v\nwant nil", err)
	}
}

func TestNotLoadedDispatch(t *testing.T) {
	prev := loadRuntime
	loadRuntime = func() (*Runtime, error) {
		return nil, fmt.Errorf("%w: no candidate could be opened", ErrRuntimeNotLoaded)
	}
	t.Cleanup(func() { loadRuntime = prev })

	if _, err := GetPlatformIDs(); !errors.Is(err, ErrRuntimeNotLoaded) {
		t.Fatalf("GetPlatformIDs:\nhave %v\nwant ErrRuntimeNotLoaded", err)
	}
	if err := Finish(1); !errors.Is(err, ErrRuntimeNotLoaded) {
		t.Fatalf("Finish:\nhave %v\nwant ErrRuntimeNotLoaded", err)
	}
	if IsRuntimeAvailable() {
		t.Fatal("IsRuntimeAvailable: have true, want false")
	}
}

func TestGetPlatformInfo(t *testing.T) {
	rt := stubRuntime(t)
	const version = "OpenCL 3.0\x00"
	rt.getPlatformInfo.set(func(p Platform, param uint32, size uintptr, value unsafe.Pointer, sizeRet *uintptr) int32 {
		if p != 0x10 || param != PlatformVersion {
			return InvalidValue
		}
		if value == nil {
			*sizeRet = uintptr(len(version))
			return Success
		}
		copy(unsafe.Slice((*byte)(value), size), version)
		return Success
	})
	data, err := GetPlatformInfo(0x10, PlatformVersion)
	if err != nil {
		t.Fatalf("GetPlatformInfo:\nhave %v\nwant nil", err)
	}
	if s := InfoString(data); s != "OpenCL 3.0" {
		t.Fatalf("InfoString:\nhave %q\nwant %q", s, "OpenCL 3.0")
	}
}

func TestGetInfoFailurePassthrough(t *testing.T) {
	rt := stubRuntime(t)
	rt.getDeviceInfo.set(func(d Device, param uint32, size uintptr, value unsafe.Pointer, sizeRet *uintptr) int32 {
		return InvalidDevice
	})
	_, err := GetDeviceInfo(1, DeviceName)
	var st Status
	if !errors.As(err, &st) || st != InvalidDevice {
		t.Fatalf("GetDeviceInfo:\nhave %v\nwant CL_INVALID_DEVICE", err)
	}
}

func TestEnqueueReadBufferArgs(t *testing.T) {
	rt := stubRuntime(t)
	rt.enqueueReadBuffer.set(func(queue CommandQueue, buf Mem, blocking uint32, offset, size uintptr, ptr unsafe.Pointer, numWait uint32, waitList, event *Event) int32 {
		if queue != 1 || buf != 2 {
			t.Errorf("handles:\nhave %d, %d\nwant 1, 2", queue, buf)
		}
		if blocking != 1 {
			t.Errorf("blocking:\nhave %d\nwant 1", blocking)
		}
		if numWait != 2 || waitList == nil {
			t.Errorf("wait list:\nhave %d, %v\nwant 2, non-nil", numWait, waitList)
		}
		return Success
	})
	var dst [8]byte
	wait := []Event{3, 4}
	err := EnqueueReadBuffer(1, 2, true, 0, uintptr(len(dst)), unsafe.Pointer(&dst[0]), wait, nil)
	if err != nil {
		t.Fatalf("EnqueueReadBuffer:\nhave %v\nwant nil", err)
	}
}

func TestEnqueueNDRangeKernelArgs(t *testing.T) {
	rt := stubRuntime(t)
	rt.enqueueNDRangeKernel.set(func(queue CommandQueue, krn Kernel, workDim uint32, globalOffset, globalSize, localSize *uintptr, numWait uint32, waitList, event *Event) int32 {
		if workDim != 2 {
			t.Errorf("workDim:\nhave %d\nwant 2", workDim)
		}
		if globalOffset != nil || localSize != nil {
			t.Error("nil slices must become nil pointers")
		}
		if globalSize == nil || *globalSize != 64 {
			t.Errorf("globalSize:\nhave %v\nwant &64", globalSize)
		}
		if numWait != 0 || waitList != nil {
			t.Errorf("wait list:\nhave %d, %v\nwant 0, nil", numWait, waitList)
		}
		return Success
	})
	err := EnqueueNDRangeKernel(1, 2, 2, nil, []uintptr{64, 64}, nil, nil, nil)
	if err != nil {
		t.Fatalf("EnqueueNDRangeKernel:\nhave %v\nwant nil", err)
	}
}

func TestCreateContextStatus(t *testing.T) {
	rt := stubRuntime(t)
	rt.createContext.set(func(props *uintptr, numDevices uint32, devices *Device, pfnNotify uintptr, userData unsafe.Pointer, status *int32) Context {
		if props != nil {
			t.Error("nil props must become a nil pointer")
		}
		if numDevices != 1 || devices == nil {
			t.Errorf("devices:\nhave %d, %v\nwant 1, non-nil", numDevices, devices)
		}
		*status = Success
		return 0xc0
	})
	ctx, err := CreateContext(nil, []Device{7}, 0, nil)
	if err != nil {
		t.Fatalf("CreateContext:\nhave %v\nwant nil", err)
	}
	if ctx != 0xc0 {
		t.Fatalf("CreateContext:\nhave %#x\nwant 0xc0", ctx)
	}

	rt.createContext.set(func(props *uintptr, numDevices uint32, devices *Device, pfnNotify uintptr, userData unsafe.Pointer, status *int32) Context {
		*status = DeviceNotAvailable
		return 0
	})
	if _, err := CreateContext(nil, []Device{7}, 0, nil); err != Status(DeviceNotAvailable) {
		t.Fatalf("CreateContext:\nhave %v\nwant CL_DEVICE_NOT_AVAILABLE", err)
	}
}

func TestCreateProgramWithSourceArgs(t *testing.T) {
	rt := stubRuntime(t)
	srcs := []string{"__kernel void a() {}", "__kernel void b() {}"}
	rt.createProgramWithSource.set(func(ctx Context, count uint32, strs **byte, lengths *uintptr, status *int32) Program {
		if count != 2 || strs == nil || lengths == nil {
			t.Errorf("sources:\nhave %d, %v, %v\nwant 2, non-nil, non-nil", count, strs, lengths)
			*status = InvalidValue
			return 0
		}
		ptrs := unsafe.Slice(strs, count)
		lens := unsafe.Slice(lengths, count)
		for i := range srcs {
			if got := string(unsafe.Slice(ptrs[i], lens[i])); got != srcs[i] {
				t.Errorf("source %d:\nhave %q\nwant %q", i, got, srcs[i])
			}
		}
		*status = Success
		return 0xb0
	})
	prog, err := CreateProgramWithSource(0xc0, srcs)
	if err != nil {
		t.Fatalf("CreateProgramWithSource:\nhave %v\nwant nil", err)
	}
	if prog == 0 {
		t.Fatal("CreateProgramWithSource: have 0, want non-zero")
	}
}

func TestSVMAlloc(t *testing.T) {
	rt := stubRuntime(t)
	var backing [64]byte
	rt.svmAlloc.set(func(ctx Context, flags uint64, size uintptr, alignment uint32) unsafe.Pointer {
		if size != 64 {
			t.Errorf("size:\nhave %d\nwant 64", size)
		}
		return unsafe.Pointer(&backing[0])
	})
	ptr, err := SVMAlloc(0xc0, SVMMemFineGrainBuffer, 64, 0)
	if err != nil {
		t.Fatalf("SVMAlloc:\nhave %v\nwant nil", err)
	}
	if ptr != unsafe.Pointer(&backing[0]) {
		t.Fatal("SVMAlloc returned an unexpected pointer")
	}
}
