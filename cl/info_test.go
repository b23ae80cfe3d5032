// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package cl

import (
	"testing"
	"unsafe"
)

func TestInfoString(t *testing.T) {
	cases := []struct {
		data []byte
		want string
	}{
		{nil, ""},
		{[]byte{0}, ""},
		{[]byte("FULL_PROFILE\x00"), "FULL_PROFILE"},
		{[]byte("no terminator"), "no terminator"},
		{[]byte("cut\x00here"), "cut"},
	}
	for _, c := range cases {
		if s := InfoString(c.data); s != c.want {
			t.Fatalf("InfoString(%q):\nhave %q\nwant %q", c.data, s, c.want)
		}
	}
}

func TestInfoValue(t *testing.T) {
	want := uint32(0x1234abcd)
	data := unsafe.Slice((*byte)(unsafe.Pointer(&want)), unsafe.Sizeof(want))
	v, err := InfoValue[uint32](data)
	if err != nil {
		t.Fatalf("InfoValue:\nhave %v\nwant nil", err)
	}
	if v != want {
		t.Fatalf("InfoValue:\nhave %#x\nwant %#x", v, want)
	}
	if _, err := InfoValue[uint64](data); err == nil {
		t.Fatal("InfoValue: have nil error, want non-nil for short data")
	}
}

func TestInfoSlice(t *testing.T) {
	want := []uintptr{1, 2, 3}
	data := unsafe.Slice((*byte)(unsafe.Pointer(&want[0])), uintptr(len(want))*unsafe.Sizeof(want[0]))
	s, err := InfoSlice[uintptr](data)
	if err != nil {
		t.Fatalf("InfoSlice:\nhave %v\nwant nil", err)
	}
	if len(s) != len(want) {
		t.Fatalf("InfoSlice length:\nhave %d\nwant %d", len(s), len(want))
	}
	for i := range want {
		if s[i] != want[i] {
			t.Fatalf("InfoSlice[%d]:\nhave %d\nwant %d", i, s[i], want[i])
		}
	}
	if s, err := InfoSlice[uintptr](nil); err != nil || s != nil {
		t.Fatalf("InfoSlice(nil):\nhave %v, %v\nwant nil, nil", s, err)
	}
	if _, err := InfoSlice[uintptr](data[:3]); err == nil {
		t.Fatal("InfoSlice: have nil error, want non-nil for ragged data")
	}
}

func TestStatusString(t *testing.T) {
	cases := []struct {
		st   Status
		want string
	}{
		{Success, "CL_SUCCESS"},
		{DeviceNotFound, "CL_DEVICE_NOT_FOUND"},
		{OutOfHostMemory, "CL_OUT_OF_HOST_MEMORY"},
		{InvalidKernelArgs, "CL_INVALID_KERNEL_ARGS"},
		{PlatformNotFoundKHR, "CL_PLATFORM_NOT_FOUND_KHR"},
		{-12345, "error -12345"},
	}
	for _, c := range cases {
		if s := c.st.String(); s != c.want {
			t.Fatalf("String(%d):\nhave %q\nwant %q", int32(c.st), s, c.want)
		}
	}
}

func TestStatusErr(t *testing.T) {
	if err := statusErr(Success); err != nil {
		t.Fatalf("statusErr(Success):\nhave %v\nwant nil", err)
	}
	if err := statusErr(InvalidValue); err != Status(InvalidValue) {
		t.Fatalf("statusErr(InvalidValue):\nhave %v\nwant CL_INVALID_VALUE", err)
	}
}
