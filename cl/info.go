// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package cl

import (
	"fmt"
	"unsafe"
)

// getInfo runs the size-then-value protocol shared by every
// clGet*Info entry point: one call to learn the value's size,
// another to fetch it.
func getInfo(query func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) int32) ([]byte, error) {
	var size uintptr
	if st := query(0, nil, &size); st != Success {
		return nil, Status(st)
	}
	if size == 0 {
		return nil, nil
	}
	data := make([]byte, size)
	if st := query(size, unsafe.Pointer(&data[0]), nil); st != Success {
		return nil, Status(st)
	}
	return data, nil
}

// objInfo adapts an infoFunc entry point to getInfo.
func objInfo[H ~uintptr](fn infoFunc[H], obj H, param uint32) ([]byte, error) {
	return getInfo(func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) int32 {
		return fn(obj, param, size, value, sizeRet)
	})
}

// InfoString interprets an info value as a NUL-terminated string.
func InfoString(data []byte) string {
	for i, b := range data {
		if b == 0 {
			return string(data[:i])
		}
	}
	return string(data)
}

// InfoValue interprets an info value as a single value of type T,
// which must have the exact size and layout of the C result.
func InfoValue[T any](data []byte) (T, error) {
	var v T
	if uintptr(len(data)) < unsafe.Sizeof(v) {
		return v, fmt.Errorf("cl: info value too short: %d bytes for %T", len(data), v)
	}
	return *(*T)(unsafe.Pointer(&data[0])), nil
}

// InfoSlice interprets an info value as a packed array of T.
func InfoSlice[T any](data []byte) ([]T, error) {
	var v T
	esz := unsafe.Sizeof(v)
	if len(data) == 0 {
		return nil, nil
	}
	if uintptr(len(data))%esz != 0 {
		return nil, fmt.Errorf("cl: info value of %d bytes is not a whole number of %T", len(data), v)
	}
	n := uintptr(len(data)) / esz
	s := make([]T, n)
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(data)), data)
	return s, nil
}
