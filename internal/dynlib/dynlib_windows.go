// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package dynlib

import "golang.org/x/sys/windows"

// Open opens the shared library identified by path, which may be
// a file path or a plain name to be searched for in the system's
// default locations.
// The handle stays valid until process exit; there is no unload.
func Open(path string) (uintptr, error) {
	h, err := windows.LoadLibrary(path)
	return uintptr(h), err
}

// Lookup returns the address of the named symbol in lib.
func Lookup(lib uintptr, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(lib), name)
}
