// Copyright 2024 Gustavo C. Viegas. All rights reserved.

//go:build darwin || freebsd || linux

package dynlib

import "github.com/ebitengine/purego"

// Open opens the shared library identified by path, which may be
// a file path or a plain name to be searched for in the system's
// default locations.
// The handle stays valid until process exit; there is no unload.
func Open(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
}

// Lookup returns the address of the named symbol in lib.
func Lookup(lib uintptr, name string) (uintptr, error) {
	return purego.Dlsym(lib, name)
}
