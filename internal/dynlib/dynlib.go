// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package dynlib gives access to functions exported by shared
// libraries that are opened at runtime rather than linked at
// build time.
package dynlib

import "github.com/ebitengine/purego"

// Register makes the function pointed to by fptr call into the
// native code at addr.
// fptr must be a pointer to a function variable whose signature
// matches the native function's ABI exactly; a mismatch is
// undefined behavior at call time.
func Register(fptr any, addr uintptr) {
	purego.RegisterFunc(fptr, addr)
}

// NewCallback returns a pointer to fn that native code can call.
// The callback is never deallocated, so callers should create a
// bounded number of them.
func NewCallback(fn any) uintptr {
	return purego.NewCallback(fn)
}
