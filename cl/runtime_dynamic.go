// Copyright 2024 Gustavo C. Viegas. All rights reserved.

//go:build !opencl_static

package cl

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"
)

// EnvLibraryPath names the environment variable that overrides the
// library search order. It holds a ';'-separated list of library
// paths tried in order before the platform default. It is read
// once, when the first call triggers the load.
const EnvLibraryPath = "OPENCL_DYLIB_PATH"

// defaultLibrary is the well-known platform identifier of the
// OpenCL library.
func defaultLibrary() string {
	switch runtime.GOOS {
	case "windows":
		return "OpenCL.dll"
	case "darwin":
		return "/System/Library/Frameworks/OpenCL.framework/OpenCL"
	default:
		return "libOpenCL.so"
	}
}

// candidatePaths returns every library candidate in the order they
// will be tried.
func candidatePaths() []string {
	var paths []string
	if s := os.Getenv(EnvLibraryPath); s != "" {
		for _, p := range strings.Split(s, ";") {
			if p != "" {
				paths = append(paths, p)
			}
		}
	}
	return append(paths, defaultLibrary())
}

// openRuntime opens the OpenCL library and binds the symbol table
// against it. loadRuntime calls it at most once per process.
func openRuntime() (*Runtime, error) {
	return bindRuntime(candidatePaths())
}

// bindRuntime tries each candidate in order and binds against the
// first library that opens. Candidates after the first success are
// never tried. If none opens, the returned error wraps
// ErrRuntimeNotLoaded and the failure is permanent.
func bindRuntime(paths []string) (*Runtime, error) {
	var lastErr error
	for _, p := range paths {
		lib, err := openLibrary(p)
		if err == nil && lib == 0 {
			err = errors.New("null library handle")
		}
		if err != nil {
			slog.Debug("cl: library candidate failed to open", "path", p, "err", err)
			lastErr = err
			continue
		}
		slog.Debug("cl: OpenCL library opened", "path", p)
		return newRuntime(lib), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrRuntimeNotLoaded, lastErr)
}

// newRuntime binds the symbol table against the opened library.
// Binding is optional per symbol: entry points the library does not
// export stay unresolved and fail individually when dispatched; the
// load as a whole still succeeds.
func newRuntime(lib uintptr) *Runtime {
	rt := &Runtime{lib: lib}
	var bound, absent int
	for _, s := range rt.symbols() {
		s.resolve(lib)
		if s.bound() {
			bound++
		} else {
			absent++
		}
	}
	slog.Debug("cl: symbol table bound", "resolved", bound, "absent", absent)
	return rt
}
