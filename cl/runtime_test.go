// Copyright 2024 Gustavo C. Viegas. All rights reserved.

//go:build !opencl_static

package cl

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// stubDynlib replaces the library primitives for the duration of a
// test. The register double is a no-op, so resolved slots must not
// be called through, only checked.
func stubDynlib(t *testing.T, open func(string) (uintptr, error), lookup func(uintptr, string) (uintptr, error)) {
	t.Helper()
	prevOpen, prevLookup, prevReg := openLibrary, lookupSymbol, registerFunc
	openLibrary = open
	lookupSymbol = lookup
	registerFunc = func(fptr any, addr uintptr) {}
	t.Cleanup(func() {
		openLibrary, lookupSymbol, registerFunc = prevOpen, prevLookup, prevReg
	})
}

func openOK(string) (uintptr, error)            { return 1, nil }
func lookupOK(uintptr, string) (uintptr, error) { return 1, nil }

func TestCandidatePaths(t *testing.T) {
	t.Setenv(EnvLibraryPath, "/a/libOpenCL.so.1;;/b/libOpenCL.so")
	require.Equal(t,
		[]string{"/a/libOpenCL.so.1", "/b/libOpenCL.so", defaultLibrary()},
		candidatePaths())

	t.Setenv(EnvLibraryPath, "")
	require.Equal(t, []string{defaultLibrary()}, candidatePaths())
}

func TestBindRuntimeSearchOrder(t *testing.T) {
	var tried []string
	stubDynlib(t, func(path string) (uintptr, error) {
		tried = append(tried, path)
		if path == "p2" {
			return 7, nil
		}
		return 0, errors.New("no such library")
	}, lookupOK)

	rt, err := bindRuntime([]string{"p1", "p2", "p3"})
	require.NoError(t, err)
	require.NotNil(t, rt)
	// p2 opened, so p3 must never be tried.
	require.Equal(t, []string{"p1", "p2"}, tried)
}

func TestBindRuntimeNotLoaded(t *testing.T) {
	var tried int
	stubDynlib(t, func(string) (uintptr, error) {
		tried++
		return 0, errors.New("cannot open shared object")
	}, lookupOK)

	rt, err := bindRuntime([]string{"p1", "p2"})
	require.Nil(t, rt)
	require.ErrorIs(t, err, ErrRuntimeNotLoaded)
	require.Equal(t, 2, tried)

	var missing *MissingFunctionError
	require.False(t, errors.As(err, &missing))
}

func TestBindRuntimeAbsentSymbol(t *testing.T) {
	stubDynlib(t, openOK, func(lib uintptr, name string) (uintptr, error) {
		if name == "clSetContextDestructorCallback" {
			return 0, errors.New("undefined symbol")
		}
		return 1, nil
	})

	rt, err := bindRuntime([]string{"fake"})
	require.NoError(t, err)

	// The absent entry point fails on its own...
	_, err = rt.setContextDestructorCallback.get()
	var missing *MissingFunctionError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "clSetContextDestructorCallback", missing.Name)
	require.NotErrorIs(t, err, ErrRuntimeNotLoaded)

	// ...while the rest of the table is unaffected.
	_, err = rt.getPlatformIDs.get()
	require.NoError(t, err)
	_, err = rt.finish.get()
	require.NoError(t, err)
}

func TestLoadRuntimeOnce(t *testing.T) {
	var opens atomic.Int32
	stubDynlib(t, func(path string) (uintptr, error) {
		opens.Add(1)
		return 1, nil
	}, lookupOK)

	prev := loadRuntime
	loadRuntime = sync.OnceValues(openRuntime)
	t.Cleanup(func() { loadRuntime = prev })

	rts := make([]*Runtime, 16)
	var g errgroup.Group
	for i := range rts {
		i := i
		g.Go(func() error {
			rt, err := loadRuntime()
			rts[i] = rt
			return err
		})
	}
	require.NoError(t, g.Wait())
	require.EqualValues(t, 1, opens.Load())
	for _, rt := range rts {
		require.Same(t, rts[0], rt)
	}
}

func TestLoadRuntimeOnceFailure(t *testing.T) {
	t.Setenv(EnvLibraryPath, "")
	var opens atomic.Int32
	stubDynlib(t, func(string) (uintptr, error) {
		opens.Add(1)
		return 0, errors.New("cannot open shared object")
	}, lookupOK)

	prev := loadRuntime
	loadRuntime = sync.OnceValues(openRuntime)
	t.Cleanup(func() { loadRuntime = prev })

	// A failed load is cached like a successful one.
	_, err1 := loadRuntime()
	_, err2 := loadRuntime()
	require.ErrorIs(t, err1, ErrRuntimeNotLoaded)
	require.Equal(t, err1, err2)
	require.EqualValues(t, len(candidatePaths()), opens.Load())
}

func TestSymbolsUnique(t *testing.T) {
	var rt Runtime
	seen := make(map[string]bool)
	for _, s := range rt.symbols() {
		name := s.symbol()
		require.True(t, len(name) > 2 && name[:2] == "cl", name)
		require.False(t, seen[name], "symbol listed twice: %s", name)
		seen[name] = true
	}
}
