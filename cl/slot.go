// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package cl

// slot holds one optionally resolved native entry point together
// with its exact call signature F.
// OpenCL libraries legitimately omit entry points outside their
// supported version and extension set, so a slot may stay
// unresolved after a successful load. Such a slot yields a
// MissingFunctionError when dispatched, never a call through a
// null pointer.
type slot[F any] struct {
	name string
	fn   F
	ok   bool
}

// get yields the resolved function, or a MissingFunctionError if
// the loaded library does not export the entry point.
// This is the only place where presence is checked; wrappers must
// reach native code exclusively through it.
func (s *slot[F]) get() (F, error) {
	if !s.ok {
		var zero F
		return zero, &MissingFunctionError{Name: s.name}
	}
	return s.fn, nil
}

// set resolves the slot to fn directly.
func (s *slot[F]) set(fn F) {
	s.fn = fn
	s.ok = true
}

// resolve binds the slot to its symbol in lib.
// The slot stays unresolved if the library does not export the
// symbol; resolution of one slot never affects another.
func (s *slot[F]) resolve(lib uintptr) {
	addr, err := lookupSymbol(lib, s.name)
	if err != nil || addr == 0 {
		return
	}
	registerFunc(&s.fn, addr)
	s.ok = true
}

// bind resolves the slot to the entry point at addr.
func (s *slot[F]) bind(addr uintptr) {
	registerFunc(&s.fn, addr)
	s.ok = true
}

// symbol returns the native name of the entry point.
func (s *slot[F]) symbol() string { return s.name }

// bound reports whether the slot has been resolved.
func (s *slot[F]) bound() bool { return s.ok }

// binder is the slot-independent view used by the loader.
type binder interface {
	resolve(lib uintptr)
	bind(addr uintptr)
	symbol() string
	bound() bool
}

// sym names a slot and hands it to the loader for binding.
// Runtime.symbols is the single listing of these pairings; the
// descriptor and the dispatch path cannot drift apart because both
// come from it.
func sym[F any](s *slot[F], name string) binder {
	s.name = name
	return s
}
