// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package cl wraps the OpenCL C API.
//
// Every public function calls the corresponding native entry point
// and converts its status code into an error. The OpenCL library is
// opened at runtime on first use, so importing this package does not
// require OpenCL to be installed; a missing library or a missing
// entry point surfaces as a distinguishable error value instead of
// a crash (see ErrRuntimeNotLoaded and MissingFunctionError).
//
// Builds that link the OpenCL library at compile time instead can
// use the opencl_static build tag, which routes the same call sites
// to the linked symbols with no load failure modes.
package cl
