// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package cl

// CreateSamplerWithProperties creates a sampler object. props is a
// zero-terminated cl_sampler_properties list and may be nil.
func CreateSamplerWithProperties(ctx Context, props []uint64) (Sampler, error) {
	rt, err := loadRuntime()
	if err != nil {
		return 0, err
	}
	fn, err := rt.createSamplerWithProperties.get()
	if err != nil {
		return 0, err
	}
	var st int32
	smp := fn(ctx, propsPtr(props), &st)
	if st != Success {
		return 0, Status(st)
	}
	return smp, nil
}

// RetainSampler increments the reference count of smp.
func RetainSampler(smp Sampler) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.retainSampler.get()
	if err != nil {
		return err
	}
	return statusErr(fn(smp))
}

// ReleaseSampler decrements the reference count of smp.
func ReleaseSampler(smp Sampler) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.releaseSampler.get()
	if err != nil {
		return err
	}
	return statusErr(fn(smp))
}

// GetSamplerInfo returns the raw value of the given sampler
// parameter.
func GetSamplerInfo(smp Sampler, param uint32) ([]byte, error) {
	rt, err := loadRuntime()
	if err != nil {
		return nil, err
	}
	fn, err := rt.getSamplerInfo.get()
	if err != nil {
		return nil, err
	}
	return objInfo(fn, smp, param)
}

// CreateSampler creates a sampler object.
//
// Deprecated: as of OpenCL 2.0, use CreateSamplerWithProperties.
func CreateSampler(ctx Context, normalizedCoords bool, addressingMode, filterMode uint32) (Sampler, error) {
	rt, err := loadRuntime()
	if err != nil {
		return 0, err
	}
	fn, err := rt.createSampler.get()
	if err != nil {
		return 0, err
	}
	var st int32
	smp := fn(ctx, clBool(normalizedCoords), addressingMode, filterMode, &st)
	if st != Success {
		return 0, Status(st)
	}
	return smp, nil
}
