// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package cl

// GetPlatformIDs returns all available OpenCL platforms.
func GetPlatformIDs() ([]Platform, error) {
	rt, err := loadRuntime()
	if err != nil {
		return nil, err
	}
	fn, err := rt.getPlatformIDs.get()
	if err != nil {
		return nil, err
	}
	var n uint32
	if st := fn(0, nil, &n); st != Success {
		return nil, Status(st)
	}
	if n == 0 {
		return nil, nil
	}
	ids := make([]Platform, n)
	if st := fn(n, &ids[0], nil); st != Success {
		return nil, Status(st)
	}
	return ids, nil
}

// GetPlatformInfo returns the raw value of the given platform
// parameter. Use InfoString/InfoValue to interpret it.
func GetPlatformInfo(platform Platform, param uint32) ([]byte, error) {
	rt, err := loadRuntime()
	if err != nil {
		return nil, err
	}
	fn, err := rt.getPlatformInfo.get()
	if err != nil {
		return nil, err
	}
	return objInfo(fn, platform, param)
}
