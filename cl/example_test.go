// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package cl_test

import (
	"fmt"

	"gviegas/opencl/cl"
)

// Enumerates every platform and the devices it exposes.
func Example() {
	if !cl.IsRuntimeAvailable() {
		fmt.Println("no OpenCL runtime")
		return
	}
	platforms, err := cl.GetPlatformIDs()
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, p := range platforms {
		data, err := cl.GetPlatformInfo(p, cl.PlatformName)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(cl.InfoString(data))
		devices, err := cl.GetDeviceIDs(p, cl.DeviceTypeAll)
		if err != nil {
			fmt.Println(err)
			continue
		}
		for _, d := range devices {
			data, err := cl.GetDeviceInfo(d, cl.DeviceName)
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Println("\t" + cl.InfoString(data))
		}
	}
}
