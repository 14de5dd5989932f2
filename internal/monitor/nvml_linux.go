//go:build linux && cgo
// +build linux,cgo

package monitor

import "github.com/NVIDIA/go-nvml/pkg/nvml"

// nvmlDeviceNames returns the marketing names of NVIDIA GPUs, or nil when
// the driver library is not loadable
func nvmlDeviceNames() []string {
	if ret := nvml.Init(); ret != nvml.SUCCESS {
		return nil
	}
	defer nvml.Shutdown()

	count, ret := nvml.DeviceGetCount()
	if ret != nvml.SUCCESS {
		return nil
	}

	names := make([]string, 0, count)
	for i := 0; i < count; i++ {
		device, ret := nvml.DeviceGetHandleByIndex(i)
		if ret != nvml.SUCCESS {
			continue
		}
		name, ret := device.GetName()
		if ret != nvml.SUCCESS {
			continue
		}
		names = append(names, name)
	}
	return names
}
