//go:build linux && !cgo
// +build linux,!cgo

package monitor

// nvmlDeviceNames needs cgo to load the NVIDIA management library
func nvmlDeviceNames() []string {
	return nil
}
