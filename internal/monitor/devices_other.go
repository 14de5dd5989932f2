//go:build !windows && !linux
// +build !windows,!linux

package monitor

// noDisplayDevices is used where no adapter list is available
type noDisplayDevices struct{}

// NewDisplayDevices returns an empty device list
func NewDisplayDevices() DisplayDevices {
	return noDisplayDevices{}
}

func (noDisplayDevices) Device(string, int) (DisplayDevice, bool) {
	return DisplayDevice{}, false
}
