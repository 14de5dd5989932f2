package monitor

import (
	"strings"

	"github.com/genricoloni/screenfetch/internal/domain"
	"go.uber.org/zap"
)

// DisplayDevice is one entry of the platform display device list
type DisplayDevice struct {
	// Name is the device name, e.g. \\.\DISPLAY1 for adapters
	Name string
	// Description is the human readable adapter or monitor string
	Description string
	// ID is the hardware id, e.g. MONITOR\DEL4067\{...}\0001 for monitors
	ID string
	// Active is set when the device is part of the desktop
	Active bool
}

// DisplayDevices abstracts the platform display device list.
// This abstraction allows us to mock device enumeration in tests.
//
//go:generate mockgen -destination=mocks/display_devices_mock.go -package=mocks github.com/genricoloni/screenfetch/internal/monitor DisplayDevices
type DisplayDevices interface {
	// Device returns the index-th device attached to parent.
	// An empty parent lists adapters. ok is false past the last device.
	Device(parent string, index int) (dev DisplayDevice, ok bool)
}

var (
	nvidiaMarkers = []string{"NVIDIA", "GeForce"}
	amdMarkers    = []string{"AMD", "Radeon", "ATI"}
)

// Identifier implements domain.MonitorIdentifier
type Identifier struct {
	devices DisplayDevices
}

// NewIdentifier creates an Identifier over devices
func NewIdentifier(devices DisplayDevices) *Identifier {
	return &Identifier{devices: devices}
}

// ActiveMonitorID returns the hardware id of the first active monitor on deviceName
func (i *Identifier) ActiveMonitorID(deviceName string) string {
	for n := 0; ; n++ {
		dev, ok := i.devices.Device(deviceName, n)
		if !ok {
			return ""
		}
		if dev.Active {
			return dev.ID
		}
	}
}

// VendorDetector implements domain.VendorDetector over the adapter descriptions
type VendorDetector struct {
	logger  *zap.Logger
	devices DisplayDevices
}

// NewVendorDetector creates a VendorDetector
func NewVendorDetector(logger *zap.Logger, devices DisplayDevices) *VendorDetector {
	return &VendorDetector{logger: logger, devices: devices}
}

// Detect reports which vendors appear in the adapter descriptions
func (v *VendorDetector) Detect() domain.GPUVendors {
	var descriptions []string
	for n := 0; ; n++ {
		dev, ok := v.devices.Device("", n)
		if !ok {
			break
		}
		descriptions = append(descriptions, dev.Description)
	}

	vendors := MatchVendors(descriptions)
	v.logger.Debug("GPU vendors detected",
		zap.Strings("adapters", descriptions),
		zap.Bool("nvidia", vendors.NVIDIA),
		zap.Bool("amd", vendors.AMD))
	return vendors
}

// MatchVendors matches descriptions case-sensitively against known vendor markers
func MatchVendors(descriptions []string) domain.GPUVendors {
	return domain.GPUVendors{
		NVIDIA: containsAny(descriptions, nvidiaMarkers),
		AMD:    containsAny(descriptions, amdMarkers),
	}
}

func containsAny(descriptions, markers []string) bool {
	for _, d := range descriptions {
		for _, m := range markers {
			if strings.Contains(d, m) {
				return true
			}
		}
	}
	return false
}
