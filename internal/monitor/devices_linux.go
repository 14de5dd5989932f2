//go:build linux
// +build linux

package monitor

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

const drmClassPath = "/sys/class/drm"

// sysfsDisplayDevices lists DRM cards as adapters. Monitors are not listed.
// The list is read once and reused by every Device call.
type sysfsDisplayDevices struct {
	root      string
	nvmlNames func() []string

	once   sync.Once
	cached []DisplayDevice
}

// NewDisplayDevices returns the DRM card list, enriched with NVML device names
func NewDisplayDevices() DisplayDevices {
	return &sysfsDisplayDevices{root: drmClassPath, nvmlNames: nvmlDeviceNames}
}

func (s *sysfsDisplayDevices) Device(parent string, index int) (DisplayDevice, bool) {
	if parent != "" {
		return DisplayDevice{}, false
	}
	s.once.Do(func() { s.cached = s.adapters() })
	adapters := s.cached
	if index < 0 || index >= len(adapters) {
		return DisplayDevice{}, false
	}
	return adapters[index], true
}

// adapters lists NVML devices first, then every DRM card by PCI vendor
func (s *sysfsDisplayDevices) adapters() []DisplayDevice {
	var devices []DisplayDevice
	for i, name := range s.nvmlNames() {
		devices = append(devices, DisplayDevice{
			Name:        fmt.Sprintf("nvidia%d", i),
			Description: name,
			Active:      true,
		})
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		return devices
	}

	var cards []string
	for _, entry := range entries {
		if isCardDevice(entry.Name()) {
			cards = append(cards, entry.Name())
		}
	}
	sort.Strings(cards)

	for _, card := range cards {
		devicePath := filepath.Join(s.root, card, "device")
		vendor := pciVendorName(readSysfsString(filepath.Join(devicePath, "vendor")))
		if vendor == "" {
			continue
		}
		devices = append(devices, DisplayDevice{
			Name:        card,
			Description: fmt.Sprintf("%s (%s)", vendor, card),
			ID:          readSysfsString(filepath.Join(devicePath, "device")),
			Active:      true,
		})
	}
	return devices
}

// isCardDevice matches card0, card1, ... but not connectors like card0-HDMI-A-1
func isCardDevice(name string) bool {
	suffix, ok := strings.CutPrefix(name, "card")
	if !ok || suffix == "" {
		return false
	}
	for _, c := range suffix {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// pciVendorName maps a sysfs vendor id such as 0x10de to a vendor name
func pciVendorName(vendorID string) string {
	switch strings.ToLower(strings.TrimPrefix(vendorID, "0x")) {
	case "1002":
		return "AMD"
	case "10de":
		return "NVIDIA"
	case "8086":
		return "Intel"
	case "":
		return ""
	default:
		return vendorID
	}
}

func readSysfsString(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
