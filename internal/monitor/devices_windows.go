//go:build windows
// +build windows

package monitor

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

const displayDeviceActive = 0x00000001

var (
	modUser32                  = windows.NewLazySystemDLL("user32.dll")
	procEnumDisplayDevicesW    = modUser32.NewProc("EnumDisplayDevicesW")
	procEnumDisplaySettingsExW = modUser32.NewProc("EnumDisplaySettingsExW")
)

// displayDeviceW mirrors DISPLAY_DEVICEW
type displayDeviceW struct {
	Cb           uint32
	DeviceName   [32]uint16
	DeviceString [128]uint16
	StateFlags   uint32
	DeviceID     [128]uint16
	DeviceKey    [128]uint16
}

// systemDisplayDevices reads the list through EnumDisplayDevicesW
type systemDisplayDevices struct{}

// NewDisplayDevices returns the platform display device list
func NewDisplayDevices() DisplayDevices {
	return systemDisplayDevices{}
}

func (systemDisplayDevices) Device(parent string, index int) (DisplayDevice, bool) {
	if procEnumDisplayDevicesW.Find() != nil {
		return DisplayDevice{}, false
	}

	var parentPtr *uint16
	if parent != "" {
		p, err := windows.UTF16PtrFromString(parent)
		if err != nil {
			return DisplayDevice{}, false
		}
		parentPtr = p
	}

	var dd displayDeviceW
	dd.Cb = uint32(unsafe.Sizeof(dd))
	r, _, _ := procEnumDisplayDevicesW.Call(
		uintptr(unsafe.Pointer(parentPtr)),
		uintptr(index),
		uintptr(unsafe.Pointer(&dd)),
		0,
	)
	if r == 0 {
		return DisplayDevice{}, false
	}

	return DisplayDevice{
		Name:        windows.UTF16ToString(dd.DeviceName[:]),
		Description: windows.UTF16ToString(dd.DeviceString[:]),
		ID:          windows.UTF16ToString(dd.DeviceID[:]),
		Active:      dd.StateFlags&displayDeviceActive != 0,
	}, true
}
