//go:build windows
// +build windows

package monitor

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

const mdtEffectiveDPI = 0

var (
	modShcore            = windows.NewLazySystemDLL("shcore.dll")
	procGetDpiForMonitor = modShcore.NewProc("GetDpiForMonitor")

	errNoDeviceContext = errors.New("CreateDC failed")
)

// DPIQuerier implements domain.DPIQuerier with shcore and gdi32
type DPIQuerier struct{}

// NewDPIQuerier creates a DPIQuerier
func NewDPIQuerier() *DPIQuerier {
	return &DPIQuerier{}
}

// EffectiveDPI calls GetDpiForMonitor with MDT_EFFECTIVE_DPI
func (q *DPIQuerier) EffectiveDPI(monitor uintptr) (uint32, error) {
	if monitor == 0 {
		return 0, fmt.Errorf("GetDpiForMonitor: no monitor handle")
	}
	if err := procGetDpiForMonitor.Find(); err != nil {
		return 0, err
	}

	var dpiX, dpiY uint32
	hr, _, _ := procGetDpiForMonitor.Call(
		monitor,
		mdtEffectiveDPI,
		uintptr(unsafe.Pointer(&dpiX)),
		uintptr(unsafe.Pointer(&dpiY)),
	)
	if int32(hr) < 0 {
		return 0, fmt.Errorf("GetDpiForMonitor failed: 0x%08X", uint32(hr))
	}
	return dpiX, nil
}

// LogicalPixelsX reads LOGPIXELSX from a display device context for deviceName
func (q *DPIQuerier) LogicalPixelsX(deviceName string) (int, error) {
	driver, err := windows.UTF16PtrFromString("DISPLAY")
	if err != nil {
		return 0, err
	}
	device, err := windows.UTF16PtrFromString(deviceName)
	if err != nil {
		return 0, err
	}

	hdc := win.CreateDC(driver, device, nil, nil)
	if hdc == 0 {
		return 0, fmt.Errorf("%w for %s", errNoDeviceContext, deviceName)
	}
	defer win.DeleteDC(hdc)

	return int(win.GetDeviceCaps(hdc, win.LOGPIXELSX)), nil
}
