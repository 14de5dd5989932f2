//go:build windows
// +build windows

package monitor

import (
	"fmt"
	"image"
	"syscall"
	"unsafe"

	"github.com/genricoloni/screenfetch/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sys/windows"
)

const (
	vtblRelease              = 2
	vtblFactoryEnumAdapters1 = 12 // IDXGIFactory1::EnumAdapters1
	vtblAdapterEnumOutputs   = 7  // IDXGIAdapter::EnumOutputs
	vtblOutputGetDesc        = 7  // IDXGIOutput::GetDesc

	dxgiErrorNotFound    = 0x887A0002
	enumCurrentSettings  = 0xFFFFFFFF
	defaultRefreshRate   = 60
	minReportedRefreshHz = 1
)

var (
	modDXGI                = windows.NewLazySystemDLL("dxgi.dll")
	procCreateDXGIFactory1 = modDXGI.NewProc("CreateDXGIFactory1")

	iidIDXGIFactory1 = windows.GUID{
		Data1: 0x770aae78,
		Data2: 0xf26f,
		Data3: 0x4dba,
		Data4: [8]byte{0xa8, 0x29, 0x25, 0x3c, 0x83, 0xd1, 0xb3, 0x87},
	}
)

// dxgiOutputDesc mirrors DXGI_OUTPUT_DESC
type dxgiOutputDesc struct {
	DeviceName        [32]uint16
	Left              int32
	Top               int32
	Right             int32
	Bottom            int32
	AttachedToDesktop int32
	Rotation          uint32
	Monitor           uintptr
}

// devModeW mirrors the display variant of DEVMODEW
type devModeW struct {
	DeviceName         [32]uint16
	SpecVersion        uint16
	DriverVersion      uint16
	Size               uint16
	DriverExtra        uint16
	Fields             uint32
	PositionX          int32
	PositionY          int32
	DisplayOrientation uint32
	DisplayFixedOutput uint32
	Color              int16
	Duplex             int16
	YResolution        int16
	TTOption           int16
	Collate            int16
	FormName           [32]uint16
	LogPixels          uint16
	BitsPerPel         uint32
	PelsWidth          uint32
	PelsHeight         uint32
	DisplayFlags       uint32
	DisplayFrequency   uint32
	ICMMethod          uint32
	ICMIntent          uint32
	MediaType          uint32
	DitherType         uint32
	Reserved1          uint32
	Reserved2          uint32
	PanningWidth       uint32
	PanningHeight      uint32
}

// Enumerator implements domain.AdapterEnumerator through DXGI
type Enumerator struct {
	logger *zap.Logger
}

// NewEnumerator creates a DXGI adapter enumerator
func NewEnumerator(logger *zap.Logger) *Enumerator {
	return &Enumerator{logger: logger}
}

// Outputs walks every adapter of a DXGI factory and every output of each adapter
func (e *Enumerator) Outputs() ([]domain.DisplayOutput, error) {
	if err := procCreateDXGIFactory1.Find(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAdapterUnavailable, err)
	}

	var factory uintptr
	hr, _, _ := procCreateDXGIFactory1.Call(
		uintptr(unsafe.Pointer(&iidIDXGIFactory1)),
		uintptr(unsafe.Pointer(&factory)),
	)
	if int32(hr) < 0 {
		return nil, fmt.Errorf("%w: CreateDXGIFactory1 failed: 0x%08X", domain.ErrAdapterUnavailable, uint32(hr))
	}
	defer comRelease(factory)

	var outputs []domain.DisplayOutput
	for a := 0; ; a++ {
		var adapter uintptr
		hr, _, _ := syscall.SyscallN(
			comVtblFn(factory, vtblFactoryEnumAdapters1),
			factory,
			uintptr(a),
			uintptr(unsafe.Pointer(&adapter)),
		)
		if int32(hr) < 0 {
			if uint32(hr) != dxgiErrorNotFound {
				e.logger.Warn("DXGI EnumAdapters1 failed",
					zap.Int("adapter", a),
					zap.String("hr", fmt.Sprintf("0x%08X", uint32(hr))))
			}
			break
		}

		outputs = append(outputs, e.adapterOutputs(a, adapter)...)
		comRelease(adapter)
	}

	return outputs, nil
}

// adapterOutputs lists the outputs of one adapter
func (e *Enumerator) adapterOutputs(adapterIndex int, adapter uintptr) []domain.DisplayOutput {
	var outputs []domain.DisplayOutput

	for o := 0; ; o++ {
		var output uintptr
		hr, _, _ := syscall.SyscallN(
			comVtblFn(adapter, vtblAdapterEnumOutputs),
			adapter,
			uintptr(o),
			uintptr(unsafe.Pointer(&output)),
		)
		if int32(hr) < 0 {
			if uint32(hr) != dxgiErrorNotFound {
				e.logger.Warn("DXGI EnumOutputs failed",
					zap.Int("adapter", adapterIndex),
					zap.Int("output", o),
					zap.String("hr", fmt.Sprintf("0x%08X", uint32(hr))))
			}
			return outputs
		}

		var desc dxgiOutputDesc
		hr, _, _ = syscall.SyscallN(
			comVtblFn(output, vtblOutputGetDesc),
			output,
			uintptr(unsafe.Pointer(&desc)),
		)
		comRelease(output)

		if int32(hr) < 0 {
			e.logger.Warn("DXGI GetDesc failed",
				zap.Int("adapter", adapterIndex),
				zap.Int("output", o),
				zap.String("hr", fmt.Sprintf("0x%08X", uint32(hr))))
			continue
		}

		name := windows.UTF16ToString(desc.DeviceName[:])
		out := domain.DisplayOutput{
			AdapterIndex: adapterIndex,
			OutputIndex:  o,
			DeviceName:   name,
			Desktop:      image.Rect(int(desc.Left), int(desc.Top), int(desc.Right), int(desc.Bottom)),
			Monitor:      desc.Monitor,
			Mode:         e.currentMode(name),
		}

		e.logger.Debug("Output found",
			zap.String("device", out.DeviceName),
			zap.Int("width", out.Mode.Width),
			zap.Int("height", out.Mode.Height),
			zap.Int("refresh", out.Mode.RefreshRate))
		outputs = append(outputs, out)
	}
}

// currentMode reads the mode applied to deviceName. Refresh falls back to 60Hz.
func (e *Enumerator) currentMode(deviceName string) domain.DisplayMode {
	mode := domain.DisplayMode{RefreshRate: defaultRefreshRate}

	name, err := windows.UTF16PtrFromString(deviceName)
	if err != nil {
		return mode
	}

	var dm devModeW
	dm.Size = uint16(unsafe.Sizeof(dm))
	r, _, _ := procEnumDisplaySettingsExW.Call(
		uintptr(unsafe.Pointer(name)),
		enumCurrentSettings,
		uintptr(unsafe.Pointer(&dm)),
		0,
	)
	if r == 0 {
		e.logger.Debug("EnumDisplaySettingsEx failed", zap.String("device", deviceName))
		return mode
	}

	mode.Width = int(dm.PelsWidth)
	mode.Height = int(dm.PelsHeight)
	if dm.DisplayFrequency > minReportedRefreshHz {
		mode.RefreshRate = int(dm.DisplayFrequency)
	}
	return mode
}

func comVtblFn(obj uintptr, idx int) uintptr {
	vtablePtr := *(*uintptr)(unsafe.Pointer(obj))
	return *(*uintptr)(unsafe.Pointer(vtablePtr + uintptr(idx)*unsafe.Sizeof(uintptr(0))))
}

func comRelease(obj uintptr) {
	if obj != 0 {
		syscall.SyscallN(comVtblFn(obj, vtblRelease), obj)
	}
}
