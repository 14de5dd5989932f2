package domain

import "image"

// GenericMonitorName is reported when no descriptor carries a monitor name
const GenericMonitorName = "Generic PnP Monitor"

// DSRType identifies the GPU-side supersampling technology driving an output
type DSRType string

const (
	// DSRNone indicates the output renders at or below its native resolution
	DSRNone DSRType = "None"
	// DSRNvidia is NVIDIA Dynamic Super Resolution
	DSRNvidia DSRType = "DSR"
	// DSRAMD is AMD Virtual Super Resolution
	DSRAMD DSRType = "VSR"
	// DSRUnknown indicates supersampling on an adapter of unidentified vendor
	DSRUnknown DSRType = "Unknown"
)

// DisplayMode is the mode currently applied to an output
type DisplayMode struct {
	Width       int
	Height      int
	RefreshRate int
}

// DisplayOutput describes one adapter output found during enumeration.
// It is only valid for the snapshot that produced it.
type DisplayOutput struct {
	// AdapterIndex is the position of the owning adapter in enumeration order
	AdapterIndex int
	// OutputIndex is the position of the output on its adapter
	OutputIndex int
	// DeviceName is the GDI device name, e.g. \\.\DISPLAY1
	DeviceName string
	// Desktop is the output rectangle in desktop coordinates
	Desktop image.Rectangle
	// Monitor is the platform monitor handle, zero when unavailable
	Monitor uintptr
	// Mode is the currently applied display mode
	Mode DisplayMode
}

// EDIDRecord is the decoded subset of an EDID block
type EDIDRecord struct {
	NativeWidth  int
	NativeHeight int
	FriendlyName string
	Valid        bool
}

// GPUVendors reports which GPU vendors have an adapter installed
type GPUVendors struct {
	NVIDIA bool
	AMD    bool
}

// ScreenCharacteristics is the per-monitor record of a snapshot
type ScreenCharacteristics struct {
	Name             string  `json:"name" yaml:"name"`
	CurrentWidth     int     `json:"current_width" yaml:"current_width"`
	CurrentHeight    int     `json:"current_height" yaml:"current_height"`
	RefreshRate      int     `json:"refresh_rate" yaml:"refresh_rate"`
	NativeWidth      int     `json:"native_width" yaml:"native_width"`
	NativeHeight     int     `json:"native_height" yaml:"native_height"`
	NativeResolution string  `json:"native_resolution" yaml:"native_resolution"`
	ScalePercent     int     `json:"scale_percent" yaml:"scale_percent"`
	ScaleMul         string  `json:"scale_mul" yaml:"scale_mul"`
	Upscale          string  `json:"upscale" yaml:"upscale"`
	DSREnabled       bool    `json:"dsr_enabled" yaml:"dsr_enabled"`
	DSRType          DSRType `json:"dsr_type" yaml:"dsr_type"`
	AspectRatio      string  `json:"aspect_ratio" yaml:"aspect_ratio"`
}
