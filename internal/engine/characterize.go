package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/genricoloni/screenfetch/internal/domain"
)

// upscaleThreshold is the smallest current/native width ratio reported as supersampling
const upscaleThreshold = 1.25

// UpscaleFactor returns how many times wider the current mode is than the panel
func UpscaleFactor(currentWidth, nativeWidth int) int {
	if nativeWidth <= 0 || currentWidth <= 0 {
		return 1
	}
	ratio := float64(currentWidth) / float64(nativeWidth)
	if ratio < upscaleThreshold {
		return 1
	}
	return int(math.Round(ratio))
}

// AspectRatio reduces width:height by their greatest common divisor
func AspectRatio(width, height int) string {
	if width <= 0 || height <= 0 {
		return "Unknown"
	}
	d := gcd(width, height)
	return fmt.Sprintf("%d:%d", width/d, height/d)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// ScaleMultiplier formats a scale percent as a multiplier: 200 is "2x", 125 is "1.25x"
func ScaleMultiplier(percent int) string {
	mul := float64(percent) / 100
	if math.Abs(mul-math.Round(mul)) < 0.001 {
		return fmt.Sprintf("%.0fx", mul)
	}
	s := strings.TrimRight(fmt.Sprintf("%.2f", mul), "0")
	s = strings.TrimSuffix(s, ".")
	return s + "x"
}

// Characterize builds the record of one output from its current mode, its
// EDID, its scale and the GPU vendors on the machine
func Characterize(mode domain.DisplayMode, rec domain.EDIDRecord, scalePercent int, vendors domain.GPUVendors) domain.ScreenCharacteristics {
	name := rec.FriendlyName
	if name == "" {
		name = domain.GenericMonitorName
	}

	nativeW, nativeH := rec.NativeWidth, rec.NativeHeight
	if !rec.Valid || nativeW <= 0 || nativeH <= 0 {
		nativeW, nativeH = mode.Width, mode.Height
	}

	if scalePercent < 0 {
		scalePercent = 0
	}

	factor := UpscaleFactor(mode.Width, nativeW)
	dsrType := domain.DSRNone
	if factor > 1 {
		switch {
		case vendors.NVIDIA:
			dsrType = domain.DSRNvidia
		case vendors.AMD:
			dsrType = domain.DSRAMD
		default:
			dsrType = domain.DSRUnknown
		}
	}

	return domain.ScreenCharacteristics{
		Name:             name,
		CurrentWidth:     mode.Width,
		CurrentHeight:    mode.Height,
		RefreshRate:      mode.RefreshRate,
		NativeWidth:      nativeW,
		NativeHeight:     nativeH,
		NativeResolution: fmt.Sprintf("%dx%d", nativeW, nativeH),
		ScalePercent:     scalePercent,
		ScaleMul:         ScaleMultiplier(scalePercent),
		Upscale:          fmt.Sprintf("%dx", factor),
		DSREnabled:       factor > 1,
		DSRType:          dsrType,
		AspectRatio:      AspectRatio(mode.Width, mode.Height),
	}
}
