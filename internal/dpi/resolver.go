// Package dpi resolves the effective UI scale of a display output.
package dpi

import (
	"math"

	"github.com/genricoloni/screenfetch/internal/domain"
	"go.uber.org/zap"
)

const (
	// BaselineDPI is the density of 100% scaling
	BaselineDPI = 96
	// BaselinePercent is returned when no method resolves a scale
	BaselinePercent = 100
	// QuirkPercent is a result some drivers report instead of the real scale.
	// It triggers the geometric fallback when quirk retry is enabled.
	QuirkPercent = 122

	snapTolerance = 5
)

// canonicalSteps are the scale percentages offered by the display settings
var canonicalSteps = []int{100, 125, 150, 175, 200, 225, 250}

// Option configures a Resolver
type Option func(*Resolver)

// WithQuirkRetry toggles the geometric fallback for QuirkPercent results
func WithQuirkRetry(enabled bool) Option {
	return func(r *Resolver) {
		r.quirkRetry = enabled
	}
}

// Resolver implements domain.ScaleResolver by trying, in order, a persisted
// override, the monitor's effective DPI, the device context density and the
// ratio between physical and desktop width.
type Resolver struct {
	logger     *zap.Logger
	overrides  domain.DPIOverrideSource
	platform   domain.DPIQuerier
	quirkRetry bool
}

// NewResolver creates a Resolver. Quirk retry is on unless disabled by an option.
func NewResolver(logger *zap.Logger, overrides domain.DPIOverrideSource, platform domain.DPIQuerier, opts ...Option) *Resolver {
	r := &Resolver{
		logger:     logger,
		overrides:  overrides,
		platform:   platform,
		quirkRetry: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the scale percent of out. Each method runs only while the
// result is still the baseline.
func (r *Resolver) Resolve(out domain.DisplayOutput) int {
	log := r.logger.With(zap.String("device", out.DeviceName))
	percent := BaselinePercent

	if v, err := r.overrides.PersistedDPI(out.DeviceName); err == nil {
		percent = PercentFromDPI(float64(v))
		log.Debug("Scale from persisted DPI", zap.Uint32("dpi", v), zap.Int("percent", percent))
	} else {
		log.Debug("Persisted DPI unavailable", zap.Error(err))
	}

	if percent == BaselinePercent {
		if v, err := r.platform.EffectiveDPI(out.Monitor); err == nil && v > 0 {
			percent = PercentFromDPI(float64(v))
			log.Debug("Scale from effective DPI", zap.Uint32("dpi", v), zap.Int("percent", percent))
		} else if err != nil {
			log.Debug("Effective DPI unavailable", zap.Error(err))
		}
	}

	if percent == BaselinePercent {
		if v, err := r.platform.LogicalPixelsX(out.DeviceName); err == nil && v > 0 && v != BaselineDPI {
			percent = PercentFromDPI(float64(v))
			log.Debug("Scale from device context", zap.Int("dpi", v), zap.Int("percent", percent))
		} else if err != nil {
			log.Debug("Device context density unavailable", zap.Error(err))
		}
	}

	if percent == BaselinePercent || (r.quirkRetry && percent == QuirkPercent) {
		if v, ok := Geometric(out.Desktop.Dx(), out.Mode.Width); ok {
			log.Debug("Scale from desktop geometry", zap.Int("from", percent), zap.Int("percent", v))
			percent = v
		}
	}

	return percent
}

// PercentFromDPI converts a DPI to a scale percent relative to BaselineDPI
func PercentFromDPI(dpi float64) int {
	return int(math.Round(dpi / BaselineDPI * 100))
}

// Geometric derives a scale from the physical width of the current mode and
// the logical width of the desktop rectangle. It reports false when the
// widths are unusable or equal.
func Geometric(desktopWidth, currentWidth int) (int, bool) {
	if desktopWidth <= 0 || currentWidth <= 0 || desktopWidth == currentWidth {
		return 0, false
	}
	raw := int(math.Round(float64(currentWidth) / float64(desktopWidth) * 100))
	return Snap(raw), true
}

// Snap rounds raw to a canonical step within snapTolerance points.
// Values outside every window are returned unchanged.
func Snap(raw int) int {
	for _, step := range canonicalSteps {
		if raw >= step-snapTolerance && raw <= step+snapTolerance {
			return step
		}
	}
	return raw
}
