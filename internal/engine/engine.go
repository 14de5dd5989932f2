package engine

import (
	"errors"
	"fmt"

	"github.com/genricoloni/screenfetch/internal/domain"
	"go.uber.org/zap"
)

// Engine orchestrates the display snapshot.
// It enumerates outputs, looks up their EDID and scale, and characterizes each one.
type Engine struct {
	logger     *zap.Logger
	enumerator domain.AdapterEnumerator
	vendors    domain.VendorDetector
	locator    domain.EDIDLocator
	resolver   domain.ScaleResolver
}

// NewEngine creates a new snapshot engine
func NewEngine(
	logger *zap.Logger,
	enumerator domain.AdapterEnumerator,
	vendors domain.VendorDetector,
	locator domain.EDIDLocator,
	resolver domain.ScaleResolver,
) *Engine {
	return &Engine{
		logger:     logger,
		enumerator: enumerator,
		vendors:    vendors,
		locator:    locator,
		resolver:   resolver,
	}
}

// Snapshot returns one record per output in discovery order.
// Only ErrAdapterUnavailable and ErrNoOutputs are reported; every other
// failure degrades the affected field to its default.
func (e *Engine) Snapshot() ([]domain.ScreenCharacteristics, error) {
	outputs, err := e.enumerator.Outputs()
	if err != nil {
		if !errors.Is(err, domain.ErrAdapterUnavailable) {
			err = fmt.Errorf("%w: %v", domain.ErrAdapterUnavailable, err)
		}
		e.logger.Error("Adapter enumeration failed", zap.Error(err))
		return nil, err
	}
	if len(outputs) == 0 {
		e.logger.Warn("Adapter enumeration found no outputs")
		return nil, domain.ErrNoOutputs
	}

	vendors := e.vendors.Detect()

	screens := make([]domain.ScreenCharacteristics, 0, len(outputs))
	for _, out := range outputs {
		screens = append(screens, e.characterize(out, vendors))
	}

	e.logger.Info("Display snapshot complete", zap.Int("screens", len(screens)))
	return screens, nil
}

// characterize builds the record of a single output
func (e *Engine) characterize(out domain.DisplayOutput, vendors domain.GPUVendors) domain.ScreenCharacteristics {
	rec, err := e.locator.Locate(out.DeviceName)
	if err != nil {
		e.logger.Debug("Using current mode as native resolution",
			zap.String("device", out.DeviceName),
			zap.Error(err))
	}

	scale := e.resolver.Resolve(out)
	screen := Characterize(out.Mode, rec, scale, vendors)

	e.logger.Debug("Output characterized",
		zap.String("device", out.DeviceName),
		zap.String("name", screen.Name),
		zap.String("native", screen.NativeResolution),
		zap.Int("scale", screen.ScalePercent),
		zap.String("upscale", screen.Upscale))
	return screen
}
