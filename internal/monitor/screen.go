//go:build !windows
// +build !windows

package monitor

import (
	"fmt"

	"github.com/genricoloni/screenfetch/internal/domain"
	"github.com/kbinani/screenshot"
	"go.uber.org/zap"
)

// defaultRefreshRate is reported since display bounds carry no timing
const defaultRefreshRate = 60

// Enumerator implements domain.AdapterEnumerator from the active display bounds
type Enumerator struct {
	logger *zap.Logger
}

// NewEnumerator creates a display bounds enumerator
func NewEnumerator(logger *zap.Logger) *Enumerator {
	return &Enumerator{logger: logger}
}

// Outputs lists active displays as outputs of a single adapter
func (e *Enumerator) Outputs() ([]domain.DisplayOutput, error) {
	n := screenshot.NumActiveDisplays()
	if n <= 0 {
		e.logger.Warn("No active displays detected")
		return nil, nil
	}

	outputs := make([]domain.DisplayOutput, 0, n)
	for i := 0; i < n; i++ {
		bounds := screenshot.GetDisplayBounds(i)
		out := domain.DisplayOutput{
			OutputIndex: i,
			DeviceName:  fmt.Sprintf("display%d", i),
			Desktop:     bounds,
			Mode: domain.DisplayMode{
				Width:       bounds.Dx(),
				Height:      bounds.Dy(),
				RefreshRate: defaultRefreshRate,
			},
		}

		e.logger.Debug("Display detected",
			zap.String("device", out.DeviceName),
			zap.Int("width", out.Mode.Width),
			zap.Int("height", out.Mode.Height))
		outputs = append(outputs, out)
	}
	return outputs, nil
}
