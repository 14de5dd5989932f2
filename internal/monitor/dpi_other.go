//go:build !windows
// +build !windows

package monitor

import (
	"errors"
	"fmt"
)

// DPIQuerier reports every query as unsupported outside Windows
type DPIQuerier struct{}

// NewDPIQuerier creates a DPIQuerier
func NewDPIQuerier() *DPIQuerier {
	return &DPIQuerier{}
}

// EffectiveDPI is not available on this platform
func (q *DPIQuerier) EffectiveDPI(uintptr) (uint32, error) {
	return 0, fmt.Errorf("effective DPI query: %w", errors.ErrUnsupported)
}

// LogicalPixelsX is not available on this platform
func (q *DPIQuerier) LogicalPixelsX(string) (int, error) {
	return 0, fmt.Errorf("device context query: %w", errors.ErrUnsupported)
}
