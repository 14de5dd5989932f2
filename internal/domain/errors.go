package domain

import "errors"

var (
	// ErrAdapterUnavailable means the adapter enumeration context could not be created
	ErrAdapterUnavailable = errors.New("display adapter enumeration unavailable")
	// ErrNoOutputs means enumeration succeeded without finding a single output
	ErrNoOutputs = errors.New("no display outputs found")

	ErrEDIDMissing            = errors.New("EDID not found")
	ErrEDIDInvalid            = errors.New("EDID invalid")
	ErrConfigStoreUnavailable = errors.New("configuration store unavailable")
	ErrDPIUnresolved          = errors.New("DPI could not be resolved")
)
