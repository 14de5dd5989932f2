package domain

//go:generate mockgen -destination=mocks/mocks.go -package=mocks github.com/genricoloni/screenfetch/internal/domain AdapterEnumerator,VendorDetector,MonitorIdentifier,EDIDLocator,DPIOverrideSource,DPIQuerier,ScaleResolver

// AdapterEnumerator lists every output of every graphics adapter
type AdapterEnumerator interface {
	// Outputs returns the outputs in adapter/output discovery order.
	// A failure to create the enumeration context is reported as ErrAdapterUnavailable.
	Outputs() ([]DisplayOutput, error)
}

// VendorDetector reports which GPU vendors are present
type VendorDetector interface {
	Detect() GPUVendors
}

// MonitorIdentifier resolves the hardware id of the monitor attached to an output
type MonitorIdentifier interface {
	// ActiveMonitorID returns an id such as MONITOR\DEL4067\{...}\0001,
	// or an empty string when no active monitor is attached
	ActiveMonitorID(deviceName string) string
}

// EDIDLocator finds the EDID of the monitor attached to an output
type EDIDLocator interface {
	// Locate always returns a usable record. The error tells why it is a fallback.
	Locate(deviceName string) (EDIDRecord, error)
}

// DPIOverrideSource reads a DPI value persisted by the display settings
type DPIOverrideSource interface {
	PersistedDPI(deviceName string) (uint32, error)
}

// DPIQuerier asks the platform for the live DPI of an output
type DPIQuerier interface {
	// EffectiveDPI returns the horizontal effective DPI of a monitor handle
	EffectiveDPI(monitor uintptr) (uint32, error)

	// LogicalPixelsX returns the logical pixel density of the output's device context
	LogicalPixelsX(deviceName string) (int, error)
}

// ScaleResolver computes the UI scale percent of an output
type ScaleResolver interface {
	Resolve(output DisplayOutput) int
}
