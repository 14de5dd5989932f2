// Package locator finds a monitor's EDID and persisted DPI in the device configuration tree.
package locator

import (
	"fmt"
	"strings"

	"github.com/genricoloni/screenfetch/internal/cfgtree"
	"github.com/genricoloni/screenfetch/internal/domain"
	"github.com/genricoloni/screenfetch/internal/edid"
	"go.uber.org/zap"
)

const (
	displayEnumPath    = `SYSTEM\CurrentControlSet\Enum\DISPLAY`
	graphicsConfigPath = `SYSTEM\CurrentControlSet\Control\GraphicsDrivers\Configuration`
	deviceParamsKey    = "Device Parameters"
	edidValueName      = "EDID"
	outputConfigKey    = "00"
	dpiValueName       = "DpiValue"

	// dpiUnset is stored by the driver when no override exists
	dpiUnset = 0xFFFFFFFF
)

// Locator implements domain.EDIDLocator and domain.DPIOverrideSource over a cfgtree.Store
type Locator struct {
	logger   *zap.Logger
	store    cfgtree.Store
	monitors domain.MonitorIdentifier
}

// NewLocator creates a locator reading from store
func NewLocator(logger *zap.Logger, store cfgtree.Store, monitors domain.MonitorIdentifier) *Locator {
	return &Locator{
		logger:   logger,
		store:    store,
		monitors: monitors,
	}
}

// VendorToken extracts the segment between the first two separators of a
// monitor hardware id: MONITOR\DEL4067\{...} yields DEL4067. Without a
// second separator the rest of the id is the token.
func VendorToken(monitorID string) string {
	parts := strings.SplitN(monitorID, cfgtree.Separator, 3)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// match decides whether a candidate ends the search
type match[T any] func(T) bool

// twoPass runs search first over keys prefixed with the vendor token, accepting
// only preferred results, then over every key accepting any result.
// An empty token does not filter the first pass.
func twoPass[T any](vendor string, search func(cfgtree.Filter, match[T]) (T, bool), preferred, fallback match[T]) (T, bool) {
	var filter cfgtree.Filter
	if vendor != "" {
		filter = cfgtree.PrefixFold(vendor)
	}
	if v, ok := search(filter, preferred); ok {
		return v, true
	}
	return search(nil, fallback)
}

// Locate returns the EDID of the monitor on deviceName. When nothing usable
// is found it returns a generic record along with the reason.
func (l *Locator) Locate(deviceName string) (domain.EDIDRecord, error) {
	fallback := domain.EDIDRecord{FriendlyName: domain.GenericMonitorName}

	root, err := l.store.Open(displayEnumPath)
	if err != nil {
		return fallback, fmt.Errorf("%w: %v", domain.ErrConfigStoreUnavailable, err)
	}
	defer l.close(root)

	vendor := VendorToken(l.monitors.ActiveMonitorID(deviceName))
	l.logger.Debug("Searching EDID",
		zap.String("device", deviceName),
		zap.String("vendor", vendor))

	rec, ok := twoPass(vendor,
		func(filter cfgtree.Filter, accept match[domain.EDIDRecord]) (domain.EDIDRecord, bool) {
			return l.searchEDID(root, filter, accept)
		},
		func(r domain.EDIDRecord) bool { return r.FriendlyName != "" },
		func(r domain.EDIDRecord) bool { return r.Valid || r.FriendlyName != "" },
	)
	if !ok {
		return fallback, domain.ErrEDIDMissing
	}

	if rec.FriendlyName == "" {
		rec.FriendlyName = domain.GenericMonitorName
	}
	if !rec.Valid {
		return rec, domain.ErrEDIDInvalid
	}
	return rec, nil
}

// searchEDID walks <model>\<instance>\Device Parameters below root
func (l *Locator) searchEDID(root cfgtree.Key, filter cfgtree.Filter, accept match[domain.EDIDRecord]) (domain.EDIDRecord, bool) {
	var found domain.EDIDRecord

	ok, err := cfgtree.Search(root, filter, func(model string, modelKey cfgtree.Key) bool {
		hit, err := cfgtree.Search(modelKey, nil, func(_ string, instance cfgtree.Key) bool {
			params, err := instance.Open(deviceParamsKey)
			if err != nil {
				return false
			}
			defer l.close(params)

			data, err := params.Binary(edidValueName)
			if err != nil {
				return false
			}
			rec := edid.Parse(data)
			if !accept(rec) {
				return false
			}
			found = rec
			return true
		})
		l.logErr("EDID instance walk", model, err)
		return hit
	})
	l.logErr("EDID model walk", displayEnumPath, err)

	return found, ok
}

// PersistedDPI returns the DpiValue stored for the output's monitor
func (l *Locator) PersistedDPI(deviceName string) (uint32, error) {
	monitorID := l.monitors.ActiveMonitorID(deviceName)
	if monitorID == "" {
		return 0, fmt.Errorf("%w: no active monitor on %s", domain.ErrDPIUnresolved, deviceName)
	}

	root, err := l.store.Open(graphicsConfigPath)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrConfigStoreUnavailable, err)
	}
	defer l.close(root)

	usable := func(v uint32) bool { return v != 0 && v != dpiUnset }
	v, ok := twoPass(VendorToken(monitorID),
		func(filter cfgtree.Filter, accept match[uint32]) (uint32, bool) {
			return l.searchDPI(root, filter, accept)
		},
		usable, usable,
	)
	if !ok {
		return 0, domain.ErrDPIUnresolved
	}
	return v, nil
}

// searchDPI walks <config>\00 below root
func (l *Locator) searchDPI(root cfgtree.Key, filter cfgtree.Filter, accept match[uint32]) (uint32, bool) {
	var found uint32

	ok, err := cfgtree.Search(root, filter, func(_ string, cfg cfgtree.Key) bool {
		out, err := cfg.Open(outputConfigKey)
		if err != nil {
			return false
		}
		defer l.close(out)

		raw, err := out.Integer(dpiValueName)
		if err != nil || raw > dpiUnset {
			return false
		}
		if v := uint32(raw); accept(v) {
			found = v
			return true
		}
		return false
	})
	l.logErr("DPI config walk", graphicsConfigPath, err)

	return found, ok
}

func (l *Locator) close(k cfgtree.Key) {
	if err := k.Close(); err != nil {
		l.logger.Debug("Failed to close key", zap.Error(err))
	}
}

func (l *Locator) logErr(msg, path string, err error) {
	if err != nil {
		l.logger.Debug(msg+" incomplete", zap.String("path", path), zap.Error(err))
	}
}
