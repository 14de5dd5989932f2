package locator

import (
	"strings"
	"testing"

	"github.com/genricoloni/screenfetch/internal/cfgtree"
	"github.com/genricoloni/screenfetch/internal/domain"
	"github.com/genricoloni/screenfetch/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const (
	device    = `\\.\DISPLAY1`
	monitorID = `MONITOR\DEL4067\{4d36e96e-e325-11ce-bfc1-08002be10318}\0001`
)

// edidBlock builds a minimal EDID base block
func edidBlock(width, height int, name string) []byte {
	b := make([]byte, 128)
	copy(b, []byte{0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00})
	b[56], b[58] = byte(width), byte(width>>8)<<4
	b[59], b[61] = byte(height), byte(height>>8)<<4
	if name != "" {
		b[75] = 0xFC
		copy(b[77:90], name+"\n")
	}
	return b
}

func addEDID(store *cfgtree.MemStore, model, instance string, data []byte) {
	store.Key(displayEnumPath+`\`+model+`\`+instance+`\`+deviceParamsKey).SetBinary(edidValueName, data)
}

func newTestLocator(t *testing.T, store cfgtree.Store, id string) *Locator {
	ctrl := gomock.NewController(t)
	monitors := mocks.NewMockMonitorIdentifier(ctrl)
	monitors.EXPECT().ActiveMonitorID(device).Return(id).AnyTimes()
	return NewLocator(zap.NewNop(), store, monitors)
}

func TestVendorToken(t *testing.T) {
	tests := []struct {
		id       string
		expected string
	}{
		{monitorID, "DEL4067"},
		{`MONITOR\GSM5B7F\x`, "GSM5B7F"},
		{`MONITOR\DEL4067`, "DEL4067"},
		{`MONITOR`, ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := VendorToken(tt.id); got != tt.expected {
			t.Errorf("VendorToken(%q): expected '%s', got '%s'", tt.id, tt.expected, got)
		}
	}
}

func TestLocate(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(*cfgtree.MemStore)
		id        string
		expected  domain.EDIDRecord
		expectErr error
	}{
		{
			name: "Vendor key preferred over earlier key",
			setup: func(s *cfgtree.MemStore) {
				addEDID(s, "GSM5B7F", "1&1", edidBlock(2560, 1440, "LG ULTRAGEAR"))
				addEDID(s, "DEL4067", "5&2", edidBlock(3840, 2160, "DELL U2720Q"))
			},
			id:       monitorID,
			expected: domain.EDIDRecord{NativeWidth: 3840, NativeHeight: 2160, FriendlyName: "DELL U2720Q", Valid: true},
		},
		{
			name: "Vendor match is case insensitive",
			setup: func(s *cfgtree.MemStore) {
				addEDID(s, "del4067", "5&2", edidBlock(1920, 1080, "DELL P2419H"))
			},
			id:       monitorID,
			expected: domain.EDIDRecord{NativeWidth: 1920, NativeHeight: 1080, FriendlyName: "DELL P2419H", Valid: true},
		},
		{
			name: "Exhaustive pass when vendor keys are unnamed",
			setup: func(s *cfgtree.MemStore) {
				addEDID(s, "GSM5B7F", "1&1", edidBlock(2560, 1440, "LG ULTRAGEAR"))
				addEDID(s, "DEL4067", "5&2", edidBlock(3840, 2160, ""))
			},
			id:       monitorID,
			expected: domain.EDIDRecord{NativeWidth: 2560, NativeHeight: 1440, FriendlyName: "LG ULTRAGEAR", Valid: true},
		},
		{
			name: "No monitor id and no names falls back to any valid key",
			setup: func(s *cfgtree.MemStore) {
				addEDID(s, "AUS27AF", "1&1", edidBlock(1920, 1080, ""))
			},
			id:       "",
			expected: domain.EDIDRecord{NativeWidth: 1920, NativeHeight: 1080, FriendlyName: domain.GenericMonitorName, Valid: true},
		},
		{
			name: "No monitor id still prefers a named key",
			setup: func(s *cfgtree.MemStore) {
				addEDID(s, "AAA0001", "1&1", edidBlock(1920, 1080, ""))
				addEDID(s, "BBB0002", "1&1", edidBlock(2560, 1440, "NAMED"))
			},
			id:       "",
			expected: domain.EDIDRecord{NativeWidth: 2560, NativeHeight: 1440, FriendlyName: "NAMED", Valid: true},
		},
		{
			name: "Corrupt blobs are skipped",
			setup: func(s *cfgtree.MemStore) {
				addEDID(s, "DEL4067", "5&1", []byte{0x00, 0xFF, 0x00})
				addEDID(s, "DEL4067", "5&2", edidBlock(1920, 1200, "DELL U2412M"))
			},
			id:       monitorID,
			expected: domain.EDIDRecord{NativeWidth: 1920, NativeHeight: 1200, FriendlyName: "DELL U2412M", Valid: true},
		},
		{
			name: "Named blob without timing is invalid",
			setup: func(s *cfgtree.MemStore) {
				addEDID(s, "DEL4067", "5&2", edidBlock(0, 0, "DELL S2721"))
			},
			id:        monitorID,
			expected:  domain.EDIDRecord{FriendlyName: "DELL S2721"},
			expectErr: domain.ErrEDIDInvalid,
		},
		{
			name: "Nothing readable",
			setup: func(s *cfgtree.MemStore) {
				s.Key(displayEnumPath + `\DEL4067\5&2`)
			},
			id:        monitorID,
			expected:  domain.EDIDRecord{FriendlyName: domain.GenericMonitorName},
			expectErr: domain.ErrEDIDMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := cfgtree.NewMemStore()
			tt.setup(store)

			rec, err := newTestLocator(t, store, tt.id).Locate(device)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, rec)
		})
	}
}

func TestLocateStoreUnavailable(t *testing.T) {
	loc := NewLocator(zap.NewNop(), cfgtree.NewMemStore(), nil)

	rec, err := loc.Locate(device)

	assert.ErrorIs(t, err, domain.ErrConfigStoreUnavailable)
	assert.Equal(t, domain.GenericMonitorName, rec.FriendlyName)
	assert.False(t, rec.Valid)
}

func TestLocateStopsOnOverlongModelName(t *testing.T) {
	store := cfgtree.NewMemStore()
	addEDID(store, "DEL4067", "5&1", edidBlock(0, 0, ""))
	store.Key(displayEnumPath + `\` + strings.Repeat("A", cfgtree.MaxKeyNameLen+1))
	addEDID(store, "GSM5B7F", "1&1", edidBlock(2560, 1440, "LG"))

	_, err := newTestLocator(t, store, monitorID).Locate(device)

	assert.ErrorIs(t, err, domain.ErrEDIDMissing)
}

func addDPI(store *cfgtree.MemStore, cfg string, v uint64) {
	store.Key(graphicsConfigPath+`\`+cfg+`\`+outputConfigKey).SetInteger(dpiValueName, v)
}

func TestPersistedDPI(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(*cfgtree.MemStore)
		id        string
		expected  uint32
		expectErr error
	}{
		{
			name: "Vendor config first",
			setup: func(s *cfgtree.MemStore) {
				addDPI(s, "GSM5B7F1_00_07E3_3C^1111", 144)
				addDPI(s, "DEL40670_01_07E4_2A^2222", 120)
			},
			id:       monitorID,
			expected: 120,
		},
		{
			name: "Sentinel and zero are skipped",
			setup: func(s *cfgtree.MemStore) {
				addDPI(s, "DEL40670_01_07E4_2A^2222", 0xFFFFFFFF)
				addDPI(s, "DEL40670_01_07E4_2A^3333", 0)
				addDPI(s, "GSM5B7F1_00_07E3_3C^1111", 144)
			},
			id:       monitorID,
			expected: 144,
		},
		{
			name: "Nothing stored",
			setup: func(s *cfgtree.MemStore) {
				addDPI(s, "DEL40670_01_07E4_2A^2222", 0xFFFFFFFF)
			},
			id:        monitorID,
			expectErr: domain.ErrDPIUnresolved,
		},
		{
			name: "No active monitor",
			setup: func(s *cfgtree.MemStore) {
				addDPI(s, "DEL40670_01_07E4_2A^2222", 120)
			},
			id:        "",
			expectErr: domain.ErrDPIUnresolved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := cfgtree.NewMemStore()
			tt.setup(store)

			v, err := newTestLocator(t, store, tt.id).PersistedDPI(device)

			if tt.expectErr != nil {
				require.ErrorIs(t, err, tt.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestPersistedDPIStoreUnavailable(t *testing.T) {
	_, err := newTestLocator(t, cfgtree.NewMemStore(), monitorID).PersistedDPI(device)
	assert.ErrorIs(t, err, domain.ErrConfigStoreUnavailable)
}
