// Package edid decodes the parts of an EDID block needed to characterize a monitor.
package edid

import (
	"strings"

	"github.com/genricoloni/screenfetch/internal/domain"
)

const (
	// MinLength is the size of the EDID base block
	MinLength = 128

	descriptorStart  = 54
	descriptorEnd    = 126
	descriptorLength = 18
	monitorNameTag   = 0xFC
	nameStart        = 5
	nameEnd          = 17
)

// Parse decodes the native resolution and monitor name of an EDID block.
// Malformed input yields the zero record.
func Parse(data []byte) domain.EDIDRecord {
	if len(data) < MinLength || data[0] != 0x00 || data[1] != 0xFF || data[7] != 0x00 {
		return domain.EDIDRecord{}
	}

	// First detailed timing descriptor: upper nibbles of bytes 58/61 extend bytes 56/59
	width := int(data[58]>>4)<<8 | int(data[56])
	height := int(data[61]>>4)<<8 | int(data[59])

	return domain.EDIDRecord{
		NativeWidth:  width,
		NativeHeight: height,
		FriendlyName: monitorName(data),
		Valid:        width > 0 && height > 0,
	}
}

// monitorName returns the text of the first monitor name descriptor
func monitorName(data []byte) string {
	for i := descriptorStart; i < descriptorEnd && i+nameEnd < len(data); i += descriptorLength {
		if data[i] != 0x00 || data[i+1] != 0x00 || data[i+3] != monitorNameTag {
			continue
		}

		var b strings.Builder
		for _, c := range data[i+nameStart : i+nameEnd+1] {
			if c == 0x0A || c == 0x00 {
				break
			}
			if c >= 0x20 && c <= 0x7E {
				b.WriteByte(c)
			}
		}
		return strings.TrimRight(b.String(), " ")
	}
	return ""
}
