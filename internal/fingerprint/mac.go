// Package fingerprint resolves a BSSID to a vendor name for the field
// survey PDF (internal/reporting), never the Beacon JSON contract itself.
// Grounded on the teacher's internal/adapters/fingerprint package, trimmed
// to a lookup-only adapter: no CSV importer/updater tool, no multi-backend
// composite repository — a small embedded seed table with an optional
// external sqlite OUI database layered in front of it.
package fingerprint

import (
	"fmt"
	"net"
	"strings"
)

// ErrInvalidMAC mirrors the teacher's sentinel for a malformed address.
var ErrInvalidMAC = fmt.Errorf("fingerprint: invalid MAC address")

// MAC is a validated hardware address, used only to derive an OUI prefix.
type MAC struct {
	addr net.HardwareAddr
}

// ParseMAC accepts "XX:XX:XX:XX:XX:XX", "XX-XX-XX-XX-XX-XX", or bare hex.
func ParseMAC(s string) (MAC, error) {
	if s == "" {
		return MAC{}, ErrInvalidMAC
	}
	normalized := strings.ReplaceAll(s, "-", ":")
	normalized = strings.ReplaceAll(normalized, ".", ":")
	if !strings.Contains(normalized, ":") && len(normalized) == 12 {
		var parts []string
		for i := 0; i < len(normalized); i += 2 {
			parts = append(parts, normalized[i:i+2])
		}
		normalized = strings.Join(parts, ":")
	}

	hw, err := net.ParseMAC(normalized)
	if err != nil {
		return MAC{}, fmt.Errorf("%w: %s", ErrInvalidMAC, s)
	}
	return MAC{addr: hw}, nil
}

// OUI returns the first three octets as "XX:XX:XX", uppercase.
func (m MAC) OUI() string {
	if len(m.addr) < 3 {
		return ""
	}
	return fmt.Sprintf("%02X:%02X:%02X", m.addr[0], m.addr[1], m.addr[2])
}

// IsRandomized reports whether the locally-administered-address bit is set.
func (m MAC) IsRandomized() bool {
	if len(m.addr) == 0 {
		return false
	}
	return m.addr[0]&0x02 != 0
}
