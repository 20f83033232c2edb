package ie

import "strings"

// decodeCCX1 handles IE 133 (Cisco CCX1, also called QBSS Load Element or
// Cisco Client Extension version 1 in different vendor literature): the
// AP name sits at payload offset 10 as a fixed 15-byte, NUL-padded ASCII
// field, followed by a 2-byte little-endian associated station count.
func decodeCCX1(data []byte, el *Element) {
	el.Type = "Cisco CCX1 CKIP"
	payload := data[2:]
	if len(payload) < 27 {
		return
	}

	name := payload[10:25]
	if n := strings.IndexByte(string(name), 0); n >= 0 {
		name = name[:n]
	}
	el.Elements["ap_name"] = string(name)
	el.Elements["sta_count"] = int(le16(payload[25:27]))
}
