package ie

import "strings"

// decodeVendorSpecific handles IE 221 (Vendor Specific): the first 3 bytes
// of the payload are the OUI, the 4th byte is the OUI type. Recognized
// OUIs get a human name and, where the type further subdivides the
// element, additional decoded fields; everything else still reports
// oui/oui_type so a caller can identify the vendor even when this decoder
// doesn't know the subtype.
func decodeVendorSpecific(data []byte, el *Element) {
	el.Type = "Vendor Specific"
	payload := data[2:]
	if len(payload) < 4 {
		return
	}

	oui := hexString(payload[0:3])
	ouiType := payload[3]
	el.Elements["oui"] = oui
	el.Elements["oui_type"] = int(ouiType)

	switch oui {
	case "0050f2":
		el.Elements["vendor"] = "Microsoft"
	case "8cfdf0":
		el.Elements["vendor"] = "Qualcomm"
	case "000b86":
		el.Elements["vendor"] = "Aruba Networks"
		if ouiType == 1 {
			decodeArubaAPName(payload[4:], el)
		}
	case "506f9a":
		el.Elements["vendor"] = "Wi-Fi Alliance"
		if ouiType == 28 {
			decodeWFABSSIDSSID(payload[4:], el)
		}
	}
}

// decodeArubaAPName extracts the AP name Aruba APs carry as a
// null-terminated or length-bounded ASCII string in the element body, gated
// on oui_subtype==3 (only that subtype carries ap_name).
func decodeArubaAPName(body []byte, el *Element) {
	if len(body) < 3 {
		return
	}
	el.Elements["oui_subtype"] = int(body[0])
	if body[0] != 3 {
		return
	}
	name := body[2:]
	if n := strings.IndexByte(string(name), 0); n >= 0 {
		name = name[:n]
	}
	el.Elements["ap_name"] = string(name)
}

// decodeWFABSSIDSSID decodes the OUI type 28 Wi-Fi Alliance element, which
// carries a 6-byte BSSID, a reserved byte, then an SSID of the remaining
// length.
func decodeWFABSSIDSSID(body []byte, el *Element) {
	if len(body) < 8 {
		return
	}
	el.Elements["bssid"] = hexString(body[0:6])
	el.Elements["ssid"] = string(body[7:])
}
