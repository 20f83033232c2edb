package ie

// decodeBSSLoad handles IE 11 (BSS Load): station count (u16 LE), channel
// utilization (u8, reported as a fraction of 255), and available admission
// capacity (u16 LE, in units of 32 microseconds/s — reported raw).
func decodeBSSLoad(data []byte, el *Element) {
	el.Type = "BSS Load"
	payload := data[2:]

	staCount := le16(payload[0:2])
	chUtil := payload[2]
	availCap := le16(payload[3:5])

	el.Elements["sta_count"] = int(staCount)
	el.Elements["ch_utilization"] = float64(chUtil) / 255.0
	el.Elements["available_admission_cap"] = int(availCap)
}

// decodeTPCReport handles IE 35 (TPC Report): transmit power and link
// margin, each one byte. Both are run through byteUintToInt, preserving its
// bit-15 quirk: since these are 8-bit values widened to int before the
// check, the sign branch can never trigger and the values always come out
// non-negative, same as the source this was ported from.
func decodeTPCReport(data []byte, el *Element) {
	el.Type = "TPC Report"
	payload := data[2:]

	el.Elements["tx_power"] = byteUintToInt(int(payload[0]))
	el.Elements["link_margin"] = byteUintToInt(int(payload[1]))
}
