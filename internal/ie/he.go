package ie

// decodeExtension handles IE 255 (Element ID Extension): the third global
// byte (the first byte of the payload) selects the actual element — HE
// Operation is extension ID 36, grounded on the source this agent was
// ported from; HE Capabilities (extension ID 35) is not, see
// decodeHECapabilities. Anything else decodes to Unknown with the
// extension ID recorded, matching the source's own fallthrough.
func decodeExtension(data []byte, el *Element) {
	if len(data) < 3 {
		return
	}
	extID := data[2]
	el.Elements["ext_id"] = int(extID)

	switch extID {
	case 35:
		decodeHECapabilities(data, el)
	case 36:
		decodeHEOperation(data, el)
	default:
		el.Type = "Unknown"
	}
}

// decodeHECapabilities handles extension ID 35 (HE Capabilities). The
// source this agent was ported from never observed this tag in the field
// and has no reference decode for it; this follows 802.11ax §9.4.2.248
// directly: a 6-byte MAC Capabilities field and 11-byte PHY Capabilities
// field, both reported as raw hex (neither is consumed bit-by-bit
// downstream), followed by the Supported HE-MCS And NSS Set. The <=80MHz
// rx/tx pair is always present; the 160MHz and 80+80MHz pairs are present
// only when the Channel Width Set (bits 1-7 of PHY Capabilities byte 0; bit
// 0 is reserved) advertises them in its bits 2 and 3, per Figure 9-589.
func decodeHECapabilities(data []byte, el *Element) {
	el.Type = "HE Capabilities"
	body := data[3:]
	if len(body) < 17 {
		return
	}

	macCap := body[0:6]
	phyCap := body[6:17]
	el.Elements["mac_capabilities"] = hexString(macCap)
	el.Elements["phy_capabilities"] = hexString(phyCap)

	mcs := body[17:]
	off := 0
	need := func(n int) bool { return off+n <= len(mcs) }

	if need(4) {
		el.Elements["rx_he_mcs_80"] = le16(mcs[off : off+2])
		el.Elements["tx_he_mcs_80"] = le16(mcs[off+2 : off+4])
		off += 4
	}
	if phyCap[0]&0x08 != 0 && need(4) {
		el.Elements["rx_he_mcs_160"] = le16(mcs[off : off+2])
		el.Elements["tx_he_mcs_160"] = le16(mcs[off+2 : off+4])
		off += 4
	}
	if phyCap[0]&0x10 != 0 && need(4) {
		el.Elements["rx_he_mcs_80p80"] = le16(mcs[off : off+2])
		el.Elements["tx_he_mcs_80p80"] = le16(mcs[off+2 : off+4])
		off += 4
	}
}

// decodeHEOperation handles extension ID 36 (HE Operation): a 3-byte HE
// Operation Parameters field, a 1-byte BSS Color Information field, a
// 2-byte Basic MCS Set, and the optional VHT Operation Information (3
// bytes, gated on vht_info_present), Max Co-Hosted BSSID Indicator (1
// byte, gated on cohosted_bss) and 6 GHz Operation Information (5 bytes,
// gated on 6ghz_info_present) trailers, in that order. Bit offsets and
// field names follow the source this was ported from exactly.
func decodeHEOperation(data []byte, el *Element) {
	el.Type = "HE Operation"
	if len(data) < 9 {
		return
	}

	heOperationInfo := data[3:6]
	el.Elements["default_pe_duration"] = int(heOperationInfo[0] & 0x07)
	el.Elements["twt_required"] = int(heOperationInfo[0] >> 3 & 0x01)
	el.Elements["txop_dur_rts_thresh"] = int(heOperationInfo[0]>>4&0x0f) + int(heOperationInfo[1]&0x3f)<<4
	vhtInfoPresent := heOperationInfo[1]>>6&0x01 == 1
	el.Elements["vht_info_present"] = vhtInfoPresent
	cohostedBSS := heOperationInfo[1]>>7&0x01 == 1
	el.Elements["cohosted_bss"] = cohostedBSS
	el.Elements["er_su_disable"] = int(heOperationInfo[2] & 0x01)
	sixGhzPresent := heOperationInfo[2]>>1&0x01 == 1
	el.Elements["6ghz_info_present"] = sixGhzPresent

	bssColorInfo := data[6]
	el.Elements["bss_color"] = int(bssColorInfo & 0x3f)
	el.Elements["partial_bss_color"] = int(bssColorInfo >> 6 & 0x01)
	el.Elements["bss_color_disabled"] = int(bssColorInfo >> 7 & 0x01)

	el.Elements["basic_mcs_set"] = int(le16(data[7:9]))

	rest := data[9:]
	off := 0

	if vhtInfoPresent && off+3 <= len(rest) {
		el.Elements["vht_info"] = map[string]any{
			"channel_width":         int(rest[off]),
			"channel_center_freq_0": int(rest[off+1]),
			"channel_center_freq_1": int(rest[off+2]),
		}
		off += 3
	}

	if cohostedBSS && off+1 <= len(rest) {
		el.Elements["max_cohosted_bss_indicator"] = int(rest[off])
		off++
	}

	if sixGhzPresent && off+5 <= len(rest) {
		control := rest[off+1]
		el.Elements["6ghz_info"] = map[string]any{
			"primary_channel":       int(rest[off]),
			"channel_width":         int(control & 0x03),
			"duplicate_beacon":      int(control >> 2 & 0x01),
			"regulatory_info":       int(control >> 3 & 0x07),
			"channel_center_freq_0": int(rest[off+2]),
			"channel_center_freq_1": int(rest[off+3]),
			"min_rate":              int(rest[off+4]),
		}
		off += 5
	}
}
