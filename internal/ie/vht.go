package ie

import "encoding/binary"

// decodeVHTCapabilities handles IE 191 (VHT Capabilities). The source this
// agent was ported from never observed this tag in the field and has no
// reference decode for it; this follows 802.11-2020 §9.4.2.158 directly: a
// 4-byte VHT Capabilities Info field followed by an 8-byte Supported
// VHT-MCS and NSS Set (rx MCS map, rx highest rate, tx MCS map, tx highest
// rate).
func decodeVHTCapabilities(data []byte, el *Element) {
	el.Type = "VHT Capabilities"
	if len(data) < 14 {
		return
	}

	info := binary.LittleEndian.Uint32(data[2:6])
	el.Elements["max_mpdu_length"] = info & 0x00000003
	el.Elements["supported_channel_width_set"] = info & 0x0000000c >> 2
	el.Elements["rx_ldpc"] = info&0x00000010 != 0
	el.Elements["short_gi_80"] = info&0x00000020 != 0
	el.Elements["short_gi_160"] = info&0x00000040 != 0
	el.Elements["tx_stbc"] = info&0x00000080 != 0
	el.Elements["rx_stbc"] = info & 0x00000700 >> 8
	el.Elements["su_beamformer_capable"] = info&0x00000800 != 0
	el.Elements["su_beamformee_capable"] = info&0x00001000 != 0
	el.Elements["mu_beamformer_capable"] = info&0x00080000 != 0
	el.Elements["mu_beamformee_capable"] = info&0x00100000 != 0
	el.Elements["vht_txop_ps"] = info&0x00200000 != 0
	el.Elements["htc_vht_capable"] = info&0x00400000 != 0
	el.Elements["max_a_mpdu_length_exp"] = info & 0x03800000 >> 23
	el.Elements["vht_link_adaptation_capable"] = info & 0x0c000000 >> 26
	el.Elements["rx_antenna_pattern_consistent"] = info&0x10000000 != 0
	el.Elements["tx_antenna_pattern_consistent"] = info&0x20000000 != 0

	mcsSet := data[6:14]
	rxMCSMap := binary.LittleEndian.Uint16(mcsSet[0:2])
	rxRateField := binary.LittleEndian.Uint16(mcsSet[2:4])
	txMCSMap := binary.LittleEndian.Uint16(mcsSet[4:6])
	txRateField := binary.LittleEndian.Uint16(mcsSet[6:8])

	el.Elements["supported_rx_mcs_set"] = rxMCSMap
	el.Elements["rx_highest_long_gi_data_rate"] = rxRateField & 0x1fff
	el.Elements["max_nsts_total"] = rxRateField & 0xe000 >> 13
	el.Elements["supported_tx_mcs_set"] = txMCSMap
	el.Elements["tx_highest_long_gi_data_rate"] = txRateField & 0x1fff
	el.Elements["extended_nss_bw_capable"] = txRateField&0x2000 != 0
}

// decodeVHTOperation handles IE 192 (VHT Operation): channel width,
// channel center frequency segments 0 and 1, and the basic VHT-MCS-and-NSS
// set, matching the source this was ported from field-for-field.
func decodeVHTOperation(data []byte, el *Element) {
	el.Type = "VHT Operation"
	if len(data) < 7 {
		return
	}

	el.Elements["channel_width"] = int(data[2])
	el.Elements["channel_center_freq_0"] = int(data[3])
	el.Elements["channel_center_freq_1"] = int(data[4])
	el.Elements["basic_mcs_set"] = int(le16(data[5:7]))
}
