package ie

import "math/big"

// decodeHTCapabilities handles IE 45 (HT Capabilities): a 2-byte
// capabilities info field, a 1-byte A-MPDU parameters field, a 16-byte
// supported MCS set, a 2-byte HT extended capabilities field, a 4-byte
// transmit beamforming capabilities field, and a 1-byte antenna selection
// capability field. Bit offsets and field names follow 802.11-2020 §9.4.2.56
// exactly, matching the source this was ported from field-for-field.
func decodeHTCapabilities(data []byte, el *Element) {
	el.Type = "HT Capabilities"
	if len(data) < 28 {
		return
	}

	htCapsInfo := data[2:4]
	el.Elements["ht_ldpc_coding_capability"] = int(htCapsInfo[0] & 0x01)
	el.Elements["ht_support_channel_width"] = int(htCapsInfo[0] >> 1 & 0x01)
	el.Elements["ht_sm_power_save"] = int(htCapsInfo[0] >> 2 & 0x03)
	el.Elements["ht_green_field"] = int(htCapsInfo[0] >> 4 & 0x01)
	el.Elements["ht_short_gi_for_20mhz"] = int(htCapsInfo[0] >> 5 & 0x01)
	el.Elements["ht_short_gi_for_40mhz"] = int(htCapsInfo[0] >> 6 & 0x01)
	el.Elements["ht_tx_stbc"] = int(htCapsInfo[0] >> 7 & 0x01)
	el.Elements["ht_rx_stbc"] = int(htCapsInfo[1] & 0x03)
	el.Elements["ht_delayed_block_ack"] = int(htCapsInfo[1] >> 2 & 0x01)
	el.Elements["ht_max_a_msdu_length"] = int(htCapsInfo[1] >> 3 & 0x01)
	el.Elements["ht_dsss_cck_mode_in_40mhz"] = int(htCapsInfo[1] >> 4 & 0x01)
	el.Elements["ht_psmp_support"] = int(htCapsInfo[1] >> 5 & 0x01)
	el.Elements["ht_forty_mhz_intolerant"] = int(htCapsInfo[1] >> 6 & 0x01)
	el.Elements["ht_l_sig_txop_protection_support"] = int(htCapsInfo[1] >> 7 & 0x01)

	ampduParam := data[4]
	el.Elements["maximum_rx_a_mpdu_length"] = int(ampduParam & 0x03)
	el.Elements["mpdu_density"] = int(ampduParam >> 2 & 0x07)

	decodeHTMCSSet(data[5:21], el)

	htExtCaps := data[21:23]
	el.Elements["transmitter_supports_pco"] = int(htExtCaps[0] & 0x01)
	el.Elements["time_needed_to_transition_between_20mhz_and_40mhz"] = int(htExtCaps[0] >> 1 & 0x03)
	el.Elements["mcs_feedback_capability"] = int(htExtCaps[1] & 0x03)
	el.Elements["high_throughput"] = int(htExtCaps[1] >> 2 & 0x01)
	el.Elements["reverse_direction_responder"] = int(htExtCaps[1] >> 3 & 0x01)

	txbfCaps := data[23:27]
	el.Elements["transmit_beamforming"] = int(txbfCaps[0] & 0x01)
	el.Elements["receive_staggered_sounding"] = int(txbfCaps[0] >> 1 & 0x01)
	el.Elements["transmit_staggered_sounding"] = int(txbfCaps[0] >> 2 & 0x01)
	el.Elements["receive_null_data_packet_(ndp)"] = int(txbfCaps[0] >> 3 & 0x01)
	el.Elements["transmit_null_data_packet_(ndp)"] = int(txbfCaps[0] >> 4 & 0x01)
	el.Elements["implicit_txbf_capable"] = int(txbfCaps[0] >> 5 & 0x01)
	el.Elements["calibration"] = int(txbfCaps[0] >> 6 & 0x03)
	el.Elements["sta_can_apply_txbf_using_csi_explicit_feedback"] = int(txbfCaps[1] & 0x01)
	el.Elements["sta_can_apply_txbf_using_uncompressed_beamforming_feedback_matrix"] = int(txbfCaps[1] >> 1 & 0x01)
	el.Elements["sta_can_apply_txbf_using_compressed_beamforming_feedback_matrix"] = int(txbfCaps[1] >> 2 & 0x01)
	el.Elements["receiver_can_return_explicit_csi_feedback"] = int(txbfCaps[1] >> 3 & 0x03)
	el.Elements["receiver_can_return_explicit_uncompressed_beamforming_feedback_matrix"] = int(txbfCaps[1] >> 5 & 0x03)
	el.Elements["sta_can_compress_and_use_compressed_beamforming_feedback_matrix"] = int(txbfCaps[1]>>7&0x01) + int(txbfCaps[2]&0x01)<<1
	el.Elements["minimal_grouping_used_for_explicit_feedback_reports"] = int(txbfCaps[2] >> 1 & 0x03)
	el.Elements["max_antennae_sta_can_support_when_csi_feedback_required"] = int(txbfCaps[2] >> 3 & 0x03)
	el.Elements["max_antennae_sta_can_support_when_uncompressed_beamforming_feedback_required"] = int(txbfCaps[2] >> 5 & 0x03)
	el.Elements["max_antennae_sta_can_support_when_compressed_beamforming_feedback_required"] = int(txbfCaps[2]>>7&0x01) + int(txbfCaps[3]&0x01)<<1
	el.Elements["maximum_number_of_rows_of_csi_explicit_feedback"] = int(txbfCaps[3] >> 1 & 0x03)
	el.Elements["maximum_number_of_space_time_streams_for_which_channel_dimensions_can_be_simultaneously_estimated"] = int(txbfCaps[3] >> 3 & 0x03)

	aselCaps := data[27]
	el.Elements["antenna_selection_capable"] = int(aselCaps & 0x01)
	el.Elements["explicit_csi_feedback_based_tx_asel"] = int(aselCaps >> 1 & 0x01)
	el.Elements["antenna_indices_feedback_based_tx_asel"] = int(aselCaps >> 2 & 0x01)
	el.Elements["explicit_csi_feedback"] = int(aselCaps >> 3 & 0x01)
	el.Elements["antenna_indices_feedback"] = int(aselCaps >> 4 & 0x01)
	el.Elements["rx_asel"] = int(aselCaps >> 5 & 0x01)
	el.Elements["tx_sounding_ppdus"] = int(aselCaps >> 6 & 0x01)
}

// decodeHTMCSSet decodes the shared 16-byte Supported MCS Set layout used
// by both HT Capabilities and HT Operation: a 10-byte (80-bit) rx MCS
// bitmask, too wide for a machine word and so kept as a big.Int, followed
// by the highest supported rate and tx MCS set fields.
func decodeHTMCSSet(htMCSSet []byte, el *Element) {
	el.Elements["rx_mcs_bitmask"] = leBytesToBigInt(htMCSSet[0:10])
	el.Elements["rx_highest_supported_rate"] = int(htMCSSet[10]) + int(htMCSSet[11]&0x03)<<8
	el.Elements["tx_mcs_set_defined"] = int(htMCSSet[12] & 0x01)
	el.Elements["tx_rx_mcs_set_not_equal"] = int(htMCSSet[12] >> 1 & 0x01)
	el.Elements["tx_max_ss_supported"] = int(htMCSSet[12] >> 2 & 0x03)
	el.Elements["tx_unequal_modulation_supported"] = int(htMCSSet[12] >> 4 & 0x01)
}

func leBytesToBigInt(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i, v := range b {
		be[len(b)-1-i] = v
	}
	return new(big.Int).SetBytes(be)
}

// decodeHTOperation handles IE 61 (HT Operation): primary channel, a
// 5-byte HT Operation Information field, and the same 16-byte Supported
// MCS Set layout as HT Capabilities (minus the extended/beamforming/ASEL
// trailers, which HT Operation does not carry).
func decodeHTOperation(data []byte, el *Element) {
	el.Type = "HT Operation"
	if len(data) < 24 {
		return
	}

	el.Elements["primary_channel"] = int(data[2])

	htOperationInfo := data[3:8]
	el.Elements["secondary_channel_offset"] = int(htOperationInfo[0] & 0x03)
	el.Elements["sta_channel_width"] = int(htOperationInfo[0] >> 2 & 0x01)
	el.Elements["rifs_mode"] = int(htOperationInfo[0] >> 3 & 0x01)
	el.Elements["ht_protection"] = int(htOperationInfo[1] & htProtectionMask)
	el.Elements["nongf_ht_sta_present"] = int(htOperationInfo[1] >> 2 & 0x01)
	el.Elements["obss_nonht_sta_present"] = int(htOperationInfo[1] >> 4 & 0x01)
	el.Elements["channel_center_freq_segment_2"] = int(htOperationInfo[1]>>5&0x07) + int(htOperationInfo[2]&0x1f)<<3
	el.Elements["dual_beacon"] = int(htOperationInfo[3] >> 6 & 0x01)
	el.Elements["dual_cts_protection"] = int(htOperationInfo[3] >> 7 & 0x01)
	el.Elements["stbc_beacon"] = int(htOperationInfo[4] & 0x01)
	el.Elements["lsig_txop_protection"] = int(htOperationInfo[4] >> 1 & 0x01)
	el.Elements["pco_active"] = int(htOperationInfo[4] >> 2 & 0x01)
	el.Elements["pco_phase"] = int(htOperationInfo[4] >> 3 & 0x01)

	decodeHTMCSSet(data[8:24], el)
}

// htProtectionMask selects the ht_protection bits out of the HT Operation
// Info field. Revision history of the source placed this mask at
// different widths across 802.11 amendments; this uses the canonical 0x03
// (bits 0-1 of the second HT Operation Info byte), the latest and current
// value.
const htProtectionMask = 0x03
