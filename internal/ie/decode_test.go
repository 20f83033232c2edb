package ie

import (
	"encoding/hex"
	"strings"
	"testing"
)

func TestDecode_BSSLoad(t *testing.T) {
	el := Decode("0b050a0080" + "4000")
	if el.ID != 11 {
		t.Fatalf("ID = %d, want 11", el.ID)
	}
	if el.Type != "BSS Load" {
		t.Fatalf("Type = %q, want %q", el.Type, "BSS Load")
	}
	if got := el.Elements["sta_count"]; got != 10 {
		t.Errorf("sta_count = %v, want 10", got)
	}
	if got := el.Elements["ch_utilization"]; got != 128.0/255.0 {
		t.Errorf("ch_utilization = %v, want %v", got, 128.0/255.0)
	}
	if got := el.Elements["available_admission_cap"]; got != 64 {
		t.Errorf("available_admission_cap = %v, want 64", got)
	}
}

func TestDecode_HEOperation_6GHzInfo(t *testing.T) {
	raw := []byte{
		0xFF, 0x0C, 0x24,
		0x00, 0x00, 0x02,
		0x00,
		0x00, 0x00,
		0x25, 0x02, 0x00, 0x00, 0x00,
	}
	el := Decode(hex.EncodeToString(raw))

	if el.ID != 255 {
		t.Fatalf("ID = %d, want 255", el.ID)
	}
	if el.Type != "HE Operation" {
		t.Fatalf("Type = %q, want %q", el.Type, "HE Operation")
	}
	present, _ := el.Elements["6ghz_info_present"].(bool)
	if !present {
		t.Fatalf("6ghz_info_present = %v, want true", el.Elements["6ghz_info_present"])
	}
	g6, ok := el.Elements["6ghz_info"].(map[string]any)
	if !ok {
		t.Fatalf("6ghz_info missing or wrong type: %#v", el.Elements["6ghz_info"])
	}
	if g6["primary_channel"] != 37 {
		t.Errorf("primary_channel = %v, want 37", g6["primary_channel"])
	}
	if g6["channel_width"] != 2 {
		t.Errorf("channel_width = %v, want 2", g6["channel_width"])
	}
}

func TestDecode_RawIsLowercase(t *testing.T) {
	el := Decode("0B050A0080" + "4000")
	if el.Raw != strings.ToLower(el.Raw) {
		t.Errorf("Raw = %q, want all lowercase", el.Raw)
	}
}

func TestDecode_UnknownID(t *testing.T) {
	el := Decode("7b021234")
	if el.ID != 0x7b {
		t.Fatalf("ID = %d, want 123", el.ID)
	}
	if el.Type != "Unknown" {
		t.Errorf("Type = %q, want Unknown", el.Type)
	}
	if len(el.Elements) != 0 {
		t.Errorf("Elements = %v, want empty", el.Elements)
	}
}

func TestDecode_MalformedHexNeverPanics(t *testing.T) {
	cases := []string{"", "zz", "0b", "0b05", "0bggg"}
	for _, c := range cases {
		el := Decode(c)
		if el.Type != "Unknown" {
			t.Errorf("Decode(%q).Type = %q, want Unknown", c, el.Type)
		}
	}
}

func TestDecode_TruncatedPayloadFallsBackToUnknown(t *testing.T) {
	// A BSS Load tag (ID 11) with a length byte claiming 5 bytes of
	// payload but only 1 actually present must not panic the decoder.
	el := Decode("0b0500")
	if el.ID != 11 {
		t.Fatalf("ID = %d, want 11", el.ID)
	}
	if el.Type != "Unknown" {
		t.Errorf("Type = %q, want Unknown after truncated payload", el.Type)
	}
}

func TestDecode_VendorSpecific_MicrosoftOUI(t *testing.T) {
	// OUI 00:50:f2, type 2 (WMM), no further subtype decode expected.
	el := Decode("dd0600" + "50f2" + "02ffff")
	if el.Type != "Vendor Specific" {
		t.Fatalf("Type = %q, want %q", el.Type, "Vendor Specific")
	}
	if got := el.Elements["oui"]; got != "0050f2" {
		t.Errorf("oui = %v, want 0050f2", got)
	}
	if got := el.Elements["vendor"]; got != "Microsoft" {
		t.Errorf("vendor = %v, want Microsoft", got)
	}
}

func TestDecode_TPCReport(t *testing.T) {
	el := Decode("23020a05")
	if el.Type != "TPC Report" {
		t.Fatalf("Type = %q, want %q", el.Type, "TPC Report")
	}
	if got := el.Elements["tx_power"]; got != 10 {
		t.Errorf("tx_power = %v, want 10", got)
	}
	if got := el.Elements["link_margin"]; got != 5 {
		t.Errorf("link_margin = %v, want 5", got)
	}
}

func TestDecode_VHTCapabilities(t *testing.T) {
	raw := []byte{
		0xbf, 0x0c, // ID 191, length 12
		0x00, 0x00, 0x00, 0x00, // VHT Capabilities Info
		0x22, 0x11, // rx MCS map, LE 0x1122
		0x00, 0x00, // rx highest rate field
		0x44, 0x33, // tx MCS map, LE 0x3344
		0x00, 0x00, // tx rate field
	}
	el := Decode(hex.EncodeToString(raw))

	if el.Type != "VHT Capabilities" {
		t.Fatalf("Type = %q, want %q", el.Type, "VHT Capabilities")
	}
	if got := el.Elements["supported_rx_mcs_set"]; got != uint16(0x1122) {
		t.Errorf("supported_rx_mcs_set = %v, want %d", got, uint16(0x1122))
	}
	if got := el.Elements["supported_tx_mcs_set"]; got != uint16(0x3344) {
		t.Errorf("supported_tx_mcs_set = %v, want %d", got, uint16(0x3344))
	}
}

func TestDecode_VendorSpecific_ArubaAPName(t *testing.T) {
	// OUI 00:0b:86, oui_type=1, oui_subtype=3: ap_name decoded from
	// payload[6:] ("AP1").
	raw := []byte{
		0xdd, 0x09,
		0x00, 0x0b, 0x86, // OUI
		0x01,             // oui_type
		0x03, 0x00,       // oui_subtype, reserved
		'A', 'P', '1',
	}
	el := Decode(hex.EncodeToString(raw))

	if got := el.Elements["vendor"]; got != "Aruba Networks" {
		t.Fatalf("vendor = %v, want Aruba Networks", got)
	}
	if got := el.Elements["oui_subtype"]; got != 3 {
		t.Errorf("oui_subtype = %v, want 3", got)
	}
	if got := el.Elements["ap_name"]; got != "AP1" {
		t.Errorf("ap_name = %v, want AP1", got)
	}
}

func TestDecode_VendorSpecific_ArubaAPName_WrongSubtypeSkipsName(t *testing.T) {
	raw := []byte{
		0xdd, 0x09,
		0x00, 0x0b, 0x86,
		0x01,       // oui_type == 1
		0x05, 0x00, // oui_subtype != 3
		'A', 'P', '1',
	}
	el := Decode(hex.EncodeToString(raw))

	if _, ok := el.Elements["ap_name"]; ok {
		t.Errorf("ap_name should not be set for oui_subtype != 3, got %v", el.Elements["ap_name"])
	}
}

func TestDecode_VendorSpecific_ArubaAPName_WrongOUITypeSkipsName(t *testing.T) {
	raw := []byte{
		0xdd, 0x09,
		0x00, 0x0b, 0x86,
		0x02,       // oui_type != 1
		0x03, 0x00, // would-be oui_subtype == 3
		'A', 'P', '1',
	}
	el := Decode(hex.EncodeToString(raw))

	if _, ok := el.Elements["ap_name"]; ok {
		t.Errorf("ap_name should not be set for oui_type != 1, got %v", el.Elements["ap_name"])
	}
}

func TestDecode_VendorSpecific_WFABSSIDSSID(t *testing.T) {
	raw := []byte{
		0xdd, 0x0f,
		0x50, 0x6f, 0x9a, // OUI (Wi-Fi Alliance)
		0x1c,                               // oui_type 28
		0x00, 0x11, 0x22, 0x33, 0x44, 0x55, // bssid
		0x00, // reserved
		'T', 'e', 's', 't',
	}
	el := Decode(hex.EncodeToString(raw))

	if got := el.Elements["bssid"]; got != "001122334455" {
		t.Errorf("bssid = %v, want 001122334455", got)
	}
	if got := el.Elements["ssid"]; got != "Test" {
		t.Errorf("ssid = %v, want Test", got)
	}
}

func TestDecode_CCX1(t *testing.T) {
	payload := make([]byte, 27)
	copy(payload[10:25], "TestAP")
	payload[25] = 0x05 // sta_count LE low byte
	payload[26] = 0x00

	raw := append([]byte{0x85, 0x1b}, payload...)
	el := Decode(hex.EncodeToString(raw))

	if el.Type != "Cisco CCX1 CKIP" {
		t.Fatalf("Type = %q, want %q", el.Type, "Cisco CCX1 CKIP")
	}
	if got := el.Elements["ap_name"]; got != "TestAP" {
		t.Errorf("ap_name = %v, want TestAP", got)
	}
	if got := el.Elements["sta_count"]; got != 5 {
		t.Errorf("sta_count = %v, want 5", got)
	}
}
