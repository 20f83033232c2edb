package frequtil

import "testing"

func TestFreqStrToMHz(t *testing.T) {
	cases := map[string]int{
		"2.412 GHz":   2412,
		"2412 MHz":    2412,
		"2412000 kHz": 2412,
		"2412000000 Hz": 2412,
	}
	for token, want := range cases {
		if got := FreqStrToMHz(token); got != want {
			t.Errorf("FreqStrToMHz(%q) = %d, want %d", token, got, want)
		}
	}
}

func TestFreqStrToMHz_UnknownUnit(t *testing.T) {
	if got := FreqStrToMHz("2.412 XHz"); got != 0 {
		t.Errorf("FreqStrToMHz(unknown unit) = %d, want 0", got)
	}
}

func TestFreqStrCmp(t *testing.T) {
	if !FreqStrCmp("2.412 GHz", "2.4ghz") {
		t.Error("2.412 GHz should match 2.4ghz band")
	}
	if !FreqStrCmp("5.18 GHz", "5ghz") {
		t.Error("5.18 GHz should match 5ghz band")
	}
	if !FreqStrCmp("5.975 GHz", "6ghz") {
		t.Error("5.975 GHz should match 6ghz band")
	}
	if FreqStrCmp("5.18 GHz", "2.4ghz") {
		t.Error("5.18 GHz should not match 2.4ghz band")
	}
}

func TestHexToBSSID(t *testing.T) {
	got := HexToBSSID("aabbccddeeff")
	want := "AA:BB:CC:DD:EE:FF"
	if got != want {
		t.Errorf("HexToBSSID = %q, want %q", got, want)
	}
}
