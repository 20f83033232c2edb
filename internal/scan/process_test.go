package scan

import "testing"

const sampleIwlistOutput = `wlan0     Scan completed :
          Cell 01 - Address: AA:BB:CC:DD:EE:FF
                    Channel:6
                    Frequency:2.437 GHz (Channel 6)
                    Quality=70/70  Signal level=-40 dBm
                    Encryption key:on
                    ESSID:"TestNet"
                    Bit Rates:1 Mb/s; 2 Mb/s; 5.5 Mb/s; 11 Mb/s
                              6 Mb/s; 9 Mb/s
                    Mode:Master
                    IE: Unknown: 0B050A00804000
          Cell 02 - Address: 11:22:33:44:55:66
                    Channel:11
                    Frequency:2.462 GHz (Channel 11)
                    Quality=40/70  Signal level=-70 dBm
                    ESSID:"OtherNet"
                    Bit Rates:1 Mb/s; 2 Mb/s
                    Mode:Master
`

const sampleLinkOutput = `Connected to aa:bb:cc:dd:ee:ff (on wlan0)
	SSID: TestNet
	freq: 2437
	signal: -40 dBm
	tx bitrate: 72.2 MBit/s

	rx bitrate: 130.0 MBit/s
`

func TestProcessLink(t *testing.T) {
	link := ProcessLink(sampleLinkOutput)
	if link.BSSID != "AA:BB:CC:DD:EE:FF" {
		t.Errorf("BSSID = %q, want %q", link.BSSID, "AA:BB:CC:DD:EE:FF")
	}
	if link.TxBitrate != "72.2 MBit/s" {
		t.Errorf("TxBitrate = %q, want %q", link.TxBitrate, "72.2 MBit/s")
	}
	if link.RxBitrate != "130.0 MBit/s" {
		t.Errorf("RxBitrate = %q, want %q", link.RxBitrate, "130.0 MBit/s")
	}
}

func TestProcessLink_Disconnected(t *testing.T) {
	link := ProcessLink("")
	if link.BSSID != "" || link.TxBitrate != "" || link.RxBitrate != "" {
		t.Errorf("ProcessLink(\"\") = %+v, want zero value", link)
	}
}

func TestProcessScanResults_MarksConnectedCell(t *testing.T) {
	link := ProcessLink(sampleLinkOutput)
	cells := ProcessScanResults(sampleIwlistOutput, link)

	if len(cells) != 2 {
		t.Fatalf("len(cells) = %d, want 2", len(cells))
	}

	connected := cells[0]
	if connected.BSSID != "AA:BB:CC:DD:EE:FF" {
		t.Errorf("cells[0].BSSID = %q, want %q", connected.BSSID, "AA:BB:CC:DD:EE:FF")
	}
	if !connected.Connected {
		t.Errorf("cells[0].Connected = false, want true")
	}
	if connected.TxBitrate != "72.2 MBit/s" {
		t.Errorf("cells[0].TxBitrate = %q, want %q", connected.TxBitrate, "72.2 MBit/s")
	}
	if connected.Channel != "6" {
		t.Errorf("cells[0].Channel = %q, want %q", connected.Channel, "6")
	}
	if connected.SSID != "TestNet" {
		t.Errorf("cells[0].SSID = %q, want %q", connected.SSID, "TestNet")
	}
	if len(connected.Rates) != 6 {
		t.Errorf("len(cells[0].Rates) = %d, want 6", len(connected.Rates))
	}
	if len(connected.Extras) != 1 {
		t.Fatalf("len(cells[0].Extras) = %d, want 1", len(connected.Extras))
	}
	if connected.Extras[0].Type != "BSS Load" {
		t.Errorf("cells[0].Extras[0].Type = %q, want %q", connected.Extras[0].Type, "BSS Load")
	}

	other := cells[1]
	if other.Connected {
		t.Errorf("cells[1].Connected = true, want false")
	}
	if other.TxBitrate != "" {
		t.Errorf("cells[1].TxBitrate = %q, want empty", other.TxBitrate)
	}
}

func TestProcessLinkResults_ZipsToRxBitrateCount(t *testing.T) {
	results := `2026-07-31T10:00:00,123456+00:00
Connected to aa:bb:cc:dd:ee:ff (on wlan0)
	signal: -42 dBm
	tx bitrate: 72.2 MBit/s
	rx bitrate: 130.0 MBit/s
2026-07-31T10:00:01,654321+00:00
Connected to aa:bb:cc:dd:ee:ff (on wlan0)
	signal: -43 dBm
	tx bitrate: 65.0 MBit/s
	rx bitrate: 117.0 MBit/s
`
	samples := ProcessLinkResults(results)
	if len(samples) != 2 {
		t.Fatalf("len(samples) = %d, want 2", len(samples))
	}
	if samples[0].Timestamp != "2026-07-31T10:00:00.123456+00:00" {
		t.Errorf("samples[0].Timestamp = %q, want comma replaced with dot", samples[0].Timestamp)
	}
	if samples[0].RSSI != "-42 dBm" {
		t.Errorf("samples[0].RSSI = %q, want %q", samples[0].RSSI, "-42 dBm")
	}
	if samples[1].RxBitrate != "117.0 MBit/s" {
		t.Errorf("samples[1].RxBitrate = %q, want %q", samples[1].RxBitrate, "117.0 MBit/s")
	}
}

func TestProcessLinkResults_MismatchedCountsTruncateToRxBitrate(t *testing.T) {
	// Second iteration is missing its "rx bitrate:" line (e.g. the kill
	// signal raced the loop mid-flush): timestamps/rssi/tx have 2 entries
	// each, rx bitrate has only 1. The result must follow rxMatches' count,
	// not panic or silently pad.
	results := `2026-07-31T10:00:00,123456+00:00
Connected to aa:bb:cc:dd:ee:ff (on wlan0)
	signal: -42 dBm
	tx bitrate: 72.2 MBit/s
	rx bitrate: 130.0 MBit/s
2026-07-31T10:00:01,654321+00:00
Connected to aa:bb:cc:dd:ee:ff (on wlan0)
	signal: -43 dBm
	tx bitrate: 65.0 MBit/s
`
	samples := ProcessLinkResults(results)
	if len(samples) != 1 {
		t.Fatalf("len(samples) = %d, want 1 (zipped to rx bitrate count)", len(samples))
	}
	if samples[0].RxBitrate != "130.0 MBit/s" {
		t.Errorf("samples[0].RxBitrate = %q, want %q", samples[0].RxBitrate, "130.0 MBit/s")
	}
	if samples[0].TxBitrate != "72.2 MBit/s" {
		t.Errorf("samples[0].TxBitrate = %q, want %q", samples[0].TxBitrate, "72.2 MBit/s")
	}
}
