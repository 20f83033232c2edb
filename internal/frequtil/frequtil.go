// Package frequtil holds the small frequency-token conversions used by
// package monitor to match scanned beacons' freq fields against the channel
// plan: parsing a human "x GHz"-style token to integer MHz, comparing one
// against a named band, and reformatting a bare hex BSSID.
package frequtil

import (
	"log"
	"strconv"
	"strings"
)

// FreqStrToMHz parses tokens like "2.412 GHz", "2412 MHz", or "2412000 kHz"
// into integer MHz. An unrecognized unit logs a warning and returns 0,
// rather than erroring — its caller (the monitor's scan-mode channel match,
// which dedups beacons by frequency) treats "don't know" and "no match" the
// same way.
func FreqStrToMHz(token string) int {
	fields := strings.Fields(token)
	if len(fields) < 2 {
		log.Printf("frequtil: cannot parse freq token %q", token)
		return 0
	}

	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		log.Printf("frequtil: cannot parse freq value %q", token)
		return 0
	}

	var multiplier float64
	switch strings.ToLower(fields[1]) {
	case "ghz":
		multiplier = 1e3
	case "mhz":
		multiplier = 1
	case "khz":
		multiplier = 1e-3
	case "hz":
		multiplier = 1e-6
	default:
		log.Printf("frequtil: unknown freq unit in %q", token)
		return 0
	}

	return int(value * multiplier)
}

// FreqStrCmp reports whether token's frequency falls within band's range.
// band is one of "2.4ghz" (< 2500 MHz), "5ghz" (> 5160 and < 5925 MHz), or
// "6ghz" (> 5925 MHz). An unrecognized band always returns false.
func FreqStrCmp(token, band string) bool {
	mhz := FreqStrToMHz(token)
	switch band {
	case "2.4ghz":
		return mhz < 2500
	case "5ghz":
		return mhz > 5160 && mhz < 5925
	case "6ghz":
		return mhz > 5925
	default:
		return false
	}
}

// HexToBSSID reformats a bare hex string (no colons) into the colon-
// separated, uppercase BSSID form, warning (but still returning its best
// effort) when the input isn't the expected 12 hex digits.
func HexToBSSID(hexStr string) string {
	if len(hexStr) != 12 {
		log.Printf("frequtil: hex_to_bssid: expected 12 hex digits, got %d in %q", len(hexStr), hexStr)
	}

	upper := strings.ToUpper(hexStr)
	var b strings.Builder
	for i := 0; i < len(upper); i += 2 {
		if i > 0 {
			b.WriteByte(':')
		}
		end := i + 2
		if end > len(upper) {
			end = len(upper)
		}
		b.WriteString(upper[i:end])
	}
	return b.String()
}
