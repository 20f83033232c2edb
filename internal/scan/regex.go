package scan

import "regexp"

var reWhitespace = regexp.MustCompile(`\s+`)

var (
	reBSSID   = regexp.MustCompile(`Address: *([0-9A-F:]+)`)
	reChannel = regexp.MustCompile(`Channel: *(\d+)`)
	reFreq    = regexp.MustCompile(`Frequency: *([\d.]+ ?.Hz)`)
	reRSSI    = regexp.MustCompile(`Signal level= *([-\d.]+ ?dBm)`)
	reSSID    = regexp.MustCompile(`ESSID: *"([^"]+)"`)
	reRates   = regexp.MustCompile(`\d+ Mb/s`)
	reExtras  = regexp.MustCompile(`IE: +Unknown: +([0-9A-F]+)`)
)

var (
	reTxBitrate = regexp.MustCompile(`tx bitrate: *(.+)`)
	reRxBitrate = regexp.MustCompile(`rx bitrate: *(.+)`)
	reTimestamp = regexp.MustCompile(`\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2},\d+[+-]\d{2}:\d{2}`)
	reLinkRSSI  = regexp.MustCompile(`signal: *([-\d.]+ ?dBm)`)
	reConnected = regexp.MustCompile(`Connected to *([\da-f]{2}:[\da-f]{2}:[\da-f]{2}:[\da-f]{2}:[\da-f]{2}:[\da-f]{2})`)
)
