package scan

import (
	"strings"

	"github.com/adstriegel/sigcap-buddy/internal/ie"
)

// ProcessScanResults turns the raw "iwlist scanning" text into Cells. Runs
// of whitespace (including the embedded newlines iwlist wraps each field
// in) are first collapsed to single spaces, then the text is split on the
// literal word "Cell" — exactly as fragile and exactly as effective as the
// source this was ported from, which depends on no driver ever emitting
// the substring "Cell" inside a field value.
//
// link identifies the interface's current association (from ProcessLink);
// a Cell whose BSSID matches it is marked Connected and gets its bitrates
// filled in from link rather than from the scan text, which doesn't carry
// bitrate fields at all.
func ProcessScanResults(results string, link Link) []Cell {
	collapsed := reWhitespace.ReplaceAllString(results, " ")
	entries := strings.Split(collapsed, "Cell")

	var cells []Cell
	for _, entry := range entries {
		cell := Cell{Rates: []string{}, Extras: []ie.Element{}}

		if m := reBSSID.FindStringSubmatch(entry); m != nil {
			cell.BSSID = m[1]
		}
		if m := reChannel.FindStringSubmatch(entry); m != nil {
			cell.Channel = m[1]
		}
		if m := reFreq.FindStringSubmatch(entry); m != nil {
			cell.Freq = m[1]
		}
		if m := reRSSI.FindStringSubmatch(entry); m != nil {
			cell.RSSI = m[1]
		}
		if m := reSSID.FindStringSubmatch(entry); m != nil {
			cell.SSID = m[1]
		}
		if rates := reRates.FindAllString(entry, -1); rates != nil {
			cell.Rates = rates
		}
		for _, m := range reExtras.FindAllStringSubmatch(entry, -1) {
			cell.Extras = append(cell.Extras, ie.Decode(m[1]))
		}

		if cell.BSSID == "" {
			continue
		}
		if cell.BSSID == link.BSSID {
			cell.Connected = true
			cell.TxBitrate = link.TxBitrate
			cell.RxBitrate = link.RxBitrate
		}
		cells = append(cells, cell)
	}

	return cells
}

// ProcessLink extracts the connected BSSID and instantaneous bitrates from
// "iw dev <iface> link" text. An empty result (interface not associated)
// yields a zero-value Link, not an error.
func ProcessLink(result string) Link {
	var link Link
	if result == "" {
		return link
	}

	if m := reConnected.FindStringSubmatch(result); m != nil {
		link.BSSID = strings.ToUpper(m[1])
	}
	if m := reTxBitrate.FindStringSubmatch(result); m != nil {
		link.TxBitrate = m[1]
	}
	if m := reRxBitrate.FindStringSubmatch(result); m != nil {
		link.RxBitrate = m[1]
	}
	return link
}

// ProcessLinkResults parses the concatenated output of a "while true; do
// date -Ins; iw dev link; done" loop into one LinkSample per iteration.
// The result is zipped to len(rxBitrates): if an earlier loop iteration
// raced the kill signal and only partially flushed a timestamp or rssi
// line, those arrays can be longer or shorter than rxBitrates. Extra
// entries in the longer ones are dropped, and when one of them is shorter
// the sample count stops at its length — a loop boundary quirk, not a bug
// to paper over.
func ProcessLinkResults(results string) []LinkSample {
	timestamps := reTimestamp.FindAllString(results, -1)
	rssiMatches := reLinkRSSI.FindAllStringSubmatch(results, -1)
	txMatches := reTxBitrate.FindAllStringSubmatch(results, -1)
	rxMatches := reRxBitrate.FindAllStringSubmatch(results, -1)

	n := len(rxMatches)
	for _, l := range []int{len(timestamps), len(rssiMatches), len(txMatches)} {
		if l < n {
			n = l
		}
	}

	samples := make([]LinkSample, 0, n)
	for i := 0; i < n; i++ {
		samples = append(samples, LinkSample{
			Timestamp: strings.Replace(timestamps[i], ",", ".", 1),
			RSSI:      rssiMatches[i][1],
			TxBitrate: txMatches[i][1],
			RxBitrate: rxMatches[i][1],
		})
	}
	return samples
}
