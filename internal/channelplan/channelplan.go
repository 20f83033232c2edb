// Package channelplan is the static table of channel-hopping targets: 6 GHz
// channels at 80 MHz bandwidth, 5 GHz channels at 40 MHz, and 2.4 GHz
// channels at 20 MHz. The table is transcribed verbatim (frequencies,
// widths, channel numbers) from the source this agent was ported from — it
// is regulatory data, not something to recompute.
package channelplan

// Channel is one channel-hopping target: a primary channel number, the
// center frequency of that 20 MHz primary channel and the center frequency
// of the whole (for 40/80 MHz, bonded) operating channel, both in MHz, and
// the bandwidth to tune the radio to.
type Channel struct {
	Band               string
	PrimaryChannel     int
	PrimaryCenterFreq  int
	CenterFreq         int
	Width              int
}

// All is the full channel-hopping table, in 6 GHz, then 5 GHz, then 2.4 GHz
// order, matching the source this was ported from. The single-entry width-40
// oddities (e.g. primary 140 sharing a 5710 center with no neighbor) are
// preserved as-is: they reflect a channel plan a real radio was configured
// with, not transcription errors.
var All = []Channel{
	{"6ghz", 5, 5975, 5985, 80},
	{"6ghz", 21, 6055, 6065, 80},
	{"6ghz", 37, 6135, 6145, 80},
	{"6ghz", 53, 6215, 6225, 80},
	{"6ghz", 69, 6295, 6305, 80},
	{"6ghz", 85, 6375, 6385, 80},
	{"6ghz", 101, 6455, 6465, 80},
	{"6ghz", 117, 6535, 6545, 80},
	{"6ghz", 133, 6615, 6625, 80},
	{"6ghz", 149, 6695, 6705, 80},
	{"6ghz", 165, 6775, 6785, 80},
	{"6ghz", 181, 6855, 6865, 80},
	{"6ghz", 197, 6935, 6945, 80},
	{"6ghz", 213, 7015, 7025, 80},
	{"5ghz", 36, 5180, 5190, 40},
	{"5ghz", 40, 5200, 5190, 40},
	{"5ghz", 44, 5220, 5230, 40},
	{"5ghz", 48, 5240, 5230, 40},
	{"5ghz", 52, 5260, 5270, 40},
	{"5ghz", 56, 5280, 5270, 40},
	{"5ghz", 60, 5300, 5310, 40},
	{"5ghz", 64, 5320, 5310, 40},
	{"5ghz", 100, 5500, 5510, 40},
	{"5ghz", 104, 5520, 5510, 40},
	{"5ghz", 108, 5540, 5550, 40},
	{"5ghz", 112, 5560, 5550, 40},
	{"5ghz", 116, 5580, 5590, 40},
	{"5ghz", 120, 5600, 5590, 40},
	{"5ghz", 124, 5620, 5630, 40},
	{"5ghz", 128, 5640, 5630, 40},
	{"5ghz", 132, 5660, 5670, 40},
	{"5ghz", 136, 5680, 5670, 40},
	{"5ghz", 140, 5700, 5710, 40},
	{"5ghz", 149, 5745, 5755, 40},
	{"5ghz", 153, 5765, 5755, 40},
	{"5ghz", 157, 5785, 5795, 40},
	{"5ghz", 161, 5805, 5795, 40},
	{"2.4ghz", 1, 2412, 2412, 20},
	{"2.4ghz", 2, 2417, 2417, 20},
	{"2.4ghz", 3, 2422, 2422, 20},
	{"2.4ghz", 4, 2427, 2427, 20},
	{"2.4ghz", 5, 2432, 2432, 20},
	{"2.4ghz", 6, 2437, 2437, 20},
	{"2.4ghz", 7, 2442, 2442, 20},
	{"2.4ghz", 8, 2447, 2447, 20},
	{"2.4ghz", 9, 2452, 2452, 20},
	{"2.4ghz", 10, 2457, 2457, 20},
	{"2.4ghz", 11, 2462, 2462, 20},
}

// ForBand returns the subset of All matching the given freq_label
// ("6ghz", "5ghz", or "2.4ghz").
func ForBand(band string) []Channel {
	var out []Channel
	for _, ch := range All {
		if ch.Band == band {
			out = append(out, ch)
		}
	}
	return out
}

// ForCenterFreqs returns the subset of All whose PrimaryCenterFreq appears
// in freqsMHz, preserving All's order (not freqsMHz's).
func ForCenterFreqs(freqsMHz []int) []Channel {
	want := make(map[int]bool, len(freqsMHz))
	for _, f := range freqsMHz {
		want[f] = true
	}

	var out []Channel
	for _, ch := range All {
		if want[ch.PrimaryCenterFreq] {
			out = append(out, ch)
		}
	}
	return out
}
