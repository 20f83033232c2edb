package monitor

import (
	"log"

	"github.com/adstriegel/sigcap-buddy/internal/channelplan"
	"github.com/adstriegel/sigcap-buddy/internal/frequtil"
	"github.com/adstriegel/sigcap-buddy/internal/scan"
)

// SelectChannels resolves a sweep mode to the concrete channel-plan
// targets it implies. "scan" mode needs lastScan (the most recent beacon
// scan, from package scan) to know which frequencies were actually seen;
// an unknown mode logs an error and returns no channels, matching the
// source this was ported from rather than erroring the whole sweep.
func SelectChannels(mode string, lastScan []scan.Cell) []channelplan.Channel {
	switch mode {
	case "all":
		return channelplan.All
	case "2.4ghz", "5ghz", "6ghz":
		return channelplan.ForBand(mode)
	case "scan":
		if len(lastScan) == 0 {
			return nil
		}
		seen := map[int]bool{}
		var freqsMHz []int
		for _, cell := range lastScan {
			mhz := frequtil.FreqStrToMHz(cell.Freq)
			if !seen[mhz] {
				seen[mhz] = true
				freqsMHz = append(freqsMHz, mhz)
			}
		}
		return channelplan.ForCenterFreqs(freqsMHz)
	default:
		log.Printf("monitor: unknown mode %q", mode)
		return nil
	}
}
