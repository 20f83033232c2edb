// Package monitor is the Monitor Capture Orchestrator: it walks a sweep of
// channel-plan targets, tuning the monitor-mode interface to each and
// running a timed tcpdump capture, then archives whatever pcap files came
// out the other side. Grounded on the source this was ported from (the
// tune/spawn/sleep/resolve loop, the archive-only-if-any-files-exist
// ordering, and the non-fatal per-channel tuning failure).
package monitor

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/adstriegel/sigcap-buddy/internal/channelplan"
	"github.com/adstriegel/sigcap-buddy/internal/cmdrun"
	"github.com/adstriegel/sigcap-buddy/internal/scan"
)

// DefaultPacketSize is tcpdump's snaplen when a caller doesn't override it.
const DefaultPacketSize = 765

// Options configures one sweep.
type Options struct {
	Iface      string
	Duration   time.Duration
	PacketSize int
	Mode       string
	LastScan   []scan.Cell
}

// Sweep tunes and captures across every channel SelectChannels resolves
// for opts.Mode, then archives the resulting pcap files, returning the
// archive path (empty if nothing was captured).
func Sweep(ctx context.Context, opts Options) (string, error) {
	if opts.PacketSize <= 0 {
		opts.PacketSize = DefaultPacketSize
	}

	targets := SelectChannels(opts.Mode, opts.LastScan)
	log.Printf("monitor: capturing %d channels", len(targets))
	if len(targets) == 0 {
		return "", nil
	}

	var captureFiles []string
	for _, ch := range targets {
		file, err := captureOne(ctx, opts.Iface, opts.Duration, opts.PacketSize, ch)
		if err != nil {
			return "", err
		}
		if file != "" {
			captureFiles = append(captureFiles, file)
		}
		time.Sleep(1 * time.Second)
	}

	return archive(ctx, captureFiles)
}

func captureOne(ctx context.Context, iface string, duration time.Duration, packetSize int, ch channelplan.Channel) (string, error) {
	setFreqCmd := fmt.Sprintf("sudo iw dev %s set freq %d %d", iface, ch.PrimaryCenterFreq, ch.Width)
	if ch.Width > 20 {
		setFreqCmd += fmt.Sprintf(" %d", ch.CenterFreq)
	}

	out, err := cmdrun.Run(ctx, setFreqCmd, cmdrun.Options{
		Prefix: fmt.Sprintf("Set iface %s freq %d %d %d", iface, ch.PrimaryCenterFreq, ch.Width, ch.CenterFreq),
	})
	if err != nil {
		return "", err
	}
	if out.Raw().ReturnCode != 0 {
		log.Printf("monitor: cannot set %s freq: %s", iface, out.Raw().Stderr)
		return "", nil
	}

	fileName := fmt.Sprintf("capture_%s_%d_%d.pcap", ch.Band, ch.PrimaryChannel, ch.Width)
	handle, err := cmdrun.RunAsync(
		fmt.Sprintf("sudo tcpdump -i %s -s %d -w %s", iface, packetSize, fileName),
		fmt.Sprintf("Capture Wi-Fi packets on %s, size %d to %s", iface, packetSize, fileName),
	)
	if err != nil {
		return "", err
	}

	select {
	case <-time.After(duration):
	case <-ctx.Done():
	}

	if _, err := handle.Resolve(ctx, cmdrun.Options{
		Prefix:  "Resolving Wi-Fi packet capture",
		Kill:    true,
		Timeout: duration + time.Second,
	}); err != nil {
		return "", err
	}
	log.Print("monitor: capture finished")

	return fileName, nil
}
