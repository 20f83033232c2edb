package scan

import (
	"context"
	"fmt"
	"time"

	"github.com/adstriegel/sigcap-buddy/internal/cmdrun"
)

// Handle is a started-but-unresolved asynchronous scan: a beacon scan and
// a delayed link query, both running concurrently in their own process
// groups. ResolveScanAsync must be called exactly once to collect them.
type Handle struct {
	scan *cmdrun.Handle
	link *cmdrun.Handle
}

// ScanAsync starts a beacon scan and, after linkWait, a link query, both
// in the background, and returns immediately. The link query is delayed
// so it samples the association state partway through the (slower) beacon
// scan rather than racing it at the start. cmdrun's sanitizer allow-lists
// only "sleep 1;", so a linkWait other than one second makes the link
// command fail with cmdrun.ErrUnsafeCommand; the already-started scan is
// then killed and collected before that error is returned.
func ScanAsync(iface string, linkWait time.Duration) (*Handle, error) {
	scanHandle, err := cmdrun.RunAsync(
		fmt.Sprintf("sudo iwlist %s scanning", iface),
		"Scanning Wi-Fi beacons asynchronously",
	)
	if err != nil {
		return nil, err
	}

	linkHandle, err := cmdrun.RunAsync(
		fmt.Sprintf("sleep %s; sudo iw dev %s link", formatSeconds(linkWait), iface),
		"Get connected Wi-Fi link",
	)
	if err != nil {
		scanHandle.Resolve(context.Background(), cmdrun.Options{Prefix: "Cancelling Wi-Fi beacon scan", Kill: true})
		return nil, err
	}

	return &Handle{scan: scanHandle, link: linkHandle}, nil
}

// ResolveScanAsync collects both legs of a previously-started ScanAsync
// and returns the decoded, connected-state-annotated Cells.
func ResolveScanAsync(ctx context.Context, h *Handle) ([]Cell, error) {
	scanOut, err := h.scan.Resolve(ctx, cmdrun.Options{Prefix: "Resolving Wi-Fi beacon scan"})
	if err != nil {
		return nil, err
	}
	linkOut, err := h.link.Resolve(ctx, cmdrun.Options{Prefix: "Resolving Wi-Fi link"})
	if err != nil {
		return nil, err
	}

	return ProcessScanResults(scanOut.Text(), ProcessLink(linkOut.Text())), nil
}

// LinkAsync starts a tight "while true; do date -Ins; iw dev link; done"
// loop in the background, to be killed and collected later by
// ResolveLinkAsync, sampling link bitrates continuously until then.
func LinkAsync(iface string) (*cmdrun.Handle, error) {
	return cmdrun.RunAsync(
		fmt.Sprintf("while true; do date -Ins; sudo iw dev %s link; done", iface),
		"Continuouly get Wi-Fi link",
	)
}

// ResolveLinkAsync signals the LinkAsync loop to stop, collects its
// accumulated output, and parses it into one LinkSample per iteration.
func ResolveLinkAsync(ctx context.Context, h *cmdrun.Handle) ([]LinkSample, error) {
	out, err := h.Resolve(ctx, cmdrun.Options{Prefix: "Resolving repeated Wi-Fi link call", Kill: true})
	if err != nil {
		return nil, err
	}
	return ProcessLinkResults(out.Text()), nil
}

func formatSeconds(d time.Duration) string {
	return fmt.Sprintf("%g", d.Seconds())
}
