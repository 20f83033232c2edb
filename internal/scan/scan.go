package scan

import (
	"context"
	"fmt"

	"github.com/adstriegel/sigcap-buddy/internal/cmdrun"
)

// Scan runs a synchronous beacon scan plus a link query on iface and
// returns the decoded Cells, with the currently-associated Cell (if any)
// marked Connected. Grounded on the source this was ported from: two
// sequential host commands, "iwlist scanning" first and "iw dev link"
// second, neither one long-running.
func Scan(ctx context.Context, iface string) ([]Cell, error) {
	out, err := cmdrun.Run(ctx, fmt.Sprintf("sudo iwlist %s scanning", iface), cmdrun.Options{
		Prefix: "Scanning Wi-Fi beacons",
	})
	if err != nil {
		return nil, err
	}

	linkOut, err := cmdrun.Run(ctx, fmt.Sprintf("sudo iw dev %s link", iface), cmdrun.Options{
		Prefix:    "Get connected Wi-Fi",
		LogResult: true,
	})
	if err != nil {
		return nil, err
	}

	return ProcessScanResults(out.Text(), ProcessLink(linkOut.Text())), nil
}
