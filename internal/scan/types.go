// Package scan parses the text output of "iwlist scanning" and "iw dev
// link" into structured beacon and link records. The regex contracts here
// are load-bearing: they were reverse-engineered against real driver
// output, and changing them changes what a deployed agent can see, not
// just how it's expressed. See the regex contract tests for examples of
// the exact text these are meant to survive.
package scan

import "github.com/adstriegel/sigcap-buddy/internal/ie"

// Cell is one "Cell NN - Address: ..." block from an iwlist scan, with
// IEs decoded and the connected/current-link fields filled in when this
// cell's BSSID matches the interface's active link.
type Cell struct {
	BSSID      string
	Channel    string
	Freq       string
	RSSI       string
	SSID       string
	Connected  bool
	Rates      []string
	TxBitrate  string
	RxBitrate  string
	Extras     []ie.Element
}

// Link is the BSSID and instantaneous bitrates of the interface's current
// association, as reported by "iw dev <iface> link".
type Link struct {
	BSSID     string
	TxBitrate string
	RxBitrate string
}

// LinkSample is one iteration of a continuously-polled "iw dev link" loop,
// timestamped at the moment it was captured.
type LinkSample struct {
	Timestamp string
	RSSI      string
	TxBitrate string
	RxBitrate string
}
