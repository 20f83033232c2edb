package fingerprint

// seedVendors is a small embedded OUI table covering the vendors most
// likely to show up in a field survey's vendor-specific IEs (see
// internal/ie/vendor.go), used when no external OUI database is configured
// or a prefix misses there.
var seedVendors = map[string]string{
	"00:50:F2": "Microsoft",
	"8C:FD:F0": "Qualcomm",
	"00:0B:86": "Aruba Networks",
	"50:6F:9A": "Wi-Fi Alliance",
	"00:1B:63": "Apple",
	"F0:18:98": "Apple",
	"B8:27:EB": "Raspberry Pi Foundation",
	"DC:A6:32": "Raspberry Pi Foundation",
	"00:15:6D": "Ubiquiti Networks",
	"F4:92:BF": "Ubiquiti Networks",
	"00:18:0A": "Cisco",
	"00:23:04": "Cisco",
}
