package telemetry

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// ScansTotal counts beacon scans attempted per interface.
	ScansTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sigcap",
			Name:      "scans_total",
			Help:      "Total number of beacon scans attempted",
		},
		[]string{"interface"},
	)

	// BeaconsDecoded counts beacon records successfully parsed out of a scan.
	BeaconsDecoded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sigcap",
			Name:      "beacons_decoded_total",
			Help:      "Total number of beacon records decoded from scan output",
		},
		[]string{"interface"},
	)

	// IEParseFailures counts IE decode attempts that fell back to a partial record.
	IEParseFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sigcap",
			Name:      "ie_parse_failures_total",
			Help:      "Total number of information elements that failed to fully decode",
		},
		[]string{"ie_id"},
	)

	// CommandsFailed counts command-runner invocations that returned empty output.
	CommandsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sigcap",
			Name:      "commands_failed_total",
			Help:      "Total number of external command invocations that failed",
		},
		[]string{"prefix"},
	)

	// ChannelsCaptured counts per-channel capture attempts during a monitor sweep.
	ChannelsCaptured = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sigcap",
			Name:      "channels_captured_total",
			Help:      "Total number of channels on which capture was attempted",
		},
		[]string{"interface", "band", "outcome"},
	)

	// ArchivesWritten counts completed pcap archive bundles.
	ArchivesWritten = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "sigcap",
			Name:      "archives_written_total",
			Help:      "Total number of pcap archive bundles written",
		},
	)

	// HeartbeatsWritten counts successfully persisted heartbeat rows.
	HeartbeatsWritten = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "sigcap",
			Name:      "heartbeats_written_total",
			Help:      "Total number of heartbeat rows persisted",
		},
	)

	once sync.Once
)

// InitMetrics registers all metrics with the global Prometheus registry.
// Idempotent so callers can invoke it from multiple entry points safely.
func InitMetrics() {
	once.Do(func() {
		prometheus.DefaultRegisterer.MustRegister(
			ScansTotal,
			BeaconsDecoded,
			IEParseFailures,
			CommandsFailed,
			ChannelsCaptured,
			ArchivesWritten,
			HeartbeatsWritten,
		)
	})
}
