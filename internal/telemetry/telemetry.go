package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.20.0"

	"github.com/adstriegel/sigcap-buddy/internal/config"
)

// Tracer is the package-wide tracer used to span scan and monitor sweeps.
var Tracer = otel.Tracer("sigcap-buddy")

// InitTracer initializes the OpenTelemetry tracer provider for this agent's
// deployment, tagging every span's resource with the field node's hostname
// and the interfaces it was started against so traces from a fleet of
// devices can be told apart at the collector.
// It returns a shutdown function that should be called on app exit.
//
// The stdout exporter is deliberately used instead of an OTLP exporter: this
// agent runs on isolated field nodes with no guaranteed collector endpoint,
// so traces are written to the local log stream instead. Output is left in
// the exporter's default compact JSON, not pretty-printed — these logs are
// shipped off-device for later ingestion, not read by a human at the
// terminal.
func InitTracer(cfg *config.Config) (func(context.Context) error, error) {
	exporter, err := stdouttrace.New()
	if err != nil {
		return nil, err
	}

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	env := "field"
	if cfg.Debug {
		env = "development"
	}

	res, err := resource.New(
		context.Background(),
		resource.WithAttributes(
			semconv.ServiceName("sigcap-buddy"),
			semconv.ServiceVersion("1.0.0"),
			semconv.HostName(hostname),
			semconv.DeploymentEnvironment(env),
			attribute.StringSlice("sigcap.scan_interfaces", cfg.Interfaces),
			attribute.String("sigcap.monitor_iface", cfg.MonitorIface),
			attribute.String("sigcap.monitor_mode", cfg.MonitorMode),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}
