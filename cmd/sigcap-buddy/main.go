// Command sigcap-buddy is the field measurement agent binary: it loads
// config, opens local storage, starts the diagnostics server, and runs the
// scan+capture+persist cycle until terminated. Grounded on the teacher's
// cmd/wmap-agent/main.go (signal.NotifyContext lifecycle, flag/config
// wiring) and internal/app/app.go (component bootstrap ordering), with the
// gRPC streaming client dropped (see DESIGN.md).
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/adstriegel/sigcap-buddy/internal/agent"
	"github.com/adstriegel/sigcap-buddy/internal/config"
	"github.com/adstriegel/sigcap-buddy/internal/fingerprint"
	"github.com/adstriegel/sigcap-buddy/internal/scan"
	"github.com/adstriegel/sigcap-buddy/internal/storage"
	"github.com/adstriegel/sigcap-buddy/internal/telemetry"
	"github.com/adstriegel/sigcap-buddy/internal/web"
)

func main() {
	cfg := config.Load()

	if len(cfg.Interfaces) == 0 {
		log.Fatal("no interfaces configured; pass -i or set SIGCAP_INTERFACE")
	}

	telemetry.InitMetrics()
	shutdownTracer, err := telemetry.InitTracer(cfg)
	if err != nil {
		log.Fatalf("failed to init tracer: %v", err)
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open storage at %s: %v", cfg.DBPath, err)
	}
	defer store.Close()

	tokenHash, err := web.HashToken(cfg.AuthToken)
	if err != nil {
		log.Fatalf("failed to hash diagnostics auth token: %v", err)
	}
	webServer := web.NewServer(cfg.Addr, store, tokenHash)

	vendors, err := fingerprint.Open(cfg.OUIDBPath, 20000)
	if err != nil {
		log.Fatalf("failed to open OUI vendor repository: %v", err)
	}
	defer vendors.Close()

	runner := agent.New(agent.Options{
		Iface:        cfg.Interfaces[0],
		MonitorIface: cfg.MonitorIface,
		ScanInterval: cfg.ScanInterval,
		DwellTime:    cfg.DwellTime,
		PacketSize:   cfg.PacketSize,
		MonitorMode:  cfg.MonitorMode,
		ReportDir:    cfg.ReportDir,
		Vendors:      vendors,
		OnScan: func(cells []scan.Cell) {
			webServer.BroadcastBeacons(cells)
		},
	}, store)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("diagnostics server listening", "addr", cfg.Addr)
		if err := webServer.Run(ctx); err != nil {
			errCh <- err
		}
	}()

	go runner.Run(ctx)

	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	case err := <-errCh:
		slog.Error("diagnostics server exited", "error", err)
	}

	if err := shutdownTracer(context.Background()); err != nil {
		slog.Error("tracer shutdown failed", "error", err)
	}
}
