// Package agent is the driver that ties the leaf packages together: on a
// ticker it runs a beacon scan, optionally a monitor-mode capture sweep,
// and persists a heartbeat plus scan-run summary. It is the "outside the
// core" orchestrator the distilled spec's data-flow section describes but
// never names as a package, grounded on the teacher's Application facade
// (internal/app/app.go) and its cmd/wmap-agent select-loop driver.
package agent

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/adstriegel/sigcap-buddy/internal/fingerprint"
	"github.com/adstriegel/sigcap-buddy/internal/monitor"
	"github.com/adstriegel/sigcap-buddy/internal/reporting"
	"github.com/adstriegel/sigcap-buddy/internal/scan"
	"github.com/adstriegel/sigcap-buddy/internal/storage"
	"github.com/adstriegel/sigcap-buddy/internal/telemetry"
)

// Options configures one Runner.
type Options struct {
	Iface        string
	MonitorIface string // empty disables monitor-mode capture
	ScanInterval time.Duration
	DwellTime    time.Duration
	PacketSize   int
	MonitorMode  string

	// ReportDir, if set, makes the Runner write one field-survey PDF per
	// cycle under this directory. Empty disables report generation.
	ReportDir string
	// Vendors enriches generated reports with BSSID vendor names; nil
	// disables the vendor-distribution section.
	Vendors *fingerprint.Repository

	// OnScan, if set, is called with each cycle's decoded cells — used to
	// push a live feed to internal/web's /ws/beacons clients.
	OnScan func([]scan.Cell)
}

// Runner drives the periodic scan+capture+persist cycle for one interface.
type Runner struct {
	opts  Options
	store *storage.Store
}

// New builds a Runner bound to an already-open Store.
func New(opts Options, store *storage.Store) *Runner {
	return &Runner{opts: opts, store: store}
}

// Run blocks, ticking every opts.ScanInterval until ctx is cancelled. Each
// tick is independent: a failed cycle is logged and persisted as an error
// heartbeat, never fatal to the loop, matching spec.md §7's "degrade, don't
// crash" error taxonomy.
func (r *Runner) Run(ctx context.Context) {
	slog.Info("agent: starting runner", "interface", r.opts.Iface, "scan_interval", r.opts.ScanInterval)

	ticker := time.NewTicker(r.opts.ScanInterval)
	defer ticker.Stop()

	r.cycle(ctx)
	for {
		select {
		case <-ctx.Done():
			slog.Info("agent: runner stopped")
			return
		case <-ticker.C:
			r.cycle(ctx)
		}
	}
}

func (r *Runner) cycle(ctx context.Context) {
	runID := uuid.NewString()
	startedAt := time.Now()
	log := slog.With("run_id", runID, "interface", r.opts.Iface)

	ctx, span := telemetry.Tracer.Start(ctx, "agent.cycle")
	defer span.End()

	telemetry.ScansTotal.WithLabelValues(r.opts.Iface).Inc()

	cells, err := scan.Scan(ctx, r.opts.Iface)
	if err != nil {
		log.Error("scan failed", "error", err)
		r.writeHeartbeat(ctx, runID, "error", err.Error())
		r.saveRun(ctx, storage.ScanRunModel{
			ID: runID, Iface: r.opts.Iface, StartedAt: startedAt,
			FinishedAt: time.Now(), Error: err.Error(),
		})
		return
	}
	telemetry.BeaconsDecoded.WithLabelValues(r.opts.Iface).Add(float64(len(cells)))
	log.Info("scan complete", "cells", len(cells))

	if r.opts.OnScan != nil {
		r.opts.OnScan(cells)
	}

	var archivePath string
	monitorRan := false
	if r.opts.MonitorIface != "" {
		monitorRan = true
		path, err := monitor.Sweep(ctx, monitor.Options{
			Iface:      r.opts.MonitorIface,
			Duration:   r.opts.DwellTime,
			PacketSize: r.opts.PacketSize,
			Mode:       r.opts.MonitorMode,
			LastScan:   cells,
		})
		if err != nil {
			log.Error("monitor sweep failed", "error", err)
		} else {
			archivePath = path
			if archivePath != "" {
				telemetry.ArchivesWritten.Inc()
			}
		}
	}

	run := storage.ScanRunModel{
		ID:          runID,
		Iface:       r.opts.Iface,
		StartedAt:   startedAt,
		FinishedAt:  time.Now(),
		CellCount:   len(cells),
		MonitorRan:  monitorRan,
		ArchivePath: archivePath,
		BeaconsJSON: storage.MarshalBeacons(cells),
	}
	r.saveRun(ctx, run)
	r.writeHeartbeat(ctx, runID, "ok", fmt.Sprintf("%d cells", len(cells)))
	r.writeReport(runID, startedAt, run.FinishedAt, cells)
}

func (r *Runner) writeReport(runID string, startedAt, finishedAt time.Time, cells []scan.Cell) {
	if r.opts.ReportDir == "" {
		return
	}

	exporter := reporting.NewExporter()
	if r.opts.Vendors != nil {
		exporter = reporting.NewExporterWithVendors(r.opts.Vendors)
	}

	pdfBytes, err := exporter.Export(reporting.SurveyReport{
		Iface: r.opts.Iface, StartedAt: startedAt, FinishedAt: finishedAt, Cells: cells,
	})
	if err != nil {
		slog.Error("agent: failed to render field survey pdf", "run_id", runID, "error", err)
		return
	}

	if err := os.MkdirAll(r.opts.ReportDir, 0o755); err != nil {
		slog.Error("agent: failed to create report dir", "dir", r.opts.ReportDir, "error", err)
		return
	}

	path := filepath.Join(r.opts.ReportDir, fmt.Sprintf("%s.pdf", runID))
	if err := os.WriteFile(path, pdfBytes, 0o644); err != nil {
		slog.Error("agent: failed to write field survey pdf", "path", path, "error", err)
	}
}

func (r *Runner) saveRun(ctx context.Context, run storage.ScanRunModel) {
	if r.store == nil {
		return
	}
	if err := r.store.SaveScanRun(ctx, run); err != nil {
		slog.Error("agent: failed to persist scan run", "run_id", run.ID, "error", err)
	}
}

func (r *Runner) writeHeartbeat(ctx context.Context, runID, status, detail string) {
	if r.store == nil {
		return
	}
	err := r.store.SaveHeartbeat(ctx, storage.HeartbeatModel{
		RunID: runID, Iface: r.opts.Iface, Status: status, Detail: detail, Timestamp: time.Now(),
	})
	if err != nil {
		slog.Error("agent: failed to persist heartbeat", "run_id", runID, "error", err)
		return
	}
	telemetry.HeartbeatsWritten.Inc()
}
