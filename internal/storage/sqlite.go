// Package storage persists heartbeat and scan-run summaries to a local
// SQLite file via GORM, the way the teacher persists domain.Device through
// storage.SQLiteAdapter. This agent has no multi-tenant/multi-backend
// requirement, so only the sqlite driver is kept.
package storage

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"
)

// ScanRunModel is one completed scan (and optional monitor sweep) cycle.
type ScanRunModel struct {
	ID            string `gorm:"primaryKey"`
	Iface         string `gorm:"index"`
	StartedAt     time.Time
	FinishedAt    time.Time
	CellCount     int
	MonitorRan    bool
	ArchivePath   string
	BeaconsJSON   string // JSON-encoded []scan.Cell snapshot
	Error         string
}

// HeartbeatModel is one liveness beat emitted by internal/agent.Runner.
type HeartbeatModel struct {
	ID        uint `gorm:"primaryKey;autoIncrement"`
	RunID     string `gorm:"index"`
	Iface     string
	Status    string // "ok" or "error"
	Detail    string
	Timestamp time.Time `gorm:"index"`
}

// Store wraps a gorm.DB handle opened against a single SQLite file.
type Store struct {
	db *gorm.DB
}

// Open initializes the database at path and migrates the schema, mirroring
// the teacher's NewSQLiteAdapter: WAL mode, a busy timeout so concurrent
// heartbeat writes from a ticker never hit "database locked", and an
// OpenTelemetry tracing plugin on the gorm session.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&ScanRunModel{}, &HeartbeatModel{}); err != nil {
		return nil, err
	}

	if err := db.Use(tracing.NewPlugin()); err != nil {
		return nil, err
	}

	db.Exec("PRAGMA journal_mode=WAL;")
	db.Exec("PRAGMA busy_timeout=5000;")
	db.Exec("PRAGMA synchronous=NORMAL;")

	db.Exec("CREATE INDEX IF NOT EXISTS idx_scanruns_iface ON scan_run_models(iface)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_heartbeats_timestamp ON heartbeat_models(timestamp)")

	return &Store{db: db}, nil
}

// SaveScanRun upserts a completed scan-run summary by ID.
func (s *Store) SaveScanRun(ctx context.Context, run ScanRunModel) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&run).Error
}

// GetScanRun retrieves a scan run by ID.
func (s *Store) GetScanRun(ctx context.Context, id string) (*ScanRunModel, error) {
	var m ScanRunModel
	if err := s.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// RecentScanRuns returns the most recent scan runs, newest first.
func (s *Store) RecentScanRuns(ctx context.Context, limit int) ([]ScanRunModel, error) {
	var models []ScanRunModel
	if err := s.db.WithContext(ctx).Order("started_at DESC").Limit(limit).Find(&models).Error; err != nil {
		return nil, err
	}
	return models, nil
}

// SaveHeartbeat appends one heartbeat row.
func (s *Store) SaveHeartbeat(ctx context.Context, hb HeartbeatModel) error {
	return s.db.WithContext(ctx).Create(&hb).Error
}

// LatestHeartbeat returns the most recently recorded heartbeat, if any.
func (s *Store) LatestHeartbeat(ctx context.Context) (*HeartbeatModel, error) {
	var m HeartbeatModel
	if err := s.db.WithContext(ctx).Order("timestamp DESC").First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// Close releases the underlying sql.DB connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// MarshalBeacons is a small helper so callers in internal/agent don't need
// to import encoding/json just to fill ScanRunModel.BeaconsJSON.
func MarshalBeacons(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// NewStoreForTest wraps an already-open gorm.DB, letting other packages'
// tests exercise a Store against an in-memory database without going
// through Open's file-path/PRAGMA/tracing setup.
func NewStoreForTest(db *gorm.DB) *Store {
	return &Store{db: db}
}
