// Package web is the local diagnostics HTTP+WS server: /healthz,
// /heartbeat, and /ws/beacons, standing in for "persisting a heartbeat"
// being observable on the field node itself, since the cloud/MQTT
// transports that would otherwise report it are out of scope. Grounded on
// the teacher's web/server router (gorilla/mux route table,
// promhttp-wrapped metrics endpoint) and web/websocket manager.
package web

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/adstriegel/sigcap-buddy/internal/scan"
	"github.com/adstriegel/sigcap-buddy/internal/storage"
)

// Server is the diagnostics HTTP server for one agent instance.
type Server struct {
	addr      string
	store     *storage.Store
	tokenHash []byte
	hub       *wsHub
	http      *http.Server
}

// NewServer builds a Server listening on addr. An empty tokenHash disables
// auth on the protected endpoints (/heartbeat, /ws/beacons, /metrics).
func NewServer(addr string, store *storage.Store, tokenHash []byte) *Server {
	s := &Server{addr: addr, store: store, tokenHash: tokenHash, hub: newWSHub()}

	router := mux.NewRouter()
	router.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)
	router.Handle("/heartbeat", basicAuth(tokenHash, http.HandlerFunc(s.handleHeartbeat))).Methods(http.MethodGet)
	router.Handle("/ws/beacons", basicAuth(tokenHash, http.HandlerFunc(s.hub.handle)))
	router.Handle("/metrics", basicAuth(tokenHash, promhttp.Handler()))

	s.http = &http.Server{
		Addr:    addr,
		Handler: otelhttp.NewHandler(router, "sigcap-buddy-diagnostics"),
	}
	return s
}

// BroadcastBeacons pushes a scan's cells to every connected /ws/beacons
// client. Safe to call even when no clients are connected.
func (s *Server) BroadcastBeacons(cells []scan.Cell) {
	s.hub.broadcastBeacons(cells)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

type heartbeatResponse struct {
	Status    string    `json:"status"`
	Detail    string    `json:"detail"`
	RunID     string    `json:"run_id"`
	Iface     string    `json:"interface"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *Server) handleHeartbeat(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.Error(w, "storage not configured", http.StatusServiceUnavailable)
		return
	}

	hb, err := s.store.LatestHeartbeat(r.Context())
	if err != nil {
		http.Error(w, "no heartbeat recorded yet", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(heartbeatResponse{
		Status:    hb.Status,
		Detail:    hb.Detail,
		RunID:     hb.RunID,
		Iface:     hb.Iface,
		Timestamp: hb.Timestamp,
	})
}

// Run starts the server and blocks until ctx is cancelled or the server
// fails to serve.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
