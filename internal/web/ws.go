package web

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/adstriegel/sigcap-buddy/internal/scan"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // local diagnostics only
}

// writeTimeout bounds how long one broadcast write may take per client.
const writeTimeout = 2 * time.Second

// wsHub pushes each completed scan's beacons to every connected dashboard,
// grounded on the teacher's WSManager (connection set + broadcast loop),
// trimmed to one message type since this server has nothing to
// authenticate beyond the shared diagnostics token already checked by the
// HTTP middleware wrapping the upgrade handler.
type wsHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func newWSHub() *wsHub {
	return &wsHub{clients: make(map[*websocket.Conn]struct{})}
}

func (h *wsHub) handle(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("web: websocket upgrade failed: %v", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()

	go func() {
		defer func() {
			h.mu.Lock()
			delete(h.clients, conn)
			h.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// broadcastBeacons pushes the latest scan's cells to every connected
// client, dropping clients that fail to write rather than blocking the
// caller's scan cycle on a stalled dashboard: each write has a
// writeTimeout deadline, and a client that misses it is dropped.
func (h *wsHub) broadcastBeacons(cells []scan.Cell) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(struct {
			Type    string      `json:"type"`
			Payload []scan.Cell `json:"payload"`
		}{Type: "beacons", Payload: cells}); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}
