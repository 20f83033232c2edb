package fingerprint

import (
	"container/list"
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

// ErrVendorNotFound is returned when no vendor entry exists for a prefix,
// in the external database, the cache, or the embedded seed table.
var ErrVendorNotFound = fmt.Errorf("fingerprint: vendor not found")

// Repository resolves an OUI prefix to a vendor name, backed by an
// optional external sqlite database (flat OUI export) with an in-memory
// LRU cache in front of it and the embedded seed table as a last resort.
// Grounded on the teacher's OUIDatabase+OUICache pair, collapsed into one
// type since this agent never writes new OUI entries.
type Repository struct {
	db    *sql.DB // nil when no external database is configured
	cache *lruCache
}

// Open connects to an external OUI sqlite database. An empty path skips
// the database entirely and relies on the embedded seed table alone.
func Open(dbPath string, cacheSize int) (*Repository, error) {
	repo := &Repository{cache: newLRUCache(cacheSize)}
	if dbPath == "" {
		return repo, nil
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("fingerprint: open oui database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("fingerprint: ping oui database: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS oui_registry (
		prefix TEXT PRIMARY KEY,
		vendor TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("fingerprint: initialize oui schema: %w", err)
	}

	repo.db = db
	return repo, nil
}

// Lookup resolves mac's OUI prefix to a vendor name: cache, then the
// external database (if configured), then the embedded seed table.
func (r *Repository) Lookup(ctx context.Context, mac MAC) (string, error) {
	prefix := mac.OUI()
	if prefix == "" {
		return "", ErrInvalidMAC
	}

	if vendor, ok := r.cache.get(prefix); ok {
		return vendor, nil
	}

	if r.db != nil {
		var vendor string
		err := r.db.QueryRowContext(ctx, "SELECT vendor FROM oui_registry WHERE prefix = ?", prefix).Scan(&vendor)
		if err == nil {
			r.cache.set(prefix, vendor)
			return vendor, nil
		}
		if err != sql.ErrNoRows {
			return "", fmt.Errorf("fingerprint: lookup %s: %w", prefix, err)
		}
	}

	if vendor, ok := seedVendors[prefix]; ok {
		r.cache.set(prefix, vendor)
		return vendor, nil
	}

	return "", ErrVendorNotFound
}

// Close releases the external database connection, if one was opened.
func (r *Repository) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

// lruCache is a minimal LRU, grounded on the teacher's OUICache shape but
// without the hit/miss counters this agent has no use for.
type lruCache struct {
	capacity int
	mu       sync.Mutex
	items    map[string]*list.Element
	order    *list.List
}

type lruEntry struct {
	key   string
	value string
}

func newLRUCache(capacity int) *lruCache {
	if capacity <= 0 {
		capacity = 1000
	}
	return &lruCache{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		order:    list.New(),
	}
}

func (c *lruCache) get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return "", false
	}
	c.order.MoveToFront(el)
	return el.Value.(*lruEntry).value, true
}

func (c *lruCache) set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		el.Value.(*lruEntry).value = value
		c.order.MoveToFront(el)
		return
	}

	el := c.order.PushFront(&lruEntry{key: key, value: value})
	c.items[key] = el

	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.items, oldest.Value.(*lruEntry).key)
		}
	}
}
