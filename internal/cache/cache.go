// Package cache keeps recently rendered images in an in-memory Badger
// instance with per-entry expiry. Nothing is written to disk.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/listenupapp/luckysign/internal/logger"
)

// minMemTable is the smallest memtable Badger is given, whatever the
// configured cap. Badger requires a batch (15% of a memtable) to hold a
// full 1 MiB value.
const minMemTable = 8 << 20

// Config configures the cache.
type Config struct {
	TTL      time.Duration
	MaxBytes int64
}

// Stats reports cache effectiveness since Open.
type Stats struct {
	Hits    uint64 `json:"hits"`
	Misses  uint64 `json:"misses"`
	Skipped uint64 `json:"skipped"`
}

// Cache wraps an in-memory Badger database.
type Cache struct {
	db       *badger.DB
	ttl      time.Duration
	maxValue int
	logger   *logger.Logger

	hits, misses, skipped atomic.Uint64
}

// Open creates an in-memory cache. Values larger than a sixteenth of
// MaxBytes, or than a single Badger batch, are not stored.
func Open(cfg Config, log *logger.Logger) (*Cache, error) {
	if cfg.TTL <= 0 {
		return nil, fmt.Errorf("cache ttl must be positive, got %s", cfg.TTL)
	}
	if cfg.MaxBytes <= 0 {
		return nil, fmt.Errorf("cache size must be positive, got %d", cfg.MaxBytes)
	}

	log = log.WithComponent("cache")

	memTable := max(cfg.MaxBytes/4, minMemTable)
	opts := badger.DefaultOptions("").
		WithInMemory(true).
		WithMemTableSize(memTable).
		WithLogger(badgerLogger{log}).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger cache: %w", err)
	}

	log.Info("render cache opened", "ttl", cfg.TTL, "max_bytes", cfg.MaxBytes)

	return &Cache{
		db:       db,
		ttl:      cfg.TTL,
		maxValue: int(min(cfg.MaxBytes/16, memTable*15/100/2)),
		logger:   log,
	}, nil
}

// Close releases the database.
func (c *Cache) Close() error {
	st := c.Stats()
	c.logger.Info("closing render cache", "hits", st.Hits, "misses", st.Misses, "skipped", st.Skipped)
	return c.db.Close()
}

// Key derives a stable cache key from any JSON-encodable request.
func Key(prefix string, v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal cache key: %w", err)
	}
	sum := sha256.Sum256(data)
	return prefix + ":" + hex.EncodeToString(sum[:]), nil
}

// Get returns the cached value for key. A miss returns ok == false and no error.
func (c *Cache) Get(_ context.Context, key string) (value []byte, ok bool, err error) {
	err = c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		c.misses.Add(1)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get %s: %w", key, err)
	}
	c.hits.Add(1)
	return value, true, nil
}

// Set stores value under key until the TTL elapses. Oversized values are
// skipped silently.
func (c *Cache) Set(_ context.Context, key string, value []byte) error {
	if len(value) > c.maxValue {
		c.skipped.Add(1)
		c.logger.Debug("value too large to cache", "key", key, "bytes", len(value))
		return nil
	}
	err := c.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry([]byte(key), value).WithTTL(c.ttl))
	})
	if err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// GetJSON decodes a cached JSON value into dest.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	data, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cached %s: %w", key, err)
	}
	return true, nil
}

// SetJSON encodes value as JSON and stores it.
func (c *Cache) SetJSON(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	return c.Set(ctx, key, data)
}

// Stats returns hit and miss counters.
func (c *Cache) Stats() Stats {
	return Stats{
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Skipped: c.skipped.Load(),
	}
}

// badgerLogger routes Badger's internal logging through our logger.
type badgerLogger struct {
	l *logger.Logger
}

func (b badgerLogger) Errorf(format string, args ...any) {
	b.l.Error(fmt.Sprintf(format, args...))
}

func (b badgerLogger) Warningf(format string, args ...any) {
	b.l.Warn(fmt.Sprintf(format, args...))
}

func (b badgerLogger) Infof(format string, args ...any) {
	b.l.Debug(fmt.Sprintf(format, args...))
}

func (b badgerLogger) Debugf(format string, args ...any) {
	b.l.Debug(fmt.Sprintf(format, args...))
}
