// Package storage holds the key-value backends for reader-side state.
package storage

import (
	"context"
	"fmt"
	"openreaders_payments/internal/config"
	"openreaders_payments/internal/reader/purchase"
)

// KV is a purchase.Store that owns a connection.
type KV interface {
	purchase.Store
	Close() error
}

var (
	_ KV = (*MemoryStore)(nil)
	_ KV = (*GormStore)(nil)
	_ KV = (*RedisStore)(nil)
)

// Open returns the backend selected by cfg.Store.
func Open(ctx context.Context, cfg config.Reader) (KV, error) {
	switch cfg.Store {
	case config.StoreMemory:
		return NewMemoryStore(), nil
	case config.StoreSQLite, "":
		return OpenSQLite(cfg.SQLitePath, cfg.StorePrefix)
	case config.StoreRedis:
		return OpenRedis(ctx, cfg.RedisURL, cfg.StorePrefix)
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}
