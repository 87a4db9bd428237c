// Package kv provides the key-value stores that hold serialized content.
package kv

import (
	"context"

	"github.com/pkg/errors"
	"github.com/urandom/feedkeeper/config"
	"github.com/urandom/feedkeeper/log"
)

var ErrNotFound = errors.New("key not found")

// Store is a key-value store with atomic create-only writes.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	// SetNX stores the value only when the key is absent, and reports
	// whether it did.
	SetNX(ctx context.Context, key string, value []byte) (bool, error)
	// GetDel atomically removes the key, returning its last value.
	GetDel(ctx context.Context, key string) ([]byte, error)
	Exists(ctx context.Context, key string) (bool, error)
	// Values returns the values of all keys starting with prefix.
	Values(ctx context.Context, prefix string) ([][]byte, error)

	Close() error
}

// Open connects to the store selected by the config provider.
func Open(cfg config.KV, log log.Log) (Store, error) {
	switch cfg.Provider {
	case "redis":
		return NewRedis(cfg, log)
	case "bolt":
		return NewBolt(cfg.BoltPath, log)
	case "memory":
		return NewMemory(log), nil
	default:
		return nil, errors.Errorf("unknown kv provider %q", cfg.Provider)
	}
}
