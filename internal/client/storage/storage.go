// Package storage provides the durable local key-value store the client uses
// to survive process restarts. The only implementation is SQLite-backed.
package storage

import "context"

// KV is an async-friendly key-value persistence facility keyed by string.
// Get returns (nil, nil) when the key is absent.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
