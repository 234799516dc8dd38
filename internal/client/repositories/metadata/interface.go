// Package metadata is a small key/value repository over the local SQLite
// database. It holds session data (sealed tokens, store salt, login id).
package metadata

import (
	"context"
)

// Repository is a string-keyed byte store. Get returns (nil, nil) for a
// missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
