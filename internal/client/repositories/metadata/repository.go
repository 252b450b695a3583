// Package metadata stores small key/value records in the local state
// database. The session service keeps the bearer token here.
package metadata

import (
	"context"
)

// Well-known keys.
const (
	KeyToken        = "token"
	KeyTokenSavedAt = "token_saved_at"
)

// Repository is a byte-valued key/value store. Get returns (nil, nil) for a
// missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
