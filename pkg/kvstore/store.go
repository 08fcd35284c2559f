// Package kvstore provides the key-value primitive behind the record stores.
// A Store holds opaque string payloads under fixed keys, much like browser
// local storage: no indexing, no partial writes.
package kvstore

import (
	"context"
	"errors"
)

// ErrInvalidKey is returned for keys that cannot be stored safely.
var ErrInvalidKey = errors.New("kvstore: invalid key")

type Store interface {
	// Get returns the payload stored under key. found is false when the key
	// has never been written or was deleted.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
