// ABOUTME: KV interface for durable single-key storage backends.
// ABOUTME: The history log persists as one serialized value under one key.
package storage

import "errors"

// ErrNotFound is returned by KV.Get when the key has never been set.
var ErrNotFound = errors.New("not found")

// KV is a durable key/value backend. Set must be atomic: after it
// returns, readers see either the old or the new value in full.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}
