// Package cache implements the local cache store: a durable, string-keyed
// store of JSON-serialisable values that survives process restarts.
//
// The replica synchronizer owns every replica key in this store; no other
// component reads or writes them directly. Two implementations are provided:
// a bbolt-backed store for the client binary and an in-memory store for
// tests.
package cache

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/cache_store_mock.go -package=mock

// Store is the contract of the local cache store. Values are opaque strings
// (JSON documents in practice); a missing key is reported via the ok flag,
// never as an error.
type Store interface {
	// Get returns the value stored under key. ok is false when the key is
	// absent. An error is returned only for storage-level failures.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes the given keys. Removing an absent key is a no-op.
	Remove(ctx context.Context, keys ...string) error

	// Close releases the underlying storage resources.
	Close() error
}
