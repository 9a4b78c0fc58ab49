// Package service defines the contracts between the application's layers.
package service

import (
	"context"
	"time"
)

// KVStore is the durable key-value storage the ledger and goal settings
// persist through. Values are opaque blobs; callers own their encoding.
type KVStore interface {
	// Get returns the value stored under key. The second return is false
	// when the key has never been written.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}

// Clock supplies the current instant. Injected so date-window logic and
// entry timestamps are testable.
type Clock interface {
	Now() time.Time
}

// SystemClock is the real wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }
