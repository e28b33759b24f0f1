package port

import (
	"context"
	"errors"
)

// ErrNotFound is returned by KVStore.Get when the key holds no value.
var ErrNotFound = errors.New("key not found")

// KVStore is the persisted medium holding serialized cart state.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Updater is implemented by stores that can run a read-modify-write of one
// key atomically. fn receives the current value (nil when missing) and
// returns the value to write.
type Updater interface {
	Update(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) error
}
