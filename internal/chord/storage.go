package chord

import (
	"context"

	"github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/pkg"
)

// LocalStore holds the key/value pairs a node owns.
// Keys are stored by their full string, so colliding hashes never clash.
type LocalStore struct {
	storage *pkg.MemoryStorage
}

// NewLocalStore creates a LocalStore wrapping the provided MemoryStorage.
func NewLocalStore(storage *pkg.MemoryStorage) *LocalStore {
	return &LocalStore{storage: storage}
}

// NewDefaultLocalStore creates a LocalStore over a fresh MemoryStorage.
func NewDefaultLocalStore() *LocalStore {
	return NewLocalStore(pkg.NewMemoryStorage())
}

// Save upserts key. It reports whether a previous value was replaced.
func (s *LocalStore) Save(ctx context.Context, key, text string) (bool, error) {
	return s.storage.Set(ctx, key, text)
}

// Remove deletes key. Returns pkg.ErrKeyNotFound if it was absent.
func (s *LocalStore) Remove(ctx context.Context, key string) error {
	return s.storage.Delete(ctx, key)
}

// Find returns the value of key or pkg.ErrKeyNotFound.
func (s *LocalStore) Find(ctx context.Context, key string) (string, error) {
	return s.storage.Get(ctx, key)
}

// Len returns the number of keys held.
func (s *LocalStore) Len() int {
	return s.storage.Len()
}

// Stats exposes the underlying storage counters.
func (s *LocalStore) Stats() pkg.Stats {
	return s.storage.GetStats()
}

// Close releases the store.
func (s *LocalStore) Close() error {
	return s.storage.Close()
}
