package pkg

import (
	"context"
	"sync"
	"sync/atomic"
)

// MemoryStorage is a thread-safe in-memory key/value map.
// Every mutation runs under a single write lock, so a read-modify-write
// such as Delete observes and removes a key atomically.
type MemoryStorage struct {
	mu     sync.RWMutex
	data   map[string]string
	closed atomic.Bool

	// Metrics for monitoring
	hits    atomic.Int64
	misses  atomic.Int64
	sets    atomic.Int64
	deletes atomic.Int64
}

// NewMemoryStorage creates a new in-memory storage instance.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		data: make(map[string]string),
	}
}

// Get retrieves the value associated with the given key.
// Returns ErrKeyNotFound if the key doesn't exist.
func (ms *MemoryStorage) Get(ctx context.Context, key string) (string, error) {
	if err := ms.check(ctx); err != nil {
		return "", err
	}

	ms.mu.RLock()
	value, exists := ms.data[key]
	ms.mu.RUnlock()

	if !exists {
		ms.misses.Add(1)
		return "", ErrKeyNotFound
	}

	ms.hits.Add(1)
	return value, nil
}

// Set stores value under key, replacing any previous value.
// It reports whether an existing value was overwritten.
func (ms *MemoryStorage) Set(ctx context.Context, key, value string) (bool, error) {
	if err := ms.check(ctx); err != nil {
		return false, err
	}

	ms.mu.Lock()
	if ms.data == nil {
		ms.mu.Unlock()
		return false, ErrStorageUnavailable
	}
	_, replaced := ms.data[key]
	ms.data[key] = value
	ms.mu.Unlock()

	ms.sets.Add(1)
	return replaced, nil
}

// Delete removes the key and its value.
// Returns ErrKeyNotFound if the key was not present.
func (ms *MemoryStorage) Delete(ctx context.Context, key string) error {
	if err := ms.check(ctx); err != nil {
		return err
	}

	ms.mu.Lock()
	_, exists := ms.data[key]
	if exists {
		delete(ms.data, key)
	}
	ms.mu.Unlock()

	if !exists {
		ms.misses.Add(1)
		return ErrKeyNotFound
	}

	ms.deletes.Add(1)
	return nil
}

// Len returns the number of stored keys.
func (ms *MemoryStorage) Len() int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return len(ms.data)
}

// Close releases the stored data. Further calls return ErrStorageUnavailable.
func (ms *MemoryStorage) Close() error {
	if !ms.closed.CompareAndSwap(false, true) {
		return nil // Already closed
	}

	ms.mu.Lock()
	ms.data = nil
	ms.mu.Unlock()

	return nil
}

// Stats holds storage counters.
type Stats struct {
	Entries int
	Hits    int64
	Misses  int64
	Sets    int64
	Deletes int64
}

// GetStats returns current storage statistics.
func (ms *MemoryStorage) GetStats() Stats {
	return Stats{
		Entries: ms.Len(),
		Hits:    ms.hits.Load(),
		Misses:  ms.misses.Load(),
		Sets:    ms.sets.Load(),
		Deletes: ms.deletes.Load(),
	}
}

func (ms *MemoryStorage) check(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ErrContextCanceled
	default:
	}

	if ms.closed.Load() {
		return ErrStorageUnavailable
	}
	return nil
}
