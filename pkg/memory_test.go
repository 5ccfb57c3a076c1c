package pkg

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMemoryStorageGet tests the Get method.
func TestMemoryStorageGet(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	defer storage.Close()

	tests := []struct {
		name      string
		setup     func()
		key       string
		wantValue string
		wantErr   error
	}{
		{
			name:    "key not found",
			setup:   func() {},
			key:     "nonexistent",
			wantErr: ErrKeyNotFound,
		},
		{
			name: "valid key",
			setup: func() {
				storage.Set(ctx, "test-key", "test-value")
			},
			key:       "test-key",
			wantValue: "test-value",
		},
		{
			name: "value with spaces",
			setup: func() {
				storage.Set(ctx, "greeting", "hello  big world")
			},
			key:       "greeting",
			wantValue: "hello  big world",
		},
		{
			name: "empty value",
			setup: func() {
				storage.Set(ctx, "empty", "")
			},
			key:       "empty",
			wantValue: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			value, err := storage.Get(ctx, tt.key)

			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err, "Expected specific error")
			} else {
				require.NoError(t, err, "Get() should not error")
				assert.Equal(t, tt.wantValue, value, "Value should match")
			}
		})
	}
}

// TestMemoryStorageSet tests that Set upserts and reports overwrites.
func TestMemoryStorageSet(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	defer storage.Close()

	replaced, err := storage.Set(ctx, "key1", "value1")
	require.NoError(t, err)
	assert.False(t, replaced, "first Set should not report an overwrite")

	replaced, err = storage.Set(ctx, "key1", "value2")
	require.NoError(t, err)
	assert.True(t, replaced, "second Set should report an overwrite")

	value, err := storage.Get(ctx, "key1")
	require.NoError(t, err)
	assert.Equal(t, "value2", value)
	assert.Equal(t, 1, storage.Len())
}

// TestMemoryStorageDelete tests the Delete method.
func TestMemoryStorageDelete(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	defer storage.Close()

	_, err := storage.Set(ctx, "key", "value")
	require.NoError(t, err)

	err = storage.Delete(ctx, "key")
	assert.NoError(t, err, "deleting an existing key should succeed")

	_, err = storage.Get(ctx, "key")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	err = storage.Delete(ctx, "key")
	assert.ErrorIs(t, err, ErrKeyNotFound, "deleting twice should report the key as missing")
	assert.Equal(t, 0, storage.Len())
}

// TestMemoryStorageConcurrentAccess runs writers, readers and deleters together.
func TestMemoryStorageConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	defer storage.Close()

	const (
		numGoroutines = 50
		numOperations = 200
	)

	var wg sync.WaitGroup
	errs := make(chan error, numGoroutines*numOperations)

	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOperations; j++ {
				key := fmt.Sprintf("key-%d-%d", id, j)
				if _, err := storage.Set(ctx, key, fmt.Sprintf("value-%d-%d", id, j)); err != nil {
					errs <- err
				}
			}
		}(i)
	}

	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOperations; j++ {
				storage.Get(ctx, fmt.Sprintf("key-%d-%d", id, j/2))
			}
		}(i)
	}

	// Exactly one of the racing deleters may win each key.
	var removed sync.Map
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOperations; j++ {
				key := fmt.Sprintf("shared-%d", j%10)
				storage.Set(ctx, key, "x")
				if err := storage.Delete(ctx, key); err == nil {
					removed.Store(fmt.Sprintf("%d-%d", id, j), true)
				}
			}
		}(i)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err, "Concurrent operation error")
	}

	stats := storage.GetStats()
	assert.Equal(t, int64(numGoroutines*numOperations*2), stats.Sets)
	assert.LessOrEqual(t, stats.Deletes, int64(numGoroutines*numOperations))
}

// TestMemoryStorageContextCancellation tests context cancellation handling.
func TestMemoryStorageContextCancellation(t *testing.T) {
	storage := NewMemoryStorage()
	defer storage.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := storage.Get(ctx, "key")
	assert.Equal(t, ErrContextCanceled, err)

	_, err = storage.Set(ctx, "key", "value")
	assert.Equal(t, ErrContextCanceled, err)

	err = storage.Delete(ctx, "key")
	assert.Equal(t, ErrContextCanceled, err)
}

// TestMemoryStorageClose tests the Close method.
func TestMemoryStorageClose(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()

	storage.Set(ctx, "key", "value")

	err := storage.Close()
	assert.NoError(t, err, "Close() should not error")

	_, err = storage.Get(ctx, "key")
	assert.Equal(t, ErrStorageUnavailable, err)

	_, err = storage.Set(ctx, "key", "value")
	assert.Equal(t, ErrStorageUnavailable, err)

	err = storage.Close()
	assert.NoError(t, err, "Second Close() should not return error")
}

// TestMemoryStorageStats tests the statistics functionality.
func TestMemoryStorageStats(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	defer storage.Close()

	storage.Set(ctx, "a", "1")
	storage.Set(ctx, "b", "2")
	storage.Get(ctx, "a")
	storage.Get(ctx, "missing")
	storage.Delete(ctx, "b")

	stats := storage.GetStats()
	assert.Equal(t, 1, stats.Entries)
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(2), stats.Sets)
	assert.Equal(t, int64(1), stats.Deletes)
}
