package repository

import (
	"context"
	"sync"
	"time"

	appErrors "github.com/thunder-org/thunder-site/pkg/errors"
)

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

// MemoryCacheRepository is the single-instance stand-in for the Redis cache.
// Payloads are copied in and out so callers never share buffers with it.
type MemoryCacheRepository struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryCacheRepository constructs an empty in-memory cache.
func NewMemoryCacheRepository() *MemoryCacheRepository {
	return &MemoryCacheRepository{entries: make(map[string]memoryEntry), now: time.Now}
}

// Get returns a live payload or ErrCacheMiss. Expired entries are dropped on read.
func (r *MemoryCacheRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[key]
	if !ok {
		return nil, appErrors.ErrCacheMiss
	}
	if !r.now().Before(entry.expiresAt) {
		delete(r.entries, key)
		return nil, appErrors.ErrCacheMiss
	}
	return append([]byte(nil), entry.payload...), nil
}

func (r *MemoryCacheRepository) Set(_ context.Context, key string, payload []byte, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = memoryEntry{payload: append([]byte(nil), payload...), expiresAt: r.now().Add(ttl)}
	return nil
}

func (r *MemoryCacheRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, key)
	return nil
}
