// internal/domain/cart/snapshot.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// SnapshotStore persists serialized carts keyed by session id. Load returns
// an empty snapshot, not an error, when no cart exists for the session.
type SnapshotStore interface {
	Load(ctx context.Context, sessionID string) (*Snapshot, error)
	Save(ctx context.Context, sessionID string, snapshot *Snapshot) error
	Delete(ctx context.Context, sessionID string) error
}

// RedisSnapshots stores carts in Redis as JSON under a namespaced key,
// refreshed with a sliding TTL on every write.
type RedisSnapshots struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewRedisSnapshots creates a Redis-backed snapshot store
func NewRedisSnapshots(client *redis.Client, keyPrefix string, ttl time.Duration) *RedisSnapshots {
	return &RedisSnapshots{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

func (r *RedisSnapshots) key(sessionID string) string {
	return fmt.Sprintf("%s:%s", r.keyPrefix, sessionID)
}

// Load retrieves the cart snapshot for a session
func (r *RedisSnapshots) Load(ctx context.Context, sessionID string) (*Snapshot, error) {
	data, err := r.client.Get(ctx, r.key(sessionID)).Result()
	if err == redis.Nil {
		// Cart doesn't exist, return empty cart
		return &Snapshot{Items: []Item{}}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to load cart snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode cart snapshot: %w", err)
	}
	if snapshot.Items == nil {
		snapshot.Items = []Item{}
	}

	return &snapshot, nil
}

// Save writes the cart snapshot for a session
func (r *RedisSnapshots) Save(ctx context.Context, sessionID string, snapshot *Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode cart snapshot: %w", err)
	}

	if err := r.client.Set(ctx, r.key(sessionID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart snapshot: %w", err)
	}
	return nil
}

// Delete removes the cart snapshot for a session
func (r *RedisSnapshots) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, r.key(sessionID)).Err()
}

// MemorySnapshots is an in-process snapshot store. It backs tests and keeps
// the service usable when Redis is unavailable.
type MemorySnapshots struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

// NewMemorySnapshots creates an in-memory snapshot store
func NewMemorySnapshots() *MemorySnapshots {
	return &MemorySnapshots{snapshots: make(map[string][]byte)}
}

// Load retrieves the cart snapshot for a session
func (m *MemorySnapshots) Load(ctx context.Context, sessionID string) (*Snapshot, error) {
	m.mu.RLock()
	data, ok := m.snapshots[sessionID]
	m.mu.RUnlock()

	if !ok {
		return &Snapshot{Items: []Item{}}, nil
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode cart snapshot: %w", err)
	}
	if snapshot.Items == nil {
		snapshot.Items = []Item{}
	}
	return &snapshot, nil
}

// Save writes the cart snapshot for a session
func (m *MemorySnapshots) Save(ctx context.Context, sessionID string, snapshot *Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode cart snapshot: %w", err)
	}

	m.mu.Lock()
	m.snapshots[sessionID] = data
	m.mu.Unlock()
	return nil
}

// Delete removes the cart snapshot for a session
func (m *MemorySnapshots) Delete(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	delete(m.snapshots, sessionID)
	m.mu.Unlock()
	return nil
}
