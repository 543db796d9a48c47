package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/incident_dispatch/pkg/geo"
)

//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks

// Cache хранит разрешённые дорожные маршруты по идентификатору инцидента.
// Get возвращает nil, nil при промахе.
type Cache interface {
	Get(ctx context.Context, incidentID uuid.UUID) ([]geo.Point, error)
	Set(ctx context.Context, incidentID uuid.UUID, path []geo.Point) error
}

type memoryEntry struct {
	path    []geo.Point
	expires time.Time
}

// MemoryCache - быстрый уровень кеша в памяти процесса. ttl = 0 - без срока жизни.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		entries: make(map[uuid.UUID]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (m *MemoryCache) Get(_ context.Context, incidentID uuid.UUID) ([]geo.Point, error) {
	m.mu.RLock()
	entry, ok := m.entries[incidentID]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if !entry.expires.IsZero() && m.now().After(entry.expires) {
		m.mu.Lock()
		delete(m.entries, incidentID)
		m.mu.Unlock()
		return nil, nil
	}
	return append([]geo.Point(nil), entry.path...), nil
}

func (m *MemoryCache) Set(_ context.Context, incidentID uuid.UUID, path []geo.Point) error {
	entry := memoryEntry{path: append([]geo.Point(nil), path...)}
	if m.ttl > 0 {
		entry.expires = m.now().Add(m.ttl)
	}
	m.mu.Lock()
	m.entries[incidentID] = entry
	m.mu.Unlock()
	return nil
}

// RedisCache - долговременный уровень кеша
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (r *RedisCache) Get(ctx context.Context, incidentID uuid.UUID) ([]geo.Point, error) {
	val, err := r.client.Get(ctx, formatKey(incidentID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get route from cache: %w", err)
	}

	var path []geo.Point
	if err := json.Unmarshal(val, &path); err != nil {
		return nil, fmt.Errorf("failed to unmarshal route from cache: %w", err)
	}
	return path, nil
}

func (r *RedisCache) Set(ctx context.Context, incidentID uuid.UUID, path []geo.Point) error {
	val, err := json.Marshal(path)
	if err != nil {
		return fmt.Errorf("failed to marshal route for cache: %w", err)
	}
	// ttl = 0 в go-redis означает ключ без срока жизни
	if err := r.client.Set(ctx, formatKey(incidentID), val, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set route in cache: %w", err)
	}
	return nil
}

func formatKey(incidentID uuid.UUID) string {
	return fmt.Sprintf("route:%s", incidentID.String())
}

// TieredCache читает из памяти, затем из долговременного уровня, заполняя память при попадании
type TieredCache struct {
	near Cache
	far  Cache
}

func NewTieredCache(near, far Cache) *TieredCache {
	return &TieredCache{near: near, far: far}
}

func (t *TieredCache) Get(ctx context.Context, incidentID uuid.UUID) ([]geo.Point, error) {
	path, err := t.near.Get(ctx, incidentID)
	if err == nil && path != nil {
		return path, nil
	}
	if t.far == nil {
		return nil, err
	}

	path, err = t.far.Get(ctx, incidentID)
	if err != nil || path == nil {
		return nil, err
	}
	_ = t.near.Set(ctx, incidentID, path)
	return path, nil
}

func (t *TieredCache) Set(ctx context.Context, incidentID uuid.UUID, path []geo.Point) error {
	if err := t.near.Set(ctx, incidentID, path); err != nil {
		return err
	}
	if t.far == nil {
		return nil
	}
	return t.far.Set(ctx, incidentID, path)
}
