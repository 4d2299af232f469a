package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheStore handles short-lived caching of computed dashboard metrics.
type CacheStore struct {
	client *redis.Client
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(client *redis.Client) *CacheStore {
	return &CacheStore{client: client}
}

// DashboardCacheTTL bounds how stale the dashboard may be. Metrics are
// recomputed from a fresh snapshot once the entry expires.
const DashboardCacheTTL = 15 * time.Second

const dashboardCacheKey = "cache:analytics:dashboard"

// GetDashboard retrieves cached dashboard metrics into dest.
// Returns false on a cache miss.
func (s *CacheStore) GetDashboard(ctx context.Context, dest any) (bool, error) {
	data, err := s.client.Get(ctx, dashboardCacheKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil // Cache miss
		}
		return false, err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetDashboard stores computed dashboard metrics.
func (s *CacheStore) SetDashboard(ctx context.Context, metrics any) error {
	data, err := json.Marshal(metrics)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, dashboardCacheKey, data, DashboardCacheTTL).Err()
}

// InvalidateDashboard removes the cached dashboard entry. Called after
// writes that change the underlying collections.
func (s *CacheStore) InvalidateDashboard(ctx context.Context) error {
	return s.client.Del(ctx, dashboardCacheKey).Err()
}
