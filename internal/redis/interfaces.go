package redis

import (
	"context"
	"time"
)

// LockStoreInterface abstracts the lock store for testing.
type LockStoreInterface interface {
	AcquireVehicleLock(ctx context.Context, vehicleID string, ttl time.Duration) (bool, error)
	ReleaseVehicleLock(ctx context.Context, vehicleID string) error
	AcquireDriverLock(ctx context.Context, driverID string, ttl time.Duration) (bool, error)
	ReleaseDriverLock(ctx context.Context, driverID string) error
}

// CacheStoreInterface abstracts the cache store for testing.
type CacheStoreInterface interface {
	GetDashboard(ctx context.Context, dest any) (bool, error)
	SetDashboard(ctx context.Context, metrics any) error
	InvalidateDashboard(ctx context.Context) error
}

// Ensure implementations satisfy the interfaces.
var (
	_ LockStoreInterface  = (*LockStore)(nil)
	_ CacheStoreInterface = (*CacheStore)(nil)
)
