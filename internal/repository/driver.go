package repository

import (
	"context"

	"fleetops/internal/domain"
)

// DriverRepository defines the persistence operations for drivers.
type DriverRepository interface {
	// Create persists a new driver.
	Create(ctx context.Context, driver *domain.Driver) error

	// GetByID retrieves a driver by ID.
	GetByID(ctx context.Context, id string) (*domain.Driver, error)

	// GetAll retrieves all drivers.
	GetAll(ctx context.Context) ([]*domain.Driver, error)

	// Update updates an existing driver.
	Update(ctx context.Context, driver *domain.Driver) error

	// UpdateStatus sets the driver status.
	UpdateStatus(ctx context.Context, id string, status domain.DriverStatus) error

	// Delete removes a driver.
	Delete(ctx context.Context, id string) error
}
