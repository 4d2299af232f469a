package repository

import (
	"context"

	"fleetops/internal/domain"
)

// VehicleRepository defines the persistence operations for vehicles.
type VehicleRepository interface {
	// Create persists a new vehicle.
	Create(ctx context.Context, vehicle *domain.Vehicle) error

	// GetByID retrieves a vehicle by ID.
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)

	// GetAll retrieves all vehicles.
	GetAll(ctx context.Context) ([]*domain.Vehicle, error)

	// Update updates an existing vehicle.
	Update(ctx context.Context, vehicle *domain.Vehicle) error

	// UpdateStatus sets the vehicle status unconditionally.
	UpdateStatus(ctx context.Context, id string, status domain.VehicleStatus) error

	// UpdateStatusIf sets the vehicle status only when the current status
	// matches from. Returns false when the guard did not match.
	UpdateStatusIf(ctx context.Context, id string, from, to domain.VehicleStatus) (bool, error)

	// Delete removes a vehicle.
	Delete(ctx context.Context, id string) error
}
