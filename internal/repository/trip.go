package repository

import (
	"context"

	"fleetops/internal/domain"
)

// TripRepository defines the persistence operations for trips.
type TripRepository interface {
	// Create persists a new trip.
	Create(ctx context.Context, trip *domain.Trip) error

	// GetByID retrieves a trip by ID.
	GetByID(ctx context.Context, id string) (*domain.Trip, error)

	// GetAll retrieves all trips.
	GetAll(ctx context.Context) ([]*domain.Trip, error)

	// Update updates an existing trip.
	Update(ctx context.Context, trip *domain.Trip) error

	// GetActiveByVehicleID retrieves the dispatched trip for a vehicle.
	// Returns nil if no dispatched trip exists.
	GetActiveByVehicleID(ctx context.Context, vehicleID string) (*domain.Trip, error)
}
