package repository

import (
	"context"

	"fleetops/internal/domain"
)

// MaintenanceRepository defines the persistence operations for service logs.
// Logs are append-only; there is no update or delete.
type MaintenanceRepository interface {
	// Create persists a new maintenance log entry.
	Create(ctx context.Context, log *domain.Maintenance) error

	// GetAll retrieves all maintenance log entries.
	GetAll(ctx context.Context) ([]*domain.Maintenance, error)
}
