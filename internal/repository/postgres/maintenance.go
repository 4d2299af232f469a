package postgres

import (
	"context"
	"database/sql"

	"fleetops/internal/domain"
	"fleetops/internal/repository"
)

// MaintenanceRepository is a PostgreSQL implementation of repository.MaintenanceRepository.
type MaintenanceRepository struct {
	q Querier
}

// NewMaintenanceRepository creates a new PostgreSQL maintenance repository.
func NewMaintenanceRepository(db *sql.DB) *MaintenanceRepository {
	return &MaintenanceRepository{q: db}
}

// NewMaintenanceRepositoryWithTx creates a maintenance repository using a transaction.
func NewMaintenanceRepositoryWithTx(tx *sql.Tx) *MaintenanceRepository {
	return &MaintenanceRepository{q: tx}
}

// Create persists a new maintenance log entry.
func (r *MaintenanceRepository) Create(ctx context.Context, log *domain.Maintenance) error {
	query := `
		INSERT INTO maintenance_logs (id, vehicle_id, service_type, date, notes)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.q.ExecContext(ctx, query,
		log.ID,
		log.VehicleID,
		log.ServiceType,
		log.Date,
		log.Notes,
	)

	return err
}

// GetAll retrieves all maintenance log entries, newest first.
func (r *MaintenanceRepository) GetAll(ctx context.Context) ([]*domain.Maintenance, error) {
	query := `
		SELECT id, vehicle_id, service_type, date, notes
		FROM maintenance_logs ORDER BY date DESC LIMIT 200
	`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*domain.Maintenance
	for rows.Next() {
		var log domain.Maintenance
		var notes sql.NullString
		if err := rows.Scan(&log.ID, &log.VehicleID, &log.ServiceType, &log.Date, &notes); err != nil {
			return nil, err
		}
		log.Notes = notes.String
		logs = append(logs, &log)
	}

	return logs, rows.Err()
}

// Ensure MaintenanceRepository implements repository.MaintenanceRepository.
var _ repository.MaintenanceRepository = (*MaintenanceRepository)(nil)
