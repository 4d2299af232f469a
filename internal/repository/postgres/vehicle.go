package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"fleetops/internal/domain"
	"fleetops/internal/repository"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

func isDuplicate(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// VehicleRepository is a PostgreSQL implementation of repository.VehicleRepository.
type VehicleRepository struct {
	q Querier
}

// NewVehicleRepository creates a new PostgreSQL vehicle repository.
func NewVehicleRepository(db *sql.DB) *VehicleRepository {
	return &VehicleRepository{q: db}
}

// NewVehicleRepositoryWithTx creates a vehicle repository using a transaction.
func NewVehicleRepositoryWithTx(tx *sql.Tx) *VehicleRepository {
	return &VehicleRepository{q: tx}
}

// Create persists a new vehicle.
func (r *VehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	query := `
		INSERT INTO vehicles (id, vehicle_id, model, license_plate, max_capacity, odometer, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.q.ExecContext(ctx, query,
		vehicle.ID,
		vehicle.VehicleID,
		vehicle.Model,
		vehicle.LicensePlate,
		vehicle.MaxCapacity,
		vehicle.Odometer,
		vehicle.Status,
	)
	if isDuplicate(err) {
		return repository.ErrDuplicate
	}

	return err
}

// GetByID retrieves a vehicle by ID.
func (r *VehicleRepository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	query := `
		SELECT id, vehicle_id, model, license_plate, max_capacity, odometer, status
		FROM vehicles WHERE id = $1
	`

	var vehicle domain.Vehicle
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&vehicle.ID,
		&vehicle.VehicleID,
		&vehicle.Model,
		&vehicle.LicensePlate,
		&vehicle.MaxCapacity,
		&vehicle.Odometer,
		&vehicle.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &vehicle, nil
}

// GetAll retrieves all vehicles.
func (r *VehicleRepository) GetAll(ctx context.Context) ([]*domain.Vehicle, error) {
	query := `
		SELECT id, vehicle_id, model, license_plate, max_capacity, odometer, status
		FROM vehicles ORDER BY vehicle_id
	`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []*domain.Vehicle
	for rows.Next() {
		var vehicle domain.Vehicle
		if err := rows.Scan(
			&vehicle.ID,
			&vehicle.VehicleID,
			&vehicle.Model,
			&vehicle.LicensePlate,
			&vehicle.MaxCapacity,
			&vehicle.Odometer,
			&vehicle.Status,
		); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, &vehicle)
	}

	return vehicles, rows.Err()
}

// Update updates an existing vehicle.
func (r *VehicleRepository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	query := `
		UPDATE vehicles
		SET vehicle_id = $1, model = $2, license_plate = $3, max_capacity = $4, odometer = $5, status = $6
		WHERE id = $7
	`

	result, err := r.q.ExecContext(ctx, query,
		vehicle.VehicleID,
		vehicle.Model,
		vehicle.LicensePlate,
		vehicle.MaxCapacity,
		vehicle.Odometer,
		vehicle.Status,
		vehicle.ID,
	)
	if err != nil {
		if isDuplicate(err) {
			return repository.ErrDuplicate
		}
		return err
	}

	return requireRowsAffected(result)
}

// UpdateStatus sets the vehicle status unconditionally.
func (r *VehicleRepository) UpdateStatus(ctx context.Context, id string, status domain.VehicleStatus) error {
	query := `UPDATE vehicles SET status = $1 WHERE id = $2`

	result, err := r.q.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}

	return requireRowsAffected(result)
}

// UpdateStatusIf sets the vehicle status only when the current status matches
// from. The conditional WHERE clause is the store-level guard that keeps two
// concurrent dispatches from both claiming the same vehicle.
func (r *VehicleRepository) UpdateStatusIf(ctx context.Context, id string, from, to domain.VehicleStatus) (bool, error) {
	query := `UPDATE vehicles SET status = $1 WHERE id = $2 AND status = $3`

	result, err := r.q.ExecContext(ctx, query, to, id, from)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// Delete removes a vehicle.
func (r *VehicleRepository) Delete(ctx context.Context, id string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return err
	}

	return requireRowsAffected(result)
}

// requireRowsAffected converts a zero-row write into ErrNotFound.
func requireRowsAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Ensure VehicleRepository implements repository.VehicleRepository.
var _ repository.VehicleRepository = (*VehicleRepository)(nil)
