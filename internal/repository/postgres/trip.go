package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fleetops/internal/domain"
	"fleetops/internal/repository"
)

// TripRepository is a PostgreSQL implementation of repository.TripRepository.
type TripRepository struct {
	q Querier
}

// NewTripRepository creates a new PostgreSQL trip repository.
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{q: db}
}

// NewTripRepositoryWithTx creates a trip repository using a transaction.
func NewTripRepositoryWithTx(tx *sql.Tx) *TripRepository {
	return &TripRepository{q: tx}
}

// Create persists a new trip.
func (r *TripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	query := `
		INSERT INTO trips (id, trip_id, vehicle_id, driver_id, cargo_weight, start_location, end_location, status, dispatched_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.q.ExecContext(ctx, query,
		trip.ID,
		trip.TripID,
		trip.VehicleID,
		trip.DriverID,
		trip.CargoWeight,
		trip.StartLocation,
		trip.EndLocation,
		trip.Status,
		nullTime(trip.DispatchedAt),
		nullTime(trip.CompletedAt),
	)
	if isDuplicate(err) {
		return repository.ErrDuplicate
	}

	return err
}

// GetByID retrieves a trip by ID.
func (r *TripRepository) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	query := `
		SELECT id, trip_id, vehicle_id, driver_id, cargo_weight, start_location, end_location, status, dispatched_at, completed_at
		FROM trips WHERE id = $1
	`

	trip, err := scanTrip(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return trip, nil
}

// GetAll retrieves all trips, newest dispatch first. The result is unbounded:
// the analytics aggregation counts every trip, so no row may be dropped here.
func (r *TripRepository) GetAll(ctx context.Context) ([]*domain.Trip, error) {
	query := `
		SELECT id, trip_id, vehicle_id, driver_id, cargo_weight, start_location, end_location, status, dispatched_at, completed_at
		FROM trips ORDER BY dispatched_at DESC NULLS LAST
	`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []*domain.Trip
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, trip)
	}

	return trips, rows.Err()
}

// Update updates an existing trip.
func (r *TripRepository) Update(ctx context.Context, trip *domain.Trip) error {
	query := `
		UPDATE trips
		SET trip_id = $1, vehicle_id = $2, driver_id = $3, cargo_weight = $4, start_location = $5, end_location = $6, status = $7, dispatched_at = $8, completed_at = $9
		WHERE id = $10
	`

	result, err := r.q.ExecContext(ctx, query,
		trip.TripID,
		trip.VehicleID,
		trip.DriverID,
		trip.CargoWeight,
		trip.StartLocation,
		trip.EndLocation,
		trip.Status,
		nullTime(trip.DispatchedAt),
		nullTime(trip.CompletedAt),
		trip.ID,
	)
	if err != nil {
		return err
	}

	return requireRowsAffected(result)
}

// GetActiveByVehicleID retrieves the dispatched trip for a vehicle.
// Returns nil if no dispatched trip exists.
func (r *TripRepository) GetActiveByVehicleID(ctx context.Context, vehicleID string) (*domain.Trip, error) {
	query := `
		SELECT id, trip_id, vehicle_id, driver_id, cargo_weight, start_location, end_location, status, dispatched_at, completed_at
		FROM trips
		WHERE vehicle_id = $1 AND status = $2
		LIMIT 1
	`

	trip, err := scanTrip(r.q.QueryRowContext(ctx, query, vehicleID, domain.TripStatusDispatched))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return trip, nil
}

func nullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrip(row rowScanner) (*domain.Trip, error) {
	var trip domain.Trip
	var dispatchedAt sql.NullTime
	var completedAt sql.NullTime

	if err := row.Scan(
		&trip.ID,
		&trip.TripID,
		&trip.VehicleID,
		&trip.DriverID,
		&trip.CargoWeight,
		&trip.StartLocation,
		&trip.EndLocation,
		&trip.Status,
		&dispatchedAt,
		&completedAt,
	); err != nil {
		return nil, err
	}

	if dispatchedAt.Valid {
		trip.DispatchedAt = dispatchedAt.Time
	}
	if completedAt.Valid {
		trip.CompletedAt = completedAt.Time
	}

	return &trip, nil
}

// Ensure TripRepository implements repository.TripRepository.
var _ repository.TripRepository = (*TripRepository)(nil)
