package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fleetops/internal/domain"
	"fleetops/internal/redis"
	"fleetops/internal/repository"
	"fleetops/internal/repository/postgres"
)

const (
	vehicleLockTTL = 10 * time.Second
	driverLockTTL  = 10 * time.Second
)

// DispatchService orchestrates trip creation, completion and cancellation.
// It owns every Trip status change; trips are never mutated elsewhere.
type DispatchService struct {
	db          *sql.DB
	tripRepo    repository.TripRepository
	vehicleRepo repository.VehicleRepository
	driverRepo  repository.DriverRepository
	lockStore   redis.LockStoreInterface
	cacheStore  redis.CacheStoreInterface
	now         func() time.Time

	// runInTx runs fn against transaction-scoped repositories and commits
	// only when fn returns nil. Tests swap it for a mock-backed runner.
	runInTx func(ctx context.Context, fn func(trips repository.TripRepository, vehicles repository.VehicleRepository) error) error
}

// NewDispatchService creates a new DispatchService.
func NewDispatchService(
	db *sql.DB,
	tripRepo repository.TripRepository,
	vehicleRepo repository.VehicleRepository,
	driverRepo repository.DriverRepository,
	lockStore redis.LockStoreInterface,
	cacheStore redis.CacheStoreInterface,
) *DispatchService {
	s := &DispatchService{
		db:          db,
		tripRepo:    tripRepo,
		vehicleRepo: vehicleRepo,
		driverRepo:  driverRepo,
		lockStore:   lockStore,
		cacheStore:  cacheStore,
		now:         time.Now,
	}
	s.runInTx = s.runInSQLTx
	return s
}

func (s *DispatchService) runInSQLTx(ctx context.Context, fn func(trips repository.TripRepository, vehicles repository.VehicleRepository) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(postgres.NewTripRepositoryWithTx(tx), postgres.NewVehicleRepositoryWithTx(tx)); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// DispatchTripRequest contains the parameters for dispatching a trip.
type DispatchTripRequest struct {
	TripID        string // optional business identifier; generated when empty
	VehicleID     string
	DriverID      string
	CargoWeight   float64
	StartLocation string
	EndLocation   string
}

// DispatchTrip validates the vehicle/driver pair and creates a dispatched trip.
//
// The validation order is fixed: vehicle existence, driver existence,
// capacity, license, vehicle status, then driver status; the first failing
// check wins. The whole read-validate-write sequence runs under per-vehicle and
// per-driver locks, and the vehicle claim inside the transaction is a
// conditional status update, so two concurrent dispatches against the same
// available vehicle cannot both succeed.
func (s *DispatchService) DispatchTrip(ctx context.Context, req DispatchTripRequest) (*domain.Trip, error) {
	if req.VehicleID == "" {
		return nil, ErrInvalidVehicleID
	}

	if req.DriverID == "" {
		return nil, ErrInvalidDriverID
	}

	// Serialize against concurrent dispatches touching the same rows.
	locked, err := s.lockStore.AcquireVehicleLock(ctx, req.VehicleID, vehicleLockTTL)
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, ErrVehicleUnavailable
	}
	defer func() { _ = s.lockStore.ReleaseVehicleLock(ctx, req.VehicleID) }()

	locked, err = s.lockStore.AcquireDriverLock(ctx, req.DriverID, driverLockTTL)
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, ErrDriverUnavailable
	}
	defer func() { _ = s.lockStore.ReleaseDriverLock(ctx, req.DriverID) }()

	vehicle, err := s.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}

	driver, err := s.driverRepo.GetByID(ctx, req.DriverID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrDriverNotFound
		}
		return nil, err
	}

	if req.CargoWeight < 0 {
		return nil, ErrInvalidCargoWeight
	}

	if req.CargoWeight > vehicle.MaxCapacity {
		return nil, ErrCapacityExceeded
	}

	if !driver.LicenseValidAt(s.now()) {
		return nil, ErrLicenseExpired
	}

	if vehicle.Status != domain.VehicleStatusAvailable {
		return nil, ErrVehicleUnavailable
	}

	if driver.Status != domain.DriverStatusOnDuty {
		return nil, ErrDriverUnavailable
	}

	tripID := req.TripID
	if tripID == "" {
		tripID = generateTripID()
	}

	trip := &domain.Trip{
		ID:            uuid.New().String(),
		TripID:        tripID,
		VehicleID:     vehicle.ID,
		DriverID:      driver.ID,
		CargoWeight:   req.CargoWeight,
		StartLocation: req.StartLocation,
		EndLocation:   req.EndLocation,
		Status:        domain.TripStatusDispatched,
		DispatchedAt:  s.now(),
	}

	// Trip creation and the vehicle claim commit together or not at all.
	err = s.runInTx(ctx, func(trips repository.TripRepository, vehicles repository.VehicleRepository) error {
		// Conditional claim: fails closed if another writer got here first.
		claimed, err := vehicles.UpdateStatusIf(ctx, vehicle.ID, domain.VehicleStatusAvailable, domain.VehicleStatusOnTrip)
		if err != nil {
			return err
		}
		if !claimed {
			return ErrVehicleUnavailable
		}
		return trips.Create(ctx, trip)
	})
	if err != nil {
		return nil, err
	}

	s.invalidateDashboard(ctx)

	return trip, nil
}

// CompleteTrip marks a dispatched trip completed and frees its vehicle.
// Completing an already completed (or cancelled) trip returns
// ErrInvalidTransition. A vehicle row removed since dispatch is not an error.
func (s *DispatchService) CompleteTrip(ctx context.Context, tripID string) (*domain.Trip, error) {
	if tripID == "" {
		return nil, ErrInvalidTripID
	}

	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrTripNotFound
		}
		return nil, err
	}

	if !domain.CanComplete(trip) {
		return nil, ErrInvalidTransition
	}

	trip.Status = domain.TripStatusCompleted
	trip.CompletedAt = s.now()

	err = s.runInTx(ctx, func(trips repository.TripRepository, vehicles repository.VehicleRepository) error {
		if err := trips.Update(ctx, trip); err != nil {
			return err
		}
		// Free the vehicle regardless of its current status. The row may
		// have been deleted since dispatch; that is not a completion failure.
		if err := vehicles.UpdateStatus(ctx, trip.VehicleID, domain.VehicleStatusAvailable); err != nil && err != repository.ErrNotFound {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateDashboard(ctx)

	return trip, nil
}

// CancelTrip cancels a draft or dispatched trip. The vehicle is freed only
// when it is still on-trip; a vehicle pulled into the shop mid-trip stays
// in the shop.
func (s *DispatchService) CancelTrip(ctx context.Context, tripID string) (*domain.Trip, error) {
	if tripID == "" {
		return nil, ErrInvalidTripID
	}

	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrTripNotFound
		}
		return nil, err
	}

	if !domain.CanCancel(trip) {
		return nil, ErrInvalidTransition
	}

	wasDispatched := trip.Status == domain.TripStatusDispatched
	trip.Status = domain.TripStatusCancelled

	err = s.runInTx(ctx, func(trips repository.TripRepository, vehicles repository.VehicleRepository) error {
		if err := trips.Update(ctx, trip); err != nil {
			return err
		}
		if wasDispatched {
			if _, err := vehicles.UpdateStatusIf(ctx, trip.VehicleID, domain.VehicleStatusOnTrip, domain.VehicleStatusAvailable); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateDashboard(ctx)

	return trip, nil
}

// GetTrip retrieves a trip by ID.
func (s *DispatchService) GetTrip(ctx context.Context, tripID string) (*domain.Trip, error) {
	if tripID == "" {
		return nil, ErrInvalidTripID
	}

	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrTripNotFound
		}
		return nil, err
	}

	return trip, nil
}

// GetAllTrips retrieves all trips.
func (s *DispatchService) GetAllTrips(ctx context.Context) ([]*domain.Trip, error) {
	return s.tripRepo.GetAll(ctx)
}

func (s *DispatchService) invalidateDashboard(ctx context.Context) {
	if s.cacheStore != nil {
		_ = s.cacheStore.InvalidateDashboard(ctx)
	}
}

func generateTripID() string {
	return fmt.Sprintf("TR-%s", uuid.New().String()[:8])
}
