package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"fleetops/internal/domain"
	"fleetops/internal/redis"
	"fleetops/internal/repository"
	"fleetops/internal/repository/postgres"
)

// MaintenanceService handles service-log creation and its vehicle side effect.
type MaintenanceService struct {
	db              *sql.DB
	maintenanceRepo repository.MaintenanceRepository
	vehicleRepo     repository.VehicleRepository
	cacheStore      redis.CacheStoreInterface
}

// NewMaintenanceService creates a new MaintenanceService.
func NewMaintenanceService(
	db *sql.DB,
	maintenanceRepo repository.MaintenanceRepository,
	vehicleRepo repository.VehicleRepository,
	cacheStore redis.CacheStoreInterface,
) *MaintenanceService {
	return &MaintenanceService{
		db:              db,
		maintenanceRepo: maintenanceRepo,
		vehicleRepo:     vehicleRepo,
		cacheStore:      cacheStore,
	}
}

// LogServiceRequest contains the parameters for logging a maintenance service.
type LogServiceRequest struct {
	VehicleID   string
	ServiceType string
	Date        time.Time
	Notes       string
}

// LogService appends a maintenance log entry and forces the vehicle into the
// shop. The status is set unconditionally, even from On Trip.
func (s *MaintenanceService) LogService(ctx context.Context, req LogServiceRequest) (*domain.Maintenance, error) {
	if req.VehicleID == "" {
		return nil, ErrInvalidVehicleID
	}

	if req.ServiceType == "" {
		return nil, ErrInvalidServiceType
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}

	log := &domain.Maintenance{
		ID:          uuid.New().String(),
		VehicleID:   vehicle.ID,
		ServiceType: req.ServiceType,
		Date:        date,
		Notes:       req.Notes,
	}

	// Log entry and the In Shop transition land together.
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	txMaintenanceRepo := postgres.NewMaintenanceRepositoryWithTx(tx)
	txVehicleRepo := postgres.NewVehicleRepositoryWithTx(tx)

	if err = txMaintenanceRepo.Create(ctx, log); err != nil {
		return nil, err
	}

	if err = txVehicleRepo.UpdateStatus(ctx, vehicle.ID, domain.VehicleStatusInShop); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	if s.cacheStore != nil {
		_ = s.cacheStore.InvalidateDashboard(ctx)
	}

	return log, nil
}

// ListLogs retrieves all maintenance log entries.
func (s *MaintenanceService) ListLogs(ctx context.Context) ([]*domain.Maintenance, error) {
	return s.maintenanceRepo.GetAll(ctx)
}
