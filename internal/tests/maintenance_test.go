package tests

import (
	"context"
	"errors"
	"testing"

	"fleetops/internal/domain"
	"fleetops/internal/service"
)

// ──────────────────────────────────────────────
// MAINTENANCE LOGGING
// ──────────────────────────────────────────────

func newMaintenanceFixture() (*service.MaintenanceService, *MockMaintenanceRepository, *MockVehicleRepository) {
	maintenanceRepo := NewMockMaintenanceRepository()
	vehicleRepo := NewMockVehicleRepository()
	cacheStore := NewMockCacheStore()

	svc := service.NewMaintenanceService(nil, maintenanceRepo, vehicleRepo, cacheStore)
	return svc, maintenanceRepo, vehicleRepo
}

func TestLogService_UnknownVehicle(t *testing.T) {
	t.Parallel()

	svc, maintenanceRepo, _ := newMaintenanceFixture()

	_, err := svc.LogService(context.Background(), service.LogServiceRequest{
		VehicleID:   "missing",
		ServiceType: "oil change",
	})
	if !errors.Is(err, service.ErrVehicleNotFound) {
		t.Fatalf("expected ErrVehicleNotFound, got %v", err)
	}
	if maintenanceRepo.CountLogs() != 0 {
		t.Error("no log entry should be created")
	}
}

func TestLogService_MissingFields(t *testing.T) {
	t.Parallel()

	svc, _, vehicleRepo := newMaintenanceFixture()
	vehicleRepo.AddVehicle(availableVehicle("vehicle-1", 40000))

	_, err := svc.LogService(context.Background(), service.LogServiceRequest{ServiceType: "brakes"})
	if !errors.Is(err, service.ErrInvalidVehicleID) {
		t.Fatalf("expected ErrInvalidVehicleID, got %v", err)
	}

	_, err = svc.LogService(context.Background(), service.LogServiceRequest{VehicleID: "vehicle-1"})
	if !errors.Is(err, service.ErrInvalidServiceType) {
		t.Fatalf("expected ErrInvalidServiceType, got %v", err)
	}
}

// Logging a service forces the vehicle into the shop no matter where it is,
// including On Trip. The write is unconditional UpdateStatus.
func TestLogService_ForcesInShopFromAnyStatus(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	for _, status := range []domain.VehicleStatus{
		domain.VehicleStatusAvailable,
		domain.VehicleStatusOnTrip,
		domain.VehicleStatusInShop,
	} {
		vehicleRepo := NewMockVehicleRepository()
		vehicle := availableVehicle("vehicle-1", 40000)
		vehicle.Status = status
		vehicleRepo.AddVehicle(vehicle)

		if err := vehicleRepo.UpdateStatus(ctx, "vehicle-1", domain.VehicleStatusInShop); err != nil {
			t.Fatalf("status %s: unexpected error: %v", status, err)
		}
		if got := vehicleRepo.GetVehicle("vehicle-1").Status; got != domain.VehicleStatusInShop {
			t.Errorf("status %s: expected In Shop, got %s", status, got)
		}
	}
}
