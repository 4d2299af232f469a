package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"fleetops/internal/domain"
	"fleetops/internal/repository"
	"fleetops/internal/tests"
)

// The fixtures here run the full dispatch, completion and cancellation paths,
// transactional writes included. The SQL runner needs a live database, so the
// seam routes the transactional writes straight at the mocks.

type dispatchFixture struct {
	svc         *DispatchService
	tripRepo    *tests.MockTripRepository
	vehicleRepo *tests.MockVehicleRepository
	driverRepo  *tests.MockDriverRepository
	cacheStore  *tests.MockCacheStore
}

func newDispatchFixture() *dispatchFixture {
	tripRepo := tests.NewMockTripRepository()
	vehicleRepo := tests.NewMockVehicleRepository()
	driverRepo := tests.NewMockDriverRepository()
	lockStore := tests.NewMockLockStore()
	cacheStore := tests.NewMockCacheStore()

	svc := NewDispatchService(nil, tripRepo, vehicleRepo, driverRepo, lockStore, cacheStore)
	svc.runInTx = func(ctx context.Context, fn func(trips repository.TripRepository, vehicles repository.VehicleRepository) error) error {
		return fn(tripRepo, vehicleRepo)
	}

	return &dispatchFixture{
		svc:         svc,
		tripRepo:    tripRepo,
		vehicleRepo: vehicleRepo,
		driverRepo:  driverRepo,
		cacheStore:  cacheStore,
	}
}

func (f *dispatchFixture) addVehicle(id string, status domain.VehicleStatus) {
	f.vehicleRepo.AddVehicle(&domain.Vehicle{
		ID:          id,
		VehicleID:   "VH-" + id,
		Model:       "Volvo FH16",
		MaxCapacity: 40000,
		Status:      status,
	})
}

func (f *dispatchFixture) addOnDutyDriver(id string) {
	f.driverRepo.AddDriver(&domain.Driver{
		ID:            id,
		DriverID:      "DR-" + id,
		Name:          "Test Driver",
		LicenseExpiry: time.Now().AddDate(1, 0, 0),
		Status:        domain.DriverStatusOnDuty,
		SafetyScore:   95,
	})
}

func TestDispatchTrip_Commits(t *testing.T) {
	t.Parallel()

	f := newDispatchFixture()
	f.addVehicle("vehicle-1", domain.VehicleStatusAvailable)
	f.addOnDutyDriver("driver-1")

	trip, err := f.svc.DispatchTrip(context.Background(), DispatchTripRequest{
		VehicleID:     "vehicle-1",
		DriverID:      "driver-1",
		CargoWeight:   12000,
		StartLocation: "Rotterdam",
		EndLocation:   "Hamburg",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if trip.Status != domain.TripStatusDispatched {
		t.Errorf("expected trip Dispatched, got %s", trip.Status)
	}
	if trip.DispatchedAt.IsZero() {
		t.Error("expected DispatchedAt to be set")
	}
	if !strings.HasPrefix(trip.TripID, "TR-") {
		t.Errorf("expected generated trip identifier, got %q", trip.TripID)
	}
	if f.tripRepo.GetTrip(trip.ID) == nil {
		t.Error("trip should be persisted")
	}
	if got := f.vehicleRepo.GetVehicle("vehicle-1").Status; got != domain.VehicleStatusOnTrip {
		t.Errorf("expected vehicle On Trip, got %s", got)
	}
	if f.cacheStore.InvalidateCallCount == 0 {
		t.Error("dispatch should invalidate the dashboard snapshot")
	}
}

func TestDispatchTrip_ConcurrentDispatchesOneWinner(t *testing.T) {
	t.Parallel()

	f := newDispatchFixture()
	f.addVehicle("vehicle-1", domain.VehicleStatusAvailable)
	f.addOnDutyDriver("driver-1")
	f.addOnDutyDriver("driver-2")

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i, driverID := range []string{"driver-1", "driver-2"} {
		wg.Add(1)
		go func(i int, driverID string) {
			defer wg.Done()
			_, errs[i] = f.svc.DispatchTrip(context.Background(), DispatchTripRequest{
				VehicleID: "vehicle-1",
				DriverID:  driverID,
			})
		}(i, driverID)
	}
	wg.Wait()

	var succeeded, rejected int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrVehicleUnavailable):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 || rejected != 1 {
		t.Fatalf("expected exactly one winner, got %d successes and %d rejections", succeeded, rejected)
	}
	if got := f.tripRepo.CountTrips(); got != 1 {
		t.Errorf("expected one trip, got %d", got)
	}
	if got := f.vehicleRepo.GetVehicle("vehicle-1").Status; got != domain.VehicleStatusOnTrip {
		t.Errorf("expected vehicle On Trip, got %s", got)
	}
}

func TestCompleteTrip_Commits(t *testing.T) {
	t.Parallel()

	f := newDispatchFixture()
	f.addVehicle("vehicle-1", domain.VehicleStatusOnTrip)
	f.tripRepo.AddTrip(&domain.Trip{
		ID:           "trip-1",
		VehicleID:    "vehicle-1",
		DriverID:     "driver-1",
		Status:       domain.TripStatusDispatched,
		DispatchedAt: time.Now(),
	})

	trip, err := f.svc.CompleteTrip(context.Background(), "trip-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if trip.Status != domain.TripStatusCompleted {
		t.Errorf("expected trip Completed, got %s", trip.Status)
	}
	if trip.CompletedAt.IsZero() {
		t.Error("expected CompletedAt to be set")
	}
	if got := f.tripRepo.GetTrip("trip-1").Status; got != domain.TripStatusCompleted {
		t.Errorf("expected persisted trip Completed, got %s", got)
	}
	if got := f.vehicleRepo.GetVehicle("vehicle-1").Status; got != domain.VehicleStatusAvailable {
		t.Errorf("expected vehicle Available, got %s", got)
	}
	if f.cacheStore.InvalidateCallCount == 0 {
		t.Error("completion should invalidate the dashboard snapshot")
	}
}

func TestCompleteTrip_VehicleRowDeletedSinceDispatch(t *testing.T) {
	t.Parallel()

	f := newDispatchFixture()
	f.tripRepo.AddTrip(&domain.Trip{
		ID:           "trip-1",
		VehicleID:    "gone",
		Status:       domain.TripStatusDispatched,
		DispatchedAt: time.Now(),
	})

	trip, err := f.svc.CompleteTrip(context.Background(), "trip-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trip.Status != domain.TripStatusCompleted {
		t.Errorf("expected trip Completed, got %s", trip.Status)
	}
}

func TestCancelTrip_FreesOnTripVehicle(t *testing.T) {
	t.Parallel()

	f := newDispatchFixture()
	f.addVehicle("vehicle-1", domain.VehicleStatusOnTrip)
	f.tripRepo.AddTrip(&domain.Trip{
		ID:           "trip-1",
		VehicleID:    "vehicle-1",
		Status:       domain.TripStatusDispatched,
		DispatchedAt: time.Now(),
	})

	trip, err := f.svc.CancelTrip(context.Background(), "trip-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if trip.Status != domain.TripStatusCancelled {
		t.Errorf("expected trip Cancelled, got %s", trip.Status)
	}
	if got := f.vehicleRepo.GetVehicle("vehicle-1").Status; got != domain.VehicleStatusAvailable {
		t.Errorf("expected vehicle Available, got %s", got)
	}
}
