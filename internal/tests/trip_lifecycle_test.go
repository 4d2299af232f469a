package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"fleetops/internal/domain"
	"fleetops/internal/service"
)

// ──────────────────────────────────────────────
// TRIP LIFECYCLE EDGE CASES
// ──────────────────────────────────────────────

func TestCompleteTrip_UnknownTrip(t *testing.T) {
	t.Parallel()

	svc, _, _, _, _ := newDispatchFixture()

	_, err := svc.CompleteTrip(context.Background(), "missing")
	if !errors.Is(err, service.ErrTripNotFound) {
		t.Fatalf("expected ErrTripNotFound, got %v", err)
	}

	_, err = svc.CompleteTrip(context.Background(), "")
	if !errors.Is(err, service.ErrInvalidTripID) {
		t.Fatalf("expected ErrInvalidTripID, got %v", err)
	}
}

func TestCompleteTrip_AlreadyCompleted(t *testing.T) {
	t.Parallel()

	svc, tripRepo, _, _, _ := newDispatchFixture()
	tripRepo.AddTrip(&domain.Trip{
		ID:          "trip-1",
		TripID:      "TR-001",
		VehicleID:   "vehicle-1",
		Status:      domain.TripStatusCompleted,
		CompletedAt: time.Now(),
	})

	_, err := svc.CompleteTrip(context.Background(), "trip-1")
	if !errors.Is(err, service.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestCompleteTrip_Cancelled(t *testing.T) {
	t.Parallel()

	svc, tripRepo, _, _, _ := newDispatchFixture()
	tripRepo.AddTrip(&domain.Trip{
		ID:     "trip-1",
		Status: domain.TripStatusCancelled,
	})

	_, err := svc.CompleteTrip(context.Background(), "trip-1")
	if !errors.Is(err, service.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestCancelTrip_TerminalStates(t *testing.T) {
	t.Parallel()

	for _, status := range []domain.TripStatus{
		domain.TripStatusCompleted,
		domain.TripStatusCancelled,
	} {
		svc, tripRepo, _, _, _ := newDispatchFixture()
		tripRepo.AddTrip(&domain.Trip{ID: "trip-1", Status: status})

		_, err := svc.CancelTrip(context.Background(), "trip-1")
		if !errors.Is(err, service.ErrInvalidTransition) {
			t.Errorf("status %s: expected ErrInvalidTransition, got %v", status, err)
		}
	}
}

func TestGetTrip(t *testing.T) {
	t.Parallel()

	svc, tripRepo, _, _, _ := newDispatchFixture()
	tripRepo.AddTrip(&domain.Trip{
		ID:     "trip-1",
		TripID: "TR-001",
		Status: domain.TripStatusDispatched,
	})

	trip, err := svc.GetTrip(context.Background(), "trip-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trip.TripID != "TR-001" {
		t.Errorf("expected TR-001, got %s", trip.TripID)
	}

	if _, err := svc.GetTrip(context.Background(), "missing"); !errors.Is(err, service.ErrTripNotFound) {
		t.Fatalf("expected ErrTripNotFound, got %v", err)
	}
}

// The commit path of completion pairs two writes: the trip flips to Completed
// and the vehicle is freed. The service runs them inside one transaction; the
// repository semantics are exercised here.
func TestCompletion_WritesPairUp(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tripRepo := NewMockTripRepository()
	vehicleRepo := NewMockVehicleRepository()

	vehicle := availableVehicle("vehicle-1", 40000)
	vehicle.Status = domain.VehicleStatusOnTrip
	vehicleRepo.AddVehicle(vehicle)

	trip := &domain.Trip{
		ID:           "trip-1",
		VehicleID:    "vehicle-1",
		Status:       domain.TripStatusDispatched,
		DispatchedAt: time.Now(),
	}
	tripRepo.AddTrip(trip)

	trip.Status = domain.TripStatusCompleted
	trip.CompletedAt = time.Now()
	if err := tripRepo.Update(ctx, trip); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := vehicleRepo.UpdateStatus(ctx, "vehicle-1", domain.VehicleStatusAvailable); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := tripRepo.GetTrip("trip-1").Status; got != domain.TripStatusCompleted {
		t.Errorf("expected trip Completed, got %s", got)
	}
	if got := vehicleRepo.GetVehicle("vehicle-1").Status; got != domain.VehicleStatusAvailable {
		t.Errorf("expected vehicle Available, got %s", got)
	}
}

// Cancelling a dispatched trip frees the vehicle only when it is still on
// trip. A vehicle forced into the shop mid-trip must not pop back out.
func TestCancellation_VehicleInShopStaysInShop(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	vehicleRepo := NewMockVehicleRepository()

	vehicle := availableVehicle("vehicle-1", 40000)
	vehicle.Status = domain.VehicleStatusInShop
	vehicleRepo.AddVehicle(vehicle)

	freed, err := vehicleRepo.UpdateStatusIf(ctx, "vehicle-1", domain.VehicleStatusOnTrip, domain.VehicleStatusAvailable)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if freed {
		t.Fatal("vehicle in shop must not be freed by a cancellation")
	}
	if got := vehicleRepo.GetVehicle("vehicle-1").Status; got != domain.VehicleStatusInShop {
		t.Errorf("expected vehicle In Shop, got %s", got)
	}
}
