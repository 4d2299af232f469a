package tests

import (
	"context"
	"fmt"
	"testing"

	"fleetops/internal/domain"
	"fleetops/internal/service"
)

// ──────────────────────────────────────────────
// FLEET METRICS
// ──────────────────────────────────────────────

func TestComputeFleetMetrics_EmptyFleet(t *testing.T) {
	t.Parallel()

	metrics := service.ComputeFleetMetrics(nil, nil, nil)

	if metrics.TotalVehicles != 0 || metrics.ActiveVehicles != 0 {
		t.Errorf("expected empty counts, got %d / %d", metrics.ActiveVehicles, metrics.TotalVehicles)
	}
	if metrics.UtilizationRate != 0 {
		t.Errorf("expected zero utilization, got %f", metrics.UtilizationRate)
	}
	if metrics.AvgFuelEfficiency != 0 {
		t.Errorf("expected zero fuel efficiency, got %f", metrics.AvgFuelEfficiency)
	}
	if metrics.EstimatedROI != 0 {
		t.Errorf("expected zero ROI, got %f", metrics.EstimatedROI)
	}
	if len(metrics.CostPerVehicle) != 0 {
		t.Errorf("expected empty cost map, got %v", metrics.CostPerVehicle)
	}
}

func TestComputeFleetMetrics_Scenario(t *testing.T) {
	t.Parallel()

	vehicles := []*domain.Vehicle{
		{ID: "a", VehicleID: "VH-A", Odometer: 1000, Status: domain.VehicleStatusOnTrip},
		{ID: "b", VehicleID: "VH-B", Odometer: 2000, Status: domain.VehicleStatusAvailable},
		{ID: "c", VehicleID: "VH-C", Odometer: 3000, Status: domain.VehicleStatusInShop},
	}
	trips := []*domain.Trip{
		{ID: "t1", Status: domain.TripStatusCompleted},
		{ID: "t2", Status: domain.TripStatusDispatched},
	}
	expenses := []*domain.Expense{
		{ID: "e1", VehicleID: "a", Cost: 500, Liters: 100},
		{ID: "e2", VehicleID: "b", Cost: 300, Liters: 380},
	}

	metrics := service.ComputeFleetMetrics(vehicles, trips, expenses)

	if metrics.TotalVehicles != 3 || metrics.ActiveVehicles != 1 {
		t.Errorf("expected 1 / 3 active, got %d / %d", metrics.ActiveVehicles, metrics.TotalVehicles)
	}
	if want := float64(1) / float64(3) * 100; metrics.UtilizationRate != want {
		t.Errorf("expected utilization %f, got %f", want, metrics.UtilizationRate)
	}
	if metrics.TotalOperationalCost != 800 {
		t.Errorf("expected total cost 800, got %f", metrics.TotalOperationalCost)
	}
	if metrics.CostPerVehicle["a"] != 500 || metrics.CostPerVehicle["b"] != 300 {
		t.Errorf("unexpected cost map: %v", metrics.CostPerVehicle)
	}
	if _, ok := metrics.CostPerVehicle["c"]; ok {
		t.Error("vehicle with no expenses must not appear in the cost map")
	}
	if metrics.AvgFuelEfficiency != 12.5 {
		t.Errorf("expected 12.5 km/L, got %f", metrics.AvgFuelEfficiency)
	}
	if metrics.Revenue != 3000 {
		t.Errorf("expected revenue 3000, got %f", metrics.Revenue)
	}
	if want := (3000.0 - 800.0) / 800.0 * 100; metrics.EstimatedROI != want {
		t.Errorf("expected ROI %f, got %f", want, metrics.EstimatedROI)
	}
}

func TestComputeFleetMetrics_MultipleExpensesSameVehicle(t *testing.T) {
	t.Parallel()

	expenses := []*domain.Expense{
		{ID: "e1", VehicleID: "a", Cost: 200, Liters: 50},
		{ID: "e2", VehicleID: "a", Cost: 100, Liters: 25},
	}

	metrics := service.ComputeFleetMetrics(nil, nil, expenses)

	if metrics.CostPerVehicle["a"] != 300 {
		t.Errorf("expected accumulated cost 300, got %f", metrics.CostPerVehicle["a"])
	}
}

func TestDashboard_AggregatesLargeCollectionsCompletely(t *testing.T) {
	t.Parallel()

	// Revenue counts every trip and cost metrics sum every expense; nothing
	// may be dropped no matter how large the collections grow.
	ctx := context.Background()
	vehicleRepo := NewMockVehicleRepository()
	tripRepo := NewMockTripRepository()
	expenseRepo := NewMockExpenseRepository()

	vehicleRepo.AddVehicle(availableVehicle("vehicle-1", 40000))
	for i := 0; i < 150; i++ {
		tripRepo.AddTrip(&domain.Trip{
			ID:     fmt.Sprintf("trip-%d", i),
			Status: domain.TripStatusCompleted,
		})
	}
	for i := 0; i < 600; i++ {
		expenseRepo.AddExpense(&domain.Expense{
			ID:        fmt.Sprintf("expense-%d", i),
			VehicleID: "vehicle-1",
			Cost:      10,
			Liters:    1,
		})
	}

	svc := service.NewAnalyticsService(vehicleRepo, tripRepo, expenseRepo, NewMockCacheStore())

	metrics, err := svc.Dashboard(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := 150 * 1500.0; metrics.Revenue != want {
		t.Errorf("expected revenue %f over all trips, got %f", want, metrics.Revenue)
	}
	if metrics.TotalOperationalCost != 6000 {
		t.Errorf("expected total cost 6000 over all expenses, got %f", metrics.TotalOperationalCost)
	}
	if metrics.CostPerVehicle["vehicle-1"] != 6000 {
		t.Errorf("expected per-vehicle cost 6000, got %f", metrics.CostPerVehicle["vehicle-1"])
	}
}

func TestDashboard_CachesUntilInvalidated(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	vehicleRepo := NewMockVehicleRepository()
	tripRepo := NewMockTripRepository()
	expenseRepo := NewMockExpenseRepository()
	cacheStore := NewMockCacheStore()

	vehicleRepo.AddVehicle(availableVehicle("vehicle-1", 40000))

	svc := service.NewAnalyticsService(vehicleRepo, tripRepo, expenseRepo, cacheStore)

	first, err := svc.Dashboard(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.TotalVehicles != 1 {
		t.Fatalf("expected 1 vehicle, got %d", first.TotalVehicles)
	}
	if cacheStore.SetCallCount != 1 {
		t.Fatalf("expected one cache write, got %d", cacheStore.SetCallCount)
	}

	// A second read is served from cache and does not see the new vehicle.
	vehicleRepo.AddVehicle(availableVehicle("vehicle-2", 40000))

	second, err := svc.Dashboard(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.TotalVehicles != 1 {
		t.Errorf("expected cached snapshot with 1 vehicle, got %d", second.TotalVehicles)
	}

	if err := cacheStore.InvalidateDashboard(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	third, err := svc.Dashboard(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if third.TotalVehicles != 2 {
		t.Errorf("expected fresh snapshot with 2 vehicles, got %d", third.TotalVehicles)
	}
}

func TestDashboard_ExpiredSnapshotRecomputes(t *testing.T) {
	t.Parallel()

	// Miss path without a prior write: the service must not error when the
	// cache is cold.
	svc := service.NewAnalyticsService(NewMockVehicleRepository(), NewMockTripRepository(), NewMockExpenseRepository(), NewMockCacheStore())

	metrics, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if metrics.TotalVehicles != 0 {
		t.Errorf("expected empty fleet, got %d", metrics.TotalVehicles)
	}
}
