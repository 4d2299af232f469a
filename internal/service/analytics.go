package service

import (
	"context"

	"fleetops/internal/domain"
	"fleetops/internal/redis"
	"fleetops/internal/repository"
)

// revenuePerTrip is the fixed per-trip revenue assumption used for the ROI
// estimate. A placeholder pricing model, not derived from real tariffs.
const revenuePerTrip = 1500.0

// FleetMetrics holds the derived fleet KPIs for the dashboard.
type FleetMetrics struct {
	UtilizationRate      float64            `json:"utilization_rate"`
	ActiveVehicles       int                `json:"active_vehicles"`
	TotalVehicles        int                `json:"total_vehicles"`
	TotalOperationalCost float64            `json:"total_operational_cost"`
	CostPerVehicle       map[string]float64 `json:"cost_per_vehicle"`
	AvgFuelEfficiency    float64            `json:"avg_fuel_efficiency"`
	Revenue              float64            `json:"revenue"`
	EstimatedROI         float64            `json:"estimated_roi"`
}

// ComputeFleetMetrics derives the fleet KPIs from one consistent snapshot of
// the vehicle, trip and expense collections. Pure; no I/O.
func ComputeFleetMetrics(vehicles []*domain.Vehicle, trips []*domain.Trip, expenses []*domain.Expense) FleetMetrics {
	metrics := FleetMetrics{
		TotalVehicles:  len(vehicles),
		CostPerVehicle: make(map[string]float64),
	}

	var totalOdometer float64
	for _, v := range vehicles {
		totalOdometer += v.Odometer
		if v.Status == domain.VehicleStatusOnTrip {
			metrics.ActiveVehicles++
		}
	}

	if metrics.TotalVehicles > 0 {
		metrics.UtilizationRate = float64(metrics.ActiveVehicles) / float64(metrics.TotalVehicles) * 100
	}

	var totalLiters float64
	for _, e := range expenses {
		metrics.TotalOperationalCost += e.Cost
		metrics.CostPerVehicle[e.VehicleID] += e.Cost
		totalLiters += e.Liters
	}

	// Fleet-wide odometer/liters ratio, not a per-vehicle figure.
	if totalLiters > 0 {
		metrics.AvgFuelEfficiency = totalOdometer / totalLiters
	}

	metrics.Revenue = float64(len(trips)) * revenuePerTrip
	if metrics.TotalOperationalCost > 0 {
		metrics.EstimatedROI = (metrics.Revenue - metrics.TotalOperationalCost) / metrics.TotalOperationalCost * 100
	}

	return metrics
}

// AnalyticsService computes dashboard metrics from the entity store.
type AnalyticsService struct {
	vehicleRepo repository.VehicleRepository
	tripRepo    repository.TripRepository
	expenseRepo repository.ExpenseRepository
	cacheStore  redis.CacheStoreInterface
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(
	vehicleRepo repository.VehicleRepository,
	tripRepo repository.TripRepository,
	expenseRepo repository.ExpenseRepository,
	cacheStore redis.CacheStoreInterface,
) *AnalyticsService {
	return &AnalyticsService{
		vehicleRepo: vehicleRepo,
		tripRepo:    tripRepo,
		expenseRepo: expenseRepo,
		cacheStore:  cacheStore,
	}
}

// Dashboard returns the current fleet metrics. Results are cached briefly;
// on a miss the three collections are read back-to-back and the computation
// runs over that single snapshot.
func (s *AnalyticsService) Dashboard(ctx context.Context) (*FleetMetrics, error) {
	if s.cacheStore != nil {
		var cached FleetMetrics
		hit, err := s.cacheStore.GetDashboard(ctx, &cached)
		if err == nil && hit {
			return &cached, nil
		}
		// Cache errors fall through to a fresh computation.
	}

	vehicles, err := s.vehicleRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	trips, err := s.tripRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenseRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	metrics := ComputeFleetMetrics(vehicles, trips, expenses)

	if s.cacheStore != nil {
		_ = s.cacheStore.SetDashboard(ctx, &metrics)
	}

	return &metrics, nil
}
