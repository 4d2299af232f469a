package domain

import (
	"testing"
	"time"
)

func TestTripTransitions(t *testing.T) {
	cases := []struct {
		from, to TripStatus
		want     bool
	}{
		{TripStatusDraft, TripStatusDispatched, true},
		{TripStatusDraft, TripStatusCancelled, true},
		{TripStatusDraft, TripStatusCompleted, false},
		{TripStatusDispatched, TripStatusCompleted, true},
		{TripStatusDispatched, TripStatusCancelled, true},
		{TripStatusDispatched, TripStatusDraft, false},
		{TripStatusCompleted, TripStatusDispatched, false},
		{TripStatusCompleted, TripStatusCompleted, false},
		{TripStatusCancelled, TripStatusDispatched, false},
	}

	for _, tc := range cases {
		if got := CanTransitionTrip(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransitionTrip(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestVehicleTransitions(t *testing.T) {
	cases := []struct {
		from, to VehicleStatus
		want     bool
	}{
		{VehicleStatusAvailable, VehicleStatusOnTrip, true},
		{VehicleStatusOnTrip, VehicleStatusAvailable, true},
		{VehicleStatusInShop, VehicleStatusAvailable, true},
		{VehicleStatusInShop, VehicleStatusOnTrip, false},
		{VehicleStatusRetired, VehicleStatusAvailable, false},
		{VehicleStatusAvailable, VehicleStatusRetired, true},
	}

	for _, tc := range cases {
		if got := CanTransitionVehicle(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransitionVehicle(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestCanDispatch(t *testing.T) {
	vehicle := &Vehicle{Status: VehicleStatusAvailable}
	driver := &Driver{Status: DriverStatusOnDuty}

	if !CanDispatch(vehicle, driver) {
		t.Fatal("expected available vehicle + on-duty driver to be dispatchable")
	}

	vehicle.Status = VehicleStatusInShop
	if CanDispatch(vehicle, driver) {
		t.Error("expected in-shop vehicle to block dispatch")
	}

	vehicle.Status = VehicleStatusAvailable
	driver.Status = DriverStatusSuspended
	if CanDispatch(vehicle, driver) {
		t.Error("expected suspended driver to block dispatch")
	}
}

func TestEligibleForDispatch(t *testing.T) {
	now := time.Now()
	vehicle := &Vehicle{Status: VehicleStatusAvailable, MaxCapacity: 40000}
	driver := &Driver{Status: DriverStatusOnDuty, LicenseExpiry: now.Add(24 * time.Hour)}

	if !EligibleForDispatch(vehicle, driver, 40000, now) {
		t.Error("cargo at exact capacity should be eligible")
	}
	if EligibleForDispatch(vehicle, driver, 40001, now) {
		t.Error("cargo over capacity should not be eligible")
	}
	if EligibleForDispatch(vehicle, driver, -1, now) {
		t.Error("negative cargo should not be eligible")
	}

	driver.LicenseExpiry = now.Add(-time.Hour)
	if EligibleForDispatch(vehicle, driver, 100, now) {
		t.Error("expired license should not be eligible")
	}
}
