package domain

import "time"

// tripTransitions defines the allowed trip status flow as a directed graph.
// Completed and Cancelled are terminal; nothing transitions back to Draft.
var tripTransitions = map[TripStatus][]TripStatus{
	TripStatusDraft:      {TripStatusDispatched, TripStatusCancelled},
	TripStatusDispatched: {TripStatusCompleted, TripStatusCancelled},
	TripStatusCompleted:  {},
	TripStatusCancelled:  {},
}

// vehicleTransitions defines the allowed vehicle status flow.
// InShop is exited only manually, to Available. Retired is terminal.
// Maintenance logging forces InShop from any status and bypasses this table.
var vehicleTransitions = map[VehicleStatus][]VehicleStatus{
	VehicleStatusAvailable: {VehicleStatusOnTrip, VehicleStatusInShop, VehicleStatusRetired},
	VehicleStatusOnTrip:    {VehicleStatusAvailable, VehicleStatusInShop},
	VehicleStatusInShop:    {VehicleStatusAvailable},
	VehicleStatusRetired:   {},
}

// CanTransitionTrip reports whether from -> to is a legal trip status change.
func CanTransitionTrip(from, to TripStatus) bool {
	for _, s := range tripTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// CanTransitionVehicle reports whether from -> to is a legal vehicle status change.
func CanTransitionVehicle(from, to VehicleStatus) bool {
	for _, s := range vehicleTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ValidDriverStatus reports whether s is a known driver status. Driver status
// changes are administrative and not constrained beyond enum membership.
func ValidDriverStatus(s DriverStatus) bool {
	switch s {
	case DriverStatusOnDuty, DriverStatusOffDuty, DriverStatusSuspended:
		return true
	}
	return false
}

// ValidVehicleStatus reports whether s is a known vehicle status.
func ValidVehicleStatus(s VehicleStatus) bool {
	switch s {
	case VehicleStatusAvailable, VehicleStatusOnTrip, VehicleStatusInShop, VehicleStatusRetired:
		return true
	}
	return false
}

// CanDispatch reports whether the vehicle/driver pair is eligible for a new
// trip based on status alone. Capacity and license checks are separate.
func CanDispatch(v *Vehicle, d *Driver) bool {
	return v.Status == VehicleStatusAvailable && d.Status == DriverStatusOnDuty
}

// CanComplete reports whether the trip can be completed from its current status.
func CanComplete(t *Trip) bool {
	return CanTransitionTrip(t.Status, TripStatusCompleted)
}

// CanCancel reports whether the trip can be cancelled from its current status.
func CanCancel(t *Trip) bool {
	return CanTransitionTrip(t.Status, TripStatusCancelled)
}

// EligibleForDispatch checks the full dispatch preconditions that are pure
// over entity snapshots: status pair, cargo fit and license validity at now.
func EligibleForDispatch(v *Vehicle, d *Driver, cargoWeight float64, now time.Time) bool {
	return CanDispatch(v, d) && cargoWeight >= 0 && cargoWeight <= v.MaxCapacity && d.LicenseValidAt(now)
}
