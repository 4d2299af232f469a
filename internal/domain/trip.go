package domain

import "time"

// TripStatus represents the current status of a trip.
type TripStatus string

const (
	TripStatusDraft      TripStatus = "Draft"
	TripStatusDispatched TripStatus = "Dispatched"
	TripStatusCompleted  TripStatus = "Completed"
	TripStatusCancelled  TripStatus = "Cancelled"
)

// Trip represents a cargo trip assigned to a vehicle and driver.
type Trip struct {
	ID            string
	TripID        string // business identifier, e.g. "TR-001"
	VehicleID     string
	DriverID      string
	CargoWeight   float64
	StartLocation string
	EndLocation   string
	Status        TripStatus
	DispatchedAt  time.Time
	CompletedAt   time.Time
}
