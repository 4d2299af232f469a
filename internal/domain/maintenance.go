package domain

import "time"

// Maintenance represents an append-only vehicle service log entry.
type Maintenance struct {
	ID          string
	VehicleID   string
	ServiceType string
	Date        time.Time
	Notes       string
}
