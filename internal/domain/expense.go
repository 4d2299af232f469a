package domain

import "time"

// Expense represents an append-only fuel/operational expense entry.
type Expense struct {
	ID        string
	VehicleID string
	Liters    float64
	Cost      float64
	Date      time.Time
}
