package domain

import "time"

// DriverStatus represents the current status of a driver.
type DriverStatus string

const (
	DriverStatusOnDuty    DriverStatus = "On Duty"
	DriverStatusOffDuty   DriverStatus = "Off Duty"
	DriverStatusSuspended DriverStatus = "Suspended"
)

// Driver represents a fleet driver.
type Driver struct {
	ID            string
	DriverID      string // business identifier, e.g. "DR-001"
	Name          string
	LicenseType   string
	LicenseExpiry time.Time
	Status        DriverStatus
	SafetyScore   float64
}

// LicenseValidAt reports whether the driver's license is still valid at t.
func (d *Driver) LicenseValidAt(t time.Time) bool {
	return !d.LicenseExpiry.Before(t)
}
