package domain

// VehicleStatus represents the current status of a vehicle.
type VehicleStatus string

const (
	VehicleStatusAvailable VehicleStatus = "Available"
	VehicleStatusOnTrip    VehicleStatus = "On Trip"
	VehicleStatusInShop    VehicleStatus = "In Shop"
	VehicleStatusRetired   VehicleStatus = "Retired"
)

// Vehicle represents a fleet vehicle.
type Vehicle struct {
	ID           string
	VehicleID    string // business identifier, e.g. "VH-001"
	Model        string
	LicensePlate string
	MaxCapacity  float64 // maximum cargo load in kg
	Odometer     float64
	Status       VehicleStatus
}
