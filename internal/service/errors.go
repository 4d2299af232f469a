package service

import "errors"

var (
	// ErrVehicleNotFound is returned when the referenced vehicle does not exist.
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrDriverNotFound is returned when the referenced driver does not exist.
	ErrDriverNotFound = errors.New("driver not found")

	// ErrTripNotFound is returned when the referenced trip does not exist.
	ErrTripNotFound = errors.New("trip not found")

	// ErrInvalidVehicleID is returned when the vehicle ID is empty.
	ErrInvalidVehicleID = errors.New("invalid vehicle id")

	// ErrInvalidDriverID is returned when the driver ID is empty.
	ErrInvalidDriverID = errors.New("invalid driver id")

	// ErrInvalidTripID is returned when the trip ID is empty.
	ErrInvalidTripID = errors.New("invalid trip id")

	// ErrInvalidCargoWeight is returned when the cargo weight is negative.
	ErrInvalidCargoWeight = errors.New("invalid cargo weight")

	// ErrCapacityExceeded is returned when cargo weight exceeds vehicle capacity.
	ErrCapacityExceeded = errors.New("cargo exceeds vehicle max capacity")

	// ErrLicenseExpired is returned when the driver license expired before dispatch time.
	ErrLicenseExpired = errors.New("driver license is expired")

	// ErrVehicleUnavailable is returned when the vehicle is not in Available status.
	ErrVehicleUnavailable = errors.New("vehicle is not available")

	// ErrDriverUnavailable is returned when the driver is not in On Duty status.
	ErrDriverUnavailable = errors.New("driver is not on duty")

	// ErrInvalidTransition is returned when a status change is not legal for the
	// current status, including re-completing an already completed trip.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrVehicleInUse is returned when deleting a vehicle that still has a
	// dispatched trip.
	ErrVehicleInUse = errors.New("vehicle has an active trip")

	// ErrInvalidServiceType is returned when the maintenance service type is empty.
	ErrInvalidServiceType = errors.New("invalid service type")

	// ErrInvalidExpense is returned when liters or cost is negative.
	ErrInvalidExpense = errors.New("invalid expense amounts")

	// ErrEmailTaken is returned when registering with an email already in use.
	ErrEmailTaken = errors.New("email already in use")

	// ErrInvalidCredentials is returned when login email or password is wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidRole is returned when an unknown role is supplied.
	ErrInvalidRole = errors.New("invalid role")

	// ErrPasswordTooShort is returned when a registration password is under 8 characters.
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
)
