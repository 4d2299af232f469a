package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetops/internal/repository"
	"fleetops/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	if code == http.StatusInternalServerError {
		// Surface infrastructure failures to middleware/instrumentation,
		// hide the detail from the client.
		_ = c.Error(err)
		c.JSON(code, ErrorResponse{Error: "internal error"})
		return
	}
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, service.ErrVehicleNotFound),
		errors.Is(err, service.ErrDriverNotFound),
		errors.Is(err, service.ErrTripNotFound),
		errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrInvalidVehicleID),
		errors.Is(err, service.ErrInvalidDriverID),
		errors.Is(err, service.ErrInvalidTripID),
		errors.Is(err, service.ErrInvalidCargoWeight),
		errors.Is(err, service.ErrCapacityExceeded),
		errors.Is(err, service.ErrLicenseExpired),
		errors.Is(err, service.ErrVehicleUnavailable),
		errors.Is(err, service.ErrDriverUnavailable),
		errors.Is(err, service.ErrInvalidServiceType),
		errors.Is(err, service.ErrInvalidExpense),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrPasswordTooShort):
		return http.StatusBadRequest

	// Conflict errors
	case errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrVehicleInUse),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, repository.ErrDuplicate):
		return http.StatusConflict

	// Authentication
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
