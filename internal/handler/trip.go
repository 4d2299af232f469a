package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"fleetops/internal/domain"
	"fleetops/internal/service"
)

// TripHandler handles HTTP requests for trips.
type TripHandler struct {
	dispatchService *service.DispatchService
	log             zerolog.Logger
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(dispatchService *service.DispatchService, log zerolog.Logger) *TripHandler {
	return &TripHandler{dispatchService: dispatchService, log: log}
}

// DispatchTripRequest is the HTTP request body for dispatching a trip.
type DispatchTripRequest struct {
	TripID        string  `json:"trip_id"`
	VehicleID     string  `json:"vehicle_id" binding:"required"`
	DriverID      string  `json:"driver_id" binding:"required"`
	CargoWeight   float64 `json:"cargo_weight"`
	StartLocation string  `json:"start_location" binding:"required"`
	EndLocation   string  `json:"end_location" binding:"required"`
}

// TripResponse is the HTTP response for trip operations.
type TripResponse struct {
	ID            string  `json:"id"`
	TripID        string  `json:"trip_id"`
	VehicleID     string  `json:"vehicle_id"`
	DriverID      string  `json:"driver_id"`
	CargoWeight   float64 `json:"cargo_weight"`
	StartLocation string  `json:"start_location"`
	EndLocation   string  `json:"end_location"`
	Status        string  `json:"status"`
	DispatchedAt  string  `json:"dispatched_at,omitempty"`
	CompletedAt   string  `json:"completed_at,omitempty"`
}

func tripResponse(t *domain.Trip) TripResponse {
	resp := TripResponse{
		ID:            t.ID,
		TripID:        t.TripID,
		VehicleID:     t.VehicleID,
		DriverID:      t.DriverID,
		CargoWeight:   t.CargoWeight,
		StartLocation: t.StartLocation,
		EndLocation:   t.EndLocation,
		Status:        string(t.Status),
	}
	if !t.DispatchedAt.IsZero() {
		resp.DispatchedAt = t.DispatchedAt.Format(time.RFC3339)
	}
	if !t.CompletedAt.IsZero() {
		resp.CompletedAt = t.CompletedAt.Format(time.RFC3339)
	}
	return resp
}

// GetAll handles GET /v1/trips
func (h *TripHandler) GetAll(c *gin.Context) {
	trips, err := h.dispatchService.GetAllTrips(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]TripResponse, 0, len(trips))
	for _, t := range trips {
		response = append(response, tripResponse(t))
	}

	c.JSON(http.StatusOK, response)
}

// Get handles GET /v1/trips/:id
func (h *TripHandler) Get(c *gin.Context) {
	trip, err := h.dispatchService.GetTrip(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tripResponse(trip))
}

// Dispatch handles POST /v1/trips
func (h *TripHandler) Dispatch(c *gin.Context) {
	var req DispatchTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	trip, err := h.dispatchService.DispatchTrip(c.Request.Context(), service.DispatchTripRequest{
		TripID:        req.TripID,
		VehicleID:     req.VehicleID,
		DriverID:      req.DriverID,
		CargoWeight:   req.CargoWeight,
		StartLocation: req.StartLocation,
		EndLocation:   req.EndLocation,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.log.Info().
		Str("trip_id", trip.TripID).
		Str("vehicle_id", trip.VehicleID).
		Str("driver_id", trip.DriverID).
		Msg("trip dispatched")

	c.JSON(http.StatusCreated, tripResponse(trip))
}

// Complete handles PATCH /v1/trips/:id/complete
func (h *TripHandler) Complete(c *gin.Context) {
	trip, err := h.dispatchService.CompleteTrip(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	h.log.Info().Str("trip_id", trip.TripID).Msg("trip completed")

	c.JSON(http.StatusOK, tripResponse(trip))
}

// Cancel handles PATCH /v1/trips/:id/cancel
func (h *TripHandler) Cancel(c *gin.Context) {
	trip, err := h.dispatchService.CancelTrip(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	h.log.Info().Str("trip_id", trip.TripID).Msg("trip cancelled")

	c.JSON(http.StatusOK, tripResponse(trip))
}
