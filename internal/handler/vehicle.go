package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fleetops/internal/domain"
	"fleetops/internal/repository"
	"fleetops/internal/service"
)

// VehicleHandler handles HTTP requests for vehicles.
type VehicleHandler struct {
	vehicleRepo repository.VehicleRepository
	tripRepo    repository.TripRepository
}

// NewVehicleHandler creates a new VehicleHandler.
func NewVehicleHandler(vehicleRepo repository.VehicleRepository, tripRepo repository.TripRepository) *VehicleHandler {
	return &VehicleHandler{vehicleRepo: vehicleRepo, tripRepo: tripRepo}
}

// CreateVehicleRequest is the HTTP request body for adding a vehicle.
type CreateVehicleRequest struct {
	VehicleID    string  `json:"vehicle_id" binding:"required"`
	Model        string  `json:"model" binding:"required"`
	LicensePlate string  `json:"license_plate" binding:"required"`
	MaxCapacity  float64 `json:"max_capacity" binding:"required"`
	Odometer     float64 `json:"odometer"`
}

// UpdateVehicleRequest is the HTTP request body for updating a vehicle.
type UpdateVehicleRequest struct {
	Model        string   `json:"model"`
	LicensePlate string   `json:"license_plate"`
	MaxCapacity  *float64 `json:"max_capacity"`
	Odometer     *float64 `json:"odometer"`
}

// VehicleStatusRequest is the HTTP request body for a status change.
type VehicleStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// VehicleResponse is the HTTP response for vehicle data.
type VehicleResponse struct {
	ID           string  `json:"id"`
	VehicleID    string  `json:"vehicle_id"`
	Model        string  `json:"model"`
	LicensePlate string  `json:"license_plate"`
	MaxCapacity  float64 `json:"max_capacity"`
	Odometer     float64 `json:"odometer"`
	Status       string  `json:"status"`
}

func vehicleResponse(v *domain.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:           v.ID,
		VehicleID:    v.VehicleID,
		Model:        v.Model,
		LicensePlate: v.LicensePlate,
		MaxCapacity:  v.MaxCapacity,
		Odometer:     v.Odometer,
		Status:       string(v.Status),
	}
}

// GetAll handles GET /v1/vehicles
func (h *VehicleHandler) GetAll(c *gin.Context) {
	vehicles, err := h.vehicleRepo.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		response = append(response, vehicleResponse(v))
	}

	c.JSON(http.StatusOK, response)
}

// Get handles GET /v1/vehicles/:id
func (h *VehicleHandler) Get(c *gin.Context) {
	vehicle, err := h.vehicleRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicleResponse(vehicle))
}

// Create handles POST /v1/vehicles
func (h *VehicleHandler) Create(c *gin.Context) {
	var req CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.MaxCapacity <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "max_capacity must be positive"})
		return
	}

	vehicle := &domain.Vehicle{
		ID:           uuid.New().String(),
		VehicleID:    req.VehicleID,
		Model:        req.Model,
		LicensePlate: req.LicensePlate,
		MaxCapacity:  req.MaxCapacity,
		Odometer:     req.Odometer,
		Status:       domain.VehicleStatusAvailable,
	}

	if err := h.vehicleRepo.Create(c.Request.Context(), vehicle); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, vehicleResponse(vehicle))
}

// Update handles PUT /v1/vehicles/:id
func (h *VehicleHandler) Update(c *gin.Context) {
	var req UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	vehicle, err := h.vehicleRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if req.Model != "" {
		vehicle.Model = req.Model
	}
	if req.LicensePlate != "" {
		vehicle.LicensePlate = req.LicensePlate
	}
	if req.MaxCapacity != nil {
		vehicle.MaxCapacity = *req.MaxCapacity
	}
	if req.Odometer != nil {
		vehicle.Odometer = *req.Odometer
	}

	if err := h.vehicleRepo.Update(c.Request.Context(), vehicle); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicleResponse(vehicle))
}

// Delete handles DELETE /v1/vehicles/:id
//
// A vehicle with a dispatched trip cannot be deleted; the trip has to be
// completed or cancelled first.
func (h *VehicleHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	active, err := h.tripRepo.GetActiveByVehicleID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if active != nil {
		respondError(c, service.ErrVehicleInUse)
		return
	}

	if err := h.vehicleRepo.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "vehicle deleted"})
}

// ChangeStatus handles PATCH /v1/vehicles/:id/status
//
// Manual status changes go through the vehicle transition table, so e.g.
// In Shop can only be exited to Available and Retired is terminal.
func (h *VehicleHandler) ChangeStatus(c *gin.Context) {
	var req VehicleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	status := domain.VehicleStatus(req.Status)
	if !domain.ValidVehicleStatus(status) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown vehicle status"})
		return
	}

	vehicle, err := h.vehicleRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if !domain.CanTransitionVehicle(vehicle.Status, status) {
		respondError(c, service.ErrInvalidTransition)
		return
	}

	if err := h.vehicleRepo.UpdateStatus(c.Request.Context(), vehicle.ID, status); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "status updated"})
}
