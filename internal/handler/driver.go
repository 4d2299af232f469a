package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fleetops/internal/domain"
	"fleetops/internal/repository"
)

// DriverHandler handles HTTP requests for drivers.
type DriverHandler struct {
	driverRepo repository.DriverRepository
}

// NewDriverHandler creates a new DriverHandler.
func NewDriverHandler(driverRepo repository.DriverRepository) *DriverHandler {
	return &DriverHandler{driverRepo: driverRepo}
}

// CreateDriverRequest is the HTTP request body for adding a driver.
type CreateDriverRequest struct {
	DriverID      string  `json:"driver_id" binding:"required"`
	Name          string  `json:"name" binding:"required"`
	LicenseType   string  `json:"license_type" binding:"required"`
	LicenseExpiry string  `json:"license_expiry" binding:"required"` // YYYY-MM-DD
	SafetyScore   float64 `json:"safety_score"`
}

// UpdateDriverRequest is the HTTP request body for updating a driver.
type UpdateDriverRequest struct {
	Name          string   `json:"name"`
	LicenseType   string   `json:"license_type"`
	LicenseExpiry string   `json:"license_expiry"`
	SafetyScore   *float64 `json:"safety_score"`
}

// DriverStatusRequest is the HTTP request body for a status change.
type DriverStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// DriverResponse is the HTTP response for driver data.
type DriverResponse struct {
	ID            string  `json:"id"`
	DriverID      string  `json:"driver_id"`
	Name          string  `json:"name"`
	LicenseType   string  `json:"license_type"`
	LicenseExpiry string  `json:"license_expiry"`
	Status        string  `json:"status"`
	SafetyScore   float64 `json:"safety_score"`
}

func driverResponse(d *domain.Driver) DriverResponse {
	return DriverResponse{
		ID:            d.ID,
		DriverID:      d.DriverID,
		Name:          d.Name,
		LicenseType:   d.LicenseType,
		LicenseExpiry: d.LicenseExpiry.Format("2006-01-02"),
		Status:        string(d.Status),
		SafetyScore:   d.SafetyScore,
	}
}

// GetAll handles GET /v1/drivers
func (h *DriverHandler) GetAll(c *gin.Context) {
	drivers, err := h.driverRepo.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]DriverResponse, 0, len(drivers))
	for _, d := range drivers {
		response = append(response, driverResponse(d))
	}

	c.JSON(http.StatusOK, response)
}

// Get handles GET /v1/drivers/:id
func (h *DriverHandler) Get(c *gin.Context) {
	driver, err := h.driverRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, driverResponse(driver))
}

// Create handles POST /v1/drivers
func (h *DriverHandler) Create(c *gin.Context) {
	var req CreateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	expiry, err := time.Parse("2006-01-02", req.LicenseExpiry)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid license_expiry, expected YYYY-MM-DD"})
		return
	}

	score := req.SafetyScore
	if score == 0 {
		score = 100
	}

	driver := &domain.Driver{
		ID:            uuid.New().String(),
		DriverID:      req.DriverID,
		Name:          req.Name,
		LicenseType:   req.LicenseType,
		LicenseExpiry: expiry,
		Status:        domain.DriverStatusOnDuty,
		SafetyScore:   score,
	}

	if err := h.driverRepo.Create(c.Request.Context(), driver); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, driverResponse(driver))
}

// Update handles PUT /v1/drivers/:id
func (h *DriverHandler) Update(c *gin.Context) {
	var req UpdateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	driver, err := h.driverRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if req.Name != "" {
		driver.Name = req.Name
	}
	if req.LicenseType != "" {
		driver.LicenseType = req.LicenseType
	}
	if req.LicenseExpiry != "" {
		expiry, err := time.Parse("2006-01-02", req.LicenseExpiry)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid license_expiry, expected YYYY-MM-DD"})
			return
		}
		driver.LicenseExpiry = expiry
	}
	if req.SafetyScore != nil {
		driver.SafetyScore = *req.SafetyScore
	}

	if err := h.driverRepo.Update(c.Request.Context(), driver); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, driverResponse(driver))
}

// Delete handles DELETE /v1/drivers/:id
func (h *DriverHandler) Delete(c *gin.Context) {
	if err := h.driverRepo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "driver deleted"})
}

// ChangeStatus handles PATCH /v1/drivers/:id/status
func (h *DriverHandler) ChangeStatus(c *gin.Context) {
	var req DriverStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	status := domain.DriverStatus(req.Status)
	if !domain.ValidDriverStatus(status) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown driver status"})
		return
	}

	if err := h.driverRepo.UpdateStatus(c.Request.Context(), c.Param("id"), status); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "status updated"})
}
