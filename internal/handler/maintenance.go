package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fleetops/internal/domain"
	"fleetops/internal/service"
)

// MaintenanceHandler handles HTTP requests for maintenance logs.
type MaintenanceHandler struct {
	maintenanceService *service.MaintenanceService
}

// NewMaintenanceHandler creates a new MaintenanceHandler.
func NewMaintenanceHandler(maintenanceService *service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenanceService: maintenanceService}
}

// LogServiceRequest is the HTTP request body for logging a service.
type LogServiceRequest struct {
	VehicleID   string `json:"vehicle_id" binding:"required"`
	ServiceType string `json:"service_type" binding:"required"`
	Date        string `json:"date"` // YYYY-MM-DD, defaults to today
	Notes       string `json:"notes"`
}

// MaintenanceResponse is the HTTP response for maintenance log data.
type MaintenanceResponse struct {
	ID          string `json:"id"`
	VehicleID   string `json:"vehicle_id"`
	ServiceType string `json:"service_type"`
	Date        string `json:"date"`
	Notes       string `json:"notes,omitempty"`
}

func maintenanceResponse(m *domain.Maintenance) MaintenanceResponse {
	return MaintenanceResponse{
		ID:          m.ID,
		VehicleID:   m.VehicleID,
		ServiceType: m.ServiceType,
		Date:        m.Date.Format("2006-01-02"),
		Notes:       m.Notes,
	}
}

// GetAll handles GET /v1/maintenance
func (h *MaintenanceHandler) GetAll(c *gin.Context) {
	logs, err := h.maintenanceService.ListLogs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]MaintenanceResponse, 0, len(logs))
	for _, m := range logs {
		response = append(response, maintenanceResponse(m))
	}

	c.JSON(http.StatusOK, response)
}

// LogService handles POST /v1/maintenance
func (h *MaintenanceHandler) LogService(c *gin.Context) {
	var req LogServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid date, expected YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	log, err := h.maintenanceService.LogService(c.Request.Context(), service.LogServiceRequest{
		VehicleID:   req.VehicleID,
		ServiceType: req.ServiceType,
		Date:        date,
		Notes:       req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, maintenanceResponse(log))
}
