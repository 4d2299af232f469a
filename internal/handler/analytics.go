package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetops/internal/service"
)

// AnalyticsHandler handles HTTP requests for the analytics dashboard.
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// DashboardResponse mirrors the dashboard payload consumed by the front end.
type DashboardResponse struct {
	UtilizationRate      string             `json:"utilizationRate"`
	TotalActiveFleet     string             `json:"totalActiveFleet"`
	TotalOperationalCost string             `json:"totalOperationalCost"`
	AvgFuelEfficiency    string             `json:"avgFuelEfficiency"`
	EstimatedROI         string             `json:"estimatedROI"`
	CostPerVehicleData   map[string]float64 `json:"costPerVehicleData"`
}

// Dashboard handles GET /v1/analytics/dashboard
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	metrics, err := h.analyticsService.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{
		UtilizationRate:      fmt.Sprintf("%.2f%%", metrics.UtilizationRate),
		TotalActiveFleet:     fmt.Sprintf("%d / %d", metrics.ActiveVehicles, metrics.TotalVehicles),
		TotalOperationalCost: fmt.Sprintf("$%.2f", metrics.TotalOperationalCost),
		AvgFuelEfficiency:    fmt.Sprintf("%.2f km/L", metrics.AvgFuelEfficiency),
		EstimatedROI:         fmt.Sprintf("%.2f%%", metrics.EstimatedROI),
		CostPerVehicleData:   metrics.CostPerVehicle,
	})
}
