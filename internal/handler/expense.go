package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fleetops/internal/domain"
	"fleetops/internal/redis"
	"fleetops/internal/repository"
	"fleetops/internal/service"
)

// ExpenseHandler handles HTTP requests for expenses.
type ExpenseHandler struct {
	expenseRepo repository.ExpenseRepository
	vehicleRepo repository.VehicleRepository
	cacheStore  redis.CacheStoreInterface
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseRepo repository.ExpenseRepository, vehicleRepo repository.VehicleRepository, cacheStore redis.CacheStoreInterface) *ExpenseHandler {
	return &ExpenseHandler{expenseRepo: expenseRepo, vehicleRepo: vehicleRepo, cacheStore: cacheStore}
}

// LogExpenseRequest is the HTTP request body for logging an expense.
type LogExpenseRequest struct {
	VehicleID string  `json:"vehicle_id" binding:"required"`
	Liters    float64 `json:"liters"`
	Cost      float64 `json:"cost"`
	Date      string  `json:"date"` // YYYY-MM-DD, defaults to today
}

// ExpenseResponse is the HTTP response for expense data.
type ExpenseResponse struct {
	ID        string  `json:"id"`
	VehicleID string  `json:"vehicle_id"`
	Liters    float64 `json:"liters"`
	Cost      float64 `json:"cost"`
	Date      string  `json:"date"`
}

func expenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:        e.ID,
		VehicleID: e.VehicleID,
		Liters:    e.Liters,
		Cost:      e.Cost,
		Date:      e.Date.Format("2006-01-02"),
	}
}

// GetAll handles GET /v1/expenses
func (h *ExpenseHandler) GetAll(c *gin.Context) {
	expenses, err := h.expenseRepo.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		response = append(response, expenseResponse(e))
	}

	c.JSON(http.StatusOK, response)
}

// LogExpense handles POST /v1/expenses
func (h *ExpenseHandler) LogExpense(c *gin.Context) {
	var req LogExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.Liters < 0 || req.Cost < 0 {
		respondError(c, service.ErrInvalidExpense)
		return
	}

	// The expense must reference a real vehicle row.
	vehicle, err := h.vehicleRepo.GetByID(c.Request.Context(), req.VehicleID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, service.ErrVehicleNotFound)
			return
		}
		respondError(c, err)
		return
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid date, expected YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	expense := &domain.Expense{
		ID:        uuid.New().String(),
		VehicleID: vehicle.ID,
		Liters:    req.Liters,
		Cost:      req.Cost,
		Date:      date,
	}

	if err := h.expenseRepo.Create(c.Request.Context(), expense); err != nil {
		respondError(c, err)
		return
	}

	// New costs change every dashboard metric.
	if h.cacheStore != nil {
		_ = h.cacheStore.InvalidateDashboard(c.Request.Context())
	}

	c.JSON(http.StatusCreated, expenseResponse(expense))
}
